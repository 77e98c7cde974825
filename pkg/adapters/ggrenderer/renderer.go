// Package ggrenderer provides a renderer implementation using the gg library.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif" // register decoder
	"image/jpeg"
	"image/png"
	"math"

	"github.com/fogleman/gg"
	_ "golang.org/x/image/bmp" // register decoder
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	_ "golang.org/x/image/tiff" // register decoder
	_ "golang.org/x/image/webp" // register decoder

	"github.com/user/captionframe/pkg/ports"
)

// strokeSamples is the number of offsets used to approximate an outline.
const strokeSamples = 16

// Renderer implements ports.Renderer using the gg library.
type Renderer struct {
	fonts ports.FontResolver
}

// New creates a new Renderer that sets text in faces from fonts.
func New(fonts ports.FontResolver) *Renderer {
	return &Renderer{fonts: fonts}
}

// NewSurface creates a new transparent drawing surface.
func (r *Renderer) NewSurface(width, height int) ports.Surface {
	return &Surface{
		dc:    gg.NewContext(width, height),
		fonts: r.fonts,
	}
}

// DecodeImage decodes image data into an image.Image, detecting the format.
func (r *Renderer) DecodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("decode image: empty image %dx%d", b.Dx(), b.Dy())
	}
	return img, nil
}

// EncodeImage encodes an image to the specified format.
func (r *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatJPEG:
		opts := &jpeg.Options{Quality: quality}
		if err := jpeg.Encode(&buf, img, opts); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	case ports.FormatPNG:
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		if err := enc.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %d", format)
	}

	return buf.Bytes(), nil
}

// Ensure Renderer implements ports.Renderer
var _ ports.Renderer = (*Renderer)(nil)

// Surface implements ports.Surface using gg.Context.
type Surface struct {
	dc    *gg.Context
	fonts ports.FontResolver
}

// Width returns the surface width.
func (s *Surface) Width() int { return s.dc.Width() }

// Height returns the surface height.
func (s *Surface) Height() int { return s.dc.Height() }

// Clear fills the surface with c, replacing what was there.
func (s *Surface) Clear(c color.Color) {
	rgba := s.rgba()
	draw.Draw(rgba, rgba.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// DrawBitmap scales img into the rectangle with Catmull-Rom filtering. The
// destination is snapped outward to whole pixels so a rectangle that covers
// the surface in float coordinates still covers every pixel.
func (s *Surface) DrawBitmap(img image.Image, x, y, width, height float64) {
	dst := image.Rect(
		int(math.Floor(x)),
		int(math.Floor(y)),
		int(math.Ceil(x+width)),
		int(math.Ceil(y+height)),
	)
	draw.CatmullRom.Scale(s.rgba(), dst, img, img.Bounds(), draw.Over, nil)
}

// MeasureText returns the advance width of text.
func (s *Surface) MeasureText(text string, spec ports.FontSpec) float64 {
	s.dc.SetFontFace(s.fonts.Face(spec))
	w, _ := s.dc.MeasureString(text)
	return w
}

// FillText draws text with its line box bottom at y.
func (s *Surface) FillText(text string, x, y float64, style ports.TextStyle) {
	baseline := s.setFont(style.Font, y)
	s.dc.SetColor(style.Color)
	s.dc.DrawString(text, x, baseline)
}

// StrokeText draws an outline of text by stamping the glyphs on a ring of
// offsets into a mask, then filling the mask once so translucent stroke
// colors do not build up.
func (s *Surface) StrokeText(text string, x, y float64, style ports.TextStyle) {
	if style.StrokeWidth <= 0 {
		return
	}
	face := s.fonts.Face(style.Font)
	layer := gg.NewContext(s.dc.Width(), s.dc.Height())
	layer.SetFontFace(face)
	baseline := y - descent(face)
	layer.SetColor(color.White)

	radius := style.StrokeWidth / 2
	for _, r := range []float64{radius / 2, radius} {
		for i := 0; i < strokeSamples; i++ {
			a := 2 * math.Pi * float64(i) / strokeSamples
			layer.DrawString(text, x+r*math.Cos(a), baseline+r*math.Sin(a))
		}
	}

	if err := s.dc.SetMask(layer.AsMask()); err != nil {
		return
	}
	s.dc.SetColor(style.Color)
	s.dc.DrawRectangle(0, 0, float64(s.dc.Width()), float64(s.dc.Height()))
	s.dc.Fill()
	s.dc.ResetClip()
}

// ReadPixels returns a copy of the pixels inside rect.
func (s *Surface) ReadPixels(rect image.Rectangle) (image.Image, error) {
	rgba := s.rgba()
	r := rect.Intersect(rgba.Bounds())
	if r.Empty() {
		return nil, fmt.Errorf("read %v: %w", rect, ports.ErrPixelsUnavailable)
	}
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), rgba, r.Min, draw.Src)
	return out, nil
}

// ToImage returns the surface as an image.Image.
func (s *Surface) ToImage() image.Image {
	return s.dc.Image()
}

// setFont selects the face for spec and converts a line-box bottom to the
// baseline gg draws on.
func (s *Surface) setFont(spec ports.FontSpec, bottom float64) float64 {
	face := s.fonts.Face(spec)
	s.dc.SetFontFace(face)
	return bottom - descent(face)
}

func descent(face font.Face) float64 {
	return float64(face.Metrics().Descent) / 64
}

func (s *Surface) rgba() *image.RGBA {
	return s.dc.Image().(*image.RGBA)
}

// Ensure Surface implements ports.Surface
var _ ports.Surface = (*Surface)(nil)
