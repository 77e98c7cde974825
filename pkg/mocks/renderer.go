package mocks

import (
	"image"
	"image/color"
	"unicode/utf8"

	"golang.org/x/image/draw"

	"github.com/user/captionframe/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	NewSurfaceFunc  func(width, height int) ports.Surface
	DecodeImageFunc func(data []byte) (image.Image, error)
	EncodeImageFunc func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)

	// Surfaces records every surface handed out by NewSurface.
	Surfaces []*Surface
}

func (m *Renderer) NewSurface(width, height int) ports.Surface {
	if m.NewSurfaceFunc != nil {
		return m.NewSurfaceFunc(width, height)
	}
	s := NewSurface(width, height)
	m.Surfaces = append(m.Surfaces, s)
	return s
}

func (m *Renderer) DecodeImage(data []byte) (image.Image, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data)
	}
	return image.NewRGBA(image.Rect(0, 0, 100, 100)), nil
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte("encoded"), nil
}

var _ ports.Renderer = (*Renderer)(nil)

// TextCall records one StrokeText or FillText call.
type TextCall struct {
	Op    string // "stroke" or "fill"
	Text  string
	X, Y  float64
	Style ports.TextStyle
}

// BitmapCall records one DrawBitmap call.
type BitmapCall struct {
	X, Y, Width, Height float64
}

// Surface is a deterministic ports.Surface backed by an RGBA image.
// Text is measured as runes × size × CharWidth and is recorded, not drawn.
type Surface struct {
	img *image.RGBA

	// CharWidth is the advance of every rune as a fraction of the font size.
	CharWidth float64
	// MeasureFunc overrides the rune-based measurement when set.
	MeasureFunc func(text string, font ports.FontSpec) float64
	// ReadPixelsErr makes ReadPixels fail, as with a restricted source.
	ReadPixelsErr error

	Bitmaps []BitmapCall
	Texts   []TextCall
	Reads   []image.Rectangle
}

// NewSurface creates a transparent mock surface.
func NewSurface(width, height int) *Surface {
	return &Surface{
		img:       image.NewRGBA(image.Rect(0, 0, width, height)),
		CharWidth: 0.5,
	}
}

func (m *Surface) Width() int  { return m.img.Bounds().Dx() }
func (m *Surface) Height() int { return m.img.Bounds().Dy() }

func (m *Surface) MeasureText(text string, font ports.FontSpec) float64 {
	if m.MeasureFunc != nil {
		return m.MeasureFunc(text, font)
	}
	return float64(utf8.RuneCountInString(text)) * font.SizePx * m.CharWidth
}

func (m *Surface) Clear(c color.Color) {
	draw.Draw(m.img, m.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (m *Surface) DrawBitmap(img image.Image, x, y, width, height float64) {
	m.Bitmaps = append(m.Bitmaps, BitmapCall{X: x, Y: y, Width: width, Height: height})
	dst := image.Rect(int(x), int(y), int(x+width), int(y+height))
	draw.NearestNeighbor.Scale(m.img, dst, img, img.Bounds(), draw.Over, nil)
}

func (m *Surface) StrokeText(text string, x, y float64, style ports.TextStyle) {
	m.Texts = append(m.Texts, TextCall{Op: "stroke", Text: text, X: x, Y: y, Style: style})
}

func (m *Surface) FillText(text string, x, y float64, style ports.TextStyle) {
	m.Texts = append(m.Texts, TextCall{Op: "fill", Text: text, X: x, Y: y, Style: style})
}

func (m *Surface) ReadPixels(rect image.Rectangle) (image.Image, error) {
	m.Reads = append(m.Reads, rect)
	if m.ReadPixelsErr != nil {
		return nil, m.ReadPixelsErr
	}
	r := rect.Intersect(m.img.Bounds())
	if r.Empty() {
		return nil, ports.ErrPixelsUnavailable
	}
	return m.img.SubImage(r), nil
}

func (m *Surface) ToImage() image.Image {
	return m.img
}

// Fills returns the recorded FillText calls.
func (m *Surface) Fills() []TextCall {
	var calls []TextCall
	for _, c := range m.Texts {
		if c.Op == "fill" {
			calls = append(calls, c)
		}
	}
	return calls
}

var _ ports.Surface = (*Surface)(nil)

// SolidImage returns a w×h image filled with c.
func SolidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// UniformImage is a single-color image of a fixed size that allocates no
// pixel buffer, for large source photos in tests.
type UniformImage struct {
	*image.Uniform
	Rect image.Rectangle
}

// NewUniformImage returns a w×h UniformImage of color c.
func NewUniformImage(w, h int, c color.Color) *UniformImage {
	return &UniformImage{Uniform: image.NewUniform(c), Rect: image.Rect(0, 0, w, h)}
}

func (u *UniformImage) Bounds() image.Rectangle { return u.Rect }
