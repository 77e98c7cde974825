package ports

import (
	"errors"
	"image"
	"image/color"
)

// ErrPixelsUnavailable is returned by Surface.ReadPixels when the requested
// pixels cannot be read back.
var ErrPixelsUnavailable = errors.New("pixels unavailable")

// Renderer abstracts the raster backend.
type Renderer interface {
	// NewSurface creates a cleared drawing surface with the specified dimensions.
	NewSurface(width, height int) Surface

	// DecodeImage decodes encoded image data, detecting the format.
	DecodeImage(data []byte) (image.Image, error)

	// EncodeImage encodes an image to the specified format.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)
}

// Measurer measures the advance width of a single line of text.
type Measurer interface {
	// MeasureText returns the width in pixels of text set in the given font.
	MeasureText(text string, font FontSpec) float64
}

// PixelReader reads back already rendered pixels.
type PixelReader interface {
	// ReadPixels returns a copy of the pixels inside rect.
	ReadPixels(rect image.Rectangle) (image.Image, error)
}

// Surface is the capability the compositor draws through.
type Surface interface {
	Measurer
	PixelReader

	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Clear fills the whole surface with c.
	Clear(c color.Color)

	// DrawBitmap draws img scaled into the rectangle (x, y, width, height).
	// The rectangle may extend past the surface edges.
	DrawBitmap(img image.Image, x, y, width, height float64)

	// StrokeText draws the outline of text. y is the bottom of the line box.
	StrokeText(text string, x, y float64, style TextStyle)

	// FillText draws text. y is the bottom of the line box.
	FillText(text string, x, y float64, style TextStyle)

	// ToImage returns the surface as an image.Image.
	ToImage() image.Image
}

// FontSpec identifies a resolved font at a given size.
type FontSpec struct {
	Family string
	Weight int
	SizePx float64
}

// TextStyle defines text rendering properties.
type TextStyle struct {
	Font        FontSpec
	Color       color.Color
	StrokeWidth float64 // only used by StrokeText
}

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatPNG ImageFormat = iota
	FormatJPEG
)

// String returns the file extension for the format.
func (f ImageFormat) String() string {
	switch f {
	case FormatJPEG:
		return "jpg"
	default:
		return "png"
	}
}
