// Package contrast picks a legible text color from rendered background pixels.
package contrast

import (
	"image"
	"image/color"
	"math"

	"github.com/user/captionframe/pkg/pipeline"
	"github.com/user/captionframe/pkg/ports"
)

// Threshold is the average relative luminance above which text turns black.
const Threshold = 0.5

// Fixed text and outline colors.
var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	// LightStroke outlines black text, DarkStroke everything else.
	LightStroke = color.NRGBA{R: 255, G: 255, B: 255, A: 179} // 0.7
	DarkStroke  = color.NRGBA{R: 0, G: 0, B: 0, A: 153}       // 0.6
)

// linear maps an 8-bit sRGB channel to linear light.
var linear [256]float64

func init() {
	for i := range linear {
		c := float64(i) / 255
		if c <= 0.03928 {
			linear[i] = c / 12.92
		} else {
			linear[i] = math.Pow((c+0.055)/1.055, 2.4)
		}
	}
}

// RelativeLuminance returns the relative luminance of an 8-bit sRGB color.
func RelativeLuminance(r, g, b uint8) float64 {
	return 0.2126*linear[r] + 0.7152*linear[g] + 0.0722*linear[b]
}

// AverageLuminance returns the mean relative luminance over img. The second
// result is false when img has no pixels.
func AverageLuminance(img image.Image) (float64, bool) {
	bounds := img.Bounds()
	n := bounds.Dx() * bounds.Dy()
	if n <= 0 {
		return 0, false
	}

	var sum float64
	if rgba, ok := img.(*image.RGBA); ok {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			row := rgba.Pix[rgba.PixOffset(bounds.Min.X, y):rgba.PixOffset(bounds.Max.X, y)]
			for i := 0; i < len(row); i += 4 {
				c := unpremultiply(row[i], row[i+1], row[i+2], row[i+3])
				sum += RelativeLuminance(c.R, c.G, c.B)
			}
		}
	} else {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
				sum += RelativeLuminance(c.R, c.G, c.B)
			}
		}
	}
	return sum / float64(n), true
}

func unpremultiply(r, g, b, a uint8) color.NRGBA {
	if a == 255 || a == 0 {
		return color.NRGBA{R: r, G: g, B: b, A: a}
	}
	return color.NRGBAModel.Convert(color.RGBA{R: r, G: g, B: b, A: a}).(color.NRGBA)
}

// Region returns the part of a w×h frame that is sampled: the bottom
// maxTextArea fraction, full width.
func Region(w, h int, maxTextArea float64) image.Rectangle {
	yStart := int(math.Floor(float64(h) * (1 - maxTextArea)))
	if yStart < 0 {
		yStart = 0
	}
	return image.Rect(0, yStart, w, h)
}

// Decide maps an average luminance to black or white text.
func Decide(avg float64) pipeline.FillDecision {
	if avg > Threshold {
		return pipeline.FillDecision{Fill: Black, Source: pipeline.FillAutoBlack}
	}
	return pipeline.FillDecision{Fill: White, Source: pipeline.FillAutoWhite}
}

// Sample reads the text zone back from src and picks the text color.
// Unreadable or empty pixels yield white; Sample never fails.
func Sample(src ports.PixelReader, w, h int, maxTextArea float64) pipeline.FillDecision {
	pixels, err := src.ReadPixels(Region(w, h, maxTextArea))
	if err != nil || pixels == nil {
		return Decide(0)
	}
	avg, ok := AverageLuminance(pixels)
	if !ok {
		return Decide(0)
	}
	return Decide(avg)
}

// Explicit wraps a user-chosen color.
func Explicit(c color.Color) pipeline.FillDecision {
	if c == nil {
		c = White
	}
	return pipeline.FillDecision{Fill: c, Source: pipeline.FillExplicit}
}

// StrokeColor derives the outline color from the fill: a light outline for
// black text, a dark one for anything else.
func StrokeColor(fill pipeline.FillDecision) color.Color {
	if isBlack(fill.Fill) {
		return LightStroke
	}
	return DarkStroke
}

func isBlack(c color.Color) bool {
	if c == nil {
		return false
	}
	r, g, b, a := c.RGBA()
	return r == 0 && g == 0 && b == 0 && a == 0xffff
}

// StrokeWidth returns the outline width for a font size: 6% of the size,
// floored, at least 1px.
func StrokeWidth(fontPx int) float64 {
	return math.Max(1, math.Floor(float64(fontPx)*0.06))
}
