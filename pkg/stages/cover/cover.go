// Package cover computes how a bitmap is scaled and panned to fill a frame.
package cover

import (
	"math"

	"github.com/user/captionframe/pkg/pipeline"
)

// Fit returns the rectangle at which a bmpW×bmpH bitmap fully covers a
// frameW×frameH frame without distortion. One axis matches the frame exactly,
// the other overflows and is centered. All dimensions must be positive.
func Fit(frameW, frameH, bmpW, bmpH int) pipeline.CoverRect {
	bmpRatio := float64(bmpW) / float64(bmpH)
	frameRatio := float64(frameW) / float64(frameH)

	if bmpRatio > frameRatio {
		// Wider than the frame: match height, crop left and right.
		drawH := float64(frameH)
		drawW := drawH * bmpRatio
		return pipeline.CoverRect{
			DrawWidth:  drawW,
			DrawHeight: drawH,
			BaseX:      (float64(frameW) - drawW) / 2,
			BaseY:      0,
		}
	}

	drawW := float64(frameW)
	drawH := drawW / bmpRatio
	return pipeline.CoverRect{
		DrawWidth:  drawW,
		DrawHeight: drawH,
		BaseX:      0,
		BaseY:      (float64(frameH) - drawH) / 2,
	}
}

// Bounds returns the allowed pan offset range for a cover rect. An offset
// inside the range keeps the drawn bitmap's edges at or outside the frame's.
func Bounds(frameW, frameH int, rect pipeline.CoverRect) (lo, hi pipeline.PanOffset) {
	lo = pipeline.PanOffset{
		X: float64(frameW) - rect.DrawWidth - rect.BaseX,
		Y: float64(frameH) - rect.DrawHeight - rect.BaseY,
	}
	hi = pipeline.PanOffset{
		X: -rect.BaseX,
		Y: -rect.BaseY,
	}
	return lo, hi
}

// Clamp returns the offset nearest to desired that leaves no part of the
// frame uncovered. The drawn position, base plus offset, ends up in
// [frameW-drawW, 0] horizontally and [frameH-drawH, 0] vertically.
func Clamp(desired pipeline.PanOffset, frameW, frameH, bmpW, bmpH int) pipeline.PanOffset {
	rect := Fit(frameW, frameH, bmpW, bmpH)
	lo, hi := Bounds(frameW, frameH, rect)
	return pipeline.PanOffset{
		X: clamp(desired.X, lo.X, hi.X),
		Y: clamp(desired.Y, lo.Y, hi.Y),
	}
}

// Origin returns the top-left corner at which the bitmap is drawn.
func Origin(rect pipeline.CoverRect, offset pipeline.PanOffset) (x, y float64) {
	return rect.BaseX + offset.X, rect.BaseY + offset.Y
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return (lo + hi) / 2
	}
	return math.Min(hi, math.Max(lo, v))
}
