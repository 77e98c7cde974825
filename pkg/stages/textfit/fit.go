package textfit

import (
	"math"

	"github.com/user/captionframe/pkg/pipeline"
	"github.com/user/captionframe/pkg/ports"
)

const (
	// MinFontPx is the smallest size the search considers.
	MinFontPx = 8
	// FallbackFontPx is used when no size in range fits the zone.
	FallbackFontPx = 24
)

// Zone returns the content width and the height available to the text block.
func Zone(frame pipeline.Frame, layout pipeline.LayoutConfig) (contentW, zoneH float64) {
	contentW = math.Max(1, float64(frame.Width-layout.Margin*2))
	zoneH = float64(frame.Height)*layout.MaxTextArea - float64(layout.Margin)
	return contentW, zoneH
}

// FontSpec returns the font the layout sets text in at sizePx.
func FontSpec(layout pipeline.LayoutConfig, sizePx int) ports.FontSpec {
	return ports.FontSpec{
		Family: layout.FontFamily,
		Weight: layout.FontWeight,
		SizePx: float64(sizePx),
	}
}

// WrapAt wraps text for the layout's font at sizePx.
func WrapAt(text string, maxWidth float64, layout pipeline.LayoutConfig, sizePx int, m ports.Measurer) []string {
	spec := FontSpec(layout, sizePx)
	return Wrap(text, maxWidth, func(line string) float64 {
		return m.MeasureText(line, spec)
	})
}

// Fit binary-searches the largest integer font size in [MinFontPx,
// layout.MaxFontPx] whose wrapped block fits the text zone.
//
// Text is re-wrapped at every probed size, so feasibility is not strictly
// monotonic: a probe can fail while a larger size would have fit. The search
// only moves its best result forward on success and accepts that it may miss
// such a size. When nothing fits, the fallback size is returned with
// Overflow set and the block may extend past the zone.
func Fit(text string, frame pipeline.Frame, layout pipeline.LayoutConfig, m ports.Measurer) pipeline.TextBlock {
	contentW, zoneH := Zone(frame, layout)

	lo, hi := MinFontPx, layout.MaxFontPx
	best := pipeline.TextBlock{}
	found := false
	for lo <= hi {
		mid := (lo + hi) / 2
		lines := WrapAt(text, contentW, layout, mid, m)
		height := float64(len(lines)) * float64(mid) * layout.LineHeight
		if height <= zoneH {
			best = pipeline.TextBlock{Lines: lines, FontPx: mid}
			found = true
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	if found {
		return best
	}

	size := fallbackSize(layout.MaxFontPx)
	return pipeline.TextBlock{
		Lines:    WrapAt(text, contentW, layout, size, m),
		FontPx:   size,
		Overflow: true,
	}
}

// fallbackSize keeps the fallback inside [MinFontPx, maxFontPx] when the
// range is non-empty.
func fallbackSize(maxFontPx int) int {
	size := FallbackFontPx
	if size > maxFontPx {
		size = maxFontPx
	}
	if size < MinFontPx {
		size = MinFontPx
	}
	return size
}
