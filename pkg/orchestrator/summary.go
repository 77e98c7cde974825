package orchestrator

import (
	"github.com/user/captionframe/pkg/summarizer"
)

// Summary converts the result into a summarizer.Summary.
func (r RunResult) Summary() *summarizer.Summary {
	return summarizer.NewBuilder().
		WithSource(r.ImagePath, r.SourceWidth, r.SourceHeight).
		WithFrame(summarizer.FrameInfo{
			Key:    r.Frame.Key,
			Label:  r.Frame.Label,
			Width:  r.Frame.Width,
			Height: r.Frame.Height,
		}).
		WithLayout(summarizer.LayoutInfo{
			FontFamily:  r.Layout.FontFamily,
			FontWeight:  r.Layout.FontWeight,
			LineHeight:  r.Layout.LineHeight,
			Margin:      r.Layout.Margin,
			Vertical:    r.Layout.Vertical,
			MaxTextArea: r.Layout.MaxTextArea,
			MaxFontPx:   r.Layout.MaxFontPx,
			Stroke:      r.Layout.Stroke,
		}).
		WithText(summarizer.TextInfo{
			Lines:    r.Block.Lines,
			FontPx:   r.Block.FontPx,
			Overflow: r.Block.Overflow,
			Fill:     r.Fill.Source.String(),
		}).
		WithOutput(summarizer.OutputInfo{
			Path:       r.OutputPath,
			FileSize:   r.FileSize,
			OffsetX:    r.Offset.X,
			OffsetY:    r.Offset.Y,
			DurationMs: r.DurationMs,
		}).
		Build()
}
