// Package compose implements the render pass that turns a photo, a caption
// and layout settings into the finished frame.
package compose

import (
	"context"
	"image/color"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/user/captionframe/pkg/pipeline"
	"github.com/user/captionframe/pkg/ports"
	"github.com/user/captionframe/pkg/stages/contrast"
	"github.com/user/captionframe/pkg/stages/cover"
	"github.com/user/captionframe/pkg/stages/textfit"
)

// Stage runs one complete, synchronous render pass.
// The same input always produces the same raster.
type Stage struct {
	renderer ports.Renderer
	sink     ports.DebugSink
	logger   ports.Logger
}

// NewStage creates a new compose stage.
func NewStage(renderer ports.Renderer, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		sink:     sink,
		logger:   logger.WithComponent("compose"),
	}
}

// Execute renders input. Without a bitmap nothing is drawn and the result
// is marked Skipped.
func (s *Stage) Execute(ctx context.Context, input pipeline.ComposeInput) (pipeline.ComposeResult, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.ComposeResult{}, err
	}
	if input.Bitmap == nil {
		s.logger.Debug("No image loaded, nothing to draw")
		return pipeline.ComposeResult{Skipped: true}, nil
	}

	frame := input.Frame
	layout := input.Layout
	result := pipeline.ComposeResult{}

	// 1. Fresh surface at the frame size
	surface := s.renderer.NewSurface(frame.Width, frame.Height)
	surface.Clear(color.Transparent)

	// 2. Background
	bounds := input.Bitmap.Bounds()
	result.Cover = cover.Fit(frame.Width, frame.Height, bounds.Dx(), bounds.Dy())
	result.Offset = cover.Clamp(input.Offset, frame.Width, frame.Height, bounds.Dx(), bounds.Dy())
	x, y := cover.Origin(result.Cover, result.Offset)
	surface.DrawBitmap(input.Bitmap, x, y, result.Cover.DrawWidth, result.Cover.DrawHeight)
	s.logger.Debug("Image %dx%d drawn at %.1f,%.1f size %.1fx%.1f",
		bounds.Dx(), bounds.Dy(), x, y, result.Cover.DrawWidth, result.Cover.DrawHeight)

	if s.sink.Enabled() {
		s.sink.SaveBackground(surface.ToImage())
	}

	// 3. Fill color
	if layout.AutoContrast {
		result.Fill = contrast.Sample(surface, frame.Width, frame.Height, layout.MaxTextArea)
	} else {
		result.Fill = contrast.Explicit(layout.TextColor)
	}
	s.logger.Debug("Text fill: %s", result.Fill.Source)

	// 4. Font size and lines
	result.Block = textfit.Fit(input.Text, frame, layout, surface)
	if result.Block.Overflow {
		s.logger.Warn("Text does not fit the text zone, using %dpx", result.Block.FontPx)
	}
	s.logger.Debug("Font %dpx, %d lines", result.Block.FontPx, len(result.Block.Lines))

	// 5. Vertical placement
	result.Placement = Place(frame.Height, layout, result.Block)

	// 6. Lines, bottom-anchored, stroke beneath fill
	drawLines(surface, layout, result)

	result.Image = surface.ToImage()

	if s.sink.Enabled() {
		if data, err := yaml.Marshal(debugLayout(input, result)); err == nil {
			s.sink.SaveLayout(data)
		}
		s.sink.SaveComposed(result.Image)
	}

	return result, nil
}

// Place computes where the text block sits. The anchor is clamped to [0, 1]:
// 0 puts the block's top at the margin, 1 puts its bottom at
// frameHeight - margin.
func Place(frameHeight int, layout pipeline.LayoutConfig, block pipeline.TextBlock) pipeline.Placement {
	total := block.Height(layout.LineHeight)
	available := float64(frameHeight - layout.Margin*2)
	v := math.Min(1, math.Max(0, layout.Vertical))
	top := float64(layout.Margin) + (available-total)*v
	return pipeline.Placement{
		Top:          top,
		LastBaseline: top + total,
	}
}

// Baseline returns the bottom of line i of an n-line block.
func Baseline(p pipeline.Placement, i, n, fontPx int, lineHeight float64) float64 {
	return p.LastBaseline - float64(n-1-i)*float64(fontPx)*lineHeight
}

func drawLines(surface ports.Surface, layout pipeline.LayoutConfig, result pipeline.ComposeResult) {
	block := result.Block
	n := len(block.Lines)
	if n == 0 {
		return
	}

	font := textfit.FontSpec(layout, block.FontPx)
	fill := ports.TextStyle{Font: font, Color: result.Fill.Fill}
	stroke := ports.TextStyle{
		Font:        font,
		Color:       contrast.StrokeColor(result.Fill),
		StrokeWidth: contrast.StrokeWidth(block.FontPx),
	}
	x := float64(layout.Margin)

	for i := n - 1; i >= 0; i-- {
		line := block.Lines[i]
		if line == "" {
			continue
		}
		y := Baseline(result.Placement, i, n, block.FontPx, layout.LineHeight)
		if layout.Stroke {
			surface.StrokeText(line, x, y, stroke)
		}
		surface.FillText(line, x, y, fill)
	}
}

// layoutDump is the debug view of a render pass.
type layoutDump struct {
	Frame     string             `yaml:"frame"`
	Width     int                `yaml:"width"`
	Height    int                `yaml:"height"`
	Cover     pipeline.CoverRect `yaml:"cover"`
	Requested pipeline.PanOffset `yaml:"requested_offset"`
	Offset    pipeline.PanOffset `yaml:"offset"`
	Fill      string             `yaml:"fill"`
	Block     pipeline.TextBlock `yaml:"block"`
	Placement pipeline.Placement `yaml:"placement"`
}

func debugLayout(input pipeline.ComposeInput, result pipeline.ComposeResult) layoutDump {
	return layoutDump{
		Frame:     input.Frame.Key,
		Width:     input.Frame.Width,
		Height:    input.Frame.Height,
		Cover:     result.Cover,
		Requested: input.Offset,
		Offset:    result.Offset,
		Fill:      result.Fill.Source.String(),
		Block:     result.Block,
		Placement: result.Placement,
	}
}
