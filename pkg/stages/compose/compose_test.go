package compose

import (
	"context"
	"image"
	"image/color"
	"math"
	"reflect"
	"testing"

	"github.com/user/captionframe/pkg/adapters/logger"
	"github.com/user/captionframe/pkg/mocks"
	"github.com/user/captionframe/pkg/pipeline"
	"github.com/user/captionframe/pkg/stages/contrast"
)

func newTestStage(sink *mocks.DebugSink) (*Stage, *mocks.Renderer) {
	renderer := &mocks.Renderer{}
	if sink == nil {
		sink = mocks.NewDebugSink(false)
	}
	return NewStage(renderer, sink, logger.NewNoop()), renderer
}

func testInput(bg color.Color) pipeline.ComposeInput {
	return pipeline.ComposeInput{
		Frame:  pipeline.FramePortrait,
		Bitmap: mocks.SolidImage(400, 300, bg),
		Text:   "Hello world",
		Layout: pipeline.DefaultLayoutConfig(),
	}
}

func TestExecute_NoBitmapIsNoop(t *testing.T) {
	stage, renderer := newTestStage(nil)

	input := testInput(color.Black)
	input.Bitmap = nil
	result, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !result.Skipped {
		t.Error("expected result to be skipped")
	}
	if len(renderer.Surfaces) != 0 {
		t.Error("expected no surface to be created")
	}
}

func TestExecute_CancelledContext(t *testing.T) {
	stage, _ := newTestStage(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := stage.Execute(ctx, testInput(color.Black)); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestExecute_DrawsCoveredBitmap(t *testing.T) {
	stage, renderer := newTestStage(nil)

	input := testInput(color.Black)
	input.Offset = pipeline.PanOffset{X: 10000, Y: 10000}
	result, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	surface := renderer.Surfaces[0]
	if surface.Width() != 1080 || surface.Height() != 1350 {
		t.Errorf("expected 1080x1350 surface, got %dx%d", surface.Width(), surface.Height())
	}
	if len(surface.Bitmaps) != 1 {
		t.Fatalf("expected one bitmap draw, got %d", len(surface.Bitmaps))
	}
	call := surface.Bitmaps[0]
	// 400x300 into 1080x1350: 1800x1350, fully panned right means x = 0.
	if math.Abs(call.X) > 1e-9 || call.Y != 0 {
		t.Errorf("expected bitmap at 0,0 after clamping, got %f,%f", call.X, call.Y)
	}
	if math.Abs(call.Width-1800) > 1e-9 || call.Height != 1350 {
		t.Errorf("expected 1800x1350, got %fx%f", call.Width, call.Height)
	}
	if math.Abs(result.Offset.X-360) > 1e-9 {
		t.Errorf("expected clamped offset 360, got %f", result.Offset.X)
	}

	// Every pixel of the frame is covered.
	img := result.Image
	for _, p := range []image.Point{{0, 0}, {1079, 0}, {0, 1349}, {1079, 1349}} {
		if _, _, _, a := img.At(p.X, p.Y).RGBA(); a != 0xffff {
			t.Errorf("pixel %v not covered", p)
		}
	}
}

func TestExecute_AutoContrast(t *testing.T) {
	tests := []struct {
		name   string
		bg     color.Color
		fill   color.Color
		stroke color.Color
	}{
		{"dark photo", color.Black, contrast.White, contrast.DarkStroke},
		{"bright photo", color.White, contrast.Black, contrast.LightStroke},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stage, renderer := newTestStage(nil)
			result, err := stage.Execute(context.Background(), testInput(tt.bg))
			if err != nil {
				t.Fatalf("Execute failed: %v", err)
			}
			if result.Fill.Fill != tt.fill {
				t.Errorf("expected fill %v, got %v", tt.fill, result.Fill.Fill)
			}
			for _, call := range renderer.Surfaces[0].Texts {
				switch call.Op {
				case "fill":
					if call.Style.Color != tt.fill {
						t.Errorf("fill pass color %v", call.Style.Color)
					}
				case "stroke":
					if call.Style.Color != tt.stroke {
						t.Errorf("stroke pass color %v", call.Style.Color)
					}
				}
			}
		})
	}
}

func TestExecute_ExplicitColor(t *testing.T) {
	stage, renderer := newTestStage(nil)
	input := testInput(color.White)
	input.Layout.AutoContrast = false
	input.Layout.TextColor = color.RGBA{R: 255, A: 255}

	result, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Fill.Source != pipeline.FillExplicit {
		t.Errorf("expected explicit fill, got %s", result.Fill.Source)
	}
	if len(renderer.Surfaces[0].Reads) != 0 {
		t.Error("expected no pixel sampling with auto-contrast off")
	}
}

func TestExecute_StrokeBeneathFill(t *testing.T) {
	stage, renderer := newTestStage(nil)
	input := testInput(color.Black)
	input.Text = "one\ntwo\nthree"

	result, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	texts := renderer.Surfaces[0].Texts
	if len(texts) != 6 {
		t.Fatalf("expected 3 stroke + 3 fill calls, got %d", len(texts))
	}
	wantOrder := []string{"three", "two", "one"}
	for i, want := range wantOrder {
		stroke, fill := texts[2*i], texts[2*i+1]
		if stroke.Op != "stroke" || fill.Op != "fill" {
			t.Errorf("line %q: expected stroke then fill, got %s then %s", want, stroke.Op, fill.Op)
		}
		if stroke.Text != want || fill.Text != want {
			t.Errorf("expected line %q, got %q/%q", want, stroke.Text, fill.Text)
		}
		if stroke.Style.StrokeWidth != contrast.StrokeWidth(result.Block.FontPx) {
			t.Errorf("unexpected stroke width %f", stroke.Style.StrokeWidth)
		}
		if fill.X != float64(input.Layout.Margin) {
			t.Errorf("expected left edge at margin, got %f", fill.X)
		}
	}
}

func TestExecute_NoStroke(t *testing.T) {
	stage, renderer := newTestStage(nil)
	input := testInput(color.Black)
	input.Layout.Stroke = false

	if _, err := stage.Execute(context.Background(), input); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	for _, call := range renderer.Surfaces[0].Texts {
		if call.Op == "stroke" {
			t.Fatal("expected no stroke pass")
		}
	}
}

func TestExecute_VerticalAnchor(t *testing.T) {
	tests := []struct {
		name     string
		vertical float64
	}{
		{"top", 0},
		{"bottom", 1},
		{"below range clamps to top", -3},
		{"above range clamps to bottom", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stage, renderer := newTestStage(nil)
			input := testInput(color.Black)
			input.Text = "first\nsecond"
			input.Layout.Vertical = tt.vertical

			result, err := stage.Execute(context.Background(), input)
			if err != nil {
				t.Fatalf("Execute failed: %v", err)
			}
			layout := input.Layout
			step := float64(result.Block.FontPx) * layout.LineHeight
			fills := renderer.Surfaces[0].Fills()
			if len(fills) != 2 {
				t.Fatalf("expected 2 lines, got %d", len(fills))
			}
			last, first := fills[0], fills[1]

			var wantTop float64
			if tt.vertical <= 0 {
				wantTop = float64(layout.Margin)
			} else {
				wantTop = float64(1350-layout.Margin) - 2*step
			}
			if math.Abs(result.Placement.Top-wantTop) > 1e-9 {
				t.Errorf("expected top %f, got %f", wantTop, result.Placement.Top)
			}
			if math.Abs(last.Y-(wantTop+2*step)) > 1e-9 {
				t.Errorf("expected last baseline %f, got %f", wantTop+2*step, last.Y)
			}
			if math.Abs(first.Y-(last.Y-step)) > 1e-9 {
				t.Errorf("expected first baseline one line above the last, got %f vs %f", first.Y, last.Y)
			}
		})
	}
}

func TestExecute_Deterministic(t *testing.T) {
	input := testInput(color.RGBA{R: 40, G: 90, B: 160, A: 255})
	input.Text = "Короткий, сильний, без води."
	input.Offset = pipeline.PanOffset{X: -120, Y: 3}

	stage1, r1 := newTestStage(nil)
	stage2, r2 := newTestStage(nil)
	a, err := stage1.Execute(context.Background(), input)
	if err != nil {
		t.Fatal(err)
	}
	b, err := stage2.Execute(context.Background(), input)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a.Block, b.Block) || a.Placement != b.Placement || a.Offset != b.Offset {
		t.Error("expected identical layout for identical input")
	}
	if !reflect.DeepEqual(r1.Surfaces[0].Texts, r2.Surfaces[0].Texts) {
		t.Error("expected identical draw calls")
	}
	if !reflect.DeepEqual(a.Image, b.Image) {
		t.Error("expected identical raster")
	}
}

func TestExecute_EmptyText(t *testing.T) {
	stage, renderer := newTestStage(nil)
	input := testInput(color.Black)
	input.Text = ""

	result, err := stage.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(result.Block.Lines) != 0 || len(renderer.Surfaces[0].Texts) != 0 {
		t.Error("expected no lines to be drawn")
	}
	if result.Image == nil {
		t.Error("expected the background to be rendered")
	}
}

func TestExecute_DebugSink(t *testing.T) {
	sink := mocks.NewDebugSink(true)
	stage, _ := newTestStage(sink)

	if _, err := stage.Execute(context.Background(), testInput(color.Black)); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if sink.Background == nil || sink.Composed == nil {
		t.Error("expected background and composed images in sink")
	}
	if len(sink.Layout) == 0 {
		t.Error("expected layout dump in sink")
	}
}

func TestPlace(t *testing.T) {
	layout := pipeline.DefaultLayoutConfig()
	layout.Margin = 60
	layout.LineHeight = 1.5
	block := pipeline.TextBlock{Lines: []string{"a", "b"}, FontPx: 40}

	layout.Vertical = 0.5
	p := Place(1350, layout, block)
	// available 1230, block 120, top = 60 + 555
	if p.Top != 615 || p.LastBaseline != 735 {
		t.Errorf("unexpected placement %+v", p)
	}
	if got := Baseline(p, 0, 2, 40, 1.5); got != 675 {
		t.Errorf("expected first baseline 675, got %f", got)
	}
}
