// Package orchestrator runs one export job: load a photo, render the caption
// over it and write the finished PNG.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ideamans/go-l10n"

	"github.com/user/captionframe/pkg/editor"
	"github.com/user/captionframe/pkg/pipeline"
	"github.com/user/captionframe/pkg/ports"
)

// ErrNoImage is returned when a job has no photo to render.
var ErrNoImage = errors.New("no image given")

// Config contains all configuration for one export job.
type Config struct {
	// Input
	ImagePath string
	Text      string

	// Output; empty means OutputName(Frame)
	OutputPath string

	Frame  pipeline.Frame
	Layout pipeline.LayoutConfig

	// Pan is the drag applied to the photo before export. It is clamped the
	// same way an interactive drag is.
	Pan pipeline.PanOffset
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Frame:  pipeline.FramePortrait,
		Layout: pipeline.DefaultLayoutConfig(),
	}
}

// OutputName returns the default file name for frame.
func OutputName(frame pipeline.Frame) string {
	return fmt.Sprintf("ig_%s.png", frame.Key)
}

// Orchestrator wires the compose stage to the file system.
type Orchestrator struct {
	composeStage pipeline.Stage[pipeline.ComposeInput, pipeline.ComposeResult]
	renderer     ports.Renderer
	fs           ports.FileSystem
	logger       ports.Logger
}

// New creates a new Orchestrator.
func New(
	composeStage pipeline.Stage[pipeline.ComposeInput, pipeline.ComposeResult],
	renderer ports.Renderer,
	fs ports.FileSystem,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		composeStage: composeStage,
		renderer:     renderer,
		fs:           fs,
		logger:       logger,
	}
}

// Run executes the export job.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	started := time.Now()

	if config.ImagePath == "" {
		return RunResult{}, ErrNoImage
	}
	outputPath := config.OutputPath
	if outputPath == "" {
		outputPath = OutputName(config.Frame)
	}

	// 1. Load the photo
	o.logger.Info(l10n.F("Loading image %s", config.ImagePath))
	data, err := o.fs.ReadFile(config.ImagePath)
	if err != nil {
		o.logger.Error(l10n.F("Failed to read image: %s", err))
		return RunResult{}, fmt.Errorf("read image: %w", err)
	}
	bitmap, err := o.renderer.DecodeImage(data)
	if err != nil {
		o.logger.Error(l10n.F("Failed to decode image: %s", err))
		return RunResult{}, fmt.Errorf("decode image: %w", err)
	}
	bounds := bitmap.Bounds()
	o.logger.Info(l10n.F("Image decoded: %dx%d", bounds.Dx(), bounds.Dy()))

	// 2. Render, with the pan applied as a drag
	o.logger.Info(l10n.F("Rendering %s onto %s (%dx%d)...",
		config.ImagePath, config.Frame.Label, config.Frame.Width, config.Frame.Height))
	ed := editor.New(o.composeStage, o.logger, editor.State{
		Frame:  config.Frame,
		Bitmap: bitmap,
		Text:   config.Text,
		Layout: config.Layout,
	})
	composed, err := ed.Pan(ctx, config.Pan.X, config.Pan.Y)
	if err != nil {
		o.logger.Error(l10n.F("Failed to render: %s", err))
		return RunResult{}, fmt.Errorf("compose stage: %w", err)
	}

	// 3. Encode and write
	png, err := o.renderer.EncodeImage(composed.Image, ports.FormatPNG, 0)
	if err != nil {
		o.logger.Error(l10n.F("Failed to encode image: %s", err))
		return RunResult{}, fmt.Errorf("encode output: %w", err)
	}
	if err := o.fs.WriteFile(outputPath, png); err != nil {
		o.logger.Error(l10n.F("Failed to write output: %s", err))
		return RunResult{}, fmt.Errorf("write output: %w", err)
	}

	o.logger.Info(l10n.F("Output saved to %s", outputPath))
	o.logger.Info(l10n.T("Render completed successfully"))

	return RunResult{
		ImagePath:    config.ImagePath,
		OutputPath:   outputPath,
		SourceWidth:  bounds.Dx(),
		SourceHeight: bounds.Dy(),
		Frame:        config.Frame,
		Layout:       config.Layout,
		Offset:       composed.Offset,
		Block:        composed.Block,
		Fill:         composed.Fill,
		FileSize:     int64(len(png)),
		DurationMs:   int(time.Since(started).Milliseconds()),
	}, nil
}

// RunResult contains the results of an export job for summary generation.
type RunResult struct {
	ImagePath  string
	OutputPath string

	// Source photo size
	SourceWidth  int
	SourceHeight int

	Frame  pipeline.Frame
	Layout pipeline.LayoutConfig

	// Layout decisions of the final pass
	Offset pipeline.PanOffset
	Block  pipeline.TextBlock
	Fill   pipeline.FillDecision

	FileSize   int64
	DurationMs int
}
