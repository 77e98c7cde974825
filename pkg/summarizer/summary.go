// Package summarizer provides summary generation for render results.
package summarizer

import "time"

// Summary contains everything worth reporting about one export.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	Source SourceInfo
	Frame  FrameInfo
	Layout LayoutInfo
	Text   TextInfo
	Output OutputInfo
}

// SourceInfo describes the input photo.
type SourceInfo struct {
	Path   string
	Width  int
	Height int
}

// FrameInfo describes the output frame.
type FrameInfo struct {
	Key    string
	Label  string
	Width  int
	Height int
}

// LayoutInfo contains the layout settings used.
type LayoutInfo struct {
	FontFamily  string
	FontWeight  int
	LineHeight  float64
	Margin      int
	Vertical    float64
	MaxTextArea float64
	MaxFontPx   int
	Stroke      bool
}

// TextInfo contains the text layout decisions.
type TextInfo struct {
	Lines    []string
	FontPx   int
	Overflow bool
	// Fill describes how the text color was chosen.
	Fill string
}

// OutputInfo describes the written file.
type OutputInfo struct {
	Path       string
	FileSize   int64
	OffsetX    float64
	OffsetY    float64
	DurationMs int
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithSource sets the input photo.
func (b *Builder) WithSource(path string, width, height int) *Builder {
	b.summary.Source = SourceInfo{Path: path, Width: width, Height: height}
	return b
}

// WithFrame sets the output frame.
func (b *Builder) WithFrame(frame FrameInfo) *Builder {
	b.summary.Frame = frame
	return b
}

// WithLayout sets the layout settings.
func (b *Builder) WithLayout(layout LayoutInfo) *Builder {
	b.summary.Layout = layout
	return b
}

// WithText sets the text layout decisions.
func (b *Builder) WithText(text TextInfo) *Builder {
	b.summary.Text = text
	return b
}

// WithOutput sets the output file details.
func (b *Builder) WithOutput(output OutputInfo) *Builder {
	b.summary.Output = output
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
