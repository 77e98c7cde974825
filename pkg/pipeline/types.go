package pipeline

import (
	"image"
	"image/color"
)

// =============================================================================
// Frame
// =============================================================================

// Frame is the target raster size of one render pass.
type Frame struct {
	Key    string
	Label  string
	Width  int
	Height int
}

// Frame presets for the supported social-media aspect ratios.
var (
	FramePortrait = Frame{Key: "portrait", Label: "Portrait 4:5 (1080×1350)", Width: 1080, Height: 1350}
	FrameSquare   = Frame{Key: "square", Label: "Square 1:1 (1080×1080)", Width: 1080, Height: 1080}
	FrameStory    = Frame{Key: "story", Label: "Story 9:16 (1080×1920)", Width: 1080, Height: 1920}
)

// FramePresets lists the presets in display order.
func FramePresets() []Frame {
	return []Frame{FramePortrait, FrameSquare, FrameStory}
}

// FrameByKey looks up a preset by its key.
func FrameByKey(key string) (Frame, bool) {
	for _, f := range FramePresets() {
		if f.Key == key {
			return f, true
		}
	}
	return Frame{}, false
}

// =============================================================================
// Cover fit
// =============================================================================

// PanOffset is the user's pan delta in pixels, relative to the centered
// cover position.
type PanOffset struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// CoverRect is the size and centered position at which a bitmap covers a frame.
type CoverRect struct {
	DrawWidth  float64 `yaml:"draw_width"`
	DrawHeight float64 `yaml:"draw_height"`
	BaseX      float64 `yaml:"base_x"`
	BaseY      float64 `yaml:"base_y"`
}

// =============================================================================
// Text layout
// =============================================================================

// LayoutConfig holds the text layout settings of a render pass.
type LayoutConfig struct {
	Margin       int         // Margin around the text block (px)
	Vertical     float64     // Vertical anchor: 0 = top, 1 = bottom
	MaxTextArea  float64     // Text zone height as a fraction of frame height
	MaxFontPx    int         // Upper bound for the font size search
	LineHeight   float64     // Line-height multiplier
	FontFamily   string      // Font family identifier
	FontWeight   int         // 300-900
	Stroke       bool        // Draw an outline under each line
	AutoContrast bool        // Pick black/white from background luminance
	TextColor    color.Color // Used when AutoContrast is false
}

// DefaultLayoutConfig returns the layout used when nothing is configured.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		Margin:       60,
		Vertical:     0.93,
		MaxTextArea:  0.6,
		MaxFontPx:    44,
		LineHeight:   1.34,
		FontFamily:   "Montserrat",
		FontWeight:   600,
		Stroke:       true,
		AutoContrast: true,
		TextColor:    color.White,
	}
}

// TextBlock is the wrapped text and the font size chosen for it.
type TextBlock struct {
	Lines  []string `yaml:"lines"`
	FontPx int      `yaml:"font_px"`
	// Overflow is set when no size in range fit the zone and the
	// fallback size was used.
	Overflow bool `yaml:"overflow"`
}

// Height returns the block height for the given line-height multiplier.
func (b TextBlock) Height(lineHeight float64) float64 {
	return float64(len(b.Lines)) * float64(b.FontPx) * lineHeight
}

// =============================================================================
// Fill
// =============================================================================

// FillSource tells where a fill color came from.
type FillSource int

const (
	FillAutoWhite FillSource = iota
	FillAutoBlack
	FillExplicit
)

// String returns the string representation of the fill source.
func (s FillSource) String() string {
	switch s {
	case FillAutoWhite:
		return "auto-white"
	case FillAutoBlack:
		return "auto-black"
	case FillExplicit:
		return "explicit"
	default:
		return "unknown"
	}
}

// FillDecision is the text fill color of a render pass.
type FillDecision struct {
	Fill   color.Color
	Source FillSource
}

// =============================================================================
// Compose Stage Types
// =============================================================================

// ComposeInput is the snapshot rendered by one compositor pass.
type ComposeInput struct {
	Frame  Frame
	Bitmap image.Image // nil when no photo is loaded
	Text   string
	Layout LayoutConfig
	Offset PanOffset
}

// Placement is the vertical position of the text block.
type Placement struct {
	Top          float64 `yaml:"top"`
	LastBaseline float64 `yaml:"last_baseline"`
}

// ComposeResult contains the finished raster and the layout decisions.
type ComposeResult struct {
	// Skipped is true when there was no bitmap and nothing was drawn.
	Skipped   bool
	Image     image.Image
	Cover     CoverRect
	Offset    PanOffset // clamped
	Block     TextBlock
	Fill      FillDecision
	Placement Placement
}
