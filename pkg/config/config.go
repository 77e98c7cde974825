// Package config provides configuration loading and management.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/ideamans/go-l10n"
	"gopkg.in/yaml.v3"

	"github.com/user/captionframe/pkg/orchestrator"
	"github.com/user/captionframe/pkg/pipeline"
	"github.com/user/captionframe/pkg/ports"
)

// Config represents the full configuration for captionframe.
type Config struct {
	// Input/Output
	Image    string `yaml:"image"`
	Output   string `yaml:"output"`
	Text     string `yaml:"text"`
	TextFile string `yaml:"text_file"`

	// Frame
	Preset string             `yaml:"preset"`
	Pan    pipeline.PanOffset `yaml:"pan"`

	// Font
	FontDir    string `yaml:"font_dir"`
	FontFamily string `yaml:"font_family"`
	FontWeight int    `yaml:"font_weight"`

	// Layout
	LineHeight  float64 `yaml:"line_height"`
	Margin      int     `yaml:"margin"`
	Vertical    float64 `yaml:"vertical"`
	MaxTextArea float64 `yaml:"max_text_area"`
	MaxFontPx   int     `yaml:"max_font_px"`

	// Color
	AutoContrast bool   `yaml:"auto_contrast"`
	TextColor    string `yaml:"text_color"`
	Stroke       bool   `yaml:"stroke"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
	Summary  string `yaml:"summary"`
	LogLevel string `yaml:"log_level"`
}

// Ranges accepted for the numeric settings.
const (
	MinFontWeight  = 300
	MaxFontWeight  = 900
	MinLineHeight  = 1.0
	MaxLineHeight  = 1.6
	MinMargin      = 16
	MaxMargin      = 120
	MinVertical    = 0.0
	MaxVertical    = 1.0
	MinMaxTextArea = 0.3
	MaxMaxTextArea = 0.6
	MinMaxFontPx   = 40
	MaxMaxFontPx   = 280
)

// Defaults returns a Config with default values.
func Defaults() Config {
	layout := pipeline.DefaultLayoutConfig()
	return Config{
		Preset: pipeline.FramePortrait.Key,

		FontFamily: layout.FontFamily,
		FontWeight: layout.FontWeight,

		LineHeight:  layout.LineHeight,
		Margin:      layout.Margin,
		Vertical:    layout.Vertical,
		MaxTextArea: layout.MaxTextArea,
		MaxFontPx:   layout.MaxFontPx,

		AutoContrast: layout.AutoContrast,
		TextColor:    "#ffffff",
		Stroke:       layout.Stroke,

		DebugDir: "./debug",
		LogLevel: "info",
	}
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
// Unknown keys are rejected.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Normalize clamps every setting into its accepted range, logging a warning
// for each value it changes.
func (c Config) Normalize(log ports.Logger) Config {
	warn := func(name string, v interface{}) {
		log.Warn(l10n.F("%s out of range, clamped to %v", name, v))
	}

	if _, ok := pipeline.FrameByKey(c.Preset); !ok {
		log.Warn(l10n.F("Unknown frame preset %q, using %s", c.Preset, pipeline.FramePortrait.Key))
		c.Preset = pipeline.FramePortrait.Key
	}

	if w := roundWeight(c.FontWeight); w != c.FontWeight {
		c.FontWeight = w
		warn("font_weight", w)
	}
	if v := clampInt(c.Margin, MinMargin, MaxMargin); v != c.Margin {
		c.Margin = v
		warn("margin", v)
	}
	if v := clampInt(c.MaxFontPx, MinMaxFontPx, MaxMaxFontPx); v != c.MaxFontPx {
		c.MaxFontPx = v
		warn("max_font_px", v)
	}
	if v := clampFloat(c.LineHeight, MinLineHeight, MaxLineHeight); v != c.LineHeight {
		c.LineHeight = v
		warn("line_height", v)
	}
	if v := clampFloat(c.Vertical, MinVertical, MaxVertical); v != c.Vertical {
		c.Vertical = v
		warn("vertical", v)
	}
	if v := clampFloat(c.MaxTextArea, MinMaxTextArea, MaxMaxTextArea); v != c.MaxTextArea {
		c.MaxTextArea = v
		warn("max_text_area", v)
	}
	if _, err := ParseColor(c.TextColor); err != nil {
		warn("text_color", "#ffffff")
		c.TextColor = "#ffffff"
	}

	return c
}

// Frame returns the frame preset named by Preset, or portrait.
func (c Config) Frame() pipeline.Frame {
	if f, ok := pipeline.FrameByKey(c.Preset); ok {
		return f
	}
	return pipeline.FramePortrait
}

// LayoutConfig converts the layout settings.
func (c Config) LayoutConfig() pipeline.LayoutConfig {
	fill, err := ParseColor(c.TextColor)
	if err != nil {
		fill = color.White
	}
	return pipeline.LayoutConfig{
		Margin:       c.Margin,
		Vertical:     c.Vertical,
		MaxTextArea:  c.MaxTextArea,
		MaxFontPx:    c.MaxFontPx,
		LineHeight:   c.LineHeight,
		FontFamily:   c.FontFamily,
		FontWeight:   c.FontWeight,
		Stroke:       c.Stroke,
		AutoContrast: c.AutoContrast,
		TextColor:    fill,
	}
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	return orchestrator.Config{
		ImagePath:  c.Image,
		Text:       c.Text,
		OutputPath: c.Output,
		Frame:      c.Frame(),
		Layout:     c.LayoutConfig(),
		Pan:        c.Pan,
	}
}

// ParseColor parses a #rgb or #rrggbb hex color. The leading # is optional.
func ParseColor(hex string) (color.Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return nil, fmt.Errorf("invalid color %q", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q", hex)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// ParsePan parses a "dx,dy" pan offset.
func ParsePan(s string) (pipeline.PanOffset, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return pipeline.PanOffset{}, fmt.Errorf("invalid pan %q, want dx,dy", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return pipeline.PanOffset{}, fmt.Errorf("invalid pan %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return pipeline.PanOffset{}, fmt.Errorf("invalid pan %q: %w", s, err)
	}
	return pipeline.PanOffset{X: x, Y: y}, nil
}

// roundWeight rounds to a multiple of 100 inside the weight range.
func roundWeight(w int) int {
	r := int(math.Round(float64(w)/100)) * 100
	return clampInt(r, MinFontWeight, MaxFontWeight)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
