// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/captionframe/pkg/ports"
)

// File names written under the sink's directory.
const (
	LayoutFile     = "layout.yaml"
	BackgroundFile = "background.png"
	ComposedFile   = "composed.png"
)

// Sink saves the intermediate results of a render pass to a directory.
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a Sink that writes into baseDir.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveLayout saves the layout decisions as YAML.
func (s *Sink) SaveLayout(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, LayoutFile), data)
}

// SaveBackground saves the cover-fitted bitmap before any text is drawn.
func (s *Sink) SaveBackground(img image.Image) error {
	return s.savePNG(BackgroundFile, img)
}

// SaveComposed saves the finished raster.
func (s *Sink) SaveComposed(img image.Image) error {
	return s.savePNG(ComposedFile, img)
}

func (s *Sink) savePNG(name string, img image.Image) error {
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return s.fs.WriteFile(filepath.Join(s.baseDir, name), data)
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
