package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
// It allows saving intermediate render results for debugging purposes.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveLayout saves the layout decisions of a render pass as YAML.
	SaveLayout(data []byte) error

	// SaveBackground saves the surface after the bitmap pass, before text.
	SaveBackground(img image.Image) error

	// SaveComposed saves the finished raster.
	SaveComposed(img image.Image) error
}
