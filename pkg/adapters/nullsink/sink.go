// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"image"

	"github.com/user/captionframe/pkg/ports"
)

// Sink discards all debug output.
type Sink struct{}

// New creates a new Sink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false, so callers can skip building debug payloads.
func (s *Sink) Enabled() bool { return false }

func (s *Sink) SaveLayout(data []byte) error         { return nil }
func (s *Sink) SaveBackground(img image.Image) error { return nil }
func (s *Sink) SaveComposed(img image.Image) error   { return nil }

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
