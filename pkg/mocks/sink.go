package mocks

import (
	"image"
	"sync"

	"github.com/user/captionframe/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	Layout     []byte
	Background image.Image
	Composed   image.Image
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{enabled: enabled}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveLayout(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Layout = data
	return nil
}

func (m *DebugSink) SaveBackground(img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Background = img
	return nil
}

func (m *DebugSink) SaveComposed(img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Composed = img
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
