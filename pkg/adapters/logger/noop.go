package logger

import "github.com/user/captionframe/pkg/ports"

// NoopLogger discards everything. It backs --quiet and most tests.
type NoopLogger struct{}

// NewNoop creates a new no-op logger.
func NewNoop() *NoopLogger { return &NoopLogger{} }

func (l *NoopLogger) Debug(msg string, args ...interface{}) {}
func (l *NoopLogger) Info(msg string, args ...interface{})  {}
func (l *NoopLogger) Warn(msg string, args ...interface{})  {}
func (l *NoopLogger) Error(msg string, args ...interface{}) {}

// WithComponent returns l; there is no prefix to add.
func (l *NoopLogger) WithComponent(component string) ports.Logger { return l }

var _ ports.Logger = (*NoopLogger)(nil)
