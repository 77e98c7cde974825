// Package pipeline provides the stage abstraction and the data model shared
// by the captionframe rendering stages.
package pipeline

import (
	"context"
)

// Stage is one step of a render job. Implementations must not keep state
// between calls; everything a pass needs arrives in input.
type Stage[In, Out any] interface {
	Execute(ctx context.Context, input In) (Out, error)
}

// StageFunc lets a plain function serve as a Stage, mostly in tests.
type StageFunc[In, Out any] func(ctx context.Context, input In) (Out, error)

// Execute implements Stage.
func (f StageFunc[In, Out]) Execute(ctx context.Context, input In) (Out, error) {
	return f(ctx, input)
}
