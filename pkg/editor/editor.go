// Package editor holds the interactive editing state and the drag-to-pan
// session, and re-renders the frame after every change.
//
// An Editor is not safe for concurrent use. Pointer events and settings
// changes are expected to arrive one at a time, each followed by a full
// synchronous render pass.
package editor

import (
	"context"
	"image"

	"github.com/user/captionframe/pkg/pipeline"
	"github.com/user/captionframe/pkg/ports"
	"github.com/user/captionframe/pkg/stages/cover"
)

// State is everything a render pass reads.
type State struct {
	Frame  pipeline.Frame
	Bitmap image.Image // nil until a photo is loaded
	Text   string
	Layout pipeline.LayoutConfig
	Offset pipeline.PanOffset
}

// NewState returns the initial state: portrait frame, default layout, no
// photo, no text and a centered image.
func NewState() State {
	return State{
		Frame:  pipeline.FramePortrait,
		Layout: pipeline.DefaultLayoutConfig(),
	}
}

// Input converts the state into the compositor's input snapshot.
func (s State) Input() pipeline.ComposeInput {
	return pipeline.ComposeInput{
		Frame:  s.Frame,
		Bitmap: s.Bitmap,
		Text:   s.Text,
		Layout: s.Layout,
		Offset: s.Offset,
	}
}

// Render runs one render pass over s.
func Render(ctx context.Context, stage pipeline.Stage[pipeline.ComposeInput, pipeline.ComposeResult], s State) (pipeline.ComposeResult, error) {
	return stage.Execute(ctx, s.Input())
}

// dragSession remembers where a drag started.
type dragSession struct {
	active      bool
	startX      float64
	startY      float64
	startOffset pipeline.PanOffset
}

// Editor owns a State and re-renders it after every mutation.
type Editor struct {
	stage  pipeline.Stage[pipeline.ComposeInput, pipeline.ComposeResult]
	logger ports.Logger
	state  State
	drag   dragSession
	last   pipeline.ComposeResult
}

// New creates an Editor starting from state.
func New(stage pipeline.Stage[pipeline.ComposeInput, pipeline.ComposeResult], logger ports.Logger, state State) *Editor {
	return &Editor{
		stage:  stage,
		logger: logger.WithComponent("editor"),
		state:  state,
	}
}

// State returns a copy of the current state.
func (e *Editor) State() State { return e.state }

// Result returns the result of the most recent render pass.
func (e *Editor) Result() pipeline.ComposeResult { return e.last }

// Dragging reports whether a drag session is active.
func (e *Editor) Dragging() bool { return e.drag.active }

// Render re-renders the current state.
func (e *Editor) Render(ctx context.Context) (pipeline.ComposeResult, error) {
	result, err := Render(ctx, e.stage, e.state)
	if err != nil {
		return pipeline.ComposeResult{}, err
	}
	e.last = result
	return result, nil
}

// Update applies fn to the state and re-renders.
func (e *Editor) Update(ctx context.Context, fn func(*State)) (pipeline.ComposeResult, error) {
	fn(&e.state)
	return e.Render(ctx)
}

// ResetOffset recenters the photo and re-renders.
func (e *Editor) ResetOffset(ctx context.Context) (pipeline.ComposeResult, error) {
	return e.Update(ctx, func(s *State) { s.Offset = pipeline.PanOffset{} })
}

// PointerDown starts a drag session at the pointer position, given in frame
// pixels. A press while a session is active restarts it from the new point.
func (e *Editor) PointerDown(x, y float64) {
	e.drag = dragSession{
		active:      true,
		startX:      x,
		startY:      y,
		startOffset: e.state.Offset,
	}
}

// PointerMove pans the photo by the pointer's travel since PointerDown,
// clamped so the frame stays covered, and re-renders. It returns false
// without rendering when no session is active or no photo is loaded.
func (e *Editor) PointerMove(ctx context.Context, x, y float64) (bool, error) {
	if !e.drag.active || e.state.Bitmap == nil {
		return false, nil
	}

	desired := pipeline.PanOffset{
		X: e.drag.startOffset.X + (x - e.drag.startX),
		Y: e.drag.startOffset.Y + (y - e.drag.startY),
	}
	b := e.state.Bitmap.Bounds()
	clamped := cover.Clamp(desired, e.state.Frame.Width, e.state.Frame.Height, b.Dx(), b.Dy())
	if clamped != desired {
		e.logger.Debug("Pan offset clamped to %.1f,%.1f", clamped.X, clamped.Y)
	}

	e.state.Offset = clamped
	if _, err := e.Render(ctx); err != nil {
		return true, err
	}
	return true, nil
}

// PointerUp ends the drag session.
func (e *Editor) PointerUp() { e.endDrag() }

// Leave ends the drag session when the pointer leaves the frame.
func (e *Editor) Leave() { e.endDrag() }

// Cancel ends the drag session when the platform cancels the gesture.
func (e *Editor) Cancel() { e.endDrag() }

func (e *Editor) endDrag() {
	e.drag = dragSession{}
}

// Pan performs a whole drag gesture of (dx, dy) starting at the frame origin.
// It is how non-interactive callers apply a pan offset so that it is clamped
// the same way a drag is.
func (e *Editor) Pan(ctx context.Context, dx, dy float64) (pipeline.ComposeResult, error) {
	e.PointerDown(0, 0)
	defer e.PointerUp()

	moved, err := e.PointerMove(ctx, dx, dy)
	if err != nil {
		return pipeline.ComposeResult{}, err
	}
	if !moved {
		return e.Render(ctx)
	}
	return e.last, nil
}
