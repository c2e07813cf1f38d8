// Package trace holds precomputed, immutable algorithm traces.
//
// A trace is built once by a [Producer] before playback starts. Playback
// positions index frames directly: step k shows frame k, and the final
// frame is the terminal position, so a trace of n frames plays over
// [0, n-1].
package trace

import (
	"errors"
	"fmt"
)

// ErrNilProducer is returned by Build when no producer is given.
var ErrNilProducer = errors.New("trace: nil producer")

// Producer computes every frame of a trace in one synchronous call.
type Producer[S any] func() ([]S, error)

// Trace is an ordered, read-only sequence of frames.
type Trace[S any] struct {
	steps []S
}

// New wraps already computed frames. The slice is copied.
func New[S any](steps []S) *Trace[S] {
	c := make([]S, len(steps))
	copy(c, steps)
	return &Trace[S]{steps: c}
}

// Build runs p once and wraps its frames.
func Build[S any](p Producer[S]) (*Trace[S], error) {
	if p == nil {
		return nil, ErrNilProducer
	}
	steps, err := p()
	if err != nil {
		return nil, fmt.Errorf("trace: produce: %w", err)
	}
	return New(steps), nil
}

// Len returns the number of frames.
func (t *Trace[S]) Len() int { return len(t.steps) }

// PlaybackLength is the terminal playback position for this trace.
func (t *Trace[S]) PlaybackLength() int {
	if len(t.steps) == 0 {
		return 0
	}
	return len(t.steps) - 1
}

// At returns the frame shown at a playback position.
func (t *Trace[S]) At(step int) (S, bool) {
	var zero S
	if step < 0 || step >= len(t.steps) {
		return zero, false
	}
	return t.steps[step], true
}

// Last returns the final frame.
func (t *Trace[S]) Last() (S, bool) {
	return t.At(len(t.steps) - 1)
}

// Steps returns a copy of all frames.
func (t *Trace[S]) Steps() []S {
	c := make([]S, len(t.steps))
	copy(c, t.steps)
	return c
}
