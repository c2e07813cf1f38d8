// Package lesson binds a trace to the playback controller that walks it.
package lesson

import (
	"context"

	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/trace"
)

// Lesson owns one trace and one live controller sized to it.
type Lesson[S any] struct {
	trace    *trace.Trace[S]
	ctrl     *playback.Controller
	opts     []playback.Option
	onChange func(playback.State)
}

// New creates a controller over tr's playback length.
func New[S any](tr *trace.Trace[S], opts ...playback.Option) *Lesson[S] {
	l := &Lesson[S]{trace: tr, opts: opts}
	l.ctrl = playback.New(tr.PlaybackLength(), opts...)
	return l
}

func (l *Lesson[S]) Trace() *trace.Trace[S] { return l.trace }

func (l *Lesson[S]) Controller() *playback.Controller { return l.ctrl }

func (l *Lesson[S]) State() playback.State { return l.ctrl.State() }

func (l *Lesson[S]) Controls() playback.Controls { return l.ctrl.Controls() }

// Current returns the frame at the controller's position.
func (l *Lesson[S]) Current() (S, bool) {
	return l.trace.At(l.ctrl.State().Step)
}

// OnChange installs a hook that survives Rebuild.
func (l *Lesson[S]) OnChange(fn func(playback.State)) {
	l.onChange = fn
	l.ctrl.SetOnChange(fn)
}

// Rebuild swaps in a new trace. The old controller is disposed and a fresh
// one is created; only the speed carries over.
func (l *Lesson[S]) Rebuild(tr *trace.Trace[S]) {
	speed := l.ctrl.State().Speed
	l.ctrl.Dispose()

	opts := append(append([]playback.Option{}, l.opts...), playback.WithSpeed(speed))
	l.trace = tr
	l.ctrl = playback.New(tr.PlaybackLength(), opts...)
	if l.onChange != nil {
		l.ctrl.SetOnChange(l.onChange)
		l.onChange(l.ctrl.State())
	}
}

// Close disposes the controller.
func (l *Lesson[S]) Close() {
	l.ctrl.Dispose()
}

// Replay plays from the current position to the end, calling visit with the
// starting frame and with each frame reached after it. It returns when
// playback stops, or with ctx.Err() once ctx is done, in which case
// playback is paused. The lesson's own change hook is suspended meanwhile.
func (l *Lesson[S]) Replay(ctx context.Context, visit func(playback.State, S)) error {
	ctrl := l.ctrl
	changes := make(chan playback.State, 1)
	ctrl.SetOnChange(func(s playback.State) {
		select {
		case changes <- s:
		case <-ctx.Done():
		}
	})
	defer func() {
		if ctrl.Disposed() {
			return
		}
		ctrl.Pause()
		ctrl.SetOnChange(l.onChange)
	}()

	st := ctrl.State()
	frame, _ := l.trace.At(st.Step)
	visit(st, frame)
	if st.AtEnd() {
		return nil
	}

	ctrl.Play()
	last := st.Step
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case s := <-changes:
			if s.Step != last {
				last = s.Step
				frame, _ := l.trace.At(s.Step)
				visit(s, frame)
			}
			if !s.Playing {
				return nil
			}
		}
	}
}
