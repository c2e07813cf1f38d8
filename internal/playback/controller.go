package playback

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultBaseInterval = time.Second
	DefaultSpeed        = 1.0
)

// State is a snapshot of a controller.
type State struct {
	Step    int
	Length  int
	Playing bool
	Speed   float64
}

// AtEnd reports whether the snapshot sits on the terminal position.
func (s State) AtEnd() bool { return s.Step == s.Length }

// Progress returns the position as a fraction in [0, 1].
func (s State) Progress() float64 {
	if s.Length == 0 {
		return 1
	}
	return float64(s.Step) / float64(s.Length)
}

// Controls is the surface handed to renderers: the current snapshot plus
// the operations bound to the controller that produced it.
type Controls struct {
	State

	Play         func()
	Pause        func()
	StepForward  func()
	StepBackward func()
	Reset        func()
	Seek         func(n int)
	SetSpeed     func(s float64)
}

type Option func(*Controller)

// WithScheduler replaces the runtime timer.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		if s != nil {
			c.sched = s
		}
	}
}

// WithBaseInterval sets the tick interval at speed 1. Non-positive values are ignored.
func WithBaseInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.base = d
		}
	}
}

// WithSpeed sets the initial speed multiplier. Invalid values are ignored.
func WithSpeed(s float64) Option {
	return func(c *Controller) {
		if validSpeed(s) {
			c.speed = s
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithOnChange registers a hook invoked after every effective state change.
func WithOnChange(fn func(State)) Option {
	return func(c *Controller) { c.onChange = fn }
}

// Controller is the playback state machine over [0, length].
type Controller struct {
	mu sync.Mutex

	id       string
	length   int
	step     int
	playing  bool
	speed    float64
	base     time.Duration
	sched    Scheduler
	timer    Timer
	gen      uint64
	disposed bool
	onChange func(State)
	log      *slog.Logger
}

// New creates an idle controller at step 0. A negative length is treated as 0.
func New(length int, opts ...Option) *Controller {
	if length < 0 {
		length = 0
	}
	c := &Controller{
		id:     uuid.NewString(),
		length: length,
		speed:  DefaultSpeed,
		base:   DefaultBaseInterval,
		sched:  RealScheduler{},
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("controller", c.id, "length", length)
	return c
}

// ID identifies the controller in logs.
func (c *Controller) ID() string { return c.id }

// SetOnChange replaces the change hook.
func (c *Controller) SetOnChange(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checkLocked()
	c.onChange = fn
}

// State returns the current snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checkLocked()
	return c.stateLocked()
}

// Interval returns the current tick interval.
func (c *Controller) Interval() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checkLocked()
	return c.intervalLocked()
}

// Controls returns the renderer surface for the current state.
func (c *Controller) Controls() Controls {
	return Controls{
		State:        c.State(),
		Play:         c.Play,
		Pause:        c.Pause,
		StepForward:  c.StepForward,
		StepBackward: c.StepBackward,
		Reset:        c.Reset,
		Seek:         c.Seek,
		SetSpeed:     c.SetSpeed,
	}
}

// Play starts auto-advance. It is a no-op on the terminal position and
// while already playing.
func (c *Controller) Play() {
	c.update("play", func() {
		if c.playing || c.step == c.length {
			return
		}
		c.playing = true
		c.armLocked()
	})
}

func (c *Controller) Pause() {
	c.update("pause", func() {
		c.playing = false
		c.cancelLocked()
	})
}

// Toggle pauses a playing controller and plays an idle one.
func (c *Controller) Toggle() {
	c.update("toggle", func() {
		if c.playing {
			c.playing = false
			c.cancelLocked()
			return
		}
		if c.step == c.length {
			return
		}
		c.playing = true
		c.armLocked()
	})
}

// StepForward moves one step towards the end. While playing, the pending
// tick restarts from the new position; reaching the end stops playback.
func (c *Controller) StepForward() {
	c.update("step_forward", func() {
		if c.step >= c.length {
			return
		}
		c.step++
		if !c.playing {
			return
		}
		if c.step == c.length {
			c.playing = false
			c.cancelLocked()
			return
		}
		c.armLocked()
	})
}

// StepBackward moves one step towards the start, restarting the pending
// tick while playing.
func (c *Controller) StepBackward() {
	c.update("step_backward", func() {
		if c.step == 0 {
			return
		}
		c.step--
		if c.playing {
			c.armLocked()
		}
	})
}

// Reset pauses and rewinds to step 0.
func (c *Controller) Reset() {
	c.update("reset", func() {
		c.cancelLocked()
		c.playing = false
		c.step = 0
	})
}

// Seek pauses and jumps to n clamped into [0, length].
func (c *Controller) Seek(n int) {
	c.update("seek", func() {
		c.cancelLocked()
		c.playing = false
		c.step = clamp(n, 0, c.length)
	})
}

// SetSpeed changes the speed multiplier. Non-positive and non-finite values
// are ignored. While playing, the pending tick is rescheduled at the new
// interval.
func (c *Controller) SetSpeed(s float64) {
	if !validSpeed(s) {
		c.ensureLive()
		c.log.Debug("speed rejected", "speed", s)
		return
	}
	c.update("set_speed", func() {
		c.speed = s
		if c.playing {
			c.armLocked()
		}
	})
}

// Dispose cancels any pending tick and retires the controller. Further
// operations panic with ErrDisposed. Dispose itself may be repeated.
func (c *Controller) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return
	}
	c.cancelLocked()
	c.playing = false
	c.disposed = true
	c.onChange = nil
	c.log.Debug("disposed", "step", c.step)
}

// Disposed reports whether Dispose has been called.
func (c *Controller) Disposed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disposed
}

func (c *Controller) update(op string, fn func()) {
	before, after, notify := c.apply(fn)
	if after == before {
		return
	}
	c.log.Debug(op, "step", after.Step, "playing", after.Playing, "speed", after.Speed)
	if notify != nil {
		notify(after)
	}
}

func (c *Controller) apply(fn func()) (before, after State, notify func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checkLocked()
	before = c.stateLocked()
	fn()
	return before, c.stateLocked(), c.onChange
}

func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	if c.disposed || !c.playing || gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	if c.step < c.length {
		c.step++
	}
	if c.step == c.length {
		c.playing = false
		c.gen++
	} else {
		c.armLocked()
	}
	after := c.stateLocked()
	notify := c.onChange
	c.mu.Unlock()

	c.log.Debug("tick", "step", after.Step, "playing", after.Playing)
	if notify != nil {
		notify(after)
	}
}

// armLocked replaces the pending tick with a fresh one.
func (c *Controller) armLocked() {
	c.cancelLocked()
	gen := c.gen
	c.timer = c.sched.AfterFunc(c.intervalLocked(), func() { c.tick(gen) })
}

// cancelLocked stops the pending tick and invalidates any tick that has
// already fired but not yet acquired the lock.
func (c *Controller) cancelLocked() {
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// intervalLocked saturates at the Duration range; tiny speeds must not wrap.
func (c *Controller) intervalLocked() time.Duration {
	f := float64(c.base) / c.speed
	switch {
	case f >= math.MaxInt64:
		return time.Duration(math.MaxInt64)
	case f < 1:
		return 1
	}
	return time.Duration(f)
}

func (c *Controller) stateLocked() State {
	return State{Step: c.step, Length: c.length, Playing: c.playing, Speed: c.speed}
}

func (c *Controller) ensureLive() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checkLocked()
}

// checkLocked panics on a disposed controller. Callers hold mu and release
// it with a deferred Unlock.
func (c *Controller) checkLocked() {
	if c.disposed {
		panic(ErrDisposed)
	}
}

func validSpeed(s float64) bool {
	return s > 0 && !math.IsInf(s, 1)
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
