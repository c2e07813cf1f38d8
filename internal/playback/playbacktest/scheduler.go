// Package playbacktest provides a manual timer source for exercising
// playback controllers without real time passing.
package playbacktest

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/san-kum/algoviz/internal/playback"
)

// Scheduler is a virtual clock. Timers only fire from Advance or FireNext,
// on the calling goroutine.
type Scheduler struct {
	mu        sync.Mutex
	now       time.Duration
	seq       int
	scheduled int
	stopped   int
	pending   []*timer
}

type timer struct {
	s   *Scheduler
	at  time.Duration
	seq int
	f   func()
	off bool
}

func New() *Scheduler { return &Scheduler{} }

func (s *Scheduler) AfterFunc(d time.Duration, f func()) playback.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d < 0 {
		d = 0
	}
	at := s.now + d
	if d > math.MaxInt64-s.now {
		at = math.MaxInt64
	}
	t := &timer{s: s, at: at, seq: s.seq, f: f}
	s.seq++
	s.scheduled++
	s.pending = append(s.pending, t)
	return t
}

func (t *timer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.off {
		return false
	}
	t.off = true
	t.s.stopped++
	t.s.remove(t)
	return true
}

// Now returns the virtual time elapsed since creation.
func (s *Scheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Pending returns the number of armed timers.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Scheduled returns the number of timers ever armed.
func (s *Scheduler) Scheduled() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scheduled
}

// Stopped returns the number of timers canceled before firing.
func (s *Scheduler) Stopped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}

// NextDeadline returns the time until the earliest pending timer.
func (s *Scheduler) NextDeadline() (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.earliest()
	if t == nil {
		return 0, false
	}
	return t.at - s.now, true
}

// Advance moves the clock forward by d, firing every timer that falls due
// in deadline order, including timers armed by earlier callbacks. It
// returns the number of callbacks run.
func (s *Scheduler) Advance(d time.Duration) int {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	fired := 0
	for {
		s.mu.Lock()
		t := s.earliest()
		if t == nil || t.at > target {
			s.now = target
			s.mu.Unlock()
			return fired
		}
		s.now = t.at
		t.off = true
		s.remove(t)
		s.mu.Unlock()

		t.f()
		fired++
	}
}

// FireNext jumps to the earliest pending timer and runs it.
func (s *Scheduler) FireNext() bool {
	d, ok := s.NextDeadline()
	if !ok {
		return false
	}
	s.mu.Lock()
	target := s.now + d
	t := s.earliest()
	s.now = target
	t.off = true
	s.remove(t)
	s.mu.Unlock()

	t.f()
	return true
}

func (s *Scheduler) earliest() *timer {
	if len(s.pending) == 0 {
		return nil
	}
	sort.SliceStable(s.pending, func(i, j int) bool {
		if s.pending[i].at != s.pending[j].at {
			return s.pending[i].at < s.pending[j].at
		}
		return s.pending[i].seq < s.pending[j].seq
	})
	return s.pending[0]
}

func (s *Scheduler) remove(t *timer) {
	for i, p := range s.pending {
		if p == t {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}
