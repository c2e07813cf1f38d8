package playback_test

import (
	"math"
	"math/rand"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/playback/playbacktest"
)

const interval = 100 * time.Millisecond

// leakyScheduler never cancels anything, standing in for a timer that had
// already fired when Stop was called.
type leakyScheduler struct {
	callbacks []func()
}

type leakyTimer struct{}

func (leakyTimer) Stop() bool { return false }

func (l *leakyScheduler) AfterFunc(_ time.Duration, f func()) playback.Timer {
	l.callbacks = append(l.callbacks, f)
	return leakyTimer{}
}

var _ = Describe("Controller", func() {
	var (
		sched *playbacktest.Scheduler
		c     *playback.Controller
	)

	newController := func(length int, opts ...playback.Option) *playback.Controller {
		opts = append([]playback.Option{
			playback.WithScheduler(sched),
			playback.WithBaseInterval(interval),
		}, opts...)
		return playback.New(length, opts...)
	}

	BeforeEach(func() {
		sched = playbacktest.New()
	})

	AfterEach(func() {
		if c != nil {
			c.Dispose()
		}
	})

	Describe("construction", func() {
		It("starts idle at step zero", func() {
			c = newController(5)
			Expect(c.State()).To(Equal(playback.State{Step: 0, Length: 5, Playing: false, Speed: 1}))
			Expect(sched.Pending()).To(BeZero())
		})

		It("treats a negative length as empty", func() {
			c = newController(-4)
			Expect(c.State().Length).To(Equal(0))
		})

		It("ignores invalid option values", func() {
			c = playback.New(3,
				playback.WithScheduler(sched),
				playback.WithBaseInterval(-time.Second),
				playback.WithSpeed(0),
			)
			Expect(c.Interval()).To(Equal(playback.DefaultBaseInterval))
			Expect(c.State().Speed).To(Equal(playback.DefaultSpeed))
		})

		It("gives every instance its own id", func() {
			c = newController(1)
			other := newController(1)
			defer other.Dispose()
			Expect(c.ID()).NotTo(Equal(other.ID()))
		})
	})

	Describe("the walkthrough over three steps", func() {
		It("plays, auto-stops and navigates", func() {
			c = newController(3)

			c.Play()
			Expect(c.State().Playing).To(BeTrue())

			sched.Advance(interval)
			Expect(c.State()).To(BeAt(1, true))

			sched.Advance(2 * interval)
			Expect(c.State()).To(BeAt(3, false))
			Expect(sched.Pending()).To(BeZero())

			c.StepBackward()
			Expect(c.State()).To(BeAt(2, false))

			c.Seek(99)
			Expect(c.State().Step).To(Equal(3))

			c.Reset()
			Expect(c.State()).To(BeAt(0, false))
		})
	})

	Describe("Play", func() {
		It("is a no-op on an empty trace", func() {
			c = newController(0)
			c.Play()
			Expect(c.State().Playing).To(BeFalse())
			Expect(sched.Pending()).To(BeZero())
		})

		It("is a no-op on the terminal position", func() {
			c = newController(4)
			c.Seek(4)
			c.Play()
			Expect(c.State()).To(BeAt(4, false))
			Expect(sched.Scheduled()).To(BeZero())
		})

		It("keeps the pending tick when already playing", func() {
			c = newController(4)
			c.Play()
			sched.Advance(interval / 2)
			c.Play()
			Expect(sched.Scheduled()).To(Equal(1))
			sched.Advance(interval / 2)
			Expect(c.State().Step).To(Equal(1))
		})

		It("auto-stops after one tick from the penultimate step", func() {
			c = newController(6)
			c.Seek(5)
			c.Play()
			sched.Advance(interval)
			Expect(c.State()).To(BeAt(6, false))
			Expect(sched.Advance(10 * interval)).To(BeZero())
		})
	})

	Describe("Pause and Reset", func() {
		It("pause is idempotent and cancels the tick", func() {
			c = newController(5)
			c.Play()
			c.Pause()
			once := c.State()
			c.Pause()
			Expect(c.State()).To(Equal(once))
			Expect(sched.Pending()).To(BeZero())
			sched.Advance(10 * interval)
			Expect(c.State().Step).To(Equal(0))
		})

		It("reset is idempotent", func() {
			c = newController(5)
			c.Seek(3)
			c.Play()
			c.Reset()
			once := c.State()
			c.Reset()
			Expect(c.State()).To(Equal(once))
			Expect(once).To(BeAt(0, false))
			Expect(sched.Pending()).To(BeZero())
		})

		It("toggle flips between playing and paused", func() {
			c = newController(5)
			c.Toggle()
			Expect(c.State().Playing).To(BeTrue())
			c.Toggle()
			Expect(c.State().Playing).To(BeFalse())
			Expect(sched.Pending()).To(BeZero())
		})
	})

	Describe("manual stepping", func() {
		It("clamps at both ends without error", func() {
			c = newController(2)
			c.StepBackward()
			Expect(c.State().Step).To(Equal(0))
			c.StepForward()
			c.StepForward()
			c.StepForward()
			Expect(c.State().Step).To(Equal(2))
		})

		It("restarts the tick from the new position while playing", func() {
			c = newController(10)
			c.Play()
			sched.Advance(interval * 3 / 4)
			c.StepForward()
			Expect(c.State().Step).To(Equal(1))
			Expect(sched.Pending()).To(Equal(1))

			d, ok := sched.NextDeadline()
			Expect(ok).To(BeTrue())
			Expect(d).To(Equal(interval))

			sched.Advance(interval / 4)
			Expect(c.State().Step).To(Equal(1))
			sched.Advance(interval * 3 / 4)
			Expect(c.State().Step).To(Equal(2))
		})

		It("stops when stepping onto the terminal position while playing", func() {
			c = newController(3)
			c.Seek(2)
			c.Play()
			c.StepForward()
			Expect(c.State()).To(BeAt(3, false))
			Expect(sched.Pending()).To(BeZero())
		})

		It("keeps playing after stepping backward", func() {
			c = newController(3)
			c.Seek(2)
			c.Play()
			c.StepBackward()
			Expect(c.State()).To(BeAt(1, true))
			Expect(sched.Pending()).To(Equal(1))
		})
	})

	Describe("Seek", func() {
		DescribeTable("clamps into range",
			func(n, want int) {
				c = newController(7)
				c.Seek(n)
				Expect(c.State().Step).To(Equal(want))
			},
			Entry("negative", -3, 0),
			Entry("zero", 0, 0),
			Entry("inside", 4, 4),
			Entry("end", 7, 7),
			Entry("past the end", 100, 7),
			Entry("min int", math.MinInt, 0),
			Entry("max int", math.MaxInt, 7),
		)

		It("pauses a running controller", func() {
			c = newController(7)
			c.Play()
			c.Seek(2)
			Expect(c.State()).To(BeAt(2, false))
			Expect(sched.Pending()).To(BeZero())
			sched.Advance(5 * interval)
			Expect(c.State().Step).To(Equal(2))
		})
	})

	Describe("SetSpeed", func() {
		DescribeTable("ignores invalid speeds",
			func(s float64) {
				c = newController(3, playback.WithSpeed(2))
				c.SetSpeed(s)
				Expect(c.State().Speed).To(Equal(2.0))
			},
			Entry("zero", 0.0),
			Entry("negative", -1.5),
			Entry("NaN", math.NaN()),
			Entry("infinite", math.Inf(1)),
		)

		It("scales the interval", func() {
			c = newController(3)
			c.SetSpeed(4)
			Expect(c.Interval()).To(Equal(interval / 4))
		})

		It("reschedules a pending tick without double firing", func() {
			c = newController(10)
			c.Play()
			sched.Advance(interval / 2)
			c.SetSpeed(2)
			Expect(sched.Pending()).To(Equal(1))

			d, _ := sched.NextDeadline()
			Expect(d).To(Equal(interval / 2))

			fired := sched.Advance(interval / 2)
			Expect(fired).To(Equal(1))
			Expect(c.State().Step).To(Equal(1))
		})

		It("does not arm a timer while idle", func() {
			c = newController(3)
			c.SetSpeed(3)
			Expect(sched.Pending()).To(BeZero())
		})

		It("saturates the interval for tiny speeds", func() {
			c = newController(3)
			c.Play()
			c.SetSpeed(1e-10)
			Expect(c.State().Speed).To(Equal(1e-10))
			Expect(c.Interval()).To(Equal(time.Duration(math.MaxInt64)))

			d, ok := sched.NextDeadline()
			Expect(ok).To(BeTrue())
			Expect(d).To(BeNumerically(">", 24*time.Hour))
			Expect(sched.Advance(interval)).To(BeZero())
			Expect(c.State().Step).To(BeZero())
		})
	})

	Describe("single pending tick", func() {
		It("holds across random operation sequences", func() {
			rng := rand.New(rand.NewSource(7))
			c = newController(12)
			for i := 0; i < 2000; i++ {
				switch rng.Intn(9) {
				case 0:
					c.Play()
				case 1:
					c.Pause()
				case 2:
					c.StepForward()
				case 3:
					c.StepBackward()
				case 4:
					c.Reset()
				case 5:
					c.Seek(rng.Intn(40) - 20)
				case 6:
					c.SetSpeed(rng.Float64()*4 - 1)
				case 7:
					c.Toggle()
				case 8:
					sched.Advance(time.Duration(rng.Int63n(int64(3 * interval))))
				}
				st := c.State()
				Expect(st.Step).To(BeNumerically(">=", 0))
				Expect(st.Step).To(BeNumerically("<=", st.Length))
				Expect(sched.Pending()).To(BeNumerically("<=", 1))
				if st.Playing {
					Expect(sched.Pending()).To(Equal(1))
					Expect(st.AtEnd()).To(BeFalse())
				} else {
					Expect(sched.Pending()).To(BeZero())
				}
			}
		})

		It("discards a tick that fired after being replaced", func() {
			leaky := &leakyScheduler{}
			c = playback.New(5, playback.WithScheduler(leaky))
			c.Play()
			c.Seek(0)
			c.Play()
			Expect(leaky.callbacks).To(HaveLen(2))

			leaky.callbacks[0]()
			Expect(c.State().Step).To(Equal(0))

			leaky.callbacks[1]()
			Expect(c.State()).To(BeAt(1, true))
		})
	})

	Describe("change notification", func() {
		It("reports effective changes only", func() {
			var seen []playback.State
			c = newController(2, playback.WithOnChange(func(s playback.State) {
				seen = append(seen, s)
			}))

			c.Pause()
			c.StepBackward()
			Expect(seen).To(BeEmpty())

			c.Play()
			sched.Advance(2 * interval)
			Expect(seen).To(HaveLen(3))
			Expect(seen[2]).To(BeAt(2, false))
		})

		It("lets the hook read the controller", func() {
			var steps []int
			c = newController(2)
			c.SetOnChange(func(playback.State) {
				steps = append(steps, c.State().Step)
			})
			c.StepForward()
			c.StepForward()
			Expect(steps).To(Equal([]int{1, 2}))
		})
	})

	Describe("Controls", func() {
		It("binds the operations to the controller", func() {
			c = newController(4)
			ctl := c.Controls()
			Expect(ctl.Length).To(Equal(4))

			ctl.Seek(3)
			ctl.StepBackward()
			ctl.SetSpeed(2)
			ctl.Play()
			Expect(c.State()).To(BeAt(2, true))
			Expect(c.State().Speed).To(Equal(2.0))

			ctl.Pause()
			ctl.StepForward()
			ctl.Reset()
			Expect(c.State().Step).To(BeZero())
			Expect(ctl.Step).To(BeZero(), "snapshot is frozen at the time it was taken")
		})
	})

	Describe("Dispose", func() {
		It("cancels the pending tick", func() {
			c = newController(4)
			c.Play()
			c.Dispose()
			Expect(sched.Pending()).To(BeZero())
			Expect(c.Disposed()).To(BeTrue())
		})

		It("panics on use after dispose", func() {
			c = newController(4)
			c.Dispose()
			Expect(func() { c.Play() }).To(PanicWith(playback.ErrDisposed))
			Expect(func() { c.Seek(1) }).To(PanicWith(playback.ErrDisposed))
			Expect(func() { c.SetSpeed(-1) }).To(PanicWith(playback.ErrDisposed))
			Expect(func() { _ = c.State() }).To(PanicWith(playback.ErrDisposed))
			Expect(func() { c.Dispose() }).NotTo(Panic())
		})

		It("ignores a tick that outlives the controller", func() {
			leaky := &leakyScheduler{}
			calls := 0
			c = playback.New(5,
				playback.WithScheduler(leaky),
				playback.WithOnChange(func(playback.State) { calls++ }),
			)
			c.Play()
			c.Dispose()
			leaky.callbacks[0]()
			Expect(calls).To(Equal(1))
		})
	})

	Describe("real timers", func() {
		It("plays to the end and stops", func() {
			c = playback.New(3, playback.WithBaseInterval(5*time.Millisecond))
			c.Play()
			Eventually(c.State).WithTimeout(2 * time.Second).Should(BeAt(3, false))
			Consistently(c.State).WithTimeout(50 * time.Millisecond).Should(BeAt(3, false))
		})
	})
})

// BeAt matches the step and playing flag of a State.
func BeAt(step int, playing bool) OmegaMatcher {
	return SatisfyAll(
		WithTransform(func(s playback.State) int { return s.Step }, Equal(step)),
		WithTransform(func(s playback.State) bool { return s.Playing }, Equal(playing)),
	)
}
