package lesson_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algoviz/internal/lesson"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/playback/playbacktest"
	"github.com/san-kum/algoviz/internal/trace"
)

var _ = Describe("Lesson", func() {
	var (
		sched *playbacktest.Scheduler
		l     *lesson.Lesson[string]
	)

	BeforeEach(func() {
		sched = playbacktest.New()
		tr := trace.New([]string{"start", "compare", "swap", "done"})
		l = lesson.New(tr,
			playback.WithScheduler(sched),
			playback.WithBaseInterval(time.Second),
		)
	})

	AfterEach(func() {
		l.Close()
	})

	It("sizes the controller to the trace", func() {
		Expect(l.State().Length).To(Equal(3))
		frame, ok := l.Current()
		Expect(ok).To(BeTrue())
		Expect(frame).To(Equal("start"))
	})

	It("shows the final frame on the terminal position", func() {
		l.Controls().Play()
		sched.Advance(3 * time.Second)
		Expect(l.State().Playing).To(BeFalse())

		frame, _ := l.Current()
		Expect(frame).To(Equal("done"))
	})

	Describe("Rebuild", func() {
		It("replaces the controller instead of resizing it", func() {
			old := l.Controller()
			old.SetSpeed(2)
			old.Play()

			l.Rebuild(trace.New([]string{"a", "b"}))

			Expect(old.Disposed()).To(BeTrue())
			Expect(sched.Pending()).To(BeZero())
			Expect(l.Controller()).NotTo(BeIdenticalTo(old))
			Expect(l.State()).To(Equal(playback.State{Step: 0, Length: 1, Playing: false, Speed: 2}))
		})

		It("keeps the change hook", func() {
			var seen []int
			l.OnChange(func(s playback.State) { seen = append(seen, s.Length) })

			l.Rebuild(trace.New([]string{"a", "b", "c"}))
			l.Controls().StepForward()

			Expect(seen).To(Equal([]int{2, 2}))
		})

		It("handles an empty trace", func() {
			l.Rebuild(trace.New[string](nil))
			l.Controls().Play()
			Expect(l.State().Playing).To(BeFalse())

			_, ok := l.Current()
			Expect(ok).To(BeFalse())
		})
	})

	Describe("Replay", func() {
		It("visits every frame in order and stops at the end", func() {
			rl := lesson.New(trace.New([]string{"start", "compare", "swap", "done"}),
				playback.WithBaseInterval(time.Millisecond),
			)
			defer rl.Close()

			var seen []string
			err := rl.Replay(context.Background(), func(_ playback.State, f string) {
				seen = append(seen, f)
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(seen).To(Equal([]string{"start", "compare", "swap", "done"}))
			Expect(rl.State()).To(Equal(playback.State{Step: 3, Length: 3, Speed: 1}))
		})

		It("returns at once on the terminal position", func() {
			l.Controls().Seek(3)
			calls := 0
			Expect(l.Replay(context.Background(), func(playback.State, string) { calls++ })).To(Succeed())
			Expect(calls).To(Equal(1))
			Expect(sched.Pending()).To(BeZero())
		})

		It("pauses when the context ends", func() {
			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan error, 1)
			go func() {
				done <- l.Replay(ctx, func(playback.State, string) {})
			}()

			Eventually(sched.Pending).Should(Equal(1))
			cancel()

			Eventually(done).Should(Receive(MatchError(context.Canceled)))
			Expect(l.State().Playing).To(BeFalse())
			Expect(sched.Pending()).To(BeZero())
		})

		It("restores the lesson hook afterwards", func() {
			var seen []int
			l.OnChange(func(s playback.State) { seen = append(seen, s.Step) })
			l.Controls().Seek(3)

			Expect(l.Replay(context.Background(), func(playback.State, string) {})).To(Succeed())
			l.Controls().StepBackward()

			Expect(seen).To(Equal([]int{3, 2}))
		})
	})

	It("panics when used after close", func() {
		l.Close()
		Expect(func() { l.Current() }).To(PanicWith(playback.ErrDisposed))
	})
})
