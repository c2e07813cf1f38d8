// Package playback provides the replay engine that steps through a
// precomputed algorithm trace.
//
// A [Controller] navigates an integer index over [0, length] and can
// advance it on a timer:
//
//   - [Controller]: the playback state machine
//   - [State]: render-friendly snapshot of a controller
//   - [Controls]: snapshot plus bound operations for front ends
//   - [Scheduler]: timer source, injectable for tests
//
// # Example
//
//	tr, _ := trace.Build(producer)
//	c := playback.New(tr.PlaybackLength(), playback.WithOnChange(redraw))
//	defer c.Dispose()
//	c.Play()
//
// # Thread Safety
//
// Operations are serialized by the controller and may be called from any
// goroutine. At most one tick is pending at a time. Calling any operation
// after [Controller.Dispose] panics with [ErrDisposed].
package playback
