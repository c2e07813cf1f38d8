package playback

import "errors"

// ErrDisposed is the panic value raised when a controller is used after
// Dispose. It signals a lifecycle bug in the caller, not bad user input.
var ErrDisposed = errors.New("playback: controller used after dispose")
