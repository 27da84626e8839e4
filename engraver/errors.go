package engraver

import "fmt"

var (
	// ErrPortNotFound is returned when the requested serial port is not
	// among the enumerated ports.
	ErrPortNotFound = fmt.Errorf("engraver: serial port not found")

	// ErrNotErased is returned when an image upload is attempted before
	// the device memory has been erased.
	ErrNotErased = fmt.Errorf("engraver: erase required before uploading an image")

	// ErrShortWrite is returned when the transport accepts fewer bytes
	// than a chunk holds. The upload is unrecoverable at that point.
	ErrShortWrite = fmt.Errorf("engraver: transport accepted a short write")

	// ErrDrainTimeout is returned when an awaited transmission does not
	// drain within the given timeout.
	ErrDrainTimeout = fmt.Errorf("engraver: transmission still pending after timeout")

	// ErrBurnTime is returned for burn times outside the window the
	// device accepts.
	ErrBurnTime = fmt.Errorf("engraver: burn time out of range %#02x..%#02x", MinBurnTime, MaxBurnTime)
)
