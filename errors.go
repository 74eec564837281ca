package winslot

import "errors"

var (
	// ErrSlotRange means the slot id passed to Register was outside [0,100).
	ErrSlotRange = errors.New("slot id out of range")

	// ErrNoDriver means the session was created without a usable platform
	// driver.
	ErrNoDriver = errors.New("no platform driver available")

	// ErrUnsupported means the operation has no implementation on this
	// platform.
	ErrUnsupported = errors.New("operation not supported on this platform")

	// ErrCaptureFailed means the OS refused the capture blit or the readback
	// produced a short pixel buffer.
	ErrCaptureFailed = errors.New("screen capture failed")
)
