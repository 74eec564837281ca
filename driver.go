package winslot

// Driver is the per-platform backend behind a Session. The session owns
// exactly one driver and calls it synchronously; drivers hold whatever OS
// state they need (DLL procs, a display server connection, a cached display
// device context) and are torn down by Close.
//
// Every method that targets a window takes a Handle previously produced by
// EnumWindows. Drivers never see slot ids or names; matching is the
// session's job.
type Driver interface {
	// EnumWindows walks all visible, titled top-level windows in OS order,
	// calling visit for each. A false return from visit stops the walk
	// immediately; the short-circuit must reach the OS enumeration itself.
	EnumWindows(visit func(h Handle, title string) bool) error

	// IsAlive reports whether a previously returned handle still refers to
	// an existing window.
	IsAlive(h Handle) bool

	// InvalidateDisplay drops and reacquires any cached display reference.
	// The session calls it whenever a tracked window is found dead.
	InvalidateDisplay()

	Foreground() Handle
	Focus(h Handle) bool
	CloseWindow(h Handle) bool

	OuterBounds(h Handle) (Rect, bool)
	ClientSize(h Handle) (Point, bool)
	ClientToScreen(h Handle, p Point) (Point, bool)
	ScreenToClient(h Handle, p Point) (Point, bool)

	DisplaySize() (w, h int32)

	// Capture copies the given screen-space rectangle into a fresh buffer of
	// exactly Width*Height*4 BGRA bytes, rows top-down.
	Capture(r Rect) ([]byte, error)

	// Pixel reads one screen pixel, packed 0x00BBGGRR.
	Pixel(p Point) (uint32, bool)

	CursorPos() (Point, bool)
	SetCursor(p Point) bool

	MouseMove(dx, dy int32)
	MouseButton(b Button, down bool)
	Scroll(clicks int32)

	// SendKeys injects a press or release for each code, as one batch where
	// the platform allows it.
	SendKeys(down bool, codes []uint16)

	// KeyState reports the instantaneous physical state of a key or button.
	KeyState(code uint16) bool
	// KeyToggled reports the toggle state of lock-style keys.
	KeyToggled(code uint16) bool
	// ButtonsSwapped reports whether the user swapped the primary and
	// secondary mouse buttons.
	ButtonsSwapped() bool

	Close() error
}
