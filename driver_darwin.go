//go:build darwin

package winslot

import (
	"fmt"
	"strconv"

	"github.com/go-vgo/robotgo"
)

// darwinDriver is a best-effort backend built on robotgo. macOS has no
// cross-application window-handle concept accessible without accessibility
// entitlements, so a Handle is a process id here and per-window operations
// address the owning process's frontmost window.
type darwinDriver struct{}

func newPlatformDriver() (Driver, error) {
	return &darwinDriver{}, nil
}

func (d *darwinDriver) Close() error       { return nil }
func (d *darwinDriver) InvalidateDisplay() {}

func (d *darwinDriver) EnumWindows(visit func(h Handle, title string) bool) error {
	pids, err := robotgo.Pids()
	if err != nil {
		return err
	}
	for _, pid := range pids {
		title := robotgo.GetTitle(pid)
		if title == "" {
			continue
		}
		if !visit(Handle(pid), title) {
			return nil
		}
	}
	return nil
}

func (d *darwinDriver) IsAlive(h Handle) bool {
	ok, err := robotgo.PidExists(int32(h))
	return err == nil && ok
}

func (d *darwinDriver) Foreground() Handle {
	return Handle(robotgo.GetPid())
}

func (d *darwinDriver) Focus(h Handle) bool {
	return robotgo.ActivePid(int32(h)) == nil
}

// CloseWindow terminates the owning process; robotgo offers no per-window
// close request.
func (d *darwinDriver) CloseWindow(h Handle) bool {
	return robotgo.Kill(int32(h)) == nil
}

func (d *darwinDriver) OuterBounds(h Handle) (Rect, bool) {
	x, y, w, hh := robotgo.GetBounds(int32(h))
	if w == 0 && hh == 0 {
		return Rect{}, false
	}
	return Rect{int32(x), int32(y), int32(x + w), int32(y + hh)}, true
}

func (d *darwinDriver) ClientSize(h Handle) (Point, bool) {
	_, _, w, hh := robotgo.GetBounds(int32(h))
	if w == 0 && hh == 0 {
		return Point{}, false
	}
	return Point{int32(w), int32(hh)}, true
}

func (d *darwinDriver) ClientToScreen(h Handle, p Point) (Point, bool) {
	x, y, w, hh := robotgo.GetBounds(int32(h))
	if w == 0 && hh == 0 {
		return Point{}, false
	}
	return Point{p.X + int32(x), p.Y + int32(y)}, true
}

func (d *darwinDriver) ScreenToClient(h Handle, p Point) (Point, bool) {
	x, y, w, hh := robotgo.GetBounds(int32(h))
	if w == 0 && hh == 0 {
		return Point{}, false
	}
	return Point{p.X - int32(x), p.Y - int32(y)}, true
}

func (d *darwinDriver) DisplaySize() (int32, int32) {
	w, h := robotgo.GetScreenSize()
	return int32(w), int32(h)
}

func (d *darwinDriver) Capture(r Rect) ([]byte, error) {
	w, h := int(r.Width()), int(r.Height())
	bit := robotgo.CaptureScreen(int(r.Left), int(r.Top), w, h)
	if bit == nil {
		return nil, fmt.Errorf("%w: CaptureScreen", ErrCaptureFailed)
	}
	defer robotgo.FreeBitmap(bit)
	img := robotgo.ToRGBA(bit)
	if img == nil {
		return nil, fmt.Errorf("%w: bitmap conversion", ErrCaptureFailed)
	}
	// Repack RGBA into the BGRA wire layout used on every platform.
	pix := make([]byte, w*h*4)
	for i := 0; i+3 < len(pix) && i+3 < len(img.Pix); i += 4 {
		pix[i] = img.Pix[i+2]
		pix[i+1] = img.Pix[i+1]
		pix[i+2] = img.Pix[i]
		pix[i+3] = img.Pix[i+3]
	}
	return pix, nil
}

func (d *darwinDriver) Pixel(p Point) (uint32, bool) {
	hex := robotgo.GetPixelColor(int(p.X), int(p.Y))
	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, false
	}
	r := uint32(rgb>>16) & 0xFF
	g := uint32(rgb>>8) & 0xFF
	b := uint32(rgb) & 0xFF
	return b<<16 | g<<8 | r, true
}

func (d *darwinDriver) CursorPos() (Point, bool) {
	x, y := robotgo.Location()
	return Point{int32(x), int32(y)}, true
}

func (d *darwinDriver) SetCursor(p Point) bool {
	robotgo.Move(int(p.X), int(p.Y))
	return true
}

func (d *darwinDriver) MouseMove(dx, dy int32) {
	robotgo.MoveRelative(int(dx), int(dy))
}

func (d *darwinDriver) MouseButton(b Button, down bool) {
	var name string
	switch b {
	case ButtonLeft:
		name = "left"
	case ButtonRight:
		name = "right"
	case ButtonMiddle:
		name = "center"
	default:
		return
	}
	if down {
		robotgo.Toggle(name)
	} else {
		robotgo.Toggle(name, "up")
	}
}

func (d *darwinDriver) Scroll(clicks int32) {
	robotgo.Scroll(0, int(clicks))
}

func (d *darwinDriver) SendKeys(down bool, codes []uint16) {
	dir := "down"
	if !down {
		dir = "up"
	}
	for _, code := range codes {
		name, ok := vkToRobotgo(code)
		if !ok {
			continue
		}
		robotgo.KeyToggle(name, dir)
	}
}

// Global key-state queries have no robotgo equivalent.
func (d *darwinDriver) KeyState(code uint16) bool   { return false }
func (d *darwinDriver) KeyToggled(code uint16) bool { return false }
func (d *darwinDriver) ButtonsSwapped() bool        { return false }

// vkToRobotgo maps the Windows virtual-key codes of the public API onto
// robotgo key names. Letters, digits and the common control keys cover the
// injection surface games and chat clients need; anything else is dropped.
func vkToRobotgo(code uint16) (string, bool) {
	switch {
	case code >= VKA && code <= VKZ:
		return string(rune('a' + (code - VKA))), true
	case code >= VK0 && code <= VK9:
		return string(rune('0' + (code - VK0))), true
	case code >= VKF1 && code <= VKF12:
		return "f" + strconv.Itoa(int(code-VKF1)+1), true
	}
	switch code {
	case VKBack:
		return "backspace", true
	case VKTab:
		return "tab", true
	case VKReturn:
		return "enter", true
	case VKShift:
		return "shift", true
	case VKControl:
		return "ctrl", true
	case VKMenu:
		return "alt", true
	case VKCapital:
		return "capslock", true
	case VKEscape:
		return "esc", true
	case VKSpace:
		return "space", true
	case VKLeft:
		return "left", true
	case VKUp:
		return "up", true
	case VKRight:
		return "right", true
	case VKDown:
		return "down", true
	}
	return "", false
}
