//go:build windows

package winslot

import (
	"fmt"
	"sync"
	"syscall"
	"unsafe"
)

// winDriver talks to user32/gdi32 directly. It caches the main display's
// device context between captures; the cache is rotated by
// InvalidateDisplay whenever the session loses a tracked window.
type winDriver struct {
	display uintptr // cached HDC for the whole screen, 0 until first use
}

func newPlatformDriver() (Driver, error) {
	return &winDriver{}, nil
}

func (d *winDriver) Close() error {
	if d.display != 0 {
		procReleaseDC.Call(0, d.display)
		d.display = 0
	}
	return nil
}

// displayDC returns the cached screen device context, acquiring it on first
// use.
func (d *winDriver) displayDC() uintptr {
	if d.display == 0 {
		d.display, _, _ = procGetDC.Call(0)
	}
	return d.display
}

func (d *winDriver) InvalidateDisplay() {
	if d.display != 0 {
		procReleaseDC.Call(0, d.display)
		d.display, _, _ = procGetDC.Call(0)
	}
}

// enumState carries the visitor through EnumWindows' LPARAM. The pointer is
// only dereferenced inside the synchronous EnumWindows call.
type enumState struct {
	visit func(h Handle, title string) bool
}

var (
	enumCBOnce sync.Once
	enumCBPtr  uintptr
)

func enumProc(hwnd uintptr, lparam uintptr) uintptr {
	st := (*enumState)(unsafe.Pointer(lparam))
	n, _, _ := procGetWindowTextLengthW.Call(hwnd)
	if n == 0 {
		return 1
	}
	if vis, _, _ := procIsWindowVisible.Call(hwnd); vis == 0 {
		return 1
	}
	buf := make([]uint16, n+1)
	written, _, _ := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), n+1)
	if written == 0 {
		return 1
	}
	if !st.visit(Handle(hwnd), syscall.UTF16ToString(buf)) {
		return 0
	}
	return 1
}

func (d *winDriver) EnumWindows(visit func(h Handle, title string) bool) error {
	enumCBOnce.Do(func() {
		enumCBPtr = syscall.NewCallback(enumProc)
	})
	st := &enumState{visit: visit}
	procEnumWindows.Call(enumCBPtr, uintptr(unsafe.Pointer(st)))
	return nil
}

func (d *winDriver) IsAlive(h Handle) bool {
	r, _, _ := procIsWindow.Call(uintptr(h))
	return r != 0
}

func (d *winDriver) Foreground() Handle {
	r, _, _ := procGetForegroundWindow.Call()
	return Handle(r)
}

func (d *winDriver) Focus(h Handle) bool {
	procSetForegroundWindow.Call(uintptr(h))
	return true
}

func (d *winDriver) CloseWindow(h Handle) bool {
	procSendMessageW.Call(uintptr(h), wmClose, 0, 0)
	return true
}

func (d *winDriver) OuterBounds(h Handle) (Rect, bool) {
	var r winRECT
	ok, _, _ := procGetWindowRect.Call(uintptr(h), uintptr(unsafe.Pointer(&r)))
	if ok == 0 {
		return Rect{}, false
	}
	return Rect{r.Left, r.Top, r.Right, r.Bottom}, true
}

func (d *winDriver) ClientSize(h Handle) (Point, bool) {
	var r winRECT
	ok, _, _ := procGetClientRect.Call(uintptr(h), uintptr(unsafe.Pointer(&r)))
	if ok == 0 {
		return Point{}, false
	}
	return Point{r.Right, r.Bottom}, true
}

func (d *winDriver) ClientToScreen(h Handle, p Point) (Point, bool) {
	pt := winPOINT{p.X, p.Y}
	ok, _, _ := procClientToScreen.Call(uintptr(h), uintptr(unsafe.Pointer(&pt)))
	if ok == 0 {
		return Point{}, false
	}
	return Point{pt.X, pt.Y}, true
}

func (d *winDriver) ScreenToClient(h Handle, p Point) (Point, bool) {
	pt := winPOINT{p.X, p.Y}
	ok, _, _ := procScreenToClient.Call(uintptr(h), uintptr(unsafe.Pointer(&pt)))
	if ok == 0 {
		return Point{}, false
	}
	return Point{pt.X, pt.Y}, true
}

func (d *winDriver) DisplaySize() (int32, int32) {
	dc := d.displayDC()
	w, _, _ := procGetDeviceCaps.Call(dc, horzRes)
	h, _, _ := procGetDeviceCaps.Call(dc, vertRes)
	return int32(w), int32(h)
}

// Capture blits the screen rectangle into a compatible off-screen bitmap and
// reads it back with GetDIBits. The negative header height requests top-down
// rows, so no manual inversion is needed.
func (d *winDriver) Capture(r Rect) ([]byte, error) {
	w, h := r.Width(), r.Height()
	dc := d.displayDC()
	if dc == 0 {
		return nil, fmt.Errorf("%w: GetDC", ErrCaptureFailed)
	}
	memDC, _, _ := procCreateCompatibleDC.Call(dc)
	if memDC == 0 {
		return nil, fmt.Errorf("%w: CreateCompatibleDC", ErrCaptureFailed)
	}
	defer procDeleteDC.Call(memDC)

	bmp, _, _ := procCreateCompatibleBitmap.Call(dc, uintptr(w), uintptr(h))
	if bmp == 0 {
		return nil, fmt.Errorf("%w: CreateCompatibleBitmap", ErrCaptureFailed)
	}
	defer procDeleteObject.Call(bmp)

	prev, _, _ := procSelectObject.Call(memDC, bmp)
	if prev != 0 {
		defer procSelectObject.Call(memDC, prev)
	}

	blit, _, _ := procBitBlt.Call(memDC, 0, 0, uintptr(w), uintptr(h),
		dc, uintptr(r.Left), uintptr(r.Top), srcCopy)
	if blit == 0 {
		return nil, fmt.Errorf("%w: BitBlt %dx%d at (%d,%d)", ErrCaptureFailed, w, h, r.Left, r.Top)
	}

	var bi bitmapInfo
	bi.Header.Size = uint32(unsafe.Sizeof(bi.Header))
	bi.Header.Width = w
	bi.Header.Height = -h // top-down
	bi.Header.Planes = 1
	bi.Header.BitCount = 32
	bi.Header.Compression = biRGB

	pix := make([]byte, int(w)*int(h)*4)
	lines, _, _ := procGetDIBits.Call(memDC, bmp, 0, uintptr(h),
		uintptr(unsafe.Pointer(&pix[0])), uintptr(unsafe.Pointer(&bi)), dibRGBColors)
	if int32(lines) != h {
		return nil, fmt.Errorf("%w: GetDIBits returned %d of %d lines", ErrCaptureFailed, lines, h)
	}
	return pix, nil
}

func (d *winDriver) Pixel(p Point) (uint32, bool) {
	dc := d.displayDC()
	if dc == 0 {
		return 0, false
	}
	c, _, _ := procGetPixel.Call(dc, uintptr(p.X), uintptr(p.Y))
	return uint32(c), true
}

func (d *winDriver) CursorPos() (Point, bool) {
	var pt winPOINT
	ok, _, _ := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if ok == 0 {
		return Point{}, false
	}
	return Point{pt.X, pt.Y}, true
}

func (d *winDriver) SetCursor(p Point) bool {
	ok, _, _ := procSetCursorPos.Call(uintptr(p.X), uintptr(p.Y))
	return ok != 0
}

func sendInputs(ins []winINPUT) {
	if len(ins) == 0 {
		return
	}
	procSendInput.Call(uintptr(len(ins)),
		uintptr(unsafe.Pointer(&ins[0])), unsafe.Sizeof(ins[0]))
}

func (d *winDriver) MouseMove(dx, dy int32) {
	sendInputs([]winINPUT{{
		Type: inputMouse,
		Mi:   mouseInput{Dx: dx, Dy: dy, Flags: mouseEventfMove},
	}})
}

func (d *winDriver) MouseButton(b Button, down bool) {
	var flags uint32
	switch b {
	case ButtonLeft:
		flags = mouseEventfLeftDown
		if !down {
			flags = mouseEventfLeftUp
		}
	case ButtonRight:
		flags = mouseEventfRightDown
		if !down {
			flags = mouseEventfRightUp
		}
	case ButtonMiddle:
		flags = mouseEventfMiddleDown
		if !down {
			flags = mouseEventfMiddleUp
		}
	default:
		return
	}
	sendInputs([]winINPUT{{Type: inputMouse, Mi: mouseInput{Flags: flags}}})
}

func (d *winDriver) Scroll(clicks int32) {
	sendInputs([]winINPUT{{
		Type: inputMouse,
		Mi: mouseInput{
			MouseData: uint32(clicks * wheelDelta),
			Flags:     mouseEventfWheel,
		},
	}})
}

// SendKeys injects the whole batch through a single SendInput call, with
// each virtual key translated to its hardware scan code first.
func (d *winDriver) SendKeys(down bool, codes []uint16) {
	var flags uint32 = keyEventfScanCode
	if !down {
		flags |= keyEventfKeyUp
	}
	ins := make([]winINPUT, len(codes))
	for i, vk := range codes {
		scan, _, _ := procMapVirtualKeyW.Call(uintptr(vk), mapvkVkToVsc)
		in := winINPUT{Type: inputKeyboard}
		*(*keybdInput)(unsafe.Pointer(&in.Mi)) = keybdInput{
			Scan:  uint16(scan),
			Flags: flags,
		}
		ins[i] = in
	}
	sendInputs(ins)
}

func (d *winDriver) KeyState(code uint16) bool {
	r, _, _ := procGetAsyncKeyState.Call(uintptr(code))
	return uint16(r)&0x8000 != 0
}

func (d *winDriver) KeyToggled(code uint16) bool {
	r, _, _ := procGetKeyState.Call(uintptr(code))
	return uint16(r)&0x0001 != 0
}

func (d *winDriver) ButtonsSwapped() bool {
	r, _, _ := procGetSystemMetrics.Call(smSwapButton)
	return r != 0
}
