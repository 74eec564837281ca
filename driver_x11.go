//go:build linux

package winslot

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgb/xtest"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// x11Driver targets one X display. Windows are addressed through the window
// manager's _NET_CLIENT_LIST, so only managed client windows are visible to
// enumeration, which is the X equivalent of "top-level windows".
//
// Key codes passed to SendKeys/KeyState are raw X keycodes on this driver,
// not Windows virtual keys; X keycodes are layout-dependent and there is no
// faithful static translation.
type x11Driver struct {
	xu   *xgbutil.XUtil
	root xproto.Window
}

func newPlatformDriver() (Driver, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}
	if err := xtest.Init(xu.Conn()); err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("xtest extension unavailable: %w", err)
	}
	return &x11Driver{xu: xu, root: xu.RootWin()}, nil
}

func (d *x11Driver) Close() error {
	d.xu.Conn().Close()
	return nil
}

// InvalidateDisplay is a no-op here: the display reference is the X
// connection itself and survives client windows dying.
func (d *x11Driver) InvalidateDisplay() {}

func (d *x11Driver) windowTitle(w xproto.Window) string {
	if name, err := ewmh.WmNameGet(d.xu, w); err == nil && name != "" {
		return name
	}
	name, err := icccm.WmNameGet(d.xu, w)
	if err != nil {
		return ""
	}
	return name
}

func (d *x11Driver) EnumWindows(visit func(h Handle, title string) bool) error {
	clients, err := ewmh.ClientListGet(d.xu)
	if err != nil {
		return err
	}
	for _, w := range clients {
		attrs, err := xproto.GetWindowAttributes(d.xu.Conn(), w).Reply()
		if err != nil || attrs.MapState != xproto.MapStateViewable {
			continue
		}
		title := d.windowTitle(w)
		if title == "" {
			continue
		}
		if !visit(Handle(w), title) {
			return nil
		}
	}
	return nil
}

func (d *x11Driver) IsAlive(h Handle) bool {
	_, err := xproto.GetWindowAttributes(d.xu.Conn(), xproto.Window(h)).Reply()
	return err == nil
}

func (d *x11Driver) Foreground() Handle {
	w, err := ewmh.ActiveWindowGet(d.xu)
	if err != nil {
		return 0
	}
	return Handle(w)
}

func (d *x11Driver) Focus(h Handle) bool {
	return ewmh.ActiveWindowReq(d.xu, xproto.Window(h)) == nil
}

func (d *x11Driver) CloseWindow(h Handle) bool {
	return ewmh.CloseWindow(d.xu, xproto.Window(h)) == nil
}

func (d *x11Driver) OuterBounds(h Handle) (Rect, bool) {
	geom, err := xwindow.New(d.xu, xproto.Window(h)).DecorGeometry()
	if err != nil {
		return Rect{}, false
	}
	x, y := int32(geom.X()), int32(geom.Y())
	return Rect{x, y, x + int32(geom.Width()), y + int32(geom.Height())}, true
}

func (d *x11Driver) ClientSize(h Handle) (Point, bool) {
	geom, err := xwindow.New(d.xu, xproto.Window(h)).Geometry()
	if err != nil {
		return Point{}, false
	}
	return Point{int32(geom.Width()), int32(geom.Height())}, true
}

func (d *x11Driver) translate(src, dst xproto.Window, p Point) (Point, bool) {
	r, err := xproto.TranslateCoordinates(d.xu.Conn(), src, dst,
		int16(p.X), int16(p.Y)).Reply()
	if err != nil {
		return Point{}, false
	}
	return Point{int32(r.DstX), int32(r.DstY)}, true
}

func (d *x11Driver) ClientToScreen(h Handle, p Point) (Point, bool) {
	return d.translate(xproto.Window(h), d.root, p)
}

func (d *x11Driver) ScreenToClient(h Handle, p Point) (Point, bool) {
	return d.translate(d.root, xproto.Window(h), p)
}

func (d *x11Driver) DisplaySize() (int32, int32) {
	screen := d.xu.Screen()
	return int32(screen.WidthInPixels), int32(screen.HeightInPixels)
}

func (d *x11Driver) Capture(r Rect) ([]byte, error) {
	w, h := r.Width(), r.Height()
	reply, err := xproto.GetImage(d.xu.Conn(), xproto.ImageFormatZPixmap,
		xproto.Drawable(d.root), int16(r.Left), int16(r.Top),
		uint16(w), uint16(h), 0xFFFFFFFF).Reply()
	if err != nil {
		return nil, fmt.Errorf("%w: GetImage: %v", ErrCaptureFailed, err)
	}
	want := int(w) * int(h) * 4
	if len(reply.Data) < want {
		return nil, fmt.Errorf("%w: GetImage returned %d of %d bytes (depth %d)",
			ErrCaptureFailed, len(reply.Data), want, reply.Depth)
	}
	pix := make([]byte, want)
	copy(pix, reply.Data[:want])
	return pix, nil
}

func (d *x11Driver) Pixel(p Point) (uint32, bool) {
	pix, err := d.Capture(Rect{p.X, p.Y, p.X + 1, p.Y + 1})
	if err != nil {
		return 0, false
	}
	// ZPixmap stores BGRX on little-endian displays; pack as 0x00BBGGRR.
	return uint32(pix[0])<<16 | uint32(pix[1])<<8 | uint32(pix[2]), true
}

func (d *x11Driver) CursorPos() (Point, bool) {
	r, err := xproto.QueryPointer(d.xu.Conn(), d.root).Reply()
	if err != nil {
		return Point{}, false
	}
	return Point{int32(r.RootX), int32(r.RootY)}, true
}

func (d *x11Driver) SetCursor(p Point) bool {
	xproto.WarpPointer(d.xu.Conn(), xproto.WindowNone, d.root,
		0, 0, 0, 0, int16(p.X), int16(p.Y))
	return true
}

// MouseMove warps relative to the current position: a None destination makes
// WarpPointer interpret the coordinates as offsets.
func (d *x11Driver) MouseMove(dx, dy int32) {
	xproto.WarpPointer(d.xu.Conn(), xproto.WindowNone, xproto.WindowNone,
		0, 0, 0, 0, int16(dx), int16(dy))
}

func (d *x11Driver) fakeInput(typ byte, detail byte) {
	xtest.FakeInput(d.xu.Conn(), typ, detail, 0, d.root, 0, 0, 0)
}

func (d *x11Driver) MouseButton(b Button, down bool) {
	var detail byte
	switch b {
	case ButtonLeft:
		detail = 1
	case ButtonMiddle:
		detail = 2
	case ButtonRight:
		detail = 3
	default:
		return
	}
	if down {
		d.fakeInput(xproto.ButtonPress, detail)
	} else {
		d.fakeInput(xproto.ButtonRelease, detail)
	}
}

// Scroll maps wheel clicks onto X button 4 (up) / 5 (down) press-release
// pairs, one pair per click.
func (d *x11Driver) Scroll(clicks int32) {
	detail := byte(4)
	if clicks < 0 {
		detail = 5
		clicks = -clicks
	}
	for i := int32(0); i < clicks; i++ {
		d.fakeInput(xproto.ButtonPress, detail)
		d.fakeInput(xproto.ButtonRelease, detail)
	}
}

func (d *x11Driver) SendKeys(down bool, codes []uint16) {
	typ := byte(xproto.KeyPress)
	if !down {
		typ = xproto.KeyRelease
	}
	for _, code := range codes {
		d.fakeInput(typ, byte(code))
	}
}

func (d *x11Driver) KeyState(code uint16) bool {
	r, err := xproto.QueryKeymap(d.xu.Conn()).Reply()
	if err != nil {
		return false
	}
	kc := byte(code)
	return r.Keys[kc/8]&(1<<(kc%8)) != 0
}

// KeyToggled only knows the lock modifiers the server reports in pointer
// queries: caps lock (Lock) and num lock (Mod2 on stock layouts).
func (d *x11Driver) KeyToggled(code uint16) bool {
	r, err := xproto.QueryPointer(d.xu.Conn(), d.root).Reply()
	if err != nil {
		return false
	}
	switch code {
	case VKCapital:
		return r.Mask&xproto.KeyButMaskLock != 0
	case VKNumLock:
		return r.Mask&xproto.KeyButMaskMod2 != 0
	}
	return false
}

func (d *x11Driver) ButtonsSwapped() bool {
	r, err := xproto.GetPointerMapping(d.xu.Conn()).Reply()
	if err != nil || len(r.Map) == 0 {
		return false
	}
	return r.Map[0] != 1
}
