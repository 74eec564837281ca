package winslot

// fakeDriver is an in-memory Driver for exercising the registry and façade
// without an OS. Every mutation is recorded so tests can assert on call
// counts and payloads.

type fakeWindow struct {
	h     Handle
	title string
}

type keyBatch struct {
	down  bool
	codes []uint16
}

type fakeDriver struct {
	windows []fakeWindow
	dead    map[Handle]bool

	enumPasses  int
	enumVisited int
	invalidated int

	foreground Handle
	focused    []Handle
	closedWins []Handle

	bounds     map[Handle]Rect
	clientSize map[Handle]Point

	displayW, displayH int32
	captureErr         error
	captured           []Rect

	pixel  uint32
	cursor Point

	swapped bool
	keys    map[uint16]bool
	toggles map[uint16]bool

	moves   []Point
	buttons []struct {
		b    Button
		down bool
	}
	scrolls []int32
	sent    []keyBatch

	closed bool
}

func newFakeDriver(windows ...fakeWindow) *fakeDriver {
	return &fakeDriver{
		windows:    windows,
		dead:       map[Handle]bool{},
		bounds:     map[Handle]Rect{},
		clientSize: map[Handle]Point{},
		keys:       map[uint16]bool{},
		toggles:    map[uint16]bool{},
		displayW:   1920,
		displayH:   1080,
	}
}

func (d *fakeDriver) EnumWindows(visit func(h Handle, title string) bool) error {
	d.enumPasses++
	for _, w := range d.windows {
		if d.dead[w.h] {
			continue
		}
		d.enumVisited++
		if !visit(w.h, w.title) {
			return nil
		}
	}
	return nil
}

func (d *fakeDriver) IsAlive(h Handle) bool  { return !d.dead[h] }
func (d *fakeDriver) InvalidateDisplay()     { d.invalidated++ }
func (d *fakeDriver) Foreground() Handle     { return d.foreground }
func (d *fakeDriver) Focus(h Handle) bool    { d.focused = append(d.focused, h); return true }
func (d *fakeDriver) CloseWindow(h Handle) bool {
	d.closedWins = append(d.closedWins, h)
	return true
}

func (d *fakeDriver) OuterBounds(h Handle) (Rect, bool) {
	r, ok := d.bounds[h]
	return r, ok
}

func (d *fakeDriver) ClientSize(h Handle) (Point, bool) {
	p, ok := d.clientSize[h]
	return p, ok
}

func (d *fakeDriver) ClientToScreen(h Handle, p Point) (Point, bool) {
	r, ok := d.bounds[h]
	if !ok {
		return Point{}, false
	}
	return Point{p.X + r.Left, p.Y + r.Top}, true
}

func (d *fakeDriver) ScreenToClient(h Handle, p Point) (Point, bool) {
	r, ok := d.bounds[h]
	if !ok {
		return Point{}, false
	}
	return Point{p.X - r.Left, p.Y - r.Top}, true
}

func (d *fakeDriver) DisplaySize() (int32, int32) { return d.displayW, d.displayH }

func (d *fakeDriver) Capture(r Rect) ([]byte, error) {
	if d.captureErr != nil {
		return nil, d.captureErr
	}
	d.captured = append(d.captured, r)
	return make([]byte, int(r.Width())*int(r.Height())*4), nil
}

func (d *fakeDriver) Pixel(p Point) (uint32, bool) { return d.pixel, true }

func (d *fakeDriver) CursorPos() (Point, bool) { return d.cursor, true }
func (d *fakeDriver) SetCursor(p Point) bool   { d.cursor = p; return true }

func (d *fakeDriver) MouseMove(dx, dy int32) { d.moves = append(d.moves, Point{dx, dy}) }
func (d *fakeDriver) MouseButton(b Button, down bool) {
	d.buttons = append(d.buttons, struct {
		b    Button
		down bool
	}{b, down})
}
func (d *fakeDriver) Scroll(clicks int32) { d.scrolls = append(d.scrolls, clicks) }

func (d *fakeDriver) SendKeys(down bool, codes []uint16) {
	cp := make([]uint16, len(codes))
	copy(cp, codes)
	d.sent = append(d.sent, keyBatch{down: down, codes: cp})
}

func (d *fakeDriver) KeyState(code uint16) bool   { return d.keys[code] }
func (d *fakeDriver) KeyToggled(code uint16) bool { return d.toggles[code] }
func (d *fakeDriver) ButtonsSwapped() bool        { return d.swapped }

func (d *fakeDriver) Close() error { d.closed = true; return nil }

func newTestSession(t interface{ Fatalf(string, ...interface{}) }, drv Driver, opts ...Option) *Session {
	s, err := New(append([]Option{WithDriver(drv)}, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}
