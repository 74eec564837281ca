package winslot

// CursorPos returns the cursor position in raw screen coordinates.
func (s *Session) CursorPos() Point {
	p, ok := s.drv.CursorPos()
	if !ok {
		return invalidPoint
	}
	return p
}

// SetCursor moves the cursor to raw screen coordinates.
func (s *Session) SetCursor(x, y int32) {
	s.drv.SetCursor(Point{x, y})
}

// CursorPosIn returns the cursor position relative to the resolved window's
// client area. For an unresolved slot both fields hold Invalid.
func (s *Session) CursorPosIn(id int) Point {
	h := s.Resolve(id)
	if h == 0 {
		return invalidPoint
	}
	p, ok := s.drv.CursorPos()
	if !ok {
		return invalidPoint
	}
	c, ok := s.drv.ScreenToClient(h, p)
	if !ok {
		return invalidPoint
	}
	return c
}

// SetCursorIn moves the cursor to a client-area coordinate of the resolved
// window.
func (s *Session) SetCursorIn(id int, x, y int32) bool {
	h := s.Resolve(id)
	if h == 0 {
		return false
	}
	p, ok := s.drv.ClientToScreen(h, Point{x, y})
	if !ok {
		return false
	}
	return s.drv.SetCursor(p)
}

// MoveMouse moves the cursor by a relative delta. Fire-and-forget.
func (s *Session) MoveMouse(dx, dy int32) {
	s.drv.MouseMove(dx, dy)
}

// MouseButton injects a press or release of a mouse button.
func (s *Session) MouseButton(b Button, down bool) {
	s.drv.MouseButton(b, down)
}

// Scroll injects scroll-wheel clicks; negative values reverse direction.
func (s *Session) Scroll(clicks int32) {
	s.drv.Scroll(clicks)
}

// KeyEvent injects a press or release of a single virtual key.
func (s *Session) KeyEvent(down bool, code uint16) {
	s.drv.SendKeys(down, []uint16{code})
}

// KeyEvents injects a press or release for a batch of virtual keys in one
// dispatch.
func (s *Session) KeyEvents(down bool, codes ...uint16) {
	if len(codes) == 0 {
		return
	}
	s.drv.SendKeys(down, codes)
}

// IsKeyDown reports whether a key or mouse button is physically held at the
// instant of the call. When the user has swapped the primary and secondary
// mouse buttons, VKLButton and VKRButton are exchanged before the query so
// the answer tracks the physical button, matching the OS's own behavior for
// logical button codes.
func (s *Session) IsKeyDown(code uint16) bool {
	if code == VKLButton || code == VKRButton {
		if s.drv.ButtonsSwapped() {
			if code == VKLButton {
				code = VKRButton
			} else {
				code = VKLButton
			}
		}
	}
	return s.drv.KeyState(code)
}

// IsKeyToggled reports the toggle state of lock-style keys such as caps
// lock.
func (s *Session) IsKeyToggled(code uint16) bool {
	return s.drv.KeyToggled(code)
}
