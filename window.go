package winslot

// IsOpen reports whether the slot currently resolves to a live window.
func (s *Session) IsOpen(id int) bool {
	return s.Resolve(id) != 0
}

// HasFocus reports whether the resolved window is the foreground window.
// False when the slot does not resolve.
func (s *Session) HasFocus(id int) bool {
	h := s.Resolve(id)
	if h == 0 {
		return false
	}
	return s.drv.Foreground() == h
}

// SetFocus brings the resolved window to the foreground.
func (s *Session) SetFocus(id int) bool {
	h := s.Resolve(id)
	if h == 0 {
		return false
	}
	return s.drv.Focus(h)
}

// Bounds returns the window's outer rectangle in screen space. For an
// unresolved slot every field holds Invalid.
func (s *Session) Bounds(id int) Rect {
	h := s.Resolve(id)
	if h == 0 {
		return invalidRect
	}
	r, ok := s.drv.OuterBounds(h)
	if !ok {
		return invalidRect
	}
	return r
}

// WindowSize returns the client-area size, which excludes borders and the
// title bar. For an unresolved slot both fields hold Invalid.
func (s *Session) WindowSize(id int) Point {
	h := s.Resolve(id)
	if h == 0 {
		return invalidPoint
	}
	p, ok := s.drv.ClientSize(h)
	if !ok {
		return invalidPoint
	}
	return p
}

// CloseWindow asks the resolved window to close. The request is delivered
// but not awaited; the application may refuse it.
func (s *Session) CloseWindow(id int) bool {
	h := s.Resolve(id)
	if h == 0 {
		return false
	}
	return s.drv.CloseWindow(h)
}

// DisplaySize returns the pixel dimensions of the main display.
func (s *Session) DisplaySize() (w, h int32) {
	return s.drv.DisplaySize()
}
