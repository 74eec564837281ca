package winslot

// CaptureWindow captures the resolved window's outer bounds. Returns nil for
// an unresolved slot or a failed blit.
func (s *Session) CaptureWindow(id int) *Buffer {
	h := s.Resolve(id)
	if h == 0 {
		return nil
	}
	r, ok := s.drv.OuterBounds(h)
	if !ok {
		return nil
	}
	return s.grab(r)
}

// CaptureRegion captures a client-area-relative rectangle of the resolved
// window, translated to screen space. Returns nil for an unresolved slot or
// a failed blit.
func (s *Session) CaptureRegion(id int, x, y, w, h int32) *Buffer {
	hw := s.Resolve(id)
	if hw == 0 {
		return nil
	}
	p, ok := s.drv.ClientToScreen(hw, Point{x, y})
	if !ok {
		return nil
	}
	return s.grab(Rect{p.X, p.Y, p.X + w, p.Y + h})
}

// CaptureDisplay captures the whole main display.
func (s *Session) CaptureDisplay() *Buffer {
	w, h := s.drv.DisplaySize()
	return s.grab(Rect{0, 0, w, h})
}

func (s *Session) grab(r Rect) *Buffer {
	w, h := r.Width(), r.Height()
	if w <= 0 || h <= 0 {
		return nil
	}
	pix, err := s.drv.Capture(r)
	if err != nil {
		if s.trace != nil {
			s.trace("capture failed: "+err.Error(), TraceEnumEnd)
		}
		return nil
	}
	return &Buffer{Pix: pix, Width: w, Height: h}
}

// PixelAt reads the display pixel under a client-area coordinate of the
// resolved window, packed 0x00BBGGRR. Returns InvalidColor for an unresolved
// slot.
func (s *Session) PixelAt(id int, x, y int32) uint32 {
	h := s.Resolve(id)
	if h == 0 {
		return InvalidColor
	}
	p, ok := s.drv.ClientToScreen(h, Point{x, y})
	if !ok {
		return InvalidColor
	}
	c, ok := s.drv.Pixel(p)
	if !ok {
		return InvalidColor
	}
	return c
}
