package winslot

import "fmt"

// Register binds a window name to a slot id and clears any cached handle so
// the next operation re-resolves. Registration is atomic: an out-of-range id
// returns ErrSlotRange and changes nothing.
//
// The name is copied by value; the caller keeps no obligation to retain it.
func (s *Session) Register(id int, name string) error {
	if id < 0 || id >= registerLimit {
		return ErrSlotRange
	}
	s.slots[id] = slot{name: name}
	return nil
}

// Resolve turns a slot id into a live window handle, or 0 if the slot is
// unregistered, out of range, or no matching window currently exists.
//
// A cached handle is returned directly while its window is alive. When the
// window has died, the cache is dropped, the driver's display reference is
// rotated, and a fresh enumeration pass runs. Enumeration stops at the first
// visible window whose title satisfies the matching policy.
func (s *Session) Resolve(id int) Handle {
	if id < 0 || id >= slotLimit {
		return 0
	}
	sl := &s.slots[id]
	if sl.handle != 0 {
		if s.drv.IsAlive(sl.handle) {
			return sl.handle
		}
		sl.handle = 0
		// A dying window can invalidate the cached display device context
		// along with it, so rotate it before anything captures again.
		s.drv.InvalidateDisplay()
	}
	if sl.name == "" {
		return 0
	}
	visited := 0
	s.drv.EnumWindows(func(h Handle, title string) bool {
		visited++
		if s.trace != nil {
			s.trace(title, TraceWindowTitle)
		}
		if titleEligible(title) && titleMatches(title, sl.name, s.exact) {
			sl.handle = h
			return false
		}
		return true
	})
	if s.trace != nil {
		s.trace(fmt.Sprintf("slot %d %q: visited %d windows, handle=%#x",
			id, sl.name, visited, uintptr(sl.handle)), TraceEnumEnd)
	}
	return sl.handle
}
