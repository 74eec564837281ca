package winslot

import (
	"errors"
	"testing"
)

func TestRegister_RangeCheck(t *testing.T) {
	drv := newFakeDriver(fakeWindow{h: 1, title: "Notepad"})
	s := newTestSession(t, drv)

	for _, id := range []int{-1, 100, 999, 100000} {
		if err := s.Register(id, "Notepad"); !errors.Is(err, ErrSlotRange) {
			t.Fatalf("Register(%d) err=%v want ErrSlotRange", id, err)
		}
	}
	// nothing was stored anywhere, so no slot resolves and nothing
	// enumerates
	for _, id := range []int{0, 99, 100, 999} {
		if h := s.Resolve(id); h != 0 {
			t.Fatalf("Resolve(%d)=%#x after failed registrations", id, uintptr(h))
		}
	}
	if drv.enumPasses != 0 {
		t.Fatalf("enumPasses=%d, expected none for empty slots", drv.enumPasses)
	}
}

func TestResolve_RangeCheck(t *testing.T) {
	drv := newFakeDriver(fakeWindow{h: 1, title: "Notepad"})
	s := newTestSession(t, drv)

	for _, id := range []int{-1, 1000, 5000} {
		if h := s.Resolve(id); h != 0 {
			t.Fatalf("Resolve(%d)=%#x want 0", id, uintptr(h))
		}
	}
	if drv.enumPasses != 0 {
		t.Fatalf("out-of-range resolve must not enumerate, got %d passes", drv.enumPasses)
	}
}

func TestResolve_CachesHandle(t *testing.T) {
	drv := newFakeDriver(fakeWindow{h: 7, title: "Untitled - Notepad"})
	s := newTestSession(t, drv)

	if err := s.Register(3, "Notepad"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if h := s.Resolve(3); h != 7 {
		t.Fatalf("first Resolve=%#x want 7", uintptr(h))
	}
	if drv.enumPasses != 1 {
		t.Fatalf("first resolve: enumPasses=%d want 1", drv.enumPasses)
	}
	for i := 0; i < 5; i++ {
		if h := s.Resolve(3); h != 7 {
			t.Fatalf("cached Resolve=%#x want 7", uintptr(h))
		}
	}
	if drv.enumPasses != 1 {
		t.Fatalf("cached resolves must not enumerate, got %d passes", drv.enumPasses)
	}
}

func TestResolve_StaleHandleReenumerates(t *testing.T) {
	drv := newFakeDriver(
		fakeWindow{h: 7, title: "Untitled - Notepad"},
		fakeWindow{h: 9, title: "recovery - Notepad"},
	)
	s := newTestSession(t, drv)

	s.Register(0, "Notepad")
	if h := s.Resolve(0); h != 7 {
		t.Fatalf("Resolve=%#x want 7", uintptr(h))
	}

	drv.dead[7] = true
	h := s.Resolve(0)
	if h == 7 {
		t.Fatalf("stale handle returned after window died")
	}
	if h != 9 {
		t.Fatalf("Resolve=%#x want replacement window 9", uintptr(h))
	}
	if drv.enumPasses != 2 {
		t.Fatalf("enumPasses=%d want 2", drv.enumPasses)
	}
	if drv.invalidated != 1 {
		t.Fatalf("display invalidations=%d want 1", drv.invalidated)
	}
}

func TestResolve_StaleHandleNoReplacement(t *testing.T) {
	drv := newFakeDriver(fakeWindow{h: 7, title: "Untitled - Notepad"})
	s := newTestSession(t, drv)

	s.Register(0, "Notepad")
	s.Resolve(0)
	drv.dead[7] = true

	if h := s.Resolve(0); h != 0 {
		t.Fatalf("Resolve=%#x want 0 when no window matches anymore", uintptr(h))
	}
	// next call re-enumerates again rather than caching the failure
	if h := s.Resolve(0); h != 0 {
		t.Fatalf("Resolve=%#x want 0", uintptr(h))
	}
	if drv.enumPasses != 3 {
		t.Fatalf("enumPasses=%d want 3 (initial + one per failed resolve)", drv.enumPasses)
	}
}

func TestResolve_ReregisterClearsCache(t *testing.T) {
	drv := newFakeDriver(
		fakeWindow{h: 1, title: "General - Discord"},
		fakeWindow{h: 2, title: "Untitled - Notepad"},
	)
	s := newTestSession(t, drv)

	s.Register(0, "Discord")
	if h := s.Resolve(0); h != 1 {
		t.Fatalf("Resolve=%#x want 1", uintptr(h))
	}
	s.Register(0, "Notepad")
	if h := s.Resolve(0); h != 2 {
		t.Fatalf("after re-register Resolve=%#x want 2", uintptr(h))
	}
	if drv.enumPasses != 2 {
		t.Fatalf("enumPasses=%d want 2", drv.enumPasses)
	}
}

func TestResolve_StopsAtFirstMatch(t *testing.T) {
	drv := newFakeDriver(
		fakeWindow{h: 1, title: "no match here"},
		fakeWindow{h: 2, title: "Untitled - Notepad"},
		fakeWindow{h: 3, title: "another Notepad window"},
	)
	s := newTestSession(t, drv)

	s.Register(0, "Notepad")
	if h := s.Resolve(0); h != 2 {
		t.Fatalf("Resolve=%#x want first match 2", uintptr(h))
	}
	if drv.enumVisited != 2 {
		t.Fatalf("visited %d windows, enumeration must stop at the match", drv.enumVisited)
	}
}

func TestResolve_SkipsShortTitles(t *testing.T) {
	drv := newFakeDriver(
		fakeWindow{h: 1, title: "ab"},
		fakeWindow{h: 2, title: "abc"},
	)
	s := newTestSession(t, drv)

	s.Register(0, "ab")
	// "ab" appears in both titles, but two-character titles are ineligible
	if h := s.Resolve(0); h != 2 {
		t.Fatalf("Resolve=%#x want 2", uintptr(h))
	}
}

func TestResolve_UnregisteredSlotDoesNotEnumerate(t *testing.T) {
	drv := newFakeDriver(fakeWindow{h: 1, title: "Notepad"})
	s := newTestSession(t, drv)

	if h := s.Resolve(500); h != 0 {
		t.Fatalf("Resolve(500)=%#x want 0", uintptr(h))
	}
	if drv.enumPasses != 0 {
		t.Fatalf("unregistered slot must not trigger enumeration")
	}
}

func TestResolve_TraceReceivesTitlesAndSummary(t *testing.T) {
	drv := newFakeDriver(
		fakeWindow{h: 1, title: "first window"},
		fakeWindow{h: 2, title: "General - Discord"},
	)
	var titles []string
	var ends int
	s := newTestSession(t, drv, WithTrace(func(msg string, kind TraceKind) {
		switch kind {
		case TraceWindowTitle:
			titles = append(titles, msg)
		case TraceEnumEnd:
			ends++
		}
	}))

	s.Register(0, "Discord")
	s.Resolve(0)

	if len(titles) != 2 || titles[0] != "first window" || titles[1] != "General - Discord" {
		t.Fatalf("trace titles=%q", titles)
	}
	if ends != 1 {
		t.Fatalf("trace end markers=%d want 1", ends)
	}
}

func TestExactMatchMode(t *testing.T) {
	drv := newFakeDriver(fakeWindow{h: 1, title: "League of Legends (TM) Client"})

	loose := newTestSession(t, drv)
	loose.Register(0, "League of Legends")
	if h := loose.Resolve(0); h != 1 {
		t.Fatalf("substring mode: Resolve=%#x want 1", uintptr(h))
	}

	strict := newTestSession(t, newFakeDriver(fakeWindow{h: 1, title: "League of Legends (TM) Client"}),
		WithExactMatch(true))
	strict.Register(0, "League of Legends")
	if h := strict.Resolve(0); h != 0 {
		t.Fatalf("exact mode: Resolve=%#x want 0", uintptr(h))
	}
}
