// Package winslot locates top-level windows by name and exposes capture,
// pixel, cursor and synthetic-input operations against them.
//
// Callers register a window name under a small integer slot id once, then
// address the window through that slot for the rest of the session. The
// session resolves the name to a live OS handle lazily, caches the handle,
// and transparently re-resolves when the window closes and reopens.
//
// A Session is not safe for concurrent use; calls must be externally
// serialized.
//
//	s, err := winslot.New()
//	if err != nil {
//	    ...
//	}
//	defer s.Close()
//
//	s.Register(0, "League of Legends")
//	if s.IsOpen(0) {
//	    buf := s.CaptureWindow(0)
//	    defer buf.Release()
//	    ...
//	}
package winslot

const (
	// registerLimit bounds the slot ids Register accepts.
	registerLimit = 100
	// slotLimit bounds the slot ids Resolve accepts; wider than
	// registerLimit, the extra slots simply never resolve.
	slotLimit = 1000
)

// libVersion is bumped whenever the operation surface or a sentinel contract
// changes. Hosts compare it against the value they were built for.
const libVersion = 9

// Version returns the library's interface version constant.
func Version() int { return libVersion }

type slot struct {
	name   string
	handle Handle
}

// Session owns the slot table and one platform driver. It replaces the
// process-wide mutable registry of the native implementation: every instance
// is fully independent.
type Session struct {
	drv   Driver
	slots [slotLimit]slot
	exact bool
	trace TraceFunc
}

// Option configures a Session at construction time.
type Option func(*Session)

// WithExactMatch makes the default matching rule require full-title equality
// instead of substring containment.
func WithExactMatch(exact bool) Option {
	return func(s *Session) { s.exact = exact }
}

// WithTrace installs a diagnostic sink invoked with every window title seen
// during enumeration and a summary line per enumeration pass.
func WithTrace(fn TraceFunc) Option {
	return func(s *Session) { s.trace = fn }
}

// WithDriver substitutes the platform driver. Used by tests and by hosts
// embedding their own backend.
func WithDriver(d Driver) Option {
	return func(s *Session) { s.drv = d }
}

// New creates a session backed by the native driver for this platform,
// unless WithDriver overrides it.
func New(opts ...Option) (*Session, error) {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}
	if s.drv == nil {
		drv, err := newPlatformDriver()
		if err != nil {
			return nil, err
		}
		s.drv = drv
	}
	return s, nil
}

// Close releases the driver's OS resources (display connection, cached
// device context). The session must not be used afterwards.
func (s *Session) Close() error {
	if s.drv == nil {
		return nil
	}
	err := s.drv.Close()
	s.drv = nil
	return err
}
