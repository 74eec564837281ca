package winslot

import "image"

// Handle is an opaque reference to a live top-level window. The zero value
// means "no window". What it wraps is driver specific: an HWND on Windows, an
// X window id on X11 and a process id on macOS.
type Handle uintptr

// Invalid is the marker written into every field of a sentinel Point or Rect
// returned for an unresolved slot. Callers that predate this rewrite compare
// against this exact value, so it must not change.
const Invalid int32 = 999999999

// InvalidColor is returned by PixelAt for an unresolved slot.
const InvalidColor uint32 = 999999999

// Point is a screen- or client-space coordinate pair.
type Point struct {
	X int32
	Y int32
}

// Rect is a screen-space rectangle. Right and Bottom are exclusive, so
// Right-Left is the width and Bottom-Top the height.
type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

func (r Rect) Width() int32  { return r.Right - r.Left }
func (r Rect) Height() int32 { return r.Bottom - r.Top }

// invalidPoint and invalidRect are the documented unresolved-slot sentinels.
var (
	invalidPoint = Point{Invalid, Invalid}
	invalidRect  = Rect{Invalid, Invalid, Invalid, Invalid}
)

// Button identifies a mouse button for synthetic input.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Buffer holds one captured frame: Width*Height*4 bytes of tightly packed
// BGRA pixel data in top-down row order. Ownership transfers to the caller on
// return; the session keeps no reference.
type Buffer struct {
	Pix    []byte
	Width  int32
	Height int32
}

// Release exists for parity with the native contract, where capture buffers
// had to be freed through an explicit companion call. Pixel data here is
// garbage collected, so this does nothing.
func (b *Buffer) Release() {}

// Image copies the buffer into an *image.RGBA, converting BGRA to RGBA and
// forcing alpha opaque. Mainly useful for writing captures out as PNG.
func (b *Buffer) Image() *image.RGBA {
	n := len(b.Pix)
	pix := make([]byte, n)
	for i := 0; i+3 < n; i += 4 {
		pix[i] = b.Pix[i+2]
		pix[i+1] = b.Pix[i+1]
		pix[i+2] = b.Pix[i]
		pix[i+3] = 0xFF
	}
	return &image.RGBA{
		Pix:    pix,
		Stride: int(b.Width) * 4,
		Rect:   image.Rect(0, 0, int(b.Width), int(b.Height)),
	}
}

// TraceKind classifies a message passed to a TraceFunc.
type TraceKind int

const (
	// TraceWindowTitle reports the title of a window visited during
	// enumeration.
	TraceWindowTitle TraceKind = iota
	// TraceEnumEnd reports the outcome of one enumeration pass.
	TraceEnumEnd
)

// TraceFunc receives enumeration diagnostics when installed with WithTrace.
// It is purely informational and absent by default.
type TraceFunc func(message string, kind TraceKind)
