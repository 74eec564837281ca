package winslot

// Virtual-key codes accepted by KeyEvent, KeyEvents, IsKeyDown and
// IsKeyToggled. The values follow the Windows virtual-key table; the Windows
// driver translates them to hardware scan codes before injection, the macOS
// driver maps them to named keys, and the X11 driver expects raw X keycodes
// instead (see driver_x11.go).
const (
	VKLButton uint16 = 0x01
	VKRButton uint16 = 0x02
	VKMButton uint16 = 0x04

	VKBack    uint16 = 0x08
	VKTab     uint16 = 0x09
	VKReturn  uint16 = 0x0D
	VKShift   uint16 = 0x10
	VKControl uint16 = 0x11
	VKMenu    uint16 = 0x12 // alt
	VKCapital uint16 = 0x14 // caps lock
	VKEscape  uint16 = 0x1B
	VKSpace   uint16 = 0x20

	VKLeft  uint16 = 0x25
	VKUp    uint16 = 0x26
	VKRight uint16 = 0x27
	VKDown  uint16 = 0x28

	// '0'..'9' and 'A'..'Z' match their ASCII values.
	VK0 uint16 = 0x30
	VK9 uint16 = 0x39
	VKA uint16 = 0x41
	VKZ uint16 = 0x5A

	VKF1  uint16 = 0x70
	VKF2  uint16 = 0x71
	VKF3  uint16 = 0x72
	VKF4  uint16 = 0x73
	VKF5  uint16 = 0x74
	VKF6  uint16 = 0x75
	VKF7  uint16 = 0x76
	VKF8  uint16 = 0x77
	VKF9  uint16 = 0x78
	VKF10 uint16 = 0x79
	VKF11 uint16 = 0x7A
	VKF12 uint16 = 0x7B

	VKNumLock    uint16 = 0x90
	VKScrollLock uint16 = 0x91
)
