// Package hittest lets a custom-drawn maximize button take part in the
// native Windows hover affordances (the Windows 11 snap layout flyout).
//
// The OS only shows those affordances when WM_NCHITTEST classifies the
// pointer as HTMAXBUTTON. The Interceptor answers that classification for
// the custom button's screen rectangle and mirrors the OS-detected hover
// back into the drawn button.
package hittest

// Window messages handled by the interceptor. Values match winuser.h.
const (
	WMNCDestroy     uint32 = 0x0082
	WMNCHitTest     uint32 = 0x0084
	WMNCMouseMove   uint32 = 0x00A0
	WMNCLButtonDown uint32 = 0x00A1
	WMNCLButtonUp   uint32 = 0x00A2
	WMNCMouseLeave  uint32 = 0x02A2
)

// Hit-test results returned from WM_NCHITTEST. Values match winuser.h.
const (
	HTNowhere   uintptr = 0
	HTClient    uintptr = 1
	HTCaption   uintptr = 2
	HTMinButton uintptr = 8
	HTMaxButton uintptr = 9
	HTClose     uintptr = 20
)

// PointFromLParam decodes the screen point carried by WM_NCHITTEST and the
// other non-client mouse messages. Coordinates are signed 16-bit values so
// monitors left of or above the primary one decode correctly.
func PointFromLParam(lParam uintptr) (x, y int) {
	x = int(int16(uint16(lParam & 0xFFFF)))
	y = int(int16(uint16((lParam >> 16) & 0xFFFF)))
	return x, y
}

// PointToLParam packs a screen point the way the OS does for non-client
// mouse messages.
func PointToLParam(x, y int) uintptr {
	return uintptr(uint32(uint16(int16(x))) | uint32(uint16(int16(y)))<<16)
}
