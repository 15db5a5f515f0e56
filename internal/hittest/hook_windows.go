//go:build windows

package hittest

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32             = windows.NewLazySystemDLL("user32.dll")
	procCallWindowProc = user32.NewProc("CallWindowProcW")
	procDefWindowProc  = user32.NewProc("DefWindowProcW")
	procSetWindowLong  = user32.NewProc(setWindowLongName())
	procIsWindow       = user32.NewProc("IsWindow")
)

var gwlpWndProc int32 = -4

// setWindowLongName picks the export that replaces a window procedure.
// 32-bit user32 only exports the non-Ptr variant.
func setWindowLongName() string {
	if unsafe.Sizeof(uintptr(0)) == 8 {
		return "SetWindowLongPtrW"
	}
	return "SetWindowLongW"
}

// Hook is a subclassed window procedure. It is owned by exactly one chrome
// controller and must be released before the controller goes away.
type Hook struct {
	hwnd     uintptr
	orig     uintptr
	callback uintptr
	ic       *Interceptor
	released bool
}

// Install subclasses hwnd so every message passes through ic before the
// original window procedure.
func Install(hwnd uintptr, ic *Interceptor) (*Hook, error) {
	if hwnd == 0 {
		return nil, ErrNoHandle
	}
	// Callback slots are never freed, so reject stale handles before
	// allocating one. A subclass call that still fails leaks its slot.
	if ok, _, _ := procIsWindow.Call(hwnd); ok == 0 {
		return nil, fmt.Errorf("%w: %#x is not a window", ErrNoHandle, hwnd)
	}

	h := &Hook{hwnd: hwnd, ic: ic}
	h.callback = windows.NewCallback(h.wndProc)

	orig, _, err := procSetWindowLong.Call(hwnd, uintptr(uint32(gwlpWndProc)), h.callback)
	if orig == 0 {
		if errno, ok := err.(syscall.Errno); ok && errno != 0 {
			return nil, fmt.Errorf("hittest: subclass window %#x: %w", hwnd, errno)
		}
	}
	h.orig = orig

	ic.SetNext(h.callOriginal)
	return h, nil
}

// Release restores the original window procedure and detaches the
// interceptor. It is safe to call more than once.
func (h *Hook) Release() error {
	if h == nil || h.released {
		return nil
	}
	h.released = true
	h.ic.Detach()

	if h.orig == 0 {
		return nil
	}
	ret, _, err := procSetWindowLong.Call(h.hwnd, uintptr(uint32(gwlpWndProc)), h.orig)
	if ret == 0 {
		if errno, ok := err.(syscall.Errno); ok && errno != 0 {
			return fmt.Errorf("hittest: restore window procedure %#x: %w", h.hwnd, errno)
		}
	}
	return nil
}

// Released reports whether the original procedure has been restored.
func (h *Hook) Released() bool {
	return h.released
}

func (h *Hook) wndProc(hwnd uintptr, msg uint32, wParam, lParam uintptr) uintptr {
	if msg == WMNCDestroy {
		// Last message the window receives. Put the original procedure
		// back before the callback can outlive its controller.
		ret := h.callOriginal(msg, wParam, lParam)
		h.Release()
		return ret
	}
	return h.ic.WndProc(msg, wParam, lParam)
}

func (h *Hook) callOriginal(msg uint32, wParam, lParam uintptr) uintptr {
	if h.orig != 0 {
		ret, _, _ := procCallWindowProc.Call(h.orig, h.hwnd, uintptr(msg), wParam, lParam)
		return ret
	}
	ret, _, _ := procDefWindowProc.Call(h.hwnd, uintptr(msg), wParam, lParam)
	return ret
}
