package hittest

// Rect is a screen-space rectangle with exclusive right and bottom edges.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

func (r Rect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Target is the chrome the interceptor borrows the maximize affordance for.
type Target interface {
	// MaximizeButtonBounds returns the drawn maximize button in screen
	// coordinates, or ok=false when it is not laid out or not visible.
	MaximizeButtonBounds() (r Rect, ok bool)

	// SetMaximizeHover mirrors OS-detected hover into the drawn button.
	SetMaximizeHover(hover bool)

	// ToggleMaximize switches the window between normal and maximized.
	ToggleMaximize()
}

// Proc is a window procedure reduced to the message triple.
type Proc func(msg uint32, wParam, lParam uintptr) uintptr

// Interceptor reinterprets non-client hit-tests over the custom maximize
// button as the native maximize button.
//
// It runs inline with the OS message dispatch on the UI thread: it must not
// block, log or allocate, and it does no locking.
type Interceptor struct {
	target   Target
	next     Proc
	over     bool // wasOverMaximizeButton
	detached bool
}

// New creates an interceptor that forwards unhandled messages to next.
func New(target Target, next Proc) *Interceptor {
	return &Interceptor{target: target, next: next}
}

// SetNext replaces the procedure unhandled messages are forwarded to. The
// Windows hook sets it to the original window procedure once subclassed.
func (i *Interceptor) SetNext(next Proc) {
	i.next = next
}

// Hovering reports whether the last hit-test landed on the maximize button.
func (i *Interceptor) Hovering() bool {
	return i.over
}

// Detached reports whether Detach has been called.
func (i *Interceptor) Detached() bool {
	return i.detached
}

// Detach turns the interceptor into a pass-through. Messages already in
// flight are forwarded untouched and no further hover or state changes
// reach the target.
func (i *Interceptor) Detach() {
	i.detached = true
	i.over = false
}

// Reset clears a pending maximize hover, e.g. when the window is minimized
// while the pointer rests on the button and no mouse-leave will follow.
func (i *Interceptor) Reset() {
	if i.detached {
		return
	}
	i.leave()
}

// WndProc handles one window message.
func (i *Interceptor) WndProc(msg uint32, wParam, lParam uintptr) uintptr {
	if i.detached {
		return i.forward(msg, wParam, lParam)
	}

	switch msg {
	case WMNCHitTest:
		x, y := PointFromLParam(lParam)
		if r, ok := i.target.MaximizeButtonBounds(); ok && r.contains(x, y) {
			if !i.over {
				i.over = true
				i.target.SetMaximizeHover(true)
			}
			return HTMaxButton
		}
		i.leave()
		return i.forward(msg, wParam, lParam)

	case WMNCMouseLeave:
		i.leave()
		return i.forward(msg, wParam, lParam)

	case WMNCLButtonDown:
		// Keep the press so DefWindowProc does not start its own
		// maximize-button tracking loop.
		if wParam == HTMaxButton {
			return 0
		}

	case WMNCLButtonUp:
		if wParam == HTMaxButton {
			i.target.ToggleMaximize()
			return 0
		}
	}

	return i.forward(msg, wParam, lParam)
}

func (i *Interceptor) leave() {
	if !i.over {
		return
	}
	i.over = false
	i.target.SetMaximizeHover(false)
}

func (i *Interceptor) forward(msg uint32, wParam, lParam uintptr) uintptr {
	if i.next == nil {
		return 0
	}
	return i.next(msg, wParam, lParam)
}
