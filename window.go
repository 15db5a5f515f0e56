package flexchrome

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the point lies inside the rectangle. The right
// and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// ButtonID identifies one of the three caption buttons.
type ButtonID uint8

const (
	// ButtonNone means no caption button is targeted.
	ButtonNone ButtonID = iota
	ButtonMinimize
	ButtonMaximize
	ButtonClose
)

func (b ButtonID) String() string {
	switch b {
	case ButtonMinimize:
		return "minimize"
	case ButtonMaximize:
		return "maximize"
	case ButtonClose:
		return "close"
	default:
		return "none"
	}
}

// Window is the host window the chrome is drawn on.
//
// Implementations are driven from the UI thread; callbacks passed to
// Subscribe must be invoked on that same thread.
type Window interface {
	// State returns the current presentation of the window.
	State() WindowState

	// SetState changes the presentation. Hosts only need to honour
	// StateNormal, StateMinimized and StateMaximized.
	SetState(state WindowState) error

	// Subscribe registers fn for state transitions and returns a function
	// that removes the subscription.
	Subscribe(fn func(StateChange)) (unsubscribe func())

	// NativeHandle returns the OS window handle. ok is false before the
	// window has been created or when the host has no such handle.
	NativeHandle() (handle uintptr, ok bool)

	// BeginMoveDrag starts an OS-driven window move from the current
	// pointer-down.
	BeginMoveDrag() error

	// SetTitle sets the title shown by the taskbar and window switcher.
	SetTitle(title string)

	// Close requests the window to close.
	Close() error
}
