package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"
	"github.com/agiangrant/flexchrome"
)

const (
	atomState      = "_NET_WM_STATE"
	atomMaxVert    = "_NET_WM_STATE_MAXIMIZED_VERT"
	atomMaxHorz    = "_NET_WM_STATE_MAXIMIZED_HORZ"
	atomHidden     = "_NET_WM_STATE_HIDDEN"
	atomFullscreen = "_NET_WM_STATE_FULLSCREEN"
)

// StateFromAtoms maps a _NET_WM_STATE atom list to a window state. A window
// only counts as maximized when both axes are maximized.
func StateFromAtoms(atoms []string) flexchrome.WindowState {
	var vert, horz, hidden, fullscreen bool
	for _, a := range atoms {
		switch a {
		case atomMaxVert:
			vert = true
		case atomMaxHorz:
			horz = true
		case atomHidden:
			hidden = true
		case atomFullscreen:
			fullscreen = true
		}
	}

	switch {
	case hidden:
		return flexchrome.StateMinimized
	case fullscreen:
		return flexchrome.StateFullScreen
	case vert && horz:
		return flexchrome.StateMaximized
	}
	return flexchrome.StateNormal
}

// Window adapts a managed X11 window to flexchrome.Window. State changes
// made by the window manager arrive as PropertyNotify events, so
// subscribers are called from the goroutine running Connection.EventLoop.
type Window struct {
	xu *xgbutil.XUtil
	id xproto.Window

	state   flexchrome.WindowState
	subs    map[int]func(flexchrome.StateChange)
	nextSub int
}

var _ flexchrome.Window = (*Window)(nil)

// Window starts tracking the window id.
func (c *Connection) Window(id xproto.Window) (*Window, error) {
	w := &Window{
		xu:   c.XUtil,
		id:   id,
		subs: make(map[int]func(flexchrome.StateChange)),
	}

	if err := xwindow.New(c.XUtil, id).Listen(xproto.EventMaskPropertyChange); err != nil {
		return nil, fmt.Errorf("failed to listen on window 0x%x: %w", id, err)
	}
	w.state = w.readState()

	xevent.PropertyNotifyFun(func(xu *xgbutil.XUtil, ev xevent.PropertyNotifyEvent) {
		name, err := xprop.AtomName(xu, ev.Atom)
		if err != nil || name != atomState {
			return
		}
		w.update(w.readState())
	}).Connect(c.XUtil, id)

	return w, nil
}

// ID returns the X11 window id.
func (w *Window) ID() xproto.Window {
	return w.id
}

// Release stops tracking the window.
func (w *Window) Release() {
	xevent.Detach(w.xu, w.id)
	clear(w.subs)
}

func (w *Window) State() flexchrome.WindowState {
	return w.state
}

// SetState asks the window manager for the new state. The change is
// published once the window manager updates _NET_WM_STATE.
func (w *Window) SetState(state flexchrome.WindowState) error {
	var err error
	switch state {
	case flexchrome.StateMaximized:
		err = ewmh.WmStateReqExtra(w.xu, w.id, ewmh.StateAdd, atomMaxVert, atomMaxHorz, 2)
	case flexchrome.StateMinimized:
		err = ewmh.ClientEvent(w.xu, w.id, "WM_CHANGE_STATE", icccm.StateIconic)
	case flexchrome.StateFullScreen:
		err = ewmh.WmStateReq(w.xu, w.id, ewmh.StateAdd, atomFullscreen)
	default:
		if w.state == flexchrome.StateMinimized {
			if err = ewmh.ActiveWindowReq(w.xu, w.id); err != nil {
				break
			}
		}
		if err = ewmh.WmStateReq(w.xu, w.id, ewmh.StateRemove, atomFullscreen); err != nil {
			break
		}
		err = ewmh.WmStateReqExtra(w.xu, w.id, ewmh.StateRemove, atomMaxVert, atomMaxHorz, 2)
	}
	if err != nil {
		return fmt.Errorf("failed to set window 0x%x %s: %w", w.id, state, err)
	}
	return nil
}

func (w *Window) Subscribe(fn func(flexchrome.StateChange)) func() {
	id := w.nextSub
	w.nextSub++
	w.subs[id] = fn
	return func() { delete(w.subs, id) }
}

func (w *Window) NativeHandle() (uintptr, bool) {
	return uintptr(w.id), w.id != 0
}

// BeginMoveDrag hands the pointer to the window manager's move loop.
func (w *Window) BeginMoveDrag() error {
	return ewmh.WmMoveresize(w.xu, w.id, ewmh.Move)
}

func (w *Window) SetTitle(title string) {
	// Best effort; a rejected title only affects the taskbar.
	_ = ewmh.WmNameSet(w.xu, w.id, title)
}

func (w *Window) Close() error {
	return ewmh.CloseWindow(w.xu, w.id)
}

func (w *Window) readState() flexchrome.WindowState {
	atoms, err := ewmh.WmStateGet(w.xu, w.id)
	if err != nil {
		// An unset property means a plain window.
		return flexchrome.StateNormal
	}
	return StateFromAtoms(atoms)
}

func (w *Window) update(state flexchrome.WindowState) {
	old := w.state
	if old == state {
		return
	}
	w.state = state
	for _, fn := range w.subs {
		fn(flexchrome.StateChange{Old: old, New: state})
	}
}
