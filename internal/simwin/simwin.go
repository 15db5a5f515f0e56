// Package simwin is an in-memory host window. The CLI uses it to drive a
// chrome without a display server.
package simwin

import (
	"errors"

	"github.com/agiangrant/flexchrome"
	"github.com/charmbracelet/log"
)

// ErrClosed is returned by operations on a closed window.
var ErrClosed = errors.New("simwin: window closed")

// Window applies state requests immediately and records what happened.
type Window struct {
	state   flexchrome.WindowState
	title   string
	handle  uintptr
	closed  bool
	drags   int
	subs    map[int]func(flexchrome.StateChange)
	nextSub int
	log     *log.Logger
}

var _ flexchrome.Window = (*Window)(nil)

// New creates a window in state. A zero handle makes NativeHandle report
// no handle.
func New(state flexchrome.WindowState, handle uintptr) *Window {
	return &Window{
		state:  state,
		handle: handle,
		subs:   make(map[int]func(flexchrome.StateChange)),
	}
}

// SetLogger makes the window log every call at debug level.
func (w *Window) SetLogger(l *log.Logger) {
	w.log = l
}

func (w *Window) State() flexchrome.WindowState {
	return w.state
}

func (w *Window) SetState(state flexchrome.WindowState) error {
	if w.closed {
		return ErrClosed
	}
	w.debug("set state", "state", state)
	w.Publish(state)
	return nil
}

// Publish changes the state as if the OS had done it.
func (w *Window) Publish(state flexchrome.WindowState) {
	old := w.state
	if old == state {
		return
	}
	w.state = state
	for _, fn := range w.subs {
		fn(flexchrome.StateChange{Old: old, New: state})
	}
}

func (w *Window) Subscribe(fn func(flexchrome.StateChange)) func() {
	id := w.nextSub
	w.nextSub++
	w.subs[id] = fn
	return func() { delete(w.subs, id) }
}

// Subscribers returns the number of live subscriptions.
func (w *Window) Subscribers() int {
	return len(w.subs)
}

func (w *Window) NativeHandle() (uintptr, bool) {
	return w.handle, w.handle != 0
}

func (w *Window) BeginMoveDrag() error {
	if w.closed {
		return ErrClosed
	}
	w.drags++
	w.debug("begin move drag")
	return nil
}

// Drags returns how many move drags were started.
func (w *Window) Drags() int {
	return w.drags
}

func (w *Window) SetTitle(title string) {
	w.title = title
	w.debug("set title", "title", title)
}

// Title returns the last title set.
func (w *Window) Title() string {
	return w.title
}

func (w *Window) Close() error {
	if w.closed {
		return ErrClosed
	}
	w.closed = true
	w.debug("close")
	return nil
}

// Closed reports whether Close was called.
func (w *Window) Closed() bool {
	return w.closed
}

func (w *Window) debug(msg string, kv ...any) {
	if w.log != nil {
		w.log.Debug(msg, kv...)
	}
}
