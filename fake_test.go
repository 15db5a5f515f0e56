package flexchrome

import (
	"errors"

	"github.com/agiangrant/flexchrome/internal/hittest"
)

type fakeWindow struct {
	state     WindowState
	handle    uintptr
	title     string
	subs      map[int]func(StateChange)
	nextSub   int
	setStates []WindowState
	drags     int
	closed    int
	setErr    error
}

func newFakeWindow(state WindowState) *fakeWindow {
	return &fakeWindow{state: state, handle: 0x1234, subs: map[int]func(StateChange){}}
}

func (w *fakeWindow) State() WindowState { return w.state }

func (w *fakeWindow) SetState(s WindowState) error {
	w.setStates = append(w.setStates, s)
	if w.setErr != nil {
		return w.setErr
	}
	w.publish(s)
	return nil
}

// publish simulates a state change the host made on its own.
func (w *fakeWindow) publish(s WindowState) {
	old := w.state
	w.state = s
	if old == s {
		return
	}
	for _, fn := range w.subs {
		fn(StateChange{Old: old, New: s})
	}
}

func (w *fakeWindow) Subscribe(fn func(StateChange)) func() {
	id := w.nextSub
	w.nextSub++
	w.subs[id] = fn
	return func() { delete(w.subs, id) }
}

func (w *fakeWindow) NativeHandle() (uintptr, bool) { return w.handle, w.handle != 0 }
func (w *fakeWindow) BeginMoveDrag() error          { w.drags++; return nil }
func (w *fakeWindow) SetTitle(title string)         { w.title = title }
func (w *fakeWindow) Close() error                  { w.closed++; return nil }

type fakeCapability struct {
	mac    bool
	target bool
	handle uintptr
}

func (c fakeCapability) HostIsMac() bool               { return c.mac }
func (c fakeCapability) IsTargetPlatform() bool        { return c.target }
func (c fakeCapability) NativeHandle() (uintptr, bool) { return c.handle, c.handle != 0 }

type fakeHook struct {
	releases int
}

func (h *fakeHook) Released() bool { return h.releases > 0 }

func (h *fakeHook) Release() error {
	h.releases++
	return nil
}

// fakeInstaller records installs and wires the interceptor to a stub
// original window procedure.
type fakeInstaller struct {
	installs  int
	hook      *fakeHook
	err       error
	forwarded []uint32
}

func (f *fakeInstaller) install(hwnd uintptr, ic *hittest.Interceptor) (hookHandle, error) {
	f.installs++
	if f.err != nil {
		return nil, f.err
	}
	ic.SetNext(func(msg uint32, wParam, lParam uintptr) uintptr {
		f.forwarded = append(f.forwarded, msg)
		return hittest.HTClient
	})
	f.hook = &fakeHook{}
	return f.hook, nil
}

type fakeNative struct {
	visible bool
	calls   []bool
}

func (n *fakeNative) SetVisible(v bool) error {
	n.visible = v
	n.calls = append(n.calls, v)
	return nil
}

func (n *fakeNative) Visible() (bool, error) { return n.visible, nil }

var errFake = errors.New("fake failure")
