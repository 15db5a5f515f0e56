package flexchrome

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/agiangrant/flexchrome/internal/hittest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var windowsHost = fakeCapability{target: true, handle: 0x1234}

var testLayout = ButtonLayout{
	Minimize: Rect{X: 60, Y: 0, Width: 40, Height: 30},
	Maximize: Rect{X: 100, Y: 0, Width: 40, Height: 30},
	Close:    Rect{X: 140, Y: 0, Width: 40, Height: 30},
}

func newTestChrome(t *testing.T, win *fakeWindow, capability Capability, opts ...Option) (*Chrome, *fakeInstaller) {
	t.Helper()
	opts = append([]Option{WithCapability(capability), WithStandardMaximize()}, opts...)
	c, err := New(win, opts...)
	require.NoError(t, err)
	inst := &fakeInstaller{}
	c.install = inst.install
	return c, inst
}

func TestNewRequiresMaximizeStrategy(t *testing.T) {
	_, err := New(newFakeWindow(StateNormal))
	assert.ErrorIs(t, err, ErrNoMaximizeStrategy)

	_, err = New(newFakeWindow(StateNormal), WithExternalMaximize(nil))
	assert.ErrorIs(t, err, ErrNoExternalAction)

	_, err = New(nil, WithStandardMaximize())
	assert.ErrorIs(t, err, ErrNilWindow)
}

func TestAttachEmitsCurrentStateAndTitle(t *testing.T) {
	win := newFakeWindow(StateMaximized)
	c, _ := newTestChrome(t, win, fakeCapability{})

	require.NoError(t, c.Attach())

	assert.Equal(t, StateMaximized, c.Bridge().WindowState())
	assert.Equal(t, GlyphWinRestoreNormal, c.Visuals().Maximize.Glyph)
	assert.ErrorIs(t, c.Attach(), ErrAlreadyAttached)
}

func TestAttachLeavesHostTitleAlone(t *testing.T) {
	win := newFakeWindow(StateNormal)
	win.title = "vim - notes.txt"
	c, _ := newTestChrome(t, win, fakeCapability{})

	require.NoError(t, c.Attach())
	assert.Equal(t, "vim - notes.txt", win.title)
	assert.Equal(t, DefaultTitle, c.Title())

	c.Detach()
	assert.Equal(t, "vim - notes.txt", win.title)
}

func TestEmptyTitleOptionFallsBack(t *testing.T) {
	win := newFakeWindow(StateNormal)
	win.title = "vim - notes.txt"
	c, _ := newTestChrome(t, win, fakeCapability{}, WithTitle(""))

	require.NoError(t, c.Attach())

	assert.Equal(t, DefaultTitle, c.Title())
	assert.Equal(t, DefaultTitle, win.title)
}

func TestStyleResolvedFromCapability(t *testing.T) {
	mac, _ := newTestChrome(t, newFakeWindow(StateNormal), fakeCapability{mac: true})
	assert.True(t, mac.IsMacStyle())
	assert.True(t, mac.Visuals().MacSetVisible)

	forced, _ := newTestChrome(t, newFakeWindow(StateNormal), fakeCapability{mac: true},
		WithPlatformStyle(StyleWindows))
	assert.False(t, forced.IsMacStyle())

	forced.SwitchPlatformStyle(StyleMacOS)
	v := forced.Visuals()
	assert.True(t, v.MacSetVisible)
	assert.False(t, v.WindowsSetVisible)
	assert.Equal(t, StyleMacOS, forced.PlatformStyle())
}

func TestHookInstalledOnceOnTargetPlatform(t *testing.T) {
	c, inst := newTestChrome(t, newFakeWindow(StateNormal), windowsHost)

	require.NoError(t, c.Attach())
	assert.True(t, c.HookInstalled())
	assert.True(t, c.InstallHook())
	assert.Equal(t, 1, inst.installs)
}

func TestHookNotReinstalledAfterWindowDestroyed(t *testing.T) {
	c, inst := newTestChrome(t, newFakeWindow(StateNormal), windowsHost)
	require.NoError(t, c.Attach())

	// The hook releases itself on WM_NCDESTROY.
	require.NoError(t, inst.hook.Release())

	assert.False(t, c.HookInstalled())
	assert.False(t, c.InstallHook())
	assert.Equal(t, 1, inst.installs)
}

func TestHookSkippedOffTargetPlatform(t *testing.T) {
	c, inst := newTestChrome(t, newFakeWindow(StateNormal), fakeCapability{handle: 0x1234})

	require.NoError(t, c.Attach())

	assert.False(t, c.HookInstalled())
	assert.Zero(t, inst.installs)
}

func TestHookSkippedWithoutHandle(t *testing.T) {
	c, inst := newTestChrome(t, newFakeWindow(StateNormal), fakeCapability{target: true})

	require.NoError(t, c.Attach())

	assert.False(t, c.HookInstalled())
	assert.Zero(t, inst.installs)
}

func TestHookInstallFailureIsNotFatal(t *testing.T) {
	win := newFakeWindow(StateNormal)
	c, inst := newTestChrome(t, win, windowsHost)
	inst.err = errFake

	require.NoError(t, c.Attach())
	assert.False(t, c.HookInstalled())

	require.NoError(t, c.Click(ButtonMaximize))
	assert.Equal(t, StateMaximized, win.State())
}

func TestHitTestDrivesHoverAndToggle(t *testing.T) {
	win := newFakeWindow(StateNormal)
	c, inst := newTestChrome(t, win, windowsHost)
	require.NoError(t, c.Attach())
	c.Layout(testLayout)

	ret := c.WndProc(hittest.WMNCHitTest, 0, hittest.PointToLParam(120, 15))
	assert.Equal(t, hittest.HTMaxButton, ret)
	assert.Equal(t, GlyphWinMaximizeHover, c.Visuals().Maximize.Glyph)

	c.WndProc(hittest.WMNCLButtonDown, hittest.HTMaxButton, hittest.PointToLParam(120, 15))
	c.WndProc(hittest.WMNCLButtonUp, hittest.HTMaxButton, hittest.PointToLParam(120, 15))
	assert.Equal(t, StateMaximized, win.State())
	assert.Equal(t, GlyphWinRestoreHover, c.Visuals().Maximize.Glyph)

	c.WndProc(hittest.WMNCLButtonUp, hittest.HTMaxButton, hittest.PointToLParam(120, 15))
	assert.Equal(t, StateNormal, win.State())

	c.WndProc(hittest.WMNCMouseLeave, 0, 0)
	assert.Equal(t, GlyphWinMaximizeNormal, c.Visuals().Maximize.Glyph)
	assert.Equal(t, []uint32{hittest.WMNCMouseLeave}, inst.forwarded)
}

func TestHitTestBeforeLayoutForwards(t *testing.T) {
	c, inst := newTestChrome(t, newFakeWindow(StateNormal), windowsHost)
	require.NoError(t, c.Attach())

	ret := c.WndProc(hittest.WMNCHitTest, 0, hittest.PointToLParam(120, 15))

	assert.Equal(t, hittest.HTClient, ret)
	assert.Len(t, inst.forwarded, 1)
	assert.Equal(t, ButtonNone, c.Bridge().HoverTarget())
}

func TestHitTestIgnoredWhileMacStyle(t *testing.T) {
	c, inst := newTestChrome(t, newFakeWindow(StateNormal), windowsHost, WithPlatformStyle(StyleMacOS))
	require.NoError(t, c.Attach())
	c.Layout(testLayout)

	ret := c.WndProc(hittest.WMNCHitTest, 0, hittest.PointToLParam(120, 15))

	assert.Equal(t, hittest.HTClient, ret)
	assert.Len(t, inst.forwarded, 1)
}

func TestSwitchToMacStyleClearsInterceptorHover(t *testing.T) {
	c, inst := newTestChrome(t, newFakeWindow(StateNormal), windowsHost)
	require.NoError(t, c.Attach())
	c.Layout(testLayout)
	c.WndProc(hittest.WMNCHitTest, 0, hittest.PointToLParam(120, 15))
	require.Equal(t, ButtonMaximize, c.Bridge().HoverTarget())

	c.SwitchPlatformStyle(StyleMacOS)

	assert.Equal(t, ButtonNone, c.Bridge().HoverTarget())
	assert.Equal(t, GlyphMacMaximizeNormal, c.Visuals().Maximize.Glyph)
	assert.Equal(t, GlyphMacCloseNormal, c.Visuals().Close.Glyph)

	// The interceptor no longer thinks the pointer is over maximize, so a
	// later hit-test back on the Windows set sets hover again.
	c.SwitchPlatformStyle(StyleWindows)
	ret := c.WndProc(hittest.WMNCHitTest, 0, hittest.PointToLParam(120, 15))
	assert.Equal(t, hittest.HTMaxButton, ret)
	assert.Equal(t, GlyphWinMaximizeHover, c.Visuals().Maximize.Glyph)
	assert.Empty(t, inst.forwarded)
}

func TestMinimizeClearsInterceptorHover(t *testing.T) {
	win := newFakeWindow(StateNormal)
	c, _ := newTestChrome(t, win, windowsHost)
	require.NoError(t, c.Attach())
	c.Layout(testLayout)

	c.WndProc(hittest.WMNCHitTest, 0, hittest.PointToLParam(120, 15))
	require.Equal(t, ButtonMaximize, c.Bridge().HoverTarget())

	win.publish(StateMinimized)

	assert.Equal(t, ButtonNone, c.Bridge().HoverTarget())
	assert.Equal(t, GlyphWinMaximizeNormal, c.Visuals().Maximize.Glyph)
}

func TestDetachRestoresAndPassesThrough(t *testing.T) {
	win := newFakeWindow(StateNormal)
	c, inst := newTestChrome(t, win, windowsHost)
	require.NoError(t, c.Attach())
	c.Layout(testLayout)
	c.WndProc(hittest.WMNCHitTest, 0, hittest.PointToLParam(120, 15))

	c.Detach()
	c.Detach()

	assert.Equal(t, 1, inst.hook.releases)
	assert.False(t, c.Attached())
	assert.False(t, c.HookInstalled())
	assert.Equal(t, ButtonNone, c.Bridge().HoverTarget())
	assert.Empty(t, win.subs)

	before := c.Visuals()
	c.WndProc(hittest.WMNCHitTest, 0, hittest.PointToLParam(120, 15))
	c.WndProc(hittest.WMNCLButtonUp, hittest.HTMaxButton, hittest.PointToLParam(120, 15))

	assert.Equal(t, StateNormal, win.State())
	assert.Empty(t, win.setStates)
	assert.Equal(t, before, c.Visuals())
	assert.Len(t, inst.forwarded, 2)

	assert.ErrorIs(t, c.Attach(), ErrDetached)
}

func TestNativeButtonsHiddenWhileAttached(t *testing.T) {
	native := &fakeNative{visible: true}
	c, _ := newTestChrome(t, newFakeWindow(StateNormal), fakeCapability{mac: true, handle: 1},
		WithNativeButtons(native))

	require.NoError(t, c.Attach())
	assert.False(t, native.visible)

	c.Detach()
	assert.True(t, native.visible)
	assert.Equal(t, []bool{false, true}, native.calls)
}

func TestClickActions(t *testing.T) {
	win := newFakeWindow(StateNormal)
	c, _ := newTestChrome(t, win, fakeCapability{})
	require.NoError(t, c.Attach())

	require.NoError(t, c.Click(ButtonMaximize))
	assert.Equal(t, StateMaximized, win.State())
	require.NoError(t, c.Click(ButtonMaximize))
	assert.Equal(t, StateNormal, win.State())

	require.NoError(t, c.Click(ButtonMinimize))
	assert.Equal(t, StateMinimized, win.State())

	require.NoError(t, c.Click(ButtonClose))
	assert.Equal(t, 1, win.closed)

	require.NoError(t, c.Click(ButtonNone))
	assert.Equal(t, []WindowState{StateMaximized, StateNormal, StateMinimized}, win.setStates)
}

func TestClickPropagatesHostError(t *testing.T) {
	win := newFakeWindow(StateNormal)
	win.setErr = errFake
	c, _ := newTestChrome(t, win, fakeCapability{})
	require.NoError(t, c.Attach())

	assert.ErrorIs(t, c.Click(ButtonMinimize), errFake)
}

func TestExternalMaximizeFailureIsSwallowed(t *testing.T) {
	win := newFakeWindow(StateNormal)
	var (
		mu      sync.Mutex
		actions []string
	)
	done := make(chan struct{})
	action := ActionFunc(func(_ context.Context, a string) error {
		mu.Lock()
		actions = append(actions, a)
		mu.Unlock()
		close(done)
		return errFake
	})
	c, _ := newTestChrome(t, win, fakeCapability{}, WithExternalMaximize(action))
	require.NoError(t, c.Attach())

	require.NoError(t, c.Click(ButtonMaximize))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("external action was not run")
	}
	mu.Lock()
	assert.Equal(t, []string{ActionTile}, actions)
	mu.Unlock()
	assert.Equal(t, StateNormal, win.State())
	assert.Empty(t, win.setStates)
}

func TestTitleBarInput(t *testing.T) {
	win := newFakeWindow(StateNormal)
	c, _ := newTestChrome(t, win, fakeCapability{})
	require.NoError(t, c.Attach())

	require.NoError(t, c.TitleBarPointerDown(ButtonNone, true))
	require.NoError(t, c.TitleBarPointerDown(ButtonNone, false))
	require.NoError(t, c.TitleBarPointerDown(ButtonClose, true))
	assert.Equal(t, 1, win.drags)

	require.NoError(t, c.TitleBarDoubleClick(ButtonNone))
	assert.Equal(t, StateMaximized, win.State())
	require.NoError(t, c.TitleBarDoubleClick(ButtonMinimize))
	assert.Equal(t, StateMaximized, win.State())
}

func TestSetTitle(t *testing.T) {
	win := newFakeWindow(StateNormal)
	c, _ := newTestChrome(t, win, fakeCapability{}, WithTitle("Editor"))
	require.NoError(t, c.Attach())
	assert.Equal(t, "Editor", win.title)

	c.SetTitle("")
	assert.Equal(t, DefaultTitle, c.Title())
	assert.Equal(t, DefaultTitle, win.title)
}

func TestChromeClockStopsOnDetach(t *testing.T) {
	c, _ := newTestChrome(t, newFakeWindow(StateNormal), fakeCapability{})
	require.NoError(t, c.Attach())

	labels := make(chan string, 4)
	done := make(chan struct{})
	go func() {
		c.RunClock(context.Background(), func(s string) { labels <- s })
		close(done)
	}()

	<-labels
	c.Detach()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("clock kept running after detach")
	}
}
