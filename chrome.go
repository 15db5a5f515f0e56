package flexchrome

import (
	"context"
	"errors"

	"github.com/agiangrant/flexchrome/internal/hittest"
)

var (
	// ErrNilWindow is returned by New when no host window is given.
	ErrNilWindow = errors.New("flexchrome: nil window")

	// ErrNoMaximizeStrategy is returned by New when neither
	// WithStandardMaximize nor WithExternalMaximize was supplied.
	ErrNoMaximizeStrategy = errors.New("flexchrome: no maximize strategy chosen")

	// ErrNoExternalAction is returned by New when MaximizeExternal is
	// chosen without an action to run.
	ErrNoExternalAction = errors.New("flexchrome: external maximize needs an action")

	// ErrAlreadyAttached is returned by Attach on an attached chrome.
	ErrAlreadyAttached = errors.New("flexchrome: already attached")

	// ErrDetached is returned by Attach after Detach. A chrome serves a
	// single window lifetime.
	ErrDetached = errors.New("flexchrome: chrome has been detached")
)

// hookHandle is the installed window procedure subclass.
type hookHandle interface {
	Release() error
	Released() bool
}

type hookInstaller func(hwnd uintptr, ic *hittest.Interceptor) (hookHandle, error)

func installNativeHook(hwnd uintptr, ic *hittest.Interceptor) (hookHandle, error) {
	h, err := hittest.Install(hwnd, ic)
	if err != nil {
		return nil, err
	}
	return h, nil
}

// Chrome is the application-drawn caption of one borderless window. It
// resolves the button style, keeps the drawn buttons in sync with the
// window, and on Windows lends the custom maximize button the native
// maximize hit-test so snap layouts appear on hover.
//
// All methods must be called from the UI thread.
type Chrome struct {
	win        Window
	capability Capability
	cfg        chromeConfig

	style    PlatformStyle
	macStyle bool
	title    string

	bridge      *Bridge
	observer    *Observer
	interceptor *hittest.Interceptor
	install     hookInstaller
	hook        hookHandle
	native      NativeButtons

	hookUsed bool
	attached bool
	detached bool

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates the chrome for win. A maximize strategy is required.
func New(win Window, opts ...Option) (*Chrome, error) {
	if win == nil {
		return nil, ErrNilWindow
	}

	cfg := chromeConfig{style: StyleAuto, title: DefaultTitle}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.title == "" {
		cfg.title = DefaultTitle
	}
	switch cfg.strategy {
	case MaximizeUnset:
		return nil, ErrNoMaximizeStrategy
	case MaximizeExternal:
		if cfg.external == nil {
			return nil, ErrNoExternalAction
		}
	}
	if cfg.capability == nil {
		cfg.capability = RuntimeCapability{Window: win}
	}

	c := &Chrome{
		win:        win,
		capability: cfg.capability,
		cfg:        cfg,
		style:      cfg.style,
		title:      cfg.title,
		native:     cfg.native,
		install:    installNativeHook,
	}
	c.macStyle = Resolve(c.style, c.capability.HostIsMac())
	c.bridge = NewBridge(c.macStyle, win.State(), cfg.alwaysShow)
	c.observer = NewObserver(c.bridge.SetWindowState, c.resetInterceptorOnHide)
	c.interceptor = hittest.New(interceptTarget{c}, nil)
	return c, nil
}

// Attach subscribes to the window, hides the native caption buttons and
// installs the hit-test interceptor where the host supports it. Failing to
// install the interceptor is not an error: the maximize button keeps
// working through ordinary clicks.
func (c *Chrome) Attach() error {
	if c.detached {
		return ErrDetached
	}
	if c.attached {
		return ErrAlreadyAttached
	}
	c.attached = true
	c.ctx, c.cancel = context.WithCancel(context.Background())

	c.observer.Attach(c.win)
	c.hideNativeButtons()
	c.InstallHook()
	if c.cfg.titleSet {
		c.win.SetTitle(c.title)
	}

	logger.Debug("chrome attached",
		"style", c.style,
		"mac", c.macStyle,
		"state", c.observer.Current(),
		"hook", c.HookInstalled())
	return nil
}

// InstallHook subclasses the native window procedure if it has not been
// done yet for this window. Hosts whose native handle only exists after
// Attach call it again once the window is created. It reports whether the
// interceptor is installed.
func (c *Chrome) InstallHook() bool {
	if !c.attached || c.hookUsed {
		return c.HookInstalled()
	}
	if !c.capability.IsTargetPlatform() {
		return false
	}
	hwnd, ok := c.capability.NativeHandle()
	if !ok || hwnd == 0 {
		logger.Debug("native handle not available; hit-test interceptor skipped")
		return false
	}

	hook, err := c.install(hwnd, c.interceptor)
	if err != nil {
		logger.Debug("hit-test interceptor not installed", "err", err)
		return false
	}

	c.hook = hook
	c.hookUsed = true
	return true
}

// Detach restores the original window procedure, unsubscribes from the
// window and shows the native buttons again. It is safe to call more than
// once.
func (c *Chrome) Detach() {
	if !c.attached {
		return
	}
	c.attached = false
	c.detached = true
	c.cancel()

	if c.hook != nil {
		if err := c.hook.Release(); err != nil {
			logger.Warn("failed to restore window procedure", "err", err)
		}
		c.hook = nil
	}
	c.interceptor.Detach()
	c.bridge.SetMaximizeHover(false)
	c.observer.Detach()
	c.showNativeButtons()

	logger.Debug("chrome detached")
}

// Attached reports whether the chrome is attached to its window.
func (c *Chrome) Attached() bool {
	return c.attached
}

// HookInstalled reports whether the native window procedure is subclassed.
// It turns false once the hook is released, including the release the
// hook performs itself when the window is destroyed.
func (c *Chrome) HookInstalled() bool {
	return c.hook != nil && !c.hook.Released()
}

// Bridge returns the button bridge renderers draw from.
func (c *Chrome) Bridge() *Bridge {
	return c.bridge
}

// Visuals returns the current caption button visuals.
func (c *Chrome) Visuals() Visuals {
	return c.bridge.Visuals()
}

// PlatformStyle returns the requested style.
func (c *Chrome) PlatformStyle() PlatformStyle {
	return c.style
}

// IsMacStyle reports whether the macOS button set is shown.
func (c *Chrome) IsMacStyle() bool {
	return c.macStyle
}

// SwitchPlatformStyle changes the requested style and re-renders the
// buttons before returning, so both sets are never shown together.
func (c *Chrome) SwitchPlatformStyle(style PlatformStyle) {
	c.style = style
	c.macStyle = Resolve(style, c.capability.HostIsMac())
	if c.macStyle {
		// The maximize bounds disappear with the Windows set, so no
		// mouse-leave will clear a pending OS hover.
		c.interceptor.Reset()
	}
	c.bridge.SetStyle(c.macStyle)
}

// WndProc feeds one native window message through the hit-test
// interceptor. The installed hook calls it for every message; hosts that
// run their own window procedure may call it directly.
func (c *Chrome) WndProc(msg uint32, wParam, lParam uintptr) uintptr {
	return c.interceptor.WndProc(msg, wParam, lParam)
}

// ============================================================================
// Button and title bar input
// ============================================================================

// Layout records where the Windows/Linux buttons were laid out on screen.
func (c *Chrome) Layout(l ButtonLayout) {
	c.bridge.Layout(l)
}

// PointerEnter forwards a pointer-enter on a drawn button.
func (c *Chrome) PointerEnter(id ButtonID) {
	c.bridge.PointerEnter(id)
}

// PointerLeave forwards a pointer-leave on a drawn button.
func (c *Chrome) PointerLeave(id ButtonID) {
	c.bridge.PointerLeave(id)
}

// Click performs the action of a drawn button.
func (c *Chrome) Click(id ButtonID) error {
	switch id {
	case ButtonMinimize:
		return c.Minimize()
	case ButtonMaximize:
		return c.Maximize()
	case ButtonClose:
		return c.Close()
	}
	return nil
}

// Minimize minimizes the window.
func (c *Chrome) Minimize() error {
	return c.win.SetState(StateMinimized)
}

// Close asks the host to close the window. Detach still has to be called
// when the host tears the window down.
func (c *Chrome) Close() error {
	return c.win.Close()
}

// Maximize runs the configured maximize strategy.
func (c *Chrome) Maximize() error {
	if c.cfg.strategy == MaximizeExternal {
		c.runExternal(ActionTile)
		return nil
	}
	return c.ToggleMaximize()
}

// ToggleMaximize switches the window between normal and maximized.
func (c *Chrome) ToggleMaximize() error {
	return c.win.SetState(c.win.State().Toggled())
}

// TitleBarPointerDown starts a window drag for a left-button press on the
// title bar. Presses on a caption button are ignored.
func (c *Chrome) TitleBarPointerDown(target ButtonID, leftButton bool) error {
	if target != ButtonNone || !leftButton {
		return nil
	}
	return c.win.BeginMoveDrag()
}

// TitleBarDoubleClick toggles maximize unless the click landed on a button.
func (c *Chrome) TitleBarDoubleClick(target ButtonID) error {
	if target != ButtonNone {
		return nil
	}
	return c.ToggleMaximize()
}

// SetTitle sets the drawn title and the window title used by the taskbar.
// An empty title falls back to DefaultTitle.
func (c *Chrome) SetTitle(title string) {
	if title == "" {
		title = DefaultTitle
	}
	c.title = title
	c.win.SetTitle(title)
}

// Title returns the drawn title.
func (c *Chrome) Title() string {
	return c.title
}

// RunClock publishes the week label to sink until the chrome is detached
// or ctx is cancelled.
func (c *Chrome) RunClock(ctx context.Context, sink func(string)) {
	if !c.attached {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-c.ctx.Done():
			cancel()
		case <-ctx.Done():
		}
	}()
	RunClock(ctx, 0, nil, sink)
}

// ============================================================================
// Internals
// ============================================================================

func (c *Chrome) runExternal(action string) {
	ext := c.cfg.external
	ctx := c.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	// The window procedure must not wait on another process.
	go func() {
		if err := ext.Run(ctx, action); err != nil {
			logger.Warn("external action failed", "action", action, "err", err)
		}
	}()
}

func (c *Chrome) resetInterceptorOnHide(state WindowState) {
	if state == StateMinimized || state == StateFullScreen {
		c.interceptor.Reset()
	}
}

func (c *Chrome) hideNativeButtons() {
	if c.native == nil && c.capability.HostIsMac() {
		if handle, ok := c.capability.NativeHandle(); ok {
			native, err := defaultNativeButtons(handle)
			if err != nil {
				logger.Debug("native buttons unavailable", "err", err)
			}
			c.native = native
		}
	}
	if c.native == nil {
		return
	}
	if err := c.native.SetVisible(false); err != nil {
		logger.Warn("failed to hide native buttons", "err", err)
	}
}

func (c *Chrome) showNativeButtons() {
	if c.native == nil {
		return
	}
	if err := c.native.SetVisible(true); err != nil {
		logger.Warn("failed to show native buttons", "err", err)
	}
}

// interceptTarget exposes the chrome to the hit-test interceptor.
type interceptTarget struct {
	c *Chrome
}

func (t interceptTarget) MaximizeButtonBounds() (hittest.Rect, bool) {
	r, ok := t.c.bridge.MaximizeButtonBounds()
	if !ok {
		return hittest.Rect{}, false
	}
	return hittest.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}, true
}

func (t interceptTarget) SetMaximizeHover(hover bool) {
	t.c.bridge.SetMaximizeHover(hover)
}

func (t interceptTarget) ToggleMaximize() {
	// The OS snap affordance replaces the maximize button's native
	// behaviour, so a click always toggles the window directly.
	_ = t.c.ToggleMaximize()
}
