package flexchrome

// Option configures a Chrome.
type Option func(*chromeConfig)

type chromeConfig struct {
	style      PlatformStyle
	alwaysShow bool
	strategy   MaximizeStrategy
	external   ExternalAction
	capability Capability
	title      string
	titleSet   bool
	native     NativeButtons
}

// WithPlatformStyle sets the requested style. The default is StyleAuto.
func WithPlatformStyle(style PlatformStyle) Option {
	return func(c *chromeConfig) { c.style = style }
}

// WithAlwaysShowGlyphs keeps the macOS hover glyphs visible permanently
// instead of only while the pointer is over the button group.
func WithAlwaysShowGlyphs(enable bool) Option {
	return func(c *chromeConfig) { c.alwaysShow = enable }
}

// WithStandardMaximize makes the maximize button toggle normal/maximized.
func WithStandardMaximize() Option {
	return func(c *chromeConfig) {
		c.strategy = MaximizeStandard
		c.external = nil
	}
}

// WithExternalMaximize makes the maximize button fire ActionTile on
// action. Failures are logged and otherwise ignored.
func WithExternalMaximize(action ExternalAction) Option {
	return func(c *chromeConfig) {
		c.strategy = MaximizeExternal
		c.external = action
	}
}

// WithCapability replaces runtime host detection.
func WithCapability(capability Capability) Option {
	return func(c *chromeConfig) { c.capability = capability }
}

// WithTitle sets the initial title text and makes Attach push it to the
// host window. An empty title falls back to DefaultTitle. Without this
// option the host window keeps its own title until SetTitle is called.
func WithTitle(title string) Option {
	return func(c *chromeConfig) {
		c.title = title
		c.titleSet = true
	}
}

// WithNativeButtons supplies the bridge to the OS-drawn caption buttons,
// which the chrome hides while attached. On macOS the default bridge
// drives the NSWindow standard buttons.
func WithNativeButtons(native NativeButtons) Option {
	return func(c *chromeConfig) { c.native = native }
}

// NativeButtons shows or hides the caption buttons drawn by the OS.
type NativeButtons interface {
	SetVisible(visible bool) error
	Visible() (bool, error)
}
