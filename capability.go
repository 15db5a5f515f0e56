package flexchrome

// Capability exposes the host facts the chrome depends on. Tests
// substitute a fake to exercise macOS or Windows behaviour on any OS.
type Capability interface {
	// HostIsMac reports whether the process runs on macOS.
	HostIsMac() bool

	// IsTargetPlatform reports whether the hit-test interceptor can be
	// installed on this host.
	IsTargetPlatform() bool

	// NativeHandle returns the window handle the interceptor subclasses.
	NativeHandle() (uintptr, bool)
}

// RuntimeCapability answers from runtime.GOOS and the host window.
type RuntimeCapability struct {
	Window Window
}

var _ Capability = RuntimeCapability{}

func (c RuntimeCapability) HostIsMac() bool {
	return IsMacOS()
}

func (c RuntimeCapability) IsTargetPlatform() bool {
	return SupportsNativeHitTest()
}

func (c RuntimeCapability) NativeHandle() (uintptr, bool) {
	if c.Window == nil {
		return 0, false
	}
	return c.Window.NativeHandle()
}
