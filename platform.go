package flexchrome

import "runtime"

// Platform represents the operating system the chrome is running on.
type Platform string

const (
	PlatformMacOS   Platform = "darwin"
	PlatformLinux   Platform = "linux"
	PlatformWindows Platform = "windows"
	PlatformUnknown Platform = "unknown"
)

// CurrentPlatform returns the platform the process is running on.
func CurrentPlatform() Platform {
	switch runtime.GOOS {
	case "darwin":
		// iOS builds also report darwin; they have no window chrome to draw.
		return detectDarwinPlatform()
	case "linux", "freebsd", "openbsd", "netbsd":
		return PlatformLinux
	case "windows":
		return PlatformWindows
	default:
		return PlatformUnknown
	}
}

// IsMacOS returns true if running on macOS
func IsMacOS() bool {
	return CurrentPlatform() == PlatformMacOS
}

// IsLinux returns true if running on Linux or another X11 desktop
func IsLinux() bool {
	return CurrentPlatform() == PlatformLinux
}

// IsWindows returns true if running on Windows
func IsWindows() bool {
	return CurrentPlatform() == PlatformWindows
}

// SupportsNativeHitTest returns true if the host routes non-client
// hit-testing through a window procedure the chrome can subclass.
func SupportsNativeHitTest() bool {
	return IsWindows()
}
