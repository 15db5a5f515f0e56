package flexchrome

import (
	"fmt"
	"strings"
)

// PlatformStyle selects which caption button set the chrome draws.
type PlatformStyle uint8

const (
	// StyleAuto follows the host operating system.
	StyleAuto PlatformStyle = iota
	StyleWindows
	StyleMacOS
	// StyleLinux uses the Windows button set.
	StyleLinux
)

func (s PlatformStyle) String() string {
	switch s {
	case StyleWindows:
		return "windows"
	case StyleMacOS:
		return "macos"
	case StyleLinux:
		return "linux"
	default:
		return "auto"
	}
}

// ParsePlatformStyle parses a style name as used in configuration files
// and on the command line.
func ParsePlatformStyle(name string) (PlatformStyle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return StyleAuto, nil
	case "windows", "win":
		return StyleWindows, nil
	case "macos", "mac", "darwin":
		return StyleMacOS, nil
	case "linux":
		return StyleLinux, nil
	default:
		return StyleAuto, fmt.Errorf("unknown platform style %q", name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s PlatformStyle) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *PlatformStyle) UnmarshalText(text []byte) error {
	parsed, err := ParsePlatformStyle(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Resolve reports whether the macOS button set should be shown. An
// explicit style always wins over the detected host.
func Resolve(style PlatformStyle, hostIsMac bool) bool {
	switch style {
	case StyleAuto:
		return hostIsMac
	case StyleMacOS:
		return true
	default:
		return false
	}
}
