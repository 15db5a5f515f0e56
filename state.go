package flexchrome

import (
	"fmt"
	"strings"
)

// WindowState describes how the host window is currently presented.
type WindowState uint8

const (
	// StateNormal indicates that the window is shown at its restored size.
	StateNormal WindowState = iota
	// StateMaximized indicates that the window fills the work area.
	StateMaximized
	// StateMinimized indicates that the window has been minimised.
	StateMinimized
	// StateFullScreen indicates that the window covers the whole monitor.
	StateFullScreen
)

func (s WindowState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateMaximized:
		return "maximized"
	case StateMinimized:
		return "minimized"
	case StateFullScreen:
		return "fullscreen"
	default:
		return fmt.Sprintf("WindowState(%d)", uint8(s))
	}
}

// ParseWindowState parses the names printed by String.
func ParseWindowState(name string) (WindowState, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "normal", "restored":
		return StateNormal, nil
	case "maximized":
		return StateMaximized, nil
	case "minimized":
		return StateMinimized, nil
	case "fullscreen":
		return StateFullScreen, nil
	}
	return StateNormal, fmt.Errorf("unknown window state %q", name)
}

// Normalize maps an out-of-range raw value to StateNormal. Hosts that
// report an unknown presentation are treated as showing a normal window.
func Normalize(s WindowState) WindowState {
	if s > StateFullScreen {
		return StateNormal
	}
	return s
}

// Toggled returns the state a maximize/restore toggle moves to.
func (s WindowState) Toggled() WindowState {
	if s == StateMaximized {
		return StateNormal
	}
	return StateMaximized
}

// StateChange carries one transition published by the host window.
type StateChange struct {
	Old WindowState
	New WindowState
}
