package flexchrome

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"mvdan.cc/sh/v3/shell"
)

// MaximizeStrategy selects what the maximize button does.
type MaximizeStrategy uint8

const (
	// MaximizeUnset is the zero value. New rejects it so the integrator
	// has to choose.
	MaximizeUnset MaximizeStrategy = iota
	// MaximizeStandard toggles the window between normal and maximized.
	MaximizeStandard
	// MaximizeExternal fires the "tile" external action instead.
	MaximizeExternal
)

func (s MaximizeStrategy) String() string {
	switch s {
	case MaximizeStandard:
		return "standard"
	case MaximizeExternal:
		return "external"
	default:
		return "unset"
	}
}

// ParseMaximizeStrategy parses "standard" or "external".
func ParseMaximizeStrategy(name string) (MaximizeStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "standard", "maximize":
		return MaximizeStandard, nil
	case "external", "tile":
		return MaximizeExternal, nil
	case "":
		return MaximizeUnset, nil
	default:
		return MaximizeUnset, fmt.Errorf("unknown maximize strategy %q", name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s MaximizeStrategy) MarshalText() ([]byte, error) {
	if s == MaximizeUnset {
		return []byte{}, nil
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *MaximizeStrategy) UnmarshalText(text []byte) error {
	parsed, err := ParseMaximizeStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ActionTile is the external action fired by MaximizeExternal.
const ActionTile = "tile"

// ExternalAction runs an action outside the process. Only success or
// failure is observed.
type ExternalAction interface {
	Run(ctx context.Context, action string) error
}

// ErrUnknownAction is returned when no command is configured for an action.
var ErrUnknownAction = errors.New("no command configured for action")

// CommandAction runs a shell-style command line per action.
type CommandAction struct {
	// Commands maps an action name to a command line, e.g.
	// "tile": "osascript -e 'tell application \"System Events\" to ...'".
	Commands map[string]string

	// Timeout bounds one invocation. Zero means 10 seconds.
	Timeout time.Duration
}

var _ ExternalAction = CommandAction{}

// Run splits the configured command line with shell quoting rules and
// executes it. Environment references such as $HOME are expanded.
func (a CommandAction) Run(ctx context.Context, action string) error {
	line := strings.TrimSpace(a.Commands[action])
	if line == "" {
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	args, err := shell.Fields(line, os.Getenv)
	if err != nil {
		return fmt.Errorf("failed to parse %s command: %w", action, err)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	timeout := a.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s command %q failed: %w", action, args[0], err)
	}
	return nil
}

// ActionFunc adapts a function to ExternalAction.
type ActionFunc func(ctx context.Context, action string) error

func (f ActionFunc) Run(ctx context.Context, action string) error {
	return f(ctx, action)
}
