package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/agiangrant/flexchrome"
	"github.com/agiangrant/flexchrome/internal/hittest"
	"github.com/agiangrant/flexchrome/internal/simwin"
	"github.com/spf13/cobra"
)

func newHitTestCmd(a *app) *cobra.Command {
	var (
		bounds    string
		stateName string
	)

	cmd := &cobra.Command{
		Use:   "hittest event...",
		Short: "Replay non-client window messages through the maximize interceptor",
		Long: `Replay a sequence of non-client window messages through the hit-test
interceptor of a chrome attached to an in-memory window, printing the
result of each message and the window state after it.

Events:
  hit:X,Y        WM_NCHITTEST at screen point X,Y
  move:X,Y       WM_NCMOUSEMOVE at X,Y
  leave          WM_NCMOUSELEAVE
  down[:AREA]    WM_NCLBUTTONDOWN (AREA defaults to maxbutton)
  up[:AREA]      WM_NCLBUTTONUP (AREA defaults to maxbutton)
  state:STATE    the OS changes the window state
  detach         detach the chrome

AREA is one of caption, minbutton, maxbutton, close or client.`,
		Example: `
flexchrome hittest hit:120,15 down up leave
flexchrome hittest --bounds 0,0,46,32 hit:10,10 state:minimized hit:10,10
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := parseRect(bounds)
			if err != nil {
				return fmt.Errorf("invalid --bounds: %w", err)
			}
			state, err := flexchrome.ParseWindowState(stateName)
			if err != nil {
				return err
			}
			events, err := parseEvents(args)
			if err != nil {
				return err
			}

			win := simwin.New(state, 0)
			win.SetLogger(a.log)
			opts, err := a.chromeOptions(
				flexchrome.WithPlatformStyle(flexchrome.StyleWindows),
				flexchrome.WithCapability(offlineHost{}),
			)
			if err != nil {
				return err
			}
			chrome, err := flexchrome.New(win, opts...)
			if err != nil {
				return err
			}
			if err := chrome.Attach(); err != nil {
				return err
			}
			defer chrome.Detach()

			// Keep the layout around the maximize button in step with the bounds.
			chrome.Layout(flexchrome.ButtonLayout{
				Minimize: flexchrome.Rect{X: r.X - r.Width, Y: r.Y, Width: r.Width, Height: r.Height},
				Maximize: r,
				Close:    flexchrome.Rect{X: r.X + r.Width, Y: r.Y, Width: r.Width, Height: r.Height},
			})

			out := cmd.OutOrStdout()
			for _, ev := range events {
				replay(out, chrome, win, ev)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&bounds, "bounds", "100,0,40,30", "maximize button rectangle as X,Y,W,H")
	cmd.Flags().StringVar(&stateName, "state", "normal", "initial window state")
	return cmd
}

type eventKind int

const (
	evMessage eventKind = iota
	evState
	evDetach
)

type event struct {
	kind   eventKind
	label  string
	msg    uint32
	wParam uintptr
	lParam uintptr
	state  flexchrome.WindowState
}

var areas = map[string]uintptr{
	"nowhere":   0,
	"client":    hittest.HTClient,
	"caption":   hittest.HTCaption,
	"minbutton": hittest.HTMinButton,
	"maxbutton": hittest.HTMaxButton,
	"close":     hittest.HTClose,
}

func areaName(v uintptr) string {
	for name, code := range areas {
		if code == v {
			return name
		}
	}
	return strconv.FormatUint(uint64(v), 10)
}

func parseEvents(args []string) ([]event, error) {
	events := make([]event, 0, len(args))
	for _, arg := range args {
		name, param, _ := strings.Cut(strings.ToLower(arg), ":")
		ev := event{label: arg}

		switch name {
		case "hit", "move":
			x, y, err := parsePoint(param)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", arg, err)
			}
			ev.msg = hittest.WMNCHitTest
			if name == "move" {
				ev.msg = hittest.WMNCMouseMove
			}
			ev.lParam = hittest.PointToLParam(x, y)
		case "leave":
			ev.msg = hittest.WMNCMouseLeave
		case "down", "up":
			area := hittest.HTMaxButton
			if param != "" {
				code, ok := areas[param]
				if !ok {
					return nil, fmt.Errorf("%s: unknown area %q", arg, param)
				}
				area = code
			}
			ev.msg = hittest.WMNCLButtonDown
			if name == "up" {
				ev.msg = hittest.WMNCLButtonUp
			}
			ev.wParam = area
		case "state":
			state, err := flexchrome.ParseWindowState(param)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", arg, err)
			}
			ev.kind = evState
			ev.state = state
		case "detach":
			ev.kind = evDetach
		default:
			return nil, fmt.Errorf("unknown event %q", arg)
		}
		events = append(events, ev)
	}
	return events, nil
}

func replay(w io.Writer, chrome *flexchrome.Chrome, win *simwin.Window, ev event) {
	result := "-"
	switch ev.kind {
	case evMessage:
		ret := chrome.WndProc(ev.msg, ev.wParam, ev.lParam)
		result = strconv.FormatUint(uint64(ret), 10)
		if ev.msg == hittest.WMNCHitTest {
			result = areaName(ret)
		}
	case evState:
		win.Publish(ev.state)
	case evDetach:
		chrome.Detach()
	}

	fmt.Fprintf(w, "%-16s -> %-10s state=%-10s maximize=%s\n",
		ev.label, result, win.State(), chrome.Visuals().Maximize.Glyph)
}

func parsePoint(s string) (int, int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("want X,Y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func parseRect(s string) (flexchrome.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return flexchrome.Rect{}, fmt.Errorf("want X,Y,W,H, got %q", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return flexchrome.Rect{}, err
		}
		v[i] = n
	}
	r := flexchrome.Rect{X: v[0], Y: v[1], Width: v[2], Height: v[3]}
	if r.Empty() {
		return flexchrome.Rect{}, fmt.Errorf("empty rectangle %q", s)
	}
	return r, nil
}
