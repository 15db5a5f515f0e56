package commands

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/agiangrant/flexchrome"
	"github.com/agiangrant/flexchrome/internal/x11"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	var clock bool

	cmd := &cobra.Command{
		Use:   "watch [window-id]",
		Short: "Attach a chrome to an X11 window and print visual changes",
		Long: `Attach a chrome to a running X11 window and print the caption button
visuals every time the window manager changes the window state.

The window id is given in decimal or 0x-prefixed hex, as printed by
xwininfo. Without an id the active window is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := x11.NewConnection()
			if err != nil {
				return err
			}
			defer conn.Close()

			id, err := windowID(conn, args)
			if err != nil {
				return err
			}
			win, err := conn.Window(id)
			if err != nil {
				return err
			}
			defer win.Release()

			// Watching must not rename the observed window.
			cfg := a.cfg
			cfg.Chrome.Title = ""
			opts, err := cfg.Options()
			if err != nil {
				return err
			}
			chrome, err := flexchrome.New(win, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			chrome.Bridge().OnChange(func(v flexchrome.Visuals) {
				fmt.Fprintf(out, "state=%s\n", chrome.Bridge().WindowState())
				printVisuals(out, v)
			})
			if err := chrome.Attach(); err != nil {
				return err
			}
			defer chrome.Detach()

			a.log.Info("watching window", "id", fmt.Sprintf("0x%x", id), "state", win.State())
			printVisuals(out, chrome.Visuals())

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			if clock {
				go flexchrome.RunClock(ctx, 0, nil, func(label string) {
					fmt.Fprintf(out, "%s\n", label)
				})
			}
			go func() {
				<-ctx.Done()
				conn.Quit()
			}()

			conn.EventLoop()
			return nil
		},
	}

	cmd.Flags().BoolVar(&clock, "clock", false, "also print the week label when it changes")
	return cmd
}

func windowID(conn *x11.Connection, args []string) (xproto.Window, error) {
	if len(args) == 0 || args[0] == "active" {
		id, err := conn.ActiveWindow()
		if err != nil {
			return 0, fmt.Errorf("failed to get active window: %w", err)
		}
		return id, nil
	}

	s := strings.ToLower(args[0])
	base := 10
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		s, base = rest, 16
	}
	n, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid window id %q: %w", args[0], err)
	}
	return xproto.Window(n), nil
}
