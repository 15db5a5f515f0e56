package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/agiangrant/flexchrome"
	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		styleName string
		stateName string
		hoverName string
		always    bool
		hostMac   bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the caption button visuals for a state",
		Example: `
flexchrome render --style windows --state maximized --hover maximize
flexchrome render --style macos --hover close
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if styleName == "" {
				styleName = a.cfg.Chrome.Style
			}
			style, err := flexchrome.ParsePlatformStyle(styleName)
			if err != nil {
				return err
			}
			state, err := flexchrome.ParseWindowState(stateName)
			if err != nil {
				return err
			}
			hover, err := parseButton(hoverName)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("host-mac") {
				hostMac = flexchrome.IsMacOS()
			}
			if !cmd.Flags().Changed("always-show-glyphs") {
				always = a.cfg.Chrome.AlwaysShowGlyphs
			}

			v := flexchrome.Render(flexchrome.RenderInput{
				MacStyle:         flexchrome.Resolve(style, hostMac),
				State:            state,
				Hover:            hover,
				AlwaysShowGlyphs: always,
			})
			printVisuals(cmd.OutOrStdout(), v)
			return nil
		},
	}

	cmd.Flags().StringVar(&styleName, "style", "", "auto, windows, macos or linux (default from settings)")
	cmd.Flags().StringVar(&stateName, "state", "normal", "normal, maximized, minimized or fullscreen")
	cmd.Flags().StringVar(&hoverName, "hover", "none", "hovered button: none, minimize, maximize or close")
	cmd.Flags().BoolVar(&always, "always-show-glyphs", false, "keep macOS glyphs visible")
	cmd.Flags().BoolVar(&hostMac, "host-mac", false, "pretend the host is (or is not) macOS")
	return cmd
}

func parseButton(name string) (flexchrome.ButtonID, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return flexchrome.ButtonNone, nil
	case "minimize", "min":
		return flexchrome.ButtonMinimize, nil
	case "maximize", "max":
		return flexchrome.ButtonMaximize, nil
	case "close":
		return flexchrome.ButtonClose, nil
	}
	return flexchrome.ButtonNone, fmt.Errorf("unknown button %q", name)
}

func printVisuals(w io.Writer, v flexchrome.Visuals) {
	set := "windows"
	if v.MacSetVisible {
		set = "macos"
	}
	fmt.Fprintf(w, "set: %s\n", set)
	for _, id := range []flexchrome.ButtonID{flexchrome.ButtonMinimize, flexchrome.ButtonMaximize, flexchrome.ButtonClose} {
		b := v.Button(id)
		fmt.Fprintf(w, "  %-8s %-32s %-9s hovered=%t\n", id, b.Glyph.Asset(), b.Tooltip, b.Hovered)
	}
}
