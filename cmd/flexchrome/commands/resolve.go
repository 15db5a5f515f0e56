package commands

import (
	"fmt"

	"github.com/agiangrant/flexchrome"
	"github.com/spf13/cobra"
)

func newResolveCmd(a *app) *cobra.Command {
	var hostMac bool

	cmd := &cobra.Command{
		Use:   "resolve [style]",
		Short: "Show which button set a style resolves to",
		Example: `
# Style from the settings file on this host
flexchrome resolve

# What "auto" means on a Mac
flexchrome resolve auto --host-mac
`,
		ValidArgs: []cobra.Completion{"auto", "windows", "macos", "linux"},
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.cfg.Chrome.Style
			if len(args) > 0 {
				name = args[0]
			}
			style, err := flexchrome.ParsePlatformStyle(name)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("host-mac") {
				hostMac = flexchrome.IsMacOS()
			}

			set := "windows"
			if flexchrome.Resolve(style, hostMac) {
				set = "macos"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "style=%s host-mac=%t set=%s\n", style, hostMac, set)
			return nil
		},
	}

	cmd.Flags().BoolVar(&hostMac, "host-mac", false, "pretend the host is (or is not) macOS")
	return cmd
}
