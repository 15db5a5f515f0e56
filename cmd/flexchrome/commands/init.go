package commands

import (
	"fmt"
	"os"

	"github.com/agiangrant/flexchrome"
	"github.com/agiangrant/flexchrome/internal/config"
	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	var (
		path        string
		useYAML     bool
		force       bool
		style       string
		tileCommand string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a settings file with the default configuration",
		Example: `
# Create $XDG_CONFIG_HOME/flexchrome/flexchrome.toml
flexchrome init

# Project-local YAML settings that tile through an external tool
flexchrome init --path flexchrome.yaml --tile-command "termtile tile"
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			if style != "" {
				parsed, err := flexchrome.ParsePlatformStyle(style)
				if err != nil {
					return err
				}
				cfg.Chrome.Style = parsed.String()
			}
			if tileCommand != "" {
				cfg.Maximize.Strategy = flexchrome.MaximizeExternal.String()
				cfg.Maximize.TileCommand = tileCommand
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			if path == "" {
				if useYAML {
					path = config.YAMLFileName
				} else {
					var err error
					if path, err = config.DefaultPath(); err != nil {
						return err
					}
				}
			}

			// Check if the settings file already exists
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			written, err := config.Save(cfg, path)
			if err != nil {
				return err
			}
			a.log.Debug("settings written", "path", written)
			fmt.Fprintf(cmd.OutOrStdout(), "  ✓ Created %s\n", written)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "file to write (default: XDG config location)")
	cmd.Flags().BoolVar(&useYAML, "yaml", false, "write flexchrome.yaml in the current directory")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cmd.Flags().StringVar(&style, "style", "", "initial platform style")
	cmd.Flags().StringVar(&tileCommand, "tile-command", "", "use the external maximize strategy with this command")
	return cmd
}
