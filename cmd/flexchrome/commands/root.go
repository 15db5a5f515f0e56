// Package commands implements the flexchrome command line.
package commands

import (
	"fmt"

	"github.com/agiangrant/flexchrome"
	"github.com/agiangrant/flexchrome/internal/config"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// app is shared by every subcommand.
type app struct {
	configPath string
	logLevel   string

	cfg    config.Config
	source string
	log    *log.Logger
}

// NewRoot builds the flexchrome command tree.
func NewRoot(version string) *cobra.Command {
	a := &app{cfg: config.DefaultConfig()}

	root := &cobra.Command{
		Use:   "flexchrome",
		Short: "Inspect and drive the flexchrome caption controller",
		Long: `flexchrome draws the caption buttons of a borderless window and keeps
them in sync with the window state.

This tool resolves button styles, renders button visuals, replays
Windows hit-test message sequences and watches X11 windows.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "settings file (default: ./flexchrome.toml or $XDG_CONFIG_HOME/flexchrome/flexchrome.toml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error (overrides the settings file)")

	root.AddCommand(
		newResolveCmd(a),
		newRenderCmd(a),
		newHitTestCmd(a),
		newInitCmd(a),
		newWatchCmd(a),
		newVersionCmd(version),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	// init writes the settings file and must work when the current one is broken.
	if cmd.Name() != "init" && cmd.Name() != "version" {
		if err := a.loadConfig(); err != nil {
			return err
		}
	}

	level := a.cfg.LogLevel()
	if a.logLevel != "" {
		parsed, err := log.ParseLevel(a.logLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		level = parsed
	}

	a.log = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "flexchrome",
		Level:  level,
	})
	flexchrome.SetLogger(a.log)

	if a.source != "" {
		a.log.Debug("loaded settings", "path", a.source)
	}
	return nil
}

func (a *app) loadConfig() error {
	if a.configPath != "" {
		cfg, err := config.LoadFile(a.configPath)
		if err != nil {
			return err
		}
		a.cfg, a.source = cfg, a.configPath
		return nil
	}

	cfg, path, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg, a.source = cfg, path
	return nil
}

// chromeOptions returns the settings as chrome options followed by extra.
func (a *app) chromeOptions(extra ...flexchrome.Option) ([]flexchrome.Option, error) {
	opts, err := a.cfg.Options()
	if err != nil {
		return nil, err
	}
	return append(opts, extra...), nil
}

// offlineHost reports a host with no native window, so no hook is
// installed and messages are fed to the chrome directly.
type offlineHost struct {
	mac bool
}

func (h offlineHost) HostIsMac() bool               { return h.mac }
func (h offlineHost) IsTargetPlatform() bool        { return false }
func (h offlineHost) NativeHandle() (uintptr, bool) { return 0, false }
