// Package cli provides the focuscursor cobra commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ivlev/focuscursor/internal/config"
	"github.com/ivlev/focuscursor/internal/logging"
)

// BuildInfo is stamped by main
type BuildInfo struct {
	Version string
	Commit  string
}

type app struct {
	build   BuildInfo
	cfgPath string
	manager *config.Manager
	cfg     *config.Config
}

// NewRootCommand assembles the command tree
func NewRootCommand(build BuildInfo) *cobra.Command {
	a := &app{build: build}

	root := &cobra.Command{
		Use:   "focuscursor",
		Short: "Replay and preview an animated selection cursor",
		Long: `focuscursor replays scripted focus changes over a small UI scene and
animates a selection cursor that tweens between focused elements.

Scenarios are YAML files describing the elements and a timeline of focus,
activation and time-scale events. Without a scenario argument the newest
file in ./scenarios is used.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "version", "completion", "easings":
				return nil
			}
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "config file (default ./focuscursor.yaml or $XDG_CONFIG_HOME/focuscursor/focuscursor.yaml)")
	pf.String("log-level", "info", "log level: trace, debug, info, warn, error")
	pf.String("log-format", "console", "log format: console or json")

	root.AddCommand(
		newRunCommand(a),
		newPreviewCommand(a),
		newValidateCommand(a),
		newTourCommand(a),
		newScanCommand(a),
		newEasingsCommand(),
		newVersionCommand(a),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure
func Execute(build BuildInfo) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand(build).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// init loads configuration and attaches a logger to the command context
func (a *app) init(cmd *cobra.Command) error {
	a.manager = config.NewManager(a.cfgPath)
	flags := map[string]string{
		"log.level":  "log-level",
		"log.format": "log-format",
	}
	for key, name := range flags {
		if err := a.manager.BindFlag(key, cmd.Flags().Lookup(name)); err != nil {
			return err
		}
	}
	if err := bindLocalFlags(a.manager, cmd); err != nil {
		return err
	}

	cfg, err := a.manager.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	lc, err := cfg.LoggingConfig()
	if err != nil {
		return err
	}
	logger := logging.New(lc)
	ctx := logging.WithContext(cmd.Context(), logger)
	ctx = logging.WithComponent(ctx, cmd.Name())
	cmd.SetContext(ctx)

	if used := a.manager.FileUsed(); used != "" {
		logger.Debug().Str("path", used).Msg("config loaded")
	}
	return nil
}

// previewFlagKeys maps preview flags onto config keys
var previewFlagKeys = map[string]string{
	"workers":    "preview.workers",
	"encoder":    "preview.encoder",
	"quality":    "preview.quality",
	"background": "preview.background",
	"stats":      "preview.stats",
}

func bindLocalFlags(m *config.Manager, cmd *cobra.Command) error {
	for name, key := range previewFlagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := m.BindFlag(key, f); err != nil {
				return err
			}
		}
	}
	return nil
}
