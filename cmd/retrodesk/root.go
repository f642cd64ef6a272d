package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/retrodesk/audio"
	"github.com/lixenwraith/retrodesk/config"
	"github.com/lixenwraith/retrodesk/core"
	"github.com/lixenwraith/retrodesk/engine"
	"github.com/lixenwraith/retrodesk/input"
	"github.com/lixenwraith/retrodesk/status"
	"github.com/lixenwraith/retrodesk/terminal"
)

// Set via -ldflags "-X main.version=..."
var version = "dev"

var (
	cfgFile    string
	debugFlag  bool
	keymapFlag string
)

func newRootCmd() *cobra.Command {
	loader := config.NewLoader()

	root := &cobra.Command{
		Use:   "retrodesk",
		Short: "Retro panel desktop with a text console, in the terminal",
		Long: `retrodesk composites overlapping panels onto the terminal and routes
mouse and keyboard input to them. Click a panel to focus it, type into the
console, scroll its history with the wheel. Ctrl+C or Ctrl+Q quits.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfgFile != "" {
				loader.WithConfigFile(cfgFile)
			}
			cfg, err := loader.Load()
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./retrodesk.yaml)")
	root.PersistentFlags().BoolVar(&debugFlag, "debug", false, "write debug log to log.file")
	root.PersistentFlags().StringVar(&keymapFlag, "keymap", "", "YAML scancode table overlaying the default layout")

	// Errors are nil when the flag exists
	_ = loader.Viper().BindPFlag("log.debug", root.PersistentFlags().Lookup("debug"))
	_ = loader.Viper().BindPFlag("keymap.file", root.PersistentFlags().Lookup("keymap"))

	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "retrodesk %s\n", version)
		},
	}
}

// Execute runs the root command until quit or interrupt
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func run(ctx context.Context, cfg *config.Config) error {
	logFile := setupLogging(cfg.Log.Debug, cfg.Log.File)
	if logFile != nil {
		defer logFile.Close()
	}
	logger := log.Default()

	keys := input.DefaultKeyTable()
	if cfg.Keymap.File != "" {
		var err error
		if keys, err = input.LoadKeyFile(cfg.Keymap.File); err != nil {
			return fmt.Errorf("keymap: %w", err)
		}
	}

	fb, err := audio.New(audio.Config{Enabled: cfg.Audio.Enabled, Volume: cfg.Audio.Volume})
	if err != nil {
		// Non-fatal, desktop runs silent
		logger.Printf("audio disabled: %v", err)
	}
	defer fb.Close()

	desk, err := buildDesktop(cfg, keys, fb, logger)
	if err != nil {
		return err
	}

	screen, err := terminal.New(keys, logger)
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	// Restore terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	stats := status.NewRegistry()
	loop := engine.NewLoop(desk.comp, screen, screen, engine.LoopConfig{
		Interval: cfg.Loop.Interval,
		Stats:    stats,
		OnResize: func(w, h int) {
			logger.Printf("resize %dx%d", w, h)
			screen.Sync()
		},
	})
	err = loop.Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	stats.Counter("input.dropped").Store(int64(screen.Dropped()))
	for i, ring := range desk.rings {
		stats.Counter(fmt.Sprintf("console%d.lines", i)).Store(int64(ring.Len()))
		stats.Counter(fmt.Sprintf("console%d.evicted", i)).Store(int64(ring.Evicted()))
	}
	stats.Report(logger)
	return err
}
