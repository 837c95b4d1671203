package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/phanxgames/sanctuary"
	"github.com/phanxgames/sanctuary/journal"
	"github.com/phanxgames/sanctuary/window"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the garden in a window",
	Args:  cobra.NoArgs,
	RunE:  runRun,
}

func init() {
	runCmd.Flags().Float64("scale", 0, "override window scale")
	runCmd.Flags().Bool("no-audio", false, "disable milestone chimes")
	runCmd.Flags().Bool("no-hud", false, "hide the status overlay")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	cfg := Load()
	applyRunOverrides(cmd, &cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctrl, err := sanctuary.NewController(cfg.controllerConfig())
	if err != nil {
		return err
	}

	src, err := journal.Open(ctx, cfg.Journal)
	if err != nil {
		return err
	}
	defer src.Close()

	entries, err := src.Entries(ctx)
	if err != nil {
		return err
	}
	ctrl.SyncLeaves(journal.Texts(entries))

	wcfg := cfg.windowConfig()
	if fj, ok := src.(*journal.FileJournal); ok {
		w, err := journal.Watch(ctx, fj)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[sanctuary] journal watch disabled: %v\n", err)
		} else {
			defer w.Stop()
			wcfg.Journal = w.Updates
		}
	}

	if cfg.Debug {
		_, _ = fmt.Fprintf(os.Stderr, "[sanctuary] seed %d, %d leaves\n", ctrl.Seed(), len(ctrl.Leaves()))
	}
	return window.Run(ctrl, wcfg)
}

// applyRunOverrides applies run-only flag values to the loaded config.
func applyRunOverrides(cmd *cobra.Command, cfg *Config) {
	if v, _ := cmd.Flags().GetFloat64("scale"); v > 0 {
		cfg.Window.Scale = v
	}
	if v, _ := cmd.Flags().GetBool("no-audio"); v {
		cfg.Window.Audio = false
	}
	if v, _ := cmd.Flags().GetBool("no-hud"); v {
		cfg.Window.HUD = false
	}
}
