package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phanxgames/sanctuary"
	"github.com/phanxgames/sanctuary/journal"
)

// maxScriptTicks bounds a headless scripted session.
const maxScriptTicks = 100_000

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a garden headlessly to a PNG",
	Long: "Render composes a garden without a window. Leaves come from --leaves or the journal, " +
		"and an optional JSON or TOML script drives modes, clicks, drags and screenshots before the final frame is written.",
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("script", "", "session script (.json or .toml)")
	renderCmd.Flags().StringP("out", "o", "garden.png", "output PNG path")
	renderCmd.Flags().Int("leaves", -1, "number of gratitude leaves (default: read the journal)")
	renderCmd.Flags().Float64("scale", 1, "output scale factor")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg := Load()
	ctx := cmd.Context()

	ctrl, err := sanctuary.NewController(cfg.controllerConfig())
	if err != nil {
		return err
	}

	leaves, _ := cmd.Flags().GetInt("leaves")
	if err := seedLeaves(ctx, ctrl, cfg.Journal, leaves); err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("script"); path != "" {
		runner, err := sanctuary.LoadScriptFile(path)
		if err != nil {
			return err
		}
		if err := playScript(ctrl, runner); err != nil {
			return err
		}
	}

	out, _ := cmd.Flags().GetString("out")
	scale, _ := cmd.Flags().GetFloat64("scale")
	if err := sanctuary.WritePNG(out, ctrl.Frame().Image(), scale); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (seed %d, %d leaves, %d stars, %d stones)\n",
		out, ctrl.Seed(), len(ctrl.Leaves()), len(ctrl.Stars()), len(ctrl.Stones()))
	return nil
}

// seedLeaves fills the garden with n placeholder leaves, or with the
// journal's entries when n is negative.
func seedLeaves(ctx context.Context, ctrl *sanctuary.Controller, path string, n int) error {
	if n >= 0 {
		for i := range n {
			_ = ctrl.AddLeaf(fmt.Sprintf("leaf %d", i+1))
		}
		return nil
	}
	src, err := journal.Open(ctx, path)
	if err != nil {
		return err
	}
	defer src.Close()
	entries, err := src.Entries(ctx)
	if err != nil {
		return err
	}
	ctrl.SyncLeaves(journal.Texts(entries))
	return nil
}

// playScript ticks the controller until runner finishes, composing a frame
// each tick so queued screenshots are written.
func playScript(ctrl *sanctuary.Controller, runner *sanctuary.ScriptRunner) error {
	ctrl.SetScript(runner)
	for range maxScriptTicks {
		if runner.Done() && ctrl.Pending() == 0 {
			ctrl.Frame()
			return nil
		}
		ctrl.Update(1.0 / 60)
		ctrl.Frame()
	}
	return fmt.Errorf("render: script did not finish within %d ticks", maxScriptTicks)
}
