package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phanxgames/sanctuary"
	"github.com/phanxgames/sanctuary/journal"
)

var leafCmd = &cobra.Command{
	Use:   "leaf",
	Short: "Manage gratitude entries",
}

var leafAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Log a gratitude entry",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLeafAdd,
}

var leafListCmd = &cobra.Command{
	Use:   "list",
	Short: "List gratitude entries",
	Args:  cobra.NoArgs,
	RunE:  runLeafList,
}

func init() {
	leafCmd.AddCommand(leafAddCmd, leafListCmd)
	rootCmd.AddCommand(leafCmd)
}

func runLeafAdd(cmd *cobra.Command, args []string) error {
	cfg := Load()
	ctx := cmd.Context()

	src, err := journal.Open(ctx, cfg.Journal)
	if err != nil {
		return err
	}
	defer src.Close()

	e, err := src.Append(ctx, strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("leaf add: %w", err)
	}
	entries, err := src.Entries(ctx)
	if err != nil {
		return err
	}
	m := sanctuary.MorphologyFor(len(entries))
	fmt.Fprintf(cmd.OutOrStdout(), "leaf %d: %s\ntree: %s (%d leaves)\n", e.ID, e.Text, m.Stage, m.LeafCount)
	return nil
}

func runLeafList(cmd *cobra.Command, _ []string) error {
	cfg := Load()
	ctx := cmd.Context()

	src, err := journal.Open(ctx, cfg.Journal)
	if err != nil {
		return err
	}
	defer src.Close()

	entries, err := src.Entries(ctx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, e := range entries {
		if e.CreatedAt.IsZero() {
			fmt.Fprintf(out, "%4d  %s\n", e.ID, e.Text)
			continue
		}
		fmt.Fprintf(out, "%4d  %s  %s\n", e.ID, e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Text)
	}
	fmt.Fprintf(out, "%d entries, tree stage %s\n", len(entries), sanctuary.MorphologyFor(len(entries)).Stage)
	return nil
}
