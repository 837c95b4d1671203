package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/phanxgames/sanctuary"
)

var morphCmd = &cobra.Command{
	Use:   "morph <count>",
	Short: "Show the tree morphology for a gratitude count",
	Args:  cobra.ExactArgs(1),
	RunE:  runMorph,
}

func init() {
	morphCmd.Flags().Bool("table", false, "print every count from 0 to <count>")
	rootCmd.AddCommand(morphCmd)
}

func runMorph(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("morph: invalid count %q: %w", args[0], err)
	}
	out := cmd.OutOrStdout()
	if table, _ := cmd.Flags().GetBool("table"); table {
		fmt.Fprintln(out, "count  stage        trunk  width  branches  roots  flowers")
		for i := 0; i <= n; i++ {
			printMorphRow(out, sanctuary.MorphologyFor(i))
		}
		return nil
	}

	m := sanctuary.MorphologyFor(n)
	fmt.Fprintf(out, "leaves:   %d\n", m.LeafCount)
	fmt.Fprintf(out, "stage:    %s\n", m.Stage)
	fmt.Fprintf(out, "trunk:    %.0f x %.1f\n", m.TrunkHeight, m.TrunkWidth)
	fmt.Fprintf(out, "branches: %d (%d drawn)\n", m.BranchCount, m.DrawnBranches())
	fmt.Fprintf(out, "roots:    %t\n", m.HasRoots)
	fmt.Fprintf(out, "flowers:  %t\n", m.FlowersEnabled)
	return nil
}

func printMorphRow(w io.Writer, m sanctuary.TreeMorphology) {
	fmt.Fprintf(w, "%5d  %-11s  %5.0f  %5.1f  %8d  %5t  %7t\n",
		m.LeafCount, m.Stage, m.TrunkHeight, m.TrunkWidth, m.BranchCount, m.HasRoots, m.FlowersEnabled)
}
