package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "subtraj",
	Short: "Batch continuous-Fréchet trajectory similarity search",
	Long: `subtraj preprocesses a dataset of trajectories with a simplification
ladder and spatial index, then solves a batch of "find every dataset
trajectory within delta of this query" requests against it.`,
}

func init() {
	rootCmd.AddCommand(runCmd)
}
