package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pricingsolver",
		Short:         "Column-generation pricing solver for VRPTW-C",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.AddCommand(newSolveCmd())
	return cmd
}
