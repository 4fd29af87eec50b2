package main

import (
	"github.com/spf13/cobra"
)

const version = "0.1.0"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ouija",
		Short:         "Search the seed space for seeds matching a query",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ouija version and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println("ouija version " + version)
			return nil
		},
	}
}
