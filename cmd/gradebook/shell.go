package main

import (
	"github.com/spf13/cobra"

	"github.com/bigredeye/gradebook/internal/console"
)

func makeShellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive menu (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd)
		},
	}
}

func runShell(cmd *cobra.Command) error {
	manager, err := openManager()
	if err != nil {
		return err
	}
	return console.NewShell(cmd.InOrStdin(), cmd.OutOrStdout(), manager, conf.DataFile, log).Run()
}
