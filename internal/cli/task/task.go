// Package task implements the `taskdeck task` subcommands.
package task

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/cli"
)

// Cmd returns the task command group
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
		Long:  "Create, list, edit and delete tasks.",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(AddCmd())
	cmd.AddCommand(EditCmd())
	cmd.AddCommand(RmCmd())

	return cmd
}

func closeQuietly(c *cli.CLI) {
	if err := c.Close(); err != nil {
		slog.Error("Error closing CLI", "error", err)
	}
}
