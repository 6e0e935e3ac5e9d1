// Package field implements the `taskdeck field` subcommands for managing the
// table schema.
package field

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/cli"
)

// Cmd returns the field command group
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "field",
		Short: "Manage table columns",
		Long:  "List, add, edit and remove the table's custom columns.",
	}

	cmd.AddCommand(LsCmd())
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
