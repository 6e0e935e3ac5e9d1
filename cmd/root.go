// Package cmd wires the cobra command tree.
package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/cli"
	"github.com/taskdeck/taskdeck/internal/cli/field"
	"github.com/taskdeck/taskdeck/internal/cli/task"
	"github.com/taskdeck/taskdeck/internal/cli/tutorial"
	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/logging"
	"github.com/taskdeck/taskdeck/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "taskdeck",
	Short: "Taskdeck - a task table with a schema you can grow",
	Long: `Taskdeck is a task-list manager built around a dynamic table schema:
alongside the built-in title, priority and status columns you can add your own
text, number and select columns at runtime, then filter, sort and paginate
across all of them.

Run without arguments for the interactive table.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		dataDir, err := cfg.ResolveDataDir()
		if err != nil {
			return err
		}
		return logging.Init(dataDir)
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().Bool("ephemeral", false, "Run against an in-memory deck, persist nothing")

	rootCmd.AddCommand(task.Cmd())
	rootCmd.AddCommand(field.Cmd())
	rootCmd.AddCommand(tutorial.Cmd())
}

func Execute() error {
	return rootCmd.Execute()
}

func runTUI(cmd *cobra.Command, args []string) error {
	c, err := cli.NewCLI(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			slog.Error("Error closing deck", "error", err)
		}
	}()

	return tui.Run(c.Deck, c.Config)
}
