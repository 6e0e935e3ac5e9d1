package task

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/cli"
	"github.com/taskdeck/taskdeck/internal/deck"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task",
		Long:  "Create a task from --set key=value pairs against the current schema.",
		RunE:  runAdd,
	}

	cmd.Flags().String("title", "", "Task title (shorthand for --set title=...)")
	cmd.Flags().StringArray("set", nil, "Field value as key=value (repeatable)")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	pairs, _ := cmd.Flags().GetStringArray("set")
	raw, err := cli.ParseSetFlags(pairs)
	if err != nil {
		if fmtErr := formatter.Error("BAD_SET", err.Error()); fmtErr != nil {
			return fmtErr
		}
		os.Exit(cli.ExitUsage)
	}
	if title, _ := cmd.Flags().GetString("title"); title != "" {
		raw["title"] = title
	}

	c, err := cli.NewCLI(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer closeQuietly(c)

	values := cli.CoerceValues(c.Deck.Columns(), raw)
	task, err := c.Deck.SubmitTask(0, values)
	if err != nil {
		var perr *deck.PersistError
		if errors.As(err, &perr) {
			// applied in memory; report the storage trouble and move on
			fmt.Fprintf(os.Stderr, "Warning: %v\n", perr)
		} else {
			if fmtErr := formatter.Error(cli.CodeName(err), err.Error()); fmtErr != nil {
				return fmtErr
			}
			os.Exit(cli.CodeFor(err))
		}
	}

	if jsonOutput || quietMode {
		return formatter.Success(task)
	}
	fmt.Printf("Created task [%d] %s\n", task.ID, task.StringValue("title"))
	return nil
}
