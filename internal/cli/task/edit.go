package task

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/cli"
	"github.com/taskdeck/taskdeck/internal/deck"
)

// EditCmd returns the task edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task",
		Long:  "Merge --set key=value pairs into an existing task.",
		Args:  cobra.ExactArgs(1),
		RunE:  runEdit,
	}

	cmd.Flags().StringArray("set", nil, "Field value as key=value (repeatable)")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	id, err := strconv.Atoi(args[0])
	if err != nil || id < 1 {
		if fmtErr := formatter.Error("BAD_ID", fmt.Sprintf("invalid task id %q", args[0])); fmtErr != nil {
			return fmtErr
		}
		os.Exit(cli.ExitUsage)
	}

	pairs, _ := cmd.Flags().GetStringArray("set")
	raw, err := cli.ParseSetFlags(pairs)
	if err != nil {
		if fmtErr := formatter.Error("BAD_SET", err.Error()); fmtErr != nil {
			return fmtErr
		}
		os.Exit(cli.ExitUsage)
	}

	c, err := cli.NewCLI(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer closeQuietly(c)

	values := cli.CoerceValues(c.Deck.Columns(), raw)
	task, err := c.Deck.SubmitTask(id, values)
	if err != nil {
		var perr *deck.PersistError
		if errors.As(err, &perr) {
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
	fmt.Printf("Updated task [%d] %s\n", task.ID, task.StringValue("title"))
	return nil
}
