package field

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/cli"
	"github.com/taskdeck/taskdeck/internal/deck"
)

// RmCmd returns the field rm subcommand
func RmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <key>",
		Short: "Remove a custom column",
		Long: `Remove a custom column from the schema. Built-in columns are
protected. Existing tasks keep the values they stored under the removed key;
they simply stop being shown.`,
		Args: cobra.ExactArgs(1),
		RunE: runRm,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "No output on success")

	return cmd
}

func runRm(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	c, err := cli.NewCLI(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer closeQuietly(c)

	if err := c.Deck.RemoveField(args[0]); err != nil {
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

	if jsonOutput {
		return formatter.Success(map[string]any{"removed": args[0]})
	}
	if !quietMode {
		fmt.Printf("Removed column %s\n", args[0])
	}
	return nil
}
