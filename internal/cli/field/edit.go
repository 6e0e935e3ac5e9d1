package field

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/cli"
	"github.com/taskdeck/taskdeck/internal/deck"
	"github.com/taskdeck/taskdeck/internal/schema"
)

// EditCmd returns the field edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <key>",
		Short: "Edit a column",
		Long: `Edit a column's title, required flag or options. The key and type
never change. Replacing a select column's options leaves records pointing at
removed values untouched; they just render as "-" until re-edited.`,
		Args: cobra.ExactArgs(1),
		RunE: runEdit,
	}

	cmd.Flags().String("title", "", "New display title")
	cmd.Flags().Bool("required", false, "New required flag (only applied with --set-required)")
	cmd.Flags().Bool("set-required", false, "Apply the --required flag")
	cmd.Flags().StringArray("option", nil, "Replacement select options as value:label (repeatable, wholesale)")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (key only)")

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	var patch schema.Patch
	if title, _ := cmd.Flags().GetString("title"); title != "" {
		patch.Title = &title
	}
	if setRequired, _ := cmd.Flags().GetBool("set-required"); setRequired {
		required, _ := cmd.Flags().GetBool("required")
		patch.Required = &required
	}
	if optionFlags, _ := cmd.Flags().GetStringArray("option"); len(optionFlags) > 0 {
		patch.Options = cli.ParseOptionFlags(optionFlags)
	}

	c, err := cli.NewCLI(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer closeQuietly(c)

	col, err := c.Deck.UpdateField(args[0], patch)
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
		return formatter.Success(col)
	}
	fmt.Printf("Updated column %q (key %s)\n", col.Title, col.Key)
	return nil
}
