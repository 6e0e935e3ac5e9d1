package field

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/cli"
	"github.com/taskdeck/taskdeck/internal/deck"
	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/schema"
)

// AddCmd returns the field add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a custom column",
		Long: `Add a custom column. The column key is derived from the title;
adding "Due Date" creates key "due_date" and fails if that key exists.`,
		Args: cobra.ExactArgs(1),
		RunE: runAdd,
	}

	cmd.Flags().String("type", "text", "Column type: text, number or select")
	cmd.Flags().Bool("required", false, "Make the field required")
	cmd.Flags().StringArray("option", nil, "Select option as value:label (repeatable)")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (key only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	typeFlag, _ := cmd.Flags().GetString("type")
	required, _ := cmd.Flags().GetBool("required")
	optionFlags, _ := cmd.Flags().GetStringArray("option")

	def := schema.NewColumn{
		Title:    args[0],
		Type:     models.ColumnType(typeFlag),
		Required: required,
		Options:  cli.ParseOptionFlags(optionFlags),
	}

	c, err := cli.NewCLI(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer closeQuietly(c)

	col, err := c.Deck.AddField(def)
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
	fmt.Printf("Added %s column %q (key %s)\n", col.Type, col.Title, col.Key)
	return nil
}
