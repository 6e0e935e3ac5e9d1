package field

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/cli"
	"github.com/taskdeck/taskdeck/internal/models"
)

// LsCmd returns the field ls subcommand
func LsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List columns",
		Long:  "List all columns: built-ins first, then custom columns in insertion order.",
		RunE:  runLs,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (keys only)")

	return cmd
}

func runLs(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	c, err := cli.NewCLI(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer closeQuietly(c)

	columns := c.Deck.Columns()

	if quietMode {
		for _, col := range columns {
			fmt.Println(col.Key)
		}
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"columns": columns,
		})
	}

	for _, col := range columns {
		kind := "built-in"
		if col.Custom {
			kind = "custom"
		}
		line := fmt.Sprintf("%-16s %-8s %s", col.Key, col.Type, kind)
		if col.Required {
			line += ", required"
		}
		fmt.Println(line)
		if col.Type == models.ColumnSelect {
			for _, opt := range col.Options {
				fmt.Printf("    %s (%s)\n", opt.Label, opt.Value)
			}
		}
	}
	return nil
}
