package task

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/cli"
	"github.com/taskdeck/taskdeck/internal/query"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  "List tasks as a table, optionally filtered, sorted and paginated.",
		RunE:  runList,
	}

	cmd.Flags().StringArray("filter", nil, "Substring filter as key=value (repeatable, ANDed)")
	cmd.Flags().String("sort", "", "Column key to sort by")
	cmd.Flags().Bool("desc", false, "Sort descending")
	cmd.Flags().Int("page", 1, "Page to show")
	cmd.Flags().Int("page-size", 0, "Page size (10, 20, 50 or 100)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	filterPairs, _ := cmd.Flags().GetStringArray("filter")
	filters, err := cli.ParseSetFlags(filterPairs)
	if err != nil {
		if fmtErr := formatter.Error("BAD_FILTER", err.Error()); fmtErr != nil {
			return fmtErr
		}
		os.Exit(cli.ExitUsage)
	}

	c, err := cli.NewCLI(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer closeQuietly(c)

	state := query.NewState()
	state.Filters = filters
	if key, _ := cmd.Flags().GetString("sort"); key != "" {
		state.Sort = query.Sort{Key: key, Direction: query.SortAsc}
		if desc, _ := cmd.Flags().GetBool("desc"); desc {
			state.Sort.Direction = query.SortDesc
		}
	}
	state.SetPageSize(c.Config.PageSize)
	if size, _ := cmd.Flags().GetInt("page-size"); size != 0 {
		state.SetPageSize(size)
	}
	if page, _ := cmd.Flags().GetInt("page"); page > 1 {
		state.SetPage(page)
	}

	columns := c.Deck.Columns()
	result := state.Run(c.Deck.Tasks(), columns)
	state.Clamp(result.TotalPages)
	result = state.Run(c.Deck.Tasks(), columns)

	if quietMode {
		for _, t := range result.Tasks {
			fmt.Printf("%d\n", t.ID)
		}
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success":    true,
			"tasks":      result.Tasks,
			"page":       state.Page.Current,
			"totalPages": result.TotalPages,
		})
	}

	if result.TotalPages == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	var sb strings.Builder
	cli.RenderTaskTable(&sb, columns, result.Tasks)
	fmt.Print(sb.String())
	fmt.Printf("\nPage %d of %d\n", state.Page.Current, result.TotalPages)
	return nil
}
