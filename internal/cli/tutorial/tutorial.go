// Package tutorial renders the built-in usage guide.
package tutorial

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed tutorial.md
var tutorialContent string

// Cmd returns the tutorial command
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Show the usage guide",
		Long:  "Render the taskdeck usage guide in the terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			plain, _ := cmd.Flags().GetBool("plain")
			return renderTutorial(plain)
		},
	}
	cmd.Flags().Bool("plain", false, "Print raw markdown without styling")
	return cmd
}

func renderTutorial(plain bool) error {
	if plain {
		fmt.Print(tutorialContent)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		// no styled renderer available, fall back to raw markdown
		fmt.Print(tutorialContent)
		return nil
	}

	out, err := renderer.Render(tutorialContent)
	if err != nil {
		fmt.Print(tutorialContent)
		return nil
	}
	fmt.Print(out)
	return nil
}
