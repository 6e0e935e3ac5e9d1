// Package cli holds the shared plumbing of the cobra commands: deck
// initialization, flag parsing helpers and output formatting.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/deck"
	"github.com/taskdeck/taskdeck/internal/schema"
	"github.com/taskdeck/taskdeck/internal/storage"
)

// CLI bundles the open deck and the loaded config for one command run.
type CLI struct {
	Deck   *deck.Deck
	Config *config.Config
}

// NewCLI loads config, opens the persistence adapter and the deck. With the
// root --ephemeral flag set the deck runs on an in-memory adapter and nothing
// survives the process.
func NewCLI(ctx context.Context, cmd *cobra.Command) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var adapter storage.Adapter
	if ephemeral, _ := cmd.Flags().GetBool("ephemeral"); ephemeral {
		adapter = storage.NewMemoryAdapter()
	} else {
		dbPath, err := cfg.DBPath()
		if err != nil {
			return nil, err
		}
		adapter, err = storage.OpenSQLite(ctx, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open storage: %w", err)
		}
	}

	d, err := deck.Open(adapter, schema.Policy{EditBuiltins: cfg.EditBuiltins})
	if err != nil {
		if closeErr := adapter.Close(); closeErr != nil {
			err = fmt.Errorf("%w (close: %v)", err, closeErr)
		}
		return nil, err
	}

	return &CLI{Deck: d, Config: cfg}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.Deck.Close()
}
