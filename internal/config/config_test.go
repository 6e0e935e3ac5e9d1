package config

import (
	"path/filepath"
	"testing"

	"github.com/taskdeck/taskdeck/internal/query"
)

// ============================================================================
// DEFAULTS
// ============================================================================

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.PageSize != query.DefaultPageSize {
		t.Errorf("Expected default page size %d, got %d", query.DefaultPageSize, cfg.PageSize)
	}
	if cfg.Accent == "" {
		t.Error("Expected a default accent color")
	}
	if cfg.EditBuiltins {
		t.Error("Built-in editing must be off by default")
	}
}

func TestNormalizePageSize(t *testing.T) {
	cfg := &Config{PageSize: 33}
	cfg.normalize()
	if cfg.PageSize != query.DefaultPageSize {
		t.Errorf("Expected invalid size replaced with default, got %d", cfg.PageSize)
	}

	cfg = &Config{PageSize: 50}
	cfg.normalize()
	if cfg.PageSize != 50 {
		t.Errorf("Expected valid size kept, got %d", cfg.PageSize)
	}
}

func TestNormalizeAccent(t *testing.T) {
	cfg := &Config{PageSize: 10}
	cfg.normalize()
	if cfg.Accent == "" {
		t.Error("Expected empty accent replaced with the default")
	}
}

// ============================================================================
// PATHS
// ============================================================================

func TestResolveDataDirConfigured(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/deckdata"}

	dir, err := cfg.ResolveDataDir()
	if err != nil {
		t.Fatalf("ResolveDataDir failed: %v", err)
	}
	if dir != "/tmp/deckdata" {
		t.Errorf("Expected configured dir, got %q", dir)
	}

	db, err := cfg.DBPath()
	if err != nil {
		t.Fatalf("DBPath failed: %v", err)
	}
	if db != filepath.Join("/tmp/deckdata", "taskdeck.db") {
		t.Errorf("Unexpected db path %q", db)
	}
}

func TestResolveDataDirDefault(t *testing.T) {
	t.Setenv("HOME", "/tmp/fakehome")

	dir, err := Default().ResolveDataDir()
	if err != nil {
		t.Fatalf("ResolveDataDir failed: %v", err)
	}
	if dir != filepath.Join("/tmp/fakehome", ".taskdeck") {
		t.Errorf("Expected home-based default, got %q", dir)
	}
}
