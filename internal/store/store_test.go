package store

import (
	"errors"
	"testing"

	"github.com/taskdeck/taskdeck/internal/models"
)

// ============================================================================
// CREATE
// ============================================================================

func TestCreateAssignsSequentialIDs(t *testing.T) {
	s := NewStore()

	first := s.Create(map[string]any{"title": "one"})
	second := s.Create(map[string]any{"title": "two"})
	if first.ID != 1 || second.ID != 2 {
		t.Errorf("Expected ids 1,2, got %d,%d", first.ID, second.ID)
	}
}

func TestCreatePrepends(t *testing.T) {
	s := NewStore()
	s.Create(map[string]any{"title": "old"})
	s.Create(map[string]any{"title": "new"})

	tasks := s.Tasks()
	if tasks[0].StringValue("title") != "new" {
		t.Errorf("Expected newest task first, got %q", tasks[0].StringValue("title"))
	}
}

func TestCreateCopiesFields(t *testing.T) {
	s := NewStore()
	fields := map[string]any{"title": "one"}
	task := s.Create(fields)

	fields["title"] = "mutated"
	got, _ := s.Get(task.ID)
	if got.StringValue("title") != "one" {
		t.Error("Caller's map mutation leaked into the store")
	}
}

// ============================================================================
// ID MONOTONICITY
// ============================================================================

func TestIDsNeverReused(t *testing.T) {
	s := NewStore()
	s.Create(nil)
	second := s.Create(nil)
	s.Create(nil)

	if err := s.Delete(3); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	next := s.Create(nil)
	if next.ID != 4 {
		t.Errorf("Deleted max id must not be reused: expected 4, got %d", next.ID)
	}
	if second.ID != 2 {
		t.Errorf("Unexpected second id %d", second.ID)
	}
}

func TestLoadReseedsCounter(t *testing.T) {
	s := NewStore()
	s.Load([]*models.Task{
		{ID: 4, Fields: map[string]any{"title": "d"}},
		{ID: 12, Fields: map[string]any{"title": "l"}},
		{ID: 1, Fields: map[string]any{"title": "a"}},
	})

	task := s.Create(map[string]any{"title": "next"})
	if task.ID != 13 {
		t.Errorf("Expected counter seeded past the max loaded id, got %d", task.ID)
	}
	if s.Len() != 4 {
		t.Errorf("Expected 4 tasks after load+create, got %d", s.Len())
	}
}

// ============================================================================
// UPDATE
// ============================================================================

func TestUpdateShallowMerges(t *testing.T) {
	s := NewStore()
	task := s.Create(map[string]any{"title": "draft", "priority": "low"})

	got, err := s.Update(task.ID, map[string]any{"priority": "high"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if got.StringValue("title") != "draft" {
		t.Errorf("Untouched key must survive the merge, got %q", got.StringValue("title"))
	}
	if got.StringValue("priority") != "high" {
		t.Errorf("Patched key not applied, got %q", got.StringValue("priority"))
	}
}

func TestUpdateUnknownTask(t *testing.T) {
	s := NewStore()
	if _, err := s.Update(99, map[string]any{"title": "x"}); !errors.Is(err, models.ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound, got %v", err)
	}
}

// ============================================================================
// DELETE
// ============================================================================

func TestDelete(t *testing.T) {
	s := NewStore()
	task := s.Create(map[string]any{"title": "gone"})

	if err := s.Delete(task.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Get(task.ID); !errors.Is(err, models.ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound after delete, got %v", err)
	}
	if err := s.Delete(task.ID); !errors.Is(err, models.ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound on double delete, got %v", err)
	}
}

// ============================================================================
// SNAPSHOT ISOLATION
// ============================================================================

func TestTasksReturnsCopies(t *testing.T) {
	s := NewStore()
	task := s.Create(map[string]any{"title": "safe"})

	s.Tasks()[0].Fields["title"] = "mutated"
	got, _ := s.Get(task.ID)
	if got.StringValue("title") != "safe" {
		t.Error("Mutating a returned task leaked into the store")
	}
}
