// Package deck is the composition root of the table engine: one schema
// registry, one record store, one persistence adapter. Every mutation funnels
// through here, behind a single mutex, which is what lets the registry and
// store stay lock-free. Writes go through to storage after each successful
// mutation; a failed write is surfaced as a PersistError but never rolls the
// in-memory state back.
package deck

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/schema"
	"github.com/taskdeck/taskdeck/internal/seed"
	"github.com/taskdeck/taskdeck/internal/storage"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/validate"
)

// Deck owns the live schema and records for one session.
type Deck struct {
	mu       sync.Mutex
	registry *schema.Registry
	store    *store.Store
	adapter  storage.Adapter
}

// Open performs the one-time read phase against the adapter. Absent or
// malformed data falls back to the built-in seed: zero custom columns and the
// embedded task list. This is the bootstrap contract, not corruption
// recovery, so a fallback is logged but not an error.
func Open(adapter storage.Adapter, policy schema.Policy) (*Deck, error) {
	d := &Deck{
		registry: schema.NewRegistry(policy),
		store:    store.NewStore(),
		adapter:  adapter,
	}

	d.registry.LoadCustom(d.loadColumns())
	d.store.Load(d.loadTasks())
	return d, nil
}

func (d *Deck) loadColumns() []*models.Column {
	raw, ok, err := d.adapter.Read(storage.KeyCustomColumns)
	if err != nil {
		slog.Error("failed to read custom columns, starting without", "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	var columns []*models.Column
	if err := json.Unmarshal(raw, &columns); err != nil {
		slog.Warn("stored custom columns are malformed, starting without", "error", err)
		return nil
	}
	return columns
}

func (d *Deck) loadTasks() []*models.Task {
	raw, ok, err := d.adapter.Read(storage.KeyTasks)
	if err != nil {
		slog.Error("failed to read tasks, falling back to seed", "error", err)
		return seed.Tasks()
	}
	if !ok {
		return seed.Tasks()
	}
	var tasks []*models.Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		slog.Warn("stored tasks are malformed, falling back to seed", "error", err)
		return seed.Tasks()
	}
	return tasks
}

// Close closes the persistence adapter.
func (d *Deck) Close() error {
	return d.adapter.Close()
}

// Columns returns the full ordered schema snapshot.
func (d *Deck) Columns() []*models.Column {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.registry.Columns()
}

// Column returns one column by key.
func (d *Deck) Column(key string) (*models.Column, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.registry.Get(key)
}

// Tasks returns all records, most recently created first.
func (d *Deck) Tasks() []*models.Task {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.store.Tasks()
}

// TaskCount returns the number of records.
func (d *Deck) TaskCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.store.Len()
}

// Task returns one record by id.
func (d *Deck) Task(id int) (*models.Task, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.store.Get(id)
}

// SubmitTask creates (id 0) or edits a record after validating the values
// against the current schema snapshot. Edits shallow-merge into the existing
// record. A *ValidationError means nothing was applied; a *PersistError means
// the record changed but the write-through failed.
func (d *Deck) SubmitTask(id int, values map[string]any) (*models.Task, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	// Partial edits validate as the record will look after the merge, so a
	// patch that leaves a required field untouched still passes.
	merged := values
	if id != 0 {
		existing, err := d.store.Get(id)
		if err != nil {
			return nil, err
		}
		merged = existing.Fields
		for k, v := range values {
			merged[k] = v
		}
	}
	if fieldErrs := validate.Record(d.registry.Columns(), merged); len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	var task *models.Task
	if id == 0 {
		task = d.store.Create(values)
	} else {
		var err error
		task, err = d.store.Update(id, values)
		if err != nil {
			return nil, err
		}
	}
	return task, d.persistTasks()
}

// DeleteTask removes a record.
func (d *Deck) DeleteTask(id int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.store.Delete(id); err != nil {
		return err
	}
	return d.persistTasks()
}

// AddField registers a custom column, key derived from its title.
func (d *Deck) AddField(def schema.NewColumn) (*models.Column, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	col, err := d.registry.Add(def)
	if err != nil {
		return nil, err
	}
	return col, d.persistColumns()
}

// UpdateField edits a column's title, required flag or options.
func (d *Deck) UpdateField(key string, patch schema.Patch) (*models.Column, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	col, err := d.registry.Update(key, patch)
	if err != nil {
		return nil, err
	}
	return col, d.persistColumns()
}

// RemoveField unregisters a custom column. Records keep whatever values they
// stored under the removed key; the views just stop showing them.
func (d *Deck) RemoveField(key string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.registry.Remove(key); err != nil {
		return err
	}
	return d.persistColumns()
}

func (d *Deck) persistTasks() error {
	raw, err := json.Marshal(d.store.Tasks())
	if err != nil {
		return &PersistError{Err: err}
	}
	if err := d.adapter.Write(storage.KeyTasks, raw); err != nil {
		slog.Error("failed to persist tasks", "error", err)
		return &PersistError{Err: err}
	}
	return nil
}

func (d *Deck) persistColumns() error {
	raw, err := json.Marshal(d.registry.Custom())
	if err != nil {
		return &PersistError{Err: err}
	}
	if err := d.adapter.Write(storage.KeyCustomColumns, raw); err != nil {
		slog.Error("failed to persist custom columns", "error", err)
		return &PersistError{Err: err}
	}
	return nil
}
