// Package schema owns the ordered column schema of the table: the fixed
// built-in columns plus the user-added custom columns, with key uniqueness
// and built-in protection enforced on every mutation.
package schema

import (
	"strings"

	"github.com/taskdeck/taskdeck/internal/models"
)

// Policy controls what mutations the registry allows on built-in columns.
// Removal of built-ins is never allowed; editing their title/required/options
// is a policy decision of the embedding UI, not a rule of the registry.
type Policy struct {
	EditBuiltins bool
}

// NewColumn is the input for adding a custom column. The key is derived from
// the title, never supplied by the caller.
type NewColumn struct {
	Title    string
	Type     models.ColumnType
	Required bool
	Options  []models.SelectOption
}

// Patch replaces the mutable parts of a column wholesale. Nil fields keep the
// current value; key and type can never change.
type Patch struct {
	Title    *string
	Required *bool
	Options  []models.SelectOption
}

// Registry holds the ordered column list: built-ins first in fixed order,
// then custom columns in insertion order. It is not safe for concurrent use;
// the deck service serializes all mutations behind one owner.
type Registry struct {
	policy   Policy
	builtins []*models.Column
	customs  []*models.Column
}

// NewRegistry creates a registry seeded with the built-in columns.
func NewRegistry(policy Policy) *Registry {
	return &Registry{
		policy:   policy,
		builtins: models.BuiltinColumns(),
	}
}

// LoadCustom replaces the custom column list with a persisted snapshot.
// Columns whose key collides with a built-in are dropped rather than allowed
// to shadow it.
func (r *Registry) LoadCustom(columns []*models.Column) {
	r.customs = r.customs[:0]
	for _, col := range columns {
		if col == nil || r.findBuiltin(col.Key) != nil {
			continue
		}
		c := col.Clone()
		c.Custom = true
		r.customs = append(r.customs, c)
	}
}

// Columns returns the full ordered schema: built-ins first, then customs in
// insertion order. The returned columns are copies.
func (r *Registry) Columns() []*models.Column {
	out := make([]*models.Column, 0, len(r.builtins)+len(r.customs))
	for _, col := range r.builtins {
		out = append(out, col.Clone())
	}
	for _, col := range r.customs {
		out = append(out, col.Clone())
	}
	return out
}

// Custom returns copies of just the custom columns, the part of the schema
// that gets persisted.
func (r *Registry) Custom() []*models.Column {
	out := make([]*models.Column, 0, len(r.customs))
	for _, col := range r.customs {
		out = append(out, col.Clone())
	}
	return out
}

// Get returns a copy of the column registered under key.
func (r *Registry) Get(key string) (*models.Column, error) {
	if col := r.find(key); col != nil {
		return col.Clone(), nil
	}
	return nil, models.ErrColumnNotFound
}

// Add derives a key from the new column's title and appends the column after
// all existing ones. Fails with models.ErrDuplicateKey when the derived key
// collides with any registered column, built-in or custom.
func (r *Registry) Add(def NewColumn) (*models.Column, error) {
	if err := validateNewColumn(def); err != nil {
		return nil, err
	}

	key := DeriveKey(def.Title)
	if r.find(key) != nil {
		return nil, models.ErrDuplicateKey
	}

	col := &models.Column{
		Key:      key,
		Title:    def.Title,
		Type:     def.Type,
		Required: def.Required,
		Custom:   true,
	}
	if def.Type == models.ColumnSelect {
		col.Options = append([]models.SelectOption(nil), def.Options...)
	}
	r.customs = append(r.customs, col)
	return col.Clone(), nil
}

// Update replaces a column's title, required flag and options. Built-ins are
// only editable when the policy allows it.
func (r *Registry) Update(key string, patch Patch) (*models.Column, error) {
	col := r.find(key)
	if col == nil {
		return nil, models.ErrColumnNotFound
	}
	if !col.Custom && !r.policy.EditBuiltins {
		return nil, models.ErrProtectedColumn
	}

	next := col.Clone()
	if patch.Title != nil {
		next.Title = *patch.Title
	}
	if patch.Required != nil {
		next.Required = *patch.Required
	}
	if patch.Options != nil {
		next.Options = append([]models.SelectOption(nil), patch.Options...)
	}
	if err := validateColumn(next); err != nil {
		return nil, err
	}

	*col = *next
	return col.Clone(), nil
}

// Remove deletes a custom column. Built-in columns are never removable. The
// record store is untouched: existing tasks keep their now-dangling values.
func (r *Registry) Remove(key string) error {
	if r.findBuiltin(key) != nil {
		return models.ErrProtectedColumn
	}
	for i, col := range r.customs {
		if col.Key == key {
			r.customs = append(r.customs[:i], r.customs[i+1:]...)
			return nil
		}
	}
	return models.ErrColumnNotFound
}

// DeriveKey turns a display title into a column key: lowercase with the first
// space replaced by an underscore. Only the first space is replaced, matching
// the data written by earlier releases; changing this would orphan persisted
// keys like "due_next date".
func DeriveKey(title string) string {
	return strings.Replace(strings.ToLower(title), " ", "_", 1)
}

func (r *Registry) find(key string) *models.Column {
	if col := r.findBuiltin(key); col != nil {
		return col
	}
	for _, col := range r.customs {
		if col.Key == key {
			return col
		}
	}
	return nil
}

func (r *Registry) findBuiltin(key string) *models.Column {
	for _, col := range r.builtins {
		if col.Key == key {
			return col
		}
	}
	return nil
}

func validateNewColumn(def NewColumn) error {
	if strings.TrimSpace(def.Title) == "" {
		return ErrEmptyTitle
	}
	if !def.Type.Valid() {
		return ErrInvalidType
	}
	return validateOptions(def.Type, def.Options)
}

func validateColumn(col *models.Column) error {
	if strings.TrimSpace(col.Title) == "" {
		return ErrEmptyTitle
	}
	return validateOptions(col.Type, col.Options)
}

func validateOptions(typ models.ColumnType, options []models.SelectOption) error {
	if typ != models.ColumnSelect {
		if len(options) > 0 {
			return ErrOptionsOnSelect
		}
		return nil
	}
	if len(options) == 0 {
		return ErrOptionsRequired
	}
	seen := make(map[string]struct{}, len(options))
	for _, opt := range options {
		if _, dup := seen[opt.Value]; dup {
			return ErrDuplicateOption
		}
		seen[opt.Value] = struct{}{}
	}
	return nil
}
