// Package validate derives per-column validation rules from the live schema.
// Rules are derived once per form instantiation, against the schema as it is
// at that moment, not as it was when the record was created. The record store
// never validates; everything funnels through here at the form boundary.
package validate

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/taskdeck/taskdeck/internal/models"
)

// FieldRule is the derived validation rule for a single column.
type FieldRule struct {
	column *models.Column
}

// Rule derives the validation rule for a column.
func Rule(col *models.Column) FieldRule {
	return FieldRule{column: col.Clone()}
}

// Validate checks one value against the rule. A nil value means the field is
// absent, which is fine unless the column is required. Returns nil on
// success.
func (r FieldRule) Validate(value any) *models.FieldError {
	col := r.column
	switch col.Type {
	case models.ColumnText:
		s := models.FieldString(value)
		if col.Required && strings.TrimSpace(s) == "" {
			return r.required()
		}
		return nil

	case models.ColumnNumber:
		if value == nil || value == "" {
			if col.Required {
				return r.required()
			}
			return nil
		}
		if !isInteger(value) {
			if col.Required {
				// the legacy form reported a bad number on a
				// required field as a missing field
				return r.required()
			}
			return &models.FieldError{
				Key:     col.Key,
				Message: fmt.Sprintf("%q must be a whole number", col.Title),
			}
		}
		return nil

	case models.ColumnSelect:
		if value == nil || value == "" {
			if col.Required {
				return r.required()
			}
			return nil
		}
		if col.OptionIndex(models.FieldString(value)) < 0 {
			return &models.FieldError{
				Key:     col.Key,
				Message: fmt.Sprintf("invalid value for %q", col.Title),
			}
		}
		return nil
	}
	return nil
}

func (r FieldRule) required() *models.FieldError {
	return &models.FieldError{
		Key:     r.column.Key,
		Message: fmt.Sprintf("%q is required", r.column.Title),
	}
}

// Record validates a full set of field values against the current schema
// snapshot. Keys in fields that no column declares are ignored: they may be
// dangling values from removed columns. Returns one error per failing field.
func Record(columns []*models.Column, fields map[string]any) []*models.FieldError {
	var errs []*models.FieldError
	for _, col := range columns {
		if err := Rule(col).Validate(fields[col.Key]); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// isInteger accepts int-ish values: Go integers, whole floats (what JSON
// decoding produces) and decimal strings.
func isInteger(value any) bool {
	switch v := value.(type) {
	case int, int64:
		return true
	case float64:
		return v == math.Trunc(v)
	case string:
		_, err := strconv.Atoi(strings.TrimSpace(v))
		return err == nil
	default:
		return false
	}
}
