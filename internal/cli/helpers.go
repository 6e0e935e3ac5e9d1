package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/taskdeck/taskdeck/internal/models"
)

// ParseSetFlags parses repeated "key=value" flags into a map.
func ParseSetFlags(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", pair)
		}
		out[key] = value
	}
	return out, nil
}

// ParseOptionFlags parses repeated "value:label" flags into select options.
// A bare "value" uses the value as its own label.
func ParseOptionFlags(pairs []string) []models.SelectOption {
	out := make([]models.SelectOption, 0, len(pairs))
	for _, pair := range pairs {
		value, label, found := strings.Cut(pair, ":")
		if !found || label == "" {
			label = value
		}
		out = append(out, models.SelectOption{Value: value, Label: label})
	}
	return out
}

// CoerceValues converts raw string inputs to the value shape each column
// stores: ints for number columns, strings elsewhere. Unparseable numbers are
// passed through as strings so validation reports them instead of the flag
// parser.
func CoerceValues(columns []*models.Column, raw map[string]string) map[string]any {
	types := make(map[string]models.ColumnType, len(columns))
	for _, col := range columns {
		types[col.Key] = col.Type
	}

	out := make(map[string]any, len(raw))
	for key, value := range raw {
		if types[key] == models.ColumnNumber {
			if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
				out[key] = n
				continue
			}
		}
		out[key] = value
	}
	return out
}
