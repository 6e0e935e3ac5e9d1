// Package query implements the filter → sort → paginate pipeline the table
// views run over the current records and schema. The pipeline is pure: it
// never mutates its inputs and has no dependency on the registry or store
// beyond their public shapes.
package query

import (
	"sort"
	"strings"

	"github.com/taskdeck/taskdeck/internal/models"
)

// SortDirection is the requested ordering for the sort stage.
type SortDirection string

const (
	SortNone SortDirection = ""
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Sort names the column to order by and the direction. An empty key, an
// unknown key or SortNone leave records in filtered order.
type Sort struct {
	Key       string
	Direction SortDirection
}

// Page selects the window of the sorted records to return.
type Page struct {
	Current int
	Size    int
}

// Result is one page of records plus the page count for the whole filtered
// set. TotalPages is 0 (not 1) when nothing matched; callers hide pagination
// in that case.
type Result struct {
	Tasks      []*models.Task
	TotalPages int
}

// Run executes the three stages in their fixed order. Filtering before
// sorting before paging keeps page boundaries stable relative to the active
// filter. Run never fails on malformed field values: everything is compared
// through its string coercion.
func Run(tasks []*models.Task, columns []*models.Column, filters map[string]string, srt Sort, page Page) Result {
	filtered := Filter(tasks, filters)
	sorted := SortTasks(filtered, columns, srt)
	return Paginate(sorted, page)
}

// Filter keeps records matching every active filter: for each non-empty
// filter value, the record's value for that key (absent reads as empty),
// case-folded, must contain the case-folded filter string. Conjunction
// across columns.
func Filter(tasks []*models.Task, filters map[string]string) []*models.Task {
	active := make(map[string]string, len(filters))
	for key, value := range filters {
		if value != "" {
			active[key] = strings.ToLower(value)
		}
	}
	if len(active) == 0 {
		return append([]*models.Task(nil), tasks...)
	}

	out := make([]*models.Task, 0, len(tasks))
	for _, task := range tasks {
		if matchesAll(task, active) {
			out = append(out, task)
		}
	}
	return out
}

func matchesAll(task *models.Task, active map[string]string) bool {
	for key, needle := range active {
		haystack := strings.ToLower(task.StringValue(key))
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}

// SortTasks orders records by the named column, stably, so ties keep their
// filtered-stage order. Select columns compare by option declaration index
// (missing values sort as -1, ahead of every declared option); all other
// columns compare their stringified values case-sensitively, which for
// numbers is lexical, not numeric.
func SortTasks(tasks []*models.Task, columns []*models.Column, srt Sort) []*models.Task {
	out := append([]*models.Task(nil), tasks...)
	if srt.Key == "" || srt.Direction == SortNone {
		return out
	}
	col := findColumn(columns, srt.Key)
	if col == nil {
		return out
	}

	cmp := compareFor(col)
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if srt.Direction == SortDesc {
			c = -c
		}
		return c < 0
	})
	return out
}

func compareFor(col *models.Column) func(a, b *models.Task) int {
	if col.Type == models.ColumnSelect {
		return func(a, b *models.Task) int {
			return col.OptionIndex(a.StringValue(col.Key)) - col.OptionIndex(b.StringValue(col.Key))
		}
	}
	return func(a, b *models.Task) int {
		return strings.Compare(a.StringValue(col.Key), b.StringValue(col.Key))
	}
}

// Paginate slices out the requested page. The pipeline does not clamp
// Current; a stale page past the end yields an empty slice, which the views
// render as "no results".
func Paginate(tasks []*models.Task, page Page) Result {
	if page.Size <= 0 {
		page.Size = DefaultPageSize
	}
	if page.Current < 1 {
		page.Current = 1
	}

	total := (len(tasks) + page.Size - 1) / page.Size

	start := (page.Current - 1) * page.Size
	if start >= len(tasks) {
		return Result{Tasks: []*models.Task{}, TotalPages: total}
	}
	end := start + page.Size
	if end > len(tasks) {
		end = len(tasks)
	}
	return Result{Tasks: tasks[start:end], TotalPages: total}
}

func findColumn(columns []*models.Column, key string) *models.Column {
	for _, col := range columns {
		if col.Key == key {
			return col
		}
	}
	return nil
}
