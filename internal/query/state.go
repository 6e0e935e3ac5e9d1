package query

import (
	"github.com/taskdeck/taskdeck/internal/models"
)

// DefaultPageSize is the page size a fresh view starts with.
const DefaultPageSize = 10

// PageSizes are the selectable page sizes.
var PageSizes = []int{10, 20, 50, 100}

// State is the ephemeral per-view query state: active filters, sort config
// and pagination. It is never persisted; every view mount starts from
// NewState.
type State struct {
	Filters map[string]string
	Sort    Sort
	Page    Page
}

// NewState returns the default view state: no filters, no sort, page 1 at the
// default size.
func NewState() State {
	return State{
		Filters: make(map[string]string),
		Sort:    Sort{Direction: SortAsc},
		Page:    Page{Current: 1, Size: DefaultPageSize},
	}
}

// SetFilter records the filter string for a column and resets to page 1, so
// a narrowed result set is viewed from the top.
func (s *State) SetFilter(key, value string) {
	s.Filters[key] = value
	s.Page.Current = 1
}

// CycleSort handles a sort request on a column header: first request sorts
// ascending, a second request on the same column flips to descending, and a
// request on a different column starts ascending again.
func (s *State) CycleSort(key string) {
	direction := SortAsc
	if s.Sort.Key == key && s.Sort.Direction == SortAsc {
		direction = SortDesc
	}
	s.Sort = Sort{Key: key, Direction: direction}
}

// ClearSort returns the view to filtered (creation) order.
func (s *State) ClearSort() {
	s.Sort = Sort{Direction: SortAsc}
}

// SetPageSize switches the page size and returns to page 1. Sizes outside
// PageSizes are ignored.
func (s *State) SetPageSize(size int) {
	for _, allowed := range PageSizes {
		if size == allowed {
			s.Page = Page{Current: 1, Size: size}
			return
		}
	}
}

// SetPage jumps to a page. The pipeline does not clamp, so callers follow up
// with Clamp once the page count is known.
func (s *State) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.Page.Current = page
}

// Clamp pulls the current page back into range after the filtered set or
// page size shrank underneath it. With zero pages the view shows page 1 of
// nothing.
func (s *State) Clamp(totalPages int) {
	if totalPages < 1 {
		s.Page.Current = 1
		return
	}
	if s.Page.Current > totalPages {
		s.Page.Current = totalPages
	}
	if s.Page.Current < 1 {
		s.Page.Current = 1
	}
}

// Run executes the pipeline with this state over the given records and
// schema.
func (s *State) Run(tasks []*models.Task, columns []*models.Column) Result {
	return Run(tasks, columns, s.Filters, s.Sort, s.Page)
}
