// Package store owns the task records. It knows nothing about the schema:
// validation happens upstream at the form boundary, and the store trusts its
// caller. Ordering is creation order, most recent first, which is what the
// unsorted table view shows.
package store

import (
	"github.com/taskdeck/taskdeck/internal/models"
)

// Store holds the task list and the id counter. IDs are monotonic: the
// counter is seeded from the highest id ever loaded and never reused, even
// when the highest-id task is deleted. Not safe for concurrent use; the deck
// service serializes mutations.
type Store struct {
	tasks  []*models.Task
	nextID int
}

// NewStore returns an empty store. The first created task gets id 1.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// Load replaces the task list with a persisted snapshot and re-seeds the id
// counter from the highest id seen.
func (s *Store) Load(tasks []*models.Task) {
	s.tasks = s.tasks[:0]
	maxID := 0
	for _, t := range tasks {
		if t == nil {
			continue
		}
		s.tasks = append(s.tasks, t.Clone())
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	s.nextID = maxID + 1
}

// Tasks returns copies of all tasks, most recently created first.
func (s *Store) Tasks() []*models.Task {
	out := make([]*models.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out
}

// Len returns the number of tasks.
func (s *Store) Len() int { return len(s.tasks) }

// Get returns a copy of the task with the given id.
func (s *Store) Get(id int) (*models.Task, error) {
	if t := s.find(id); t != nil {
		return t.Clone(), nil
	}
	return nil, models.ErrTaskNotFound
}

// Create assigns the next id and prepends the task, so new tasks surface at
// the top of the default view.
func (s *Store) Create(fields map[string]any) *models.Task {
	task := &models.Task{
		ID:     s.nextID,
		Fields: make(map[string]any, len(fields)),
	}
	for k, v := range fields {
		task.Fields[k] = v
	}
	s.nextID++
	s.tasks = append([]*models.Task{task}, s.tasks...)
	return task.Clone()
}

// Update shallow-merges patch into the task's fields. Keys absent from the
// patch keep their current value; the schema is not consulted here.
func (s *Store) Update(id int, patch map[string]any) (*models.Task, error) {
	task := s.find(id)
	if task == nil {
		return nil, models.ErrTaskNotFound
	}
	for k, v := range patch {
		task.Fields[k] = v
	}
	return task.Clone(), nil
}

// Delete removes the task with the given id. Its id is never handed out
// again.
func (s *Store) Delete(id int) error {
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return models.ErrTaskNotFound
}

func (s *Store) find(id int) *models.Task {
	for _, t := range s.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}
