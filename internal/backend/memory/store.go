// Package memory implements the service.Service interface with an in-process task list.
package memory

import (
	"cmp"
	"slices"

	"github.com/rs/zerolog"

	"taskman/internal/service"
)

// Store implements service.Service in memory.
// It is not safe for concurrent use; the console drives it from a single goroutine.
type Store struct {
	tasks  []service.Task
	nextID int
	log    zerolog.Logger
}

// New creates an empty store. The first task added gets id 1.
func New(log zerolog.Logger) *Store {
	return &Store{
		nextID: 1,
		log:    log.With().Str("component", "store").Logger(),
	}
}

// List returns a copy of all tasks in priority order.
func (s *Store) List() []service.Task {
	return slices.Clone(s.tasks)
}

// Add assigns the next id, appends the task and re-sorts the whole list.
// A priority outside the enumeration is stored as Low.
func (s *Store) Add(title, description string, p service.Priority) service.Task {
	p = service.PriorityFromSelector(int(p))
	task := service.Task{
		ID:          s.nextID,
		Title:       title,
		Description: description,
		Priority:    p,
	}
	s.nextID++

	s.tasks = append(s.tasks, task)
	// Full stable re-sort: equal ranks keep insertion order.
	slices.SortStableFunc(s.tasks, byRank)

	s.log.Debug().
		Int("id", task.ID).
		Stringer("priority", task.Priority).
		Int("count", len(s.tasks)).
		Msg("task added")
	return task
}

// Edit updates the non-empty fields of the task with the given id.
// Priority never changes, so the order is left as is.
func (s *Store) Edit(id int, title, description string) bool {
	i := slices.IndexFunc(s.tasks, func(t service.Task) bool { return t.ID == id })
	if i < 0 {
		s.log.Debug().Int("id", id).Msg("edit: task not found")
		return false
	}

	if title != "" {
		s.tasks[i].Title = title
	}
	if description != "" {
		s.tasks[i].Description = description
	}

	s.log.Debug().
		Int("id", id).
		Bool("title_changed", title != "").
		Bool("description_changed", description != "").
		Msg("task edited")
	return true
}

// Delete removes every task with the given id.
func (s *Store) Delete(id int) bool {
	before := len(s.tasks)
	s.tasks = slices.DeleteFunc(s.tasks, func(t service.Task) bool { return t.ID == id })
	removed := before - len(s.tasks)

	if removed == 0 {
		s.log.Debug().Int("id", id).Msg("delete: task not found")
		return false
	}
	s.log.Debug().Int("id", id).Int("count", len(s.tasks)).Msg("task deleted")
	return true
}

func byRank(a, b service.Task) int {
	return cmp.Compare(a.Priority.Rank(), b.Priority.Rank())
}

var _ service.Service = (*Store)(nil)
