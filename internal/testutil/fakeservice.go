// Package testutil provides testing utilities.
package testutil

import (
	"fmt"
	"slices"

	"taskman/internal/service"
)

// Call records one invocation on FakeService.
type Call struct {
	Method string
	Args   []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Method, c.Args)
}

// FakeService is a scripted implementation of service.Service for testing.
// It records every call and answers from the tasks it was seeded with.
// Tasks are kept in seed order; no sorting is applied.
type FakeService struct {
	tasks  []service.Task
	nextID int
	Calls  []Call

	// EditFound and DeleteFound override the outcome when non-nil.
	EditFound   *bool
	DeleteFound *bool
}

// NewFakeService creates a FakeService with no tasks.
func NewFakeService() *FakeService {
	return &FakeService{nextID: 1}
}

// Seed adds a task as-is, bypassing call recording.
// The id counter moves past the seeded id.
func (f *FakeService) Seed(task service.Task) {
	f.tasks = append(f.tasks, task)
	if task.ID >= f.nextID {
		f.nextID = task.ID + 1
	}
}

// Mutations returns the recorded calls other than List.
func (f *FakeService) Mutations() []Call {
	var out []Call
	for _, c := range f.Calls {
		if c.Method != "List" {
			out = append(out, c)
		}
	}
	return out
}

// List implements service.Service.
func (f *FakeService) List() []service.Task {
	f.Calls = append(f.Calls, Call{Method: "List"})
	return slices.Clone(f.tasks)
}

// Add implements service.Service.
func (f *FakeService) Add(title, description string, p service.Priority) service.Task {
	f.Calls = append(f.Calls, Call{Method: "Add", Args: []any{title, description, p}})
	task := service.Task{ID: f.nextID, Title: title, Description: description, Priority: p}
	f.nextID++
	f.tasks = append(f.tasks, task)
	return task
}

// Edit implements service.Service.
func (f *FakeService) Edit(id int, title, description string) bool {
	f.Calls = append(f.Calls, Call{Method: "Edit", Args: []any{id, title, description}})
	if f.EditFound != nil {
		return *f.EditFound
	}
	for i := range f.tasks {
		if f.tasks[i].ID != id {
			continue
		}
		if title != "" {
			f.tasks[i].Title = title
		}
		if description != "" {
			f.tasks[i].Description = description
		}
		return true
	}
	return false
}

// Delete implements service.Service.
func (f *FakeService) Delete(id int) bool {
	f.Calls = append(f.Calls, Call{Method: "Delete", Args: []any{id}})
	if f.DeleteFound != nil {
		return *f.DeleteFound
	}
	before := len(f.tasks)
	f.tasks = slices.DeleteFunc(f.tasks, func(t service.Task) bool { return t.ID == id })
	return len(f.tasks) != before
}

var _ service.Service = (*FakeService)(nil)
