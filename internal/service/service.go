// Package service defines the backend-agnostic interface for task operations.
package service

// Service defines the interface for task store operations.
// The console talks to tasks only through this interface.
// Not-found outcomes are reported as booleans, never as errors.
type Service interface {
	// List returns all tasks ordered by priority rank.
	// Tasks of equal priority keep their insertion order.
	// The returned slice is a copy.
	List() []Task

	// Add stores a new task under the next free id and returns it.
	Add(title, description string, p Priority) Task

	// Edit replaces the title and/or description of the task with the given id.
	// Empty values leave the corresponding field unchanged.
	// Returns false if no task has that id.
	Edit(id int, title, description string) bool

	// Delete removes the task with the given id.
	// Returns false if nothing was removed.
	Delete(id int) bool
}
