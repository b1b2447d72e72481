package commands

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"sync"
)

// ExitKey is the menu key of the exit command. It is always listed last.
const ExitKey = 0

// Registry holds registered commands.
type Registry struct {
	mu    sync.RWMutex
	cmds  map[int]Command
	names map[string]int
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{
		cmds:  make(map[int]Command),
		names: make(map[string]int),
	}
}

// Register adds a command to the registry.
// Returns an error if the key or name is already registered.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, exists := r.cmds[c.Key()]; exists {
		return fmt.Errorf("menu key %d already registered by %s", c.Key(), existing.Name())
	}
	if _, exists := r.names[c.Name()]; exists {
		return fmt.Errorf("command already registered: %s", c.Name())
	}

	r.cmds[c.Key()] = c
	r.names[c.Name()] = c.Key()
	return nil
}

// Find looks up a command by menu key.
func (r *Registry) Find(key int) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.cmds[key]
	return cmd, ok
}

// All returns all commands in menu order: ascending keys, exit last.
func (r *Registry) All() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Command, 0, len(r.cmds))
	for _, cmd := range r.cmds {
		result = append(result, cmd)
	}
	slices.SortFunc(result, func(a, b Command) int {
		return cmp.Compare(menuOrder(a.Key()), menuOrder(b.Key()))
	})
	return result
}

func menuOrder(key int) int {
	if key == ExitKey {
		return math.MaxInt
	}
	return key
}

// DefaultRegistry is the global command registry.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
