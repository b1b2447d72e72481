// Package service defines the backend-agnostic interface for task operations.
package service

// Priority classifies a task. The numeric value is the sort rank:
// lower values are listed first.
type Priority int

const (
	High   Priority = 1
	Medium Priority = 2
	Low    Priority = 3
)

var priorityLabels = map[Priority]string{
	High:   "[HIGH]",
	Medium: "[MEDIUM]",
	Low:    "[LOW]",
}

var priorityNames = map[Priority]string{
	High:   "high",
	Medium: "medium",
	Low:    "low",
}

// PriorityFromSelector maps a menu selector to a priority.
// 1 is High, 2 is Medium, 3 is Low; every other value falls back to Low.
func PriorityFromSelector(n int) Priority {
	switch p := Priority(n); p {
	case High, Medium, Low:
		return p
	default:
		return Low
	}
}

// Rank returns the ordering key of the priority.
// Values outside the enumeration rank with Low.
func (p Priority) Rank() int {
	if _, ok := priorityLabels[p]; !ok {
		return int(Low)
	}
	return int(p)
}

// Label returns the display prefix, e.g. "[HIGH]".
func (p Priority) Label() string {
	if l, ok := priorityLabels[p]; ok {
		return l
	}
	return priorityLabels[Low]
}

func (p Priority) String() string {
	if n, ok := priorityNames[p]; ok {
		return n
	}
	return "unknown"
}

// Task represents a single task item.
type Task struct {
	ID          int
	Title       string
	Description string
	Priority    Priority
}
