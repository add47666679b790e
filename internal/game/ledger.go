package game

import (
	"errors"
	"fmt"
)

// Category classifies an eco task.
type Category string

const (
	CategoryRecycle Category = "recycle"
	CategoryReuse   Category = "reuse"
	CategoryReduce  Category = "reduce"
	CategoryPlant   Category = "plant"
)

// Valid reports whether c is a known task category.
func (c Category) Valid() bool {
	switch c {
	case CategoryRecycle, CategoryReuse, CategoryReduce, CategoryPlant:
		return true
	}
	return false
}

// Task is one completable eco action.
type Task struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Points      int      `json:"points"`
	Completed   bool     `json:"completed"`
	Category    Category `json:"category"`
}

var ErrDuplicateTask = errors.New("duplicate task id")

// Ledger tracks task completion and reports point deltas for every toggle.
type Ledger struct {
	tasks    []Task
	index    map[int]int
	reporter Reporter
}

// NewLedger creates a ledger over a copy of tasks.
func NewLedger(tasks []Task, reporter Reporter) (*Ledger, error) {
	l := &Ledger{
		tasks:    make([]Task, len(tasks)),
		index:    make(map[int]int, len(tasks)),
		reporter: reporter,
	}
	copy(l.tasks, tasks)
	for i, t := range l.tasks {
		if _, ok := l.index[t.ID]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateTask, t.ID)
		}
		l.index[t.ID] = i
	}
	return l, nil
}

// Toggle flips the completion of taskID. Unknown ids are ignored.
// The delta is reported before the flip so a rejected delta leaves the task as it was.
func (l *Ledger) Toggle(taskID int) (Delta, error) {
	i, ok := l.index[taskID]
	if !ok {
		return Delta{}, nil
	}

	t := &l.tasks[i]
	d := Delta{Points: t.Points, Tasks: 1}
	if t.Completed {
		d = Delta{Points: -t.Points, Tasks: -1}
	}

	if err := l.reporter.Report(d); err != nil {
		return Delta{}, fmt.Errorf("toggle task %d: %w", taskID, err)
	}
	t.Completed = !t.Completed
	return d, nil
}

// CompletionCount returns how many tasks are completed.
func (l *Ledger) CompletionCount() int {
	n := 0
	for _, t := range l.tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

// CompletedPoints sums the points of completed tasks.
func (l *Ledger) CompletedPoints() int {
	sum := 0
	for _, t := range l.tasks {
		if t.Completed {
			sum += t.Points
		}
	}
	return sum
}

// Tasks returns a copy of the ledger in catalog order.
func (l *Ledger) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}
