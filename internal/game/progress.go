package game

import (
	"errors"
	"fmt"
)

var ErrCorruptState = errors.New("corrupt progress state")

// Snapshot is the persisted form of a user's progress.
type Snapshot struct {
	Tasks []Task
	Total int
}

// Progress is a user's task ledger wired to its points accumulator.
type Progress struct {
	ledger *Ledger
	points *Accumulator
}

// NewProgress starts a user from the seed catalog with a zero total.
func NewProgress(seed []Task) (*Progress, error) {
	tasks := make([]Task, len(seed))
	for i, t := range seed {
		t.Completed = false
		tasks[i] = t
	}
	return build(tasks, 0)
}

// RestoreProgress rebuilds progress from a snapshot, checked against the seed catalog.
// Completion flags come from the snapshot and everything else from the seed.
func RestoreProgress(seed []Task, snap Snapshot) (*Progress, error) {
	if snap.Total < 0 {
		return nil, fmt.Errorf("%w: total %d", ErrCorruptState, snap.Total)
	}

	bySeed := make(map[int]Task, len(seed))
	for _, t := range seed {
		bySeed[t.ID] = t
	}

	completed := make(map[int]bool, len(snap.Tasks))
	for _, t := range snap.Tasks {
		s, ok := bySeed[t.ID]
		if !ok {
			return nil, fmt.Errorf("%w: unknown task %d", ErrCorruptState, t.ID)
		}
		if s.Points != t.Points {
			return nil, fmt.Errorf("%w: task %d worth %d, want %d", ErrCorruptState, t.ID, t.Points, s.Points)
		}
		if _, dup := completed[t.ID]; dup {
			return nil, fmt.Errorf("%w: task %d repeated", ErrCorruptState, t.ID)
		}
		completed[t.ID] = t.Completed
	}

	tasks := make([]Task, len(seed))
	for i, t := range seed {
		t.Completed = completed[t.ID]
		tasks[i] = t
	}

	p, err := build(tasks, snap.Total)
	if err != nil {
		return nil, err
	}
	// Un-toggling would otherwise drive the total below zero.
	if snap.Total < p.ledger.CompletedPoints() {
		return nil, fmt.Errorf("%w: total %d below completed task points %d", ErrCorruptState, snap.Total, p.ledger.CompletedPoints())
	}
	return p, nil
}

func build(tasks []Task, total int) (*Progress, error) {
	done := 0
	for _, t := range tasks {
		if t.Completed {
			done++
		}
	}
	acc, err := NewAccumulator(total, done)
	if err != nil {
		return nil, err
	}
	ledger, err := NewLedger(tasks, acc)
	if err != nil {
		return nil, err
	}
	return &Progress{ledger: ledger, points: acc}, nil
}

// Toggle flips a task and returns the delta it reported.
func (p *Progress) Toggle(taskID int) (Delta, error) {
	return p.ledger.Toggle(taskID)
}

// Report lets game scorers add rewards to the same accumulator the ledger uses.
func (p *Progress) Report(d Delta) error {
	return p.points.Report(d)
}

func (p *Progress) Total() int {
	return p.points.Total()
}

func (p *Progress) TasksCompleted() int {
	return p.points.TasksCompleted()
}

func (p *Progress) Tasks() []Task {
	return p.ledger.Tasks()
}

// Snapshot returns the state to persist.
func (p *Progress) Snapshot() Snapshot {
	return Snapshot{Tasks: p.ledger.Tasks(), Total: p.points.Total()}
}
