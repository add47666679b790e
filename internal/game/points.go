package game

import "errors"

var (
	ErrNegativeTotal  = errors.New("points total cannot go negative")
	ErrNegativeCount  = errors.New("completed task count cannot go negative")
	ErrNegativeReward = errors.New("reward must be positive")
)

// Delta is a signed change reported to the points accumulator.
type Delta struct {
	Points int `json:"points"`
	Tasks  int `json:"tasks"`
}

// IsZero reports whether the delta changes nothing.
func (d Delta) IsZero() bool {
	return d.Points == 0 && d.Tasks == 0
}

// Reporter receives point deltas from the task ledger and the game scorers.
type Reporter interface {
	Report(d Delta) error
}

// Accumulator owns a user's points total and completed task count.
type Accumulator struct {
	total          int
	tasksCompleted int
}

// NewAccumulator creates an accumulator restored to the given values
func NewAccumulator(total, tasksCompleted int) (*Accumulator, error) {
	if total < 0 {
		return nil, ErrNegativeTotal
	}
	if tasksCompleted < 0 {
		return nil, ErrNegativeCount
	}
	return &Accumulator{total: total, tasksCompleted: tasksCompleted}, nil
}

// Report applies d, leaving the accumulator untouched if either counter would go negative.
func (a *Accumulator) Report(d Delta) error {
	if a.total+d.Points < 0 {
		return ErrNegativeTotal
	}
	if a.tasksCompleted+d.Tasks < 0 {
		return ErrNegativeCount
	}
	a.total += d.Points
	a.tasksCompleted += d.Tasks
	return nil
}

func (a *Accumulator) Total() int {
	return a.total
}

func (a *Accumulator) TasksCompleted() int {
	return a.tasksCompleted
}
