package game

import (
	"errors"
	"testing"
)

func testTasks() []Task {
	return []Task{
		{ID: 1, Title: "Reuse", Points: 10, Category: CategoryReuse},
		{ID: 3, Title: "Plant", Points: 25, Category: CategoryPlant},
		{ID: 7, Title: "Identify", Points: 8, Category: CategoryPlant},
	}
}

func newTestLedger(t *testing.T) (*Ledger, *Accumulator) {
	t.Helper()
	acc, err := NewAccumulator(0, 0)
	if err != nil {
		t.Fatalf("new accumulator: %v", err)
	}
	l, err := NewLedger(testTasks(), acc)
	if err != nil {
		t.Fatalf("new ledger: %v", err)
	}
	return l, acc
}

func TestToggleCompletesAndReverts(t *testing.T) {
	l, acc := newTestLedger(t)

	d, err := l.Toggle(3)
	if err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if d != (Delta{Points: 25, Tasks: 1}) {
		t.Fatalf("delta = %+v, want +25/+1", d)
	}
	if acc.Total() != 25 || acc.TasksCompleted() != 1 {
		t.Fatalf("after completing: total=%d tasks=%d", acc.Total(), acc.TasksCompleted())
	}

	d, err = l.Toggle(3)
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if d != (Delta{Points: -25, Tasks: -1}) {
		t.Fatalf("delta = %+v, want -25/-1", d)
	}
	if acc.Total() != 0 || acc.TasksCompleted() != 0 {
		t.Fatalf("after reverting: total=%d tasks=%d", acc.Total(), acc.TasksCompleted())
	}
}

func TestEvenTogglesNetZero(t *testing.T) {
	for _, id := range []int{1, 3, 7} {
		for n := 2; n <= 8; n += 2 {
			l, acc := newTestLedger(t)
			if err := acc.Report(Delta{Points: 40}); err != nil {
				t.Fatalf("seed reward: %v", err)
			}
			for i := 0; i < n; i++ {
				if _, err := l.Toggle(id); err != nil {
					t.Fatalf("toggle %d #%d: %v", id, i, err)
				}
			}
			if acc.Total() != 40 {
				t.Errorf("task %d after %d toggles: total = %d, want 40", id, n, acc.Total())
			}
			if l.CompletionCount() != 0 {
				t.Errorf("task %d after %d toggles: completed = %d", id, n, l.CompletionCount())
			}
		}
	}
}

func TestToggleUnknownIsNoop(t *testing.T) {
	l, acc := newTestLedger(t)

	d, err := l.Toggle(99)
	if err != nil {
		t.Fatalf("toggle unknown: %v", err)
	}
	if !d.IsZero() {
		t.Fatalf("delta = %+v, want zero", d)
	}
	if acc.Total() != 0 || l.CompletionCount() != 0 {
		t.Fatalf("state changed: total=%d completed=%d", acc.Total(), l.CompletionCount())
	}
}

type rejectingReporter struct{}

func (rejectingReporter) Report(Delta) error { return ErrNegativeTotal }

func TestRejectedDeltaLeavesTaskUnchanged(t *testing.T) {
	l, err := NewLedger(testTasks(), rejectingReporter{})
	if err != nil {
		t.Fatalf("new ledger: %v", err)
	}
	if _, err := l.Toggle(1); !errors.Is(err, ErrNegativeTotal) {
		t.Fatalf("toggle err = %v, want ErrNegativeTotal", err)
	}
	if l.CompletionCount() != 0 {
		t.Fatalf("task flipped despite rejected delta")
	}
}

func TestNewLedgerRejectsDuplicateIDs(t *testing.T) {
	tasks := append(testTasks(), Task{ID: 1, Points: 5, Category: CategoryReduce})
	if _, err := NewLedger(tasks, rejectingReporter{}); !errors.Is(err, ErrDuplicateTask) {
		t.Fatalf("err = %v, want ErrDuplicateTask", err)
	}
}

func TestTasksReturnsCopy(t *testing.T) {
	l, _ := newTestLedger(t)
	tasks := l.Tasks()
	tasks[0].Completed = true
	if l.CompletionCount() != 0 {
		t.Fatal("mutating Tasks() result changed the ledger")
	}
}

func TestAccumulatorNeverNegative(t *testing.T) {
	acc, err := NewAccumulator(5, 0)
	if err != nil {
		t.Fatalf("new accumulator: %v", err)
	}
	if err := acc.Report(Delta{Points: -6}); !errors.Is(err, ErrNegativeTotal) {
		t.Fatalf("err = %v, want ErrNegativeTotal", err)
	}
	if err := acc.Report(Delta{Tasks: -1}); !errors.Is(err, ErrNegativeCount) {
		t.Fatalf("err = %v, want ErrNegativeCount", err)
	}
	if acc.Total() != 5 || acc.TasksCompleted() != 0 {
		t.Fatalf("rejected deltas changed state: %d/%d", acc.Total(), acc.TasksCompleted())
	}
	if _, err := NewAccumulator(-1, 0); !errors.Is(err, ErrNegativeTotal) {
		t.Fatalf("restore negative: %v", err)
	}
}
