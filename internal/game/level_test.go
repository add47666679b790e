package game

import (
	"errors"
	"testing"
)

func ecoLevels() []Level {
	return []Level{
		{Key: "bronze", MinPoints: 0, MaxPoints: 50},
		{Key: "silver", MinPoints: 50, MaxPoints: 150},
		{Key: "gold", MinPoints: 150, MaxPoints: Unbounded},
	}
}

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := NewClassifier(ecoLevels())
	if err != nil {
		t.Fatalf("new classifier: %v", err)
	}
	return c
}

func TestClassify(t *testing.T) {
	c := newTestClassifier(t)
	tests := []struct {
		total int
		want  string
	}{
		{0, "bronze"},
		{25, "bronze"},
		{49, "bronze"},
		{50, "silver"},
		{149, "silver"},
		{150, "gold"},
		{100000, "gold"},
	}
	for _, tt := range tests {
		got, err := c.Classify(tt.total)
		if err != nil {
			t.Fatalf("classify %d: %v", tt.total, err)
		}
		if got.Key != tt.want {
			t.Errorf("classify %d = %s, want %s", tt.total, got.Key, tt.want)
		}
	}
}

func TestClassifyExactlyOneLevel(t *testing.T) {
	levels := ecoLevels()
	for total := 0; total <= 400; total++ {
		matches := 0
		for _, l := range levels {
			if l.Contains(total) {
				matches++
			}
		}
		if matches != 1 {
			t.Fatalf("total %d matched %d levels", total, matches)
		}
	}
}

func TestClassifyNegative(t *testing.T) {
	c := newTestClassifier(t)
	if _, err := c.Classify(-1); !errors.Is(err, ErrNegativeTotal) {
		t.Fatalf("err = %v, want ErrNegativeTotal", err)
	}
}

func TestClassifyMisconfiguredPrefersFirstMatch(t *testing.T) {
	c, err := NewClassifier([]Level{
		{Key: "a", MinPoints: 0, MaxPoints: 60},
		{Key: "b", MinPoints: 40, MaxPoints: 100},
		{Key: "c", MinPoints: 120, MaxPoints: Unbounded},
	})
	if err != nil {
		t.Fatalf("new classifier: %v", err)
	}
	if got, _ := c.Classify(50); got.Key != "a" {
		t.Errorf("overlap: got %s, want a", got.Key)
	}
	if got, _ := c.Classify(110); got.Key != "a" {
		t.Errorf("gap: got %s, want fallback a", got.Key)
	}
}

func TestProgressToNext(t *testing.T) {
	c := newTestClassifier(t)
	tests := []struct {
		total int
		want  float64
	}{
		{0, 0},
		{25, 50},
		{50, 0},
		{100, 50},
		{149, 99},
		{150, 100},
		{900, 100},
	}
	for _, tt := range tests {
		if got := c.ProgressToNext(tt.total); got != tt.want {
			t.Errorf("progress(%d) = %v, want %v", tt.total, got, tt.want)
		}
	}
}

func TestProgressMonotoneWithinTier(t *testing.T) {
	c := newTestClassifier(t)
	prev := -1.0
	prevLevel := ""
	for total := 0; total < 200; total++ {
		lvl, _ := c.Classify(total)
		got := c.ProgressToNext(total)
		if got < 0 || got > 100 {
			t.Fatalf("progress(%d) = %v out of range", total, got)
		}
		if lvl.Key != prevLevel {
			if !lvl.Top() && got != 0 {
				t.Fatalf("progress at start of %s = %v, want 0", lvl.Key, got)
			}
		} else if got < prev {
			t.Fatalf("progress fell from %v to %v at %d", prev, got, total)
		}
		prev, prevLevel = got, lvl.Key
	}
	if c.ProgressToNext(1) <= 0 {
		t.Fatal("progress should be positive once points are earned")
	}
}

func TestPointsToNext(t *testing.T) {
	c := newTestClassifier(t)
	if got := c.PointsToNext(0); got != 50 {
		t.Errorf("PointsToNext(0) = %d, want 50", got)
	}
	if got := c.PointsToNext(120); got != 30 {
		t.Errorf("PointsToNext(120) = %d, want 30", got)
	}
	if got := c.PointsToNext(150); got != 0 {
		t.Errorf("PointsToNext(150) = %d, want 0", got)
	}
}

func TestValidateLevels(t *testing.T) {
	if err := ValidateLevels(ecoLevels()); err != nil {
		t.Fatalf("eco levels invalid: %v", err)
	}

	tests := []struct {
		name   string
		levels []Level
	}{
		{name: "empty", levels: nil},
		{name: "nonzero start", levels: []Level{{Key: "a", MinPoints: 1, MaxPoints: Unbounded}}},
		{name: "gap", levels: []Level{{Key: "a", MaxPoints: 10}, {Key: "b", MinPoints: 11, MaxPoints: Unbounded}}},
		{name: "overlap", levels: []Level{{Key: "a", MaxPoints: 10}, {Key: "b", MinPoints: 9, MaxPoints: Unbounded}}},
		{name: "bounded top", levels: []Level{{Key: "a", MaxPoints: 10}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateLevels(tt.levels); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
