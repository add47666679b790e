package game

import (
	"errors"
	"fmt"
	"math"
)

// Unbounded marks the open upper end of the top level.
const Unbounded = math.MaxInt

var (
	ErrNoLevels      = errors.New("no levels configured")
	ErrInvalidLevels = errors.New("invalid level table")
)

// Level is a named tier covering [MinPoints, MaxPoints).
type Level struct {
	Key       string
	MinPoints int
	MaxPoints int
	Color     string
}

// Contains reports whether total falls inside the level.
func (l Level) Contains(total int) bool {
	return total >= l.MinPoints && total < l.MaxPoints
}

// Top reports whether the level has no upper bound.
func (l Level) Top() bool {
	return l.MaxPoints == Unbounded
}

// ValidateLevels checks that levels start at zero, are contiguous and end unbounded.
func ValidateLevels(levels []Level) error {
	if len(levels) == 0 {
		return ErrNoLevels
	}
	if levels[0].MinPoints != 0 {
		return fmt.Errorf("%w: first level starts at %d", ErrInvalidLevels, levels[0].MinPoints)
	}
	for i, l := range levels {
		if l.MinPoints >= l.MaxPoints {
			return fmt.Errorf("%w: level %q is empty", ErrInvalidLevels, l.Key)
		}
		if i+1 < len(levels) && levels[i+1].MinPoints != l.MaxPoints {
			return fmt.Errorf("%w: %q ends at %d but %q starts at %d",
				ErrInvalidLevels, l.Key, l.MaxPoints, levels[i+1].Key, levels[i+1].MinPoints)
		}
	}
	if !levels[len(levels)-1].Top() {
		return fmt.Errorf("%w: top level is bounded", ErrInvalidLevels)
	}
	return nil
}

// Classifier maps point totals to levels.
type Classifier struct {
	levels []Level
}

// NewClassifier creates a classifier over levels in ascending order
func NewClassifier(levels []Level) (*Classifier, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	c := &Classifier{levels: make([]Level, len(levels))}
	copy(c.levels, levels)
	return c, nil
}

// Levels returns the configured table.
func (c *Classifier) Levels() []Level {
	out := make([]Level, len(c.levels))
	copy(out, c.levels)
	return out
}

// Classify returns the first level containing total, or the lowest level if none does.
func (c *Classifier) Classify(total int) (Level, error) {
	if total < 0 {
		return Level{}, fmt.Errorf("classify %d: %w", total, ErrNegativeTotal)
	}
	for _, l := range c.levels {
		if l.Contains(total) {
			return l, nil
		}
	}
	return c.levels[0], nil
}

// Next returns the first level starting above total.
func (c *Classifier) Next(total int) (Level, bool) {
	for _, l := range c.levels {
		if l.MinPoints > total {
			return l, true
		}
	}
	return Level{}, false
}

// ProgressToNext returns the percentage of the way from the current level to the next, in [0,100].
// The top level always reports 100.
func (c *Classifier) ProgressToNext(total int) float64 {
	next, ok := c.Next(total)
	if !ok {
		return 100
	}
	cur, err := c.Classify(total)
	if err != nil {
		return 0
	}
	span := next.MinPoints - cur.MinPoints
	if span <= 0 {
		return 0
	}
	pct := float64(total-cur.MinPoints) / float64(span) * 100
	return math.Max(0, math.Min(100, pct))
}

// PointsToNext returns how many points remain until the next level, or 0 at the top.
func (c *Classifier) PointsToNext(total int) int {
	next, ok := c.Next(total)
	if !ok {
		return 0
	}
	return next.MinPoints - total
}
