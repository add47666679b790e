package game

import (
	"errors"
	"fmt"
	"math/rand"
)

// WasteCategory is the bin a waste item belongs in.
type WasteCategory string

const (
	WastePlastic WasteCategory = "plastic"
	WastePaper   WasteCategory = "paper"
	WasteGlass   WasteCategory = "glass"
	WasteOrganic WasteCategory = "organic"
)

// Valid reports whether c names a bin.
func (c WasteCategory) Valid() bool {
	switch c {
	case WastePlastic, WastePaper, WasteGlass, WasteOrganic:
		return true
	}
	return false
}

const (
	CorrectPoints = 10
	WrongPenalty  = 5
)

// SessionState is the sorting session lifecycle.
type SessionState string

const (
	NotStarted SessionState = "not_started"
	InProgress SessionState = "in_progress"
	Over       SessionState = "over"
)

var (
	ErrSessionNotActive = errors.New("sorting session is not in progress")
	ErrSessionStarted   = errors.New("sorting session already started")
	ErrNotEnoughItems   = errors.New("not enough waste items for difficulty")
	ErrUnknownBin       = errors.New("unknown bin")
)

// WasteItem is the scoring view of a sortable item.
type WasteItem struct {
	ID       int           `json:"id"`
	Category WasteCategory `json:"category"`
}

// Placement is the outcome of dropping the current item into a bin.
type Placement struct {
	Item    WasteItem `json:"item"`
	Correct bool      `json:"correct"`
	Score   int       `json:"score"`
	Ended   bool      `json:"ended"`
}

// SortingSession is one timed run of the waste sorting game.
type SortingSession struct {
	ID            string       `json:"id"`
	Difficulty    Difficulty   `json:"difficulty"`
	Rules         SortingRules `json:"rules"`
	Queue         []WasteItem  `json:"queue"`
	Current       int          `json:"current"`
	Score         int          `json:"score"`
	Correct       int          `json:"correct"`
	Wrong         int          `json:"wrong"`
	TimeRemaining int          `json:"timeRemaining"`
	State         SessionState `json:"state"`
	RewardGranted bool         `json:"rewardGranted"`
}

// NewSortingSession draws a shuffled queue from pool sized for d.
func NewSortingSession(id string, d Difficulty, pool []WasteItem, rng *rand.Rand) (*SortingSession, error) {
	rules, err := SortingRulesFor(d)
	if err != nil {
		return nil, err
	}
	if len(pool) < rules.Items {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrNotEnoughItems, len(pool), rules.Items)
	}

	items := make([]WasteItem, len(pool))
	copy(items, pool)
	rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })

	return &SortingSession{
		ID:            id,
		Difficulty:    d,
		Rules:         rules,
		Queue:         items[:rules.Items],
		TimeRemaining: rules.TimeLimit,
		State:         NotStarted,
	}, nil
}

// Start begins the countdown.
func (s *SortingSession) Start() error {
	if s.State != NotStarted || len(s.Queue) == 0 {
		return ErrSessionStarted
	}
	s.State = InProgress
	return nil
}

// CurrentItem returns the item waiting to be placed.
func (s *SortingSession) CurrentItem() (WasteItem, bool) {
	if s.State != InProgress || s.Current >= len(s.Queue) {
		return WasteItem{}, false
	}
	return s.Queue[s.Current], true
}

// Place scores the current item against bin and advances the queue.
func (s *SortingSession) Place(bin WasteCategory) (Placement, error) {
	if !bin.Valid() {
		return Placement{}, fmt.Errorf("%w: %q", ErrUnknownBin, bin)
	}
	item, ok := s.CurrentItem()
	if !ok {
		return Placement{}, ErrSessionNotActive
	}

	p := Placement{Item: item, Correct: item.Category == bin}
	if p.Correct {
		s.Score += CorrectPoints
		s.Correct++
	} else {
		s.Score = max(0, s.Score-WrongPenalty)
		s.Wrong++
	}

	s.Current++
	if s.Current >= len(s.Queue) {
		s.State = Over
		p.Ended = true
	}
	p.Score = s.Score
	return p, nil
}

// Tick consumes one second and reports whether it ended the session.
func (s *SortingSession) Tick() bool {
	if s.State != InProgress {
		return false
	}
	if s.TimeRemaining > 0 {
		s.TimeRemaining--
	}
	if s.TimeRemaining == 0 {
		s.State = Over
		return true
	}
	return false
}

// Reset returns the session to NotStarted with nothing queued.
func (s *SortingSession) Reset() {
	s.Queue = nil
	s.Current = 0
	s.Score = 0
	s.Correct = 0
	s.Wrong = 0
	s.TimeRemaining = 0
	s.State = NotStarted
	s.RewardGranted = false
}

// Accuracy is the percentage of placements that were correct.
func (s *SortingSession) Accuracy() float64 {
	placed := s.Correct + s.Wrong
	if placed == 0 {
		return 0
	}
	return float64(s.Correct) / float64(placed) * 100
}

// GrantReward reports the difficulty reward once for a finished, accurate session.
func (s *SortingSession) GrantReward(r Reporter) (bool, error) {
	if s.State != Over || s.RewardGranted || s.Accuracy() < RewardThreshold {
		return false, nil
	}
	if s.Rules.Reward <= 0 {
		return false, ErrNegativeReward
	}
	if err := r.Report(Delta{Points: s.Rules.Reward}); err != nil {
		return false, err
	}
	s.RewardGranted = true
	return true, nil
}
