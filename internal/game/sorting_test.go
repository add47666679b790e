package game

import (
	"errors"
	"math/rand"
	"testing"
)

func wastePool() []WasteItem {
	var items []WasteItem
	cats := []WasteCategory{WastePlastic, WastePaper, WasteGlass, WasteOrganic}
	for i, c := range cats {
		for j := 1; j <= 5; j++ {
			items = append(items, WasteItem{ID: i*5 + j, Category: c})
		}
	}
	return items
}

func startedSession(t *testing.T, d Difficulty) *SortingSession {
	t.Helper()
	s, err := NewSortingSession("s1", d, wastePool(), rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	return s
}

func TestSortingRules(t *testing.T) {
	tests := []struct {
		d    Difficulty
		want SortingRules
	}{
		{Easy, SortingRules{Items: 6, TimeLimit: 60, Reward: 50}},
		{Medium, SortingRules{Items: 10, TimeLimit: 45, Reward: 75}},
		{Hard, SortingRules{Items: 15, TimeLimit: 30, Reward: 100}},
	}
	for _, tt := range tests {
		s, err := NewSortingSession("s", tt.d, wastePool(), rand.New(rand.NewSource(1)))
		if err != nil {
			t.Fatalf("%s: %v", tt.d, err)
		}
		if s.Rules != tt.want || len(s.Queue) != tt.want.Items || s.TimeRemaining != tt.want.TimeLimit {
			t.Errorf("%s: rules=%+v queue=%d time=%d", tt.d, s.Rules, len(s.Queue), s.TimeRemaining)
		}
		if s.State != NotStarted {
			t.Errorf("%s: state = %s, want not_started", tt.d, s.State)
		}
	}
}

func TestSortingAllCorrectEasy(t *testing.T) {
	s := startedSession(t, Easy)

	for i := 0; i < 6; i++ {
		item, ok := s.CurrentItem()
		if !ok {
			t.Fatalf("no current item at %d", i)
		}
		p, err := s.Place(item.Category)
		if err != nil {
			t.Fatalf("place %d: %v", i, err)
		}
		if !p.Correct {
			t.Fatalf("placement %d scored wrong", i)
		}
		if p.Ended != (i == 5) {
			t.Fatalf("placement %d ended = %v", i, p.Ended)
		}
	}

	if s.State != Over || s.Correct != 6 || s.Wrong != 0 || s.Score != 60 {
		t.Fatalf("session = state %s correct %d wrong %d score %d", s.State, s.Correct, s.Wrong, s.Score)
	}

	acc, _ := NewAccumulator(0, 0)
	granted, err := s.GrantReward(acc)
	if err != nil || !granted {
		t.Fatalf("grant = %v, %v", granted, err)
	}
	if granted, _ := s.GrantReward(acc); granted {
		t.Fatal("reward granted twice")
	}
	if acc.Total() != 50 {
		t.Fatalf("total = %d, want 50", acc.Total())
	}
}

func wrongBin(c WasteCategory) WasteCategory {
	if c == WastePlastic {
		return WastePaper
	}
	return WastePlastic
}

func TestSortingScoreFloorsAtZero(t *testing.T) {
	s := startedSession(t, Easy)

	item, _ := s.CurrentItem()
	p, err := s.Place(wrongBin(item.Category))
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if p.Correct || p.Score != 0 || s.Wrong != 1 {
		t.Fatalf("after wrong: %+v wrong=%d", p, s.Wrong)
	}

	item, _ = s.CurrentItem()
	if _, err := s.Place(item.Category); err != nil {
		t.Fatalf("place: %v", err)
	}
	item, _ = s.CurrentItem()
	if p, _ := s.Place(wrongBin(item.Category)); p.Score != 5 {
		t.Fatalf("score = %d, want 5", p.Score)
	}
}

func TestSortingTimerEndsSession(t *testing.T) {
	s := startedSession(t, Hard)

	for i := 0; i < 29; i++ {
		if s.Tick() {
			t.Fatalf("ended early at tick %d", i)
		}
	}
	if !s.Tick() {
		t.Fatal("30th tick should end the session")
	}
	if s.State != Over || s.TimeRemaining != 0 {
		t.Fatalf("state = %s time = %d", s.State, s.TimeRemaining)
	}
	if s.Tick() {
		t.Fatal("tick after over reported an end")
	}
	if _, err := s.Place(WastePlastic); !errors.Is(err, ErrSessionNotActive) {
		t.Fatalf("place after over: %v", err)
	}

	acc, _ := NewAccumulator(0, 0)
	if granted, _ := s.GrantReward(acc); granted {
		t.Fatal("no placements must not earn a reward")
	}
}

func TestSortingResetStopsTicks(t *testing.T) {
	s := startedSession(t, Easy)
	s.Tick()
	s.Reset()

	if s.State != NotStarted || len(s.Queue) != 0 {
		t.Fatalf("after reset: state %s queue %d", s.State, len(s.Queue))
	}
	if s.Tick() {
		t.Fatal("tick after reset ended something")
	}
	if s.TimeRemaining != 0 {
		t.Fatalf("tick after reset changed time to %d", s.TimeRemaining)
	}
	if err := s.Start(); !errors.Is(err, ErrSessionStarted) {
		t.Fatalf("start empty reset session: %v", err)
	}
}

func TestSortingAccuracyGate(t *testing.T) {
	s := startedSession(t, Medium)
	// 7 correct, 3 wrong: exactly 70%.
	for i := 0; i < 10; i++ {
		item, _ := s.CurrentItem()
		bin := item.Category
		if i < 3 {
			bin = wrongBin(bin)
		}
		if _, err := s.Place(bin); err != nil {
			t.Fatalf("place %d: %v", i, err)
		}
	}
	if s.Accuracy() != 70 {
		t.Fatalf("accuracy = %v, want 70", s.Accuracy())
	}
	acc, _ := NewAccumulator(0, 0)
	if granted, err := s.GrantReward(acc); err != nil || !granted {
		t.Fatalf("grant = %v, %v", granted, err)
	}
	if acc.Total() != 75 {
		t.Fatalf("total = %d, want 75", acc.Total())
	}
}

func TestSortingRejectsUnknownBin(t *testing.T) {
	s := startedSession(t, Easy)
	if _, err := s.Place("metal"); !errors.Is(err, ErrUnknownBin) {
		t.Fatalf("err = %v, want ErrUnknownBin", err)
	}
	if s.Current != 0 {
		t.Fatal("unknown bin advanced the queue")
	}
}

func TestNewSortingSessionNeedsEnoughItems(t *testing.T) {
	_, err := NewSortingSession("s", Hard, wastePool()[:10], rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrNotEnoughItems) {
		t.Fatalf("err = %v, want ErrNotEnoughItems", err)
	}
	if _, err := NewSortingSession("s", "extreme", wastePool(), rand.New(rand.NewSource(1))); !errors.Is(err, ErrUnknownDifficulty) {
		t.Fatalf("err = %v, want ErrUnknownDifficulty", err)
	}
}
