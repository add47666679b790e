package game

import (
	"errors"
	"fmt"
)

// Difficulty selects the question pool, sorting pace and reward.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// RewardThreshold is the minimum percentage that earns a game reward.
const RewardThreshold = 70

var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulties lists the supported difficulties from easiest.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// ParseDifficulty validates a difficulty name.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(s); d {
	case Easy, Medium, Hard:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// QuizReward returns the points a passed quiz attempt awards.
func QuizReward(d Difficulty) int {
	switch d {
	case Easy:
		return 30
	case Medium:
		return 60
	case Hard:
		return 100
	}
	return 0
}

// SortingRules configures one sorting game difficulty.
type SortingRules struct {
	Items     int `json:"items"`
	TimeLimit int `json:"timeLimit"`
	Reward    int `json:"reward"`
}

// SortingRulesFor returns the sorting rules for d.
func SortingRulesFor(d Difficulty) (SortingRules, error) {
	switch d {
	case Easy:
		return SortingRules{Items: 6, TimeLimit: 60, Reward: 50}, nil
	case Medium:
		return SortingRules{Items: 10, TimeLimit: 45, Reward: 75}, nil
	case Hard:
		return SortingRules{Items: 15, TimeLimit: 30, Reward: 100}, nil
	}
	return SortingRules{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, d)
}
