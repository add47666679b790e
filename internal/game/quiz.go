package game

import (
	"errors"
	"math"
)

// OptionCount is the number of choices every question offers.
const OptionCount = 4

var (
	ErrAttemptSubmitted = errors.New("attempt already submitted")
	ErrUnknownQuestion  = errors.New("question is not part of this attempt")
	ErrInvalidOption    = errors.New("option index out of range")
	ErrNotSubmitted     = errors.New("attempt not submitted")
)

// Question is the scoring view of a quiz question.
type Question struct {
	ID            int        `json:"id"`
	Difficulty    Difficulty `json:"difficulty"`
	CorrectOption int        `json:"correctOption"`
}

// QuizResult summarises a submitted attempt.
type QuizResult struct {
	Score      int `json:"score"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// Passed reports whether the result clears the reward threshold.
func (r QuizResult) Passed() bool {
	return r.Percentage >= RewardThreshold
}

// QuizAttempt is one run through a difficulty's questions.
type QuizAttempt struct {
	ID            string      `json:"id"`
	Difficulty    Difficulty  `json:"difficulty"`
	Questions     []Question  `json:"questions"`
	Answers       map[int]int `json:"answers"`
	Submitted     bool        `json:"submitted"`
	Result        QuizResult  `json:"result"`
	RewardGranted bool        `json:"rewardGranted"`
}

// NewQuizAttempt starts an attempt over questions.
func NewQuizAttempt(id string, d Difficulty, questions []Question) *QuizAttempt {
	qs := make([]Question, len(questions))
	copy(qs, questions)
	return &QuizAttempt{
		ID:         id,
		Difficulty: d,
		Questions:  qs,
		Answers:    make(map[int]int, len(qs)),
	}
}

func (a *QuizAttempt) question(id int) (Question, bool) {
	for _, q := range a.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// RecordAnswer stores the chosen option. A submitted attempt never changes.
func (a *QuizAttempt) RecordAnswer(questionID, option int) error {
	if a.Submitted {
		return ErrAttemptSubmitted
	}
	if _, ok := a.question(questionID); !ok {
		return ErrUnknownQuestion
	}
	if option < 0 || option >= OptionCount {
		return ErrInvalidOption
	}
	if a.Answers == nil {
		a.Answers = make(map[int]int, len(a.Questions))
	}
	a.Answers[questionID] = option
	return nil
}

// Complete reports whether every question has an answer.
func (a *QuizAttempt) Complete() bool {
	for _, q := range a.Questions {
		if _, ok := a.Answers[q.ID]; !ok {
			return false
		}
	}
	return true
}

// Submit scores the attempt and freezes it. Submitting again returns the stored result.
func (a *QuizAttempt) Submit() QuizResult {
	if a.Submitted {
		return a.Result
	}

	score := 0
	for _, q := range a.Questions {
		if choice, ok := a.Answers[q.ID]; ok && choice == q.CorrectOption {
			score++
		}
	}
	res := QuizResult{Score: score, Total: len(a.Questions)}
	if res.Total > 0 {
		res.Percentage = int(math.Round(float64(score) / float64(res.Total) * 100))
	}

	a.Result = res
	a.Submitted = true
	return res
}

// GrantReward reports points once for a passed attempt.
func (a *QuizAttempt) GrantReward(r Reporter, points int) (bool, error) {
	if !a.Submitted {
		return false, ErrNotSubmitted
	}
	if a.RewardGranted || !a.Result.Passed() {
		return false, nil
	}
	if points <= 0 {
		return false, ErrNegativeReward
	}
	if err := r.Report(Delta{Points: points}); err != nil {
		return false, err
	}
	a.RewardGranted = true
	return true, nil
}
