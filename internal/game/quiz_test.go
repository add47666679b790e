package game

import (
	"errors"
	"testing"
)

func fiveQuestions() []Question {
	return []Question{
		{ID: 1, Difficulty: Easy, CorrectOption: 2},
		{ID: 2, Difficulty: Easy, CorrectOption: 1},
		{ID: 3, Difficulty: Easy, CorrectOption: 1},
		{ID: 4, Difficulty: Easy, CorrectOption: 1},
		{ID: 5, Difficulty: Easy, CorrectOption: 1},
	}
}

func answerCorrectly(t *testing.T, a *QuizAttempt, correct int) {
	t.Helper()
	for i, q := range a.Questions {
		opt := q.CorrectOption
		if i >= correct {
			opt = (q.CorrectOption + 1) % OptionCount
		}
		if err := a.RecordAnswer(q.ID, opt); err != nil {
			t.Fatalf("answer %d: %v", q.ID, err)
		}
	}
}

func TestQuizFourOfFiveGrantsOnce(t *testing.T) {
	a := NewQuizAttempt("a1", Easy, fiveQuestions())
	answerCorrectly(t, a, 4)

	res := a.Submit()
	if res.Score != 4 || res.Total != 5 || res.Percentage != 80 {
		t.Fatalf("result = %+v, want 4/5 80%%", res)
	}

	acc, _ := NewAccumulator(0, 0)
	granted, err := a.GrantReward(acc, QuizReward(Easy))
	if err != nil || !granted {
		t.Fatalf("grant = %v, %v; want true", granted, err)
	}

	// Revisiting the result must not pay again.
	a.Submit()
	granted, err = a.GrantReward(acc, QuizReward(Easy))
	if err != nil || granted {
		t.Fatalf("second grant = %v, %v; want false", granted, err)
	}
	if acc.Total() != 30 {
		t.Fatalf("total = %d, want 30", acc.Total())
	}
}

func TestQuizThreeOfFiveNoReward(t *testing.T) {
	a := NewQuizAttempt("a1", Easy, fiveQuestions())
	answerCorrectly(t, a, 3)

	if res := a.Submit(); res.Percentage != 60 || res.Passed() {
		t.Fatalf("result = %+v, want 60%% failed", res)
	}
	acc, _ := NewAccumulator(0, 0)
	if granted, err := a.GrantReward(acc, 30); err != nil || granted {
		t.Fatalf("grant = %v, %v; want false", granted, err)
	}
	if acc.Total() != 0 {
		t.Fatalf("total = %d, want 0", acc.Total())
	}
}

func TestSubmittedAttemptIsImmutable(t *testing.T) {
	a := NewQuizAttempt("a1", Easy, fiveQuestions())
	answerCorrectly(t, a, 5)
	a.Submit()

	if err := a.RecordAnswer(1, 0); !errors.Is(err, ErrAttemptSubmitted) {
		t.Fatalf("err = %v, want ErrAttemptSubmitted", err)
	}
	if a.Answers[1] != 2 {
		t.Fatalf("answer changed after submit: %d", a.Answers[1])
	}
	if res := a.Submit(); res.Percentage != 100 {
		t.Fatalf("resubmit changed result: %+v", res)
	}
}

func TestRecordAnswerValidation(t *testing.T) {
	a := NewQuizAttempt("a1", Easy, fiveQuestions())
	if err := a.RecordAnswer(99, 0); !errors.Is(err, ErrUnknownQuestion) {
		t.Errorf("unknown question: %v", err)
	}
	if err := a.RecordAnswer(1, 4); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("option 4: %v", err)
	}
	if err := a.RecordAnswer(1, -1); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("option -1: %v", err)
	}
	if a.Complete() {
		t.Error("attempt complete with no answers")
	}
	if err := a.RecordAnswer(1, 3); err != nil {
		t.Fatalf("valid answer: %v", err)
	}
	if err := a.RecordAnswer(1, 2); err != nil {
		t.Fatalf("changing answer: %v", err)
	}
	if a.Answers[1] != 2 {
		t.Errorf("answer = %d, want latest choice 2", a.Answers[1])
	}
}

func TestGrantBeforeSubmit(t *testing.T) {
	a := NewQuizAttempt("a1", Easy, fiveQuestions())
	acc, _ := NewAccumulator(0, 0)
	if _, err := a.GrantReward(acc, 30); !errors.Is(err, ErrNotSubmitted) {
		t.Fatalf("err = %v, want ErrNotSubmitted", err)
	}
}

func TestPercentageRounds(t *testing.T) {
	qs := []Question{{ID: 1}, {ID: 2}, {ID: 3}}
	a := NewQuizAttempt("a1", Easy, qs)
	for _, q := range qs[:2] {
		if err := a.RecordAnswer(q.ID, 0); err != nil {
			t.Fatalf("answer: %v", err)
		}
	}
	if err := a.RecordAnswer(3, 1); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if res := a.Submit(); res.Percentage != 67 {
		t.Fatalf("percentage = %d, want 67", res.Percentage)
	}
}

func TestQuizRewards(t *testing.T) {
	want := map[Difficulty]int{Easy: 30, Medium: 60, Hard: 100}
	for d, pts := range want {
		if got := QuizReward(d); got != pts {
			t.Errorf("QuizReward(%s) = %d, want %d", d, got, pts)
		}
	}
}
