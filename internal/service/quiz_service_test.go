package service

import (
	"context"
	"errors"
	"greenify/internal/cache"
	"greenify/internal/catalog"
	"greenify/internal/game"
	"greenify/internal/logging"
	"testing"
	"time"
)

func newTestQuiz(t *testing.T) (*QuizService, *testEnv) {
	t.Helper()
	env := newTestEnv(t)
	attempts := cache.NewQuizAttemptCache(env.client, time.Hour)
	return NewQuizService(attempts, env.progress, catalog.GameQuestions, logging.Discard()), env
}

// answerAll answers the first `correct` questions right and the rest wrong.
func answerAll(t *testing.T, svc *QuizService, userID string, attempt *game.QuizAttempt, correct int) {
	t.Helper()
	for i, q := range attempt.Questions {
		opt := q.CorrectOption
		if i >= correct {
			opt = (q.CorrectOption + 1) % game.OptionCount
		}
		if _, err := svc.Answer(context.Background(), userID, q.ID, opt); err != nil {
			t.Fatalf("answer %d: %v", q.ID, err)
		}
	}
}

func TestQuizPassGrantsRewardOnce(t *testing.T) {
	svc, env := newTestQuiz(t)
	ctx := context.Background()

	attempt, err := svc.Start(ctx, "u1", game.Easy)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if len(attempt.Questions) != 5 {
		t.Fatalf("questions = %d", len(attempt.Questions))
	}
	answerAll(t, svc, "u1", attempt, 4)

	done, err := svc.Submit(ctx, "u1")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if done.Result.Percentage != 80 || !done.RewardGranted {
		t.Fatalf("result = %+v granted=%v", done.Result, done.RewardGranted)
	}

	again, err := svc.Submit(ctx, "u1")
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if again.Result != done.Result {
		t.Fatalf("resubmit result = %+v", again.Result)
	}

	p, _ := env.progress.Load(ctx, "u1")
	if p.Total() != game.QuizReward(game.Easy) {
		t.Fatalf("total = %d, want %d", p.Total(), game.QuizReward(game.Easy))
	}
	if n := len(env.events.ofType(EventPointsUpdated)); n != 1 {
		t.Fatalf("points events = %d, want 1", n)
	}
}

func TestQuizFailNoReward(t *testing.T) {
	svc, env := newTestQuiz(t)
	ctx := context.Background()

	attempt, _ := svc.Start(ctx, "u1", game.Medium)
	answerAll(t, svc, "u1", attempt, 3)

	done, err := svc.Submit(ctx, "u1")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if done.Result.Percentage != 60 || done.RewardGranted {
		t.Fatalf("result = %+v granted=%v", done.Result, done.RewardGranted)
	}
	p, _ := env.progress.Load(ctx, "u1")
	if p.Total() != 0 {
		t.Fatalf("total = %d, want 0", p.Total())
	}
}

func TestQuizIncompleteSubmit(t *testing.T) {
	svc, _ := newTestQuiz(t)
	ctx := context.Background()

	attempt, _ := svc.Start(ctx, "u1", game.Hard)
	q := attempt.Questions[0]
	if _, err := svc.Answer(ctx, "u1", q.ID, q.CorrectOption); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if _, err := svc.Submit(ctx, "u1"); !errors.Is(err, ErrIncompleteAttempt) {
		t.Fatalf("err = %v, want ErrIncompleteAttempt", err)
	}
	cur, _ := svc.Current(ctx, "u1")
	if cur.Submitted {
		t.Fatal("incomplete attempt was submitted")
	}
}

func TestQuizAnswerAfterSubmit(t *testing.T) {
	svc, _ := newTestQuiz(t)
	ctx := context.Background()

	attempt, _ := svc.Start(ctx, "u1", game.Easy)
	answerAll(t, svc, "u1", attempt, 5)
	if _, err := svc.Submit(ctx, "u1"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	q := attempt.Questions[0]
	if _, err := svc.Answer(ctx, "u1", q.ID, 0); !errors.Is(err, game.ErrAttemptSubmitted) {
		t.Fatalf("err = %v, want ErrAttemptSubmitted", err)
	}
}

func TestQuizAnswerValidation(t *testing.T) {
	svc, _ := newTestQuiz(t)
	ctx := context.Background()

	if _, err := svc.Answer(ctx, "u1", 1, 0); !errors.Is(err, ErrNoActiveAttempt) {
		t.Fatalf("no attempt err = %v", err)
	}
	_, _ = svc.Start(ctx, "u1", game.Easy)
	if _, err := svc.Answer(ctx, "u1", 11, 0); !errors.Is(err, game.ErrUnknownQuestion) {
		t.Fatalf("foreign question err = %v", err)
	}
	if _, err := svc.Answer(ctx, "u1", 1, 4); !errors.Is(err, game.ErrInvalidOption) {
		t.Fatalf("bad option err = %v", err)
	}
}

func TestQuizRetryStartsFresh(t *testing.T) {
	svc, _ := newTestQuiz(t)
	ctx := context.Background()

	first, _ := svc.Start(ctx, "u1", game.Easy)
	answerAll(t, svc, "u1", first, 5)
	if _, err := svc.Submit(ctx, "u1"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := svc.Discard(ctx, "u1"); err != nil {
		t.Fatalf("discard: %v", err)
	}
	if _, err := svc.Current(ctx, "u1"); !errors.Is(err, ErrNoActiveAttempt) {
		t.Fatalf("current after discard err = %v", err)
	}

	second, err := svc.Start(ctx, "u1", game.Easy)
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if second.ID == first.ID || second.Submitted || len(second.Answers) != 0 || second.RewardGranted {
		t.Fatalf("restart = %+v", second)
	}
}

func TestQuizRewardRolledBackWhenPointsNotSaved(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	saveErr := errors.New("disk full")
	failing := true
	store := &fakeStateStore{saveFn: func(context.Context, string, game.Snapshot) error {
		if failing {
			return saveErr
		}
		return nil
	}}
	levels, _ := game.NewClassifier(catalog.GameLevels())
	progress := NewProgressService(store, env.leaderboard, levels, catalog.SeedTasks(), logging.Discard())
	svc := NewQuizService(cache.NewQuizAttemptCache(env.client, time.Hour), progress, catalog.GameQuestions, logging.Discard())

	attempt, err := svc.Start(ctx, "u1", game.Hard)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	answerAll(t, svc, "u1", attempt, 5)

	if _, err := svc.Submit(ctx, "u1"); !errors.Is(err, saveErr) {
		t.Fatalf("submit err = %v, want %v", err, saveErr)
	}
	stored, err := svc.Current(ctx, "u1")
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if stored.RewardGranted {
		t.Fatal("attempt marked rewarded although points were not saved")
	}

	failing = false
	done, err := svc.Submit(ctx, "u1")
	if err != nil {
		t.Fatalf("retry submit: %v", err)
	}
	if !done.RewardGranted {
		t.Fatal("reward not granted on retry")
	}
}
