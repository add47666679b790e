package service

import (
	"context"
	"fmt"
	"greenify/internal/cache"
	"greenify/internal/game"
	"log/slog"

	"github.com/google/uuid"
)

// QuestionSource returns the scoring view of a difficulty's questions.
type QuestionSource func(d game.Difficulty) []game.Question

// QuizService runs one quiz attempt per user
type QuizService struct {
	attempts  cache.QuizAttemptCache
	progress  *ProgressService
	questions QuestionSource
	locks     *userLocks
	logger    *slog.Logger
}

// NewQuizService creates a new quiz service
func NewQuizService(attempts cache.QuizAttemptCache, progress *ProgressService, questions QuestionSource, logger *slog.Logger) *QuizService {
	return &QuizService{
		attempts:  attempts,
		progress:  progress,
		questions: questions,
		locks:     newUserLocks(),
		logger:    logger,
	}
}

// Start begins a fresh attempt, replacing any current one.
func (s *QuizService) Start(ctx context.Context, userID string, d game.Difficulty) (*game.QuizAttempt, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	attempt := game.NewQuizAttempt(uuid.New().String(), d, s.questions(d))
	if err := s.attempts.Set(ctx, userID, attempt); err != nil {
		return nil, fmt.Errorf("save attempt: %w", err)
	}
	s.logger.Info("quiz started", "userId", userID, "attemptId", attempt.ID, "difficulty", d)
	return attempt, nil
}

// Current returns the user's attempt or ErrNoActiveAttempt.
func (s *QuizService) Current(ctx context.Context, userID string) (*game.QuizAttempt, error) {
	return s.current(ctx, userID)
}

// Answer records one choice on the current attempt.
func (s *QuizService) Answer(ctx context.Context, userID string, questionID, option int) (*game.QuizAttempt, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	attempt, err := s.current(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := attempt.RecordAnswer(questionID, option); err != nil {
		return nil, err
	}
	if err := s.attempts.Set(ctx, userID, attempt); err != nil {
		return nil, fmt.Errorf("save attempt: %w", err)
	}
	return attempt, nil
}

// Submit scores the current attempt and grants the difficulty reward when it passes.
// Every question must be answered first.
func (s *QuizService) Submit(ctx context.Context, userID string) (*game.QuizAttempt, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	attempt, err := s.current(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !attempt.Submitted && !attempt.Complete() {
		return nil, ErrIncompleteAttempt
	}

	attempt.Submit()
	if !attempt.Result.Passed() || attempt.RewardGranted {
		if err := s.attempts.Set(ctx, userID, attempt); err != nil {
			return nil, fmt.Errorf("save attempt: %w", err)
		}
		return attempt, nil
	}

	// The attempt is stored as rewarded before the points are saved.
	var granted bool
	_, _, err = s.progress.Mutate(ctx, userID, func(p *game.Progress) error {
		var err error
		granted, err = attempt.GrantReward(p, game.QuizReward(attempt.Difficulty))
		if err != nil || !granted {
			return err
		}
		return s.attempts.Set(ctx, userID, attempt)
	})
	if err != nil {
		if granted {
			attempt.RewardGranted = false
			if rerr := s.attempts.Set(ctx, userID, attempt); rerr != nil {
				s.logger.Error("restore quiz attempt", "userId", userID, "attemptId", attempt.ID, "error", rerr)
			}
		}
		return nil, fmt.Errorf("grant quiz reward: %w", err)
	}
	s.logger.Info("quiz reward granted", "userId", userID, "attemptId", attempt.ID, "percentage", attempt.Result.Percentage)
	return attempt, nil
}

// Discard drops the current attempt so the user can retry.
func (s *QuizService) Discard(ctx context.Context, userID string) error {
	unlock := s.locks.Lock(userID)
	defer unlock()
	return s.attempts.Delete(ctx, userID)
}

func (s *QuizService) current(ctx context.Context, userID string) (*game.QuizAttempt, error) {
	attempt, err := s.attempts.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load attempt: %w", err)
	}
	if attempt == nil {
		return nil, ErrNoActiveAttempt
	}
	return attempt, nil
}
