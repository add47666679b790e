package service

import (
	"context"
	"errors"
	"fmt"
	"greenify/internal/cache"
	"greenify/internal/game"
	"greenify/internal/model"
	"log/slog"
)

// ProgressSummary is a user's total placed on the level table.
type ProgressSummary struct {
	Total          int
	TasksCompleted int
	Level          game.Level
	Next           *game.Level
	ProgressToNext float64
	PointsToNext   int
}

// ProgressService owns every read and write of a user's ledger and points.
type ProgressService struct {
	store       cache.StateStore
	leaderboard cache.LeaderboardCache
	levels      *game.Classifier
	seed        []game.Task
	locks       *userLocks
	logger      *slog.Logger
	broadcaster Broadcaster
}

// NewProgressService creates a new progress service
func NewProgressService(
	store cache.StateStore,
	leaderboard cache.LeaderboardCache,
	levels *game.Classifier,
	seed []game.Task,
	logger *slog.Logger,
) *ProgressService {
	return &ProgressService{
		store:       store,
		leaderboard: leaderboard,
		levels:      levels,
		seed:        seed,
		locks:       newUserLocks(),
		logger:      logger,
		broadcaster: noopBroadcaster{},
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *ProgressService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Load returns the user's current progress.
func (s *ProgressService) Load(ctx context.Context, userID string) (*game.Progress, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()
	return s.load(ctx, userID)
}

// Mutate runs fn against the user's progress under the user's lock and persists the result.
// Nothing is saved when fn fails. Toggles, quiz rewards and sorting rewards all go through here.
func (s *ProgressService) Mutate(ctx context.Context, userID string, fn func(p *game.Progress) error) (*game.Progress, game.Delta, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	p, err := s.load(ctx, userID)
	if err != nil {
		return nil, game.Delta{}, err
	}
	beforeTotal, beforeTasks := p.Total(), p.TasksCompleted()

	if err := fn(p); err != nil {
		return nil, game.Delta{}, err
	}

	delta := game.Delta{Points: p.Total() - beforeTotal, Tasks: p.TasksCompleted() - beforeTasks}
	if delta.IsZero() {
		return p, delta, nil
	}

	if err := s.store.Save(ctx, userID, p.Snapshot()); err != nil {
		return nil, game.Delta{}, fmt.Errorf("save progress: %w", err)
	}
	if err := s.leaderboard.UpdateScore(ctx, userID, p.Total()); err != nil {
		s.logger.Warn("leaderboard update failed", "userId", userID, "error", err)
	}

	s.broadcaster.SendToUser(userID, EventPointsUpdated, model.PointsUpdatedEvent{
		Total:          p.Total(),
		TasksCompleted: p.TasksCompleted(),
		Delta:          delta.Points,
	})
	s.logger.Info("progress updated", "userId", userID, "total", p.Total(), "delta", delta.Points)
	return p, delta, nil
}

// ToggleTask flips one catalog task. Unknown ids leave the ledger unchanged.
func (s *ProgressService) ToggleTask(ctx context.Context, userID string, taskID int) (*game.Progress, game.Delta, error) {
	var d game.Delta
	p, _, err := s.Mutate(ctx, userID, func(p *game.Progress) error {
		var err error
		d, err = p.Toggle(taskID)
		return err
	})
	if err != nil {
		return nil, game.Delta{}, err
	}
	return p, d, nil
}

// Summarize places a total on the level table.
func (s *ProgressService) Summarize(total, tasksCompleted int) (ProgressSummary, error) {
	level, err := s.levels.Classify(total)
	if err != nil {
		return ProgressSummary{}, err
	}
	sum := ProgressSummary{
		Total:          total,
		TasksCompleted: tasksCompleted,
		Level:          level,
		ProgressToNext: s.levels.ProgressToNext(total),
		PointsToNext:   s.levels.PointsToNext(total),
	}
	if next, ok := s.levels.Next(total); ok {
		sum.Next = &next
	}
	return sum, nil
}

// Levels returns the level table.
func (s *ProgressService) Levels() []game.Level {
	return s.levels.Levels()
}

// load restores saved state, falling back to the seed when nothing usable is stored.
func (s *ProgressService) load(ctx context.Context, userID string) (*game.Progress, error) {
	snap, err := s.store.Load(ctx, userID)
	if err != nil && !errors.Is(err, game.ErrCorruptState) {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	if err != nil {
		s.logger.Warn("discarding corrupt progress", "userId", userID, "error", err)
		return game.NewProgress(s.seed)
	}
	if snap == nil {
		return game.NewProgress(s.seed)
	}

	p, err := game.RestoreProgress(s.seed, *snap)
	if err != nil {
		s.logger.Warn("discarding corrupt progress", "userId", userID, "error", err)
		return game.NewProgress(s.seed)
	}
	return p, nil
}
