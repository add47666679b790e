package service

import (
	"context"
	"fmt"
	"greenify/internal/cache"
	"greenify/internal/model"
	"greenify/internal/repository"
	"log/slog"
)

// Profile is a user's account joined with their progress.
type Profile struct {
	User    *model.User
	Summary ProgressSummary
	// Rank is 1-indexed, 0 when the user has not scored yet.
	Rank int64
}

// ProfileService reads profiles and the global leaderboard
type ProfileService struct {
	users       repository.UserRepo
	progress    *ProgressService
	leaderboard cache.LeaderboardCache
	logger      *slog.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(users repository.UserRepo, progress *ProgressService, leaderboard cache.LeaderboardCache, logger *slog.Logger) *ProfileService {
	return &ProfileService{
		users:       users,
		progress:    progress,
		leaderboard: leaderboard,
		logger:      logger,
	}
}

// Get returns the user's profile.
func (s *ProfileService) Get(ctx context.Context, userID string) (*Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	p, err := s.progress.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary, err := s.progress.Summarize(p.Total(), p.TasksCompleted())
	if err != nil {
		return nil, err
	}

	rank, err := s.leaderboard.GetRank(ctx, userID)
	if err != nil {
		s.logger.Warn("leaderboard rank failed", "userId", userID, "error", err)
		rank = -1
	}
	if rank < 0 {
		rank = 0
	}
	return &Profile{User: user, Summary: summary, Rank: rank}, nil
}

// Leaderboard returns the top users by points with their names.
func (s *ProfileService) Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	top, err := s.leaderboard.GetTop(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("get leaderboard: %w", err)
	}

	entries := make([]model.LeaderboardEntry, 0, len(top))
	for _, e := range top {
		entry := model.LeaderboardEntry{UserID: e.UserID, Points: e.Points, Rank: e.Rank}
		user, err := s.users.GetByID(ctx, e.UserID)
		if err != nil {
			return nil, fmt.Errorf("get user %s: %w", e.UserID, err)
		}
		if user != nil {
			entry.Name = user.Name
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
