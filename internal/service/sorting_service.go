package service

import (
	"context"
	"greenify/internal/game"
	"greenify/internal/model"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SortingService keeps one timed sorting session per user in memory.
type SortingService struct {
	progress    *ProgressService
	pool        []game.WasteItem
	tick        time.Duration
	logger      *slog.Logger
	broadcaster Broadcaster

	mu       sync.Mutex
	rng      *rand.Rand
	sessions map[string]*sortingRun
}

const (
	rewardAttempts   = 3
	rewardRetryDelay = 100 * time.Millisecond
)

type sortingRun struct {
	session *game.SortingSession
	cancel  context.CancelFunc
}

// NewSortingService creates a new sorting service. rng shuffles each session's queue.
func NewSortingService(progress *ProgressService, pool []game.WasteItem, tick time.Duration, rng *rand.Rand, logger *slog.Logger) *SortingService {
	return &SortingService{
		progress:    progress,
		pool:        pool,
		tick:        tick,
		logger:      logger,
		broadcaster: noopBroadcaster{},
		rng:         rng,
		sessions:    make(map[string]*sortingRun),
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *SortingService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Start deals a new session and starts its countdown.
// A finished session is replaced; one still running is not.
func (s *SortingService) Start(userID string, d game.Difficulty) (game.SortingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.sessions[userID]; ok {
		if old.session.State == game.InProgress {
			return game.SortingSession{}, ErrSessionInProgress
		}
		old.cancel()
	}

	session, err := game.NewSortingSession(uuid.New().String(), d, s.pool, s.rng)
	if err != nil {
		return game.SortingSession{}, err
	}
	if err := session.Start(); err != nil {
		return game.SortingSession{}, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	run := &sortingRun{session: session, cancel: cancel}
	s.sessions[userID] = run
	go s.countdown(ctx, userID, run)

	s.logger.Info("sorting started", "userId", userID, "sessionId", session.ID, "difficulty", d)
	return copySession(session), nil
}

// Current returns a copy of the user's session.
func (s *SortingService) Current(userID string) (game.SortingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, ok := s.sessions[userID]
	if !ok {
		return game.SortingSession{}, ErrNoActiveSession
	}
	return copySession(run.session), nil
}

// Place drops the current item into bin. The placement that empties the queue ends the session.
func (s *SortingService) Place(ctx context.Context, userID string, bin game.WasteCategory) (game.Placement, game.SortingSession, error) {
	s.mu.Lock()
	run, ok := s.sessions[userID]
	if !ok {
		s.mu.Unlock()
		return game.Placement{}, game.SortingSession{}, ErrNoActiveSession
	}
	placement, err := run.session.Place(bin)
	if err != nil {
		s.mu.Unlock()
		return game.Placement{}, game.SortingSession{}, err
	}
	after := copySession(run.session)
	if placement.Ended {
		run.cancel()
	}
	s.mu.Unlock()

	if placement.Ended {
		after = s.finish(context.WithoutCancel(ctx), userID, run)
	}
	return placement, after, nil
}

// Reset stops the countdown and clears the user's session.
func (s *SortingService) Reset(userID string) (game.SortingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, ok := s.sessions[userID]
	if !ok {
		return game.SortingSession{}, ErrNoActiveSession
	}
	run.cancel()
	delete(s.sessions, userID)

	// The run itself is left alone so a pending reward for it still lands.
	out := copySession(run.session)
	out.Reset()
	return out, nil
}

// Close stops every countdown.
func (s *SortingService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, run := range s.sessions {
		run.cancel()
	}
}

func (s *SortingService) countdown(ctx context.Context, userID string, run *sortingRun) {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		s.mu.Lock()
		if ctx.Err() != nil || s.sessions[userID] != run {
			s.mu.Unlock()
			return
		}
		ended := run.session.Tick()
		id, remaining := run.session.ID, run.session.TimeRemaining
		if ended {
			run.cancel()
		}
		s.mu.Unlock()

		s.broadcaster.SendToUser(userID, EventSortingTick, model.SortingTickEvent{SessionID: id, TimeRemaining: remaining})
		if ended {
			s.finish(context.Background(), userID, run)
			return
		}
	}
}

// finish grants the reward for an ended run and announces the result.
// It works on run directly, so a session started or reset in the meantime
// does not cost this one its reward.
func (s *SortingService) finish(ctx context.Context, userID string, run *sortingRun) game.SortingSession {
	var err error
	for attempt := 1; attempt <= rewardAttempts; attempt++ {
		var granted bool
		_, _, err = s.progress.Mutate(ctx, userID, func(p *game.Progress) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			var err error
			granted, err = run.session.GrantReward(p)
			return err
		})
		if err == nil {
			break
		}
		if granted {
			// The points were never saved.
			s.mu.Lock()
			run.session.RewardGranted = false
			s.mu.Unlock()
		}
		s.logger.Warn("sorting reward failed", "userId", userID, "sessionId", run.session.ID, "attempt", attempt, "error", err)
		if attempt < rewardAttempts {
			time.Sleep(time.Duration(attempt) * rewardRetryDelay)
		}
	}
	if err != nil {
		s.logger.Error("sorting reward dropped", "userId", userID, "sessionId", run.session.ID, "error", err)
	}

	s.mu.Lock()
	out := copySession(run.session)
	s.mu.Unlock()

	s.broadcaster.SendToUser(userID, EventSortingOver, model.SortingOverEvent{
		SessionID:     out.ID,
		Score:         out.Score,
		Correct:       out.Correct,
		Wrong:         out.Wrong,
		Accuracy:      out.Accuracy(),
		RewardGranted: out.RewardGranted,
	})
	s.logger.Info("sorting over", "userId", userID, "sessionId", out.ID,
		"score", out.Score, "accuracy", out.Accuracy(), "rewardGranted", out.RewardGranted)
	return out
}

func copySession(s *game.SortingSession) game.SortingSession {
	out := *s
	out.Queue = make([]game.WasteItem, len(s.Queue))
	copy(out.Queue, s.Queue)
	return out
}
