package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"greenify/internal/game"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// StateStore persists each user's task ledger and points total.
type StateStore interface {
	// Load returns nil, nil when the user has no saved state.
	Load(ctx context.Context, userID string) (*game.Snapshot, error)
	Save(ctx context.Context, userID string, snap game.Snapshot) error
}

type stateStore struct {
	client *redis.Client
}

// NewStateStore creates a new state store
func NewStateStore(client *redis.Client) StateStore {
	return &stateStore{
		client: client,
	}
}

// Key helpers
func (s *stateStore) tasksKey(userID string) string {
	return fmt.Sprintf("user:%s:ecoTasks", userID)
}

func (s *stateStore) pointsKey(userID string) string {
	return fmt.Sprintf("user:%s:ecoTaskPoints", userID)
}

func (s *stateStore) Load(ctx context.Context, userID string) (*game.Snapshot, error) {
	vals, err := s.client.MGet(ctx, s.tasksKey(userID), s.pointsKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	rawTasks, rawPoints := vals[0], vals[1]
	if rawTasks == nil && rawPoints == nil {
		return nil, nil
	}

	var snap game.Snapshot
	if str, ok := rawTasks.(string); ok {
		if err := json.Unmarshal([]byte(str), &snap.Tasks); err != nil {
			return nil, fmt.Errorf("%w: decode tasks: %v", game.ErrCorruptState, err)
		}
	}
	if str, ok := rawPoints.(string); ok {
		total, err := strconv.Atoi(str)
		if err != nil {
			return nil, fmt.Errorf("%w: points %q", game.ErrCorruptState, str)
		}
		snap.Total = total
	}
	return &snap, nil
}

func (s *stateStore) Save(ctx context.Context, userID string, snap game.Snapshot) error {
	data, err := json.Marshal(snap.Tasks)
	if err != nil {
		return err
	}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.tasksKey(userID), data, 0)
		pipe.Set(ctx, s.pointsKey(userID), strconv.Itoa(snap.Total), 0)
		return nil
	})
	return err
}
