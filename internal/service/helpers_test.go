package service

import (
	"context"
	"errors"
	"greenify/internal/cache"
	"greenify/internal/catalog"
	"greenify/internal/game"
	"greenify/internal/logging"
	"greenify/internal/model"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type fakeUserRepo struct {
	createFn     func(context.Context, *model.User) error
	getByIDFn    func(context.Context, string) (*model.User, error)
	getByEmailFn func(context.Context, string) (*model.User, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, user)
	}
	return errors.New("createFn not provided")
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if f.getByEmailFn != nil {
		return f.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (f *fakeUserRepo) Close(context.Context) error { return nil }

type sentEvent struct {
	userID  string
	msgType string
	payload interface{}
}

type recordingBroadcaster struct {
	mu     sync.Mutex
	events []sentEvent
}

func (b *recordingBroadcaster) SendToUser(userID, msgType string, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, sentEvent{userID: userID, msgType: msgType, payload: payload})
}

func (b *recordingBroadcaster) ofType(msgType string) []sentEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []sentEvent
	for _, e := range b.events {
		if e.msgType == msgType {
			out = append(out, e)
		}
	}
	return out
}

type testEnv struct {
	redis       *miniredis.Miniredis
	client      *redis.Client
	store       cache.StateStore
	leaderboard cache.LeaderboardCache
	progress    *ProgressService
	events      *recordingBroadcaster
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	levels, err := game.NewClassifier(catalog.GameLevels())
	if err != nil {
		t.Fatalf("classifier: %v", err)
	}
	env := &testEnv{
		redis:       mr,
		client:      client,
		store:       cache.NewStateStore(client),
		leaderboard: cache.NewLeaderboardCache(client),
		events:      &recordingBroadcaster{},
	}
	env.progress = NewProgressService(env.store, env.leaderboard, levels, catalog.SeedTasks(), logging.Discard())
	env.progress.SetBroadcaster(env.events)
	return env
}

type fakeStateStore struct {
	loadFn func(context.Context, string) (*game.Snapshot, error)
	saveFn func(context.Context, string, game.Snapshot) error
}

func (f *fakeStateStore) Load(ctx context.Context, userID string) (*game.Snapshot, error) {
	if f.loadFn != nil {
		return f.loadFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeStateStore) Save(ctx context.Context, userID string, snap game.Snapshot) error {
	if f.saveFn != nil {
		return f.saveFn(ctx, userID, snap)
	}
	return nil
}
