package cache

import (
	"context"
	"errors"
	"greenify/internal/game"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestStateStoreMissing(t *testing.T) {
	_, client := newTestRedis(t)
	snap, err := NewStateStore(client).Load(context.Background(), "u1")
	if err != nil || snap != nil {
		t.Fatalf("load missing = %+v, %v; want nil, nil", snap, err)
	}
}

func TestStateStoreRoundTrip(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewStateStore(client)
	ctx := context.Background()

	in := game.Snapshot{
		Tasks: []game.Task{
			{ID: 1, Title: "a", Points: 10, Completed: true, Category: game.CategoryRecycle},
			{ID: 2, Title: "b", Points: 15, Category: game.CategoryReuse},
		},
		Total: 40,
	}
	if err := store.Save(ctx, "u1", in); err != nil {
		t.Fatalf("save: %v", err)
	}

	if got, _ := mr.Get("user:u1:ecoTaskPoints"); got != "40" {
		t.Fatalf("points key = %q, want 40", got)
	}

	out, err := store.Load(ctx, "u1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.Total != 40 || len(out.Tasks) != 2 || !out.Tasks[0].Completed || out.Tasks[1].Completed {
		t.Fatalf("load = %+v", out)
	}
}

func TestStateStoreCorrupt(t *testing.T) {
	cases := []struct {
		name   string
		tasks  string
		points string
	}{
		{"bad json", "{not json", "0"},
		{"bad points", "[]", "ten"},
		{"fractional points", "[]", "1.5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mr, client := newTestRedis(t)
			mr.Set("user:u1:ecoTasks", tc.tasks)
			mr.Set("user:u1:ecoTaskPoints", tc.points)

			_, err := NewStateStore(client).Load(context.Background(), "u1")
			if !errors.Is(err, game.ErrCorruptState) {
				t.Fatalf("err = %v, want ErrCorruptState", err)
			}
		})
	}
}

func TestStateStorePointsOnly(t *testing.T) {
	mr, client := newTestRedis(t)
	mr.Set("user:u1:ecoTaskPoints", "30")

	snap, err := NewStateStore(client).Load(context.Background(), "u1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snap == nil || snap.Total != 30 || len(snap.Tasks) != 0 {
		t.Fatalf("load = %+v", snap)
	}
}

func TestQuizAttemptCache(t *testing.T) {
	mr, client := newTestRedis(t)
	c := NewQuizAttemptCache(client, time.Hour)
	ctx := context.Background()

	if got, err := c.Get(ctx, "u1"); err != nil || got != nil {
		t.Fatalf("get missing = %+v, %v", got, err)
	}

	attempt := game.NewQuizAttempt("a1", game.Easy, []game.Question{{ID: 1, Difficulty: game.Easy, CorrectOption: 2}})
	if err := attempt.RecordAnswer(1, 2); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := c.Set(ctx, "u1", attempt); err != nil {
		t.Fatalf("set: %v", err)
	}
	if ttl := mr.TTL("quiz:u1:current"); ttl != time.Hour {
		t.Fatalf("ttl = %v, want 1h", ttl)
	}

	got, err := c.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "a1" || got.Answers[1] != 2 || len(got.Questions) != 1 {
		t.Fatalf("get = %+v", got)
	}

	if err := c.Delete(ctx, "u1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got, _ := c.Get(ctx, "u1"); got != nil {
		t.Fatal("attempt still cached after delete")
	}
}

func TestLeaderboardCache(t *testing.T) {
	_, client := newTestRedis(t)
	lb := NewLeaderboardCache(client)
	ctx := context.Background()

	if rank, err := lb.GetRank(ctx, "nobody"); err != nil || rank != -1 {
		t.Fatalf("rank missing = %d, %v", rank, err)
	}

	for id, pts := range map[string]int{"a": 10, "b": 55, "c": 30} {
		if err := lb.UpdateScore(ctx, id, pts); err != nil {
			t.Fatalf("update %s: %v", id, err)
		}
	}
	if err := lb.UpdateScore(ctx, "a", 60); err != nil {
		t.Fatalf("update a: %v", err)
	}

	top, err := lb.GetTop(ctx, 2)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 2 || top[0].UserID != "a" || top[0].Points != 60 || top[0].Rank != 1 || top[1].UserID != "b" {
		t.Fatalf("top = %+v", top)
	}

	rank, err := lb.GetRank(ctx, "c")
	if err != nil || rank != 3 {
		t.Fatalf("rank c = %d, %v; want 3", rank, err)
	}

	if top, _ := lb.GetTop(ctx, 0); len(top) != 0 {
		t.Fatalf("top(0) = %+v", top)
	}
}
