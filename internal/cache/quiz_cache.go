package cache

import (
	"context"
	"encoding/json"
	"greenify/internal/game"
	"time"

	"github.com/redis/go-redis/v9"
)

// QuizAttemptCache keeps each user's current quiz attempt.
type QuizAttemptCache interface {
	Set(ctx context.Context, userID string, attempt *game.QuizAttempt) error
	Get(ctx context.Context, userID string) (*game.QuizAttempt, error)
	Delete(ctx context.Context, userID string) error
}

type quizAttemptCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewQuizAttemptCache(client *redis.Client, ttl time.Duration) QuizAttemptCache {
	return &quizAttemptCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *quizAttemptCache) key(userID string) string {
	return "quiz:" + userID + ":current"
}

func (c *quizAttemptCache) Set(ctx context.Context, userID string, attempt *game.QuizAttempt) error {
	data, err := json.Marshal(attempt)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(userID), data, c.ttl).Err()
}

func (c *quizAttemptCache) Get(ctx context.Context, userID string) (*game.QuizAttempt, error) {
	data, err := c.client.Get(ctx, c.key(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var attempt game.QuizAttempt
	if err := json.Unmarshal([]byte(data), &attempt); err != nil {
		return nil, err
	}
	if attempt.Answers == nil {
		attempt.Answers = make(map[int]int)
	}
	return &attempt, nil
}

func (c *quizAttemptCache) Delete(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}
