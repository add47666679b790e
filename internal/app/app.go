// Package app connects the stores both binaries share.
package app

import (
	"context"
	"fmt"
	"greenify/internal/cache"
	"greenify/internal/config"
	"greenify/internal/repository"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 5 * time.Second

type App struct {
	Users        repository.UserRepo
	Redis        *redis.Client
	State        cache.StateStore
	Leaderboard  cache.LeaderboardCache
	QuizAttempts cache.QuizAttemptCache
}

// Open connects the configured user store and Redis.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	users, err := OpenUsers(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		_ = users.Close(ctx)
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	logger.Info("connected to redis", "addr", cfg.Redis.Addr)

	return &App{
		Users:        users,
		Redis:        rdb,
		State:        cache.NewStateStore(rdb),
		Leaderboard:  cache.NewLeaderboardCache(rdb),
		QuizAttempts: cache.NewQuizAttemptCache(rdb, cfg.Games.QuizAttemptTTL),
	}, nil
}

// OpenUsers opens the account store selected by USER_STORE.
func OpenUsers(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (repository.UserRepo, error) {
	switch cfg.UserStore {
	case "mongo":
		connCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()
		client, err := mongo.Connect(connCtx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		if err := client.Ping(connCtx, nil); err != nil {
			_ = client.Disconnect(ctx)
			return nil, fmt.Errorf("ping mongo: %w", err)
		}
		users, err := repository.NewMongoUserRepo(connCtx, client, cfg.MongoDB)
		if err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		logger.Info("connected to mongodb", "db", cfg.MongoDB)
		return users, nil
	default:
		users, err := repository.OpenSQLiteUserRepo(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		logger.Info("opened sqlite user store", "path", cfg.SQLitePath)
		return users, nil
	}
}

// Close releases every connection.
func (a *App) Close(ctx context.Context) error {
	redisErr := a.Redis.Close()
	if err := a.Users.Close(ctx); err != nil {
		return err
	}
	return redisErr
}
