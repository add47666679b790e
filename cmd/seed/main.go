package main

import (
	"context"
	"errors"
	"greenify/internal/app"
	"greenify/internal/config"
	"greenify/internal/logging"
	"greenify/internal/model"
	"greenify/internal/service"
	"os"
	"time"
)

type seedConfig struct {
	Storage    config.StorageConfig
	BcryptCost int    `env:"BCRYPT_COST" envDefault:"10" validate:"min=4,max=31"`
	Name       string `env:"DEMO_NAME" envDefault:"Greenify Demo" validate:"required"`
	Email      string `env:"DEMO_EMAIL" envDefault:"demo@greenify.az" validate:"required,email"`
	Password   string `env:"DEMO_PASSWORD" envDefault:"greenify123" validate:"required,min=6"`
}

func main() {
	logger := logging.NewLogger("greenify-seed")

	var cfg seedConfig
	if err := config.ParseEnv(&cfg); err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}
	if err := config.Validate(&cfg); err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users, err := app.OpenUsers(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error("open user store", "error", err)
		os.Exit(1)
	}
	defer users.Close(ctx)

	// Only Register is used, so no signing secret is needed.
	authSvc := service.NewAuthService(users, "", time.Hour, cfg.BcryptCost)
	user, err := authSvc.Register(ctx, model.RegisterRequest{Name: cfg.Name, Email: cfg.Email, Password: cfg.Password})
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		logger.Info("demo user already exists", "email", cfg.Email)
	case err != nil:
		logger.Error("create demo user", "error", err)
		os.Exit(1)
	default:
		logger.Info("created demo user", "userId", user.ID, "email", user.Email)
	}
}
