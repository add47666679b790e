package repository

import (
	"context"
	"errors"
	"greenify/internal/model"
)

var ErrEmailTaken = errors.New("email already exists")

// UserRepo stores registered accounts. Lookups return nil, nil when nothing matches.
type UserRepo interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Close(ctx context.Context) error
}
