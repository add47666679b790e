package service

import (
	"errors"
	"greenify/internal/repository"
)

var (
	ErrEmailTaken        = repository.ErrEmailTaken
	ErrEmailNotFound     = errors.New("email not found")
	ErrWrongPassword     = errors.New("wrong password")
	ErrPasswordTooLong   = errors.New("password longer than 72 bytes")
	ErrInvalidToken      = errors.New("invalid or expired token")
	ErrUserNotFound      = errors.New("user not found")
	ErrNoActiveAttempt   = errors.New("no active quiz attempt")
	ErrIncompleteAttempt = errors.New("quiz attempt has unanswered questions")
	ErrNoActiveSession   = errors.New("no sorting session")
	ErrSessionInProgress = errors.New("sorting session already in progress")
)
