package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"greenify/internal/game"
	"greenify/internal/i18n"
	"greenify/internal/logging"
	"greenify/internal/service"
	"greenify/internal/transport/rest/apierror"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

const maxBodyBytes = 1 << 20

var errInvalidBody = errors.New("invalid request body")

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// decodeJSON reads a single JSON object into dst and runs its validate tags.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("%w: trailing data", errInvalidBody)
	}
	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	return nil
}

// writeServiceError maps a service or domain error to the error envelope.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	code, key := classify(err)
	if code == apierror.ServerError {
		logging.FromContext(r.Context(), logger).Error("request failed", "error", err)
	}
	apierror.Write(w, r, code, key)
}

func classify(err error) (apierror.Code, i18n.Key) {
	switch {
	case errors.Is(err, errInvalidBody), errors.Is(err, service.ErrPasswordTooLong):
		return apierror.InvalidBody, i18n.MsgInvalidBody
	case errors.Is(err, service.ErrEmailTaken):
		return apierror.EmailTaken, i18n.MsgEmailTaken
	case errors.Is(err, service.ErrEmailNotFound):
		return apierror.EmailNotFound, i18n.MsgEmailNotFound
	case errors.Is(err, service.ErrWrongPassword):
		return apierror.WrongPassword, i18n.MsgWrongPassword
	case errors.Is(err, service.ErrInvalidToken):
		return apierror.InvalidToken, i18n.MsgInvalidToken
	case errors.Is(err, service.ErrUserNotFound):
		return apierror.UserNotFound, i18n.MsgUserNotFound
	case errors.Is(err, game.ErrUnknownDifficulty):
		return apierror.UnknownDifficulty, i18n.MsgUnknownDifficulty
	case errors.Is(err, service.ErrNoActiveAttempt):
		return apierror.NoActiveAttempt, i18n.MsgNoActiveAttempt
	case errors.Is(err, game.ErrAttemptSubmitted):
		return apierror.AttemptSubmitted, i18n.MsgAttemptSubmitted
	case errors.Is(err, service.ErrIncompleteAttempt):
		return apierror.IncompleteAttempt, i18n.MsgIncompleteAttempt
	case errors.Is(err, game.ErrUnknownQuestion), errors.Is(err, game.ErrInvalidOption):
		return apierror.InvalidAnswer, i18n.MsgInvalidAnswer
	case errors.Is(err, service.ErrNoActiveSession):
		return apierror.NoActiveSession, i18n.MsgNoActiveSession
	case errors.Is(err, service.ErrSessionInProgress):
		return apierror.SessionInProgress, i18n.MsgSessionInProgress
	case errors.Is(err, game.ErrSessionNotActive):
		return apierror.SessionNotActive, i18n.MsgSessionNotActive
	case errors.Is(err, game.ErrUnknownBin):
		return apierror.UnknownBin, i18n.MsgUnknownBin
	default:
		return apierror.ServerError, i18n.MsgServerError
	}
}
