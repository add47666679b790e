// Package apierror writes the JSON error envelope shared by handlers and middleware.
package apierror

import (
	"encoding/json"
	"greenify/internal/i18n"
	"greenify/internal/model"
	"net/http"
)

// RequestIDHeader carries the request identifier on requests and responses.
const RequestIDHeader = "X-Request-ID"

// Code identifies an error class in responses.
type Code string

const (
	InvalidBody       Code = "invalid_body"
	EmailTaken        Code = "email_taken"
	EmailNotFound     Code = "email_not_found"
	WrongPassword     Code = "wrong_password"
	MissingToken      Code = "missing_token"
	InvalidToken      Code = "invalid_token"
	UserNotFound      Code = "user_not_found"
	UnknownDifficulty Code = "unknown_difficulty"
	NoActiveAttempt   Code = "no_active_attempt"
	AttemptSubmitted  Code = "attempt_submitted"
	IncompleteAttempt Code = "incomplete_attempt"
	InvalidAnswer     Code = "invalid_answer"
	NoActiveSession   Code = "no_active_session"
	SessionInProgress Code = "session_in_progress"
	SessionNotActive  Code = "session_not_active"
	UnknownBin        Code = "unknown_bin"
	InvalidTaskID     Code = "invalid_task_id"
	ServerError       Code = "server_error"
)

// ToStatusCode maps an error code to its HTTP status.
func ToStatusCode(code Code) int {
	switch code {
	case InvalidBody, EmailTaken, EmailNotFound, WrongPassword, UnknownDifficulty,
		InvalidAnswer, UnknownBin, InvalidTaskID:
		return http.StatusBadRequest
	case MissingToken, InvalidToken:
		return http.StatusUnauthorized
	case UserNotFound, NoActiveAttempt, NoActiveSession:
		return http.StatusNotFound
	case AttemptSubmitted, IncompleteAttempt, SessionInProgress, SessionNotActive:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Write sends the error envelope with a message localized to the request language.
func Write(w http.ResponseWriter, r *http.Request, code Code, key i18n.Key) {
	body := model.ErrorResponse{
		Code:      string(code),
		Message:   i18n.Message(i18n.FromContext(r.Context()), key),
		RequestID: w.Header().Get(RequestIDHeader),
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(ToStatusCode(code))
	json.NewEncoder(w).Encode(body)
}
