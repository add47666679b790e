package handler

import (
	"greenify/internal/catalog"
	"greenify/internal/game"
	"greenify/internal/i18n"
	"greenify/internal/model"
	"greenify/internal/service"
	"greenify/internal/transport/rest/middleware"
	"log/slog"
	"net/http"
)

// QuizHandler serves the eco quiz endpoints
type QuizHandler struct {
	quiz   *service.QuizService
	logger *slog.Logger
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(quiz *service.QuizService, logger *slog.Logger) *QuizHandler {
	return &QuizHandler{quiz: quiz, logger: logger}
}

// Questions handles GET /v1/quiz/questions?difficulty=
//
//	@Summary	Questions for a difficulty, without answers
//	@Tags		quiz
//	@Produce	json
//	@Param		difficulty	query		string	true	"easy, medium or hard"
//	@Success	200			{array}		model.QuizQuestionView
//	@Failure	400			{object}	model.ErrorResponse
//	@Router		/v1/quiz/questions [get]
func (h *QuizHandler) Questions(w http.ResponseWriter, r *http.Request) {
	d, err := game.ParseDifficulty(r.URL.Query().Get("difficulty"))
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	lang := i18n.FromContext(r.Context())
	qs := catalog.Questions(d)
	out := make([]model.QuizQuestionView, len(qs))
	for i, q := range qs {
		out[i] = questionView(q, lang, false)
	}
	writeJSON(w, http.StatusOK, out)
}

// Start handles POST /v1/quiz/attempts
//
//	@Summary	Start a quiz attempt, replacing the current one
//	@Tags		quiz
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		model.StartGameRequest	true	"difficulty"
//	@Success	201		{object}	model.QuizAttemptView
//	@Failure	400		{object}	model.ErrorResponse
//	@Router		/v1/quiz/attempts [post]
func (h *QuizHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req model.StartGameRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	d, err := game.ParseDifficulty(req.Difficulty)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	attempt, err := h.quiz.Start(r.Context(), middleware.GetUserID(r.Context()), d)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, attemptView(attempt, i18n.FromContext(r.Context())))
}

// Current handles GET /v1/quiz/attempts/current
//
//	@Summary	Current quiz attempt
//	@Tags		quiz
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	model.QuizAttemptView
//	@Failure	404	{object}	model.ErrorResponse
//	@Router		/v1/quiz/attempts/current [get]
func (h *QuizHandler) Current(w http.ResponseWriter, r *http.Request) {
	attempt, err := h.quiz.Current(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, attemptView(attempt, i18n.FromContext(r.Context())))
}

// Answer handles PUT /v1/quiz/attempts/current/answers
//
//	@Summary	Record an answer
//	@Tags		quiz
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		model.AnswerRequest	true	"answer"
//	@Success	200		{object}	model.QuizAttemptView
//	@Failure	409		{object}	model.ErrorResponse
//	@Router		/v1/quiz/attempts/current/answers [put]
func (h *QuizHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req model.AnswerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	attempt, err := h.quiz.Answer(r.Context(), middleware.GetUserID(r.Context()), req.QuestionID, *req.Option)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, attemptView(attempt, i18n.FromContext(r.Context())))
}

// Submit handles POST /v1/quiz/attempts/current/submit
//
//	@Summary	Score the attempt and grant its reward
//	@Tags		quiz
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	model.QuizAttemptView
//	@Failure	409	{object}	model.ErrorResponse
//	@Router		/v1/quiz/attempts/current/submit [post]
func (h *QuizHandler) Submit(w http.ResponseWriter, r *http.Request) {
	attempt, err := h.quiz.Submit(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, attemptView(attempt, i18n.FromContext(r.Context())))
}

// Discard handles DELETE /v1/quiz/attempts/current
//
//	@Summary	Drop the current attempt
//	@Tags		quiz
//	@Security	BearerAuth
//	@Success	204
//	@Router		/v1/quiz/attempts/current [delete]
func (h *QuizHandler) Discard(w http.ResponseWriter, r *http.Request) {
	if err := h.quiz.Discard(r.Context(), middleware.GetUserID(r.Context())); err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
