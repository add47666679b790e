package handler

import (
	"greenify/internal/game"
	"greenify/internal/i18n"
	"greenify/internal/model"
	"greenify/internal/service"
	"greenify/internal/transport/rest/apierror"
	"greenify/internal/transport/rest/middleware"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// ProgressHandler serves the task ledger and level endpoints
type ProgressHandler struct {
	progress *service.ProgressService
	logger   *slog.Logger
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progress *service.ProgressService, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{progress: progress, logger: logger}
}

// Tasks handles GET /v1/tasks
//
//	@Summary	Localized task ledger
//	@Tags		tasks
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	model.TasksResponse
//	@Router		/v1/tasks [get]
func (h *ProgressHandler) Tasks(w http.ResponseWriter, r *http.Request) {
	p, err := h.progress.Load(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	h.writeTasks(w, r, p, game.Delta{})
}

// Toggle handles POST /v1/tasks/{id}/toggle
//
//	@Summary	Toggle a task's completion
//	@Tags		tasks
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"task id"
//	@Success	200	{object}	model.TasksResponse
//	@Failure	400	{object}	model.ErrorResponse
//	@Router		/v1/tasks/{id}/toggle [post]
func (h *ProgressHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	taskID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		apierror.Write(w, r, apierror.InvalidTaskID, i18n.MsgInvalidTaskID)
		return
	}

	p, delta, err := h.progress.ToggleTask(r.Context(), middleware.GetUserID(r.Context()), taskID)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	h.writeTasks(w, r, p, delta)
}

// Progress handles GET /v1/progress
//
//	@Summary	Points, level and progress to the next level
//	@Tags		tasks
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	model.ProgressView
//	@Router		/v1/progress [get]
func (h *ProgressHandler) Progress(w http.ResponseWriter, r *http.Request) {
	p, err := h.progress.Load(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	sum, err := h.progress.Summarize(p.Total(), p.TasksCompleted())
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, progressView(sum, i18n.FromContext(r.Context())))
}

// Levels handles GET /v1/levels
//
//	@Summary	Level table
//	@Tags		tasks
//	@Produce	json
//	@Success	200	{array}	model.LevelView
//	@Router		/v1/levels [get]
func (h *ProgressHandler) Levels(w http.ResponseWriter, r *http.Request) {
	lang := i18n.FromContext(r.Context())
	levels := h.progress.Levels()
	out := make([]model.LevelView, len(levels))
	for i, l := range levels {
		out[i] = levelView(l, lang)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ProgressHandler) writeTasks(w http.ResponseWriter, r *http.Request, p *game.Progress, delta game.Delta) {
	sum, err := h.progress.Summarize(p.Total(), p.TasksCompleted())
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	lang := i18n.FromContext(r.Context())
	writeJSON(w, http.StatusOK, model.TasksResponse{
		Tasks:    taskViews(p.Tasks(), lang),
		Progress: progressView(sum, lang),
		Delta:    delta.Points,
	})
}
