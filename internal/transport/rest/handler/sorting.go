package handler

import (
	"greenify/internal/game"
	"greenify/internal/i18n"
	"greenify/internal/model"
	"greenify/internal/service"
	"greenify/internal/transport/rest/middleware"
	"log/slog"
	"net/http"
)

// SortingHandler serves the waste sorting game endpoints
type SortingHandler struct {
	sorting *service.SortingService
	logger  *slog.Logger
}

// NewSortingHandler creates a new sorting handler
func NewSortingHandler(sorting *service.SortingService, logger *slog.Logger) *SortingHandler {
	return &SortingHandler{sorting: sorting, logger: logger}
}

// Bins handles GET /v1/sorting/bins
//
//	@Summary	Sorting bins
//	@Tags		sorting
//	@Produce	json
//	@Success	200	{array}	model.BinView
//	@Router		/v1/sorting/bins [get]
func (h *SortingHandler) Bins(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, binViews(i18n.FromContext(r.Context())))
}

// Start handles POST /v1/sorting/sessions
//
//	@Summary	Start a timed sorting session
//	@Tags		sorting
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		model.StartGameRequest	true	"difficulty"
//	@Success	201		{object}	model.SortingSessionView
//	@Failure	409		{object}	model.ErrorResponse
//	@Router		/v1/sorting/sessions [post]
func (h *SortingHandler) Start(w http.ResponseWriter, r *http.Request) {
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

	sess, err := h.sorting.Start(middleware.GetUserID(r.Context()), d)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, sessionView(sess, i18n.FromContext(r.Context())))
}

// Current handles GET /v1/sorting/sessions/current
//
//	@Summary	Current sorting session
//	@Tags		sorting
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	model.SortingSessionView
//	@Failure	404	{object}	model.ErrorResponse
//	@Router		/v1/sorting/sessions/current [get]
func (h *SortingHandler) Current(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sorting.Current(middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionView(sess, i18n.FromContext(r.Context())))
}

// Place handles POST /v1/sorting/sessions/current/placements
//
//	@Summary	Drop the current item into a bin
//	@Tags		sorting
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		model.PlacementRequest	true	"bin"
//	@Success	200		{object}	model.PlacementResponse
//	@Failure	409		{object}	model.ErrorResponse
//	@Router		/v1/sorting/sessions/current/placements [post]
func (h *SortingHandler) Place(w http.ResponseWriter, r *http.Request) {
	var req model.PlacementRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	placement, sess, err := h.sorting.Place(r.Context(), middleware.GetUserID(r.Context()), game.WasteCategory(req.Category))
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	lang := i18n.FromContext(r.Context())
	writeJSON(w, http.StatusOK, model.PlacementResponse{
		Correct: placement.Correct,
		Item:    wasteItemView(placement.Item, lang),
		Session: sessionView(sess, lang),
	})
}

// Reset handles DELETE /v1/sorting/sessions/current
//
//	@Summary	Stop and clear the current session
//	@Tags		sorting
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	model.SortingSessionView
//	@Failure	404	{object}	model.ErrorResponse
//	@Router		/v1/sorting/sessions/current [delete]
func (h *SortingHandler) Reset(w http.ResponseWriter, r *http.Request) {
	sess, err := h.sorting.Reset(middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionView(sess, i18n.FromContext(r.Context())))
}
