package handler

import (
	"greenify/internal/i18n"
	"greenify/internal/model"
	"greenify/internal/service"
	"greenify/internal/transport/rest/middleware"
	"log/slog"
	"net/http"
	"strconv"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
)

// ProfileHandler serves the profile and leaderboard
type ProfileHandler struct {
	profiles *service.ProfileService
	logger   *slog.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profiles *service.ProfileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, logger: logger}
}

// Get handles GET /v1/profile
//
//	@Summary	Account and progress of the caller
//	@Tags		profile
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	model.ProfileView
//	@Failure	404	{object}	model.ErrorResponse
//	@Router		/v1/profile [get]
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	prof, err := h.profiles.Get(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, model.ProfileView{
		ID:       prof.User.ID,
		Name:     prof.User.Name,
		Email:    prof.User.Email,
		Progress: progressView(prof.Summary, i18n.FromContext(r.Context())),
		Rank:     prof.Rank,
	})
}

// Leaderboard handles GET /v1/leaderboard?limit=
//
//	@Summary	Top users by points
//	@Tags		profile
//	@Produce	json
//	@Security	BearerAuth
//	@Param		limit	query	int	false	"entries, default 10, at most 100"
//	@Success	200		{array}	model.LeaderboardEntry
//	@Router		/v1/leaderboard [get]
func (h *ProfileHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit := defaultLeaderboardLimit
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = min(parsed, maxLeaderboardLimit)
		}
	}

	entries, err := h.profiles.Leaderboard(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
