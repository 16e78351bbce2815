package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jansou-app/jansou-backend-go/internal/domain/result"
	"github.com/jansou-app/jansou-backend-go/internal/domain/stats"
	"github.com/jansou-app/jansou-backend-go/internal/handler/http/response"
)

type StatsHandler interface {
	Rankings(w http.ResponseWriter, r *http.Request)
	UserStats(w http.ResponseWriter, r *http.Request)
}

type statsHandlerImpl struct {
	statsService stats.StatsService
}

func NewStatsHandler(statsService stats.StatsService) StatsHandler {
	return &statsHandlerImpl{
		statsService: statsService,
	}
}

// Rankings handles GET /stats/rankings?month=YYYY-MM&game_type=YONMA
func (h *statsHandlerImpl) Rankings(w http.ResponseWriter, r *http.Request) {
	filter := stats.RankingsFilter{
		Month: r.URL.Query().Get("month"),
	}
	if gt := r.URL.Query().Get("game_type"); gt != "" {
		gameType := result.GameType(gt)
		filter.GameType = &gameType
	}

	result, err := h.statsService.Rankings(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UserStats handles GET /users/{userID}/stats/{month}
func (h *statsHandlerImpl) UserStats(w http.ResponseWriter, r *http.Request) {
	filter := stats.UserStatsFilter{
		UserID: chi.URLParam(r, "userID"),
		Month:  chi.URLParam(r, "month"),
	}

	result, err := h.statsService.UserStats(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
