package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jansou-app/jansou-backend-go/internal/domain/result"
	"github.com/jansou-app/jansou-backend-go/internal/handler/http/response"
)

type ResultHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	CreateSimpleBatch(w http.ResponseWriter, r *http.Request)
}

type resultHandlerImpl struct {
	resultService result.GameResultService
}

func NewResultHandler(resultService result.GameResultService) ResultHandler {
	return &resultHandlerImpl{
		resultService: resultService,
	}
}

// Create handles POST /users/{userID}/results
func (h *resultHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req result.CreateGameResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = chi.URLParam(r, "userID")

	res, err := h.resultService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Game result created successfully", res)
}

// List handles GET /users/{userID}/results?month=YYYY-MM&game_type=YONMA
func (h *resultHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := result.ListResultsFilter{
		UserID: chi.URLParam(r, "userID"),
		Month:  r.URL.Query().Get("month"),
	}
	if gt := r.URL.Query().Get("game_type"); gt != "" {
		gameType := result.GameType(gt)
		filter.GameType = &gameType
	}

	res, err := h.resultService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, res)
}

// Update handles PUT /users/{userID}/results/{resultID}
func (h *resultHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req result.UpdateGameResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "resultID")
	req.UserID = chi.URLParam(r, "userID")

	res, err := h.resultService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Game result updated successfully", res)
}

// Delete handles DELETE /users/{userID}/results/{resultID}
func (h *resultHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	resultID := chi.URLParam(r, "resultID")

	if err := h.resultService.Delete(r.Context(), userID, resultID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Game result deleted successfully", nil)
}

// CreateSimpleBatch handles POST /users/{userID}/results/simple-batch
func (h *resultHandlerImpl) CreateSimpleBatch(w http.ResponseWriter, r *http.Request) {
	var req result.SimpleBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = chi.URLParam(r, "userID")

	res, err := h.resultService.CreateSimpleBatch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Simple batch recorded successfully", res)
}
