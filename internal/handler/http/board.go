package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jansou-app/jansou-backend-go/internal/domain/board"
	"github.com/jansou-app/jansou-backend-go/internal/handler/http/response"
)

type BoardHandler interface {
	GetBoard(w http.ResponseWriter, r *http.Request)
	UpsertRequirement(w http.ResponseWriter, r *http.Request)
	ExportBoard(w http.ResponseWriter, r *http.Request)
}

type boardHandlerImpl struct {
	boardService board.BoardService
}

func NewBoardHandler(boardService board.BoardService) BoardHandler {
	return &boardHandlerImpl{
		boardService: boardService,
	}
}

// GetBoard handles GET /stores/{storeID}/shift-board?month=YYYY-MM
func (h *boardHandlerImpl) GetBoard(w http.ResponseWriter, r *http.Request) {
	filter := board.BoardFilter{
		StoreID: chi.URLParam(r, "storeID"),
		Month:   r.URL.Query().Get("month"),
	}

	result, err := h.boardService.GetBoard(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpsertRequirement handles PUT /stores/{storeID}/shift-requirements
func (h *boardHandlerImpl) UpsertRequirement(w http.ResponseWriter, r *http.Request) {
	var req board.UpsertRequirementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.StoreID = chi.URLParam(r, "storeID")

	result, err := h.boardService.UpsertRequirement(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift requirement saved successfully", result)
}

// ExportBoard handles GET /stores/{storeID}/shift-board/export?month=YYYY-MM
func (h *boardHandlerImpl) ExportBoard(w http.ResponseWriter, r *http.Request) {
	filter := board.BoardFilter{
		StoreID: chi.URLParam(r, "storeID"),
		Month:   r.URL.Query().Get("month"),
	}

	file, filename, err := h.boardService.ExportBoard(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	if _, err := w.Write(file); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
