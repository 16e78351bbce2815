package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jansou-app/jansou-backend-go/internal/domain/settings"
	"github.com/jansou-app/jansou-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	// Game settings
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)

	// Special hourly wages
	CreateSpecialWage(w http.ResponseWriter, r *http.Request)
	ListSpecialWages(w http.ResponseWriter, r *http.Request)
	UpdateSpecialWage(w http.ResponseWriter, r *http.Request)
	DeleteSpecialWage(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService    settings.GameSettingsService
	specialWageService settings.SpecialWageService
}

func NewSettingsHandler(settingsService settings.GameSettingsService, specialWageService settings.SpecialWageService) SettingsHandler {
	return &settingsHandlerImpl{
		settingsService:    settingsService,
		specialWageService: specialWageService,
	}
}

// Get handles GET /users/{userID}/settings
func (h *settingsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.Get(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update handles PUT /users/{userID}/settings
func (h *settingsHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateGameSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = chi.URLParam(r, "userID")

	result, err := h.settingsService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settings updated successfully", result)
}

// CreateSpecialWage handles POST /special-wages
func (h *settingsHandlerImpl) CreateSpecialWage(w http.ResponseWriter, r *http.Request) {
	var req settings.CreateSpecialWageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.specialWageService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Special hourly wage created successfully", result)
}

// ListSpecialWages handles GET /special-wages
func (h *settingsHandlerImpl) ListSpecialWages(w http.ResponseWriter, r *http.Request) {
	result, err := h.specialWageService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateSpecialWage handles PUT /special-wages/{wageID}
func (h *settingsHandlerImpl) UpdateSpecialWage(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateSpecialWageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "wageID")

	result, err := h.specialWageService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Special hourly wage updated successfully", result)
}

// DeleteSpecialWage handles DELETE /special-wages/{wageID}
func (h *settingsHandlerImpl) DeleteSpecialWage(w http.ResponseWriter, r *http.Request) {
	if err := h.specialWageService.Delete(r.Context(), chi.URLParam(r, "wageID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Special hourly wage deleted successfully", nil)
}
