package store

import (
	"github.com/jansou-app/jansou-backend-go/internal/pkg/validator"
)

// StoreResponse represents the response structure for a store.
type StoreResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	EarlyOpenTime  string `json:"early_open_time"`
	EarlyCloseTime string `json:"early_close_time"`
	LateOpenTime   string `json:"late_open_time"`
	LateCloseTime  string `json:"late_close_time"`
}

// CreateStoreRequest represents the request structure for creating a store.
type CreateStoreRequest struct {
	Name           string `json:"name"`
	EarlyOpenTime  string `json:"early_open_time"`
	EarlyCloseTime string `json:"early_close_time"`
	LateOpenTime   string `json:"late_open_time"`
	LateCloseTime  string `json:"late_close_time"`
}

func (r *CreateStoreRequest) Validate() error {
	var errs validator.ValidationErrors

	// Name
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	errs = append(errs, validateClockField("early_open_time", r.EarlyOpenTime)...)
	errs = append(errs, validateClockField("early_close_time", r.EarlyCloseTime)...)
	errs = append(errs, validateClockField("late_open_time", r.LateOpenTime)...)
	errs = append(errs, validateClockField("late_close_time", r.LateCloseTime)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateStoreRequest represents the request structure for updating a store.
// Nil fields are left unchanged.
type UpdateStoreRequest struct {
	ID             string  `json:"-"`
	Name           *string `json:"name"`
	EarlyOpenTime  *string `json:"early_open_time"`
	EarlyCloseTime *string `json:"early_close_time"`
	LateOpenTime   *string `json:"late_open_time"`
	LateCloseTime  *string `json:"late_close_time"`
}

func (r *UpdateStoreRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		}
		if len(*r.Name) > 100 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 100 characters",
			})
		}
	}

	if r.EarlyOpenTime != nil {
		errs = append(errs, validateClockField("early_open_time", *r.EarlyOpenTime)...)
	}
	if r.EarlyCloseTime != nil {
		errs = append(errs, validateClockField("early_close_time", *r.EarlyCloseTime)...)
	}
	if r.LateOpenTime != nil {
		errs = append(errs, validateClockField("late_open_time", *r.LateOpenTime)...)
	}
	if r.LateCloseTime != nil {
		errs = append(errs, validateClockField("late_close_time", *r.LateCloseTime)...)
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateClockField(field, value string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(value) {
		errs = append(errs, validator.ValidationError{
			Field:   field,
			Message: field + " is required",
		})
		return errs
	}
	if !validator.IsValidClock(value) {
		errs = append(errs, validator.ValidationError{
			Field:   field,
			Message: field + " must be a valid HH:MM time",
		})
	}

	return errs
}

// ToResponse maps a store entity to its response DTO.
func ToResponse(s Store) StoreResponse {
	return StoreResponse{
		ID:             s.ID,
		Name:           s.Name,
		EarlyOpenTime:  s.EarlyOpenTime,
		EarlyCloseTime: s.EarlyCloseTime,
		LateOpenTime:   s.LateOpenTime,
		LateCloseTime:  s.LateCloseTime,
	}
}
