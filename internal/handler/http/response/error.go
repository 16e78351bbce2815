package response

import (
	"errors"
	"net/http"

	"github.com/jansou-app/jansou-backend-go/internal/domain/auth"
	"github.com/jansou-app/jansou-backend-go/internal/domain/board"
	"github.com/jansou-app/jansou-backend-go/internal/domain/payroll"
	"github.com/jansou-app/jansou-backend-go/internal/domain/result"
	"github.com/jansou-app/jansou-backend-go/internal/domain/settings"
	"github.com/jansou-app/jansou-backend-go/internal/domain/shift"
	"github.com/jansou-app/jansou-backend-go/internal/domain/store"
	"github.com/jansou-app/jansou-backend-go/internal/domain/user"
	"github.com/jansou-app/jansou-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrNotResourceOwner):
		Forbidden(w, "Resource belongs to another user")
	case errors.Is(err, user.ErrStoreRequired):
		BadRequest(w, "User is not assigned to a store", nil)

	// Store domain errors
	case errors.Is(err, store.ErrStoreNotFound):
		NotFound(w, "Store not found")
	case errors.Is(err, store.ErrStoreNameExists):
		Conflict(w, "Store with this name already exists")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrBoardLocked):
		Conflict(w, "Shift board for this date is locked")

	// Settings domain errors
	case errors.Is(err, settings.ErrSettingsNotFound):
		NotFound(w, "Game settings not found")
	case errors.Is(err, settings.ErrSpecialWageNotFound):
		NotFound(w, "Special hourly wage not found")
	case errors.Is(err, settings.ErrSpecialWageLabelExists):
		Conflict(w, "Special hourly wage with this label already exists")

	// Result domain errors
	case errors.Is(err, result.ErrResultNotFound):
		NotFound(w, "Game result not found")
	case errors.Is(err, result.ErrFinalRecordImmutable):
		Conflict(w, "Final records of a simple batch cannot be modified")
	case errors.Is(err, result.ErrPlaceOutOfRangeForType):
		BadRequest(w, "Place is out of range for the game type", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrAdvanceNotFound):
		NotFound(w, "Advance payment not found")
	case errors.Is(err, payroll.ErrInvalidMonth):
		BadRequest(w, "Month must be formatted as YYYY-MM", nil)

	// Board domain errors
	case errors.Is(err, board.ErrRequirementNotFound):
		NotFound(w, "Shift requirement not found")
	case errors.Is(err, board.ErrCellLocked):
		Conflict(w, "Requirement cell is locked")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
