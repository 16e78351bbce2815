package board

import (
	"github.com/jansou-app/jansou-backend-go/internal/pkg/validator"
)

// UpsertRequirementRequest creates or updates the requirement cell for a
// store, date and shift type.
type UpsertRequirementRequest struct {
	StoreID       string    `json:"-"`
	WorkDate      string    `json:"work_date"`
	ShiftType     ShiftType `json:"shift_type"`
	RequiredStart int       `json:"required_start"`
	RequiredEnd   int       `json:"required_end"`
	Editable      *bool     `json:"editable"`
}

func (r *UpsertRequirementRequest) Validate() error {
	var errs validator.ValidationErrors

	// WorkDate
	if validator.IsEmpty(r.WorkDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_date",
			Message: "work_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.WorkDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "work_date",
			Message: "work_date must be a valid YYYY-MM-DD date",
		})
	}

	// ShiftType
	if !validator.IsInSlice(string(r.ShiftType), []string{string(ShiftTypeEarly), string(ShiftTypeLate)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_type",
			Message: "shift_type must be EARLY or LATE",
		})
	}

	// Required counts
	if r.RequiredStart < 0 || r.RequiredStart > 99 {
		errs = append(errs, validator.ValidationError{
			Field:   "required_start",
			Message: "required_start must be between 0 and 99",
		})
	}
	if r.RequiredEnd < 0 || r.RequiredEnd > 99 {
		errs = append(errs, validator.ValidationError{
			Field:   "required_end",
			Message: "required_end must be between 0 and 99",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RequirementResponse represents a stored requirement cell.
type RequirementResponse struct {
	ID            string    `json:"id"`
	StoreID       string    `json:"store_id"`
	WorkDate      string    `json:"work_date"`
	ShiftType     ShiftType `json:"shift_type"`
	RequiredStart int       `json:"required_start"`
	RequiredEnd   int       `json:"required_end"`
	Editable      bool      `json:"editable"`
}

// ToRequirementResponse maps a requirement entity to its response DTO.
func ToRequirementResponse(r ShiftRequirement) RequirementResponse {
	return RequirementResponse{
		ID:            r.ID,
		StoreID:       r.StoreID,
		WorkDate:      r.WorkDate.Format("2006-01-02"),
		ShiftType:     r.ShiftType,
		RequiredStart: r.RequiredStart,
		RequiredEnd:   r.RequiredEnd,
		Editable:      r.Editable,
	}
}

// CellResponse is one shift-type cell on the board: the requirement
// (override or default), the actual headcounts at the staffing instants,
// and the diff classification used for coloring.
type CellResponse struct {
	ShiftType     ShiftType  `json:"shift_type"`
	RequiredStart int        `json:"required_start"`
	RequiredEnd   int        `json:"required_end"`
	ActualStart   int        `json:"actual_start"`
	ActualEnd     int        `json:"actual_end"`
	StartDiff     int        `json:"start_diff"`
	EndDiff       int        `json:"end_diff"`
	StartStatus   DiffStatus `json:"start_status"`
	EndStatus     DiffStatus `json:"end_status"`
	Editable      bool       `json:"editable"`
	HasOverride   bool       `json:"has_override"`
}

// BoardShiftResponse is one staff member's shift shown under a board day.
type BoardShiftResponse struct {
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// BoardDayResponse is one calendar day of the board.
type BoardDayResponse struct {
	Date    string               `json:"date"`
	Weekday string               `json:"weekday"`
	Early   CellResponse         `json:"early"`
	Late    CellResponse         `json:"late"`
	Shifts  []BoardShiftResponse `json:"shifts"`
}

// BoardResponse is a month of requirement-versus-actual cells for one
// store.
type BoardResponse struct {
	StoreID string             `json:"store_id"`
	Month   string             `json:"month"`
	Days    []BoardDayResponse `json:"days"`
}

// BoardFilter selects one store's board for one month.
type BoardFilter struct {
	StoreID string
	Month   string
}

func (f *BoardFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month is required",
		})
	} else if _, ok := validator.IsValidMonth(f.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be formatted as YYYY-MM",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
