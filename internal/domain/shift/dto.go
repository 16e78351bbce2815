package shift

import (
	"fmt"

	"github.com/jansou-app/jansou-backend-go/internal/pkg/timeutil"
	"github.com/jansou-app/jansou-backend-go/internal/pkg/validator"
)

// BreakInput is one break row as submitted by the client. Rows with both
// endpoints empty are ignored; rows with exactly one endpoint set are
// rejected.
type BreakInput struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func (b BreakInput) isBlank() bool {
	return validator.IsEmpty(b.StartTime) && validator.IsEmpty(b.EndTime)
}

// CreateShiftRequest represents the request structure for creating a
// shift.
type CreateShiftRequest struct {
	UserID              string       `json:"-"`
	WorkDate            string       `json:"work_date"`
	StartTime           string       `json:"start_time"`
	EndTime             string       `json:"end_time"`
	Memo                string       `json:"memo"`
	SpecialHourlyWageID *string      `json:"special_hourly_wage_id"`
	Breaks              []BreakInput `json:"breaks"`
}

func (r *CreateShiftRequest) Validate() error {
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

	errs = append(errs, ValidateTimes(r.StartTime, r.EndTime, r.Breaks)...)

	// Memo
	if len(r.Memo) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "memo",
			Message: "memo must not exceed 500 characters",
		})
	}

	// SpecialHourlyWageID
	if r.SpecialHourlyWageID != nil && !validator.IsValidUUID(*r.SpecialHourlyWageID) {
		errs = append(errs, validator.ValidationError{
			Field:   "special_hourly_wage_id",
			Message: "special_hourly_wage_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// NormalizedBreaks returns the non-blank break rows in entry order.
func (r *CreateShiftRequest) NormalizedBreaks() []BreakInput {
	return normalizeBreaks(r.Breaks)
}

// UpdateShiftRequest represents the request structure for updating a
// shift. Nil fields are left unchanged; a non-nil Breaks slice replaces
// every existing break. An empty special_hourly_wage_id clears the
// reference.
type UpdateShiftRequest struct {
	ID                  string        `json:"-"`
	UserID              string        `json:"-"`
	WorkDate            *string       `json:"work_date"`
	StartTime           *string       `json:"start_time"`
	EndTime             *string       `json:"end_time"`
	Memo                *string       `json:"memo"`
	SpecialHourlyWageID *string       `json:"special_hourly_wage_id"`
	Breaks              *[]BreakInput `json:"breaks"`
}

// Validate checks only field formats; the cross-field time invariants
// run against the merged result in the service via ValidateTimes.
func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.WorkDate != nil {
		if _, ok := validator.IsValidDate(*r.WorkDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "work_date",
				Message: "work_date must be a valid YYYY-MM-DD date",
			})
		}
	}

	if r.Memo != nil && len(*r.Memo) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "memo",
			Message: "memo must not exceed 500 characters",
		})
	}

	if r.SpecialHourlyWageID != nil && *r.SpecialHourlyWageID != "" && !validator.IsValidUUID(*r.SpecialHourlyWageID) {
		errs = append(errs, validator.ValidationError{
			Field:   "special_hourly_wage_id",
			Message: "special_hourly_wage_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ValidateTimes enforces the time invariants shared by create and update:
// both shift clocks present and parseable, every kept break complete and
// parseable, and the break total within the shift span.
func ValidateTimes(startTime, endTime string, breaks []BreakInput) validator.ValidationErrors {
	var errs validator.ValidationErrors

	start, err := parseClockField(&errs, "start_time", startTime)
	end, err2 := parseClockField(&errs, "end_time", endTime)
	if err != nil || err2 != nil {
		return errs
	}

	span := timeutil.Span(start, end)

	breakTotal := 0
	valid := true
	for i, b := range breaks {
		if b.isBlank() {
			continue
		}
		if validator.IsEmpty(b.StartTime) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("breaks[%d].start_time", i),
				Message: "start_time is required when end_time is set",
			})
			valid = false
			continue
		}
		if validator.IsEmpty(b.EndTime) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("breaks[%d].end_time", i),
				Message: "end_time is required when start_time is set",
			})
			valid = false
			continue
		}

		bs, errS := parseClockField(&errs, fmt.Sprintf("breaks[%d].start_time", i), b.StartTime)
		be, errE := parseClockField(&errs, fmt.Sprintf("breaks[%d].end_time", i), b.EndTime)
		if errS != nil || errE != nil {
			valid = false
			continue
		}
		breakTotal += timeutil.Span(bs, be)
	}

	if valid && breakTotal > span {
		errs = append(errs, validator.ValidationError{
			Field:   "breaks",
			Message: "total break minutes must not exceed the shift duration",
		})
	}

	return errs
}

func parseClockField(errs *validator.ValidationErrors, field, value string) (int, error) {
	if validator.IsEmpty(value) {
		*errs = append(*errs, validator.ValidationError{
			Field:   field,
			Message: field + " is required",
		})
		return 0, fmt.Errorf("%s is required", field)
	}
	m, err := timeutil.ParseClock(value)
	if err != nil || m >= timeutil.MinutesPerDay {
		*errs = append(*errs, validator.ValidationError{
			Field:   field,
			Message: field + " must be a valid HH:MM time before 24:00",
		})
		return 0, fmt.Errorf("%s is invalid", field)
	}
	return m, nil
}

func normalizeBreaks(breaks []BreakInput) []BreakInput {
	var kept []BreakInput
	for _, b := range breaks {
		if !b.isBlank() {
			kept = append(kept, b)
		}
	}
	return kept
}

// BreakResponse represents one break inside a shift response.
type BreakResponse struct {
	ID        string `json:"id"`
	Position  int    `json:"position"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ShiftResponse represents the response structure for a shift, including
// the derived minute totals.
type ShiftResponse struct {
	ID                  string          `json:"id"`
	UserID              string          `json:"user_id"`
	WorkDate            string          `json:"work_date"`
	StartTime           string          `json:"start_time"`
	EndTime             string          `json:"end_time"`
	Memo                string          `json:"memo"`
	SpecialHourlyWageID *string         `json:"special_hourly_wage_id"`
	Breaks              []BreakResponse `json:"breaks"`
	DurationMinutes     int             `json:"duration_minutes"`
	BreakMinutes        int             `json:"break_minutes"`
	NetMinutes          int             `json:"net_minutes"`
}

// ListShiftsResponse carries a month of shifts plus the aggregate totals
// shown on the staff portal.
type ListShiftsResponse struct {
	Shifts             []ShiftResponse `json:"shifts"`
	TotalWorkedMinutes int             `json:"total_worked_minutes"`
	TotalBreakMinutes  int             `json:"total_break_minutes"`
	ShiftDays          int             `json:"shift_days"`
}

// ListShiftsFilter selects one user's shifts for one month.
type ListShiftsFilter struct {
	UserID string
	Month  string
}

func (f *ListShiftsFilter) Validate() error {
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

// ToResponse maps a shift entity to its response DTO. Callers compute
// durationMinutes and breakMinutes through the entity so parse failures
// on stored clocks surface as errors instead of silent zeroes.
func ToResponse(s Shift, durationMinutes, breakMinutes int) ShiftResponse {
	resp := ShiftResponse{
		ID:                  s.ID,
		UserID:              s.UserID,
		WorkDate:            s.WorkDate.Format("2006-01-02"),
		StartTime:           s.StartTime,
		EndTime:             s.EndTime,
		Memo:                s.Memo,
		SpecialHourlyWageID: s.SpecialHourlyWageID,
		Breaks:              make([]BreakResponse, 0, len(s.Breaks)),
		DurationMinutes:     durationMinutes,
		BreakMinutes:        breakMinutes,
		NetMinutes:          durationMinutes - breakMinutes,
	}

	for _, b := range s.Breaks {
		resp.Breaks = append(resp.Breaks, BreakResponse{
			ID:        b.ID,
			Position:  b.Position,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
		})
	}

	return resp
}
