package settings

import (
	"github.com/shopspring/decimal"

	"github.com/jansou-app/jansou-backend-go/internal/pkg/timeutil"
	"github.com/jansou-app/jansou-backend-go/internal/pkg/validator"
)

// GameSettingsResponse represents the response structure for a user's
// game settings.
type GameSettingsResponse struct {
	ID                  string          `json:"id"`
	UserID              string          `json:"user_id"`
	YonmaGameFee        int             `json:"yonma_game_fee"`
	SanmaGameFee        int             `json:"sanma_game_fee"`
	SanmaGameFeeBack    int             `json:"sanma_game_fee_back"`
	YonmaTipUnit        int             `json:"yonma_tip_unit"`
	SanmaTipUnit        int             `json:"sanma_tip_unit"`
	WageType            WageType        `json:"wage_type"`
	HourlyWage          int             `json:"hourly_wage"`
	FixedSalary         int             `json:"fixed_salary"`
	BaseMinWage         int             `json:"base_min_wage"`
	NightRateMultiplier decimal.Decimal `json:"night_rate_multiplier"`
	NightHourlyWage     *int            `json:"night_hourly_wage"`
	IncomeTaxRate       decimal.Decimal `json:"income_tax_rate"`
	TransportPerShift   int             `json:"transport_per_shift"`
	NightStartTime      string          `json:"night_start_time"`
	NightEndTime        string          `json:"night_end_time"`
}

// UpdateGameSettingsRequest is a partial update; nil fields keep their
// current value. Sending night_hourly_wage of 0 clears the distinct
// night rate so the effective hourly wage applies again.
type UpdateGameSettingsRequest struct {
	UserID              string           `json:"-"`
	YonmaGameFee        *int             `json:"yonma_game_fee"`
	SanmaGameFee        *int             `json:"sanma_game_fee"`
	SanmaGameFeeBack    *int             `json:"sanma_game_fee_back"`
	YonmaTipUnit        *int             `json:"yonma_tip_unit"`
	SanmaTipUnit        *int             `json:"sanma_tip_unit"`
	WageType            *WageType        `json:"wage_type"`
	HourlyWage          *int             `json:"hourly_wage"`
	FixedSalary         *int             `json:"fixed_salary"`
	BaseMinWage         *int             `json:"base_min_wage"`
	NightRateMultiplier *decimal.Decimal `json:"night_rate_multiplier"`
	NightHourlyWage     *int             `json:"night_hourly_wage"`
	IncomeTaxRate       *decimal.Decimal `json:"income_tax_rate"`
	TransportPerShift   *int             `json:"transport_per_shift"`
	NightStartTime      *string          `json:"night_start_time"`
	NightEndTime        *string          `json:"night_end_time"`
}

func (r *UpdateGameSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	checkYen := func(field string, v *int, maxVal int) {
		if v == nil {
			return
		}
		if *v < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must not be negative",
			})
		}
		if *v > maxVal {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " is out of range",
			})
		}
	}

	checkYen("yonma_game_fee", r.YonmaGameFee, 1_000_000)
	checkYen("sanma_game_fee", r.SanmaGameFee, 1_000_000)
	checkYen("sanma_game_fee_back", r.SanmaGameFeeBack, 1_000_000)
	checkYen("yonma_tip_unit", r.YonmaTipUnit, 1_000_000)
	checkYen("sanma_tip_unit", r.SanmaTipUnit, 1_000_000)
	checkYen("hourly_wage", r.HourlyWage, 100_000)
	checkYen("fixed_salary", r.FixedSalary, 10_000_000)
	checkYen("base_min_wage", r.BaseMinWage, 100_000)
	checkYen("transport_per_shift", r.TransportPerShift, 100_000)
	checkYen("night_hourly_wage", r.NightHourlyWage, 100_000)

	if r.WageType != nil && !validator.IsInSlice(string(*r.WageType), []string{string(WageTypeHourly), string(WageTypeFixed)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "wage_type",
			Message: "wage_type must be HOURLY or FIXED",
		})
	}

	if r.NightRateMultiplier != nil {
		if r.NightRateMultiplier.IsNegative() || r.NightRateMultiplier.GreaterThan(decimal.NewFromInt(3)) {
			errs = append(errs, validator.ValidationError{
				Field:   "night_rate_multiplier",
				Message: "night_rate_multiplier must be between 0 and 3",
			})
		}
	}

	if r.IncomeTaxRate != nil {
		if r.IncomeTaxRate.IsNegative() || r.IncomeTaxRate.GreaterThan(decimal.NewFromInt(1)) {
			errs = append(errs, validator.ValidationError{
				Field:   "income_tax_rate",
				Message: "income_tax_rate must be between 0 and 1",
			})
		}
	}

	checkWindow := func(field string, v *string) {
		if v == nil {
			return
		}
		m, err := timeutil.ParseClock(*v)
		if err != nil || m >= timeutil.MinutesPerDay {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be a valid HH:MM time before 24:00",
			})
		}
	}
	checkWindow("night_start_time", r.NightStartTime)
	checkWindow("night_end_time", r.NightEndTime)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Apply merges the non-nil request fields onto the current settings and
// returns the result.
func (r *UpdateGameSettingsRequest) Apply(current GameSettings) GameSettings {
	if r.YonmaGameFee != nil {
		current.YonmaGameFee = *r.YonmaGameFee
	}
	if r.SanmaGameFee != nil {
		current.SanmaGameFee = *r.SanmaGameFee
	}
	if r.SanmaGameFeeBack != nil {
		current.SanmaGameFeeBack = *r.SanmaGameFeeBack
	}
	if r.YonmaTipUnit != nil {
		current.YonmaTipUnit = *r.YonmaTipUnit
	}
	if r.SanmaTipUnit != nil {
		current.SanmaTipUnit = *r.SanmaTipUnit
	}
	if r.WageType != nil {
		current.WageType = *r.WageType
	}
	if r.HourlyWage != nil {
		current.HourlyWage = *r.HourlyWage
	}
	if r.FixedSalary != nil {
		current.FixedSalary = *r.FixedSalary
	}
	if r.BaseMinWage != nil {
		current.BaseMinWage = *r.BaseMinWage
	}
	if r.NightRateMultiplier != nil {
		current.NightRateMultiplier = *r.NightRateMultiplier
	}
	if r.NightHourlyWage != nil {
		if *r.NightHourlyWage == 0 {
			current.NightHourlyWage = nil
		} else {
			wage := *r.NightHourlyWage
			current.NightHourlyWage = &wage
		}
	}
	if r.IncomeTaxRate != nil {
		current.IncomeTaxRate = *r.IncomeTaxRate
	}
	if r.TransportPerShift != nil {
		current.TransportPerShift = *r.TransportPerShift
	}
	if r.NightStartTime != nil {
		current.NightStartTime = *r.NightStartTime
	}
	if r.NightEndTime != nil {
		current.NightEndTime = *r.NightEndTime
	}
	return current
}

// ToResponse maps a settings entity to its response DTO.
func ToResponse(s GameSettings) GameSettingsResponse {
	return GameSettingsResponse{
		ID:                  s.ID,
		UserID:              s.UserID,
		YonmaGameFee:        s.YonmaGameFee,
		SanmaGameFee:        s.SanmaGameFee,
		SanmaGameFeeBack:    s.SanmaGameFeeBack,
		YonmaTipUnit:        s.YonmaTipUnit,
		SanmaTipUnit:        s.SanmaTipUnit,
		WageType:            s.WageType,
		HourlyWage:          s.HourlyWage,
		FixedSalary:         s.FixedSalary,
		BaseMinWage:         s.BaseMinWage,
		NightRateMultiplier: s.NightRateMultiplier,
		NightHourlyWage:     s.NightHourlyWage,
		IncomeTaxRate:       s.IncomeTaxRate,
		TransportPerShift:   s.TransportPerShift,
		NightStartTime:      s.NightStartTime,
		NightEndTime:        s.NightEndTime,
	}
}

// SpecialWageResponse represents the response structure for a special
// hourly wage.
type SpecialWageResponse struct {
	ID         string         `json:"id"`
	Label      string         `json:"label"`
	HourlyWage int            `json:"hourly_wage"`
	AppliesTo  AllowanceScope `json:"applies_to"`
}

// CreateSpecialWageRequest represents the request structure for creating
// a special hourly wage.
type CreateSpecialWageRequest struct {
	Label      string         `json:"label"`
	HourlyWage int            `json:"hourly_wage"`
	AppliesTo  AllowanceScope `json:"applies_to"`
}

func (r *CreateSpecialWageRequest) Validate() error {
	var errs validator.ValidationErrors

	// Label
	if validator.IsEmpty(r.Label) {
		errs = append(errs, validator.ValidationError{
			Field:   "label",
			Message: "label is required",
		})
	}
	if len(r.Label) > 50 {
		errs = append(errs, validator.ValidationError{
			Field:   "label",
			Message: "label must not exceed 50 characters",
		})
	}

	// HourlyWage
	if r.HourlyWage < 0 || r.HourlyWage > 100_000 {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_wage",
			Message: "hourly_wage must be between 0 and 100000",
		})
	}

	// AppliesTo
	if r.AppliesTo == "" {
		r.AppliesTo = ScopeAll
	} else if !validator.IsInSlice(string(r.AppliesTo), []string{string(ScopeAll), string(ScopeNight)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "applies_to",
			Message: "applies_to must be all or night",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateSpecialWageRequest represents the request structure for updating
// a special hourly wage. Nil fields are left unchanged.
type UpdateSpecialWageRequest struct {
	ID         string          `json:"-"`
	Label      *string         `json:"label"`
	HourlyWage *int            `json:"hourly_wage"`
	AppliesTo  *AllowanceScope `json:"applies_to"`
}

func (r *UpdateSpecialWageRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Label != nil {
		if validator.IsEmpty(*r.Label) {
			errs = append(errs, validator.ValidationError{
				Field:   "label",
				Message: "label must not be empty",
			})
		}
		if len(*r.Label) > 50 {
			errs = append(errs, validator.ValidationError{
				Field:   "label",
				Message: "label must not exceed 50 characters",
			})
		}
	}

	if r.HourlyWage != nil && (*r.HourlyWage < 0 || *r.HourlyWage > 100_000) {
		errs = append(errs, validator.ValidationError{
			Field:   "hourly_wage",
			Message: "hourly_wage must be between 0 and 100000",
		})
	}

	if r.AppliesTo != nil && !validator.IsInSlice(string(*r.AppliesTo), []string{string(ScopeAll), string(ScopeNight)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "applies_to",
			Message: "applies_to must be all or night",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToSpecialWageResponse maps a special wage entity to its response DTO.
func ToSpecialWageResponse(w SpecialHourlyWage) SpecialWageResponse {
	return SpecialWageResponse{
		ID:         w.ID,
		Label:      w.Label,
		HourlyWage: w.HourlyWage,
		AppliesTo:  w.AppliesTo,
	}
}
