package payroll

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jansou-app/jansou-backend-go/internal/pkg/validator"
)

const advanceStep = 10_000

// Yen rounds a decimal to whole yen, half away from zero. Rounding
// happens here and nowhere earlier in the computation chain.
func Yen(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// AllowanceLineResponse is one allowance line with money rounded to yen.
type AllowanceLineResponse struct {
	Label     string          `json:"label"`
	UnitPrice int64           `json:"unit_price"`
	Hours     decimal.Decimal `json:"hours"`
	Amount    int64           `json:"amount"`
}

// SalarySummaryResponse represents the monthly salary statement.
type SalarySummaryResponse struct {
	UserID string `json:"user_id"`
	Month  string `json:"month"`

	WorkedMinutes int `json:"worked_minutes"`
	NightMinutes  int `json:"night_minutes"`
	BreakMinutes  int `json:"break_minutes"`
	ShiftDays     int `json:"shift_days"`
	GameCount     int `json:"game_count"`

	BaseWage       int64                   `json:"base_wage"`
	NightExtra     int64                   `json:"night_extra"`
	Transport      int64                   `json:"transport"`
	Allowances     []AllowanceLineResponse `json:"allowances"`
	AllowanceTotal int64                   `json:"allowance_total"`
	GameIncome     int64                   `json:"game_income"`

	Gross     int64 `json:"gross"`
	IncomeTax int64 `json:"income_tax"`
	Net       int64 `json:"net"`
	Advance   int64 `json:"advance"`
	Payable   int64 `json:"payable"`
}

// ToSummaryResponse maps the derived summary to its response DTO,
// rounding every money field to whole yen.
func ToSummaryResponse(s SalarySummary) SalarySummaryResponse {
	resp := SalarySummaryResponse{
		UserID:         s.UserID,
		Month:          s.Month,
		WorkedMinutes:  s.WorkedMinutes,
		NightMinutes:   s.NightMinutes,
		BreakMinutes:   s.BreakMinutes,
		ShiftDays:      s.ShiftDays,
		GameCount:      s.GameCount,
		BaseWage:       Yen(s.BaseWage),
		NightExtra:     Yen(s.NightExtra),
		Transport:      Yen(s.Transport),
		Allowances:     make([]AllowanceLineResponse, 0, len(s.Allowances)),
		AllowanceTotal: Yen(s.AllowanceTotal),
		GameIncome:     Yen(s.GameIncome),
		Gross:          Yen(s.Gross),
		IncomeTax:      Yen(s.IncomeTax),
		Net:            Yen(s.Net),
		Advance:        Yen(s.Advance),
		Payable:        Yen(s.Payable),
	}

	for _, a := range s.Allowances {
		resp.Allowances = append(resp.Allowances, AllowanceLineResponse{
			Label:     a.Label,
			UnitPrice: Yen(a.UnitPrice),
			Hours:     a.Hours.Round(2),
			Amount:    Yen(a.Amount),
		})
	}

	return resp
}

// UpsertAdvanceRequest sets the advance payment for a user and month.
type UpsertAdvanceRequest struct {
	UserID string `json:"-"`
	Month  string `json:"-"`
	Amount int64  `json:"amount"`
}

func (r *UpsertAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be formatted as YYYY-MM",
		})
	}

	if r.Amount < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must not be negative",
		})
	}
	if r.Amount > 10_000_000 {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount is out of range",
		})
	}
	if r.Amount%advanceStep != 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: fmt.Sprintf("amount must be a multiple of %d yen", advanceStep),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AdvanceResponse represents the stored advance for a month.
type AdvanceResponse struct {
	UserID string `json:"user_id"`
	Month  string `json:"month"`
	Amount int64  `json:"amount"`
}
