package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Minutes groups one shift's minute buckets. Night is capped at Worked:
// breaks carry durations but no position inside the shift, so the night
// portion can never exceed the paid total.
type Minutes struct {
	Span   int
	Break  int
	Worked int
	Night  int
}

// WageBreakdown is the wage side of a salary before allowances and game
// income. Values stay unrounded decimals until the response DTO.
type WageBreakdown struct {
	BaseWage   decimal.Decimal
	NightExtra decimal.Decimal
	Transport  decimal.Decimal
}

// AllowanceLine is one shift's special-allowance contribution.
type AllowanceLine struct {
	Label     string
	UnitPrice decimal.Decimal
	Hours     decimal.Decimal
	Amount    decimal.Decimal
}

// SalarySummary is the derived monthly payroll statement. It is computed
// on demand and never persisted.
type SalarySummary struct {
	UserID string
	Month  string

	WorkedMinutes int
	NightMinutes  int
	BreakMinutes  int
	ShiftDays     int
	GameCount     int

	BaseWage       decimal.Decimal
	NightExtra     decimal.Decimal
	Transport      decimal.Decimal
	Allowances     []AllowanceLine
	AllowanceTotal decimal.Decimal
	GameIncome     decimal.Decimal

	Gross     decimal.Decimal
	IncomeTax decimal.Decimal
	Net       decimal.Decimal
	Advance   decimal.Decimal
	Payable   decimal.Decimal
}

// AdvancePayment is the amount a user already received for a month,
// deducted from the payable net. One row per user and month.
type AdvancePayment struct {
	ID        string
	UserID    string
	Month     string
	Amount    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
