package settings

import (
	"time"

	"github.com/shopspring/decimal"
)

type WageType string

const (
	WageTypeHourly WageType = "HOURLY" // paid per worked hour
	WageTypeFixed  WageType = "FIXED"  // flat amount per month
)

// AllowanceScope controls which hours a special hourly wage applies to.
type AllowanceScope string

const (
	ScopeAll   AllowanceScope = "all"
	ScopeNight AllowanceScope = "night"
)

// GameSettings holds a user's per-game fees and wage parameters. Exactly
// one row exists per user; it is created lazily with defaults on first
// read.
type GameSettings struct {
	ID     string
	UserID string

	// Game fees and tip units, whole yen.
	YonmaGameFee     int
	SanmaGameFee     int
	SanmaGameFeeBack int
	YonmaTipUnit     int
	SanmaTipUnit     int

	// Wage parameters.
	WageType            WageType
	HourlyWage          int
	FixedSalary         int
	BaseMinWage         int
	NightRateMultiplier decimal.Decimal
	NightHourlyWage     *int
	IncomeTaxRate       decimal.Decimal
	TransportPerShift   int

	// Night window, wall-clock "HH:MM". Equal boundaries disable the
	// window entirely.
	NightStartTime string
	NightEndTime   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultGameSettings returns the settings row created for a user on
// first read. The tax rate matches the statutory withholding rate and
// the multiplier is the statutory 25% night premium.
func DefaultGameSettings(userID string) GameSettings {
	return GameSettings{
		UserID:              userID,
		YonmaGameFee:        0,
		SanmaGameFee:        0,
		SanmaGameFeeBack:    0,
		YonmaTipUnit:        500,
		SanmaTipUnit:        300,
		WageType:            WageTypeHourly,
		HourlyWage:          1100,
		FixedSalary:         0,
		BaseMinWage:         1100,
		NightRateMultiplier: decimal.NewFromFloat(0.25),
		NightHourlyWage:     nil,
		IncomeTaxRate:       decimal.NewFromFloat(0.1021),
		TransportPerShift:   0,
		NightStartTime:      "22:00",
		NightEndTime:        "05:00",
	}
}

// SpecialHourlyWage is an admin-managed allowance tier that a shift may
// reference. Deleting one leaves referencing shifts without an allowance
// rather than failing payroll.
type SpecialHourlyWage struct {
	ID         string
	Label      string
	HourlyWage int
	AppliesTo  AllowanceScope
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
