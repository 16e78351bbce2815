package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/jansou-app/jansou-backend-go/internal/domain/settings"
	"github.com/jansou-app/jansou-backend-go/internal/domain/shift"
	"github.com/jansou-app/jansou-backend-go/internal/pkg/timeutil"
)

var sixty = decimal.NewFromInt(60)

// ClassifyShift splits one shift into its minute buckets against the
// night window. Stored clocks that fail to parse surface as errors; the
// shift is never silently counted as zero.
func ClassifyShift(s shift.Shift, nightStart, nightEnd int) (Minutes, error) {
	iv, err := s.Interval()
	if err != nil {
		return Minutes{}, err
	}

	breakTotal, err := s.BreakMinutes()
	if err != nil {
		return Minutes{}, err
	}

	night, _ := timeutil.SplitNight(iv, nightStart, nightEnd)
	worked := iv.Minutes() - breakTotal
	if night > worked {
		night = worked
	}

	return Minutes{
		Span:   iv.Minutes(),
		Break:  breakTotal,
		Worked: worked,
		Night:  night,
	}, nil
}

// EffectiveHourly returns the hourly rate after the minimum-wage floor.
func EffectiveHourly(s settings.GameSettings) decimal.Decimal {
	wage := s.HourlyWage
	if s.BaseMinWage > wage {
		wage = s.BaseMinWage
	}
	return decimal.NewFromInt(int64(wage))
}

// ComputeWages derives the month's base wage, night extra and transport
// from the aggregated minutes. FIXED wage types take the flat salary
// without proration; night extra applies on top of either wage type.
// Multiplication happens before the division by sixty to keep precision.
func ComputeWages(workedMinutes, nightMinutes, shiftDays int, s settings.GameSettings) WageBreakdown {
	hourly := EffectiveHourly(s)

	var base decimal.Decimal
	if s.WageType == settings.WageTypeFixed {
		base = decimal.NewFromInt(int64(s.FixedSalary))
	} else {
		base = decimal.NewFromInt(int64(workedMinutes)).Mul(hourly).Div(sixty)
	}

	nightRate := hourly
	if s.NightHourlyWage != nil {
		nightRate = decimal.NewFromInt(int64(*s.NightHourlyWage))
	}
	nightExtra := decimal.NewFromInt(int64(nightMinutes)).
		Mul(nightRate).
		Mul(s.NightRateMultiplier).
		Div(sixty)

	transport := decimal.NewFromInt(int64(s.TransportPerShift)).
		Mul(decimal.NewFromInt(int64(shiftDays)))

	return WageBreakdown{BaseWage: base, NightExtra: nightExtra, Transport: transport}
}

// ResolveAllowance turns one shift's special-wage reference into an
// allowance line. Night-scoped wages pay on the shift's night minutes,
// everything else on the full span. A nil wage (none assigned, or the
// referenced row was deleted) yields a zero line, never an error.
func ResolveAllowance(spanMinutes, nightMinutes int, w *settings.SpecialHourlyWage) AllowanceLine {
	if w == nil {
		return AllowanceLine{
			UnitPrice: decimal.Zero,
			Hours:     decimal.Zero,
			Amount:    decimal.Zero,
		}
	}

	minutes := spanMinutes
	if w.AppliesTo == settings.ScopeNight {
		minutes = nightMinutes
	}

	unit := decimal.NewFromInt(int64(w.HourlyWage))
	hours := decimal.NewFromInt(int64(minutes)).Div(sixty)
	amount := decimal.NewFromInt(int64(minutes)).Mul(unit).Div(sixty)

	return AllowanceLine{
		Label:     w.Label,
		UnitPrice: unit,
		Hours:     hours,
		Amount:    amount,
	}
}

// Aggregate combines the month's components into gross, tax, net and the
// floored payable amount. Gross includes game income; tax applies to the
// whole gross; payable never goes below zero however large the advance.
func Aggregate(w WageBreakdown, allowances []AllowanceLine, gameIncome, taxRate, advance decimal.Decimal) (gross, tax, net, payable decimal.Decimal) {
	allowanceTotal := decimal.Zero
	for _, a := range allowances {
		allowanceTotal = allowanceTotal.Add(a.Amount)
	}

	gross = w.BaseWage.
		Add(w.NightExtra).
		Add(allowanceTotal).
		Add(w.Transport).
		Add(gameIncome)

	tax = gross.Mul(taxRate)
	net = gross.Sub(tax)

	payable = net.Sub(advance)
	if payable.IsNegative() {
		payable = decimal.Zero
	}

	return gross, tax, net, payable
}

// SumAllowances totals the allowance lines.
func SumAllowances(allowances []AllowanceLine) decimal.Decimal {
	total := decimal.Zero
	for _, a := range allowances {
		total = total.Add(a.Amount)
	}
	return total
}
