package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jansou-app/jansou-backend-go/internal/domain/settings"
	"github.com/jansou-app/jansou-backend-go/internal/domain/shift"
)

func baseSettings() settings.GameSettings {
	s := settings.DefaultGameSettings("user-1")
	s.HourlyWage = 1200
	s.BaseMinWage = 1100
	s.NightRateMultiplier = decimal.NewFromFloat(0.25)
	s.TransportPerShift = 500
	return s
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func assertDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(mustDecimal(t, want)) {
		t.Errorf("%s = %s, want %s", name, got.String(), want)
	}
}

func TestClassifyShift(t *testing.T) {
	workDate := time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		start, end string
		breaks     []shift.Break
		wantSpan   int
		wantBreak  int
		wantWorked int
		wantNight  int
	}{
		{
			name:  "overnight shift with a wrapping break",
			start: "20:00", end: "06:00",
			breaks: []shift.Break{
				{Position: 0, StartTime: "23:30", EndTime: "00:30"},
			},
			wantSpan: 600, wantBreak: 60, wantWorked: 540, wantNight: 420,
		},
		{
			name:  "day shift sees no night minutes",
			start: "09:00", end: "17:00",
			breaks: []shift.Break{
				{Position: 0, StartTime: "12:00", EndTime: "13:00"},
			},
			wantSpan: 480, wantBreak: 60, wantWorked: 420, wantNight: 0,
		},
		{
			name:  "night minutes are capped at worked minutes",
			start: "22:00", end: "05:00",
			breaks: []shift.Break{
				{Position: 0, StartTime: "23:00", EndTime: "01:00"},
			},
			wantSpan: 420, wantBreak: 120, wantWorked: 300, wantNight: 300,
		},
		{
			name:  "no breaks",
			start: "18:00", end: "02:00",
			wantSpan: 480, wantBreak: 0, wantWorked: 480, wantNight: 240,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := shift.Shift{
				ID:        "shift-1",
				UserID:    "user-1",
				WorkDate:  workDate,
				StartTime: tt.start,
				EndTime:   tt.end,
				Breaks:    tt.breaks,
			}

			m, err := ClassifyShift(s, 1320, 300) // 22:00-05:00
			if err != nil {
				t.Fatal(err)
			}
			if m.Span != tt.wantSpan || m.Break != tt.wantBreak || m.Worked != tt.wantWorked || m.Night != tt.wantNight {
				t.Errorf("ClassifyShift = %+v, want span %d break %d worked %d night %d",
					m, tt.wantSpan, tt.wantBreak, tt.wantWorked, tt.wantNight)
			}
		})
	}
}

func TestClassifyShiftRejectsBadClocks(t *testing.T) {
	s := shift.Shift{
		ID:        "shift-1",
		StartTime: "aa:bb",
		EndTime:   "06:00",
	}
	if _, err := ClassifyShift(s, 1320, 300); err == nil {
		t.Fatal("expected error for unparseable start time")
	}

	s = shift.Shift{
		ID:        "shift-2",
		StartTime: "20:00",
		EndTime:   "06:00",
		Breaks:    []shift.Break{{Position: 0, StartTime: "23:00", EndTime: "bad"}},
	}
	if _, err := ClassifyShift(s, 1320, 300); err == nil {
		t.Fatal("expected error for unparseable break time")
	}
}

func TestComputeWagesHourly(t *testing.T) {
	s := baseSettings()

	w := ComputeWages(600, 420, 3, s)

	// 600 worked minutes at 1200/h, 420 night minutes at a 0.25 premium,
	// three shift days of transport.
	assertDecimal(t, "BaseWage", w.BaseWage, "12000")
	assertDecimal(t, "NightExtra", w.NightExtra, "2100")
	assertDecimal(t, "Transport", w.Transport, "1500")
}

func TestComputeWagesMinimumFloor(t *testing.T) {
	s := baseSettings()
	s.HourlyWage = 1000
	s.BaseMinWage = 1100

	w := ComputeWages(60, 0, 1, s)

	assertDecimal(t, "BaseWage", w.BaseWage, "1100")
}

func TestComputeWagesFixed(t *testing.T) {
	s := baseSettings()
	s.WageType = settings.WageTypeFixed
	s.FixedSalary = 200000

	w := ComputeWages(600, 120, 5, s)

	// Flat salary regardless of worked minutes; night extra still applies.
	assertDecimal(t, "BaseWage", w.BaseWage, "200000")
	assertDecimal(t, "NightExtra", w.NightExtra, "600") // 2h x 1200 x 0.25
	assertDecimal(t, "Transport", w.Transport, "2500")
}

func TestComputeWagesDistinctNightRate(t *testing.T) {
	s := baseSettings()
	nightWage := 1500
	s.NightHourlyWage = &nightWage

	w := ComputeWages(60, 60, 1, s)

	assertDecimal(t, "BaseWage", w.BaseWage, "1200")
	assertDecimal(t, "NightExtra", w.NightExtra, "375") // 1h x 1500 x 0.25
}

func TestResolveAllowance(t *testing.T) {
	allWage := settings.SpecialHourlyWage{
		ID: "w-1", Label: "Event duty", HourlyWage: 400, AppliesTo: settings.ScopeAll,
	}
	nightWage := settings.SpecialHourlyWage{
		ID: "w-2", Label: "Deep night", HourlyWage: 400, AppliesTo: settings.ScopeNight,
	}

	line := ResolveAllowance(600, 420, &allWage)
	if line.Label != "Event duty" {
		t.Errorf("label = %q", line.Label)
	}
	assertDecimal(t, "Hours", line.Hours, "10")
	assertDecimal(t, "Amount", line.Amount, "4000")

	line = ResolveAllowance(600, 420, &nightWage)
	assertDecimal(t, "Hours", line.Hours, "7")
	assertDecimal(t, "Amount", line.Amount, "2800")
}

func TestResolveAllowanceNilWage(t *testing.T) {
	line := ResolveAllowance(600, 420, nil)

	if line.Label != "" {
		t.Errorf("label = %q, want empty", line.Label)
	}
	assertDecimal(t, "Amount", line.Amount, "0")
	assertDecimal(t, "Hours", line.Hours, "0")
}

func TestAggregate(t *testing.T) {
	w := WageBreakdown{
		BaseWage:   decimal.NewFromInt(12000),
		NightExtra: decimal.NewFromInt(2100),
		Transport:  decimal.NewFromInt(1500),
	}
	allowances := []AllowanceLine{
		{Label: "Event duty", Amount: decimal.NewFromInt(3500)},
	}
	gameIncome := decimal.NewFromInt(5000)
	taxRate := decimal.NewFromFloat(0.1021)
	advance := decimal.NewFromInt(10000)

	gross, tax, net, payable := Aggregate(w, allowances, gameIncome, taxRate, advance)

	assertDecimal(t, "gross", gross, "24100")
	assertDecimal(t, "tax", tax, "2460.61")
	assertDecimal(t, "net", net, "21639.39")
	assertDecimal(t, "payable", payable, "11639.39")
}

func TestAggregatePayableFloorsAtZero(t *testing.T) {
	w := WageBreakdown{
		BaseWage:   decimal.NewFromInt(10000),
		NightExtra: decimal.Zero,
		Transport:  decimal.Zero,
	}

	_, _, net, payable := Aggregate(w, nil, decimal.Zero, decimal.Zero, decimal.NewFromInt(30000))

	assertDecimal(t, "net", net, "10000")
	assertDecimal(t, "payable", payable, "0")
}

func TestAggregateNegativeGameMonth(t *testing.T) {
	w := WageBreakdown{
		BaseWage:   decimal.NewFromInt(10000),
		NightExtra: decimal.Zero,
		Transport:  decimal.Zero,
	}

	// Game losses larger than the wage pull gross negative; payable
	// floors at zero.
	gross, _, _, payable := Aggregate(w, nil, decimal.NewFromInt(-15000), decimal.Zero, decimal.Zero)

	assertDecimal(t, "gross", gross, "-5000")
	assertDecimal(t, "payable", payable, "0")
}

func TestYenRounding(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"21639.39", 21639},
		{"2460.61", 2461},
		{"0.5", 1},
		{"-0.5", -1},
		{"-2460.4", -2460},
	}

	for _, tt := range tests {
		d := decimal.RequireFromString(tt.in)
		if got := Yen(d); got != tt.want {
			t.Errorf("Yen(%s) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
