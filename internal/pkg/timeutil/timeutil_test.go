package timeutil

import (
	"testing"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"midnight", "00:00", 0, false},
		{"morning", "09:30", 570, false},
		{"evening", "22:00", 1320, false},
		{"single digit hour", "9:15", 555, false},
		{"past midnight closing", "25:00", 1500, false},
		{"end of second day", "47:59", 2879, false},
		{"hour out of range", "48:00", 0, true},
		{"minute out of range", "10:60", 0, true},
		{"missing minutes", "10", 0, true},
		{"single digit minutes", "10:5", 0, true},
		{"not a number", "ab:cd", 0, true},
		{"empty", "", 0, true},
		{"negative hour", "-1:00", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClock(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseClock(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseClockAny(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"plain clock", "18:45", 1125, false},
		{"rfc3339 timestamp", "2025-04-12T20:30:00+09:00", 1230, false},
		{"rfc3339 utc", "2025-04-12T05:00:00Z", 300, false},
		{"date only", "2025-04-12", 0, true},
		{"garbage", "later", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClockAny(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClockAny(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseClockAny(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{570, "09:30"},
		{1320, "22:00"},
		{1500, "25:00"},
	}

	for _, tt := range tests {
		if got := FormatClock(tt.minutes); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestSpan(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"same day", "09:00", "17:00", 480},
		{"overnight", "22:00", "05:00", 420},
		{"ends at midnight", "18:00", "00:00", 360},
		{"equal start and end rolls over", "10:00", "10:00", 1440},
		{"one minute before start", "10:00", "09:59", 1439},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := ParseClock(tt.start)
			if err != nil {
				t.Fatal(err)
			}
			end, err := ParseClock(tt.end)
			if err != nil {
				t.Fatal(err)
			}
			if got := Span(start, end); got != tt.want {
				t.Errorf("Span(%s, %s) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	iv := Normalize(1320, 300) // 22:00 -> 05:00
	if iv.Start != 1320 || iv.End != 1740 {
		t.Errorf("Normalize(1320, 300) = %+v, want {1320 1740}", iv)
	}
	if iv.Minutes() != 420 {
		t.Errorf("Minutes() = %d, want 420", iv.Minutes())
	}

	iv = Normalize(540, 1020) // 09:00 -> 17:00
	if iv.Start != 540 || iv.End != 1020 {
		t.Errorf("Normalize(540, 1020) = %+v, want {540 1020}", iv)
	}
}

func TestIntervalCovers(t *testing.T) {
	iv := Normalize(1080, 120) // 18:00 -> 02:00, i.e. [1080, 1560)
	tests := []struct {
		instant int
		want    bool
	}{
		{1080, true},
		{1500, true}, // 25:00 on the store clock
		{1560, false},
		{1079, false},
	}

	for _, tt := range tests {
		if got := iv.Covers(tt.instant); got != tt.want {
			t.Errorf("Covers(%d) = %v, want %v", tt.instant, got, tt.want)
		}
	}
}

func TestSplitNight(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		nightStart string
		nightEnd   string
		wantNight  int
		wantDay    int
	}{
		{
			name:  "overnight shift against 22:00-05:00",
			start: "20:00", end: "06:00",
			nightStart: "22:00", nightEnd: "05:00",
			wantNight: 420, wantDay: 180,
		},
		{
			name:  "day shift entirely outside window",
			start: "09:00", end: "17:00",
			nightStart: "22:00", nightEnd: "05:00",
			wantNight: 0, wantDay: 480,
		},
		{
			name:  "shift fully inside window",
			start: "23:00", end: "04:00",
			nightStart: "22:00", nightEnd: "05:00",
			wantNight: 300, wantDay: 0,
		},
		{
			name:  "early morning tail of the window",
			start: "04:00", end: "12:00",
			nightStart: "22:00", nightEnd: "05:00",
			wantNight: 60, wantDay: 420,
		},
		{
			name:  "window touching only the end",
			start: "18:00", end: "23:00",
			nightStart: "22:00", nightEnd: "05:00",
			wantNight: 60, wantDay: 240,
		},
		{
			name:  "non-wrapping window",
			start: "20:00", end: "04:00",
			nightStart: "00:00", nightEnd: "06:00",
			wantNight: 240, wantDay: 240,
		},
		{
			name:  "disabled window",
			start: "20:00", end: "06:00",
			nightStart: "22:00", nightEnd: "22:00",
			wantNight: 0, wantDay: 600,
		},
		{
			name:  "full day shift sees both window ends",
			start: "10:00", end: "10:00",
			nightStart: "22:00", nightEnd: "05:00",
			wantNight: 420, wantDay: 1020,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _ := ParseClock(tt.start)
			end, _ := ParseClock(tt.end)
			ns, _ := ParseClock(tt.nightStart)
			ne, _ := ParseClock(tt.nightEnd)

			night, day := SplitNight(Normalize(start, end), ns, ne)
			if night != tt.wantNight || day != tt.wantDay {
				t.Errorf("SplitNight(%s-%s, %s-%s) = (%d, %d), want (%d, %d)",
					tt.start, tt.end, tt.nightStart, tt.nightEnd, night, day, tt.wantNight, tt.wantDay)
			}
		})
	}
}

func TestMonthBounds(t *testing.T) {
	from, to, err := MonthBounds("2025-04")
	if err != nil {
		t.Fatal(err)
	}
	if from.Format("2006-01-02") != "2025-04-01" {
		t.Errorf("from = %s, want 2025-04-01", from.Format("2006-01-02"))
	}
	if to.Format("2006-01-02") != "2025-05-01" {
		t.Errorf("to = %s, want 2025-05-01", to.Format("2006-01-02"))
	}

	if _, _, err := MonthBounds("2025/04"); err == nil {
		t.Error("expected error for malformed month")
	}

	// December rolls into the next year.
	from, to, err = MonthBounds("2025-12")
	if err != nil {
		t.Fatal(err)
	}
	if to.Year() != 2026 || to.Month() != 1 {
		t.Errorf("to = %s, want 2026-01-01", to.Format("2006-01-02"))
	}
	_ = from
}
