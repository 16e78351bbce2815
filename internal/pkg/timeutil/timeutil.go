// Package timeutil handles the parlor's clock arithmetic. Shifts and store
// hours are stored as "HH:MM" wall-clock strings; because business days run
// past midnight, all calculations happen in minutes on a 48-hour timeline
// anchored at the work date's midnight.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay is the length of one calendar day in minutes.
const MinutesPerDay = 24 * 60

// ParseClock converts an "HH:MM" string to minutes since midnight. Hours up
// to 47 are accepted so closing times past midnight ("25:00") keep the same
// representation as regular clock times.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || len(parts[0]) == 0 || len(parts[0]) > 2 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}

	if hour < 0 || hour >= 48 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}

	return hour*60 + minute, nil
}

// ParseClockAny accepts either an "HH:MM" clock string or an RFC 3339
// timestamp and returns minutes since midnight. Timestamps only contribute
// their wall-clock component; the date part is carried separately.
func ParseClockAny(s string) (int, error) {
	if m, err := ParseClock(s); err == nil {
		return m, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM or RFC 3339", s)
	}

	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight as a zero-padded "HH:MM"
// string. Values past 1439 render with hours of 24 and above.
func FormatClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Span returns the duration in minutes from start to end, both given as
// minutes since midnight. When the difference is zero or negative the end
// is taken to be on the following day, so "22:00"→"05:00" yields 420.
func Span(start, end int) int {
	d := end - start
	if d <= 0 {
		d += MinutesPerDay
	}
	return d
}

// Interval is a half-open [Start, End) range of minutes on the 48-hour
// timeline. Start always lies within the first day; End may run into the
// second.
type Interval struct {
	Start int
	End   int
}

// Normalize places a clock pair on the 48-hour timeline. The start keeps
// its raw minutes and the end is pushed past midnight whenever it does not
// strictly follow the start.
func Normalize(startClock, endClock int) Interval {
	return Interval{Start: startClock, End: startClock + Span(startClock, endClock)}
}

// Minutes returns the interval length.
func (iv Interval) Minutes() int {
	return iv.End - iv.Start
}

// Covers reports whether an instant on the same timeline falls inside the
// interval.
func (iv Interval) Covers(instant int) bool {
	return instant >= iv.Start && instant < iv.End
}

// Overlap returns the number of minutes shared by two intervals.
func Overlap(a, b Interval) int {
	lo := a.Start
	if b.Start > lo {
		lo = b.Start
	}
	hi := a.End
	if b.End < hi {
		hi = b.End
	}
	if hi <= lo {
		return 0
	}
	return hi - lo
}

// NightOverlap reports how many minutes of iv fall inside the recurring
// night window [nightStart, nightEnd). The window is instanced on the
// previous, the current and the next day so intervals crossing midnight
// intersect every occurrence they touch. Equal boundaries mean the window
// is disabled.
func NightOverlap(iv Interval, nightStart, nightEnd int) int {
	if nightStart == nightEnd {
		return 0
	}

	span := Span(nightStart, nightEnd)
	total := 0
	for day := -1; day <= 1; day++ {
		window := Interval{
			Start: nightStart + day*MinutesPerDay,
			End:   nightStart + span + day*MinutesPerDay,
		}
		total += Overlap(iv, window)
	}
	return total
}

// SplitNight divides an interval into its night and day portions against
// the configured window.
func SplitNight(iv Interval, nightStart, nightEnd int) (night, day int) {
	night = NightOverlap(iv, nightStart, nightEnd)
	return night, iv.Minutes() - night
}

// MonthBounds returns the first day of the given month and the first day of
// the next month, both at midnight local time, for use as a half-open query
// range. The month must be formatted as "2006-01".
func MonthBounds(month string) (time.Time, time.Time, error) {
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q: expected YYYY-MM", month)
	}
	return first, first.AddDate(0, 1, 0), nil
}
