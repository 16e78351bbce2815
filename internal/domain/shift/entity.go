package shift

import (
	"fmt"
	"time"

	"github.com/jansou-app/jansou-backend-go/internal/pkg/timeutil"
)

// Shift is one staff work entry. Start and end are wall-clock "HH:MM"
// strings; an end at or before the start means the shift runs into the
// next day.
type Shift struct {
	ID                  string
	UserID              string
	WorkDate            time.Time
	StartTime           string
	EndTime             string
	Memo                string
	SpecialHourlyWageID *string
	Breaks              []Break
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Break is an unpaid pause inside a shift. Positions keep entry order;
// a break may itself wrap past midnight.
type Break struct {
	ID        string
	ShiftID   string
	Position  int
	StartTime string
	EndTime   string
}

// Interval places the shift on the 48-hour timeline of its work date.
func (s *Shift) Interval() (timeutil.Interval, error) {
	start, err := timeutil.ParseClock(s.StartTime)
	if err != nil {
		return timeutil.Interval{}, fmt.Errorf("shift %s: %w", s.ID, err)
	}
	end, err := timeutil.ParseClock(s.EndTime)
	if err != nil {
		return timeutil.Interval{}, fmt.Errorf("shift %s: %w", s.ID, err)
	}
	return timeutil.Normalize(start, end), nil
}

// BreakMinutes sums the durations of the shift's breaks.
func (s *Shift) BreakMinutes() (int, error) {
	total := 0
	for _, b := range s.Breaks {
		start, err := timeutil.ParseClock(b.StartTime)
		if err != nil {
			return 0, fmt.Errorf("shift %s break %d: %w", s.ID, b.Position, err)
		}
		end, err := timeutil.ParseClock(b.EndTime)
		if err != nil {
			return 0, fmt.Errorf("shift %s break %d: %w", s.ID, b.Position, err)
		}
		total += timeutil.Span(start, end)
	}
	return total, nil
}

// StaffShift is a shift joined with the staff member it belongs to, used
// by the shift board.
type StaffShift struct {
	Shift
	UserName string
}
