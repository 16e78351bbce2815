package board

import "time"

// DefaultRequirement returns the staffing numbers used when no override
// row exists for a date: busier Fridays and weekends, lighter weekdays.
// Values are (staff at opening, staff at closing).
func DefaultRequirement(weekday time.Weekday, shiftType ShiftType) (requiredStart, requiredEnd int) {
	weekend := weekday == time.Saturday || weekday == time.Sunday
	friday := weekday == time.Friday

	if shiftType == ShiftTypeEarly {
		switch {
		case friday:
			return 3, 4
		case weekend:
			return 3, 3
		default:
			return 2, 3
		}
	}

	switch {
	case friday:
		return 4, 3
	case weekend:
		return 4, 2
	default:
		return 3, 2
	}
}
