package board

import (
	"testing"
	"time"
)

func TestDefaultRequirement(t *testing.T) {
	tests := []struct {
		weekday   time.Weekday
		shiftType ShiftType
		wantStart int
		wantEnd   int
	}{
		{time.Monday, ShiftTypeEarly, 2, 3},
		{time.Thursday, ShiftTypeEarly, 2, 3},
		{time.Friday, ShiftTypeEarly, 3, 4},
		{time.Saturday, ShiftTypeEarly, 3, 3},
		{time.Sunday, ShiftTypeEarly, 3, 3},
		{time.Monday, ShiftTypeLate, 3, 2},
		{time.Thursday, ShiftTypeLate, 3, 2},
		{time.Friday, ShiftTypeLate, 4, 3},
		{time.Saturday, ShiftTypeLate, 4, 2},
		{time.Sunday, ShiftTypeLate, 4, 2},
	}

	for _, tt := range tests {
		start, end := DefaultRequirement(tt.weekday, tt.shiftType)
		if start != tt.wantStart || end != tt.wantEnd {
			t.Errorf("DefaultRequirement(%s, %s) = (%d, %d), want (%d, %d)",
				tt.weekday, tt.shiftType, start, end, tt.wantStart, tt.wantEnd)
		}
	}
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name       string
		required   int
		actual     int
		wantDiff   int
		wantStatus DiffStatus
	}{
		{"two extra", 3, 5, 2, StatusOver},
		{"two short", 5, 3, -2, StatusShort},
		{"exact", 3, 3, 0, StatusEven},
		{"nobody scheduled", 2, 0, -2, StatusShort},
		{"zero required", 0, 1, 1, StatusOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff, status := Diff(tt.required, tt.actual)
			if diff != tt.wantDiff || status != tt.wantStatus {
				t.Errorf("Diff(%d, %d) = (%d, %s), want (%d, %s)",
					tt.required, tt.actual, diff, status, tt.wantDiff, tt.wantStatus)
			}
		})
	}
}
