package board

import "time"

// ShiftType names the two staffed windows of a business day. EARLY
// covers open to evening; LATE runs evening to close, usually past
// midnight.
type ShiftType string

const (
	ShiftTypeEarly ShiftType = "EARLY"
	ShiftTypeLate  ShiftType = "LATE"
)

// DiffStatus classifies actual staffing against the requirement.
type DiffStatus string

const (
	StatusEven  DiffStatus = "even"
	StatusOver  DiffStatus = "over"
	StatusShort DiffStatus = "short"
)

// ShiftRequirement overrides the default staffing numbers for one store,
// date and shift type. Editable false locks the cell: the numbers freeze
// and staff shift mutations for that store and date are refused.
type ShiftRequirement struct {
	ID            string
	StoreID       string
	WorkDate      time.Time
	ShiftType     ShiftType
	RequiredStart int
	RequiredEnd   int
	Editable      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
