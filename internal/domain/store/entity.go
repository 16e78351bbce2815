package store

import (
	"time"
)

// Store is a parlor location. Opening and closing times are wall-clock
// "HH:MM" strings; closes past midnight use hours of 24 and above
// ("25:00") so a business day stays contiguous.
type Store struct {
	ID             string
	Name           string
	EarlyOpenTime  string
	EarlyCloseTime string
	LateOpenTime   string
	LateCloseTime  string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
