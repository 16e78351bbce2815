package board

import (
	"context"
	"time"
)

type ShiftRequirementRepository interface {
	Upsert(ctx context.Context, req ShiftRequirement) (ShiftRequirement, error)
	GetCell(ctx context.Context, storeID string, workDate time.Time, shiftType ShiftType) (ShiftRequirement, error)
	// ListByStoreRange returns override rows with work_date in [from, to).
	ListByStoreRange(ctx context.Context, storeID string, from, to time.Time) ([]ShiftRequirement, error)
	// ListLockedDates returns the dates in [from, to) with at least one
	// locked cell for the store.
	ListLockedDates(ctx context.Context, storeID string, from, to time.Time) ([]time.Time, error)
}
