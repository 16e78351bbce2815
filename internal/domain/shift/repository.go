package shift

import (
	"context"
	"time"
)

type ShiftRepository interface {
	Create(ctx context.Context, newShift Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	// ListByUserRange returns the user's shifts with work_date in
	// [from, to), breaks included, ordered by date then start time.
	ListByUserRange(ctx context.Context, userID string, from, to time.Time) ([]Shift, error)
	// ListByStoreRange returns every shift of the store's staff with
	// work_date in [from, to), joined with display names.
	ListByStoreRange(ctx context.Context, storeID string, from, to time.Time) ([]StaffShift, error)
	Update(ctx context.Context, updated Shift) (Shift, error)
	Delete(ctx context.Context, id string) error
}
