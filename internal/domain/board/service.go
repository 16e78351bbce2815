package board

import (
	"context"
	"time"
)

type BoardService interface {
	GetBoard(ctx context.Context, filter BoardFilter) (BoardResponse, error)
	UpsertRequirement(ctx context.Context, req UpsertRequirementRequest) (RequirementResponse, error)
	// ExportBoard renders the month as an XLSX workbook and returns the
	// file with its suggested filename.
	ExportBoard(ctx context.Context, filter BoardFilter) ([]byte, string, error)
	// IsDateLocked reports whether any requirement cell for the store
	// and date is locked, freezing staff shift mutations.
	IsDateLocked(ctx context.Context, storeID string, workDate time.Time) (bool, error)
	// WarnUnderstaffed logs understaffed board cells for the given day
	// across all stores.
	WarnUnderstaffed(ctx context.Context, day time.Time) error
}
