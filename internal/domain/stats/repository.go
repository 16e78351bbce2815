package stats

import (
	"context"
	"time"

	"github.com/jansou-app/jansou-backend-go/internal/domain/result"
)

type StatsRepository interface {
	// MonthlyRanking aggregates income per user over [from, to), ordered
	// by total income descending then game count descending.
	MonthlyRanking(ctx context.Context, from, to time.Time, gameType *result.GameType) ([]RankingEntry, error)
	// UserPlaceCounts returns per-type, per-place game counts for the
	// user over [from, to), excluding final batch records.
	UserPlaceCounts(ctx context.Context, userID string, from, to time.Time) ([]PlaceCount, error)
	// UserIncomeTotals returns per-type income sums for the user over
	// [from, to), final batch records included.
	UserIncomeTotals(ctx context.Context, userID string, from, to time.Time) ([]IncomeTotal, error)
}
