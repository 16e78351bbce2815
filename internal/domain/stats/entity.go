package stats

import (
	"github.com/jansou-app/jansou-backend-go/internal/domain/result"
)

// RankingEntry is one user's aggregated month in the income ranking.
// Final batch records contribute income but are not counted as games.
type RankingEntry struct {
	UserID      string
	DisplayName string
	GameCount   int
	TotalIncome int64
}

// PlaceCount is the number of games a user finished at one place.
type PlaceCount struct {
	GameType result.GameType
	Place    int
	Games    int
}

// IncomeTotal is a user's monthly income aggregated per game type.
type IncomeTotal struct {
	GameType    result.GameType
	TotalIncome int64
	TipIncome   int64
}
