package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jansou-app/jansou-backend-go/internal/domain/result"
	"github.com/jansou-app/jansou-backend-go/internal/domain/stats"
	"github.com/jansou-app/jansou-backend-go/internal/pkg/database"
)

type statsRepositoryImpl struct {
	db *database.DB
}

func NewStatsRepository(db *database.DB) stats.StatsRepository {
	return &statsRepositoryImpl{db: db}
}

// MonthlyRanking implements stats.StatsRepository. Final batch records
// count toward income but not toward the number of games.
func (r *statsRepositoryImpl) MonthlyRanking(ctx context.Context, from, to time.Time, gameType *result.GameType) ([]stats.RankingEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT g.user_id, u.display_name,
			   COUNT(*) FILTER (WHERE NOT g.is_final_record) AS game_count,
			   COALESCE(SUM(g.total_income), 0) AS total_income
		FROM game_results g
		JOIN users u ON g.user_id = u.id
		WHERE g.played_at >= $1 AND g.played_at < $2`
	args := []interface{}{from, to}

	if gameType != nil {
		query += ` AND g.game_type = $3`
		args = append(args, *gameType)
	}
	query += `
		GROUP BY g.user_id, u.display_name
		ORDER BY total_income DESC, game_count DESC, u.display_name, g.user_id`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ranking: %w", err)
	}
	defer rows.Close()

	var entries []stats.RankingEntry
	for rows.Next() {
		var e stats.RankingEntry
		if err := rows.Scan(&e.UserID, &e.DisplayName, &e.GameCount, &e.TotalIncome); err != nil {
			return nil, fmt.Errorf("failed to scan ranking entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ranking: %w", err)
	}

	return entries, nil
}

// UserPlaceCounts implements stats.StatsRepository.
func (r *statsRepositoryImpl) UserPlaceCounts(ctx context.Context, userID string, from, to time.Time) ([]stats.PlaceCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT game_type, place, COUNT(*)
		FROM game_results
		WHERE user_id = $1 AND played_at >= $2 AND played_at < $3 AND NOT is_final_record
		GROUP BY game_type, place
		ORDER BY game_type, place
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query place counts: %w", err)
	}
	defer rows.Close()

	var counts []stats.PlaceCount
	for rows.Next() {
		var c stats.PlaceCount
		if err := rows.Scan(&c.GameType, &c.Place, &c.Games); err != nil {
			return nil, fmt.Errorf("failed to scan place count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read place counts: %w", err)
	}

	return counts, nil
}

// UserIncomeTotals implements stats.StatsRepository. Final batch records
// are part of the income side.
func (r *statsRepositoryImpl) UserIncomeTotals(ctx context.Context, userID string, from, to time.Time) ([]stats.IncomeTotal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT game_type, COALESCE(SUM(total_income), 0), COALESCE(SUM(tip_income), 0)
		FROM game_results
		WHERE user_id = $1 AND played_at >= $2 AND played_at < $3
		GROUP BY game_type
		ORDER BY game_type
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query income totals: %w", err)
	}
	defer rows.Close()

	var totals []stats.IncomeTotal
	for rows.Next() {
		var t stats.IncomeTotal
		if err := rows.Scan(&t.GameType, &t.TotalIncome, &t.TipIncome); err != nil {
			return nil, fmt.Errorf("failed to scan income total: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read income totals: %w", err)
	}

	return totals, nil
}
