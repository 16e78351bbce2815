package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jansou-app/jansou-backend-go/internal/domain/result"
	"github.com/jansou-app/jansou-backend-go/internal/pkg/database"
)

type gameResultRepositoryImpl struct {
	db *database.DB
}

func NewGameResultRepository(db *database.DB) result.GameResultRepository {
	return &gameResultRepositoryImpl{db: db}
}

const gameResultColumns = `
	id, user_id, game_type, played_at, place, base_income, tip_count,
	tip_income, other_income, total_income, store_id, simple_batch_id,
	is_final_record, created_at, updated_at
`

func scanGameResult(row pgx.Row) (result.GameResult, error) {
	var g result.GameResult
	err := row.Scan(
		&g.ID, &g.UserID, &g.GameType, &g.PlayedAt, &g.Place, &g.BaseIncome, &g.TipCount,
		&g.TipIncome, &g.OtherIncome, &g.TotalIncome, &g.StoreID, &g.SimpleBatchID,
		&g.IsFinalRecord, &g.CreatedAt, &g.UpdatedAt,
	)
	return g, err
}

// Create implements result.GameResultRepository.
func (r *gameResultRepositoryImpl) Create(ctx context.Context, g result.GameResult) (result.GameResult, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO game_results (
			user_id, game_type, played_at, place, base_income, tip_count,
			tip_income, other_income, total_income, store_id, simple_batch_id, is_final_record
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + gameResultColumns

	created, err := scanGameResult(q.QueryRow(ctx, query,
		g.UserID, g.GameType, g.PlayedAt, g.Place, g.BaseIncome, g.TipCount,
		g.TipIncome, g.OtherIncome, g.TotalIncome, g.StoreID, g.SimpleBatchID, g.IsFinalRecord,
	))
	if err != nil {
		return result.GameResult{}, fmt.Errorf("failed to create game result: %w", err)
	}

	return created, nil
}

// GetByID implements result.GameResultRepository.
func (r *gameResultRepositoryImpl) GetByID(ctx context.Context, id string) (result.GameResult, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + gameResultColumns + ` FROM game_results WHERE id = $1`

	found, err := scanGameResult(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return result.GameResult{}, result.ErrResultNotFound
		}
		return result.GameResult{}, fmt.Errorf("failed to get game result: %w", err)
	}

	return found, nil
}

// ListByUserRange implements result.GameResultRepository.
func (r *gameResultRepositoryImpl) ListByUserRange(ctx context.Context, userID string, from, to time.Time, gameType *result.GameType) ([]result.GameResult, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + gameResultColumns + `
		FROM game_results
		WHERE user_id = $1 AND played_at >= $2 AND played_at < $3`
	args := []interface{}{userID, from, to}

	if gameType != nil {
		query += ` AND game_type = $4`
		args = append(args, *gameType)
	}
	query += ` ORDER BY played_at DESC, created_at DESC, id`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list game results: %w", err)
	}
	defer rows.Close()

	var results []result.GameResult
	for rows.Next() {
		g, err := scanGameResult(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game result: %w", err)
		}
		results = append(results, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read game results: %w", err)
	}

	return results, nil
}

// CreateBatch implements result.GameResultRepository. Callers wrap it in
// a transaction so a simple batch lands atomically.
func (r *gameResultRepositoryImpl) CreateBatch(ctx context.Context, results []result.GameResult) ([]result.GameResult, error) {
	created := make([]result.GameResult, 0, len(results))
	for _, g := range results {
		saved, err := r.Create(ctx, g)
		if err != nil {
			return nil, err
		}
		created = append(created, saved)
	}
	return created, nil
}

// Update implements result.GameResultRepository. The caller sends the
// fully merged row; batch markers never change after insert.
func (r *gameResultRepositoryImpl) Update(ctx context.Context, g result.GameResult) (result.GameResult, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE game_results
		SET game_type = $1, played_at = $2, place = $3, base_income = $4, tip_count = $5,
			tip_income = $6, other_income = $7, total_income = $8, store_id = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING ` + gameResultColumns

	updated, err := scanGameResult(q.QueryRow(ctx, query,
		g.GameType, g.PlayedAt, g.Place, g.BaseIncome, g.TipCount,
		g.TipIncome, g.OtherIncome, g.TotalIncome, g.StoreID, g.ID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return result.GameResult{}, result.ErrResultNotFound
		}
		return result.GameResult{}, fmt.Errorf("failed to update game result: %w", err)
	}

	return updated, nil
}

// Delete implements result.GameResultRepository.
func (r *gameResultRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM game_results WHERE id = $1 RETURNING id`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if err == pgx.ErrNoRows {
			return result.ErrResultNotFound
		}
		return fmt.Errorf("failed to delete game result: %w", err)
	}

	return nil
}
