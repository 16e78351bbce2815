package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jansou-app/jansou-backend-go/internal/domain/board"
	"github.com/jansou-app/jansou-backend-go/internal/pkg/database"
)

type shiftRequirementRepositoryImpl struct {
	db *database.DB
}

func NewShiftRequirementRepository(db *database.DB) board.ShiftRequirementRepository {
	return &shiftRequirementRepositoryImpl{db: db}
}

// Upsert implements board.ShiftRequirementRepository. One row per store,
// date and shift type.
func (r *shiftRequirementRepositoryImpl) Upsert(ctx context.Context, req board.ShiftRequirement) (board.ShiftRequirement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_requirements (store_id, work_date, shift_type, required_start, required_end, editable)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (store_id, work_date, shift_type) DO UPDATE SET
			required_start = EXCLUDED.required_start,
			required_end = EXCLUDED.required_end,
			editable = EXCLUDED.editable,
			updated_at = NOW()
		RETURNING id, store_id, work_date, shift_type, required_start, required_end, editable, created_at, updated_at
	`

	var saved board.ShiftRequirement
	err := q.QueryRow(ctx, query,
		req.StoreID,
		req.WorkDate,
		req.ShiftType,
		req.RequiredStart,
		req.RequiredEnd,
		req.Editable,
	).Scan(
		&saved.ID,
		&saved.StoreID,
		&saved.WorkDate,
		&saved.ShiftType,
		&saved.RequiredStart,
		&saved.RequiredEnd,
		&saved.Editable,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if err != nil {
		return board.ShiftRequirement{}, fmt.Errorf("failed to upsert shift requirement: %w", err)
	}

	return saved, nil
}

// GetCell implements board.ShiftRequirementRepository.
func (r *shiftRequirementRepositoryImpl) GetCell(ctx context.Context, storeID string, workDate time.Time, shiftType board.ShiftType) (board.ShiftRequirement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, store_id, work_date, shift_type, required_start, required_end, editable, created_at, updated_at
		FROM shift_requirements
		WHERE store_id = $1 AND work_date = $2 AND shift_type = $3
	`

	var found board.ShiftRequirement
	err := q.QueryRow(ctx, query, storeID, workDate, shiftType).Scan(
		&found.ID,
		&found.StoreID,
		&found.WorkDate,
		&found.ShiftType,
		&found.RequiredStart,
		&found.RequiredEnd,
		&found.Editable,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return board.ShiftRequirement{}, board.ErrRequirementNotFound
		}
		return board.ShiftRequirement{}, fmt.Errorf("failed to get shift requirement: %w", err)
	}

	return found, nil
}

// ListByStoreRange implements board.ShiftRequirementRepository.
func (r *shiftRequirementRepositoryImpl) ListByStoreRange(ctx context.Context, storeID string, from, to time.Time) ([]board.ShiftRequirement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, store_id, work_date, shift_type, required_start, required_end, editable, created_at, updated_at
		FROM shift_requirements
		WHERE store_id = $1 AND work_date >= $2 AND work_date < $3
		ORDER BY work_date, shift_type
	`

	rows, err := q.Query(ctx, query, storeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift requirements: %w", err)
	}
	defer rows.Close()

	var reqs []board.ShiftRequirement
	for rows.Next() {
		var sr board.ShiftRequirement
		if err := rows.Scan(
			&sr.ID,
			&sr.StoreID,
			&sr.WorkDate,
			&sr.ShiftType,
			&sr.RequiredStart,
			&sr.RequiredEnd,
			&sr.Editable,
			&sr.CreatedAt,
			&sr.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift requirement: %w", err)
		}
		reqs = append(reqs, sr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read shift requirements: %w", err)
	}

	return reqs, nil
}

// ListLockedDates implements board.ShiftRequirementRepository.
func (r *shiftRequirementRepositoryImpl) ListLockedDates(ctx context.Context, storeID string, from, to time.Time) ([]time.Time, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT work_date
		FROM shift_requirements
		WHERE store_id = $1 AND work_date >= $2 AND work_date < $3 AND editable = FALSE
		ORDER BY work_date
	`

	rows, err := q.Query(ctx, query, storeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list locked dates: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan locked date: %w", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read locked dates: %w", err)
	}

	return dates, nil
}
