package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jansou-app/jansou-backend-go/internal/domain/shift"
	"github.com/jansou-app/jansou-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

// Create implements shift.ShiftRepository. Callers wrap it in a
// transaction so the shift and its breaks land together.
func (r *shiftRepositoryImpl) Create(ctx context.Context, newShift shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (user_id, work_date, start_time, end_time, memo, special_hourly_wage_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, work_date, start_time, end_time, memo, special_hourly_wage_id, created_at, updated_at
	`

	var created shift.Shift
	err := q.QueryRow(ctx, query,
		newShift.UserID,
		newShift.WorkDate,
		newShift.StartTime,
		newShift.EndTime,
		newShift.Memo,
		newShift.SpecialHourlyWageID,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.WorkDate,
		&created.StartTime,
		&created.EndTime,
		&created.Memo,
		&created.SpecialHourlyWageID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	created.Breaks, err = r.replaceBreaks(ctx, created.ID, newShift.Breaks)
	if err != nil {
		return shift.Shift{}, err
	}

	return created, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, work_date, start_time, end_time, memo, special_hourly_wage_id, created_at, updated_at
		FROM shifts
		WHERE id = $1
	`

	var found shift.Shift
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.UserID,
		&found.WorkDate,
		&found.StartTime,
		&found.EndTime,
		&found.Memo,
		&found.SpecialHourlyWageID,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	breaksByShift, err := r.loadBreaks(ctx, []string{found.ID})
	if err != nil {
		return shift.Shift{}, err
	}
	found.Breaks = breaksByShift[found.ID]

	return found, nil
}

// ListByUserRange implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) ListByUserRange(ctx context.Context, userID string, from, to time.Time) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, work_date, start_time, end_time, memo, special_hourly_wage_id, created_at, updated_at
		FROM shifts
		WHERE user_id = $1 AND work_date >= $2 AND work_date < $3
		ORDER BY work_date, start_time, id
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	var ids []string
	for rows.Next() {
		var s shift.Shift
		if err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.WorkDate,
			&s.StartTime,
			&s.EndTime,
			&s.Memo,
			&s.SpecialHourlyWageID,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read shifts: %w", err)
	}

	if len(shifts) == 0 {
		return shifts, nil
	}

	breaksByShift, err := r.loadBreaks(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range shifts {
		shifts[i].Breaks = breaksByShift[shifts[i].ID]
	}

	return shifts, nil
}

// ListByStoreRange implements shift.ShiftRepository. Breaks are not
// loaded; the board only needs the outer shift times.
func (r *shiftRepositoryImpl) ListByStoreRange(ctx context.Context, storeID string, from, to time.Time) ([]shift.StaffShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.user_id, s.work_date, s.start_time, s.end_time, s.memo, s.special_hourly_wage_id,
			   s.created_at, s.updated_at, u.display_name
		FROM shifts s
		JOIN users u ON s.user_id = u.id
		WHERE u.store_id = $1 AND s.work_date >= $2 AND s.work_date < $3
		ORDER BY s.work_date, s.start_time, u.display_name, s.id
	`

	rows, err := q.Query(ctx, query, storeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list store shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.StaffShift
	for rows.Next() {
		var s shift.StaffShift
		if err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.WorkDate,
			&s.StartTime,
			&s.EndTime,
			&s.Memo,
			&s.SpecialHourlyWageID,
			&s.CreatedAt,
			&s.UpdatedAt,
			&s.UserName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan store shift: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read store shifts: %w", err)
	}

	return shifts, nil
}

// Update implements shift.ShiftRepository. The caller sends the fully
// merged shift; breaks are replaced wholesale.
func (r *shiftRepositoryImpl) Update(ctx context.Context, updated shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET work_date = $1, start_time = $2, end_time = $3, memo = $4, special_hourly_wage_id = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING id, user_id, work_date, start_time, end_time, memo, special_hourly_wage_id, created_at, updated_at
	`

	var saved shift.Shift
	err := q.QueryRow(ctx, query,
		updated.WorkDate,
		updated.StartTime,
		updated.EndTime,
		updated.Memo,
		updated.SpecialHourlyWageID,
		updated.ID,
	).Scan(
		&saved.ID,
		&saved.UserID,
		&saved.WorkDate,
		&saved.StartTime,
		&saved.EndTime,
		&saved.Memo,
		&saved.SpecialHourlyWageID,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to update shift: %w", err)
	}

	saved.Breaks, err = r.replaceBreaks(ctx, saved.ID, updated.Breaks)
	if err != nil {
		return shift.Shift{}, err
	}

	return saved, nil
}

// Delete implements shift.ShiftRepository. Breaks go with the shift via
// the foreign key cascade.
func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM shifts WHERE id = $1 RETURNING id`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if err == pgx.ErrNoRows {
			return shift.ErrShiftNotFound
		}
		return fmt.Errorf("failed to delete shift: %w", err)
	}

	return nil
}

// replaceBreaks rewrites the break rows for a shift and returns them in
// position order.
func (r *shiftRepositoryImpl) replaceBreaks(ctx context.Context, shiftID string, breaks []shift.Break) ([]shift.Break, error) {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM shift_breaks WHERE shift_id = $1`, shiftID); err != nil {
		return nil, fmt.Errorf("failed to clear breaks: %w", err)
	}

	insertQuery := `
		INSERT INTO shift_breaks (shift_id, position, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id, shift_id, position, start_time, end_time
	`

	saved := make([]shift.Break, 0, len(breaks))
	for i, b := range breaks {
		// Zero-based, matching the breaks[i] field names in validation errors.
		var row shift.Break
		err := q.QueryRow(ctx, insertQuery, shiftID, i, b.StartTime, b.EndTime).Scan(
			&row.ID,
			&row.ShiftID,
			&row.Position,
			&row.StartTime,
			&row.EndTime,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert break: %w", err)
		}
		saved = append(saved, row)
	}

	return saved, nil
}

// loadBreaks fetches breaks for the given shifts keyed by shift id.
func (r *shiftRepositoryImpl) loadBreaks(ctx context.Context, shiftIDs []string) (map[string][]shift.Break, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, shift_id, position, start_time, end_time
		FROM shift_breaks
		WHERE shift_id = ANY($1::uuid[])
		ORDER BY shift_id, position
	`

	rows, err := q.Query(ctx, query, shiftIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load breaks: %w", err)
	}
	defer rows.Close()

	breaksByShift := make(map[string][]shift.Break)
	for rows.Next() {
		var b shift.Break
		if err := rows.Scan(
			&b.ID,
			&b.ShiftID,
			&b.Position,
			&b.StartTime,
			&b.EndTime,
		); err != nil {
			return nil, fmt.Errorf("failed to scan break: %w", err)
		}
		breaksByShift[b.ShiftID] = append(breaksByShift[b.ShiftID], b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read breaks: %w", err)
	}

	return breaksByShift, nil
}
