package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jansou-app/jansou-backend-go/internal/domain/settings"
	"github.com/jansou-app/jansou-backend-go/internal/pkg/database"
)

type specialWageRepositoryImpl struct {
	db *database.DB
}

func NewSpecialWageRepository(db *database.DB) settings.SpecialWageRepository {
	return &specialWageRepositoryImpl{db: db}
}

// Create implements settings.SpecialWageRepository.
func (r *specialWageRepositoryImpl) Create(ctx context.Context, w settings.SpecialHourlyWage) (settings.SpecialHourlyWage, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO special_hourly_wages (label, hourly_wage, applies_to)
		VALUES ($1, $2, $3)
		RETURNING id, label, hourly_wage, applies_to, created_at, updated_at
	`

	var created settings.SpecialHourlyWage
	err := q.QueryRow(ctx, query, w.Label, w.HourlyWage, w.AppliesTo).Scan(
		&created.ID,
		&created.Label,
		&created.HourlyWage,
		&created.AppliesTo,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return settings.SpecialHourlyWage{}, err
	}

	return created, nil
}

// GetByID implements settings.SpecialWageRepository.
func (r *specialWageRepositoryImpl) GetByID(ctx context.Context, id string) (settings.SpecialHourlyWage, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, label, hourly_wage, applies_to, created_at, updated_at
		FROM special_hourly_wages
		WHERE id = $1
	`

	var found settings.SpecialHourlyWage
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.Label,
		&found.HourlyWage,
		&found.AppliesTo,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return settings.SpecialHourlyWage{}, settings.ErrSpecialWageNotFound
		}
		return settings.SpecialHourlyWage{}, fmt.Errorf("failed to get special wage: %w", err)
	}

	return found, nil
}

// List implements settings.SpecialWageRepository.
func (r *specialWageRepositoryImpl) List(ctx context.Context) ([]settings.SpecialHourlyWage, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, label, hourly_wage, applies_to, created_at, updated_at
		FROM special_hourly_wages
		ORDER BY label, id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list special wages: %w", err)
	}
	defer rows.Close()

	var wages []settings.SpecialHourlyWage
	for rows.Next() {
		var w settings.SpecialHourlyWage
		if err := rows.Scan(
			&w.ID,
			&w.Label,
			&w.HourlyWage,
			&w.AppliesTo,
			&w.CreatedAt,
			&w.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan special wage: %w", err)
		}
		wages = append(wages, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read special wages: %w", err)
	}

	return wages, nil
}

// Update implements settings.SpecialWageRepository.
func (r *specialWageRepositoryImpl) Update(ctx context.Context, w settings.SpecialHourlyWage) (settings.SpecialHourlyWage, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE special_hourly_wages
		SET label = $1, hourly_wage = $2, applies_to = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id, label, hourly_wage, applies_to, created_at, updated_at
	`

	var updated settings.SpecialHourlyWage
	err := q.QueryRow(ctx, query, w.Label, w.HourlyWage, w.AppliesTo, w.ID).Scan(
		&updated.ID,
		&updated.Label,
		&updated.HourlyWage,
		&updated.AppliesTo,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return settings.SpecialHourlyWage{}, settings.ErrSpecialWageNotFound
		}
		return settings.SpecialHourlyWage{}, err
	}

	return updated, nil
}

// Delete implements settings.SpecialWageRepository. Shifts referencing
// the wage keep working; their reference is nulled by the foreign key.
func (r *specialWageRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM special_hourly_wages WHERE id = $1 RETURNING id`

	var deletedID string
	if err := q.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if err == pgx.ErrNoRows {
			return settings.ErrSpecialWageNotFound
		}
		return fmt.Errorf("failed to delete special wage: %w", err)
	}

	return nil
}
