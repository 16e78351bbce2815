package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jansou-app/jansou-backend-go/internal/domain/payroll"
	"github.com/jansou-app/jansou-backend-go/internal/pkg/database"
)

type advancePaymentRepositoryImpl struct {
	db *database.DB
}

func NewAdvancePaymentRepository(db *database.DB) payroll.AdvancePaymentRepository {
	return &advancePaymentRepositoryImpl{db: db}
}

// GetByUserMonth implements payroll.AdvancePaymentRepository.
func (r *advancePaymentRepositoryImpl) GetByUserMonth(ctx context.Context, userID, month string) (payroll.AdvancePayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, month, amount, created_at, updated_at
		FROM advance_payments
		WHERE user_id = $1 AND month = $2
	`

	var found payroll.AdvancePayment
	err := q.QueryRow(ctx, query, userID, month).Scan(
		&found.ID,
		&found.UserID,
		&found.Month,
		&found.Amount,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.AdvancePayment{}, payroll.ErrAdvanceNotFound
		}
		return payroll.AdvancePayment{}, fmt.Errorf("failed to get advance payment: %w", err)
	}

	return found, nil
}

// Upsert implements payroll.AdvancePaymentRepository. One row per user
// and month; repeated saves overwrite the amount.
func (r *advancePaymentRepositoryImpl) Upsert(ctx context.Context, advance payroll.AdvancePayment) (payroll.AdvancePayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO advance_payments (user_id, month, amount)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, month) DO UPDATE SET
			amount = EXCLUDED.amount,
			updated_at = NOW()
		RETURNING id, user_id, month, amount, created_at, updated_at
	`

	var saved payroll.AdvancePayment
	err := q.QueryRow(ctx, query, advance.UserID, advance.Month, advance.Amount).Scan(
		&saved.ID,
		&saved.UserID,
		&saved.Month,
		&saved.Amount,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if err != nil {
		return payroll.AdvancePayment{}, fmt.Errorf("failed to upsert advance payment: %w", err)
	}

	return saved, nil
}
