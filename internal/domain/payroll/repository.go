package payroll

import "context"

type AdvancePaymentRepository interface {
	GetByUserMonth(ctx context.Context, userID, month string) (AdvancePayment, error)
	Upsert(ctx context.Context, advance AdvancePayment) (AdvancePayment, error)
}
