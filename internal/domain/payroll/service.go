package payroll

import "context"

type PayrollService interface {
	// GetSummary derives the salary statement for one user and month.
	GetSummary(ctx context.Context, userID, month string) (SalarySummaryResponse, error)
	UpsertAdvance(ctx context.Context, req UpsertAdvanceRequest) (AdvanceResponse, error)
	// GeneratePayslip renders the month's statement as a PDF and returns
	// the document with its suggested filename.
	GeneratePayslip(ctx context.Context, userID, month string) ([]byte, string, error)
}
