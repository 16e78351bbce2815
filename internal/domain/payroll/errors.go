package payroll

import "errors"

var (
	ErrAdvanceNotFound = errors.New("advance payment not found")
	ErrInvalidMonth    = errors.New("invalid payroll month")
)
