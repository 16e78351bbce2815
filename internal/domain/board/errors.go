package board

import "errors"

var (
	ErrRequirementNotFound = errors.New("shift requirement not found")
	ErrCellLocked          = errors.New("requirement cell is locked")
)
