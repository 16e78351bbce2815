package shift

import "errors"

var (
	ErrShiftNotFound = errors.New("shift not found")
	ErrBoardLocked   = errors.New("the shift board for this date is locked")
)
