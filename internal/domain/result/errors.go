package result

import "errors"

var (
	ErrResultNotFound         = errors.New("game result not found")
	ErrFinalRecordImmutable   = errors.New("final records of a simple batch cannot be modified")
	ErrPlaceOutOfRangeForType = errors.New("place is out of range for the game type")
)
