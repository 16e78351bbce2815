package settings

import "errors"

var (
	ErrSettingsNotFound       = errors.New("game settings not found")
	ErrSpecialWageNotFound    = errors.New("special hourly wage not found")
	ErrSpecialWageLabelExists = errors.New("special hourly wage with this label already exists")
)
