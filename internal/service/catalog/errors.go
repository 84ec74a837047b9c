package catalog

import "errors"

var (
	// ErrSettingsNotFound returned before the settings are seeded
	ErrSettingsNotFound = errors.New("settings not found")

	// ErrInvalidInput returned for invalid input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal returned on internal service errors
	ErrInternal = errors.New("catalog: internal error")
)
