package get_availability

import "errors"

var (
	// ErrInvalidInput returned for invalid input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDuration returned when the duration is not a positive multiple of the slot interval
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrUnknownGameType returned for a game type missing from configuration
	ErrUnknownGameType = errors.New("unknown game type")

	// ErrInternal returned when bookings cannot be read
	ErrInternal = errors.New("usecase: internal error")
)
