package pricing

import "errors"

var (
	// ErrUnknownGameType returned for a game type without a configured rate
	ErrUnknownGameType = errors.New("pricing: unknown game type")

	// ErrInvalidDuration returned for a non-positive duration
	ErrInvalidDuration = errors.New("pricing: duration must be positive")

	// ErrInvalidNumPeople returned when the number of people is below one
	ErrInvalidNumPeople = errors.New("pricing: number of people must be at least 1")
)
