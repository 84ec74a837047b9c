package scheduling

import "errors"

var (
	// ErrInvalidBusinessHours open time is not before close time
	ErrInvalidBusinessHours = errors.New("scheduling: opening time must be before closing time")

	// ErrInvalidInterval slot interval is not positive
	ErrInvalidInterval = errors.New("scheduling: slot interval must be positive")

	// ErrInvalidDuration duration is not a positive multiple of the slot interval
	ErrInvalidDuration = errors.New("scheduling: duration must be a positive multiple of the slot interval")

	// ErrExceedsClosingTime the requested run ends after the last slot of the day
	ErrExceedsClosingTime = errors.New("scheduling: booking would extend past closing time")

	// ErrInvalidClock time of day cannot be parsed
	ErrInvalidClock = errors.New("scheduling: invalid time of day")

	// ErrInvalidSlotLabel slot label cannot be parsed
	ErrInvalidSlotLabel = errors.New("scheduling: invalid slot label")

	// ErrInvalidCapacity configured capacity is not positive
	ErrInvalidCapacity = errors.New("scheduling: capacity must be positive")
)
