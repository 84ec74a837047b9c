package create_booking

import "errors"

var (
	// ErrUnknownGameType returned for a game type missing from configuration
	ErrUnknownGameType = errors.New("create_booking: unknown game type")

	// ErrInvalidTimeSlot returned when the start slot is not on the lounge grid
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrInvalidDuration returned when the duration is not a positive multiple of the slot interval
	ErrInvalidDuration = errors.New("create_booking: invalid duration")

	// ErrInvalidDate returned for a date or slot in the past
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrExceedsClosingTime returned when the booking would run past closing
	ErrExceedsClosingTime = errors.New("create_booking: booking exceeds closing time")

	// ErrSlotNotAvailable returned when a covered slot is at capacity
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput returned for invalid input data
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal returned on internal use case errors
	ErrInternal = errors.New("create_booking: internal error")
)
