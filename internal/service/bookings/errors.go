package bookings

import "errors"

var (
	// ErrBookingNotFound returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotCancel returned when the booking is already cancelled or completed
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrTooLateToCancel returned when the slot starts within the cancellation notice
	ErrTooLateToCancel = errors.New("too late to cancel booking")

	// ErrInvalidStatus returned for an unknown booking status
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidInput returned for invalid input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
