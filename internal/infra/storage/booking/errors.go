package booking

import "errors"

var (
	// ErrBookingNotFound returned when no booking matches the lookup
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDuplicateReference returned when the reference number is already taken
	ErrDuplicateReference = errors.New("booking.repository: duplicate reference number")

	// ErrBuildQuery returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery returned when the SQL query fails
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow returned when a result row cannot be scanned
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
