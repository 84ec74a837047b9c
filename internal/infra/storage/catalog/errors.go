package catalog

import "errors"

var (
	// ErrSettingsNotFound returned when the settings row has not been seeded yet
	ErrSettingsNotFound = errors.New("catalog.repository: settings not found")

	// ErrBuildQuery returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery returned when the SQL query fails
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow returned when a result row cannot be scanned
	ErrScanRow = errors.New("catalog.repository: failed to scan row")

	// ErrEncode returned when a JSON column cannot be encoded or decoded
	ErrEncode = errors.New("catalog.repository: failed to encode json column")
)
