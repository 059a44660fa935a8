package dice

import "errors"

var (
	// ErrInvalidFormat is returned for an unknown report format name.
	ErrInvalidFormat = errors.New("invalid report format")

	// ErrWriteReport is returned when a report cannot be written.
	ErrWriteReport = errors.New("failed to write report")
)
