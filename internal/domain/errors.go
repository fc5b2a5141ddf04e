package domain

import "errors"

// Validation and parse failures. Every error is terminal for its query: the
// pipeline stops at the failing stage and reports a single message, never a
// partial report.
var (
	// ErrInvalidFormat means a date string does not match YYYY-MM-DD exactly.
	ErrInvalidFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidDate means a well-formed string is not a real calendar date,
	// e.g. 2024-13-40.
	ErrInvalidDate = errors.New("invalid calendar date")

	// ErrDateRange means the start date is strictly after the end date.
	ErrDateRange = errors.New("start date is after end date")

	// ErrMalformedResponse means the service response could not be decoded as
	// a feature collection, or a feature with a magnitude was missing a
	// required field.
	ErrMalformedResponse = errors.New("malformed response")
)
