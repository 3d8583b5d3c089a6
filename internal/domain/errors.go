package domain

import "errors"

var (
	// ErrRosterNotFound is returned by repositories when no roster has the requested ID.
	ErrRosterNotFound = errors.New("roster not found")

	// ErrTooManyWorkers is returned when a roster holds more than MaxWorkers rows.
	ErrTooManyWorkers = errors.New("too many workers in roster")

	// ErrEmptyRoster is returned when saving or exporting a roster without workers.
	ErrEmptyRoster = errors.New("roster has no workers")

	// ErrNeedsUnicodeFont is returned when payslip text cannot be drawn with
	// the built-in PDF font.
	ErrNeedsUnicodeFont = errors.New("text needs a UTF-8 font (set PDF_FONT)")
)
