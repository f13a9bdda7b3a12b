package pages

import "errors"

var (
	// ErrOutOfRange is returned when an index-based operation targets a
	// product tile or table row that does not exist.
	ErrOutOfRange = errors.New("index out of range")

	// ErrConsentNotClosed is returned when the privacy dialog was accepted
	// but stayed visible.
	ErrConsentNotClosed = errors.New("privacy consent dialog did not close")
)
