// Package errs defines the error kinds returned by the randomizer.
package errs

import "errors"

var (
	// ErrUnsupportedImage is returned when the image header is too short,
	// the title is unknown or the image size does not match the bank layout.
	ErrUnsupportedImage = errors.New("unsupported image")

	// ErrTableNotFound is returned when the locator exhausted its search space.
	ErrTableNotFound = errors.New("table not found")

	// ErrEmptyPool is returned when an operation requires a species but the
	// filtered pool has none.
	ErrEmptyPool = errors.New("empty pool")

	// ErrInvalidConfiguration is returned for inconsistent randomization options.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
