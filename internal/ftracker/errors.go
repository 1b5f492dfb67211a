package ftracker

import "errors"

var (
	// ErrNotImplemented is returned when calories are requested from a Base record.
	ErrNotImplemented = errors.New("spent calories are not implemented for base training")
	// ErrUnknownTraining indicates an unsupported training code.
	ErrUnknownTraining = errors.New("unknown training type")
	// ErrMalformedPackage indicates a package whose value count does not match the training kind.
	ErrMalformedPackage = errors.New("malformed sensor package")
	// ErrInvalidDuration indicates a zero or negative duration.
	ErrInvalidDuration = errors.New("duration must be positive")
	// ErrInvalidHeight indicates a zero height.
	ErrInvalidHeight = errors.New("height must be non-zero")
	// ErrNonFiniteResult indicates a summary value that overflowed to Inf or NaN.
	ErrNonFiniteResult = errors.New("training result is not a finite number")
)
