package chemref

import (
	"errors"

	"github.com/qcforge/chemref/alias"
	"github.com/qcforge/chemref/periodic"
)

// Re-exported error types, so callers matching with errors.As need only
// this package.
type (
	// ErrMalformedIdentifier indicates input that cannot be tokenized at all.
	ErrMalformedIdentifier = alias.ErrMalformedIdentifier
	// ErrUnknownIdentifier indicates a well-formed alias matching no record.
	ErrUnknownIdentifier = alias.ErrUnknownIdentifier
	// ErrAmbiguousIsotope indicates an element-level alias used where a
	// specific isotope is required.
	ErrAmbiguousIsotope = periodic.ErrAmbiguousIsotope
)

// IsMalformed reports whether err is a malformed-identifier failure.
func IsMalformed(err error) bool {
	var e *ErrMalformedIdentifier
	return errors.As(err, &e)
}

// IsUnknown reports whether err is an unknown-identifier failure.
func IsUnknown(err error) bool {
	var e *ErrUnknownIdentifier
	return errors.As(err, &e)
}

// IsAmbiguousIsotope reports whether err is an ambiguous-isotope failure.
func IsAmbiguousIsotope(err error) bool {
	var e *ErrAmbiguousIsotope
	return errors.As(err, &e)
}
