// Package units defines the external unit-conversion collaborator boundary.
//
// chemref does not implement unit algebra. Conversion factors are obtained
// from a caller-supplied Converter, and conversion failures are surfaced to
// the caller unchanged; there is no retry, caching or fallback.
package units

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Converter computes the multiplicative factor that converts a quantity
// from one unit to another.
//
// Implementations must treat unrecognized or dimensionally incompatible
// unit pairs as errors satisfying errors.As with *ConversionError.
type Converter interface {
	Convert(fromUnit, toUnit string) (decimal.Decimal, error)
}

// ConversionError indicates that the collaborator could not produce a
// conversion factor. It is opaque: chemref propagates it unchanged.
type ConversionError struct {
	FromUnit string
	ToUnit   string
	cause    error
}

// NewConversionError wraps cause as a ConversionError for the given pair.
func NewConversionError(fromUnit, toUnit string, cause error) *ConversionError {
	return &ConversionError{FromUnit: fromUnit, ToUnit: toUnit, cause: cause}
}

func (e *ConversionError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("cannot convert %q to %q", e.FromUnit, e.ToUnit)
	}
	return fmt.Sprintf("cannot convert %q to %q: %v", e.FromUnit, e.ToUnit, e.cause)
}

func (e *ConversionError) Unwrap() error { return e.cause }
