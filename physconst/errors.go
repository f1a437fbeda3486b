package physconst

import (
	"errors"
	"fmt"
)

// ErrNoConverter is returned by ConversionFactor when no units.Converter
// collaborator was configured.
var ErrNoConverter = errors.New("no unit converter configured")

// ErrAmbiguousLabel indicates that a label matched more than one constant.
// The build-time uniqueness check makes this unreachable for datasets that
// passed validation; it exists so a future dataset defect surfaces loudly
// instead of silently picking one record.
type ErrAmbiguousLabel struct {
	Label string
}

func (e *ErrAmbiguousLabel) Error() string {
	return fmt.Sprintf("label %q matches more than one constant", e.Label)
}
