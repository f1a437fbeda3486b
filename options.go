package chemref

import (
	"github.com/qcforge/chemref/dataset"
	"github.com/qcforge/chemref/units"
)

type options struct {
	dataset   *dataset.Dataset
	converter units.Converter
	logger    *Logger
}

// Option configures engine construction.
type Option func(*options)

// WithDataset builds the engine over a caller-supplied dataset instead of
// the embedded default. The dataset is validated before any index is built.
func WithDataset(ds *dataset.Dataset) Option {
	return func(o *options) { o.dataset = ds }
}

// WithConverter sets the external unit-conversion collaborator forwarded to
// Constants().ConversionFactor. Without one, conversion requests fail with
// physconst.ErrNoConverter.
func WithConverter(c units.Converter) Option {
	return func(o *options) { o.converter = c }
}

// WithLogger sets the logger used during the build phase.
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
