package physconst

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/qcforge/chemref/alias"
	"github.com/qcforge/chemref/dataset"
	"github.com/qcforge/chemref/model"
	"github.com/qcforge/chemref/units"
)

// Constants resolves physical-constant labels to canonical records.
type Constants struct {
	// idx maps normalized keys to the record's label, which serves as the
	// canonical identity. Distinct labels folding onto one key are how a
	// defective dataset would produce an ambiguous lookup, and that is
	// exactly what Insert rejects at build time.
	idx     *alias.Index[string]
	records map[string]*model.ConstantRecord
	conv    units.Converter

	// Named holds the attribute-style view, populated during Build.
	Named Named
}

type options struct {
	converter units.Converter
}

// Option configures Build.
type Option func(*options)

// WithConverter sets the external unit-conversion collaborator used by
// ConversionFactor.
func WithConverter(c units.Converter) Option {
	return func(o *options) { o.converter = c }
}

// Build constructs the constants index from the dataset. Two constants
// claiming the same canonical key abort the build with ErrAmbiguousLabel;
// the resolver is never published partially built.
func Build(ds *dataset.Dataset, opts ...Option) (*Constants, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	c := &Constants{
		idx:     alias.NewIndex[string](len(ds.Constants)),
		records: make(map[string]*model.ConstantRecord, len(ds.Constants)),
		conv:    o.converter,
	}
	for i := range ds.Constants {
		rec := &ds.Constants[i]
		if err := c.idx.Insert(alias.Key{Token: rec.Key}, rec.Label); err != nil {
			var dup *alias.ErrDuplicateAlias
			if errors.As(err, &dup) {
				return nil, &ErrAmbiguousLabel{Label: rec.Label}
			}
			return nil, err
		}
		c.records[rec.Label] = rec
	}
	c.Named = bakeNamed(c)
	return c, nil
}

// GetRecord resolves a label to the full constant record: label, exact
// decimal value, unit string and uncertainty comment.
func (c *Constants) GetRecord(label string) (*model.ConstantRecord, error) {
	key, err := alias.NormalizeLabel(label)
	if err != nil {
		return nil, err
	}
	canonical, ok := c.idx.Lookup(alias.Key{Token: key})
	if !ok {
		return nil, &alias.ErrUnknownIdentifier{Alias: label}
	}
	return c.records[canonical], nil
}

// Get resolves a label to the constant's nearest-float64 value. The float
// was derived from the exact decimal at load time.
func (c *Constants) Get(label string) (float64, error) {
	rec, err := c.GetRecord(label)
	if err != nil {
		return 0, err
	}
	return rec.ValueFloat, nil
}

// GetDecimal resolves a label to the constant's exact decimal value.
func (c *Constants) GetDecimal(label string) (decimal.Decimal, error) {
	rec, err := c.GetRecord(label)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return rec.Value, nil
}

var errEmptyUnit = errors.New("empty unit string")

// ConversionFactor returns the factor converting from one unit string to
// another. It is not resolved from the constants dataset: beyond checking
// that both unit strings are non-empty, the pair is forwarded unmodified to
// the configured units.Converter, and its result or error is propagated
// unchanged. No caching, no retry.
func (c *Constants) ConversionFactor(fromUnit, toUnit string) (decimal.Decimal, error) {
	if fromUnit == "" || toUnit == "" {
		return decimal.Decimal{}, units.NewConversionError(fromUnit, toUnit, errEmptyUnit)
	}
	if c.conv == nil {
		return decimal.Decimal{}, ErrNoConverter
	}
	return c.conv.Convert(fromUnit, toUnit)
}

// Len returns the number of constants in the resolver.
func (c *Constants) Len() int { return len(c.records) }
