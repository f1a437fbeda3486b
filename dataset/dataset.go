package dataset

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/qcforge/chemref/alias"
	"github.com/qcforge/chemref/codec"
	"github.com/qcforge/chemref/model"
)

// ErrIntegrity is wrapped by all load-time data-integrity failures.
// An engine must never become queryable over a dataset that failed
// validation.
var ErrIntegrity = errors.New("dataset integrity violation")

// Dataset is the immutable collection of canonical records.
type Dataset struct {
	Elements  []model.ElementRecord
	Constants []model.ConstantRecord
}

// wire types for the JSON representation. Values are strings so that no
// precision is lost before decimal parsing.
type datasetJSON struct {
	Elements  []elementJSON  `json:"elements"`
	Constants []constantJSON `json:"constants"`
}

type elementJSON struct {
	Z        int           `json:"z"`
	Symbol   string        `json:"symbol"`
	Name     string        `json:"name"`
	Weight   string        `json:"weight"`
	Isotopes []isotopeJSON `json:"isotopes,omitempty"`
}

type isotopeJSON struct {
	A         int      `json:"a"`
	Mass      string   `json:"mass"`
	Abundance *float64 `json:"abundance,omitempty"`
	Names     []string `json:"names,omitempty"`
}

type constantJSON struct {
	Label   string `json:"label"`
	Value   string `json:"value"`
	Unit    string `json:"unit,omitempty"`
	Comment string `json:"comment,omitempty"`
}

// Load decodes an encoded dataset, hydrates the exact decimals and derived
// floats, and validates it.
func Load(data []byte, c codec.Codec) (*Dataset, error) {
	if c == nil {
		c = codec.Default
	}
	var wire datasetJSON
	if err := c.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return fromWire(&wire)
}

func fromWire(wire *datasetJSON) (*Dataset, error) {
	ds := &Dataset{
		Elements:  make([]model.ElementRecord, 0, len(wire.Elements)),
		Constants: make([]model.ConstantRecord, 0, len(wire.Constants)),
	}

	for _, e := range wire.Elements {
		weight, err := decimal.NewFromString(e.Weight)
		if err != nil {
			return nil, fmt.Errorf("element %s: bad weight literal %q: %w", e.Symbol, e.Weight, err)
		}
		rec := model.ElementRecord{
			Z:             e.Z,
			Symbol:        e.Symbol,
			Name:          e.Name,
			WeightLiteral: e.Weight,
			Weight:        weight,
			WeightFloat:   weight.InexactFloat64(),
			Isotopes:      make([]model.IsotopeRecord, 0, len(e.Isotopes)),
		}
		for _, iso := range e.Isotopes {
			mass, err := decimal.NewFromString(iso.Mass)
			if err != nil {
				return nil, fmt.Errorf("isotope %s-%d: bad mass literal %q: %w", e.Symbol, iso.A, iso.Mass, err)
			}
			abundance := -1.0
			if iso.Abundance != nil {
				abundance = *iso.Abundance
			}
			rec.Isotopes = append(rec.Isotopes, model.IsotopeRecord{
				A:           iso.A,
				MassLiteral: iso.Mass,
				Mass:        mass,
				MassFloat:   mass.InexactFloat64(),
				Abundance:   abundance,
				Names:       iso.Names,
			})
		}
		sort.Slice(rec.Isotopes, func(i, j int) bool { return rec.Isotopes[i].A < rec.Isotopes[j].A })
		ds.Elements = append(ds.Elements, rec)
	}

	for _, c := range wire.Constants {
		key, err := alias.NormalizeLabel(c.Label)
		if err != nil {
			return nil, fmt.Errorf("constant with empty label: %w", err)
		}
		value, err := decimal.NewFromString(c.Value)
		if err != nil {
			return nil, fmt.Errorf("constant %q: bad value literal %q: %w", c.Label, c.Value, err)
		}
		ds.Constants = append(ds.Constants, model.ConstantRecord{
			Label:        c.Label,
			Key:          key,
			ValueLiteral: c.Value,
			Value:        value,
			ValueFloat:   value.InexactFloat64(),
			Unit:         c.Unit,
			Comment:      c.Comment,
		})
	}

	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

func toWire(ds *Dataset) *datasetJSON {
	wire := &datasetJSON{
		Elements:  make([]elementJSON, 0, len(ds.Elements)),
		Constants: make([]constantJSON, 0, len(ds.Constants)),
	}
	for _, e := range ds.Elements {
		we := elementJSON{
			Z:        e.Z,
			Symbol:   e.Symbol,
			Name:     e.Name,
			Weight:   e.WeightLiteral,
			Isotopes: make([]isotopeJSON, 0, len(e.Isotopes)),
		}
		for _, iso := range e.Isotopes {
			wi := isotopeJSON{A: iso.A, Mass: iso.MassLiteral, Names: iso.Names}
			if iso.Abundance >= 0 {
				a := iso.Abundance
				wi.Abundance = &a
			}
			we.Isotopes = append(we.Isotopes, wi)
		}
		wire.Elements = append(wire.Elements, we)
	}
	for _, c := range ds.Constants {
		wire.Constants = append(wire.Constants, constantJSON{
			Label:   c.Label,
			Value:   c.ValueLiteral,
			Unit:    c.Unit,
			Comment: c.Comment,
		})
	}
	return wire
}

// Validate checks the dataset integrity invariants. Any violation means the
// source data is defective and the dataset must not be served.
func (ds *Dataset) Validate() error {
	seenZ := make(map[int]string, len(ds.Elements))
	seenSymbol := make(map[string]int, len(ds.Elements))
	seenName := make(map[string]int, len(ds.Elements))

	for i := range ds.Elements {
		e := &ds.Elements[i]
		if e.Z <= 0 {
			return fmt.Errorf("%w: element %q has non-positive atomic number %d", ErrIntegrity, e.Symbol, e.Z)
		}
		if e.Symbol == "" || len(e.Symbol) > 3 {
			return fmt.Errorf("%w: element Z=%d has invalid symbol %q", ErrIntegrity, e.Z, e.Symbol)
		}
		if e.Name == "" {
			return fmt.Errorf("%w: element Z=%d has empty name", ErrIntegrity, e.Z)
		}
		if prev, dup := seenZ[e.Z]; dup {
			return fmt.Errorf("%w: atomic number %d claimed by both %s and %s", ErrIntegrity, e.Z, prev, e.Symbol)
		}
		seenZ[e.Z] = e.Symbol
		if prev, dup := seenSymbol[e.Symbol]; dup {
			return fmt.Errorf("%w: symbol %q claimed by both Z=%d and Z=%d", ErrIntegrity, e.Symbol, prev, e.Z)
		}
		seenSymbol[e.Symbol] = e.Z
		if prev, dup := seenName[e.Name]; dup {
			return fmt.Errorf("%w: name %q claimed by both Z=%d and Z=%d", ErrIntegrity, e.Name, prev, e.Z)
		}
		seenName[e.Name] = e.Z

		seenA := make(map[int]bool, len(e.Isotopes))
		for _, iso := range e.Isotopes {
			if iso.A <= 0 {
				return fmt.Errorf("%w: %s has non-positive mass number %d", ErrIntegrity, e.Symbol, iso.A)
			}
			if seenA[iso.A] {
				return fmt.Errorf("%w: duplicate nuclide (%d, %d)", ErrIntegrity, e.Z, iso.A)
			}
			seenA[iso.A] = true
		}
	}

	seenKey := make(map[string]string, len(ds.Constants))
	for i := range ds.Constants {
		c := &ds.Constants[i]
		if c.Key == "" {
			return fmt.Errorf("%w: constant %q has empty canonical key", ErrIntegrity, c.Label)
		}
		if prev, dup := seenKey[c.Key]; dup {
			return fmt.Errorf("%w: constant key %q claimed by both %q and %q", ErrIntegrity, c.Key, prev, c.Label)
		}
		seenKey[c.Key] = c.Label
	}

	return nil
}

// Element returns the element with the given atomic number, if present.
func (ds *Dataset) Element(z int) (*model.ElementRecord, bool) {
	for i := range ds.Elements {
		if ds.Elements[i].Z == z {
			return &ds.Elements[i], true
		}
	}
	return nil, false
}
