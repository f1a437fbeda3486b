package periodic

import (
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/shopspring/decimal"

	"github.com/qcforge/chemref/alias"
	"github.com/qcforge/chemref/dataset"
	"github.com/qcforge/chemref/model"
)

// Table resolves element and isotope aliases to canonical records.
type Table struct {
	idx      *alias.Index[model.NuclideID]
	elements map[int]*model.ElementRecord
	nuclides map[model.NuclideID]*model.IsotopeRecord
	// masses holds, per atomic number, the bitmap of tabulated mass
	// numbers. Drives isotope enumeration and the mono-isotopic check.
	masses map[int]*roaring.Bitmap
}

// Build constructs the alias index from the dataset. Each element
// contributes its symbol, its name and its atomic number as element-level
// aliases, and every tabulated nuclide contributes (token, A) combinations
// for all of the element's tokens plus any nuclide-specific names.
//
// A duplicate alias claimed by two identities aborts the build with
// alias.ErrDuplicateAlias; a Table is never published partially built.
func Build(ds *dataset.Dataset) (*Table, error) {
	t := &Table{
		idx:      alias.NewIndex[model.NuclideID](len(ds.Elements) * 8),
		elements: make(map[int]*model.ElementRecord, len(ds.Elements)),
		nuclides: make(map[model.NuclideID]*model.IsotopeRecord),
		masses:   make(map[int]*roaring.Bitmap, len(ds.Elements)),
	}

	for i := range ds.Elements {
		e := &ds.Elements[i]
		t.elements[e.Z] = e

		elemID := model.NuclideID{Z: e.Z}
		tokens := []string{
			strings.ToLower(e.Symbol),
			strings.ToLower(e.Name),
			strconv.Itoa(e.Z),
		}
		for _, tok := range tokens {
			if err := t.idx.Insert(alias.Key{Token: tok}, elemID); err != nil {
				return nil, err
			}
		}

		bm := roaring.New()
		for j := range e.Isotopes {
			iso := &e.Isotopes[j]
			id := model.NuclideID{Z: e.Z, A: iso.A}
			t.nuclides[id] = iso
			bm.Add(uint32(iso.A))

			// The numeric token is element-only: "36-84" has no
			// meaningful reading, so only alpha tokens combine with A.
			for _, tok := range tokens[:2] {
				if err := t.idx.Insert(alias.Key{Token: tok, A: iso.A}, id); err != nil {
					return nil, err
				}
			}
			for _, name := range iso.Names {
				if err := t.idx.Insert(alias.Key{Token: strings.ToLower(name)}, id); err != nil {
					return nil, err
				}
			}
		}
		t.masses[e.Z] = bm
	}

	return t, nil
}

// Resolve maps a raw alias to its canonical identity.
func (t *Table) Resolve(raw string) (model.NuclideID, error) {
	key, err := alias.Normalize(raw)
	if err != nil {
		return model.NuclideID{}, err
	}
	id, ok := t.idx.Lookup(key)
	if !ok {
		return model.NuclideID{}, &alias.ErrUnknownIdentifier{Alias: raw}
	}
	return id, nil
}

// ToE resolves the alias to the canonical element symbol.
func (t *Table) ToE(raw string) (string, error) {
	id, err := t.Resolve(raw)
	if err != nil {
		return "", err
	}
	return t.elements[id.Z].Symbol, nil
}

// ToZ resolves the alias to the atomic number.
func (t *Table) ToZ(raw string) (int, error) {
	id, err := t.Resolve(raw)
	if err != nil {
		return 0, err
	}
	return id.Z, nil
}

// ToElement resolves the alias to the canonical full element name.
func (t *Table) ToElement(raw string) (string, error) {
	id, err := t.Resolve(raw)
	if err != nil {
		return "", err
	}
	return t.elements[id.Z].Name, nil
}

// ToA resolves the alias to a mass number. The alias must name a specific
// isotope, either through an explicit mass number ("Kr84") or a special
// name ("D"); an element-level alias succeeds only when the element has
// exactly one tabulated isotope, otherwise ErrAmbiguousIsotope is returned.
func (t *Table) ToA(raw string) (int, error) {
	id, err := t.Resolve(raw)
	if err != nil {
		return 0, err
	}
	if !id.IsElement() {
		return id.A, nil
	}
	bm := t.masses[id.Z]
	if bm.GetCardinality() == 1 {
		return int(bm.Minimum()), nil
	}
	return 0, &ErrAmbiguousIsotope{
		Alias:  raw,
		Symbol: t.elements[id.Z].Symbol,
		Count:  int(bm.GetCardinality()),
	}
}

// ToMassDecimal resolves the alias to an exact mass: the isotopic mass when
// the alias names a nuclide, else the element's standard atomic weight.
func (t *Table) ToMassDecimal(raw string) (decimal.Decimal, error) {
	id, err := t.Resolve(raw)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if !id.IsElement() {
		return t.nuclides[id].Mass, nil
	}
	return t.elements[id.Z].Weight, nil
}

// ToMass is ToMassDecimal with the nearest-float64 view. The float was
// derived from the decimal at load time, never independently rounded.
func (t *Table) ToMass(raw string) (float64, error) {
	id, err := t.Resolve(raw)
	if err != nil {
		return 0, err
	}
	if !id.IsElement() {
		return t.nuclides[id].MassFloat, nil
	}
	return t.elements[id.Z].WeightFloat, nil
}

// Element resolves the alias to its full element record.
func (t *Table) Element(raw string) (*model.ElementRecord, error) {
	id, err := t.Resolve(raw)
	if err != nil {
		return nil, err
	}
	return t.elements[id.Z], nil
}

// Isotopes resolves the alias to the element's tabulated nuclides,
// ascending by mass number. The slice is shared and must not be mutated.
func (t *Table) Isotopes(raw string) ([]model.IsotopeRecord, error) {
	id, err := t.Resolve(raw)
	if err != nil {
		return nil, err
	}
	return t.elements[id.Z].Isotopes, nil
}

// NumAliases returns the number of aliases in the index.
func (t *Table) NumAliases() int { return t.idx.Len() }
