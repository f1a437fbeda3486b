package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// NuclideID identifies an element or a specific isotope of it.
// A == 0 means the identity is element-level (no mass number given).
type NuclideID struct {
	Z int // atomic number, 1..118
	A int // mass number, 0 if element-level
}

// IsElement reports whether the identity is element-level.
func (id NuclideID) IsElement() bool { return id.A == 0 }

// String returns a string representation of the NuclideID.
func (id NuclideID) String() string {
	if id.A == 0 {
		return fmt.Sprintf("Z=%d", id.Z)
	}
	return fmt.Sprintf("Z=%d A=%d", id.Z, id.A)
}

// IsotopeRecord is a single nuclide of an element.
type IsotopeRecord struct {
	// A is the mass number (protons + neutrons).
	A int
	// MassLiteral is the isotopic mass as the source decimal string.
	MassLiteral string
	// Mass is the exact isotopic mass in u, parsed from MassLiteral.
	Mass decimal.Decimal
	// MassFloat is the nearest float64 to Mass, derived at load time.
	MassFloat float64
	// Abundance is the natural abundance in [0, 1]. Negative when the
	// nuclide does not occur naturally or no abundance is tabulated.
	Abundance float64
	// Names holds extra alias names beyond the generic symbol+A forms.
	// Only the hydrogen nuclides carry these (D, T, protium, ...).
	Names []string
}

// ElementRecord is one entry of the periodic table.
type ElementRecord struct {
	// Z is the atomic number, unique across the dataset.
	Z int
	// Symbol is the canonical 1-2 letter symbol ("Kr").
	Symbol string
	// Name is the canonical English name ("Krypton").
	Name string
	// WeightLiteral is the standard atomic weight as the source decimal
	// string. For elements without a standard atomic weight this is the
	// mass number of the most stable isotope.
	WeightLiteral string
	// Weight is the exact standard atomic weight in u.
	Weight decimal.Decimal
	// WeightFloat is the nearest float64 to Weight, derived at load time.
	WeightFloat float64
	// Isotopes lists the tabulated nuclides of the element, ascending by A.
	// May be empty for elements whose isotope table is not loaded.
	Isotopes []IsotopeRecord
}

// Isotope returns the isotope with the given mass number, if tabulated.
func (e *ElementRecord) Isotope(a int) (*IsotopeRecord, bool) {
	for i := range e.Isotopes {
		if e.Isotopes[i].A == a {
			return &e.Isotopes[i], true
		}
	}
	return nil, false
}

// ConstantRecord is a single physical constant.
type ConstantRecord struct {
	// Label is the human-readable NIST label ("Hartree energy in eV").
	Label string
	// Key is the canonical key: the normalized label. Unique across the
	// dataset; collisions are a load-time defect.
	Key string
	// ValueLiteral is the value as the source decimal string.
	ValueLiteral string
	// Value is the exact value parsed from ValueLiteral.
	Value decimal.Decimal
	// ValueFloat is the nearest float64 to Value, derived at load time.
	ValueFloat float64
	// Unit is the unit string ("eV"). Empty for dimensionless constants.
	Unit string
	// Comment is free text, typically the standard uncertainty.
	Comment string
}
