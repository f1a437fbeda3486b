// Package model defines the canonical record types used throughout chemref.
//
// # Identity Types
//
//   - NuclideID: (Z, A) pair identifying an element (A == 0) or a specific
//     isotope (A > 0)
//
// # Record Types
//
//   - ElementRecord: one entry of the periodic table with its isotope set
//   - IsotopeRecord: a single nuclide with its isotopic mass
//   - ConstantRecord: a single physical constant with value, unit and comment
//
// All records carry physically significant values twice: as an exact
// decimal (shopspring/decimal, parsed from the source decimal string) and as
// the nearest representable float64 derived from that decimal at load time.
// The float is never sourced independently, so the two views can only
// disagree by the float's representation error.
package model
