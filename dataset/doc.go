// Package dataset holds the canonical reference data the resolvers are
// built from.
//
// A Dataset is immutable once loaded. Loading parses every physically
// significant value from its source decimal string into an exact decimal
// and derives the float64 view from that decimal, then validates the
// integrity invariants (unique Z, unique (Z, A), unique constant key).
// Integrity violations abort the load; they are never deferred to query
// time.
//
// The package ships a default dataset (NIST standard atomic weights,
// NIST isotopic masses for the commonly tabulated nuclides, and CODATA
// 2014 physical constants) embedded into the binary. Alternative datasets
// can be loaded from self-describing snapshots, locally or through the
// source subpackage.
package dataset
