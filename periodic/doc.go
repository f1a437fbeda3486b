// Package periodic resolves free-form element and isotope aliases against
// the periodic table.
//
// A Table is built once from a dataset and is immutable afterwards; all
// resolution operations are safe for concurrent use without locking.
// Every alias form — symbol, full name, numeric atomic number, and any
// isotope notation ("Kr84", "Kr-84", "84Kr", "kr 84", "D") — resolves to
// the same canonical identity.
//
// Masses are exact decimals; the float64 views are derived from the
// decimals at dataset load time, so ToMass and ToMassDecimal can never
// disagree beyond float64 representation error.
package periodic
