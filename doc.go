// Package chemref is a canonical-reference resolution engine for chemistry.
// It maps loosely formatted identifier strings (element symbols, element
// names, atomic numbers, isotope notations like "Kr84", "Kr-84", "84Kr",
// "kr 84", "D", and physical-constant labels) onto exactly one canonical
// record, with precision-preserving values.
//
// # Quick Start
//
// Build an engine over the embedded NIST/CODATA dataset:
//
//	eng, err := chemref.New()
//	if err != nil {
//	    panic(err)
//	}
//
//	pt := eng.PeriodicTable()
//	symbol, _ := pt.ToE("KRYPTON")   // "Kr"
//	z, _ := pt.ToZ("kr84")           // 36
//	a, _ := pt.ToA("D")              // 2
//	mass, _ := pt.ToMassDecimal("Kr86") // exact 85.9106106269
//
//	pc := eng.Constants()
//	eh, _ := pc.Get("hartree ENERGY in ev") // 27.21138602
//	c := pc.Named.SpeedOfLight              // 2.99792458e8
//
// Or share the process-wide default engine:
//
//	eng, err := chemref.Default()
//
// # Precision
//
// Every physically significant value is carried as an exact decimal parsed
// from the source decimal string; the float64 views are derived from those
// decimals at load time. The decimal and float views of the same quantity
// therefore never diverge beyond float64 representation error.
//
// # Resolution Semantics
//
// Every alias maps to exactly one canonical identity; the index is built
// eagerly at initialization and a duplicate alias claimed by two identities
// aborts the build. Resolution never guesses: unknown aliases, malformed
// input and element-only aliases used where an isotope is required are
// surfaced as typed errors, with no closest-match fallback.
//
// # Datasets
//
// The embedded default dataset carries NIST standard atomic weights for all
// 118 elements, NIST isotopic masses for the commonly tabulated nuclides
// and the CODATA 2014 physical constants. Alternative datasets load from
// self-describing snapshots (see the dataset package), locally or from
// object storage (see dataset/source).
//
// # Concurrency
//
// An Engine is immutable once New returns. All resolution paths are pure
// reads over prebuilt indexes and safe for unlimited concurrent use without
// locking.
package chemref
