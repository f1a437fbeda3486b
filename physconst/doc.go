// Package physconst resolves physical-constant labels to canonical records.
//
// Labels match by exact normalized-string equality (case-folded,
// whitespace-collapsed), never by substring or fuzzy search: NIST labels
// are long technical phrases where a best-effort match can silently return
// the wrong constant.
//
// Beyond label lookup, the frequently used constants are exposed as plain
// fields on the Named view (SpeedOfLight, Hartree2EV, ...), baked during
// Build so access cannot fail at call time.
//
// Conversion factors between unit strings are not resolved from the
// constants dataset; ConversionFactor forwards to the units.Converter
// collaborator and propagates its result or error unchanged.
package physconst
