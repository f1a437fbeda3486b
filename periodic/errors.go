package periodic

import "fmt"

// ErrAmbiguousIsotope indicates an element-level alias used where a specific
// isotope is required. Callers must pass an explicit mass number unless the
// element has exactly one naturally occurring isotope.
type ErrAmbiguousIsotope struct {
	Alias  string
	Symbol string
	Count  int // number of tabulated isotopes
}

func (e *ErrAmbiguousIsotope) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("alias %q names element %s, which has no tabulated isotopes", e.Alias, e.Symbol)
	}
	return fmt.Sprintf("alias %q names element %s with %d isotopes, pass an explicit mass number", e.Alias, e.Symbol, e.Count)
}
