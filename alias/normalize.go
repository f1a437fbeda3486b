package alias

import (
	"strconv"
	"strings"
)

// Key is a normalized alias: a lower-cased token plus an optional mass
// number. The token is either an alphabetic element token (symbol or name)
// or a bare numeric string (an atomic-number candidate).
type Key struct {
	Token string
	A     int // mass number, 0 if none
}

// String renders the key in a form that Normalize maps back onto the same
// key, which makes normalization idempotent.
func (k Key) String() string {
	if k.A == 0 {
		return k.Token
	}
	return k.Token + strconv.Itoa(k.A)
}

// specialNuclides rewrites the hydrogen special names to their (h, A) form.
// Applied only to purely alphabetic input, so "h2" stays a generic
// symbol+mass-number alias (same result) and "d2" stays unknown.
var specialNuclides = map[string]Key{
	"d":         {Token: "h", A: 2},
	"t":         {Token: "h", A: 3},
	"protium":   {Token: "h", A: 1},
	"deuterium": {Token: "h", A: 2},
	"tritium":   {Token: "h", A: 3},
}

// Normalize maps a raw alias string to its canonical Key.
//
// Accepted shapes (case-insensitive, hyphens and spaces interchangeable):
//
//	"Kr"        -> {kr}
//	"Krypton"   -> {krypton}
//	"36"        -> {36}          (atomic-number candidate)
//	"Kr84"      -> {kr 84}
//	"Kr-84"     -> {kr 84}
//	"84Kr"      -> {kr 84}
//	"kr 84"     -> {kr 84}
//	"D"         -> {h 2}
//
// It fails with ErrMalformedIdentifier on empty input, characters outside
// [A-Za-z0-9 -], or digit/alpha mixtures that fit none of the shapes above.
// Whether the token names a real element is decided at lookup, not here.
func Normalize(raw string) (Key, error) {
	trimmed := strings.Join(strings.Fields(raw), " ")
	if trimmed == "" {
		return Key{}, &ErrMalformedIdentifier{Input: raw, Reason: "empty"}
	}

	var sb strings.Builder
	for _, r := range trimmed {
		switch {
		case r >= 'a' && r <= 'z':
			sb.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			sb.WriteRune(r + ('a' - 'A'))
		case r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == ' ' || r == '-':
			// Separators carry no meaning beyond splitting token and
			// mass number, drop them.
		default:
			return Key{}, &ErrMalformedIdentifier{Input: raw, Reason: "invalid character " + strconv.QuoteRune(r)}
		}
	}
	s := sb.String()
	if s == "" {
		return Key{}, &ErrMalformedIdentifier{Input: raw, Reason: "no alphanumeric content"}
	}

	alpha, digits, err := splitAlphaDigits(raw, s)
	if err != nil {
		return Key{}, err
	}

	if digits == "" {
		if k, ok := specialNuclides[alpha]; ok {
			return k, nil
		}
		return Key{Token: alpha}, nil
	}

	n, perr := strconv.Atoi(digits)
	if perr != nil {
		return Key{}, &ErrMalformedIdentifier{Input: raw, Reason: "numeric part out of range"}
	}

	if alpha == "" {
		// Bare numeric input is an atomic-number candidate, not an error.
		return Key{Token: strconv.Itoa(n)}, nil
	}
	if n <= 0 {
		return Key{}, &ErrMalformedIdentifier{Input: raw, Reason: "mass number must be positive"}
	}
	return Key{Token: alpha, A: n}, nil
}

// splitAlphaDigits splits s into a single alphabetic run and a single digit
// run, in either order. Inputs interleaving more than one run of each
// ("a1b2") are malformed.
func splitAlphaDigits(raw, s string) (alpha, digits string, err error) {
	i := 0
	for i < len(s) && isAlpha(s[i]) {
		i++
	}
	j := i
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	if i > 0 {
		// alpha first: optional trailing digits, nothing after.
		if j != len(s) {
			return "", "", &ErrMalformedIdentifier{Input: raw, Reason: "mixed alphanumeric form"}
		}
		return s[:i], s[i:], nil
	}
	// digits first: optional trailing alpha, nothing after.
	k := j
	for k < len(s) && isAlpha(s[k]) {
		k++
	}
	if k != len(s) {
		return "", "", &ErrMalformedIdentifier{Input: raw, Reason: "mixed alphanumeric form"}
	}
	return s[j:], s[:j], nil
}

func isAlpha(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// NormalizeLabel maps a raw physical-constant label to its canonical key:
// lower-cased with whitespace runs collapsed to single spaces. Labels are
// long-form technical phrases, so beyond case and spacing the text must
// match the dataset label exactly; there is no fuzzy matching.
func NormalizeLabel(raw string) (string, error) {
	label := strings.ToLower(strings.Join(strings.Fields(raw), " "))
	if label == "" {
		return "", &ErrMalformedIdentifier{Input: raw, Reason: "empty"}
	}
	return label, nil
}
