package alias

import "fmt"

// ErrMalformedIdentifier indicates input that cannot be tokenized at all.
type ErrMalformedIdentifier struct {
	Input  string
	Reason string
}

func (e *ErrMalformedIdentifier) Error() string {
	return fmt.Sprintf("malformed identifier %q: %s", e.Input, e.Reason)
}

// ErrUnknownIdentifier indicates a well-formed alias that matches no
// canonical record.
type ErrUnknownIdentifier struct {
	Alias string
}

func (e *ErrUnknownIdentifier) Error() string {
	return fmt.Sprintf("unknown identifier %q", e.Alias)
}

// ErrDuplicateAlias indicates that two distinct canonical identities claim
// the same normalized alias. This is a data-integrity defect in the source
// dataset and aborts the index build.
type ErrDuplicateAlias struct {
	Key      Key
	Existing string
	Claim    string
}

func (e *ErrDuplicateAlias) Error() string {
	return fmt.Sprintf("alias %q already maps to %s, refusing claim by %s", e.Key, e.Existing, e.Claim)
}
