package alias

import "fmt"

// Index maps normalized alias keys to canonical identities of type ID.
//
// The index is populated once during the build phase and must not be
// mutated afterwards; lookups from multiple goroutines are safe on the
// published, immutable index without locking.
type Index[ID comparable] struct {
	m map[Key]ID
}

// NewIndex creates an empty index with capacity for sizeHint entries.
func NewIndex[ID comparable](sizeHint int) *Index[ID] {
	return &Index[ID]{m: make(map[Key]ID, sizeHint)}
}

// Insert adds a single alias for the given identity.
//
// Re-inserting the same (key, identity) pair is a no-op. A different
// identity claiming an already-taken key returns ErrDuplicateAlias; callers
// must treat that as fatal and abort the build.
func (x *Index[ID]) Insert(k Key, id ID) error {
	if existing, ok := x.m[k]; ok {
		if existing == id {
			return nil
		}
		return &ErrDuplicateAlias{
			Key:      k,
			Existing: fmt.Sprintf("%v", existing),
			Claim:    fmt.Sprintf("%v", id),
		}
	}
	x.m[k] = id
	return nil
}

// Lookup returns the identity for the given key.
func (x *Index[ID]) Lookup(k Key) (ID, bool) {
	id, ok := x.m[k]
	return id, ok
}

// Len returns the number of aliases in the index.
func (x *Index[ID]) Len() int { return len(x.m) }
