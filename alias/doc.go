// Package alias implements normalization and indexing of free-form
// identifier strings.
//
// # Normalization
//
// Normalize maps a raw alias ("Kr84", "Kr-84", "84Kr", "kr 84") to a
// canonical Key: a lower-cased token plus an optional mass number. The
// hydrogen special names (D, T, protium, deuterium, tritium) are rewritten
// to their (h, A) form before generic parsing. Normalization is a pure
// function and idempotent through Key.String().
//
// # Indexing
//
// Index is a build-once map from Key to a canonical identity. Insert
// enforces that every alias maps to exactly one identity; a second identity
// claiming an already-taken alias is a data-integrity defect surfaced as
// ErrDuplicateAlias at build time, never at lookup time. After the build
// phase the index is never mutated, so concurrent readers need no locking.
package alias
