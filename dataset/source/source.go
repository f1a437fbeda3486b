package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/time/rate"

	"github.com/qcforge/chemref/dataset"
)

// ErrNotFound is returned when a snapshot does not exist.
//
// Implementations should return an error that satisfies
// errors.Is(err, ErrNotFound).
var ErrNotFound = os.ErrNotExist

// Source fetches one encoded dataset snapshot.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// Load fetches a snapshot from the source and decodes and validates it.
func Load(ctx context.Context, src Source) (*dataset.Dataset, error) {
	data, err := src.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch snapshot: %w", err)
	}
	return dataset.ReadSnapshot(bytes.NewReader(data))
}

// Memory is an in-memory Source, mainly for tests.
type Memory struct {
	Data []byte
}

// Fetch returns a copy of the stored bytes.
func (m *Memory) Fetch(_ context.Context) ([]byte, error) {
	if m.Data == nil {
		return nil, ErrNotFound
	}
	out := make([]byte, len(m.Data))
	copy(out, m.Data)
	return out, nil
}

// Local reads a snapshot from the local file system.
type Local struct {
	Path string
}

// Fetch reads the snapshot file.
func (l *Local) Fetch(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(l.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, l.Path)
	}
	return data, err
}

// Throttled wraps a Source with a rate limiter, bounding how often the
// underlying (typically remote) source is hit.
type Throttled struct {
	src     Source
	limiter *rate.Limiter
}

// Throttle wraps src so that fetches wait on the limiter first.
func Throttle(src Source, limiter *rate.Limiter) *Throttled {
	return &Throttled{src: src, limiter: limiter}
}

// Fetch waits for limiter clearance, then delegates.
func (t *Throttled) Fetch(ctx context.Context) ([]byte, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return t.src.Fetch(ctx)
}
