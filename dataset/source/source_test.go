package source

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/qcforge/chemref/dataset"
)

func snapshotBytes(t *testing.T) []byte {
	t.Helper()

	ds, err := dataset.Default()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dataset.WriteSnapshot(&buf, ds))
	return buf.Bytes()
}

func TestMemorySource(t *testing.T) {
	data := snapshotBytes(t)
	src := &Memory{Data: data}

	got, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, data, got)

	// The returned slice is a copy; mutating it must not affect the source.
	got[0] ^= 0xff
	again, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestMemorySourceEmpty(t *testing.T) {
	src := &Memory{}

	_, err := src.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalSource(t *testing.T) {
	data := snapshotBytes(t)
	path := filepath.Join(t.TempDir(), "snapshot.bin")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	src := &Local{Path: path}
	got, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestLocalSourceMissing(t *testing.T) {
	src := &Local{Path: filepath.Join(t.TempDir(), "nope.bin")}

	_, err := src.Fetch(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestThrottledSource(t *testing.T) {
	src := Throttle(&Memory{Data: []byte("payload")}, rate.NewLimiter(rate.Inf, 1))

	got, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)
}

func TestThrottledSourceContextCanceled(t *testing.T) {
	// Zero burst means Wait can never succeed; the fetch must abort with
	// the context error instead of hitting the underlying source.
	src := Throttle(&Memory{Data: []byte("payload")}, rate.NewLimiter(rate.Every(time.Hour), 0))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.Fetch(ctx)
	assert.Error(t, err)
}

func TestLoadRoundTrip(t *testing.T) {
	src := &Memory{Data: snapshotBytes(t)}

	ds, err := Load(context.Background(), src)
	require.NoError(t, err)

	def, err := dataset.Default()
	require.NoError(t, err)

	h, ok := ds.Element(1)
	require.True(t, ok)
	assert.Equal(t, "H", h.Symbol)
	assert.Len(t, ds.Elements, len(def.Elements))
}

func TestLoadFetchError(t *testing.T) {
	src := &Memory{}

	_, err := Load(context.Background(), src)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadCorruptSnapshot(t *testing.T) {
	src := &Memory{Data: []byte("definitely not a snapshot")}

	_, err := Load(context.Background(), src)
	assert.Error(t, err)
}

type failingSource struct{ err error }

func (f *failingSource) Fetch(context.Context) ([]byte, error) { return nil, f.err }

func TestLoadWrapsSourceError(t *testing.T) {
	sentinel := errors.New("backend down")

	_, err := Load(context.Background(), &failingSource{err: sentinel})
	assert.ErrorIs(t, err, sentinel)
}
