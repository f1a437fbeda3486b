package chemref

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qcforge/chemref/codec"
	"github.com/qcforge/chemref/dataset"
	"github.com/qcforge/chemref/dataset/source"
	"github.com/qcforge/chemref/physconst"
)

const tinyDataset = `{
	"elements": [
		{
			"z": 1, "symbol": "H", "name": "hydrogen", "weight": "1.008",
			"isotopes": [
				{"a": 1, "mass": "1.00782503223", "abundance": 0.999885, "names": ["protium"]},
				{"a": 2, "mass": "2.01410177812", "abundance": 0.000115, "names": ["d", "deuterium"]}
			]
		},
		{
			"z": 9, "symbol": "F", "name": "fluorine", "weight": "18.998403163",
			"isotopes": [
				{"a": 19, "mass": "18.99840316273", "abundance": 1.0}
			]
		}
	],
	"constants": [
		{"label": "Hartree energy in eV", "value": "27.21138602", "unit": "eV"}
	]
}`

func tinyEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()

	ds, err := dataset.Load([]byte(tinyDataset), codec.JSON{})
	require.NoError(t, err)

	e, err := New(append([]Option{WithDataset(ds)}, opts...)...)
	require.NoError(t, err)
	return e
}

func TestNewDefaultDataset(t *testing.T) {
	e, err := New()
	require.NoError(t, err)

	z, err := e.PeriodicTable().ToZ("Kryptonite")
	assert.Error(t, err)
	assert.Zero(t, z)

	z, err = e.PeriodicTable().ToZ("KRYPTON")
	require.NoError(t, err)
	assert.Equal(t, 36, z)

	hartree, err := e.Constants().Get("Hartree energy in eV")
	require.NoError(t, err)
	assert.InDelta(t, 27.21138602, hartree, 1e-12)
}

func TestDefaultIsShared(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestNewWithCustomDataset(t *testing.T) {
	e := tinyEngine(t)

	sym, err := e.PeriodicTable().ToE("D")
	require.NoError(t, err)
	assert.Equal(t, "H", sym)

	a, err := e.PeriodicTable().ToA("fluorine")
	require.NoError(t, err)
	assert.Equal(t, 19, a)

	// Elements outside the custom dataset are unknown, not malformed.
	_, err = e.PeriodicTable().ToZ("He")
	assert.True(t, IsUnknown(err))
}

func TestNewRejectsInvalidDataset(t *testing.T) {
	ds, err := dataset.Load([]byte(tinyDataset), codec.JSON{})
	require.NoError(t, err)
	ds.Elements[1].Z = 1 // collides with hydrogen

	_, err = New(WithDataset(ds))
	assert.ErrorIs(t, err, dataset.ErrIntegrity)
}

type fixedConverter struct {
	factor decimal.Decimal
}

func (c fixedConverter) Convert(fromUnit, toUnit string) (decimal.Decimal, error) {
	return c.factor, nil
}

func TestNewWithConverter(t *testing.T) {
	conv := fixedConverter{factor: decimal.RequireFromString("4.184")}
	e := tinyEngine(t, WithConverter(conv))

	f, err := e.Constants().ConversionFactor("kcal", "kJ")
	require.NoError(t, err)
	assert.True(t, f.Equal(conv.factor))
}

func TestNewWithoutConverter(t *testing.T) {
	e := tinyEngine(t)

	_, err := e.Constants().ConversionFactor("kcal", "kJ")
	assert.ErrorIs(t, err, physconst.ErrNoConverter)
}

func TestNewWithLogger(t *testing.T) {
	e := tinyEngine(t, WithLogger(nil))
	assert.NotNil(t, e.PeriodicTable())

	e = tinyEngine(t, WithLogger(NewTextLogger(slog.LevelError)))
	assert.NotNil(t, e.Constants())
}

func TestNewFromSource(t *testing.T) {
	ds, err := dataset.Load([]byte(tinyDataset), codec.JSON{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dataset.WriteSnapshot(&buf, ds))

	e, err := NewFromSource(context.Background(), &source.Memory{Data: buf.Bytes()})
	require.NoError(t, err)

	z, err := e.PeriodicTable().ToZ("fluorine")
	require.NoError(t, err)
	assert.Equal(t, 9, z)

	_, err = NewFromSource(context.Background(), &source.Memory{})
	assert.ErrorIs(t, err, source.ErrNotFound)
}

func TestErrorHelpers(t *testing.T) {
	e := tinyEngine(t)
	table := e.PeriodicTable()

	_, err := table.Resolve("kr@85")
	assert.True(t, IsMalformed(err))
	assert.False(t, IsUnknown(err))

	_, err = table.Resolve("Xx99")
	assert.True(t, IsUnknown(err))
	assert.False(t, IsMalformed(err))

	_, err = table.ToA("H")
	assert.True(t, IsAmbiguousIsotope(err))
	assert.False(t, IsUnknown(err))
}
