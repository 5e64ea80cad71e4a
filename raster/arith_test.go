package raster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalOpFromName(t *testing.T) {
	for _, name := range []string{"+", "-", "*", "/"} {
		_, err := LocalOpFromName(name)
		assert.NoError(t, err)
	}
	_, err := LocalOpFromName("%")
	assert.Error(t, err)
}

func TestLocalScalar(t *testing.T) {
	tile := NewTile(2, 1, math.NaN())
	tile.Set(0, 0, 10)
	tile.Set(1, 0, 4)

	out := LocalScalar(tile, LocalSubtract, 2, false)
	assert.Equal(t, 8.0, out.Get(0, 0))
	assert.Equal(t, 2.0, out.Get(1, 0))

	// Scalar on the left flips the operands.
	out = LocalScalar(tile, LocalSubtract, 2, true)
	assert.Equal(t, -8.0, out.Get(0, 0))
	assert.Equal(t, -2.0, out.Get(1, 0))
}

func TestLocalScalarKeepsNoData(t *testing.T) {
	tile := NewTile(2, 1, -9999)
	tile.Set(0, 0, 5)

	out := LocalScalar(tile, LocalAdd, 1, false)
	assert.Equal(t, 6.0, out.Get(0, 0))
	assert.Equal(t, -9999.0, out.Get(1, 0))
}

func TestLocalBinary(t *testing.T) {
	a := NewTile(2, 1, math.NaN())
	a.Set(0, 0, 6)
	a.Set(1, 0, 9)
	b := NewTile(2, 1, math.NaN())
	b.Set(0, 0, 2)

	out, err := LocalBinary(a, b, LocalDivide)
	require.NoError(t, err)
	assert.Equal(t, 3.0, out.Get(0, 0))
	// Nodata on either side propagates.
	assert.True(t, math.IsNaN(out.Get(1, 0)))

	_, err = LocalBinary(a, NewTile(3, 1, math.NaN()), LocalAdd)
	assert.Error(t, err)
}

func TestNormalizeAutoRange(t *testing.T) {
	tile := NewTile(3, 1, math.NaN())
	tile.Set(0, 0, 0)
	tile.Set(1, 0, 50)
	tile.Set(2, 0, 100)

	out := Normalize(tile, 0, 0)
	assert.InDelta(t, 0.0, out.Get(0, 0), 1e-9)
	assert.InDelta(t, 127.5, out.Get(1, 0), 1e-9)
	assert.InDelta(t, 255.0, out.Get(2, 0), 1e-9)
}

func TestNormalizeConstantTile(t *testing.T) {
	tile := NewTile(2, 1, math.NaN())
	tile.Set(0, 0, 42)
	tile.Set(1, 0, 42)

	out := Normalize(tile, 0, 0)
	assert.False(t, math.IsNaN(out.Get(0, 0)))
	assert.False(t, math.IsInf(out.Get(0, 0), 0))
}

func TestNormalizeClips(t *testing.T) {
	tile := NewTile(2, 1, math.NaN())
	tile.Set(0, 0, 500)
	tile.Set(1, 0, 100)

	out := Normalize(tile, 0, 200)
	assert.InDelta(t, 255.0, out.Get(0, 0), 1e-9)
	assert.InDelta(t, 127.5, out.Get(1, 0), 1e-9)
}
