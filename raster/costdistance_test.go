package raster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCostDistanceUniformFriction(t *testing.T) {
	friction := NewTile(3, 3, math.NaN())
	for i := range friction.Cells {
		friction.Cells[i] = 2
	}

	// Source at the top-left corner.
	out := CostDistance(friction, []int{0}, math.Inf(1))

	assert.Equal(t, 0.0, out.Get(0, 0))
	// Axis moves cost the shared friction, diagonals sqrt2 times it.
	assert.InDelta(t, 2.0, out.Get(1, 0), 1e-9)
	assert.InDelta(t, 2.0, out.Get(0, 1), 1e-9)
	assert.InDelta(t, 2*math.Sqrt2, out.Get(1, 1), 1e-9)
	assert.InDelta(t, 4*math.Sqrt2, out.Get(2, 2), 1e-9)
}

func TestCostDistanceMaxDistanceCutoff(t *testing.T) {
	friction := NewTile(1, 4, math.NaN())
	for i := range friction.Cells {
		friction.Cells[i] = 1
	}

	out := CostDistance(friction, []int{0}, 1.5)
	assert.Equal(t, 0.0, out.Get(0, 0))
	assert.InDelta(t, 1.0, out.Get(0, 1), 1e-9)
	// Beyond the cutoff the surface is nodata.
	assert.True(t, math.IsNaN(out.Get(0, 2)))
	assert.True(t, math.IsNaN(out.Get(0, 3)))
}

func TestCostDistanceRoutesAroundNoData(t *testing.T) {
	nd := math.NaN()
	friction := NewTile(3, 3, nd)
	for i := range friction.Cells {
		friction.Cells[i] = 1
	}
	// Wall through the middle column, gap at the bottom.
	friction.Set(1, 0, nd)
	friction.Set(1, 1, nd)

	out := CostDistance(friction, []int{0}, math.Inf(1))

	// The wall stays nodata.
	assert.True(t, math.IsNaN(out.Get(1, 0)))
	// (2, 0) is reached only by detouring through the gap.
	direct := 2.0
	assert.Greater(t, out.Get(2, 0), direct)
	assert.False(t, math.IsNaN(out.Get(2, 0)))
}

func TestCostDistanceNoSources(t *testing.T) {
	friction := NewTile(2, 2, -1)
	for i := range friction.Cells {
		friction.Cells[i] = 1
	}
	out := CostDistance(friction, nil, math.Inf(1))
	for _, v := range out.Cells {
		assert.Equal(t, -1.0, v)
	}
}
