package layer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostDistanceFromCornerSource(t *testing.T) {
	// One 4x4 tile of uniform friction 1 over [0,4]x[0,4]. The source
	// polygon covers the single south-west cell.
	l := spatialLayer(testMeta(1, 1, 4), 4, map[SpatialKey]float64{{Col: 0, Row: 0}: 1})
	l.Zoom = zoomPtr(7)

	out, err := l.CostDistance([]string{"POLYGON ((0 0, 1 0, 1 1, 0 1, 0 0))"}, math.Inf(1))
	require.NoError(t, err)

	tile := out.Tiles[SpatialKey{Col: 0, Row: 0}]
	require.NotNil(t, tile)
	band := tile.Bands[0]

	// Grid row 3 is the south edge.
	assert.Equal(t, 0.0, band.Get(0, 3))
	assert.InDelta(t, 1.0, band.Get(1, 3), 1e-9)
	assert.InDelta(t, 1.0, band.Get(0, 2), 1e-9)
	assert.InDelta(t, math.Sqrt2, band.Get(1, 2), 1e-9)
	assert.InDelta(t, 3*math.Sqrt2, band.Get(3, 0), 1e-9)

	// Layout unchanged, zoom retained.
	require.NotNil(t, out.Zoom)
	assert.Equal(t, 7, *out.Zoom)
}

func TestCostDistanceSpansTileSeams(t *testing.T) {
	// Two tiles side by side; the source sits in the left tile and the
	// cost keeps accumulating into the right tile.
	l := spatialLayer(testMeta(2, 1, 2), 2, map[SpatialKey]float64{
		{Col: 0, Row: 0}: 1,
		{Col: 1, Row: 0}: 1,
	})

	out, err := l.CostDistance([]string{"POLYGON ((0 0, 1 0, 1 1, 0 1, 0 0))"}, math.Inf(1))
	require.NoError(t, err)
	require.Len(t, out.Tiles, 2)

	right := out.Tiles[SpatialKey{Col: 1, Row: 0}]
	require.NotNil(t, right)
	// Mosaic cell (2, 1) sits two axis steps from the source (0, 1).
	assert.InDelta(t, 2.0, right.Bands[0].Get(0, 1), 1e-9)
}

func TestCostDistanceMaxDistance(t *testing.T) {
	l := spatialLayer(testMeta(1, 1, 4), 4, map[SpatialKey]float64{{Col: 0, Row: 0}: 1})

	out, err := l.CostDistance([]string{"POLYGON ((0 0, 1 0, 1 1, 0 1, 0 0))"}, 1.5)
	require.NoError(t, err)
	band := out.Tiles[SpatialKey{Col: 0, Row: 0}].Bands[0]
	assert.InDelta(t, 1.0, band.Get(1, 3), 1e-9)
	// Cells past the cutoff fall back to nodata.
	assert.Equal(t, testNoData, band.Get(3, 3))
}

func TestCostDistanceBadWKT(t *testing.T) {
	l := spatialLayer(testMeta(1, 1, 2), 2, map[SpatialKey]float64{{Col: 0, Row: 0}: 1})
	_, err := l.CostDistance([]string{"POLYGON (("}, math.Inf(1))
	assert.Error(t, err)
}
