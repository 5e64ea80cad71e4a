package layer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	wktLeftHalf  = "POLYGON ((0 0, 2 0, 2 4, 0 4, 0 0))"
	wktLeftStrip = "POLYGON ((0 0, 1 0, 1 4, 0 4, 0 0))"
	wktPoint     = "POINT (1 1)"
)

func fullLayer2x2(t *testing.T) *TiledLayer[SpatialKey] {
	t.Helper()
	return spatialLayer(testMeta(2, 2, 2), 2, map[SpatialKey]float64{
		{Col: 0, Row: 0}: 5,
		{Col: 1, Row: 0}: 5,
		{Col: 0, Row: 1}: 5,
		{Col: 1, Row: 1}: 5,
	})
}

func TestParsePolygonalWKTFiltersSilently(t *testing.T) {
	geoms, err := ParsePolygonalWKT([]string{wktPoint, wktLeftHalf, "LINESTRING (0 0, 1 1)"})
	require.NoError(t, err)
	assert.Len(t, geoms, 1)

	_, err = ParsePolygonalWKT([]string{"POLYGON (("})
	assert.Error(t, err)
}

func TestMaskDropsUncoveredTiles(t *testing.T) {
	l := fullLayer2x2(t)
	l.Zoom = zoomPtr(3)

	out, err := l.MaskGeometries([]string{wktLeftHalf})
	require.NoError(t, err)

	assert.Len(t, out.Tiles, 2)
	assert.Contains(t, out.Tiles, SpatialKey{Col: 0, Row: 0})
	assert.Contains(t, out.Tiles, SpatialKey{Col: 0, Row: 1})
	// Layout unchanged, zoom retained.
	require.NotNil(t, out.Zoom)
	assert.Equal(t, 3, *out.Zoom)
}

func TestMaskSetsOutsideCellsToNoData(t *testing.T) {
	l := fullLayer2x2(t)

	out, err := l.MaskGeometries([]string{wktLeftStrip})
	require.NoError(t, err)

	tile, found := out.Tiles[SpatialKey{Col: 0, Row: 0}]
	require.True(t, found)
	band := tile.Bands[0]
	assert.Equal(t, 5.0, band.Get(0, 0))
	assert.Equal(t, testNoData, band.Get(1, 0))
	assert.Equal(t, 5.0, band.Get(0, 1))
	assert.Equal(t, testNoData, band.Get(1, 1))
}

func TestMaskNonPolygonalInputsAreDropped(t *testing.T) {
	l := fullLayer2x2(t)

	// The point contributes no coverage; the polygon drives the mask.
	out, err := l.MaskGeometries([]string{wktPoint, wktLeftHalf})
	require.NoError(t, err)
	assert.Len(t, out.Tiles, 2)

	// Nothing but non-polygonal inputs masks everything away.
	out, err = l.MaskGeometries([]string{wktPoint})
	require.NoError(t, err)
	assert.True(t, out.IsEmpty())
}

func TestMaskParseFailureIsAnError(t *testing.T) {
	l := fullLayer2x2(t)
	_, err := l.MaskGeometries([]string{"POLYGON (("})
	assert.Error(t, err)
}
