package layer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nci/tilebridge/raster"
)

func multibandLayer(meta Metadata, tileSize int, bandValues ...float64) *TiledLayer[SpatialKey] {
	bands := make([]*raster.Tile, len(bandValues))
	for i, v := range bandValues {
		b := raster.NewTile(tileSize, tileSize, testNoData)
		for j := range b.Cells {
			b.Cells[j] = v
		}
		bands[i] = b
	}
	tiles := map[SpatialKey]*raster.MultibandTile{
		{Col: 0, Row: 0}: raster.NewMultibandTile(bands...),
	}
	return New(tiles, meta, nil)
}

func TestLocalScalarAppliesToEveryBand(t *testing.T) {
	l := multibandLayer(testMeta(1, 1, 2), 2, 10, 20)
	l.Zoom = zoomPtr(2)

	out, err := l.LocalScalar("*", 3, false)
	require.NoError(t, err)

	tile := out.Tiles[SpatialKey{Col: 0, Row: 0}]
	require.NotNil(t, tile)
	for _, v := range tile.Bands[0].Cells {
		assert.Equal(t, 30.0, v)
	}
	for _, v := range tile.Bands[1].Cells {
		assert.Equal(t, 60.0, v)
	}
	// Metadata and zoom carry over unchanged.
	require.NotNil(t, out.Zoom)
	assert.Equal(t, 2, *out.Zoom)
	assert.Equal(t, l.Meta.Layout, out.Meta.Layout)
}

func TestLocalScalarLeft(t *testing.T) {
	l := multibandLayer(testMeta(1, 1, 2), 2, 4)

	out, err := l.LocalScalar("/", 8, true)
	require.NoError(t, err)
	assert.Equal(t, 2.0, out.Tiles[SpatialKey{Col: 0, Row: 0}].Bands[0].Get(0, 0))
}

func TestLocalLayerInnerJoin(t *testing.T) {
	meta := testMeta(2, 2, 2)
	a := spatialLayer(meta, 2, map[SpatialKey]float64{
		{Col: 0, Row: 0}: 10,
		{Col: 1, Row: 0}: 20,
	})
	b := spatialLayer(meta, 2, map[SpatialKey]float64{
		{Col: 1, Row: 0}: 5,
		{Col: 1, Row: 1}: 7,
	})

	out, err := a.LocalLayer(b, "-")
	require.NoError(t, err)

	// Only the shared key survives the join.
	require.Len(t, out.Tiles, 1)
	tile, found := out.Tiles[SpatialKey{Col: 1, Row: 0}]
	require.True(t, found)
	for _, v := range tile.Bands[0].Cells {
		assert.Equal(t, 15.0, v)
	}
}

func TestLocalLayerLayoutMismatch(t *testing.T) {
	a := spatialLayer(testMeta(2, 2, 2), 2, map[SpatialKey]float64{{Col: 0, Row: 0}: 1})
	b := spatialLayer(testMeta(4, 4, 2), 2, map[SpatialKey]float64{{Col: 0, Row: 0}: 1})

	_, err := a.LocalLayer(b, "+")
	assert.Error(t, err)
}

func TestLocalLayerBandCountMismatch(t *testing.T) {
	meta := testMeta(1, 1, 2)
	a := multibandLayer(meta, 2, 1, 2)
	b := multibandLayer(meta, 2, 1)

	_, err := a.LocalLayer(b, "+")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "band count mismatch")
}

func TestLocalUnknownOperator(t *testing.T) {
	l := multibandLayer(testMeta(1, 1, 2), 2, 1)
	_, err := l.LocalScalar("%", 2, false)
	assert.Error(t, err)
}

func TestNormalizeLayer(t *testing.T) {
	l := multibandLayer(testMeta(1, 1, 2), 2, 50)
	tile := l.Tiles[SpatialKey{Col: 0, Row: 0}]
	tile.Bands[0].Set(0, 0, 0)
	tile.Bands[0].Set(1, 1, 100)

	out := l.Normalize(0, 0)
	band := out.Tiles[SpatialKey{Col: 0, Row: 0}].Bands[0]
	assert.InDelta(t, 0.0, band.Get(0, 0), 1e-9)
	assert.InDelta(t, 255.0, band.Get(1, 1), 1e-9)
	assert.InDelta(t, 127.5, band.Get(1, 0), 1e-9)
}

func TestMapAlgebraLayer(t *testing.T) {
	l := multibandLayer(testMeta(1, 1, 2), 2, 8, 2)

	out, err := l.MapAlgebra("(b0 - b1) / (b0 + b1)")
	require.NoError(t, err)

	tile := out.Tiles[SpatialKey{Col: 0, Row: 0}]
	require.NotNil(t, tile)
	assert.Equal(t, 1, tile.BandCount())
	for _, v := range tile.Bands[0].Cells {
		assert.InDelta(t, 0.6, v, 1e-9)
	}
}

func TestMapAlgebraLayerErrors(t *testing.T) {
	l := multibandLayer(testMeta(1, 1, 2), 2, 8)

	_, err := l.MapAlgebra("b0 +")
	assert.Error(t, err)
	_, err = l.MapAlgebra("b5 * 2")
	assert.Error(t, err)
}
