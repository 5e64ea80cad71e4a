package layer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nci/tilebridge/proj"
)

func TestZoomedLayout(t *testing.T) {
	webmerc, err := proj.Resolve("EPSG:3857")
	require.NoError(t, err)
	ld := ZoomedLayout(webmerc, 256, 2)
	assert.Equal(t, TileLayout{LayoutCols: 4, LayoutRows: 4, TileCols: 256, TileRows: 256}, ld.Layout)
	assert.Equal(t, webmerc.WorldExtent, ld.Extent)

	// EPSG:4326 spans two columns per row at every level.
	wgs84, err := proj.Resolve("EPSG:4326")
	require.NoError(t, err)
	ld = ZoomedLayout(wgs84, 256, 0)
	assert.Equal(t, 2, ld.Layout.LayoutCols)
	assert.Equal(t, 1, ld.Layout.LayoutRows)
}

func TestZoomFor(t *testing.T) {
	webmerc, err := proj.Resolve("EPSG:3857")
	require.NoError(t, err)

	// The exact resolution of a level resolves to that level.
	res := webmerc.WorldExtent.Width() / float64((1<<3)*256)
	zoom, err := ZoomFor(webmerc, 256, res, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, zoom)

	// A slightly coarser cell without slack forces the next level in.
	zoom, err = ZoomFor(webmerc, 256, res*1.05, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, zoom)

	// The threshold accepts it back into the coarser level.
	zoom, err = ZoomFor(webmerc, 256, res*1.05, 0.1)
	require.NoError(t, err)
	assert.Equal(t, 3, zoom)

	_, err = ZoomFor(webmerc, 256, 0, 0)
	assert.Error(t, err)
}

func TestFloatingLayoutSnapsToWholeTiles(t *testing.T) {
	extent := testMeta(1, 1, 10).Extent
	ld := FloatingLayout(extent, 1, 1, 4)

	assert.Equal(t, TileLayout{LayoutCols: 3, LayoutRows: 3, TileCols: 4, TileRows: 4}, ld.Layout)
	assert.Equal(t, 12.0, ld.Extent.Width())
	assert.Equal(t, 12.0, ld.Extent.Height())
	assert.Equal(t, extent.XMin, ld.Extent.XMin)
	assert.Equal(t, extent.YMax, ld.Extent.YMax)
}
