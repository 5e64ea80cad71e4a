package layer

import (
	"github.com/nci/tilebridge/raster"
)

const testNoData = -9999.0

// testMeta builds metadata for a layoutCols x layoutRows grid of
// square tiles with unit cells, anchored at the origin.
func testMeta(layoutCols, layoutRows, tileSize int) Metadata {
	extent := raster.Extent{
		XMin: 0,
		YMin: 0,
		XMax: float64(layoutCols * tileSize),
		YMax: float64(layoutRows * tileSize),
	}
	return Metadata{
		CellType: raster.CellTypeFloat64,
		CRS:      "EPSG:3857",
		NoData:   testNoData,
		Extent:   extent,
		Layout: LayoutDefinition{
			Extent: extent,
			Layout: TileLayout{
				LayoutCols: layoutCols,
				LayoutRows: layoutRows,
				TileCols:   tileSize,
				TileRows:   tileSize,
			},
		},
	}
}

func extentOf(xmin, ymin, xmax, ymax float64) raster.Extent {
	return raster.Extent{XMin: xmin, YMin: ymin, XMax: xmax, YMax: ymax}
}

func constTile(tileSize int, v float64) *raster.MultibandTile {
	t := raster.NewTile(tileSize, tileSize, testNoData)
	for i := range t.Cells {
		t.Cells[i] = v
	}
	return raster.NewMultibandTile(t)
}

func spatialLayer(meta Metadata, tileSize int, values map[SpatialKey]float64) *TiledLayer[SpatialKey] {
	tiles := make(map[SpatialKey]*raster.MultibandTile, len(values))
	for k, v := range values {
		tiles[k] = constTile(tileSize, v)
	}
	return New(tiles, meta, nil)
}

func spaceTimeLayer(meta Metadata, tileSize int, values map[SpaceTimeKey]float64) *TiledLayer[SpaceTimeKey] {
	tiles := make(map[SpaceTimeKey]*raster.MultibandTile, len(values))
	for k, v := range values {
		tiles[k] = constTile(tileSize, v)
	}
	return New(tiles, meta, nil)
}
