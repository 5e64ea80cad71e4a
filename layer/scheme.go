package layer

import (
	"fmt"
	"math"

	"github.com/nci/tilebridge/proj"
	"github.com/nci/tilebridge/raster"
)

const maxZoomLevel = 30

// worldGridSize returns the layout grid dimensions of the world-wide
// pyramid at a zoom level. Systems with a 2:1 world aspect (EPSG:4326)
// carry twice as many columns as rows.
func worldGridSize(c *proj.CRS, zoom int) (int, int) {
	rows := 1 << uint(zoom)
	aspect := int(math.Round(c.WorldExtent.Width() / c.WorldExtent.Height()))
	if aspect < 1 {
		aspect = 1
	}
	return aspect * rows, rows
}

// ZoomedLayout is the power-of-two world layout of the CRS at a zoom
// level, the grid a pyramid level lives on.
func ZoomedLayout(c *proj.CRS, tileSize, zoom int) LayoutDefinition {
	cols, rows := worldGridSize(c, zoom)
	return LayoutDefinition{
		Extent: c.WorldExtent,
		Layout: TileLayout{LayoutCols: cols, LayoutRows: rows, TileCols: tileSize, TileRows: tileSize},
	}
}

// ZoomFor picks the smallest pyramid level whose resolution is at
// least as fine as cellSize, relaxed by resolutionThreshold.
func ZoomFor(c *proj.CRS, tileSize int, cellSize, resolutionThreshold float64) (int, error) {
	if cellSize <= 0 {
		return 0, fmt.Errorf("cell size must be positive, got %g", cellSize)
	}
	for zoom := 0; zoom <= maxZoomLevel; zoom++ {
		cols, _ := worldGridSize(c, zoom)
		res := c.WorldExtent.Width() / float64(cols*tileSize)
		if res <= cellSize*(1+resolutionThreshold) {
			return zoom, nil
		}
	}
	return maxZoomLevel, nil
}

// FloatingLayout anchors a layout directly on the data extent at the
// layer's native resolution, with the extent snapped outwards to a
// whole number of tiles.
func FloatingLayout(dataExtent raster.Extent, cellW, cellH float64, tileSize int) LayoutDefinition {
	cols := int(math.Ceil(dataExtent.Width() / (cellW * float64(tileSize))))
	rows := int(math.Ceil(dataExtent.Height() / (cellH * float64(tileSize))))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	snapped := raster.Extent{
		XMin: dataExtent.XMin,
		YMax: dataExtent.YMax,
		XMax: dataExtent.XMin + float64(cols*tileSize)*cellW,
		YMin: dataExtent.YMax - float64(rows*tileSize)*cellH,
	}
	return LayoutDefinition{
		Extent: snapped,
		Layout: TileLayout{LayoutCols: cols, LayoutRows: rows, TileCols: tileSize, TileRows: tileSize},
	}
}
