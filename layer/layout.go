package layer

import (
	"fmt"
	"math"

	"github.com/nci/tilebridge/raster"
)

// GridBounds is the inclusive key-space rectangle covered by a layer.
type GridBounds struct {
	ColMin int `json:"colMin"`
	RowMin int `json:"rowMin"`
	ColMax int `json:"colMax"`
	RowMax int `json:"rowMax"`
}

func (g GridBounds) Width() int {
	return g.ColMax - g.ColMin + 1
}

func (g GridBounds) Height() int {
	return g.RowMax - g.RowMin + 1
}

func (g GridBounds) Contains(k SpatialKey) bool {
	return k.Col >= g.ColMin && k.Col <= g.ColMax && k.Row >= g.RowMin && k.Row <= g.RowMax
}

// TileLayout describes the tiling grid: how many tiles the layout
// holds in each direction and the pixel dimensions of one tile.
type TileLayout struct {
	LayoutCols int `json:"layoutCols"`
	LayoutRows int `json:"layoutRows"`
	TileCols   int `json:"tileCols"`
	TileRows   int `json:"tileRows"`
}

// LayoutDefinition anchors a tile layout on a georeferenced extent.
// Tile (0, 0) sits at the north-west corner.
type LayoutDefinition struct {
	Extent raster.Extent `json:"extent"`
	Layout TileLayout    `json:"tileLayout"`
}

func (ld LayoutDefinition) CellWidth() float64 {
	return ld.Extent.Width() / float64(ld.Layout.LayoutCols*ld.Layout.TileCols)
}

func (ld LayoutDefinition) CellHeight() float64 {
	return ld.Extent.Height() / float64(ld.Layout.LayoutRows*ld.Layout.TileRows)
}

func (ld LayoutDefinition) tileWidth() float64 {
	return ld.Extent.Width() / float64(ld.Layout.LayoutCols)
}

func (ld LayoutDefinition) tileHeight() float64 {
	return ld.Extent.Height() / float64(ld.Layout.LayoutRows)
}

// TileExtent returns the georeferenced footprint of one tile key.
func (ld LayoutDefinition) TileExtent(k SpatialKey) raster.Extent {
	w := ld.tileWidth()
	h := ld.tileHeight()
	return raster.Extent{
		XMin: ld.Extent.XMin + float64(k.Col)*w,
		YMax: ld.Extent.YMax - float64(k.Row)*h,
		XMax: ld.Extent.XMin + float64(k.Col+1)*w,
		YMin: ld.Extent.YMax - float64(k.Row+1)*h,
	}
}

// GridBoundsFor returns the keys of all layout tiles intersecting e,
// clamped to the layout grid. ok is false when e misses the layout
// entirely.
func (ld LayoutDefinition) GridBoundsFor(e raster.Extent) (GridBounds, bool) {
	if !ld.Extent.Intersects(e) {
		return GridBounds{}, false
	}
	w := ld.tileWidth()
	h := ld.tileHeight()
	const eps = 1e-9

	gb := GridBounds{
		ColMin: int(math.Floor((e.XMin - ld.Extent.XMin) / w)),
		ColMax: int(math.Ceil((e.XMax-ld.Extent.XMin)/w-eps)) - 1,
		RowMin: int(math.Floor((ld.Extent.YMax - e.YMax) / h)),
		RowMax: int(math.Ceil((ld.Extent.YMax-e.YMin)/h-eps)) - 1,
	}
	if gb.ColMin < 0 {
		gb.ColMin = 0
	}
	if gb.RowMin < 0 {
		gb.RowMin = 0
	}
	if gb.ColMax > ld.Layout.LayoutCols-1 {
		gb.ColMax = ld.Layout.LayoutCols - 1
	}
	if gb.RowMax > ld.Layout.LayoutRows-1 {
		gb.RowMax = ld.Layout.LayoutRows - 1
	}
	if gb.ColMax < gb.ColMin || gb.RowMax < gb.RowMin {
		return GridBounds{}, false
	}
	return gb, true
}

// ExtentFromMap converts the host-side extent mapping into an Extent,
// failing on missing keys.
func ExtentFromMap(m map[string]float64) (raster.Extent, error) {
	var e raster.Extent
	for _, field := range []struct {
		name string
		dst  *float64
	}{
		{"xmin", &e.XMin},
		{"ymin", &e.YMin},
		{"xmax", &e.XMax},
		{"ymax", &e.YMax},
	} {
		v, found := m[field.name]
		if !found {
			return e, fmt.Errorf("extent map is missing key %q", field.name)
		}
		*field.dst = v
	}
	if e.IsEmpty() {
		return e, fmt.Errorf("extent %+v is empty", e)
	}
	return e, nil
}

// TileLayoutFromMap converts the host-side layout mapping into a
// TileLayout, failing on missing or non-positive entries.
func TileLayoutFromMap(m map[string]int64) (TileLayout, error) {
	var tl TileLayout
	for _, field := range []struct {
		name string
		dst  *int
	}{
		{"layoutCols", &tl.LayoutCols},
		{"layoutRows", &tl.LayoutRows},
		{"tileCols", &tl.TileCols},
		{"tileRows", &tl.TileRows},
	} {
		v, found := m[field.name]
		if !found {
			return tl, fmt.Errorf("tile layout map is missing key %q", field.name)
		}
		if v <= 0 {
			return tl, fmt.Errorf("tile layout key %q must be positive, got %d", field.name, v)
		}
		*field.dst = int(v)
	}
	return tl, nil
}
