package layer

import (
	"fmt"

	"github.com/nci/tilebridge/raster"
)

// Pyramid builds the zoom levels startZoom..endZoom, treating the
// receiver as the endZoom level and deriving each coarser level by
// collapsing 2x2 tile blocks with the given resample method. The
// result is ordered by ascending zoom, so its zoom markers strictly
// increase. Pyramiding a layer with empty key bounds is a hard error.
func (l *TiledLayer[K]) Pyramid(startZoom, endZoom int, resampleName string) ([]*TiledLayer[K], error) {
	if l.Meta.Bounds == nil || l.IsEmpty() {
		return nil, fmt.Errorf("cannot pyramid a layer with empty key bounds")
	}
	if startZoom > endZoom {
		return nil, fmt.Errorf("start zoom %d must not exceed end zoom %d", startZoom, endZoom)
	}
	if startZoom < 0 {
		return nil, fmt.Errorf("start zoom must not be negative, got %d", startZoom)
	}
	method, err := raster.ResampleMethodFromName(resampleName)
	if err != nil {
		return nil, err
	}

	levels := make([]*TiledLayer[K], endZoom-startZoom+1)
	finest := New(l.Tiles, l.Meta, zoomPtr(endZoom))
	levels[endZoom-startZoom] = finest

	current := finest
	for zoom := endZoom - 1; zoom >= startZoom; zoom-- {
		current = nextLevelUp(current, zoom, method)
		levels[zoom-startZoom] = current
	}
	return levels, nil
}

// nextLevelUp halves the layout grid of src: each parent tile mosaics
// its up-to-four children and decimates every 2x2 pixel block into one
// cell.
func nextLevelUp[K TileKey[K]](src *TiledLayer[K], zoom int, method raster.ResampleMethod) *TiledLayer[K] {
	srcLayout := src.Meta.Layout
	tl := srcLayout.Layout

	// Odd grids round up so every child column and row keeps a parent.
	// The layout extent pads east and south to match, keeping parent
	// cells exactly twice the child cell size.
	parentCols := (tl.LayoutCols + 1) / 2
	parentRows := (tl.LayoutRows + 1) / 2
	parentLayout := LayoutDefinition{
		Extent: raster.Extent{
			XMin: srcLayout.Extent.XMin,
			YMax: srcLayout.Extent.YMax,
			XMax: srcLayout.Extent.XMin + float64(parentCols)*2*srcLayout.tileWidth(),
			YMin: srcLayout.Extent.YMax - float64(parentRows)*2*srcLayout.tileHeight(),
		},
		Layout: TileLayout{
			LayoutCols: parentCols,
			LayoutRows: parentRows,
			TileCols:   tl.TileCols,
			TileRows:   tl.TileRows,
		},
	}

	// Group children under their parent key.
	children := make(map[K][]K)
	for k := range src.Tiles {
		sk := k.SpatialComponent()
		parent := k.WithSpatialComponent(SpatialKey{Col: sk.Col / 2, Row: sk.Row / 2})
		children[parent] = append(children[parent], k)
	}

	parents := make(map[K]*raster.MultibandTile, len(children))
	for parent := range children {
		parents[parent] = nil
	}

	tiles := mapTiles(parents, func(parent K, _ *raster.MultibandTile) *raster.MultibandTile {
		psk := parent.SpatialComponent()
		placed := make([]raster.PlacedTile, 0, 4)
		for _, child := range children[parent] {
			csk := child.SpatialComponent()
			placed = append(placed, raster.PlacedTile{
				OffX: (csk.Col - psk.Col*2) * tl.TileCols,
				OffY: (csk.Row - psk.Row*2) * tl.TileRows,
				Tile: src.Tiles[child],
			})
		}
		// Anchor the canvas at the full 2x2 block so partial blocks
		// still decimate into the right cells.
		anchor := &raster.MultibandTile{Bands: make([]*raster.Tile, src.Tiles[children[parent][0]].BandCount())}
		for b := range anchor.Bands {
			anchor.Bands[b] = raster.NewTile(2*tl.TileCols, 2*tl.TileRows, src.Tiles[children[parent][0]].Bands[b].NoData)
		}
		placed = append([]raster.PlacedTile{{OffX: 0, OffY: 0, Tile: anchor}}, placed...)

		block, err := raster.Stitch(placed)
		if err != nil {
			return nil
		}
		return decimate(block, method)
	})

	meta := src.Meta
	meta.Layout = parentLayout
	return New(tiles, meta, zoomPtr(zoom))
}

// decimate folds every 2x2 pixel block of m into a single output cell.
func decimate(m *raster.MultibandTile, method raster.ResampleMethod) *raster.MultibandTile {
	cols, rows := m.Dims()
	outCols := cols / 2
	outRows := rows / 2
	out := &raster.MultibandTile{Bands: make([]*raster.Tile, len(m.Bands))}
	block := make([]float64, 0, 4)
	for b, band := range m.Bands {
		dst := raster.NewTile(outCols, outRows, band.NoData)
		for row := 0; row < outRows; row++ {
			for col := 0; col < outCols; col++ {
				block = block[:0]
				for dy := 0; dy < 2; dy++ {
					for dx := 0; dx < 2; dx++ {
						block = append(block, band.Get(col*2+dx, row*2+dy))
					}
				}
				dst.Set(col, row, raster.Aggregate(block, band.NoData, method))
			}
		}
		out.Bands[b] = dst
	}
	return out
}
