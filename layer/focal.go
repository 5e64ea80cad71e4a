package layer

import (
	"github.com/nci/tilebridge/raster"
)

// Focal runs a focal window operation over band 0 of every tile,
// buffering tile borders with cells from adjacent tiles of the same
// instant. The result is a single-band layer on the unchanged layout,
// so the zoom level is retained.
func (l *TiledLayer[K]) Focal(opName, neighborhoodName string, params []float64) (*TiledLayer[K], error) {
	op, err := raster.FocalOpFromName(opName)
	if err != nil {
		return nil, err
	}
	nb, err := raster.NeighborhoodFromName(neighborhoodName, params)
	if err != nil {
		return nil, err
	}
	margin := nb.Extent
	if margin < 1 {
		margin = 1
	}

	cellW := l.Meta.Layout.CellWidth()
	cellH := l.Meta.Layout.CellHeight()

	tiles := mapTiles(l.Tiles, func(k K, t *raster.MultibandTile) *raster.MultibandTile {
		padded := padFromNeighbors(l, k, margin)
		return raster.NewMultibandTile(raster.FocalApply(padded, margin, op, nb, cellW, cellH))
	})

	return New(tiles, l.Meta, l.Zoom), nil
}

// padFromNeighbors builds band 0 of the keyed tile surrounded by a
// margin of cells read from the eight adjacent tiles. Margins with no
// neighbor tile stay nodata.
func padFromNeighbors[K TileKey[K]](l *TiledLayer[K], k K, margin int) *raster.Tile {
	center := l.Tiles[k].Bands[0]
	padded := raster.NewTile(center.Cols+2*margin, center.Rows+2*margin, center.NoData)

	sk := k.SpatialComponent()
	for dRow := -1; dRow <= 1; dRow++ {
		for dCol := -1; dCol <= 1; dCol++ {
			nk := k.WithSpatialComponent(SpatialKey{Col: sk.Col + dCol, Row: sk.Row + dRow})
			neighbor, found := l.Tiles[nk]
			if !found {
				continue
			}
			band := neighbor.Bands[0]
			// Top-left of the neighbor tile on the padded canvas.
			baseX := margin + dCol*center.Cols
			baseY := margin + dRow*center.Rows
			for row := 0; row < band.Rows; row++ {
				py := baseY + row
				if py < 0 || py >= padded.Rows {
					continue
				}
				for col := 0; col < band.Cols; col++ {
					px := baseX + col
					if px < 0 || px >= padded.Cols {
						continue
					}
					padded.Set(px, py, band.Get(col, row))
				}
			}
		}
	}
	return padded
}
