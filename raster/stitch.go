package raster

import "fmt"

// PlacedTile positions a multiband tile on the mosaic canvas by its
// pixel offset from the top-left corner.
type PlacedTile struct {
	OffX int
	OffY int
	Tile *MultibandTile
}

// Stitch mosaics the placed tiles into a single multiband raster. The
// canvas size is the maximum pixel extent reached by any tile. All
// tiles must carry the same band count.
func Stitch(placed []PlacedTile) (*MultibandTile, error) {
	if len(placed) == 0 {
		return nil, fmt.Errorf("nothing to stitch")
	}

	bandCount := placed[0].Tile.BandCount()
	canvasX := 0
	canvasY := 0
	for _, p := range placed {
		cols, rows := p.Tile.Dims()
		if p.Tile.BandCount() != bandCount {
			return nil, fmt.Errorf("mixed band counts detected: %d vs %d", p.Tile.BandCount(), bandCount)
		}
		if p.OffX+cols > canvasX {
			canvasX = p.OffX + cols
		}
		if p.OffY+rows > canvasY {
			canvasY = p.OffY + rows
		}
	}

	out := &MultibandTile{Bands: make([]*Tile, bandCount)}
	for b := 0; b < bandCount; b++ {
		out.Bands[b] = NewTile(canvasX, canvasY, placed[0].Tile.Bands[b].NoData)
	}

	for _, p := range placed {
		cols, rows := p.Tile.Dims()
		for b, band := range p.Tile.Bands {
			dst := out.Bands[b]
			for j := 0; j < rows; j++ {
				for i := 0; i < cols; i++ {
					dst.Cells[(p.OffY+j)*dst.Cols+(p.OffX+i)] = band.Cells[j*band.Cols+i]
				}
			}
		}
	}
	return out, nil
}

// SplitGrid cuts a mosaic back into uniform tileCols x tileRows pieces,
// the inverse of Stitch over a full grid. gridCols*gridRows pieces are
// returned in row-major order.
func SplitGrid(m *MultibandTile, gridCols, gridRows, tileCols, tileRows int) []*MultibandTile {
	out := make([]*MultibandTile, 0, gridCols*gridRows)
	for gr := 0; gr < gridRows; gr++ {
		for gc := 0; gc < gridCols; gc++ {
			piece := &MultibandTile{Bands: make([]*Tile, len(m.Bands))}
			for b, band := range m.Bands {
				t := NewTile(tileCols, tileRows, band.NoData)
				for j := 0; j < tileRows; j++ {
					srcRow := gr*tileRows + j
					if srcRow >= band.Rows {
						continue
					}
					for i := 0; i < tileCols; i++ {
						srcCol := gc*tileCols + i
						if srcCol >= band.Cols {
							continue
						}
						t.Set(i, j, band.Get(srcCol, srcRow))
					}
				}
				piece.Bands[b] = t
			}
			out = append(out, piece)
		}
	}
	return out
}
