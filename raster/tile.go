// Package raster implements the single-node raster kernels the layer
// operations are built on: warping, focal windows, rasterization,
// cost-distance propagation, local band arithmetic and mosaicking.
// Tiles are dense row-major float64 grids with a per-tile nodata value.
package raster

import (
	"fmt"
	"math"
)

const CellTypeFloat64 = "float64"

type Tile struct {
	Cols   int
	Rows   int
	NoData float64
	Cells  []float64
}

// NewTile allocates a tile with every cell set to nodata.
func NewTile(cols, rows int, noData float64) *Tile {
	t := &Tile{Cols: cols, Rows: rows, NoData: noData, Cells: make([]float64, cols*rows)}
	if noData != 0 {
		for i := range t.Cells {
			t.Cells[i] = noData
		}
	}
	return t
}

func (t *Tile) Get(col, row int) float64 {
	return t.Cells[row*t.Cols+col]
}

func (t *Tile) Set(col, row int, v float64) {
	t.Cells[row*t.Cols+col] = v
}

// IsNoData reports whether v is the tile's nodata value. NaN nodata
// compares true against any NaN cell.
func (t *Tile) IsNoData(v float64) bool {
	if math.IsNaN(t.NoData) {
		return math.IsNaN(v)
	}
	return v == t.NoData
}

func (t *Tile) Clone() *Tile {
	out := &Tile{Cols: t.Cols, Rows: t.Rows, NoData: t.NoData, Cells: make([]float64, len(t.Cells))}
	copy(out.Cells, t.Cells)
	return out
}

type MultibandTile struct {
	Bands []*Tile
}

func NewMultibandTile(bands ...*Tile) *MultibandTile {
	return &MultibandTile{Bands: bands}
}

func (m *MultibandTile) BandCount() int {
	return len(m.Bands)
}

// Dims returns the shared grid dimensions of the bands.
func (m *MultibandTile) Dims() (int, int) {
	if len(m.Bands) == 0 {
		return 0, 0
	}
	return m.Bands[0].Cols, m.Bands[0].Rows
}

func (m *MultibandTile) Clone() *MultibandTile {
	out := &MultibandTile{Bands: make([]*Tile, len(m.Bands))}
	for i, b := range m.Bands {
		out.Bands[i] = b.Clone()
	}
	return out
}

// Validate checks the bands are co-registered.
func (m *MultibandTile) Validate() error {
	if len(m.Bands) == 0 {
		return fmt.Errorf("multiband tile has no bands")
	}
	cols, rows := m.Bands[0].Cols, m.Bands[0].Rows
	for i, b := range m.Bands {
		if b.Cols != cols || b.Rows != rows {
			return fmt.Errorf("band %d dims %dx%d do not match band 0 dims %dx%d", i, b.Cols, b.Rows, cols, rows)
		}
	}
	return nil
}
