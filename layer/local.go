package layer

import (
	"fmt"
	"sync"

	"github.com/nci/tilebridge/raster"
)

// LocalScalar applies +, -, * or / between a constant and every band
// of every tile. scalarLeft places the constant on the left operand,
// which matters for subtraction and division. The layout is untouched,
// so metadata and zoom level carry over unchanged.
func (l *TiledLayer[K]) LocalScalar(opName string, scalar float64, scalarLeft bool) (*TiledLayer[K], error) {
	op, err := raster.LocalOpFromName(opName)
	if err != nil {
		return nil, err
	}

	tiles := mapTiles(l.Tiles, func(k K, t *raster.MultibandTile) *raster.MultibandTile {
		out := &raster.MultibandTile{Bands: make([]*raster.Tile, len(t.Bands))}
		for i, band := range t.Bands {
			out.Bands[i] = raster.LocalScalar(band, op, scalar, scalarLeft)
		}
		return out
	})
	return New(tiles, l.Meta, l.Zoom), nil
}

// LocalLayer applies the operation elementwise between tiles of the
// receiver and other joined on equal keys; keys present on only one
// side are dropped. Bands are paired positionally, which presumes the
// two layers carry equal band counts. The layers must share a layout.
func (l *TiledLayer[K]) LocalLayer(other *TiledLayer[K], opName string) (*TiledLayer[K], error) {
	op, err := raster.LocalOpFromName(opName)
	if err != nil {
		return nil, err
	}
	if l.Meta.Layout != other.Meta.Layout {
		return nil, fmt.Errorf("layer layouts differ: %+v vs %+v", l.Meta.Layout, other.Meta.Layout)
	}

	joined := make(map[K]*raster.MultibandTile)
	for k, t := range l.Tiles {
		if _, present := other.Tiles[k]; present {
			joined[k] = t
		}
	}

	var mu sync.Mutex
	var bandErr error
	fail := func(err error) {
		mu.Lock()
		if bandErr == nil {
			bandErr = err
		}
		mu.Unlock()
	}

	tiles := mapTiles(joined, func(k K, t *raster.MultibandTile) *raster.MultibandTile {
		ot := other.Tiles[k]
		if t.BandCount() != ot.BandCount() {
			fail(fmt.Errorf("band count mismatch at key %v: %d vs %d", k, t.BandCount(), ot.BandCount()))
			return nil
		}
		out := &raster.MultibandTile{Bands: make([]*raster.Tile, len(t.Bands))}
		for i, band := range t.Bands {
			combined, err := raster.LocalBinary(band, ot.Bands[i], op)
			if err != nil {
				fail(err)
				return nil
			}
			out.Bands[i] = combined
		}
		return out
	})
	if bandErr != nil {
		return nil, bandErr
	}
	return New(tiles, l.Meta, l.Zoom), nil
}

// Normalize rescales every band into the byte display range, taking
// the range from each band's own min/max when offset and clip are both
// zero.
func (l *TiledLayer[K]) Normalize(offset, clip float64) *TiledLayer[K] {
	tiles := mapTiles(l.Tiles, func(k K, t *raster.MultibandTile) *raster.MultibandTile {
		out := &raster.MultibandTile{Bands: make([]*raster.Tile, len(t.Bands))}
		for i, band := range t.Bands {
			out.Bands[i] = raster.Normalize(band, offset, clip)
		}
		return out
	})
	return New(tiles, l.Meta, l.Zoom)
}

// MapAlgebra evaluates a band-math expression over variables b0..bn
// per cell, yielding a single-band layer. The layout is unchanged, so
// the zoom level is retained.
func (l *TiledLayer[K]) MapAlgebra(expr string) (*TiledLayer[K], error) {
	compiled, err := raster.CompileExpression(expr)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	var evalErr error
	tiles := mapTiles(l.Tiles, func(k K, t *raster.MultibandTile) *raster.MultibandTile {
		derived, err := raster.MapAlgebra(t, compiled)
		if err != nil {
			mu.Lock()
			if evalErr == nil {
				evalErr = err
			}
			mu.Unlock()
			return nil
		}
		return raster.NewMultibandTile(derived)
	})
	if evalErr != nil {
		return nil, evalErr
	}
	return New(tiles, l.Meta, l.Zoom), nil
}
