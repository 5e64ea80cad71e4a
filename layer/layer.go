package layer

import (
	"fmt"
	"runtime"
	"sort"

	"github.com/nci/tilebridge/raster"
	"github.com/nci/tilebridge/utils"
)

// DefaultWorkers bounds the per-tile parallelism of layer operations.
var DefaultWorkers = runtime.NumCPU()

// TiledLayer is a keyed collection of multi-band tiles plus the layer
// metadata. Layers are immutable: every operation returns a new layer
// and leaves its receiver untouched.
type TiledLayer[K TileKey[K]] struct {
	Tiles map[K]*raster.MultibandTile
	Meta  Metadata
	// Zoom is the pyramid level of the layer's layout, nil when the
	// layout does not correspond to a known pyramid level.
	Zoom *int
}

// New builds a layer from tiles and metadata, recomputing the key
// bounds from the tiles actually present.
func New[K TileKey[K]](tiles map[K]*raster.MultibandTile, meta Metadata, zoom *int) *TiledLayer[K] {
	l := &TiledLayer[K]{Tiles: tiles, Meta: meta, Zoom: zoom}
	l.Meta = boundsOf(tiles, meta)
	return l
}

func (l *TiledLayer[K]) IsEmpty() bool {
	return len(l.Tiles) == 0
}

// Keys returns the layer's keys in serialization order.
func (l *TiledLayer[K]) Keys() []K {
	keys := make([]K, 0, len(l.Tiles))
	for k := range l.Tiles {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return KeyLess(keys[i], keys[j]) })
	return keys
}

// BandCount returns the band count shared by the layer's tiles, or 0
// for an empty layer.
func (l *TiledLayer[K]) BandCount() int {
	for _, t := range l.Tiles {
		return t.BandCount()
	}
	return 0
}

func zoomPtr(z int) *int {
	return &z
}

// boundsOf rewrites the metadata key bounds (and instant range) from
// the tiles present.
func boundsOf[K TileKey[K]](tiles map[K]*raster.MultibandTile, meta Metadata) Metadata {
	meta.Bounds = nil
	meta.MinInstant = nil
	meta.MaxInstant = nil
	for k := range tiles {
		sk := k.SpatialComponent()
		if meta.Bounds == nil {
			meta.Bounds = &GridBounds{ColMin: sk.Col, RowMin: sk.Row, ColMax: sk.Col, RowMax: sk.Row}
		} else {
			if sk.Col < meta.Bounds.ColMin {
				meta.Bounds.ColMin = sk.Col
			}
			if sk.Col > meta.Bounds.ColMax {
				meta.Bounds.ColMax = sk.Col
			}
			if sk.Row < meta.Bounds.RowMin {
				meta.Bounds.RowMin = sk.Row
			}
			if sk.Row > meta.Bounds.RowMax {
				meta.Bounds.RowMax = sk.Row
			}
		}
		if instant, temporal := InstantOf(k); temporal {
			if meta.MinInstant == nil || instant < *meta.MinInstant {
				v := instant
				meta.MinInstant = &v
			}
			if meta.MaxInstant == nil || instant > *meta.MaxInstant {
				v := instant
				meta.MaxInstant = &v
			}
		}
	}
	return meta
}

// mapTiles runs fn over every tile concurrently, bounded by
// DefaultWorkers, and collects non-nil results into a new tile map.
func mapTiles[K TileKey[K]](tiles map[K]*raster.MultibandTile, fn func(K, *raster.MultibandTile) *raster.MultibandTile) map[K]*raster.MultibandTile {
	type result struct {
		key  K
		tile *raster.MultibandTile
	}

	out := make(map[K]*raster.MultibandTile, len(tiles))
	results := make(chan result, len(tiles))
	limiter := utils.NewConcLimiter(DefaultWorkers)
	for k, t := range tiles {
		limiter.Increase()
		go func(k K, t *raster.MultibandTile) {
			defer limiter.Decrease()
			results <- result{key: k, tile: fn(k, t)}
		}(k, t)
	}
	limiter.Wait()
	close(results)

	for r := range results {
		if r.tile != nil {
			out[r.key] = r.tile
		}
	}
	return out
}

// groupByInstant splits the keys into temporal slices. A purely
// spatial layer comes back as a single slice.
func groupByInstant[K TileKey[K]](l *TiledLayer[K]) map[int64][]K {
	groups := make(map[int64][]K)
	for k := range l.Tiles {
		instant, _ := InstantOf(k)
		groups[instant] = append(groups[instant], k)
	}
	return groups
}

// stitchGroup mosaics one temporal slice of the layer into a single
// multiband raster and returns it with the mosaic's extent and the
// key bounds it covers.
func stitchGroup[K TileKey[K]](l *TiledLayer[K], keys []K) (*raster.MultibandTile, raster.Extent, GridBounds, error) {
	if len(keys) == 0 {
		return nil, raster.Extent{}, GridBounds{}, fmt.Errorf("nothing to stitch")
	}

	gb := GridBounds{}
	for i, k := range keys {
		sk := k.SpatialComponent()
		if i == 0 {
			gb = GridBounds{ColMin: sk.Col, RowMin: sk.Row, ColMax: sk.Col, RowMax: sk.Row}
			continue
		}
		if sk.Col < gb.ColMin {
			gb.ColMin = sk.Col
		}
		if sk.Col > gb.ColMax {
			gb.ColMax = sk.Col
		}
		if sk.Row < gb.RowMin {
			gb.RowMin = sk.Row
		}
		if sk.Row > gb.RowMax {
			gb.RowMax = sk.Row
		}
	}

	tl := l.Meta.Layout.Layout
	placed := make([]raster.PlacedTile, 0, len(keys))
	for _, k := range keys {
		sk := k.SpatialComponent()
		placed = append(placed, raster.PlacedTile{
			OffX: (sk.Col - gb.ColMin) * tl.TileCols,
			OffY: (sk.Row - gb.RowMin) * tl.TileRows,
			Tile: l.Tiles[k],
		})
	}
	mosaic, err := raster.Stitch(placed)
	if err != nil {
		return nil, raster.Extent{}, GridBounds{}, err
	}

	nw := l.Meta.Layout.TileExtent(SpatialKey{Col: gb.ColMin, Row: gb.RowMin})
	se := l.Meta.Layout.TileExtent(SpatialKey{Col: gb.ColMax, Row: gb.RowMax})
	mosaicExtent := raster.Extent{XMin: nw.XMin, YMax: nw.YMax, XMax: se.XMax, YMin: se.YMin}
	return mosaic, mosaicExtent, gb, nil
}

func tileIsEmpty(t *raster.MultibandTile) bool {
	for _, band := range t.Bands {
		for _, v := range band.Cells {
			if !band.IsNoData(v) {
				return false
			}
		}
	}
	return true
}
