package layer

import (
	"github.com/nci/tilebridge/raster"
)

// CostDistance computes, per temporal slice, the minimum cumulative
// traversal cost from the source geometries across the layer's band-0
// friction surface, cutting off at maxDistance. Non-polygonal WKT
// inputs are silently dropped. The layout is unchanged, so the zoom
// level is retained.
func (l *TiledLayer[K]) CostDistance(wkts []string, maxDistance float64) (*TiledLayer[K], error) {
	geoms, err := ParsePolygonalWKT(wkts)
	if err != nil {
		return nil, err
	}

	tl := l.Meta.Layout.Layout
	out := make(map[K]*raster.MultibandTile)

	for _, keys := range groupByInstant(l) {
		mosaic, mosaicExtent, gb, err := stitchGroup(l, keys)
		if err != nil {
			return nil, err
		}
		friction := mosaic.Bands[0]

		// Source cells are the rasterized footprint of the geometries
		// on the mosaic grid.
		burned := raster.Rasterize(geoms, mosaicExtent, friction.Cols, friction.Rows, 1, 0)
		var sources []int
		for i, v := range burned.Cells {
			if v == 1 {
				sources = append(sources, i)
			}
		}

		distance := raster.CostDistance(friction, sources, maxDistance)

		pieces := raster.SplitGrid(raster.NewMultibandTile(distance), gb.Width(), gb.Height(), tl.TileCols, tl.TileRows)
		protoKey := keys[0]
		for i, piece := range pieces {
			sk := SpatialKey{
				Col: gb.ColMin + i%gb.Width(),
				Row: gb.RowMin + i/gb.Width(),
			}
			k := protoKey.WithSpatialComponent(sk)
			if _, present := l.Tiles[k]; !present {
				continue
			}
			out[k] = piece
		}
	}

	return New(out, l.Meta, l.Zoom), nil
}
