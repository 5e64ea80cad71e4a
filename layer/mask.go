package layer

import (
	"fmt"

	"github.com/nci/tilebridge/raster"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// ParsePolygonalWKT parses well-known-text geometries and keeps only
// the polygon and multi-polygon instances; geometries of any other
// type are silently dropped. A string that fails to parse at all is an
// error.
func ParsePolygonalWKT(wkts []string) ([]orb.Geometry, error) {
	geoms := make([]orb.Geometry, 0, len(wkts))
	for _, s := range wkts {
		g, err := wkt.Unmarshal(s)
		if err != nil {
			return nil, fmt.Errorf("failed to parse WKT geometry %q: %v", s, err)
		}
		switch g.(type) {
		case orb.Polygon, orb.MultiPolygon:
			geoms = append(geoms, g)
		}
	}
	return geoms, nil
}

// MaskGeometries restricts the layer to the coverage of the given WKT
// polygons: cells outside every geometry become nodata and tiles left
// with no data are dropped. The layout is unchanged, so the zoom level
// is retained.
func (l *TiledLayer[K]) MaskGeometries(wkts []string) (*TiledLayer[K], error) {
	geoms, err := ParsePolygonalWKT(wkts)
	if err != nil {
		return nil, err
	}

	tl := l.Meta.Layout.Layout
	tiles := mapTiles(l.Tiles, func(k K, t *raster.MultibandTile) *raster.MultibandTile {
		tileExtent := l.Meta.Layout.TileExtent(k.SpatialComponent())
		mask := raster.Rasterize(geoms, tileExtent, tl.TileCols, tl.TileRows, 1, 0)

		out := t.Clone()
		covered := false
		for i, m := range mask.Cells {
			if m == 1 {
				covered = true
				continue
			}
			for _, band := range out.Bands {
				band.Cells[i] = band.NoData
			}
		}
		if !covered {
			return nil
		}
		return out
	})

	return New(tiles, l.Meta, l.Zoom), nil
}
