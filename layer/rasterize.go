package layer

import (
	"fmt"

	"github.com/nci/tilebridge/proj"
	"github.com/nci/tilebridge/raster"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// Rasterize burns a single WKT polygon or multi-polygon into a new
// one-tile layer covering extent at cols x rows cells. Unlike the
// mask/cost-distance inputs, a non-polygonal geometry here is
// rejected. The single tile carries key (0, 0); for a spatiotemporal
// layer the key is stamped with instant. The zoom level is unknown.
func Rasterize[K TileKey[K]](protoKey K, wktStr string, extentMap map[string]float64, crs string, cols, rows int, fillValue float64) (*TiledLayer[K], error) {
	g, err := wkt.Unmarshal(wktStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse WKT geometry: %v", err)
	}
	switch g.(type) {
	case orb.Polygon, orb.MultiPolygon:
	default:
		return nil, fmt.Errorf("rasterize requires a polygon or multi-polygon, got %T", g)
	}

	extent, err := ExtentFromMap(extentMap)
	if err != nil {
		return nil, err
	}
	resolved, err := proj.Resolve(crs)
	if err != nil {
		return nil, err
	}
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", cols, rows)
	}

	noData := 0.0
	burned := raster.Rasterize([]orb.Geometry{g}, extent, cols, rows, fillValue, noData)

	meta := Metadata{
		CellType: raster.CellTypeFloat64,
		CRS:      resolved.Code,
		NoData:   noData,
		Extent:   extent,
		Layout: LayoutDefinition{
			Extent: extent,
			Layout: TileLayout{LayoutCols: 1, LayoutRows: 1, TileCols: cols, TileRows: rows},
		},
	}

	tiles := map[K]*raster.MultibandTile{
		protoKey.WithSpatialComponent(SpatialKey{Col: 0, Row: 0}): raster.NewMultibandTile(burned),
	}
	return New(tiles, meta, nil), nil
}

// RasterizeSpatial is the purely spatial form of Rasterize.
func RasterizeSpatial(wktStr string, extentMap map[string]float64, crs string, cols, rows int, fillValue float64) (*TiledLayer[SpatialKey], error) {
	return Rasterize(SpatialKey{}, wktStr, extentMap, crs, cols, rows, fillValue)
}

// RasterizeSpaceTime stamps every key of the single-tile layer with
// the given time instant.
func RasterizeSpaceTime(wktStr string, extentMap map[string]float64, crs string, cols, rows int, fillValue float64, instant int64) (*TiledLayer[SpaceTimeKey], error) {
	return Rasterize(SpaceTimeKey{Instant: instant}, wktStr, extentMap, crs, cols, rows, fillValue)
}
