package raster

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// GeometryContains tests a point against a polygon or multipolygon.
// Other geometry types never contain anything here; call sites filter
// them out before rasterization.
func GeometryContains(g orb.Geometry, x, y float64) bool {
	pt := orb.Point{x, y}
	switch t := g.(type) {
	case orb.Polygon:
		return planar.PolygonContains(t, pt)
	case orb.MultiPolygon:
		return planar.MultiPolygonContains(t, pt)
	default:
		return false
	}
}

// Rasterize burns value into a cols x rows grid covering extent for
// every cell whose center lies inside one of the geometries. Cells
// outside all geometries hold nodata.
func Rasterize(geoms []orb.Geometry, extent Extent, cols, rows int, value, noData float64) *Tile {
	out := NewTile(cols, rows, noData)
	if len(geoms) == 0 {
		return out
	}
	geot := Geotransform(cols, rows, extent)

	type bounded struct {
		geom  orb.Geometry
		bound orb.Bound
	}
	candidates := make([]bounded, len(geoms))
	for i, g := range geoms {
		candidates[i] = bounded{geom: g, bound: g.Bound()}
	}

	for row := 0; row < rows; row++ {
		y := geot[3] + (float64(row)+0.5)*geot[5]
		for col := 0; col < cols; col++ {
			x := geot[0] + (float64(col)+0.5)*geot[1]
			for _, c := range candidates {
				if x < c.bound.Min[0] || x > c.bound.Max[0] || y < c.bound.Min[1] || y > c.bound.Max[1] {
					continue
				}
				if GeometryContains(c.geom, x, y) {
					out.Set(col, row, value)
					break
				}
			}
		}
	}
	return out
}
