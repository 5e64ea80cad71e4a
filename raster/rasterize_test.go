package raster

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func unitSquare(x0, y0, x1, y1 float64) orb.Polygon {
	return orb.Polygon{orb.Ring{
		{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0},
	}}
}

func TestRasterizeBurnsCellCenters(t *testing.T) {
	// 4x4 grid over [0,4]x[0,4], polygon covering the left half.
	poly := unitSquare(0, 0, 2, 4)
	out := Rasterize([]orb.Geometry{poly}, Extent{XMin: 0, YMin: 0, XMax: 4, YMax: 4}, 4, 4, 1, -1)

	for row := 0; row < 4; row++ {
		assert.Equal(t, 1.0, out.Get(0, row))
		assert.Equal(t, 1.0, out.Get(1, row))
		assert.Equal(t, -1.0, out.Get(2, row))
		assert.Equal(t, -1.0, out.Get(3, row))
	}
}

func TestRasterizeMultiPolygon(t *testing.T) {
	mp := orb.MultiPolygon{unitSquare(0, 0, 1, 1), unitSquare(3, 3, 4, 4)}
	out := Rasterize([]orb.Geometry{mp}, Extent{XMin: 0, YMin: 0, XMax: 4, YMax: 4}, 4, 4, 9, 0)

	// Rows grow south: grid row 0 is the top of the extent.
	assert.Equal(t, 9.0, out.Get(0, 3))
	assert.Equal(t, 9.0, out.Get(3, 0))
	assert.Equal(t, 0.0, out.Get(1, 1))
}

func TestRasterizeNonPolygonalGeometryBurnsNothing(t *testing.T) {
	line := orb.LineString{{0, 0}, {4, 4}}
	out := Rasterize([]orb.Geometry{line}, Extent{XMin: 0, YMin: 0, XMax: 4, YMax: 4}, 4, 4, 1, -1)
	for _, v := range out.Cells {
		assert.Equal(t, -1.0, v)
	}
}

func TestGeometryContains(t *testing.T) {
	poly := unitSquare(0, 0, 2, 2)
	assert.True(t, GeometryContains(poly, 1, 1))
	assert.False(t, GeometryContains(poly, 3, 1))
	assert.False(t, GeometryContains(orb.Point{1, 1}, 1, 1))
}
