// Package proj resolves coordinate reference system strings and
// provides point transforms between the supported systems.
package proj

import (
	"fmt"
	"math"
	"strings"

	"github.com/nci/tilebridge/raster"
)

const earthRadius = 6378137.0

var webMercatorMax = earthRadius * math.Pi

type CRS struct {
	Code string
	// WorldExtent is the full valid coverage of the system, used to
	// anchor zoomed layout schemes.
	WorldExtent raster.Extent
}

var epsg4326 = &CRS{
	Code:        "EPSG:4326",
	WorldExtent: raster.Extent{XMin: -180, YMin: -90, XMax: 180, YMax: 90},
}

var epsg3857 = &CRS{
	Code:        "EPSG:3857",
	WorldExtent: raster.Extent{XMin: -webMercatorMax, YMin: -webMercatorMax, XMax: webMercatorMax, YMax: webMercatorMax},
}

// Resolve maps a CRS string onto a known coordinate system. EPSG codes
// and their common proj4 aliases are accepted; anything else fails.
func Resolve(srs string) (*CRS, error) {
	s := strings.TrimSpace(srs)
	switch strings.ToUpper(s) {
	case "EPSG:4326", "WGS84":
		return epsg4326, nil
	case "EPSG:3857", "EPSG:900913":
		return epsg3857, nil
	}
	if strings.HasPrefix(s, "+proj=longlat") {
		return epsg4326, nil
	}
	if strings.HasPrefix(s, "+proj=merc") {
		return epsg3857, nil
	}
	return nil, fmt.Errorf("unresolvable CRS: %s", srs)
}

func (c *CRS) Equal(o *CRS) bool {
	return c != nil && o != nil && c.Code == o.Code
}

// Transform returns a point transform from src to dst coordinates,
// or an error when no transform between the two systems exists.
func Transform(src, dst *CRS) (raster.PointTransform, error) {
	if src.Equal(dst) {
		return raster.IdentityTransform, nil
	}
	if src.Equal(epsg4326) && dst.Equal(epsg3857) {
		return lonLatToWebMercator, nil
	}
	if src.Equal(epsg3857) && dst.Equal(epsg4326) {
		return webMercatorToLonLat, nil
	}
	return nil, fmt.Errorf("no transform from %s to %s", src.Code, dst.Code)
}

// TransformExtent maps the corner points of an extent and returns the
// envelope of the result.
func TransformExtent(e raster.Extent, t raster.PointTransform) raster.Extent {
	x0, y0 := t(e.XMin, e.YMin)
	x1, y1 := t(e.XMax, e.YMax)
	x2, y2 := t(e.XMin, e.YMax)
	x3, y3 := t(e.XMax, e.YMin)
	return raster.Extent{
		XMin: math.Min(math.Min(x0, x1), math.Min(x2, x3)),
		YMin: math.Min(math.Min(y0, y1), math.Min(y2, y3)),
		XMax: math.Max(math.Max(x0, x1), math.Max(x2, x3)),
		YMax: math.Max(math.Max(y0, y1), math.Max(y2, y3)),
	}
}

func lonLatToWebMercator(lon, lat float64) (float64, float64) {
	// Clamp to the web mercator latitude cutoff.
	if lat > 85.06 {
		lat = 85.06
	}
	if lat < -85.06 {
		lat = -85.06
	}
	x := lon * webMercatorMax / 180
	y := math.Log(math.Tan((90+lat)*math.Pi/360)) * earthRadius
	return x, y
}

func webMercatorToLonLat(x, y float64) (float64, float64) {
	lon := x / webMercatorMax * 180
	lat := math.Atan(math.Exp(y/earthRadius))*360/math.Pi - 90
	return lon, lat
}
