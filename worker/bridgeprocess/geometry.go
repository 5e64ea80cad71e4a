package bridgeprocess

import (
	"encoding/json"
	"fmt"

	geo "github.com/nci/geometry"
	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"

	pb "github.com/nci/tilebridge/worker/bridgeservice"
)

// requestGeometries collects the WKT geometries of a request. A
// GeoJSON feature, when present, is converted to WKT and appended, so
// downstream geometry filtering sees one uniform list.
func (s *Server) requestGeometries(in *pb.OpRequest) ([]string, error) {
	wkts := append([]string(nil), in.Geometries...)
	if len(in.GeojsonGeometry) == 0 {
		return wkts, nil
	}

	var feat geo.Feature
	if err := json.Unmarshal([]byte(in.GeojsonGeometry), &feat); err != nil {
		return nil, fmt.Errorf("problem unmarshalling geometry: %v", err)
	}
	geomGeoJSON, err := json.Marshal(feat.Geometry)
	if err != nil {
		return nil, fmt.Errorf("problem marshaling GeoJSON geometry: %v", err)
	}

	g, err := geojson.UnmarshalGeometry(geomGeoJSON)
	if err != nil {
		return nil, fmt.Errorf("geometry %s could not be parsed: %v", in.GeojsonGeometry, err)
	}
	switch {
	case g.IsPolygon():
		wkts = append(wkts, wkt.MarshalString(polygonFromCoords(g.Polygon)))
	case g.IsMultiPolygon():
		mp := make(orb.MultiPolygon, 0, len(g.MultiPolygon))
		for _, poly := range g.MultiPolygon {
			mp = append(mp, polygonFromCoords(poly))
		}
		wkts = append(wkts, wkt.MarshalString(mp))
	default:
		// Non-polygonal features fall through, matching the WKT
		// filtering in the mask and cost distance paths.
	}
	return wkts, nil
}

func polygonFromCoords(coords [][][]float64) orb.Polygon {
	poly := make(orb.Polygon, 0, len(coords))
	for _, ring := range coords {
		r := make(orb.Ring, 0, len(ring))
		for _, pt := range ring {
			r = append(r, orb.Point{pt[0], pt[1]})
		}
		poly = append(poly, r)
	}
	return poly
}
