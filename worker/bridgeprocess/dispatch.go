package bridgeprocess

import (
	"fmt"

	context "golang.org/x/net/context"

	"github.com/nci/tilebridge/catalog"
	"github.com/nci/tilebridge/layer"
	pb "github.com/nci/tilebridge/worker/bridgeservice"
)

func errResultf(format string, args ...interface{}) *pb.OpResult {
	return &pb.OpResult{Error: fmt.Sprintf(format, args...)}
}

func zoomMsg(z *int) *pb.OptionalInt {
	if z == nil {
		return &pb.OptionalInt{}
	}
	return &pb.OptionalInt{Value: int32(*z), Valid: true}
}

func extentMapFromRequest(vals []float64) (map[string]float64, error) {
	if len(vals) != 4 {
		return nil, fmt.Errorf("extent wants 4 values, got %d", len(vals))
	}
	return map[string]float64{"xmin": vals[0], "ymin": vals[1], "xmax": vals[2], "ymax": vals[3]}, nil
}

func layoutMapFromRequest(vals []int64) (map[string]int64, error) {
	if len(vals) != 4 {
		return nil, fmt.Errorf("tile layout wants 4 values, got %d", len(vals))
	}
	return map[string]int64{"layoutCols": vals[0], "layoutRows": vals[1], "tileCols": vals[2], "tileRows": vals[3]}, nil
}

// newLayerResult registers a freshly built layer and describes it to
// the host.
func newLayerResult[K layer.TileKey[K]](s *Server, l *layer.TiledLayer[K]) *pb.OpResult {
	meta, err := l.Meta.ToJSON()
	if err != nil {
		return errResultf("%v", err)
	}
	return &pb.OpResult{
		Error:    "OK",
		LayerId:  s.putLayer(l),
		Metadata: meta,
		Zoom:     zoomMsg(l.Zoom),
	}
}

// Process executes one layer operation. Failures are reported through
// OpResult.Error, never through the transport error.
func (s *Server) Process(ctx context.Context, in *pb.OpRequest) (*pb.OpResult, error) {
	s.Info.Printf("op=%s layer=%s", in.Operation, in.LayerId)

	switch in.Operation {
	case "deserialize":
		return s.deserializeOp(in), nil
	case "rasterize":
		return s.rasterizeOp(in), nil
	case "load":
		return s.loadOp(in), nil
	case "list":
		return s.listOp(), nil
	case "drop":
		if !s.dropLayer(in.LayerId) {
			return errResultf("unknown layer handle: %s", in.LayerId), nil
		}
		return &pb.OpResult{Error: "OK"}, nil
	}

	lAny, ok := s.getLayer(in.LayerId)
	if !ok {
		return errResultf("unknown layer handle: %s", in.LayerId), nil
	}
	switch l := lAny.(type) {
	case *layer.TiledLayer[layer.SpatialKey]:
		return processLayer(s, l, in), nil
	case *layer.TiledLayer[layer.SpaceTimeKey]:
		return processLayer(s, l, in), nil
	default:
		return errResultf("corrupt layer handle: %s", in.LayerId), nil
	}
}

// processLayer is the op switch shared by the spatial and
// spatiotemporal key shapes.
func processLayer[K layer.TileKey[K]](s *Server, l *layer.TiledLayer[K], in *pb.OpRequest) *pb.OpResult {
	switch in.Operation {
	case "reproject":
		extent, err := extentMapFromRequest(in.Extent)
		if err != nil {
			return errResultf("%v", err)
		}
		layout, err := layoutMapFromRequest(in.TileLayout)
		if err != nil {
			return errResultf("%v", err)
		}
		out, err := l.Reproject(extent, layout, in.Crs, in.Resample)
		if err != nil {
			return errResultf("%v", err)
		}
		return newLayerResult(s, out)

	case "reprojectScheme":
		out, err := l.ReprojectScheme(in.Scheme, int(in.TileSize), in.ResolutionThreshold, in.Crs, in.Resample)
		if err != nil {
			return errResultf("%v", err)
		}
		return newLayerResult(s, out)

	case "tileToLayout":
		extent, err := extentMapFromRequest(in.Extent)
		if err != nil {
			return errResultf("%v", err)
		}
		layout, err := layoutMapFromRequest(in.TileLayout)
		if err != nil {
			return errResultf("%v", err)
		}
		out, err := l.TileToLayout(extent, layout, in.Resample)
		if err != nil {
			return errResultf("%v", err)
		}
		return newLayerResult(s, out)

	case "pyramid":
		levels, err := l.Pyramid(int(in.StartZoom), int(in.EndZoom), in.Resample)
		if err != nil {
			return errResultf("%v", err)
		}
		res := &pb.OpResult{Error: "OK"}
		for _, level := range levels {
			res.LayerIds = append(res.LayerIds, s.putLayer(level))
		}
		return res

	case "focal":
		out, err := l.Focal(in.FocalOp, in.Neighborhood, in.Params)
		if err != nil {
			return errResultf("%v", err)
		}
		return newLayerResult(s, out)

	case "mask":
		wkts, err := s.requestGeometries(in)
		if err != nil {
			return errResultf("%v", err)
		}
		out, err := l.MaskGeometries(wkts)
		if err != nil {
			return errResultf("%v", err)
		}
		return newLayerResult(s, out)

	case "costDistance":
		wkts, err := s.requestGeometries(in)
		if err != nil {
			return errResultf("%v", err)
		}
		out, err := l.CostDistance(wkts, in.MaxDistance)
		if err != nil {
			return errResultf("%v", err)
		}
		return newLayerResult(s, out)

	case "localScalar":
		out, err := l.LocalScalar(in.Expression, in.Scalar, in.ScalarLeft)
		if err != nil {
			return errResultf("%v", err)
		}
		return newLayerResult(s, out)

	case "localLayer":
		otherAny, ok := s.getLayer(in.OtherLayerId)
		if !ok {
			return errResultf("unknown layer handle: %s", in.OtherLayerId)
		}
		other, ok := otherAny.(*layer.TiledLayer[K])
		if !ok {
			return errResultf("layers %s and %s have different key shapes", in.LayerId, in.OtherLayerId)
		}
		out, err := l.LocalLayer(other, in.Expression)
		if err != nil {
			return errResultf("%v", err)
		}
		return newLayerResult(s, out)

	case "normalize":
		return newLayerResult(s, l.Normalize(in.Offset, in.Clip))

	case "mapAlgebra":
		out, err := l.MapAlgebra(in.Expression)
		if err != nil {
			return errResultf("%v", err)
		}
		return newLayerResult(s, out)

	case "serialize":
		records, schema, err := l.Serialize()
		if err != nil {
			return errResultf("%v", err)
		}
		meta, err := l.Meta.ToJSON()
		if err != nil {
			return errResultf("%v", err)
		}
		return &pb.OpResult{Error: "OK", Records: records, Schema: schema, Metadata: meta, Zoom: zoomMsg(l.Zoom)}

	case "lookup":
		col, row := int(in.Col), int(in.Row)
		if records, ok := s.Cache.Get(in.LayerId, col, row); ok {
			return &pb.OpResult{Error: "OK", Records: records, Schema: pb.Schema}
		}
		records, schema, err := l.Lookup(col, row)
		if err != nil {
			return errResultf("%v", err)
		}
		s.Cache.Set(in.LayerId, col, row, records)
		return &pb.OpResult{Error: "OK", Records: records, Schema: schema}

	case "stitch":
		data, schema, err := l.StitchBytes()
		if err != nil {
			return errResultf("%v", err)
		}
		return &pb.OpResult{Error: "OK", Records: [][]byte{data}, Schema: schema}

	case "metadata":
		meta, err := l.Meta.ToJSON()
		if err != nil {
			return errResultf("%v", err)
		}
		return &pb.OpResult{Error: "OK", Metadata: meta, Zoom: zoomMsg(l.Zoom)}

	case "save":
		return s.saveOp(l, in)

	default:
		return errResultf("unknown operation: %s", in.Operation)
	}
}

func (s *Server) deserializeOp(in *pb.OpRequest) *pb.OpResult {
	if in.Temporal {
		l, err := layer.Deserialize[layer.SpaceTimeKey](in.Records, in.Schema, in.Metadata)
		if err != nil {
			return errResultf("%v", err)
		}
		return newLayerResult(s, l)
	}
	l, err := layer.Deserialize[layer.SpatialKey](in.Records, in.Schema, in.Metadata)
	if err != nil {
		return errResultf("%v", err)
	}
	return newLayerResult(s, l)
}

func (s *Server) rasterizeOp(in *pb.OpRequest) *pb.OpResult {
	if len(in.Geometries) != 1 {
		return errResultf("rasterize wants exactly one geometry, got %d", len(in.Geometries))
	}
	extent, err := extentMapFromRequest(in.Extent)
	if err != nil {
		return errResultf("%v", err)
	}
	if in.Temporal {
		l, err := layer.RasterizeSpaceTime(in.Geometries[0], extent, in.Crs, int(in.Cols), int(in.Rows), in.FillValue, in.Instant)
		if err != nil {
			return errResultf("%v", err)
		}
		return newLayerResult(s, l)
	}
	l, err := layer.RasterizeSpatial(in.Geometries[0], extent, in.Crs, int(in.Cols), int(in.Rows), in.FillValue)
	if err != nil {
		return errResultf("%v", err)
	}
	return newLayerResult(s, l)
}

func (s *Server) saveOp(l interface{}, in *pb.OpRequest) *pb.OpResult {
	if s.Catalog == nil {
		return errResultf("no catalog configured")
	}
	if len(in.LayerName) == 0 {
		return errResultf("save wants a layer name")
	}

	entry := &catalog.LayerEntry{Name: in.LayerName}
	var err error
	switch tl := l.(type) {
	case *layer.TiledLayer[layer.SpatialKey]:
		entry.Records, entry.Schema, err = tl.Serialize()
		if err == nil {
			entry.Metadata, err = tl.Meta.ToJSON()
		}
		entry.Zoom = tl.Zoom
	case *layer.TiledLayer[layer.SpaceTimeKey]:
		entry.Temporal = true
		entry.Records, entry.Schema, err = tl.Serialize()
		if err == nil {
			entry.Metadata, err = tl.Meta.ToJSON()
		}
		entry.Zoom = tl.Zoom
	}
	if err != nil {
		return errResultf("%v", err)
	}
	if err := s.Catalog.WriteLayer(entry); err != nil {
		return errResultf("%v", err)
	}
	return &pb.OpResult{Error: "OK"}
}

func (s *Server) loadOp(in *pb.OpRequest) *pb.OpResult {
	if s.Catalog == nil {
		return errResultf("no catalog configured")
	}
	entry, err := s.Catalog.ReadLayer(in.LayerName)
	if err != nil {
		return errResultf("%v", err)
	}

	if entry.Temporal {
		l, err := layer.Deserialize[layer.SpaceTimeKey](entry.Records, entry.Schema, entry.Metadata)
		if err != nil {
			return errResultf("%v", err)
		}
		l.Zoom = entry.Zoom
		return newLayerResult(s, l)
	}
	l, err := layer.Deserialize[layer.SpatialKey](entry.Records, entry.Schema, entry.Metadata)
	if err != nil {
		return errResultf("%v", err)
	}
	l.Zoom = entry.Zoom
	return newLayerResult(s, l)
}

func (s *Server) listOp() *pb.OpResult {
	if s.Catalog == nil {
		return errResultf("no catalog configured")
	}
	names, err := s.Catalog.ListLayers()
	if err != nil {
		return errResultf("%v", err)
	}
	return &pb.OpResult{Error: "OK", LayerIds: names}
}
