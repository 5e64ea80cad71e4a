package layer

import (
	"fmt"

	"github.com/golang/protobuf/proto"
	"github.com/nci/tilebridge/raster"
	pb "github.com/nci/tilebridge/worker/bridgeservice"
)

func tileToMsg(t *raster.MultibandTile) *pb.TileMsg {
	msg := &pb.TileMsg{Bands: make([]*pb.Band, len(t.Bands))}
	for i, band := range t.Bands {
		msg.Bands[i] = &pb.Band{
			Cols:   int32(band.Cols),
			Rows:   int32(band.Rows),
			NoData: band.NoData,
			Cells:  band.Cells,
		}
	}
	return msg
}

func tileFromMsg(msg *pb.TileMsg) (*raster.MultibandTile, error) {
	if msg == nil || len(msg.Bands) == 0 {
		return nil, fmt.Errorf("tile record carries no bands")
	}
	bands := make([]*raster.Tile, len(msg.Bands))
	for i, b := range msg.Bands {
		cols, rows := int(b.Cols), int(b.Rows)
		if cols <= 0 || rows <= 0 || len(b.Cells) != cols*rows {
			return nil, fmt.Errorf("band %d has %d cells for a %dx%d grid", i, len(b.Cells), cols, rows)
		}
		bands[i] = &raster.Tile{Cols: cols, Rows: rows, NoData: b.NoData, Cells: b.Cells}
	}
	m := raster.NewMultibandTile(bands...)
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func keyFromRecord[K TileKey[K]](rec *pb.Record) (K, error) {
	var zero K
	sk := SpatialKey{Col: int(rec.Col), Row: int(rec.Row)}
	switch any(zero).(type) {
	case SpatialKey:
		if rec.Temporal {
			return zero, fmt.Errorf("temporal record in a spatial layer")
		}
		return any(sk).(K), nil
	case SpaceTimeKey:
		if !rec.Temporal {
			return zero, fmt.Errorf("spatial record in a spatiotemporal layer")
		}
		return any(SpaceTimeKey{Col: sk.Col, Row: sk.Row, Instant: rec.Instant}).(K), nil
	default:
		return zero, fmt.Errorf("unsupported key shape %T", zero)
	}
}

// Serialize encodes the layer's tiles as key-ordered wire records and
// returns them with the schema the records were written under.
func (l *TiledLayer[K]) Serialize() ([][]byte, string, error) {
	records := make([][]byte, 0, len(l.Tiles))
	for _, k := range l.Keys() {
		sk := k.SpatialComponent()
		rec := &pb.Record{
			Col:  int32(sk.Col),
			Row:  int32(sk.Row),
			Tile: tileToMsg(l.Tiles[k]),
		}
		if instant, temporal := InstantOf(k); temporal {
			rec.Instant = instant
			rec.Temporal = true
		}
		data, err := proto.Marshal(rec)
		if err != nil {
			return nil, "", fmt.Errorf("failed to encode tile record %v: %v", sk, err)
		}
		records = append(records, data)
	}
	return records, pb.Schema, nil
}

// Deserialize rebuilds a layer from wire records produced by
// Serialize. The schema must match the one this build writes.
func Deserialize[K TileKey[K]](records [][]byte, schema string, metadataJSON string) (*TiledLayer[K], error) {
	if schema != pb.Schema {
		return nil, fmt.Errorf("unknown tile record schema")
	}
	meta, err := MetadataFromJSON(metadataJSON)
	if err != nil {
		return nil, err
	}

	tiles := make(map[K]*raster.MultibandTile, len(records))
	for i, data := range records {
		rec := &pb.Record{}
		if err := proto.Unmarshal(data, rec); err != nil {
			return nil, fmt.Errorf("failed to decode tile record %d: %v", i, err)
		}
		key, err := keyFromRecord[K](rec)
		if err != nil {
			return nil, err
		}
		tile, err := tileFromMsg(rec.Tile)
		if err != nil {
			return nil, fmt.Errorf("tile record %d: %v", i, err)
		}
		tiles[key] = tile
	}
	return New(tiles, meta, nil), nil
}

// Lookup returns the encoded records of every tile whose spatial
// component matches (col, row). A spatiotemporal layer can hold one
// such tile per instant.
func (l *TiledLayer[K]) Lookup(col, row int) ([][]byte, string, error) {
	want := SpatialKey{Col: col, Row: row}
	records := make([][]byte, 0, 1)
	for _, k := range l.Keys() {
		if k.SpatialComponent() != want {
			continue
		}
		rec := &pb.Record{
			Col:  int32(col),
			Row:  int32(row),
			Tile: tileToMsg(l.Tiles[k]),
		}
		if instant, temporal := InstantOf(k); temporal {
			rec.Instant = instant
			rec.Temporal = true
		}
		data, err := proto.Marshal(rec)
		if err != nil {
			return nil, "", fmt.Errorf("failed to encode tile record %v: %v", want, err)
		}
		records = append(records, data)
	}
	if len(records) == 0 {
		return nil, "", fmt.Errorf("no tile found at col %d row %d", col, row)
	}
	return records, pb.Schema, nil
}

// Stitch mosaics the whole layer into one multiband raster. A
// spatiotemporal layer must hold a single instant.
func (l *TiledLayer[K]) Stitch() (*raster.MultibandTile, error) {
	if l.IsEmpty() {
		return nil, fmt.Errorf("cannot stitch an empty layer")
	}
	groups := groupByInstant(l)
	if len(groups) > 1 {
		return nil, fmt.Errorf("cannot stitch a layer spanning %d instants", len(groups))
	}
	mosaic, _, _, err := stitchGroup(l, l.Keys())
	return mosaic, err
}

// StitchBytes is Stitch with the mosaic encoded as a wire tile.
func (l *TiledLayer[K]) StitchBytes() ([]byte, string, error) {
	mosaic, err := l.Stitch()
	if err != nil {
		return nil, "", err
	}
	data, err := proto.Marshal(tileToMsg(mosaic))
	if err != nil {
		return nil, "", fmt.Errorf("failed to encode stitched tile: %v", err)
	}
	return data, pb.Schema, nil
}
