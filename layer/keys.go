// Package layer implements keyed collections of multi-band raster
// tiles plus the layer-level operations exposed at the wire boundary:
// reprojection, retiling, pyramiding, focal windows, geometry masking,
// cost distance, rasterization, local arithmetic and (de)serialization.
//
// A layer is generic over its key shape. SpatialKey addresses a tile
// by grid coordinate; SpaceTimeKey additionally carries a time
// instant. Operations are written once against the TileKey constraint
// rather than duplicated per key type.
package layer

// SpatialKey addresses a tile within a layout grid. Column grows east,
// row grows south.
type SpatialKey struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func (k SpatialKey) SpatialComponent() SpatialKey {
	return k
}

func (k SpatialKey) WithSpatialComponent(s SpatialKey) SpatialKey {
	return s
}

// SpaceTimeKey pairs a grid coordinate with a time instant in unix
// milliseconds.
type SpaceTimeKey struct {
	Col     int   `json:"col"`
	Row     int   `json:"row"`
	Instant int64 `json:"instant"`
}

func (k SpaceTimeKey) SpatialComponent() SpatialKey {
	return SpatialKey{Col: k.Col, Row: k.Row}
}

func (k SpaceTimeKey) WithSpatialComponent(s SpatialKey) SpaceTimeKey {
	return SpaceTimeKey{Col: s.Col, Row: s.Row, Instant: k.Instant}
}

// TileKey is the capability a key shape must provide: extraction of
// its spatial component and re-keying to a new spatial component while
// keeping any temporal component intact.
type TileKey[K any] interface {
	comparable
	SpatialComponent() SpatialKey
	WithSpatialComponent(SpatialKey) K
}

// InstantOf returns the temporal component of a key, if it has one.
func InstantOf[K TileKey[K]](k K) (int64, bool) {
	if stk, ok := any(k).(SpaceTimeKey); ok {
		return stk.Instant, true
	}
	return 0, false
}

// KeyLess orders keys by instant, then row, then column. It is the
// ordering used for deterministic serialization.
func KeyLess[K TileKey[K]](a, b K) bool {
	ia, _ := InstantOf(a)
	ib, _ := InstantOf(b)
	if ia != ib {
		return ia < ib
	}
	sa := a.SpatialComponent()
	sb := b.SpatialComponent()
	if sa.Row != sb.Row {
		return sa.Row < sb.Row
	}
	return sa.Col < sb.Col
}
