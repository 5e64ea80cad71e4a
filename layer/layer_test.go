package layer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecomputesBounds(t *testing.T) {
	meta := testMeta(4, 4, 2)
	l := spatialLayer(meta, 2, map[SpatialKey]float64{
		{Col: 1, Row: 2}: 1,
		{Col: 3, Row: 0}: 2,
	})

	require.NotNil(t, l.Meta.Bounds)
	assert.Equal(t, GridBounds{ColMin: 1, RowMin: 0, ColMax: 3, RowMax: 2}, *l.Meta.Bounds)
	assert.Nil(t, l.Meta.MinInstant)
}

func TestNewEmptyLayerHasNilBounds(t *testing.T) {
	l := spatialLayer(testMeta(2, 2, 2), 2, nil)
	assert.True(t, l.IsEmpty())
	assert.Nil(t, l.Meta.Bounds)
}

func TestNewTracksInstantRange(t *testing.T) {
	meta := testMeta(2, 2, 2)
	l := spaceTimeLayer(meta, 2, map[SpaceTimeKey]float64{
		{Col: 0, Row: 0, Instant: 300}: 1,
		{Col: 0, Row: 0, Instant: 100}: 2,
		{Col: 1, Row: 0, Instant: 200}: 3,
	})

	require.NotNil(t, l.Meta.MinInstant)
	assert.Equal(t, int64(100), *l.Meta.MinInstant)
	assert.Equal(t, int64(300), *l.Meta.MaxInstant)
}

func TestKeysOrdering(t *testing.T) {
	meta := testMeta(2, 2, 2)
	l := spaceTimeLayer(meta, 2, map[SpaceTimeKey]float64{
		{Col: 1, Row: 1, Instant: 100}: 1,
		{Col: 0, Row: 0, Instant: 200}: 2,
		{Col: 1, Row: 0, Instant: 100}: 3,
		{Col: 0, Row: 0, Instant: 100}: 4,
	})

	keys := l.Keys()
	assert.Equal(t, []SpaceTimeKey{
		{Col: 0, Row: 0, Instant: 100},
		{Col: 1, Row: 0, Instant: 100},
		{Col: 1, Row: 1, Instant: 100},
		{Col: 0, Row: 0, Instant: 200},
	}, keys)
}

func TestInstantOf(t *testing.T) {
	instant, temporal := InstantOf(SpaceTimeKey{Col: 1, Row: 2, Instant: 42})
	assert.True(t, temporal)
	assert.Equal(t, int64(42), instant)

	_, temporal = InstantOf(SpatialKey{Col: 1, Row: 2})
	assert.False(t, temporal)
}

func TestWithSpatialComponentKeepsInstant(t *testing.T) {
	k := SpaceTimeKey{Col: 1, Row: 2, Instant: 42}
	moved := k.WithSpatialComponent(SpatialKey{Col: 7, Row: 8})
	assert.Equal(t, SpaceTimeKey{Col: 7, Row: 8, Instant: 42}, moved)
}
