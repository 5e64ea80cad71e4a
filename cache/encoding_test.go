package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordFramingRoundTrip(t *testing.T) {
	records := [][]byte{
		[]byte("alpha"),
		{},
		[]byte("gamma"),
	}

	back, err := decodeRecords(encodeRecords(records))
	require.NoError(t, err)
	require.Len(t, back, 3)
	assert.Equal(t, []byte("alpha"), back[0])
	assert.Empty(t, back[1])
	assert.Equal(t, []byte("gamma"), back[2])
}

func TestDecodeRecordsTruncated(t *testing.T) {
	buf := encodeRecords([][]byte{[]byte("alpha")})

	_, err := decodeRecords(buf[:2])
	assert.Error(t, err)

	_, err = decodeRecords(buf[:len(buf)-1])
	assert.Error(t, err)
}

func TestNilCacheIsInert(t *testing.T) {
	var c *TileCache
	_, ok := c.Get("layer", 0, 0)
	assert.False(t, ok)
	c.Set("layer", 0, 0, [][]byte{[]byte("x")})

	assert.Nil(t, New(nil))
}
