package layer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataJSONRoundTrip(t *testing.T) {
	meta := testMeta(2, 2, 4)
	meta.Bounds = &GridBounds{ColMin: 0, RowMin: 0, ColMax: 1, RowMax: 1}
	minInstant := int64(1000)
	maxInstant := int64(2000)
	meta.MinInstant = &minInstant
	meta.MaxInstant = &maxInstant

	doc, err := meta.ToJSON()
	require.NoError(t, err)
	assert.True(t, strings.Contains(doc, `"footprint"`))
	assert.True(t, strings.Contains(doc, `"Polygon"`))

	back, err := MetadataFromJSON(doc)
	require.NoError(t, err)
	assert.Equal(t, meta, back)
}

func TestMetadataJSONWithoutInstants(t *testing.T) {
	meta := testMeta(1, 1, 2)
	doc, err := meta.ToJSON()
	require.NoError(t, err)
	assert.False(t, strings.Contains(doc, "minInstant"))

	back, err := MetadataFromJSON(doc)
	require.NoError(t, err)
	assert.Nil(t, back.MinInstant)
	assert.Nil(t, back.Bounds)
}

func TestMetadataFromJSONRejectsGarbage(t *testing.T) {
	_, err := MetadataFromJSON("{not json")
	assert.Error(t, err)
}
