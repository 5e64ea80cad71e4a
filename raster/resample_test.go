package raster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResampleMethodFromName(t *testing.T) {
	m, err := ResampleMethodFromName("bilinear")
	require.NoError(t, err)
	assert.Equal(t, ResampleBilinear, m)

	m, err = ResampleMethodFromName("nearest-neighbour")
	require.NoError(t, err)
	assert.Equal(t, ResampleNearest, m)

	_, err = ResampleMethodFromName("cubic-spline")
	assert.Error(t, err)
}

func TestSamplePixelNearest(t *testing.T) {
	tile := NewTile(2, 2, math.NaN())
	tile.Set(0, 0, 1)
	tile.Set(1, 0, 2)
	tile.Set(0, 1, 3)
	tile.Set(1, 1, 4)

	assert.Equal(t, 1.0, tile.SamplePixel(0.2, 0.2, ResampleNearest))
	assert.Equal(t, 4.0, tile.SamplePixel(0.8, 0.8, ResampleNearest))
	assert.True(t, math.IsNaN(tile.SamplePixel(-1, 0, ResampleNearest)))
	assert.True(t, math.IsNaN(tile.SamplePixel(0, 2.6, ResampleNearest)))
}

func TestSamplePixelBilinear(t *testing.T) {
	tile := NewTile(2, 2, math.NaN())
	tile.Set(0, 0, 0)
	tile.Set(1, 0, 10)
	tile.Set(0, 1, 20)
	tile.Set(1, 1, 30)

	assert.InDelta(t, 15.0, tile.SamplePixel(0.5, 0.5, ResampleBilinear), 1e-9)
	assert.InDelta(t, 5.0, tile.SamplePixel(0.5, 0.0, ResampleBilinear), 1e-9)
	// On the cell center the sample is the cell value.
	assert.InDelta(t, 10.0, tile.SamplePixel(1.0, 0.0, ResampleBilinear), 1e-9)
}

func TestSamplePixelBilinearSkipsNoData(t *testing.T) {
	tile := NewTile(2, 1, -9999)
	tile.Set(0, 0, 10)
	// (1, 0) stays nodata and must not pull the interpolation down.
	got := tile.SamplePixel(0.5, 0, ResampleBilinear)
	assert.InDelta(t, 10.0, got, 1e-9)
}

func TestAggregate(t *testing.T) {
	vals := []float64{4, 2, 2, 8}

	assert.Equal(t, 4.0, Aggregate(vals, math.NaN(), ResampleAverage))
	assert.Equal(t, 16.0, Aggregate(vals, math.NaN(), ResampleSum))
	assert.Equal(t, 8.0, Aggregate(vals, math.NaN(), ResampleMax))
	assert.Equal(t, 2.0, Aggregate(vals, math.NaN(), ResampleMin))
	assert.Equal(t, 3.0, Aggregate(vals, math.NaN(), ResampleMedian))
	assert.Equal(t, 2.0, Aggregate(vals, math.NaN(), ResampleMode))
	assert.Equal(t, 4.0, Aggregate(vals, math.NaN(), ResampleNearest))
}

func TestAggregateNoData(t *testing.T) {
	nd := -9999.0
	assert.Equal(t, nd, Aggregate([]float64{nd, nd}, nd, ResampleAverage))
	assert.Equal(t, 5.0, Aggregate([]float64{nd, 5}, nd, ResampleAverage))

	nan := math.NaN()
	assert.True(t, math.IsNaN(Aggregate([]float64{nan, nan}, nan, ResampleSum)))
}
