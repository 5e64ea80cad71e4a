package raster

import (
	"fmt"
	"math"
	"sort"
)

type ResampleMethod int

const (
	ResampleNearest ResampleMethod = iota
	ResampleBilinear
	ResampleAverage
	ResampleMode
	ResampleMax
	ResampleMin
	ResampleMedian
	ResampleSum
)

var resampleNames = map[string]ResampleMethod{
	"nearest-neighbor":  ResampleNearest,
	"nearest-neighbour": ResampleNearest,
	"bilinear":          ResampleBilinear,
	"average":           ResampleAverage,
	"mode":              ResampleMode,
	"max":               ResampleMax,
	"min":               ResampleMin,
	"median":            ResampleMedian,
	"sum":               ResampleSum,
}

// ResampleMethodFromName resolves a resample method name used at the
// wire boundary into the enumerated method.
func ResampleMethodFromName(name string) (ResampleMethod, error) {
	m, found := resampleNames[name]
	if !found {
		return ResampleNearest, fmt.Errorf("unknown resample method: %s", name)
	}
	return m, nil
}

func (m ResampleMethod) String() string {
	for name, method := range resampleNames {
		if method == m && name != "nearest-neighbour" {
			return name
		}
	}
	return "nearest-neighbor"
}

// SamplePixel reads the tile at fractional pixel coordinates. fx, fy are
// measured from the top-left cell center, i.e. cell (c, r) sits at
// (float64(c), float64(r)). Out-of-grid samples yield nodata.
func (t *Tile) SamplePixel(fx, fy float64, m ResampleMethod) float64 {
	if m == ResampleBilinear {
		return t.sampleBilinear(fx, fy)
	}
	return t.sampleNearest(fx, fy)
}

func (t *Tile) sampleNearest(fx, fy float64) float64 {
	col := int(math.Round(fx))
	row := int(math.Round(fy))
	if col < 0 || col >= t.Cols || row < 0 || row >= t.Rows {
		return t.NoData
	}
	return t.Get(col, row)
}

func (t *Tile) sampleBilinear(fx, fy float64) float64 {
	c0 := int(math.Floor(fx))
	r0 := int(math.Floor(fy))
	dx := fx - float64(c0)
	dy := fy - float64(r0)

	var sum, weight float64
	for dr := 0; dr <= 1; dr++ {
		for dc := 0; dc <= 1; dc++ {
			c := c0 + dc
			r := r0 + dr
			if c < 0 || c >= t.Cols || r < 0 || r >= t.Rows {
				continue
			}
			v := t.Get(c, r)
			if t.IsNoData(v) {
				continue
			}
			wx := 1 - dx
			if dc == 1 {
				wx = dx
			}
			wy := 1 - dy
			if dr == 1 {
				wy = dy
			}
			sum += v * wx * wy
			weight += wx * wy
		}
	}
	if weight == 0 {
		return t.NoData
	}
	return sum / weight
}

// Aggregate folds a block of source values into one output cell for the
// block-decimating methods used by pyramiding. Nodata inputs are skipped;
// an all-nodata block yields nodata.
func Aggregate(vals []float64, noData float64, m ResampleMethod) float64 {
	valid := vals[:0:0]
	for _, v := range vals {
		if v == noData || (math.IsNaN(noData) && math.IsNaN(v)) {
			continue
		}
		valid = append(valid, v)
	}
	if len(valid) == 0 {
		return noData
	}

	switch m {
	case ResampleNearest, ResampleBilinear, ResampleAverage:
		sum := 0.0
		for _, v := range valid {
			sum += v
		}
		if m == ResampleNearest {
			return valid[0]
		}
		return sum / float64(len(valid))
	case ResampleSum:
		sum := 0.0
		for _, v := range valid {
			sum += v
		}
		return sum
	case ResampleMax:
		out := valid[0]
		for _, v := range valid {
			if v > out {
				out = v
			}
		}
		return out
	case ResampleMin:
		out := valid[0]
		for _, v := range valid {
			if v < out {
				out = v
			}
		}
		return out
	case ResampleMedian:
		sorted := append([]float64(nil), valid...)
		sort.Float64s(sorted)
		n := len(sorted)
		if n%2 == 1 {
			return sorted[n/2]
		}
		return (sorted[n/2-1] + sorted[n/2]) / 2
	case ResampleMode:
		counts := make(map[float64]int)
		best := valid[0]
		bestCount := 0
		for _, v := range valid {
			counts[v]++
			if counts[v] > bestCount {
				best = v
				bestCount = counts[v]
			}
		}
		return best
	default:
		return valid[0]
	}
}
