package raster

// Normalize rescales the tile's valid cells into [0, steps-1]. Cells
// above clip are clamped to clip first. When both offset and clip are
// zero the range is taken from the tile's own min and max, with a
// small bump when the tile is constant so the range never collapses.
func Normalize(t *Tile, offset, clip float64) *Tile {
	steps := 256.0

	if clip == 0.0 && offset == 0.0 {
		var minVal, maxVal float64
		first := true
		for _, value := range t.Cells {
			if t.IsNoData(value) {
				continue
			}
			if first {
				minVal = value
				maxVal = value
				first = false
				continue
			}
			if value < minVal {
				minVal = value
			}
			if value > maxVal {
				maxVal = value
			}
		}
		if minVal == maxVal {
			maxVal += 0.1
		}
		offset = minVal
		clip = maxVal
	}

	trange := clip - offset

	out := NewTile(t.Cols, t.Rows, t.NoData)
	for i, value := range t.Cells {
		if t.IsNoData(value) {
			continue
		}
		if value > clip {
			value = clip
		}
		if value < offset {
			value = offset
		}
		out.Cells[i] = (value - offset) / trange * (steps - 1)
	}
	return out
}
