package raster

import (
	"fmt"
	"math"
	"sort"
)

type FocalOp int

const (
	FocalSum FocalOp = iota
	FocalMean
	FocalMedian
	FocalMode
	FocalMin
	FocalMax
	FocalStdDev
	FocalSlope
	FocalAspect
)

var focalNames = map[string]FocalOp{
	"sum":                FocalSum,
	"mean":               FocalMean,
	"median":             FocalMedian,
	"mode":               FocalMode,
	"min":                FocalMin,
	"max":                FocalMax,
	"stddev":             FocalStdDev,
	"standard-deviation": FocalStdDev,
	"slope":              FocalSlope,
	"aspect":             FocalAspect,
}

func FocalOpFromName(name string) (FocalOp, error) {
	op, found := focalNames[name]
	if !found {
		return FocalSum, fmt.Errorf("unknown focal operation: %s", name)
	}
	return op, nil
}

// Neighborhood is a boolean window mask centered on the target cell.
// Extent is the window radius in cells, so the mask spans
// (2*Extent+1)^2 entries in row-major order.
type Neighborhood struct {
	Extent int
	Mask   []bool
}

func newNeighborhood(extent int, include func(dx, dy int) bool) Neighborhood {
	size := 2*extent + 1
	nb := Neighborhood{Extent: extent, Mask: make([]bool, size*size)}
	for dy := -extent; dy <= extent; dy++ {
		for dx := -extent; dx <= extent; dx++ {
			if include(dx, dy) {
				nb.Mask[(dy+extent)*size+(dx+extent)] = true
			}
		}
	}
	return nb
}

func Square(extent int) Neighborhood {
	return newNeighborhood(extent, func(dx, dy int) bool { return true })
}

func Circle(radius float64) Neighborhood {
	return newNeighborhood(int(math.Ceil(radius)), func(dx, dy int) bool {
		return math.Sqrt(float64(dx*dx+dy*dy)) <= radius
	})
}

func Annulus(innerRadius, outerRadius float64) Neighborhood {
	return newNeighborhood(int(math.Ceil(outerRadius)), func(dx, dy int) bool {
		d := math.Sqrt(float64(dx*dx + dy*dy))
		return d >= innerRadius && d <= outerRadius
	})
}

// Nesw includes only the cells due north, east, south and west of the
// center, out to the given extent.
func Nesw(extent int) Neighborhood {
	return newNeighborhood(extent, func(dx, dy int) bool {
		return dx == 0 || dy == 0
	})
}

// Wedge includes cells whose angle from the center falls within
// [startAngle, endAngle] degrees, measured counter-clockwise from east.
func Wedge(radius, startAngle, endAngle float64) Neighborhood {
	for endAngle < startAngle {
		endAngle += 360
	}
	return newNeighborhood(int(math.Ceil(radius)), func(dx, dy int) bool {
		if dx == 0 && dy == 0 {
			return true
		}
		if math.Sqrt(float64(dx*dx+dy*dy)) > radius {
			return false
		}
		// Screen rows grow downwards.
		angle := math.Atan2(float64(-dy), float64(dx)) * 180 / math.Pi
		for angle < startAngle {
			angle += 360
		}
		return angle <= endAngle
	})
}

// NeighborhoodFromName builds a named neighborhood from up to three
// numeric parameters: square/nesw take an extent, circle a radius,
// annulus inner and outer radii, wedge radius and two angles.
func NeighborhoodFromName(name string, params []float64) (Neighborhood, error) {
	p := func(i int) float64 {
		if i < len(params) {
			return params[i]
		}
		return 0
	}
	switch name {
	case "square":
		return Square(int(p(0))), nil
	case "circle":
		return Circle(p(0)), nil
	case "annulus":
		return Annulus(p(0), p(1)), nil
	case "nesw":
		return Nesw(int(p(0))), nil
	case "wedge":
		return Wedge(p(0), p(1), p(2)), nil
	default:
		return Neighborhood{}, fmt.Errorf("unknown neighborhood: %s", name)
	}
}

// FocalApply runs op over padded, a tile carrying a margin of
// neighbor-tile cells on every side, and returns the unpadded core.
// cellW and cellH are the georeferenced cell sizes used by the
// slope and aspect terrain operations.
func FocalApply(padded *Tile, margin int, op FocalOp, nb Neighborhood, cellW, cellH float64) *Tile {
	cols := padded.Cols - 2*margin
	rows := padded.Rows - 2*margin
	out := NewTile(cols, rows, padded.NoData)

	if op == FocalSlope || op == FocalAspect {
		focalTerrain(padded, margin, op, cellW, cellH, out)
		return out
	}

	size := 2*nb.Extent + 1
	window := make([]float64, 0, size*size)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			center := padded.Get(col+margin, row+margin)
			if padded.IsNoData(center) {
				continue
			}
			window = window[:0]
			for dy := -nb.Extent; dy <= nb.Extent; dy++ {
				for dx := -nb.Extent; dx <= nb.Extent; dx++ {
					if !nb.Mask[(dy+nb.Extent)*size+(dx+nb.Extent)] {
						continue
					}
					c := col + margin + dx
					r := row + margin + dy
					if c < 0 || c >= padded.Cols || r < 0 || r >= padded.Rows {
						continue
					}
					v := padded.Get(c, r)
					if padded.IsNoData(v) {
						continue
					}
					window = append(window, v)
				}
			}
			if len(window) == 0 {
				continue
			}
			out.Set(col, row, focalReduce(window, op))
		}
	}
	return out
}

func focalReduce(vals []float64, op FocalOp) float64 {
	switch op {
	case FocalSum:
		sum := 0.0
		for _, v := range vals {
			sum += v
		}
		return sum
	case FocalMean:
		sum := 0.0
		for _, v := range vals {
			sum += v
		}
		return sum / float64(len(vals))
	case FocalMin:
		out := vals[0]
		for _, v := range vals {
			if v < out {
				out = v
			}
		}
		return out
	case FocalMax:
		out := vals[0]
		for _, v := range vals {
			if v > out {
				out = v
			}
		}
		return out
	case FocalMedian:
		sorted := append([]float64(nil), vals...)
		sort.Float64s(sorted)
		n := len(sorted)
		if n%2 == 1 {
			return sorted[n/2]
		}
		return (sorted[n/2-1] + sorted[n/2]) / 2
	case FocalMode:
		counts := make(map[float64]int)
		best := vals[0]
		bestCount := 0
		for _, v := range vals {
			counts[v]++
			if counts[v] > bestCount {
				best = v
				bestCount = counts[v]
			}
		}
		return best
	case FocalStdDev:
		mean := 0.0
		for _, v := range vals {
			mean += v
		}
		mean /= float64(len(vals))
		varSum := 0.0
		for _, v := range vals {
			varSum += (v - mean) * (v - mean)
		}
		return math.Sqrt(varSum / float64(len(vals)))
	default:
		return vals[0]
	}
}

// focalTerrain computes slope or aspect in degrees with Horn's method
// over the 3x3 window.
func focalTerrain(padded *Tile, margin int, op FocalOp, cellW, cellH float64, out *Tile) {
	at := func(c, r int) (float64, bool) {
		if c < 0 || c >= padded.Cols || r < 0 || r >= padded.Rows {
			return 0, false
		}
		v := padded.Get(c, r)
		if padded.IsNoData(v) {
			return 0, false
		}
		return v, true
	}

	for row := 0; row < out.Rows; row++ {
		for col := 0; col < out.Cols; col++ {
			pc := col + margin
			pr := row + margin
			center, ok := at(pc, pr)
			if !ok {
				continue
			}
			// Missing window cells fall back to the center elevation.
			w := [3][3]float64{}
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					v, valid := at(pc+dx, pr+dy)
					if !valid {
						v = center
					}
					w[dy+1][dx+1] = v
				}
			}

			dzdx := ((w[0][2] + 2*w[1][2] + w[2][2]) - (w[0][0] + 2*w[1][0] + w[2][0])) / (8 * cellW)
			dzdy := ((w[2][0] + 2*w[2][1] + w[2][2]) - (w[0][0] + 2*w[0][1] + w[0][2])) / (8 * cellH)

			if op == FocalSlope {
				out.Set(col, row, math.Atan(math.Sqrt(dzdx*dzdx+dzdy*dzdy))*180/math.Pi)
				continue
			}

			aspect := math.Atan2(dzdy, -dzdx) * 180 / math.Pi
			if aspect < 0 {
				aspect += 360
			}
			out.Set(col, row, aspect)
		}
	}
}
