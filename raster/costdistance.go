package raster

import (
	"container/heap"
	"math"
)

type costCell struct {
	index int
	cost  float64
}

type costHeap []costCell

func (h costHeap) Len() int            { return len(h) }
func (h costHeap) Less(i, j int) bool  { return h[i].cost < h[j].cost }
func (h costHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *costHeap) Push(x interface{}) { *h = append(*h, x.(costCell)) }
func (h *costHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// CostDistance computes the minimum cumulative traversal cost from the
// source cells across the friction surface. Moving between two
// adjacent cells costs the mean of their friction values times the
// center distance in cell units (sqrt 2 on diagonals). Cells whose
// cumulative cost exceeds maxDistance, nodata friction cells and
// unreachable cells all come back as nodata.
func CostDistance(friction *Tile, sources []int, maxDistance float64) *Tile {
	out := NewTile(friction.Cols, friction.Rows, friction.NoData)

	dist := make([]float64, len(friction.Cells))
	for i := range dist {
		dist[i] = math.Inf(1)
	}

	h := &costHeap{}
	heap.Init(h)
	for _, src := range sources {
		if src < 0 || src >= len(friction.Cells) {
			continue
		}
		if friction.IsNoData(friction.Cells[src]) {
			continue
		}
		dist[src] = 0
		heap.Push(h, costCell{index: src, cost: 0})
	}

	neighbors := [8][3]float64{
		{-1, 0, 1}, {1, 0, 1}, {0, -1, 1}, {0, 1, 1},
		{-1, -1, math.Sqrt2}, {1, -1, math.Sqrt2}, {-1, 1, math.Sqrt2}, {1, 1, math.Sqrt2},
	}

	for h.Len() > 0 {
		cur := heap.Pop(h).(costCell)
		if cur.cost > dist[cur.index] {
			continue
		}
		col := cur.index % friction.Cols
		row := cur.index / friction.Cols
		base := friction.Cells[cur.index]

		for _, n := range neighbors {
			c := col + int(n[0])
			r := row + int(n[1])
			if c < 0 || c >= friction.Cols || r < 0 || r >= friction.Rows {
				continue
			}
			idx := r*friction.Cols + c
			f := friction.Cells[idx]
			if friction.IsNoData(f) {
				continue
			}
			next := cur.cost + (base+f)/2*n[2]
			if next > maxDistance {
				continue
			}
			if next < dist[idx] {
				dist[idx] = next
				heap.Push(h, costCell{index: idx, cost: next})
			}
		}
	}

	for i, d := range dist {
		if !math.IsInf(d, 1) {
			out.Cells[i] = d
		}
	}
	return out
}
