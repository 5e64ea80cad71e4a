package raster

import (
	"fmt"

	"github.com/edisonguo/govaluate"
)

// CompileExpression parses a band-math expression whose variables are
// b0..bn, one per band position.
func CompileExpression(expr string) (*govaluate.EvaluableExpression, error) {
	compiled, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid band expression %q: %v", expr, err)
	}
	for _, v := range compiled.Vars() {
		if len(v) < 2 || v[0] != 'b' {
			return nil, fmt.Errorf("invalid band variable %q in expression %q", v, expr)
		}
	}
	return compiled, nil
}

// MapAlgebra evaluates a compiled band expression cell by cell over
// the multiband tile and returns the derived single band. A nodata
// cell in any referenced band yields nodata.
func MapAlgebra(m *MultibandTile, compiled *govaluate.EvaluableExpression) (*Tile, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	vars := compiled.Vars()
	bandIdx := make([]int, len(vars))
	for i, v := range vars {
		var idx int
		if _, err := fmt.Sscanf(v, "b%d", &idx); err != nil {
			return nil, fmt.Errorf("invalid band variable %q", v)
		}
		if idx < 0 || idx >= m.BandCount() {
			return nil, fmt.Errorf("band variable %q out of range, tile has %d bands", v, m.BandCount())
		}
		bandIdx[i] = idx
	}

	cols, rows := m.Dims()
	out := NewTile(cols, rows, m.Bands[0].NoData)
	params := make(map[string]interface{}, len(vars))

	for i := 0; i < cols*rows; i++ {
		valid := true
		for vi, v := range vars {
			band := m.Bands[bandIdx[vi]]
			cell := band.Cells[i]
			if band.IsNoData(cell) {
				valid = false
				break
			}
			params[v] = cell
		}
		if !valid {
			continue
		}
		result, err := compiled.Evaluate(params)
		if err != nil {
			return nil, fmt.Errorf("band expression evaluation failed: %v", err)
		}
		value, ok := result.(float64)
		if !ok {
			return nil, fmt.Errorf("band expression yielded non-numeric result %v", result)
		}
		out.Cells[i] = value
	}
	return out, nil
}
