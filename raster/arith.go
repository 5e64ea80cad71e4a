package raster

import "fmt"

type LocalOp int

const (
	LocalAdd LocalOp = iota
	LocalSubtract
	LocalMultiply
	LocalDivide
)

func LocalOpFromName(name string) (LocalOp, error) {
	switch name {
	case "+":
		return LocalAdd, nil
	case "-":
		return LocalSubtract, nil
	case "*":
		return LocalMultiply, nil
	case "/":
		return LocalDivide, nil
	default:
		return LocalAdd, fmt.Errorf("unknown local operation: %s", name)
	}
}

func applyLocal(op LocalOp, left, right float64) float64 {
	switch op {
	case LocalAdd:
		return left + right
	case LocalSubtract:
		return left - right
	case LocalMultiply:
		return left * right
	default:
		return left / right
	}
}

// LocalScalar applies op between every cell and a constant. With
// scalarLeft the constant is the left operand, which matters for
// subtraction and division. Nodata cells stay nodata.
func LocalScalar(t *Tile, op LocalOp, scalar float64, scalarLeft bool) *Tile {
	out := t.Clone()
	for i, v := range out.Cells {
		if t.IsNoData(v) {
			continue
		}
		if scalarLeft {
			out.Cells[i] = applyLocal(op, scalar, v)
		} else {
			out.Cells[i] = applyLocal(op, v, scalar)
		}
	}
	return out
}

// LocalBinary applies op elementwise between two co-registered tiles.
// A nodata cell on either side yields nodata.
func LocalBinary(a, b *Tile, op LocalOp) (*Tile, error) {
	if a.Cols != b.Cols || a.Rows != b.Rows {
		return nil, fmt.Errorf("tile dims mismatch: %dx%d vs %dx%d", a.Cols, a.Rows, b.Cols, b.Rows)
	}
	out := NewTile(a.Cols, a.Rows, a.NoData)
	for i := range a.Cells {
		av := a.Cells[i]
		bv := b.Cells[i]
		if a.IsNoData(av) || b.IsNoData(bv) {
			continue
		}
		out.Cells[i] = applyLocal(op, av, bv)
	}
	return out, nil
}
