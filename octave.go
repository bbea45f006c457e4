package pcgs

import (
	"fmt"
	"strings"
)

// Debug renders m as an Octave sparse-matrix literal, one-based as
// Octave expects, with each off-diagonal entry listed in both
// triangles, e.g. "sparse([1 2 1],[1 1 2],[1.5 5.5 5.5],2,2)". It is a
// convenience for cross-checking results against Octave by hand; it is
// not used anywhere in the solve path.
func (m *SymmetricMatrix) Debug() string {
	var rows, cols []int
	var vals []float64
	for col, js := range m.Indices {
		for k, row := range js {
			v := m.Values[col][k]
			rows = append(rows, row+1)
			cols = append(cols, col+1)
			vals = append(vals, v)
			if row != col {
				rows = append(rows, col+1)
				cols = append(cols, row+1)
				vals = append(vals, v)
			}
		}
	}
	n := m.Length + 1
	return sparseLiteral(rows, cols, vals, n, n)
}

// Debug renders rm as an Octave sparse-matrix literal in the same form
// as SymmetricMatrix.Debug.
func (rm *RowMatrix) Debug() string {
	var rows, cols []int
	var vals []float64
	for i := 0; i < rm.n; i++ {
		for k := rm.RowPointers[i]; k < rm.RowPointers[i+1]; k++ {
			rows = append(rows, i+1)
			cols = append(cols, rm.ColumnIndex[k]+1)
			vals = append(vals, rm.Values[k])
		}
	}
	return sparseLiteral(rows, cols, vals, rm.n, rm.n)
}

func sparseLiteral(rows, cols []int, vals []float64, nr, nc int) string {
	fmtInts := func(xs []int) string {
		parts := make([]string, len(xs))
		for i, x := range xs {
			parts[i] = fmt.Sprintf("%d", x)
		}
		return strings.Join(parts, " ")
	}
	fmtFloats := func(xs []float64) string {
		parts := make([]string, len(xs))
		for i, x := range xs {
			parts[i] = fmt.Sprintf("%v", x)
		}
		return strings.Join(parts, " ")
	}
	return fmt.Sprintf("sparse([%s],[%s],[%s],%d,%d)",
		fmtInts(rows), fmtInts(cols), fmtFloats(vals), nr, nc)
}
