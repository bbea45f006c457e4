package pcgs

import (
	"math"
	"sort"
)

// modifiedParameter (tau) controls how much of the fill dropped by the
// no-fill pattern is lumped back onto the diagonal rather than
// discarded outright. 0 would be plain IC(0); 1 would be the full MIC
// lumping. 0.97 is Bridson's tuned value.
const modifiedParameter = 0.97

// minDiagonalRatio guards against a factor diagonal collapsing (or
// going negative) during the update below: if the running inverse
// diagonal has dropped under this fraction of the original diagonal,
// the column falls back to a plain Gauss-Seidel (unmodified) pivot
// instead of the MIC update.
const minDiagonalRatio = 0.25

// Preconditioner is a Modified Incomplete Cholesky (MIC(0), no-fill)
// factor of a SymmetricMatrix, stored as a strict lower triangle in
// compressed-sparse-column form, plus the precomputed inverse of its
// diagonal.
type Preconditioner struct {
	Length           int
	Values           []float64
	RowIndex         []int
	ColumnPointers   []int
	InverseDiagonals []float64
}

// NewPreconditioner factors m into a MIC(0) preconditioner using
// Bridson's algorithm: https://www.cs.ubc.ca/~rbridson/fluidsimulation/
//
// The elimination keeps the two-cursor merge walk over the growing
// factor's sparsity pattern intact; the numerical result
// (InverseDiagonals, Values) depends on the precise order operations
// are applied in, not just on the final matrix being factored.
func NewPreconditioner(m *SymmetricMatrix) *Preconditioner {
	var values []float64
	var rowIndex []int
	var columnPointers []int
	var diagonals []float64
	var inverseDiagonals []float64

	n := m.Length + 1
	for i := 0; i < n; i++ {
		columnPointers = append(columnPointers, len(rowIndex))
		diagonals = append(diagonals, 0)
		inverseDiagonals = append(inverseDiagonals, 0)
		for j := 0; j < len(m.Indices[i]); j++ {
			index := m.Indices[i][j]
			value := m.Values[i][j]
			if index > i {
				rowIndex = append(rowIndex, index)
				values = append(values, value)
			} else if index == i {
				diagonals[i] = value
				inverseDiagonals[i] = value
			}
		}
	}
	columnPointers = append(columnPointers, len(rowIndex))

	length := len(columnPointers) - 1
	for k := 0; k < length; k++ {
		if diagonals[k] == 0 {
			// null row and column
			continue
		}

		gaussSeidel := inverseDiagonals[k] < minDiagonalRatio*diagonals[k]
		if gaussSeidel {
			inverseDiagonals[k] = 1 / math.Sqrt(diagonals[k])
		} else {
			inverseDiagonals[k] = 1 / math.Sqrt(inverseDiagonals[k])
		}

		colS := columnPointers[k]
		colT := columnPointers[k+1]
		for p := colS; p < colT; p++ {
			values[p] *= inverseDiagonals[k]
		}

		for p := colS; p < colT; p++ {
			j := rowIndex[p]
			multiplier := values[p]
			missing := 0.0
			a := colS
			for a < colT && rowIndex[a] < j {
				// A(j, rowIndex[a]) lives in m's column rowIndex[a] at row j.
				rows := m.Indices[rowIndex[a]]
				if idx := sort.SearchInts(rows, j); idx == len(rows) || rows[idx] != j {
					missing += values[a]
				}
				a++
			}

			if a < colT && rowIndex[a] == j {
				inverseDiagonals[j] -= multiplier * values[a]
			}

			a++
			b := columnPointers[j]
			for a < colT && b < columnPointers[j+1] {
				currentRow := rowIndex[a]
				if rowIndex[b] < currentRow {
					b++
				} else if rowIndex[b] == currentRow {
					values[b] -= multiplier * values[a]
					a++
					b++
				} else {
					missing += values[a]
					a++
				}
			}

			for a < colT {
				missing += values[a]
				a++
			}

			inverseDiagonals[j] -= modifiedParameter * multiplier * missing
		}
	}

	return &Preconditioner{
		Length:           length,
		Values:           values,
		RowIndex:         rowIndex,
		ColumnPointers:   columnPointers,
		InverseDiagonals: inverseDiagonals,
	}
}

// Apply returns M^-1 * v, where M is the preconditioned matrix L*L^T
// implied by this factor, via forward then back triangular solves.
func (p *Preconditioner) Apply(v Vector) Vector {
	z := p.solveLower(v)
	return p.solveLowerTranspose(z)
}

// solveLower solves L*result = v in place over a copy of v.
func (p *Preconditioner) solveLower(v Vector) Vector {
	result := make(Vector, len(v))
	copy(result, v)
	for i := 0; i < p.Length; i++ {
		result[i] *= p.InverseDiagonals[i]
		x := p.ColumnPointers[i]
		y := p.ColumnPointers[i+1]
		for j := x; j < y; j++ {
			index := p.RowIndex[j]
			result[index] -= p.Values[j] * result[i]
		}
	}
	return result
}

// solveLowerTranspose solves L^T*result = v in place over a copy of v,
// walking rows Length-2 down to 0. The last component is returned as
// given: it is not scaled by its inverse diagonal in this pass.
func (p *Preconditioner) solveLowerTranspose(v Vector) Vector {
	result := make(Vector, len(v))
	copy(result, v)
	n := p.Length - 1
	for i := n - 1; i >= 0; i-- {
		x := p.ColumnPointers[i]
		y := p.ColumnPointers[i+1]
		for j := x; j < y; j++ {
			index := p.RowIndex[j]
			result[i] -= p.Values[j] * result[index]
		}
		result[i] *= p.InverseDiagonals[i]
	}
	return result
}
