package pcgs

import (
	"gonum.org/v1/gonum/mat"

	"github.com/cantsin/pcgs/blas"
)

var _ mat.Matrix = (*RowMatrix)(nil)

// RowMatrix is a read-only, full (both-triangle) Compressed Sparse Row
// view of a SymmetricMatrix, derived once and used exclusively for
// y = A*x. RowPointers has length n+1, RowPointers[0] == 0 and
// RowPointers[n] == len(Values).
type RowMatrix struct {
	n int

	Values      []float64
	ColumnIndex []int
	RowPointers []int
}

// NewRowMatrix derives a full CSR operator from a SymmetricMatrix. Each
// stored (column i, row j, value) contributes to CSR row j, column i
// and, when i != j, mirrors into CSR row i, column j. Construction is
// two-pass (count per-row nonzeros, then place) and runs in O(nnz).
func NewRowMatrix(m *SymmetricMatrix) *RowMatrix {
	n := m.Length + 1

	rowCounts := make([]int, n)
	for col := 0; col < n; col++ {
		for _, row := range m.Indices[col] {
			rowCounts[row]++
			if row != col {
				rowCounts[col]++
			}
		}
	}

	rowPointers := make([]int, n+1)
	for i := 0; i < n; i++ {
		rowPointers[i+1] = rowPointers[i] + rowCounts[i]
	}

	nnz := rowPointers[n]
	values := make([]float64, nnz)
	columnIndex := make([]int, nnz)

	cursor := make([]int, n)
	copy(cursor, rowPointers[:n])

	for col := 0; col < n; col++ {
		for k, row := range m.Indices[col] {
			v := m.Values[col][k]

			p := cursor[row]
			values[p] = v
			columnIndex[p] = col
			cursor[row]++

			if row != col {
				q := cursor[col]
				values[q] = v
				columnIndex[q] = row
				cursor[col]++
			}
		}
	}

	return &RowMatrix{n: n, Values: values, ColumnIndex: columnIndex, RowPointers: rowPointers}
}

func (rm *RowMatrix) view() blas.RowCompressed {
	return blas.RowCompressed{
		Rows:        rm.n,
		Cols:        rm.n,
		RowPointers: rm.RowPointers,
		ColumnIndex: rm.ColumnIndex,
		Values:      rm.Values,
	}
}

// Apply computes y = A*x. Apply panics if len(x) != n.
func (rm *RowMatrix) Apply(x Vector) Vector {
	if len(x) != rm.n {
		panic(mat.ErrShape)
	}
	assertFinite(x)
	y := make(Vector, rm.n)
	view := rm.view()
	blas.Dusmv(false, 1, &view, x, y)
	return y
}

// ApplyTranspose computes y = A^T*x using the row-major Dusmv
// transpose branch directly against this CSR's data. Since RowMatrix
// always represents a full symmetric matrix, ApplyTranspose and Apply
// are numerically equal, but they exercise a distinct summation order
// (row-driven scatter vs row-driven gather), useful to cross-check the
// self-adjoint property the matrix is supposed to have.
func (rm *RowMatrix) ApplyTranspose(x Vector) Vector {
	if len(x) != rm.n {
		panic(mat.ErrShape)
	}
	assertFinite(x)
	y := make(Vector, rm.n)
	view := rm.view()
	blas.Dusmv(true, 1, &view, x, y)
	return y
}

// Dims returns the matrix's dimensions, satisfying mat.Matrix.
func (rm *RowMatrix) Dims() (r, c int) {
	return rm.n, rm.n
}

// At returns the value at row i, column j, satisfying mat.Matrix. At
// will panic if i or j are out of range.
func (rm *RowMatrix) At(i, j int) float64 {
	if uint(i) >= uint(rm.n) {
		panic(mat.ErrRowAccess)
	}
	if uint(j) >= uint(rm.n) {
		panic(mat.ErrColAccess)
	}
	view := rm.view()
	return view.At(i, j)
}

// T returns the receiver: a RowMatrix derived from a SymmetricMatrix
// always represents a symmetric matrix.
func (rm *RowMatrix) T() mat.Matrix {
	return rm
}
