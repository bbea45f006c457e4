package blas

// Dusmv (sparse matrix-vector multiply, y <- alpha*A*x + y, or
// y <- alpha*A^T*x + y when transA) multiplies the dense vector x by
// the row-compressed matrix a, or its transpose, and accumulates the
// result into the dense vector y. The plain product gathers along each
// row; the transposed product scatters each row into y.
func Dusmv(transA bool, alpha float64, a *RowCompressed, x, y []float64) {
	if alpha == 0 {
		return
	}

	if transA {
		for i := 0; i < a.Rows; i++ {
			begin, end := a.RowPointers[i], a.RowPointers[i+1]
			Dusaxpy(alpha*x[i], a.Values[begin:end], a.ColumnIndex[begin:end], y)
		}
	} else {
		for i := 0; i < a.Rows; i++ {
			begin, end := a.RowPointers[i], a.RowPointers[i+1]
			y[i] += alpha * Dusdot(a.Values[begin:end], a.ColumnIndex[begin:end], x)
		}
	}
}
