package blas

// Dusaxpy (sparse update, y <- alpha*x + y) scales the sparse vector x
// by alpha and scatters the result into the dense vector y at the
// positions named by indx.
func Dusaxpy(alpha float64, x []float64, indx []int, y []float64) {
	for i, index := range indx {
		y[index] += alpha * x[i]
	}
}
