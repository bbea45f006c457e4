package blas

// Dusdot (sparse dot product, r <- x^T*y) gathers the dense vector y at
// the positions named by indx and accumulates its product with the
// sparse vector x.
func Dusdot(x []float64, indx []int, y []float64) (dot float64) {
	for i, index := range indx {
		dot += x[i] * y[index]
	}
	return
}
