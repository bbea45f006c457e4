package pcgs

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var _ mat.Vector = Vector(nil)

// Vector is a fixed-length dense sequence of finite doubles. It carries
// the elementary BLAS-1 operations PCG needs: LargestAbsoluteValue,
// Dot, Scale and Add. All operations return new vectors; the receiver
// is never modified.
type Vector []float64

// NewVector returns a zero-valued Vector of length n.
func NewVector(n int) Vector {
	return make(Vector, n)
}

// VectorFromSlice copies data into a new Vector.
func VectorFromSlice(data []float64) Vector {
	v := make(Vector, len(data))
	copy(v, data)
	return v
}

// Dims returns the vector's dimensions as a column matrix, satisfying
// mat.Matrix.
func (v Vector) Dims() (r, c int) {
	return len(v), 1
}

// At returns the element at row i. At panics if j != 0.
func (v Vector) At(i, j int) float64 {
	if j != 0 {
		panic(mat.ErrColAccess)
	}
	return v.AtVec(i)
}

// T returns the transpose of the receiver.
func (v Vector) T() mat.Matrix {
	return mat.TransposeVec{Vector: v}
}

// AtVec returns the i'th element of the vector.
func (v Vector) AtVec(i int) float64 {
	return v[i]
}

// Len returns the length of the vector.
func (v Vector) Len() int {
	return len(v)
}

// LargestAbsoluteValue returns max |v[i]|. An empty vector returns 0.
func (v Vector) LargestAbsoluteValue() float64 {
	if len(v) == 0 {
		return 0
	}
	assertFinite(v)
	return floats.Norm(v, math.Inf(1))
}

// Dot returns the sum of the element-wise product of v and other. Dot
// panics if the vectors are not the same length.
func (v Vector) Dot(other Vector) float64 {
	if len(v) != len(other) {
		panic(mat.ErrShape)
	}
	assertFinite(v)
	assertFinite(other)
	return floats.Dot(v, other)
}

// Scale returns a new vector with v[i]*alpha. alpha need only be
// finite: zero and subnormal scale factors are legitimate (they occur
// trivially when alpha == 0 inside PCG) and are not rejected.
func (v Vector) Scale(alpha float64) Vector {
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		panic(ErrNotFinite)
	}
	assertFinite(v)
	result := make(Vector, len(v))
	copy(result, v)
	floats.Scale(alpha, result)
	return result
}

// Add returns a new vector with v[i]+other[i]. Add panics if the
// vectors are not the same length.
func (v Vector) Add(other Vector) Vector {
	if len(v) != len(other) {
		panic(mat.ErrShape)
	}
	assertFinite(v)
	assertFinite(other)
	result := make(Vector, len(v))
	copy(result, v)
	floats.Add(result, other)
	return result
}

// assertFinite panics with ErrNotFinite if any element of v is NaN or
// infinite. Non-finite inputs are a programming error, not a
// recoverable condition.
func assertFinite(v Vector) {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			panic(ErrNotFinite)
		}
	}
}
