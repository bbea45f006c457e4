package blas

import (
	"testing"
)

// fullSymmetric is the full (both-triangle) CSR expansion of the
// lower-triangle entries (0,0,1), (0,1,5), (0,2,6), (1,1,2):
//
//	1 5 6
//	5 2 0
//	6 0 0
var fullSymmetric = RowCompressed{
	Rows: 3, Cols: 3,
	RowPointers: []int{0, 3, 5, 6},
	ColumnIndex: []int{0, 1, 2, 0, 1, 0},
	Values:      []float64{1, 5, 6, 5, 2, 6},
}

// strictLower is the lower triangle of
//
//	1.5 5.5 6.5
//	5.5 2.5 8.5
//	6.5 8.5 9.5
//
// with the diagonal included, the shape a triangular factor takes.
var strictLower = RowCompressed{
	Rows: 3, Cols: 3,
	RowPointers: []int{0, 1, 3, 6},
	ColumnIndex: []int{0, 0, 1, 0, 1, 2},
	Values:      []float64{1.5, 5.5, 2.5, 6.5, 8.5, 9.5},
}

func TestDusmv(t *testing.T) {
	tests := []struct {
		transA   bool
		alpha    float64
		a        *RowCompressed
		x        []float64
		y        []float64
		expected []float64
	}{
		{
			transA:   false,
			alpha:    1,
			a:        &fullSymmetric,
			x:        []float64{1, 2, 3},
			y:        []float64{0, 0, 0},
			expected: []float64{29, 9, 6},
		},
		{
			// a symmetric operator is its own transpose
			transA:   true,
			alpha:    1,
			a:        &fullSymmetric,
			x:        []float64{1, 2, 3},
			y:        []float64{0, 0, 0},
			expected: []float64{29, 9, 6},
		},
		{
			// accumulate into a non-zero y with scaling
			transA:   false,
			alpha:    2,
			a:        &fullSymmetric,
			x:        []float64{1, 2, 3},
			y:        []float64{1, 2, 3},
			expected: []float64{59, 20, 15},
		},
		{
			transA:   false,
			alpha:    1,
			a:        &strictLower,
			x:        []float64{1, 2, 3},
			y:        []float64{0, 0, 0},
			expected: []float64{1.5, 10.5, 52},
		},
		{
			transA:   true,
			alpha:    1,
			a:        &strictLower,
			x:        []float64{1, 2, 3},
			y:        []float64{0, 0, 0},
			expected: []float64{32, 30.5, 28.5},
		},
		{
			// alpha of zero leaves y untouched
			transA:   false,
			alpha:    0,
			a:        &fullSymmetric,
			x:        []float64{1, 2, 3},
			y:        []float64{7, 8, 9},
			expected: []float64{7, 8, 9},
		},
	}

	for ti, test := range tests {
		Dusmv(test.transA, test.alpha, test.a, test.x, test.y)

		for i, v := range test.expected {
			if v != test.y[i] {
				t.Errorf("Test %d: Expected %f at %d but received %f", ti, v, i, test.y[i])
			}
		}
	}
}
