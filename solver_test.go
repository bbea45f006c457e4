package pcgs

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestSolve_EndToEnd(t *testing.T) {
	m := NewSymmetricMatrix([]Entry{
		{Row: 0, Col: 0, Value: 1.0},
		{Row: 0, Col: 1, Value: 5.0},
		{Row: 0, Col: 2, Value: 6.0},
		{Row: 1, Col: 1, Value: 2.0},
	})
	rhs := VectorFromSlice([]float64{5, 6, 7})

	result := Solve(m, rhs)

	if !result.Completed {
		t.Fatalf("Completed = false, want true")
	}
	if result.Iterations > 3 {
		t.Fatalf("Iterations = %d, want <= 3", result.Iterations)
	}
	want := []float64{1.1667, 0.0833, 0.5694}
	for i, w := range want {
		if !scalar.EqualWithinAbsOrRel(result.BestGuess[i], w, 1e-4, 0) {
			t.Errorf("BestGuess[%d] = %v, want %v within 1e-4", i, result.BestGuess[i], w)
		}
	}
}

func TestSolve_ZeroRHS(t *testing.T) {
	m := NewSymmetricMatrix([]Entry{
		{Row: 0, Col: 0, Value: 4.0},
		{Row: 0, Col: 1, Value: 1.0},
		{Row: 1, Col: 1, Value: 3.0},
	})
	rhs := NewVector(2)

	result := Solve(m, rhs)

	if result.Completed {
		t.Fatalf("Completed = true, want false for an all-zero RHS")
	}
	if result.Iterations != 0 {
		t.Fatalf("Iterations = %d, want 0", result.Iterations)
	}
	for i, v := range result.BestGuess {
		if v != 0 {
			t.Errorf("BestGuess[%d] = %v, want 0", i, v)
		}
	}
}

func TestSolve_TerminatesWithinIterationCap(t *testing.T) {
	m := NewSymmetricMatrix([]Entry{
		{Row: 0, Col: 0, Value: 4.0},
		{Row: 0, Col: 1, Value: 1.0},
		{Row: 1, Col: 1, Value: 3.0},
		{Row: 1, Col: 2, Value: 1.0},
		{Row: 2, Col: 2, Value: 5.0},
	})
	rhs := VectorFromSlice([]float64{1, 2, 3})

	result := Solve(m, rhs)

	if !result.Completed {
		t.Fatalf("small well-conditioned SPD system should converge within %d iterations", maxIterations)
	}
	if result.Iterations > 3 {
		t.Errorf("Iterations = %d, want <= n = 3 for exact arithmetic convergence", result.Iterations)
	}
}

func TestSolve_NullRowsDoNotPanic(t *testing.T) {
	m := NewSymmetricMatrix([]Entry{
		{Row: 0, Col: 0, Value: 0.0},
		{Row: 1, Col: 1, Value: 2.0},
	})
	rhs := VectorFromSlice([]float64{0, 4})

	result := Solve(m, rhs)
	if result.BestGuess[0] != 0 {
		t.Errorf("BestGuess[0] = %v, want 0 for a pinned null row", result.BestGuess[0])
	}
}
