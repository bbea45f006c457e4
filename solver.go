package pcgs

import "math"

// maxIterations bounds the number of PCG iterations attempted before
// giving up and reporting non-convergence.
const maxIterations = 100

// toleranceFactor scales the initial residual's largest absolute value
// to obtain the convergence threshold: the solver stops once the
// residual has shrunk by this factor.
const toleranceFactor = 1e-5

// minNormalFloat64 is the smallest positive float64 that is not
// subnormal (2^-1022). Used by isNormalFloat to replicate IEEE-754's
// "normal number" classification, which Go's math package does not
// expose directly.
const minNormalFloat64 = 2.2250738585072014e-308

// isNormalFloat reports whether x is an IEEE-754 normal number: finite,
// non-NaN, non-zero, and not subnormal. PCG uses it to detect a
// breakdown in rho (the search direction has gone degenerate) the same
// way a near-zero or denormalized pivot would.
func isNormalFloat(x float64) bool {
	if math.IsNaN(x) || math.IsInf(x, 0) || x == 0 {
		return false
	}
	return math.Abs(x) >= minNormalFloat64
}

// Result reports the outcome of a Solve call.
type Result struct {
	Completed  bool
	Iterations int
	BestGuess  Vector
}

// Solve finds x such that m*x = rhs using the Preconditioned Conjugate
// Gradient method, with a MIC(0) preconditioner built fresh from m.
//
// On iteration exhaustion BestGuess holds the latest iterate accumulated
// so far: a caller inspecting it after Completed == false wants the
// best approximation to x, not the left-over residual of the equation
// that failed to converge. The two degenerate early returns (zero
// right-hand side, breakdown of the initial rho) happen before any
// iterate exists and hand back the initial residual instead.
func Solve(m *SymmetricMatrix, rhs Vector) Result {
	r := make(Vector, len(rhs))
	copy(r, rhs)

	residualOut := r.LargestAbsoluteValue()
	if residualOut == 0 {
		return Result{Completed: false, Iterations: 0, BestGuess: r}
	}

	icFactor := NewPreconditioner(m)
	z := icFactor.Apply(r)

	rho := z.Dot(r)
	if rho == 0 || !isNormalFloat(rho) {
		return Result{Completed: false, Iterations: 0, BestGuess: r}
	}

	tolerance := toleranceFactor * residualOut
	result := NewVector(len(rhs))
	s := z
	srm := NewRowMatrix(m)

	for iteration := 0; iteration < maxIterations; iteration++ {
		z = srm.Apply(s)
		alpha := rho / s.Dot(z)
		result = result.Add(s.Scale(alpha))
		r = r.Add(z.Scale(-alpha))
		if r.LargestAbsoluteValue() < tolerance {
			return Result{Completed: true, Iterations: iteration + 1, BestGuess: result}
		}
		z = icFactor.Apply(r)
		rhoNew := z.Dot(r)
		beta := rhoNew / rho
		s = z.Add(s.Scale(beta))
		rho = rhoNew
	}

	return Result{Completed: false, Iterations: maxIterations, BestGuess: result}
}
