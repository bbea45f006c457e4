/*
Package pcgs solves sparse symmetric positive-definite linear systems
A·x = b with the Preconditioned Conjugate Gradient method, using a
Modified Incomplete Cholesky (MIC(0), Bridson) preconditioner that keeps
the sparsity pattern of A (no fill-in).

The target workload is systems arising from discretized physical
problems, such as pressure projection in fluid simulation: millions of
unknowns, tens of nonzeros per row, symmetric positive-definite. Direct
factorization is infeasible at that scale and unpreconditioned CG
converges too slowly, which is why MIC(0) exists here.

Four parts make up the package, used in this order:

 1. SymmetricMatrix accumulates unordered (row, col, value) entries into
    a deduplicated, sorted, lower-triangle-only column-major structure.
 2. RowMatrix derives a full (both triangles) CSR view of a
    SymmetricMatrix, used only for matrix-vector products.
 3. Preconditioner factors a SymmetricMatrix into a strict lower
    triangular MIC(0) factor and applies its inverse via two triangular
    solves.
 4. Solve drives PCG using a RowMatrix and a Preconditioner to
    convergence or an iteration cap.

The package is a pure, single-threaded numerical kernel: no goroutines,
no I/O, no global state. Callers needing cancellation should wrap Solve
in their own goroutine.
*/
package pcgs
