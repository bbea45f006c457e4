/*
Package blas provides the sparse BLAS (Basic Linear Algebra
Subprograms) kernels behind the solver's matrix-vector products: a
read-only compressed sparse row container plus the level 1
gather/scatter primitives the level 2 multiply is composed from.

See http://www.netlib.org/blas/blast-forum/chapter3.pdf for the
routine naming scheme.
*/
package blas
