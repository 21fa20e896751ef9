// SPDX-License-Identifier: MIT

// impl_linear_algebra.go hosts the rank-2 kernels: product, transpose,
// trace and LU factorization. All arithmetic goes through a caller-supplied
// numeric table; the kernels contain no type switches and no reflection.

package tensor

import (
	"fmt"

	"github.com/katalvlaran/lvlmath/numeric"
)

// Operation names used as uniform error prefixes.
const (
	opDet        = "Det"
	opLU         = "LU"
	opMatMul     = "MatMul"
	opTranspose  = "Transpose"
	opTrace      = "Trace"
	opIdentity   = "Identity"
	opFromNested = "FromNested"
)

// tensorErrorf wraps err with the operation name for uniform context.
func tensorErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// MatMul computes the matrix product a*b.
//
// Implementation:
//   - Stage 1 (Validate): both operands non-nil rank-2 with matching inner
//     dimension; arithmetic table present.
//   - Stage 2 (Execute): classic triple loop over rows of a, columns of b.
//     The k=0 term seeds each accumulator, so only Add/Mul are required.
//   - Stage 3 (Finalize): return the fresh (m x n) result.
//
// Behavior highlights:
//   - Neither operand is mutated; the result shares no storage with them.
//   - Works for any element type with an Arith table, including exact
//     rationals.
//
// Inputs:
//   - a: left operand, shape (m x k).
//   - b: right operand, shape (k x n).
//   - ops: arithmetic table for T.
//
// Returns:
//   - *Array[T] of shape (m x n).
//
// Errors:
//   - ErrNilArray, ErrEmptyArray, ErrNotTwoDimensional,
//     ErrDimensionMismatch, ErrNilOps.
//
// Determinism: accumulation order is fixed (ascending k), so results are
// bit-reproducible for a given input.
// Complexity: O(m*k*n) time, O(m*n) memory.
func MatMul[T any](a, b *Array[T], ops numeric.Arith[T]) (*Array[T], error) {
	// Stage 1: validate structure, then the table.
	if err := ValidateBinaryProduct(a, b); err != nil {
		return nil, tensorErrorf(opMatMul, err)
	}
	if err := ValidateOps(ops); err != nil {
		return nil, tensorErrorf(opMatMul, err)
	}

	m, inner := a.shape[0], a.shape[1]
	n := b.shape[1]
	out, err := New[T](m, n)
	if err != nil {
		return nil, tensorErrorf(opMatMul, err)
	}

	// Stage 2: accumulate row-by-column products.
	var i, j, k int // loop iterators
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			acc := ops.Mul(a.data[i*inner], b.data[j]) // k = 0 seeds the accumulator
			for k = 1; k < inner; k++ {
				acc = ops.Add(acc, ops.Mul(a.data[i*inner+k], b.data[k*n+j]))
			}
			out.data[i*n+j] = acc
		}
	}

	return out, nil
}

// Transpose returns a fresh (c x r) array with rows and columns exchanged.
// Stage 1 (Validate): operand must be a non-nil rank-2 array.
// Stage 2 (Execute): copy each (i, j) cell to (j, i).
// Complexity: O(r*c) time and memory.
func Transpose[T any](a *Array[T]) (*Array[T], error) {
	if err := ValidateMatrixNonNil(a); err != nil {
		return nil, tensorErrorf(opTranspose, err)
	}

	r, c := a.shape[0], a.shape[1]
	out, err := New[T](c, r)
	if err != nil {
		return nil, tensorErrorf(opTranspose, err)
	}
	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[j*r+i] = a.data[i*c+j]
		}
	}

	return out, nil
}

// Trace returns the sum of the main-diagonal elements of a square matrix.
// Stage 1 (Validate): non-nil square rank-2 array, table present.
// Stage 2 (Execute): left-to-right diagonal sum. The accumulator starts as
// a fresh copy of the (0,0) cell, so the result never aliases an array
// cell, even for 1x1 inputs over pointer element types.
// Complexity: O(n) time, O(1) memory.
func Trace[T any](a *Array[T], ops numeric.Field[T]) (T, error) {
	var zero T
	if err := ValidateSquareNonNil(a); err != nil {
		return zero, tensorErrorf(opTrace, err)
	}
	if err := ValidateOps[T](ops); err != nil {
		return zero, tensorErrorf(opTrace, err)
	}

	n := a.shape[0]
	acc := freshValue(a.data[0], ops)
	var i int // loop iterator
	for i = 1; i < n; i++ {
		acc = ops.Add(acc, a.data[i*n+i])
	}

	return acc, nil
}

// LU factorizes a square matrix into unit-lower L, upper U and a row
// permutation such that L*U equals the row-permuted input.
//
// Implementation:
//   - Stage 1 (Validate): non-nil square rank-2 array, field table present.
//   - Stage 2 (Prepare): clone the input into a combined L\U working copy,
//     initialize perm to the identity permutation.
//   - Stage 3 (Eliminate): for each column k, under PivotPartial swap the
//     largest-magnitude candidate (by ops.CmpAbs) into the pivot seat and
//     record the exchange in perm, then store multipliers below the pivot
//     and update the trailing submatrix. A zero pivot under PivotPartial
//     means the whole candidate column is zero, so the column is skipped
//     and U keeps an exact zero on its diagonal; under PivotNone a zero
//     pivot aborts with ErrZeroPivot.
//   - Stage 4 (Split): unpack the working copy into L (unit diagonal) and
//     U; their remaining cells are table zeros, not Go zero values, which
//     matters for pointer element types.
//
// Behavior highlights:
//   - The input array is never mutated.
//   - perm[i] names the input row that landed in factorization row i, so
//     reconstructing row i of the permuted input reads a.data row perm[i].
//   - Singular inputs factorize fine under PivotPartial; singularity shows
//     up as zeros on U's diagonal rather than as an error.
//
// Inputs:
//   - a: square (n x n) array.
//   - ops: field table for T (division and magnitude comparison required).
//   - opts: WithPivotMode / WithoutPivoting.
//
// Returns:
//   - l: unit-lower-triangular (n x n) array of multipliers.
//   - u: upper-triangular (n x n) array.
//   - perm: permutation of [0, n) describing the row exchanges.
//
// Errors:
//   - ErrNilArray, ErrEmptyArray, ErrNotTwoDimensional, ErrNonSquare,
//     ErrNilOps.
//   - ErrZeroPivot: zero pivot encountered under PivotNone.
//
// Determinism: pivot ties keep the earliest row (strict CmpAbs > 0), so
// the factorization is reproducible for a given input and mode.
// Complexity: O(n^3) time, O(n^2) memory.
//
// AI-Hints:
//   - For determinants, multiply U's diagonal and fix the sign from perm;
//     Det does exactly that.
//   - Use WithoutPivoting only when the input is known to need no row
//     exchanges (e.g. diagonally dominant); otherwise keep the default.
//   - With numeric.Rat the factorization is exact; with numeric.Real set
//     Eps to treat round-off residue below it as zero.
func LU[T any](a *Array[T], ops numeric.Field[T], opts ...Option) (l, u *Array[T], perm []int, err error) {
	// Stage 1: validate.
	if err = ValidateSquareNonNil(a); err != nil {
		return nil, nil, nil, tensorErrorf(opLU, err)
	}
	if err = ValidateOps[T](ops); err != nil {
		return nil, nil, nil, tensorErrorf(opLU, err)
	}
	o := gatherOptions(opts...)

	// Stage 2: working copy and identity permutation.
	n := a.shape[0]
	w := a.Clone()
	perm = make([]int, n)
	var i, j, k, r int // loop iterators
	for i = 0; i < n; i++ {
		perm[i] = i
	}

	// Stage 3: column-by-column elimination.
	for k = 0; k < n; k++ {
		if o.Pivot() == PivotPartial {
			best := k
			for r = k + 1; r < n; r++ {
				if ops.CmpAbs(w.data[r*n+k], w.data[best*n+k]) > 0 {
					best = r
				}
			}
			if best != k {
				swapRows(w, k, best)
				perm[k], perm[best] = perm[best], perm[k]
			}
		}
		pivot := w.data[k*n+k]
		if ops.IsZero(pivot) {
			if o.Pivot() == PivotNone {
				return nil, nil, nil, tensorErrorf(opLU, ErrZeroPivot)
			}
			continue // column is already eliminated; U keeps a zero diagonal cell
		}
		for r = k + 1; r < n; r++ {
			factor := ops.Div(w.data[r*n+k], pivot)
			w.data[r*n+k] = factor // multiplier lands in the L part
			for j = k + 1; j < n; j++ {
				w.data[r*n+j] = ops.Sub(w.data[r*n+j], ops.Mul(factor, w.data[k*n+j]))
			}
		}
	}

	// Stage 4: split the combined working copy into L and U.
	if l, err = Identity(n, ops); err != nil {
		return nil, nil, nil, tensorErrorf(opLU, err)
	}
	if u, err = New[T](n, n); err != nil {
		return nil, nil, nil, tensorErrorf(opLU, err)
	}
	u.Fill(ops.Zero())
	for i = 0; i < n; i++ {
		for j = 0; j < i; j++ {
			l.data[i*n+j] = w.data[i*n+j]
		}
		for j = i; j < n; j++ {
			u.data[i*n+j] = w.data[i*n+j]
		}
	}

	return l, u, perm, nil
}

// swapRows exchanges complete rows r1 and r2 of a rank-2 array in place.
func swapRows[T any](a *Array[T], r1, r2 int) {
	c := a.shape[1]
	var j int // loop iterator
	for j = 0; j < c; j++ {
		a.data[r1*c+j], a.data[r2*c+j] = a.data[r2*c+j], a.data[r1*c+j]
	}
}
