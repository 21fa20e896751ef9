// SPDX-License-Identifier: MIT

// impl_determinant.go hosts the determinant: a rank dispatcher in front of
// closed forms for tiny matrices and an LU-based evaluation for the rest.

package tensor

import "github.com/katalvlaran/lvlmath/numeric"

// freshValue returns a copy of v sharing no mutable state with the array it
// was read from. Multiplying by the table's one is exact for every table in
// numeric and allocates a new value for pointer element types.
func freshValue[T any](v T, ops numeric.Field[T]) T {
	return ops.Mul(v, ops.One())
}

// Det computes the determinant of x.
//
// Implementation:
//   - Stage 1 (Validate): x and ops must be non-nil.
//   - Stage 2 (Dispatch): rank 0 and single-element vectors return a copy
//     of the sole element; square matrices evaluate; everything else is
//     rejected with a shape-carrying error.
//   - Stage 3 (Evaluate): n == 1 copies, n == 2 uses the ad-cb closed
//     form, n >= 3 factorizes with LU, multiplies U's diagonal left to
//     right and fixes the sign from the permutation's cycle structure.
//
// Behavior highlights:
//   - x is never mutated; the factorization works on an internal clone.
//   - Singular matrices yield zero under the default pivoting, not an
//     error: the dead pivot column leaves a zero on U's diagonal that
//     annihilates the product. The zero is exact whenever elimination
//     cancels exactly (integer-valued or rational data); with rounding
//     it is zero up to round-off.
//   - The result shares no mutable state with x, so pointer element types
//     (e.g. *big.Rat) may be modified freely by the caller.
//
// Inputs:
//   - x: rank-0 scalar holder, length-1 vector, or square (n x n) matrix.
//   - ops: field table for T.
//   - opts: forwarded to LU (pivoting mode).
//
// Returns:
//   - T: the determinant value.
//
// Errors:
//   - ErrNilArray, ErrEmptyArray, ErrNilOps.
//   - ErrNonSquare: vector of length != 1, or rank-2 with r != c; the
//     message carries the observed size.
//   - ErrNotTwoDimensional: rank >= 3; the message carries the observed
//     size.
//   - ErrZeroPivot: zero pivot under WithoutPivoting, surfaced from LU
//     unchanged.
//
// Determinism: fully deterministic for a given input and pivoting mode.
// Complexity: O(1) for ranks 0-1, O(1) for n <= 2, O(n^3) otherwise.
//
// AI-Hints:
//   - Any rank is accepted; only shapes without a defined determinant
//     error out. Probe errors.Is(err, ErrNonSquare) and
//     errors.Is(err, ErrNotTwoDimensional) to distinguish them.
//   - Pair with numeric.Rat for exact results on rational inputs.
//   - For many determinants of equal-sized float matrices, benchmark
//     against gonum's mat.LU before choosing; this implementation trades
//     peak speed for element-type generality.
func Det[T any](x *Array[T], ops numeric.Field[T], opts ...Option) (T, error) {
	var zero T
	// Stage 1: validate presence.
	if err := ValidateNotNil(x); err != nil {
		return zero, tensorErrorf(opDet, err)
	}
	if err := ValidateOps[T](ops); err != nil {
		return zero, tensorErrorf(opDet, err)
	}

	// Stage 2: dispatch on the rank classification.
	switch x.Kind() {
	case KindScalar:
		return freshValue(x.data[0], ops), nil
	case KindVector:
		if x.shape[0] != 1 {
			return zero, tensorErrorf(opDet, shapeErrorf(ErrNonSquare, x.shape))
		}
		return freshValue(x.data[0], ops), nil
	case KindMatrix:
		if err := ValidateSquare(x); err != nil {
			return zero, tensorErrorf(opDet, err)
		}
		return det(x, ops, opts...)
	}

	// Rank >= 3: determinants are defined for two-dimensional data only.
	return zero, tensorErrorf(opDet, shapeErrorf(ErrNotTwoDimensional, x.shape))
}

// det evaluates a square matrix that already passed validation.
// n <= 2 uses closed forms, larger matrices factorize.
func det[T any](x *Array[T], ops numeric.Field[T], opts ...Option) (T, error) {
	var zero T
	n := x.shape[0]
	switch n {
	case 1:
		return freshValue(x.data[0], ops), nil
	case 2:
		// a00*a11 - a10*a01, cheaper than any factorization.
		return ops.Sub(ops.Mul(x.data[0], x.data[3]), ops.Mul(x.data[2], x.data[1])), nil
	}

	// Factorization failures surface to the caller unchanged.
	_, u, perm, err := LU(x, ops, opts...)
	if err != nil {
		return zero, err
	}

	// Left-to-right product over U's main diagonal.
	acc := u.data[0]
	var i int // loop iterator
	for i = 1; i < n; i++ {
		acc = ops.Mul(acc, u.data[i*n+i])
	}
	// Row exchanges contribute the permutation's sign.
	if permSign(perm) < 0 {
		acc = ops.Neg(acc)
	}

	return acc, nil
}

// permSign returns the parity (+1 or -1) of a permutation of [0, n),
// computed from its cycle decomposition: a cycle of length L decomposes
// into L-1 transpositions, so exactly the even-length cycles flip the
// sign. Fixed points never do. The visited scratch is owned by the call.
// Complexity: O(n) time, O(n) memory.
func permSign(perm []int) int {
	visited := make([]bool, len(perm))
	sign := 1
	var i, j, length int
	for i = 0; i < len(perm); i++ {
		if visited[i] {
			continue
		}
		// Walk the cycle containing i, marking members as seen.
		length = 0
		for j = i; !visited[j]; j = perm[j] {
			visited[j] = true
			length++
		}
		if length%2 == 0 {
			sign = -sign
		}
	}

	return sign
}
