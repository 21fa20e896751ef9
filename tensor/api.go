// SPDX-License-Identifier: MIT

// api.go gathers the convenience surface: table-aware constructors and
// one-call facades over the kernels for callers starting from plain Go
// slices rather than prebuilt Arrays.

package tensor

import "github.com/katalvlaran/lvlmath/numeric"

// Facade operation names used as uniform error prefixes.
const (
	opZeros        = "Zeros"
	opZerosLike    = "ZerosLike"
	opIdentityLike = "IdentityLike"
	opDetOf        = "DetOf"
	opProductOf    = "ProductOf"
)

// Zeros returns an array of the given shape with every cell set to the
// table's zero. For pointer element types this differs from New, whose
// cells start at Go's zero value (nil).
// Complexity: O(len(data)).
func Zeros[T any](ops numeric.Field[T], shape ...int) (*Array[T], error) {
	if err := ValidateOps[T](ops); err != nil {
		return nil, tensorErrorf(opZeros, err)
	}
	a, err := New[T](shape...)
	if err != nil {
		return nil, tensorErrorf(opZeros, err)
	}
	a.Fill(ops.Zero())

	return a, nil
}

// ZerosLike returns a table-zero array with the same shape as a.
// Complexity: O(len(data)).
func ZerosLike[T any](a *Array[T], ops numeric.Field[T]) (*Array[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, tensorErrorf(opZerosLike, err)
	}

	return Zeros(ops, a.shape...)
}

// Identity returns the (n x n) identity matrix for the table: zeros
// everywhere, the table's one on the main diagonal.
// Stage 1 (Validate): table present; n > 0 enforced by New.
// Complexity: O(n^2).
func Identity[T any](n int, ops numeric.Field[T]) (*Array[T], error) {
	if err := ValidateOps[T](ops); err != nil {
		return nil, tensorErrorf(opIdentity, err)
	}
	a, err := New[T](n, n)
	if err != nil {
		return nil, tensorErrorf(opIdentity, err)
	}
	a.Fill(ops.Zero())
	one := ops.One()
	var i int // loop iterator
	for i = 0; i < n; i++ {
		a.data[i*n+i] = one
	}

	return a, nil
}

// IdentityLike returns the identity matrix with a's (square) size.
// Complexity: O(n^2).
func IdentityLike[T any](a *Array[T], ops numeric.Field[T]) (*Array[T], error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, tensorErrorf(opIdentityLike, err)
	}

	return Identity(a.shape[0], ops)
}

// DetOf evaluates the determinant straight from row slices: it builds the
// matrix with FromRows and delegates to Det.
func DetOf[T any](rows [][]T, ops numeric.Field[T], opts ...Option) (T, error) {
	var zero T
	a, err := FromRows(rows)
	if err != nil {
		return zero, tensorErrorf(opDetOf, err)
	}

	return Det(a, ops, opts...)
}

// ProductOf multiplies two matrices given as row slices: both are built
// with FromRows, then multiplied with MatMul.
func ProductOf[T any](a, b [][]T, ops numeric.Arith[T]) (*Array[T], error) {
	left, err := FromRows(a)
	if err != nil {
		return nil, tensorErrorf(opProductOf, err)
	}
	right, err := FromRows(b)
	if err != nil {
		return nil, tensorErrorf(opProductOf, err)
	}

	return MatMul(left, right, ops)
}
