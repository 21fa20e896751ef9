// SPDX-License-Identifier: MIT
// Package numeric: capability interfaces for generic element arithmetic.
// This file defines ONLY the contracts; concrete tables live in dedicated
// files (real.go, complex.go, rat.go). Kernels accept these interfaces and
// resolve them at compile time via generics, so there is no per-element
// dispatch cost inside hot loops.

package numeric

// Arith is the minimal arithmetic capability set over an element type T.
// It is everything a determinant-style accumulation needs: closed-form
// 2×2 products, diagonal products, and the final parity negation.
//
// Contract:
//   - Every method returns a fresh value; operands are never mutated.
//   - All methods are pure and reentrant; a single table value may be
//     shared by any number of goroutines.
type Arith[T any] interface {
	// Add returns a + b.
	Add(a, b T) T

	// Sub returns a - b.
	Sub(a, b T) T

	// Mul returns a * b.
	Mul(a, b T) T

	// Neg returns -a.
	Neg(a T) T
}

// Field extends Arith with the capabilities elimination-style kernels need:
// division by a pivot, the ring identities, a zero test for singularity
// detection and a magnitude comparison for pivot selection.
//
// Contract additions:
//   - Div(a, b) is only called with !IsZero(b); callers enforce this.
//   - CmpAbs follows the big.Int convention: -1 if |a| < |b|, 0 if equal,
//     +1 if |a| > |b|.
//   - Zero and One return fresh identity values on every call.
type Field[T any] interface {
	Arith[T]

	// Div returns a / b. Behavior is undefined for IsZero(b) operands;
	// kernels must guard with IsZero before dividing.
	Div(a, b T) T

	// Zero returns the additive identity.
	Zero() T

	// One returns the multiplicative identity.
	One() T

	// IsZero reports whether a is (within the table's policy) zero.
	IsZero(a T) bool

	// CmpAbs compares magnitudes: -1 if |a| < |b|, 0 if |a| == |b|, +1 if |a| > |b|.
	CmpAbs(a, b T) int
}
