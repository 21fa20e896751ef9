// SPDX-License-Identifier: MIT

// validators.go centralizes the structural checks shared by the numeric
// kernels. Every kernel validates through these helpers so that identical
// misuse yields identical errors, matched with errors.Is by callers.

package tensor

import (
	"fmt"

	"github.com/katalvlaran/lvlmath/numeric"
)

// validatorErrorf wraps err with the failing validator's name for context.
func validatorErrorf(name string, err error) error {
	return fmt.Errorf("%s: %w", name, err)
}

// ValidateNotNil ensures the array is usable: non-nil and backed by at
// least one element. Constructors always allocate data, so an empty
// backing slice identifies the uninitialized zero value of Array.
// Errors: ErrNilArray, ErrEmptyArray.
// Complexity: O(1).
func ValidateNotNil[T any](a *Array[T]) error {
	if a == nil {
		return validatorErrorf("ValidateNotNil", ErrNilArray)
	}
	if len(a.data) == 0 {
		return validatorErrorf("ValidateNotNil", ErrEmptyArray)
	}

	return nil
}

// ValidateOps ensures an arithmetic table was supplied.
// Complexity: O(1).
func ValidateOps[T any](ops numeric.Arith[T]) error {
	if ops == nil {
		return validatorErrorf("ValidateOps", ErrNilOps)
	}

	return nil
}

// ValidateMatrix ensures the array is exactly rank 2.
// Errors: ErrNotTwoDimensional carrying the observed size.
// Complexity: O(1).
func ValidateMatrix[T any](a *Array[T]) error {
	if len(a.shape) != 2 {
		return validatorErrorf("ValidateMatrix", shapeErrorf(ErrNotTwoDimensional, a.shape))
	}

	return nil
}

// ValidateSquare ensures the array is rank 2 with equal extents.
// Errors: ErrNotTwoDimensional for wrong rank, ErrNonSquare for r != c,
// both carrying the observed size.
// Complexity: O(1).
func ValidateSquare[T any](a *Array[T]) error {
	if err := ValidateMatrix(a); err != nil {
		return err
	}
	if a.shape[0] != a.shape[1] {
		return validatorErrorf("ValidateSquare", shapeErrorf(ErrNonSquare, a.shape))
	}

	return nil
}

// ValidateInner ensures a's column count matches b's row count, the
// requirement for forming the product a*b. Non-matrix operands are
// rejected rather than assumed away.
// Complexity: O(1).
func ValidateInner[T any](a, b *Array[T]) error {
	if err := ValidateMatrix(a); err != nil {
		return err
	}
	if err := ValidateMatrix(b); err != nil {
		return err
	}
	if a.shape[1] != b.shape[0] {
		return validatorErrorf("ValidateInner",
			fmt.Errorf("%w (sizes: %s, %s)", ErrDimensionMismatch, formatShape(a.shape), formatShape(b.shape)))
	}

	return nil
}

// ValidateMatrixNonNil combines the nil and rank-2 checks.
// Complexity: O(1).
func ValidateMatrixNonNil[T any](a *Array[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}

	return ValidateMatrix(a)
}

// ValidateSquareNonNil combines the nil and square-matrix checks.
// Complexity: O(1).
func ValidateSquareNonNil[T any](a *Array[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}

	return ValidateSquare(a)
}

// ValidateBinaryProduct runs the full precondition set for a*b: both
// operands non-nil rank-2 arrays with compatible inner dimensions.
// Complexity: O(1).
func ValidateBinaryProduct[T any](a, b *Array[T]) error {
	if err := ValidateMatrixNonNil(a); err != nil {
		return err
	}
	if err := ValidateMatrixNonNil(b); err != nil {
		return err
	}

	return ValidateInner(a, b)
}
