// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the tensor
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package tensor

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "tensor: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
// Shape-sensitive sentinels additionally carry the observed size via
// shapeErrorf, which preserves errors.Is matching.

var (
	// ErrInvalidShape is returned when a requested shape is invalid
	// (any dimension <= 0, or empty nested input). Constructors must
	// validate before allocation.
	ErrInvalidShape = errors.New("tensor: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. MatMul where a.Cols != b.Rows, or Item on a multi-element array.
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't: a vector of length != 1, or a rows != cols matrix.
	ErrNonSquare = errors.New("tensor: matrix must be square")

	// ErrNotTwoDimensional signals input of rank 3 or above where a matrix
	// (or lower rank) was required.
	ErrNotTwoDimensional = errors.New("tensor: matrix must be two dimensional")

	// ErrRagged indicates nested input whose inner lengths disagree, so no
	// rectangular shape exists for it.
	ErrRagged = errors.New("tensor: ragged nested data")

	// ErrBadElement indicates a nested value whose leaf type does not match
	// the requested element type (ingestion performs no coercion).
	ErrBadElement = errors.New("tensor: unsupported element value")

	// ErrNilArray indicates that a nil *Array (receiver or argument) was used.
	ErrNilArray = errors.New("tensor: nil array")

	// ErrEmptyArray indicates an Array with no backing data. Constructors
	// never produce one; only the uninitialized zero value looks like this.
	ErrEmptyArray = errors.New("tensor: empty array")

	// ErrNilOps indicates that a nil arithmetic table was passed to a kernel.
	ErrNilOps = errors.New("tensor: nil arithmetic table")

	// ErrZeroPivot is returned when a zero pivot is encountered during LU
	// under WithoutPivoting (intentional for determinism; the default
	// partial-pivot mode skips the column instead and never returns this).
	ErrZeroPivot = errors.New("tensor: zero pivot")
)
