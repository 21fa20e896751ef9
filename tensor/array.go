// SPDX-License-Identifier: MIT

// Array is a concrete, row-major container for rank-generic numeric data,
// storing elements in a flat slice for performance and cache friendliness.
// Rank is carried by the shape: [] is a scalar, [n] a vector, [r, c] a
// matrix, and longer shapes are higher-rank blocks.

package tensor

import "fmt"

// arrayErrorf wraps an underlying error with Array method context.
func arrayErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Array.%s(%d,%d): %w", method, row, col, err)
}

// Array is a row-major array of T values. shape holds one length per
// dimension and data holds shapeLen(shape) elements.
//
// The zero value of Array carries no backing data and is not usable;
// obtain arrays from the constructors (New, Scalar, FromSlice, FromRows,
// FromNested). Kernels reject it with ErrEmptyArray.
//
// Element values are treated as immutable: kernels and accessors replace
// cells, never mutate the values inside them. That is what makes the
// flat-slice copy in Clone a safe deep copy even for pointer-based element
// types such as *big.Rat (the numeric tables uphold the same contract).
type Array[T any] struct {
	shape []int // one extent per dimension; every extent > 0
	data  []T   // flat backing storage, length == shapeLen(shape)
}

// New creates an Array of the given shape with zero-valued cells.
// New() with no dimensions creates a rank-0 scalar holder.
// Stage 1 (Validate): every dimension must be > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Array or ErrInvalidShape.
// Complexity: O(len(data)) time and memory.
//
// Cells start at the Go zero value of T; use Fill or Identity for
// table-aware initialization (relevant for pointer element types).
func New[T any](shape ...int) (*Array[T], error) {
	// Validate dimensions
	for _, d := range shape {
		if d <= 0 {
			return nil, shapeErrorf(ErrInvalidShape, shape)
		}
	}
	// Copy the shape so the caller's slice stays independent
	owned := append([]int(nil), shape...)

	// Return initialized Array
	return &Array[T]{shape: owned, data: make([]T, shapeLen(owned))}, nil
}

// Scalar wraps a single element into a rank-0 Array.
// Complexity: O(1).
func Scalar[T any](v T) *Array[T] {
	return &Array[T]{shape: []int{}, data: []T{v}}
}

// FromSlice builds a rank-1 Array from vals (copied).
// Stage 1 (Validate): vals must be non-empty.
// Stage 2 (Execute): copy into fresh backing storage.
// Complexity: O(len(vals)).
func FromSlice[T any](vals []T) (*Array[T], error) {
	if len(vals) == 0 {
		return nil, shapeErrorf(ErrInvalidShape, []int{0})
	}

	return &Array[T]{shape: []int{len(vals)}, data: append([]T(nil), vals...)}, nil
}

// FromRows builds a rank-2 Array from row slices (copied).
// Stage 1 (Validate): at least one row, all rows non-empty and equal length.
// Stage 2 (Execute): copy rows into flat row-major storage.
// Complexity: O(r*c).
// Errors: ErrInvalidShape on empty input, ErrRagged on unequal rows.
func FromRows[T any](rows [][]T) (*Array[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, shapeErrorf(ErrInvalidShape, []int{len(rows), 0})
	}
	r, c := len(rows), len(rows[0])
	a := &Array[T]{shape: []int{r, c}, data: make([]T, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, shapeErrorf(ErrRagged, []int{r, c})
		}
		copy(a.data[i*c:(i+1)*c], row)
	}

	return a, nil
}

// Rank returns the number of dimensions (0 for scalars).
// Complexity: O(1).
func (a *Array[T]) Rank() int {
	return len(a.shape) // rank is carried by the shape itself
}

// Shape returns a copy of the dimension extents.
// Complexity: O(rank).
func (a *Array[T]) Shape() []int {
	return append([]int(nil), a.shape...) // copy keeps internals immutable
}

// Len returns the total number of stored elements (1 for scalars).
// Complexity: O(1).
func (a *Array[T]) Len() int {
	return len(a.data)
}

// Kind returns the explicit rank classification of the array.
// Complexity: O(1).
func (a *Array[T]) Kind() Kind {
	switch len(a.shape) {
	case 0:
		return KindScalar
	case 1:
		return KindVector
	case 2:
		return KindMatrix
	}

	return KindHigher
}

// Dims returns (rows, cols) for a rank-2 array.
// Stage 1 (Validate): rank must be exactly 2.
// Complexity: O(1).
// Errors: ErrNotTwoDimensional (with the observed size) otherwise.
func (a *Array[T]) Dims() (rows, cols int, err error) {
	if len(a.shape) != 2 {
		return 0, 0, fmt.Errorf("Array.Dims: %w", shapeErrorf(ErrNotTwoDimensional, a.shape))
	}

	return a.shape[0], a.shape[1], nil
}

// index2 computes the flat index for (row, col) on a rank-2 array.
// Stage 1 (Validate): rank must be 2; then 0 <= row < r and 0 <= col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (a *Array[T]) index2(method string, row, col int) (int, error) {
	// Validate rank
	if len(a.shape) != 2 {
		return 0, arrayErrorf(method, row, col, shapeErrorf(ErrNotTwoDimensional, a.shape))
	}
	// Validate row index
	if row < 0 || row >= a.shape[0] {
		return 0, arrayErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= a.shape[1] {
		return 0, arrayErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*a.shape[1] + col, nil
}

// At retrieves the element at (row, col) of a rank-2 array.
// Stage 1 (Validate): rank and bounds check via index2.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (a *Array[T]) At(row, col int) (T, error) {
	idx, err := a.index2("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	// Return stored value
	return a.data[idx], nil
}

// Set assigns value v at (row, col) of a rank-2 array.
// Stage 1 (Validate): rank and bounds check via index2.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (a *Array[T]) Set(row, col int, v T) error {
	idx, err := a.index2("Set", row, col)
	if err != nil {
		return err
	}
	// Assign value
	a.data[idx] = v

	return nil
}

// Item returns the sole element of a single-element array of any rank
// (scalar, [1] vector, [1, 1] matrix, ...).
// Errors: ErrDimensionMismatch (with the observed size) when Len != 1.
// Complexity: O(1).
func (a *Array[T]) Item() (T, error) {
	if len(a.data) != 1 {
		var zero T
		return zero, fmt.Errorf("Array.Item: %w", shapeErrorf(ErrDimensionMismatch, a.shape))
	}

	return a.data[0], nil
}

// Fill assigns v to every cell. For pointer element types all cells share
// the same value, which is safe under the package immutability contract.
// Complexity: O(len(data)).
func (a *Array[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Clone returns a deep copy of the array: fresh shape, fresh backing slice.
// Element values are shared structurally for pointer types; see the Array
// doc for why that is equivalent to a deep copy here.
// Complexity: O(len(data)) time and memory.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{
		shape: append([]int(nil), a.shape...),
		data:  append([]T(nil), a.data...),
	}
}

// String implements fmt.Stringer for easy debugging.
// Rank 0 renders the bare element, rank 1 a bracketed row, rank 2 one
// bracketed row per line, higher ranks a compact shape summary. The
// uninitialized zero value renders as the empty string.
// Complexity: O(len(data)) for string construction.
func (a *Array[T]) String() string {
	if len(a.data) == 0 {
		return "" // zero value; constructors never leave data empty
	}
	switch len(a.shape) {
	case 0:
		return fmt.Sprintf("%v", a.data[0])
	case 1:
		return a.rowString(0, a.shape[0])
	case 2:
		var s string
		var i int
		for i = 0; i < a.shape[0]; i++ { // iterate over rows
			s += a.rowString(i*a.shape[1], a.shape[1]) + "\n"
		}
		return s
	}

	return fmt.Sprintf("tensor(shape=%s, len=%d)", formatShape(a.shape), len(a.data))
}

// rowString renders count elements starting at flat offset as "[a, b, c]".
func (a *Array[T]) rowString(offset, count int) string {
	s := "["
	for j := 0; j < count; j++ {
		s += fmt.Sprintf("%v", a.data[offset+j])
		if j < count-1 {
			s += ", " // separate values with comma
		}
	}

	return s + "]"
}
