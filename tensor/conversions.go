// SPDX-License-Identifier: MIT

// Nested-slice ingestion: building Arrays from native Go values such as
// [][]float64 or []any trees. Reflection is confined to this boundary;
// numeric kernels stay fully generic and reflection-free.

package tensor

import "reflect"

// FromNested builds an Array from an arbitrarily nested Go value.
//
// Implementation:
//   - Stage 1 (Shape): walk the leading spine of the nesting; every slice
//     level contributes one dimension, the first non-slice value fixes the
//     leaf. Interface boxes (from []any trees) are unwrapped transparently.
//   - Stage 2 (Validate): every dimension must be non-empty.
//   - Stage 3 (Copy): descend the whole tree in row-major order, checking
//     each branch against the spine shape and each leaf against T.
//
// Inputs:
//   - v: a bare T (rank 0), []T, [][]T, deeper nestings, or the equivalent
//     []any trees.
//
// Returns:
//   - *Array[T] holding a fresh copy of the data.
//
// Errors:
//   - ErrBadElement: a leaf is not exactly of type T (no numeric coercion),
//     or v is nil.
//   - ErrRagged: a branch disagrees with the spine shape.
//   - ErrInvalidShape: an empty slice level.
//
// Determinism: output layout is fully determined by the input nesting.
// Complexity: O(number of leaves) time and memory.
func FromNested[T any](v any) (*Array[T], error) {
	leaf := reflect.TypeOf((*T)(nil)).Elem()

	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, tensorErrorf(opFromNested, ErrBadElement)
	}

	// Stage 1: derive the shape from the leading spine.
	shape := []int{}
	walk := rv
	for {
		for walk.Kind() == reflect.Interface && !walk.IsNil() {
			walk = walk.Elem() // unwrap []any boxes
		}
		if walk.Kind() != reflect.Slice || walk.Type() == leaf {
			break
		}
		if walk.Len() == 0 {
			return nil, tensorErrorf(opFromNested, shapeErrorf(ErrInvalidShape, append(shape, 0)))
		}
		shape = append(shape, walk.Len())
		walk = walk.Index(0)
	}

	// Stage 2/3: allocate and copy with full shape checking.
	out, err := New[T](shape...)
	if err != nil {
		return nil, tensorErrorf(opFromNested, err)
	}
	var next int
	if err = copyNested(rv, leaf, shape, 0, out.data, &next); err != nil {
		return nil, err
	}

	return out, nil
}

// copyNested descends one branch of the input tree, writing leaves into dst
// in row-major order. next tracks the flat write position across calls.
func copyNested[T any](v reflect.Value, leaf reflect.Type, shape []int, depth int, dst []T, next *int) error {
	for v.Kind() == reflect.Interface {
		if v.IsNil() {
			return tensorErrorf(opFromNested, ErrBadElement)
		}
		v = v.Elem()
	}

	// Leaf position: the value must be exactly T.
	if depth == len(shape) {
		if !v.IsValid() || v.Type() != leaf {
			return tensorErrorf(opFromNested, ErrBadElement)
		}
		dst[*next] = v.Interface().(T)
		*next++

		return nil
	}

	// Interior position: must be a slice matching the spine extent.
	if v.Kind() != reflect.Slice || v.Len() != shape[depth] {
		return tensorErrorf(opFromNested, shapeErrorf(ErrRagged, shape))
	}
	var i int // loop iterator
	for i = 0; i < v.Len(); i++ {
		if err := copyNested(v.Index(i), leaf, shape, depth+1, dst, next); err != nil {
			return err
		}
	}

	return nil
}
