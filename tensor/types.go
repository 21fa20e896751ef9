// SPDX-License-Identifier: MIT

// Package tensor: domain types and shape helpers shared across the package.
// This file intentionally contains ONLY the rank classification enum and the
// shape utilities. Errors and options live in dedicated files (errors.go,
// options.go) per the global conventions.

package tensor

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies an Array by the rank of its shape. Classification is
// explicit and total: every array maps to exactly one Kind, and kernels
// dispatch on it instead of probing shapes ad hoc.
type Kind int

const (
	// KindScalar is a rank-0 array holding a single element.
	KindScalar Kind = iota

	// KindVector is a rank-1 array.
	KindVector

	// KindMatrix is a rank-2 array.
	KindMatrix

	// KindHigher is any array of rank 3 or above.
	KindHigher
)

// formatShape renders a shape for error messages: "[2, 3]", "[]" for rank 0.
// Complexity: O(rank).
func formatShape(shape []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, d := range shape {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(d))
	}
	b.WriteByte(']')

	return b.String()
}

// shapeLen returns the number of elements a shape addresses (1 for rank 0).
// Dimensions must already be validated positive.
// Complexity: O(rank).
func shapeLen(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}

	return n
}

// shapeErrorf attaches the observed size to a shape/dimension sentinel.
// errors.Is still matches the sentinel through the wrap.
func shapeErrorf(sentinel error, shape []int) error {
	return fmt.Errorf("%w (size: %s)", sentinel, formatShape(shape))
}
