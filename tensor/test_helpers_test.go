// SPDX-License-Identifier: MIT
// Package tensor_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and assertions for the array
//     container and the numeric kernels.
//   • Keep all data finite and well-formed so tolerance policy never
//     interferes with structural checks.

package tensor_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlmath/numeric"
	"github.com/katalvlaran/lvlmath/tensor"
)

// realOps is the shared float64 table; the zero value compares exactly.
var realOps = numeric.Real{}

// MustArray ALLOCATES an r×c float64 array or fails the test.
// Implementation:
//   - Stage 1: Call tensor.New[float64](r, c).
//   - Stage 2: t.Fatalf on error to abort the test early.
//
// Behavior highlights:
//   - Concise boilerplate reduction in tests.
//
// Inputs:
//   - r,c: array shape.
//
// Returns:
//   - *tensor.Array[float64] with zeroed cells.
//
// Errors:
//   - Fatal test failure if allocation fails.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func MustArray(t *testing.T, r, c int) *tensor.Array[float64] {
	t.Helper()
	a, err := tensor.New[float64](r, c)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", r, c, err)
	}

	return a
}

// MustFromRows BUILDS a float64 matrix from row slices or fails the test.
// Implementation:
//   - Stage 1: Call tensor.FromRows.
//   - Stage 2: t.Fatalf on error.
//
// Behavior highlights:
//   - Deterministic fixture creation with explicit values.
//
// Inputs:
//   - rows: rectangular [][]float64.
//
// Returns:
//   - *tensor.Array[float64] with copied values.
//
// Errors:
//   - Fatal test failure on ragged or empty input.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func MustFromRows(t *testing.T, rows [][]float64) *tensor.Array[float64] {
	t.Helper()
	a, err := tensor.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return a
}

// IdentityArray RETURNS the n×n float64 identity or fails the test.
// Implementation:
//   - Stage 1: tensor.Identity(n, realOps).
//   - Stage 2: t.Fatalf on error.
//
// Behavior highlights:
//   - Compact identity builder; baseline for perturbation tests.
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
func IdentityArray(t *testing.T, n int) *tensor.Array[float64] {
	t.Helper()
	a, err := tensor.Identity(n, realOps)
	if err != nil {
		t.Fatalf("Identity(%d): %v", n, err)
	}

	return a
}

// RandFilled RETURNS a new r×c array filled with deterministic U(-1,1).
// Implementation:
//   - Stage 1: Allocate via MustArray.
//   - Stage 2: Fill via seeded RNG, row-major.
//
// Behavior highlights:
//   - Reproducible randomness for property tests; identical seeds give
//     identical fixtures across runs.
//
// Inputs:
//   - r,c: shape; seed: RNG seed.
//
// Returns:
//   - *tensor.Array[float64] populated with random values.
//
// Errors:
//   - Fatal test failure if allocation or Set fails.
//
// Determinism:
//   - Deterministic per seed.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func RandFilled(t *testing.T, r, c int, seed int64) *tensor.Array[float64] {
	t.Helper()
	a := MustArray(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	var i, j int // loop iterators
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, a, i, j, rng.Float64()*2-1) // [-1,1]
		}
	}

	return a
}

// MustSet WRITES v to a[i,j] or fails the test.
func MustSet(t *testing.T, a *tensor.Array[float64], i, j int, v float64) {
	t.Helper()
	if err := a.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt READS a[i,j] or fails the test.
func MustAt(t *testing.T, a *tensor.Array[float64], i, j int) float64 {
	t.Helper()
	v, err := a.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustDet EVALUATES the determinant or fails the test.
// Implementation:
//   - Stage 1: Call tensor.Det with the supplied table and options.
//   - Stage 2: t.Fatalf on error, return the value otherwise.
//
// Behavior highlights:
//   - Works for any element type; failure text names the shape.
func MustDet[T any](t *testing.T, a *tensor.Array[T], ops numeric.Field[T], opts ...tensor.Option) T {
	t.Helper()
	v, err := tensor.Det(a, ops, opts...)
	if err != nil {
		t.Fatalf("Det(shape=%v): %v", a.Shape(), err)
	}

	return v
}

// CompareExact ASSERTS strict equality between an array and a 2D literal.
// Implementation:
//   - Stage 1: Shape checks.
//   - Stage 2: Iterate and compare with == (no tolerances).
//
// Behavior highlights:
//   - Fails with the exact mismatch location.
//
// Notes:
//   - Use only for integer-like or carefully crafted small matrices.
func CompareExact(t *testing.T, want [][]float64, a *tensor.Array[float64]) {
	t.Helper()
	r, c, err := a.Dims()
	if err != nil {
		t.Fatalf("Dims: %v", err)
	}
	if len(want) != r {
		t.Fatalf("CompareExact: rows = %d; want %d", r, len(want))
	}
	var i, j int // loop iterators
	var v float64
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareExact: cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v = MustAt(t, a, i, j); v != want[i][j] {
				t.Fatalf("a[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// CompareClose ASSERTS |a[i,j]-b[i,j]| ≤ atol + rtol*|b[i,j]| element-wise.
// Implementation:
//   - Stage 1: Shape checks.
//   - Stage 2: Iterate with the tolerance formula.
//
// Notes:
//   - Use (0,0) for pure equality when numbers are exact.
func CompareClose(t *testing.T, a, b *tensor.Array[float64], rtol, atol float64) {
	t.Helper()
	ar, ac, err := a.Dims()
	if err != nil {
		t.Fatalf("Dims(a): %v", err)
	}
	br, bc, err := b.Dims()
	if err != nil {
		t.Fatalf("Dims(b): %v", err)
	}
	if ar != br || ac != bc {
		t.Fatalf("shape mismatch: (%d,%d) vs (%d,%d)", ar, ac, br, bc)
	}
	var i, j int // loop iterators
	var av, bv, diff, absb float64
	for i = 0; i < ar; i++ {
		for j = 0; j < ac; j++ {
			av, bv = MustAt(t, a, i, j), MustAt(t, b, i, j)
			diff = math.Abs(av - bv)
			absb = math.Abs(bv)
			if diff > atol+rtol*absb {
				t.Fatalf("cell (%d,%d): got=%g want=%g (rtol=%g atol=%g)", i, j, av, bv, rtol, atol)
			}
		}
	}
}

// AssertErrorIs WRAPS errors.Is with consistent failure text.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// ---------- bench helpers ----------

func randArray(b *testing.B, n int, seed int64) *tensor.Array[float64] {
	a, err := tensor.New[float64](n, n)
	if err != nil {
		b.Fatalf("New(%d,%d): %v", n, n, err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = a.Set(i, j, rng.Float64()*2-1) // [-1,1]
		}
	}
	return a
}
