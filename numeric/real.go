// SPDX-License-Identifier: MIT

package numeric

import "math"

// Real is the Field table for float64 elements.
//
// The zero value compares exactly: IsZero(x) holds only for x == 0.
// Setting Eps widens the zero test to |x| <= Eps, which lets elimination
// kernels treat numerically tiny pivots as singular instead of dividing
// by them. Eps never affects Add/Sub/Mul/Neg/Div.
//
// Complexity: every method is O(1) and allocation-free.
type Real struct {
	// Eps is the non-negative half-width of the zero band used by IsZero.
	// Leave at 0 for exact comparison.
	Eps float64
}

// Add returns a + b.
func (Real) Add(a, b float64) float64 { return a + b }

// Sub returns a - b.
func (Real) Sub(a, b float64) float64 { return a - b }

// Mul returns a * b.
func (Real) Mul(a, b float64) float64 { return a * b }

// Neg returns -a.
func (Real) Neg(a float64) float64 { return -a }

// Div returns a / b. Callers guard b with IsZero first.
func (Real) Div(a, b float64) float64 { return a / b }

// Zero returns 0.
func (Real) Zero() float64 { return 0 }

// One returns 1.
func (Real) One() float64 { return 1 }

// IsZero reports |a| <= Eps (exact zero when Eps is 0).
func (r Real) IsZero(a float64) bool { return math.Abs(a) <= r.Eps }

// CmpAbs compares |a| against |b|: -1, 0 or +1.
// NaN magnitudes compare as incomparable and yield 0, which keeps pivot
// selection deterministic instead of poisoning the scan.
func (Real) CmpAbs(a, b float64) int {
	aa, ab := math.Abs(a), math.Abs(b)
	switch {
	case aa < ab:
		return -1
	case aa > ab:
		return +1
	}

	return 0
}
