// SPDX-License-Identifier: MIT

package numeric

import "math/cmplx"

// Complex is the Field table for complex128 elements.
// Magnitude comparison uses the complex modulus; the zero test is exact.
// Every method is O(1) and allocation-free.
type Complex struct{}

// Add returns a + b.
func (Complex) Add(a, b complex128) complex128 { return a + b }

// Sub returns a - b.
func (Complex) Sub(a, b complex128) complex128 { return a - b }

// Mul returns a * b.
func (Complex) Mul(a, b complex128) complex128 { return a * b }

// Neg returns -a.
func (Complex) Neg(a complex128) complex128 { return -a }

// Div returns a / b. Callers guard b with IsZero first.
func (Complex) Div(a, b complex128) complex128 { return a / b }

// Zero returns 0.
func (Complex) Zero() complex128 { return 0 }

// One returns 1.
func (Complex) One() complex128 { return 1 }

// IsZero reports a == 0 (both components exactly zero).
func (Complex) IsZero(a complex128) bool { return a == 0 }

// CmpAbs compares moduli |a| and |b|: -1, 0 or +1.
func (Complex) CmpAbs(a, b complex128) int {
	aa, ab := cmplx.Abs(a), cmplx.Abs(b)
	switch {
	case aa < ab:
		return -1
	case aa > ab:
		return +1
	}

	return 0
}
