// SPDX-License-Identifier: MIT

package numeric

import "math/big"

// Rat is the Field table for *big.Rat elements with exact rational
// arithmetic: no rounding anywhere, so determinants over Rat are exact.
//
// big.Rat values are pointers with in-place APIs; Rat deliberately never
// uses them in place. Every operation allocates a fresh result, which keeps
// operands immutable and makes structural sharing between arrays safe.
//
// Operands must be non-nil; a nil *big.Rat is a programmer error upstream.
type Rat struct{}

// Add returns a + b as a fresh value.
func (Rat) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }

// Sub returns a - b as a fresh value.
func (Rat) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }

// Mul returns a * b as a fresh value.
func (Rat) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

// Neg returns -a as a fresh value.
func (Rat) Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) }

// Div returns a / b as a fresh value. Callers guard b with IsZero first.
func (Rat) Div(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(a, b) }

// Zero returns a fresh 0/1.
func (Rat) Zero() *big.Rat { return new(big.Rat) }

// One returns a fresh 1/1.
func (Rat) One() *big.Rat { return big.NewRat(1, 1) }

// IsZero reports whether a is exactly zero.
func (Rat) IsZero(a *big.Rat) bool { return a.Sign() == 0 }

// CmpAbs compares |a| against |b|: -1, 0 or +1.
// Allocates two scratch values; exactness matters more than speed here.
func (Rat) CmpAbs(a, b *big.Rat) int {
	return new(big.Rat).Abs(a).Cmp(new(big.Rat).Abs(b))
}
