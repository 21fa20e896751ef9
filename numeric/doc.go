// Package numeric defines the element arithmetic that tensor kernels consume.
//
// The numeric package provides:
//
//   - Arith[T] — the minimal capability set {Add, Sub, Mul, Neg} that
//     accumulation-style kernels (determinants, products, traces) need.
//   - Field[T] — Arith plus division, the additive/multiplicative identities
//     and magnitude comparison, which elimination-style kernels (LU) need.
//   - Ready-made tables: Real (float64), Complex (complex128) and Rat
//     (*big.Rat, exact).
//
// Tables are small value types; their zero values are ready to use. All
// operations return fresh values and never mutate their operands, so element
// values may be shared structurally between arrays (this is what makes a
// flat-slice copy a safe clone even for pointer-based elements).
//
// Resolution happens at compile time through Go generics — there is no
// reflection and no runtime type switching inside kernel loops.
package numeric
