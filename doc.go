// Package lvlmath is your in-memory toolbox for generic linear algebra —
// rank-aware arrays, exact and floating-point element arithmetic, LU
// factorization and determinants over any numeric type you bring.
//
// 🚀 What is lvlmath?
//
//	A small, deterministic library that brings together:
//		• Element tables: float64, complex128 and big.Rat arithmetic behind one capability set
//		• Rank-generic arrays: scalars, vectors, matrices and higher-rank data in one container
//		• Factorization: partial-pivot LU with an explicit row permutation
//		• Determinants: closed forms for 1×1/2×2, LU + permutation parity beyond
//		• Products & friends: MatMul, Transpose, Trace, Identity builders
//
// ✨ Why choose lvlmath?
//
//   - Exact when you need it – plug big.Rat and get rational determinants with no rounding
//   - Rock-solid guarantees – inputs are never mutated; every loop order is fixed
//   - Pure Go – generics instead of reflection in the hot paths, no cgo
//   - Uniform errors – package sentinels matched with errors.Is, sizes in every message
//
// Under the hood, everything is organized under two subpackages:
//
//	numeric/ — Arith and Field capability sets + Real, Complex, Rat tables
//	tensor/  — Array[T] container, LU, Det, MatMul, Transpose, Trace
//
// Quick taste:
//
//	a, _ := tensor.FromRows([][]float64{{-2, 2, 3}, {-1, 1, 3}, {2, 0, -1}})
//	d, _ := tensor.Det(a, numeric.Real{})
//	fmt.Println(d) // 6
//
// Dive into the package docs for the full API, error taxonomy and the
// pivoting policy behind the determinant guarantees.
//
//	go get github.com/katalvlaran/lvlmath
package lvlmath
