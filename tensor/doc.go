// Package tensor offers rank-generic dense arrays and the linear algebra
// built on them: LU factorization, determinants, products and transposes
// over any element type with a numeric table.
//
// The tensor package provides:
//
//   - Array[T], a row-major container whose rank is carried by its shape:
//     scalars (rank 0), vectors, matrices and higher-rank data share one
//     representation and one classification (Kind).
//   - Ingestion helpers (FromRows, FromSlice, FromNested) that convert raw
//     nested data into the abstraction, rejecting ragged input.
//   - Partial-pivot LU returning an explicit row permutation, with an
//     opt-out for callers who need fixed Doolittle order.
//   - Det, which dispatches on rank, uses closed forms for 1×1 and 2×2,
//     and recovers the sign of larger determinants from the permutation's
//     cycle parity.
//
// Kernels never mutate their inputs; elimination always runs on a private
// working copy. All failures are package sentinels (errors.go) matched via
// errors.Is, with the offending size attached to the message.
package tensor
