// SPDX-License-Identifier: MIT

package tensor

// Test-Bridge (White-Box) for Private Kernels and Options Snapshot
//
// Purpose:
//   - Expose unexported helpers (permSign, swapRows, shape utilities) to
//     tensor_test ONLY, enabling white-box verification without widening
//     the production API.
//
// Build Policy:
//   - Lives in package tensor so it can reach private symbols; external
//     test packages import them through these bridges. It declares no
//     production symbols of its own.
//
// Provided Surface:
//   - *_TestOnly wrappers: thin pass-throughs to private helpers.
//   - OptionsSnapshot + GatherOptionsSnapshot_TestOnly: a stable read-only
//     view of internal Options for tests.
//
// Behavior & Determinism:
//   - No allocations beyond what the wrapped functions do.
//   - Deterministic wrappers; no side effects.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields. If
//     Options changes, update snapshotOf accordingly (tests catch drift).

import "github.com/katalvlaran/lvlmath/numeric"

var (
	// ExportedPermSign exposes the cycle-parity computation for white-box tests.
	ExportedPermSign = permSign
	// ExportedFormatShape exposes the shape renderer used in error messages.
	ExportedFormatShape = formatShape
	// ExportedShapeLen exposes the flat-length computation.
	ExportedShapeLen = shapeLen
)

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicPivotInvalid_TestOnly = panicPivotInvalid
)

// SwapRows_TestOnly forwards to the private in-place row exchange.
func SwapRows_TestOnly[T any](a *Array[T], r1, r2 int) {
	swapRows(a, r1, r2)
}

// FreshValue_TestOnly forwards to the private value-freshening helper.
func FreshValue_TestOnly[T any](v T, ops numeric.Field[T]) T {
	return freshValue(v, ops)
}

// --- options snapshot bridge --------------------------------------------------

// OptionsSnapshot is a stable, test-facing copy of internal Options fields.
type OptionsSnapshot struct {
	Pivot PivotMode
}

// GatherOptionsSnapshot_TestOnly returns a snapshot after internal derivation.
// Implementation:
//   - Stage 1: o := gatherOptions(opts...) // internal constructor
//   - Stage 2: snapshotOf(o)
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return snapshotOf(o)
}

// snapshotOf copies internal fields to a public struct. Keep in sync with Options layout.
func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{Pivot: o.pivot}
}
