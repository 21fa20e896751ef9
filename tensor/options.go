// SPDX-License-Identifier: MIT

// options.go defines the functional options accepted by the factorization
// kernels. Defaults are safe for general use; options exist for callers
// who know their input (e.g. diagonally dominant systems) or who need the
// textbook unpivoted factorization.

package tensor

// PivotMode selects the row-exchange strategy used by LU.
type PivotMode int

const (
	// PivotPartial swaps the largest-magnitude candidate pivot into place
	// at every elimination step. Robust default for floating point.
	PivotPartial PivotMode = iota

	// PivotNone eliminates in natural row order. A zero pivot aborts the
	// factorization with ErrZeroPivot.
	PivotNone
)

const (
	// DefaultPivotMode is applied when no option overrides it.
	DefaultPivotMode = PivotPartial

	// panicPivotInvalid reports an unknown PivotMode. Passing one is a
	// programmer error, hence panic rather than error return.
	panicPivotInvalid = "tensor: invalid PivotMode"
)

// Options aggregates the tunable parameters of the kernels.
type Options struct {
	pivot PivotMode
}

// Pivot reports the configured row-exchange strategy.
func (o Options) Pivot() PivotMode { return o.pivot }

// Option mutates Options in the functional-options style.
type Option func(*Options)

// NewOptions returns Options seeded with defaults, then applies the given
// overrides in order.
func NewOptions(opts ...Option) Options {
	o := Options{pivot: DefaultPivotMode}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// gatherOptions is the kernels' internal entry point for option collection.
func gatherOptions(opts ...Option) Options {
	return NewOptions(opts...)
}

// WithPivotMode selects the row-exchange strategy.
// Panics with panicPivotInvalid when m is not a declared PivotMode.
func WithPivotMode(m PivotMode) Option {
	if m != PivotPartial && m != PivotNone {
		panic(panicPivotInvalid)
	}

	return func(o *Options) { o.pivot = m }
}

// WithoutPivoting requests the textbook Doolittle factorization with no row
// exchanges. Shorthand for WithPivotMode(PivotNone).
func WithoutPivoting() Option {
	return WithPivotMode(PivotNone)
}
