package bisect

import (
	"errors"
	"math"
)

var (
	// ErrNilFunction indicates a nil function argument.
	ErrNilFunction = errors.New("bisect: function must be non-nil")

	// ErrInvalidBracket indicates an unusable bracket: lo >= hi, a NaN
	// endpoint, or both endpoints infinite (nothing finite to expand from).
	ErrInvalidBracket = errors.New("bisect: invalid bracket")

	// ErrNoSignChange indicates that no sign change of f was found inside
	// the bracket, after expansion when a side is unbounded. The search is
	// not retried: a missing sign change means the caller's precondition
	// (a root inside the domain) does not hold.
	ErrNoSignChange = errors.New("bisect: no sign change inside the bracket")

	// ErrMaxIterations indicates the bisection loop hit its iteration cap
	// before reaching the requested tolerance.
	ErrMaxIterations = errors.New("bisect: iteration budget exceeded")
)

// Default solver parameters. Bisection halves the interval each step, so
// DefaultMaxIter is far above what float64 resolution can ever need; it is
// a hard safety cap, not a tuning knob.
const (
	DefaultTol       = 1e-10
	DefaultMaxIter   = 300
	DefaultMaxExpand = 10
)

// Options configures FindRoot.
//
// Fields:
//   - Tol       — absolute width |hi-lo| at which the bracket is accepted.
//   - MaxIter   — hard cap on bisection steps (the solver never spins).
//   - MaxExpand — cap on geometric bracket expansions per unbounded side.
type Options struct {
	Tol       float64
	MaxIter   int
	MaxExpand int
}

// DefaultOptions returns the default solver configuration.
func DefaultOptions() Options {
	return Options{Tol: DefaultTol, MaxIter: DefaultMaxIter, MaxExpand: DefaultMaxExpand}
}

// FindRoot locates a root of f inside [lo, hi] by bisection.
//
// Either endpoint may be infinite: the unbounded side is expanded
// geometrically away from the finite endpoint — doubling the step each
// time, at most opts.MaxExpand times — until f changes sign. A nil opts
// uses DefaultOptions.
//
// Returns the midpoint of the final bracket. Exact zeros of f encountered
// at an endpoint or midpoint are returned immediately.
//
// Errors: ErrNilFunction, ErrInvalidBracket, ErrNoSignChange,
// ErrMaxIterations. All are fatal for the call; nothing is retried beyond
// the documented expansion schedule.
func FindRoot(f func(float64) float64, lo, hi float64, opts *Options) (float64, error) {
	if f == nil {
		return 0, ErrNilFunction
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || lo >= hi {
		return 0, ErrInvalidBracket
	}

	loInf, hiInf := math.IsInf(lo, -1), math.IsInf(hi, 1)
	if loInf && hiInf {
		return 0, ErrInvalidBracket
	}

	// Expand the unbounded side (if any) until f changes sign.
	var flo, fhi float64
	switch {
	case hiInf:
		flo = f(lo)
		if flo == 0 {
			return lo, nil
		}
		step := expandStep(lo)
		hi = lo + step
		fhi = f(hi)
		for n := 0; flo*fhi > 0; n++ {
			if n >= o.MaxExpand {
				return 0, ErrNoSignChange
			}
			step *= 2
			hi = lo + step
			fhi = f(hi)
		}
	case loInf:
		fhi = f(hi)
		if fhi == 0 {
			return hi, nil
		}
		step := expandStep(hi)
		lo = hi - step
		flo = f(lo)
		for n := 0; flo*fhi > 0; n++ {
			if n >= o.MaxExpand {
				return 0, ErrNoSignChange
			}
			step *= 2
			lo = hi - step
			flo = f(lo)
		}
	default:
		flo, fhi = f(lo), f(hi)
		if flo == 0 {
			return lo, nil
		}
		if fhi == 0 {
			return hi, nil
		}
		if flo*fhi > 0 {
			return 0, ErrNoSignChange
		}
	}

	// Standard bisection on a sign-changing bracket.
	for iter := 0; iter < o.MaxIter; iter++ {
		mid := lo + (hi-lo)/2
		if hi-lo <= o.Tol || mid == lo || mid == hi {
			return mid, nil
		}
		fmid := f(mid)
		switch {
		case fmid == 0:
			return mid, nil
		case flo*fmid < 0:
			hi, fhi = mid, fmid
		default:
			lo, flo = mid, fmid
		}
	}

	return 0, ErrMaxIterations
}

// expandStep picks the initial expansion step away from the finite bound:
// proportional to its magnitude, never below 1.
func expandStep(bound float64) float64 {
	return math.Max(1, math.Abs(bound))
}
