package cones

import "fmt"

// Set describes one convex set from the fixed catalog. It is a sealed
// interface: only the types in this package implement it, so operator
// dispatch over cone kinds is exhaustive.
//
// Dim reports the ambient dimension of the set, i.e. the exact length of
// any value vector the set can be applied to. Scalar sets report 1.
type Set interface {
	// Dim returns the ambient dimension of the set.
	Dim() int

	// String returns a short human-readable tag, e.g. "SecondOrderCone(3)".
	String() string

	// sealed keeps the catalog closed to this package.
	sealed()
}

// Zeros is the zero cone {0}ⁿ: every point projects to the origin.
type Zeros struct {
	N int
}

// Reals is the free cone ℝⁿ: projection is the identity map.
type Reals struct {
	N int
}

// Nonnegatives is the nonnegative orthant {v : vᵢ ≥ 0}.
type Nonnegatives struct {
	N int
}

// Nonpositives is the nonpositive orthant {v : vᵢ ≤ 0}.
type Nonpositives struct {
	N int
}

// LessThan is the scalar half-line (-∞, Upper].
type LessThan struct {
	Upper float64
}

// GreaterThan is the scalar half-line [Lower, +∞).
type GreaterThan struct {
	Lower float64
}

// EqualTo is the scalar singleton {Value}.
type EqualTo struct {
	Value float64
}

// SecondOrderCone is the Lorentz cone {(t,x) ∈ ℝ×ℝⁿ⁻¹ : ‖x‖ ≤ t}.
// N is the ambient dimension including the leading scalar t, so N ≥ 1.
// The norm defaults to Euclidean and is selectable via proj.Options.Norm.
type SecondOrderCone struct {
	N int
}

// PSDTriangle is the cone of symmetric positive-semidefinite matrices of
// order Side, in the compact triangle-packed vector encoding of length
// Side·(Side+1)/2 (see matrix.PackSym for the exact entry order).
type PSDTriangle struct {
	Side int
}

// Exponential is the closure of {(x,y,z) : y·e^{x/y} ≤ z, y > 0},
// i.e. that set united with {(x,0,z) : x ≤ 0, z ≥ 0}.
type Exponential struct{}

// DualExponential is the dual cone of Exponential, the closure of
// {(u,v,w) : -u·e^{v/u} ≤ e·w, u < 0}.
type DualExponential struct{}

// Dim implementations. Scalar sets occupy exactly one coordinate.

func (s Zeros) Dim() int           { return s.N }
func (s Reals) Dim() int           { return s.N }
func (s Nonnegatives) Dim() int    { return s.N }
func (s Nonpositives) Dim() int    { return s.N }
func (LessThan) Dim() int          { return 1 }
func (GreaterThan) Dim() int       { return 1 }
func (EqualTo) Dim() int           { return 1 }
func (s SecondOrderCone) Dim() int { return s.N }
func (s PSDTriangle) Dim() int {
	if s.Side < 0 {
		return -1 // impossible dimension; rejected by operators
	}
	return s.Side * (s.Side + 1) / 2
}
func (Exponential) Dim() int     { return 3 }
func (DualExponential) Dim() int { return 3 }

// String implementations give each descriptor a stable, greppable tag.

func (s Zeros) String() string           { return fmt.Sprintf("Zeros(%d)", s.N) }
func (s Reals) String() string           { return fmt.Sprintf("Reals(%d)", s.N) }
func (s Nonnegatives) String() string    { return fmt.Sprintf("Nonnegatives(%d)", s.N) }
func (s Nonpositives) String() string    { return fmt.Sprintf("Nonpositives(%d)", s.N) }
func (s LessThan) String() string        { return fmt.Sprintf("LessThan(%g)", s.Upper) }
func (s GreaterThan) String() string     { return fmt.Sprintf("GreaterThan(%g)", s.Lower) }
func (s EqualTo) String() string         { return fmt.Sprintf("EqualTo(%g)", s.Value) }
func (s SecondOrderCone) String() string { return fmt.Sprintf("SecondOrderCone(%d)", s.N) }
func (s PSDTriangle) String() string     { return fmt.Sprintf("PSDTriangle(%d)", s.Side) }
func (Exponential) String() string       { return "Exponential" }
func (DualExponential) String() string   { return "DualExponential" }

func (Zeros) sealed()           {}
func (Reals) sealed()           {}
func (Nonnegatives) sealed()    {}
func (Nonpositives) sealed()    {}
func (LessThan) sealed()        {}
func (GreaterThan) sealed()     {}
func (EqualTo) sealed()         {}
func (SecondOrderCone) sealed() {}
func (PSDTriangle) sealed()     {}
func (Exponential) sealed()     {}
func (DualExponential) sealed() {}
