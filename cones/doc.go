// Package cones defines the closed catalog of convex-set descriptors used
// by the proj package.
//
// 🚀 What is a Set?
//
//	A Set is an immutable value describing one convex cone (or box-type
//	scalar set) together with its ambient dimension:
//	  • Zeros, Reals, Nonnegatives, Nonpositives — vector sets of size N
//	  • LessThan, GreaterThan, EqualTo           — scalar sets (Dim = 1)
//	  • SecondOrderCone                          — {(t,x) : ‖x‖ ≤ t}
//	  • PSDTriangle                              — triangle-packed S₊ⁿ
//	  • Exponential, DualExponential             — the 3-dim exp cone pair
//
// ✨ Design notes:
//
//   - The catalog is sealed: Set has an unexported method, so every switch
//     over cone kinds in proj is exhaustive by construction and adding a
//     new cone is a compile-time-checked, localized change.
//   - Descriptors carry no behavior beyond Dim and String; the operators
//     live in proj, keeping this package dependency-free.
//   - Scalar sets operate on 1-element slices; a product composer consumes
//     exactly one entry per scalar slice.
//
// Dimension fields must be non-negative; the proj operators reject
// descriptors that cannot match any value vector.
package cones
