package cones_test

import (
	"testing"

	"github.com/katalvlaran/coneproj/cones"
	"github.com/stretchr/testify/assert"
)

// TestDim pins the ambient dimension of every descriptor, including the
// packed PSD length and the fixed three-dimensional exponential cones.
func TestDim(t *testing.T) {
	cases := []struct {
		set  cones.Set
		want int
	}{
		{cones.Zeros{N: 4}, 4},
		{cones.Reals{N: 0}, 0},
		{cones.Nonnegatives{N: 7}, 7},
		{cones.Nonpositives{N: 1}, 1},
		{cones.LessThan{Upper: 2}, 1},
		{cones.GreaterThan{Lower: -3}, 1},
		{cones.EqualTo{Value: 0}, 1},
		{cones.SecondOrderCone{N: 5}, 5},
		{cones.PSDTriangle{Side: 3}, 6},
		{cones.PSDTriangle{Side: 0}, 0},
		{cones.PSDTriangle{Side: -1}, -1},
		{cones.Exponential{}, 3},
		{cones.DualExponential{}, 3},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.set.Dim(), "%v", tc.set)
	}
}

// TestString pins the descriptor tags used in wrapped error messages.
func TestString(t *testing.T) {
	assert.Equal(t, "Zeros(2)", cones.Zeros{N: 2}.String())
	assert.Equal(t, "LessThan(2.5)", cones.LessThan{Upper: 2.5}.String())
	assert.Equal(t, "SecondOrderCone(4)", cones.SecondOrderCone{N: 4}.String())
	assert.Equal(t, "PSDTriangle(3)", cones.PSDTriangle{Side: 3}.String())
	assert.Equal(t, "Exponential", cones.Exponential{}.String())
	assert.Equal(t, "DualExponential", cones.DualExponential{}.String())
}
