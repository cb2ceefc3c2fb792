package cubeless

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"empty", nil, []string{}},
		{"single", []string{"R"}, []string{"R"}},
		{"three quarters", []string{"R", "R", "R"}, []string{"R'"}},
		{"cancel", []string{"R", "R'"}, []string{}},
		{"half turns cancel", []string{"U2", "U2"}, []string{}},
		{"prime plus half", []string{"F'", "F2"}, []string{"F"}},
		{"no commutation", []string{"R", "U", "R'"}, []string{"R", "U", "R'"}},
		{"cascade", []string{"R", "U", "U'", "R'"}, []string{}},
		{"four in a row", []string{"L", "L", "L", "L"}, []string{}},
		{"rotations merge", []string{"x", "x", "y'", "y"}, []string{"x2"}},
		{"wide and face differ", []string{"r", "R"}, []string{"r", "R"}},
		{"slices", []string{"M'", "M'"}, []string{"M2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Canonicalize(tt.in))
		})
	}
}

func TestCanonicalize_DoesNotModifyInput(t *testing.T) {
	in := []string{"R", "R", "U"}
	Canonicalize(in)
	assert.Equal(t, []string{"R", "R", "U"}, in)
}

func TestCanonicalize_PreservesCubeEffect(t *testing.T) {
	history := []string{"R", "U", "U", "U", "U'", "F2", "F'", "x", "x'", "D"}
	a := NewCube()
	b := NewCube()
	for _, m := range history {
		a.ApplyAlgorithm(m)
	}
	for _, m := range Canonicalize(history) {
		b.ApplyAlgorithm(m)
	}
	assert.True(t, a.Equal(b))
}

func TestMoveBaseAndAmount(t *testing.T) {
	assert.Equal(t, "R", MoveBase("R2"))
	assert.Equal(t, "x", MoveBase("x'"))
	assert.Equal(t, "M", MoveBase("M"))
	assert.Equal(t, 1, MoveAmount("R"))
	assert.Equal(t, 2, MoveAmount("R2"))
	assert.Equal(t, 3, MoveAmount("R'"))
}

func TestCountMoves_ExcludesRotations(t *testing.T) {
	assert.Equal(t, 0, CountMoves(nil))
	assert.Equal(t, 3, CountMoves([]string{"R", "x", "U2", "y'", "M", "z2"}))
}
