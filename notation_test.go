package cubeless

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		digits string
		prime  bool
		want   int
	}{
		{"", false, 1},
		{"", true, 3},
		{"2", false, 2},
		{"2", true, 2},
		{"3", false, 3},
		{"3", true, 1},
		{"4", false, 0},
		{"4", true, 0},
		{"0", false, 0},
		{"5", false, 1},
		{"13", true, 3},
		{"100", false, 0},
		{"99999999999999999999999", false, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseAmount(tt.digits, tt.prime), "digits %q prime %v", tt.digits, tt.prime)
	}
}

func TestTokenize(t *testing.T) {
	moves, skipped := Tokenize("R U2 R' r x2' M3 E S'")
	assert.Empty(t, skipped)
	assert.Equal(t, "R U2 R' r x2 M' E S'", FormatMoves(moves))
}

func TestTokenize_NoSeparators(t *testing.T) {
	moves, _ := Tokenize("RU2R'")
	assert.Equal(t, []Move{R, U2, RPrime}, moves)
}

func TestTokenize_SkipsGarbage(t *testing.T) {
	moves, skipped := Tokenize("  R ?? U' (#) Rw F2 ")
	assert.Equal(t, "R U' R F2", FormatMoves(moves))
	assert.Equal(t, []string{"??", "(#)", "w"}, skipped)
}

func TestTokenize_KeepsNoOps(t *testing.T) {
	moves, _ := Tokenize("R4 U0 F")
	require.Len(t, moves, 3)
	assert.Equal(t, 0, moves[0].Amount)
	assert.Equal(t, 0, moves[1].Amount)
	assert.Equal(t, F, moves[2])
}

func TestApplyAlgorithm_Empty(t *testing.T) {
	c := scrambledCube()
	start := c.Clone()
	c.ApplyAlgorithm("")
	assert.True(t, c.Equal(start))
	c.ApplyAlgorithm("   \t\n")
	assert.True(t, c.Equal(start))
}

func TestApplyAlgorithm_GarbageDoesNotAbort(t *testing.T) {
	a := NewCube()
	b := NewCube()
	a.ApplyAlgorithm("R #! U q F")
	b.Apply(R, U, F)
	assert.True(t, a.Equal(b))
}

func TestApplyAlgorithm_R2PrimeIsR2(t *testing.T) {
	a := scrambledCube()
	b := a.Clone()
	a.ApplyAlgorithm("R2'")
	b.ApplyAlgorithm("R2")
	assert.True(t, a.Equal(b))
}

func TestApplyAlgorithm_AmountZeroIsNoOp(t *testing.T) {
	c := scrambledCube()
	start := c.Clone()
	c.ApplyAlgorithm("R4 x0 M8' u12")
	assert.True(t, c.Equal(start))
}

func TestApplyAlgorithm_InverseRestores(t *testing.T) {
	alg := "R U' r2 F d' x M2 y' S E' b z2 L' B2 D"
	moves, _ := Tokenize(alg)

	c := NewCube()
	c.ApplyAlgorithm(alg)
	require.NotEqual(t, SolvedString, c.String())

	c.ApplyAlgorithm(FormatMoves(Invert(moves)))
	assert.Equal(t, SolvedString, c.String())
	assert.True(t, c.IsSolved())
}
