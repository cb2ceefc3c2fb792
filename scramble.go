package cubeless

import (
	"math/rand"
	"strings"
)

// RandomScramble returns n random face moves drawn uniformly from the 18
// single-face turns (U, U', U2, ..., B2), joined by spaces.
// Consecutive moves may turn the same face.
func RandomScramble(r *rand.Rand, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = scrambleMoves[r.Intn(len(scrambleMoves))]
	}
	return strings.Join(parts, " ")
}
