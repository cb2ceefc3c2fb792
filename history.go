package cubeless

import "strings"

// Canonicalize simplifies a recorded move list in one left-to-right pass.
//
// Each move is compared with the last move kept so far. When both turn the
// same base (R and R2, x' and x, ...) they are merged into one move, or
// dropped entirely if they cancel. Only neighbours are merged: R U R' stays
// as it is. The input slice is not modified.
//
// Examples:
//
//	[R R R]  -> [R']
//	[R R']   -> []
//	[R U U'] -> [R]
func Canonicalize(moves []string) []string {
	simplified := make([]string, 0, len(moves))

	for _, move := range moves {
		if len(simplified) == 0 {
			simplified = append(simplified, move)
			continue
		}

		last := simplified[len(simplified)-1]
		base := MoveBase(last)
		if base != MoveBase(move) {
			simplified = append(simplified, move)
			continue
		}

		// Merge into the previous move, or cancel it.
		simplified = simplified[:len(simplified)-1]
		if merged := recordedMove(base, MoveAmount(last)+MoveAmount(move)); merged != "" {
			simplified = append(simplified, merged)
		}
	}

	return simplified
}

// MoveBase strips a trailing "2" or "'" from a recorded move: R2 -> R,
// x' -> x, R -> R.
func MoveBase(move string) string {
	if strings.HasSuffix(move, "2") || strings.HasSuffix(move, "'") {
		return move[:len(move)-1]
	}
	return move
}

// MoveAmount returns the quarter-turn amount of a recorded move:
// 2 for a "2" suffix, 3 for a prime and 1 otherwise.
func MoveAmount(move string) int {
	switch {
	case strings.HasSuffix(move, "2"):
		return 2
	case strings.HasSuffix(move, "'"):
		return 3
	default:
		return 1
	}
}

// recordedMove writes base turned amount quarter turns back as a recorded
// move. A multiple of four cancels out and yields "".
func recordedMove(base string, amount int) string {
	switch normalizeAmount(amount) {
	case 1:
		return base
	case 2:
		return base + "2"
	case 3:
		return base + "'"
	default:
		return ""
	}
}

// CountMoves counts the moves in a list, not counting whole-cube rotations
// (moves starting with x, y or z).
func CountMoves(moves []string) int {
	count := 0
	for _, m := range moves {
		if m == "" {
			continue
		}
		if k, ok := KindFromLetter(m[0]); ok && k.IsRotation() {
			continue
		}
		count++
	}
	return count
}
