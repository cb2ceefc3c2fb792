package cubeless

import (
	"strings"
)

// Kind identifies what a move turns: a single face, a middle slice, two
// layers at once (wide), or the whole cube.
type Kind uint8

const (
	// Primitive face turns.
	KindU Kind = iota
	KindR
	KindF
	KindD
	KindL
	KindB

	// Primitive slice turns.
	KindE // Between U and D, follows D
	KindM // Between L and R, follows L
	KindS // Between F and B, follows F

	// Wide turns: a face plus the adjacent slice.
	KindUw
	KindRw
	KindFw
	KindDw
	KindLw
	KindBw

	// Whole-cube rotations.
	KindX // Follows R
	KindY // Follows U
	KindZ // Follows F

	numKinds
)

// kindLetters holds the notation letter of each Kind, in Kind order.
const kindLetters = "URFDLBEMSurfdlbxyz"

// Letter returns the notation letter for the kind. Wide turns use the
// lower-case face letter.
func (k Kind) Letter() byte {
	if k >= numKinds {
		return '?'
	}
	return kindLetters[k]
}

func (k Kind) String() string {
	return string(k.Letter())
}

// IsPrimitive reports whether the kind is one of the nine permutation
// tables (six faces and three slices).
func (k Kind) IsPrimitive() bool {
	return k <= KindS
}

// IsWide reports whether the kind turns two layers.
func (k Kind) IsWide() bool {
	return k >= KindUw && k <= KindBw
}

// IsRotation reports whether the kind reorients the whole cube.
func (k Kind) IsRotation() bool {
	return k >= KindX && k <= KindZ
}

// KindFromLetter maps a notation letter to its Kind.
func KindFromLetter(b byte) (Kind, bool) {
	i := strings.IndexByte(kindLetters, b)
	if i < 0 {
		return 0, false
	}
	return Kind(i), true
}

// Move is a single move: a kind and a number of clockwise quarter turns.
// Amount is taken modulo 4, so 3 is the prime (counter-clockwise) form and
// 0 leaves the cube untouched.
type Move struct {
	Kind   Kind // What to turn
	Amount int  // Quarter turns, 0..3
}

// Notation returns the standard notation string for this move.
// Examples: R, R', R2, r, x'. A no-op move is written with a 0 suffix.
func (m Move) Notation() string {
	suffix := ""
	switch normalizeAmount(m.Amount) {
	case 0:
		suffix = "0"
	case 2:
		suffix = "2"
	case 3:
		suffix = "'"
	}
	return m.Kind.String() + suffix
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the move that undoes m.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	inv.Amount = (4 - normalizeAmount(m.Amount)) % 4
	return inv
}

// Invert returns the sequence that undoes moves: reversed, each move inverted.
func Invert(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}

// ParseMove parses exactly one move token, such as R, U2, r', x2 or M3.
// Returns ErrInvalidNotation if s is not a single well-formed token.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	loc := tokenPattern.FindStringSubmatchIndex(s)
	if loc == nil || loc[0] != 0 || loc[1] != len(s) {
		return Move{}, ErrInvalidNotation
	}
	return moveFromMatch(s, loc), nil
}

// FormatMoves formats moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// normalizeAmount folds any integer amount into 0..3.
func normalizeAmount(a int) int {
	return ((a % 4) + 4) % 4
}
