package cubeless

import "strings"

// upCorrections maps the face whose center shows the U color to the
// rotation that brings it to the top.
var upCorrections = []struct {
	face Face
	move Move
}{
	{FaceR, Move{KindZ, 3}},
	{FaceF, Move{KindX, 1}},
	{FaceD, Move{KindX, 2}},
	{FaceL, Move{KindZ, 1}},
	{FaceB, Move{KindX, 3}},
}

// frontCorrections does the same for the F color once U is in place.
var frontCorrections = []struct {
	face Face
	move Move
}{
	{FaceR, Move{KindY, 1}},
	{FaceL, Move{KindY, 3}},
	{FaceB, Move{KindY, 2}},
}

// Orientation returns the whole-cube rotations that would bring the white
// center to U and then the green center to F, without applying them.
// Only the six centers are read, so the result is meaningful for a solved
// but rotated cube and for any cube where the centers have moved.
func (c *Cube) Orientation() []Move {
	scratch := c.Clone()
	var moves []Move

	for _, fix := range upCorrections {
		if scratch.Center(fix.face) == White {
			scratch.Apply(fix.move)
			moves = append(moves, fix.move)
			break
		}
	}

	for _, fix := range frontCorrections {
		if scratch.Center(fix.face) == Green {
			scratch.Apply(fix.move)
			moves = append(moves, fix.move)
			break
		}
	}

	return moves
}

// NormalizeOrientation rotates the cube so that the white center is on U
// and the green center on F, and returns the rotations it applied, e.g.
// "x y'". The result is empty when the cube is already oriented.
func (c *Cube) NormalizeOrientation() string {
	moves := c.Orientation()
	c.Apply(moves...)

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}
