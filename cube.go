package cubeless

import (
	"fmt"
	"strings"
)

// Color represents a facelet color. Each color is named after the face it
// belongs to on a solved cube, so the zero value is not a valid color.
type Color byte

const (
	White  Color = 1 // Up face when solved
	Red    Color = 2 // Right face when solved
	Green  Color = 3 // Front face when solved
	Yellow Color = 4 // Down face when solved
	Orange Color = 5 // Left face when solved
	Blue   Color = 6 // Back face when solved
)

// faceLetters maps a color code (or face index + 1) to its home face letter.
const faceLetters = "?URFDLB"

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Red:
		return "R"
	case Green:
		return "G"
	case Yellow:
		return "Y"
	case Orange:
		return "O"
	case Blue:
		return "B"
	default:
		return "?"
	}
}

// Letter returns the letter of the face this color belongs to when solved.
// This is the alphabet used by the 54-character serialization.
func (c Color) Letter() byte {
	if c < White || c > Blue {
		return '?'
	}
	return faceLetters[c]
}

// Valid reports whether c is one of the six facelet colors.
func (c Color) Valid() bool {
	return c >= White && c <= Blue
}

// colorFromLetter is the inverse of Color.Letter.
func colorFromLetter(b byte) (Color, bool) {
	i := strings.IndexByte(faceLetters[1:], b)
	if i < 0 {
		return 0, false
	}
	return Color(i + 1), true
}

// Face identifies one of the six 9-facelet blocks.
type Face int

const (
	FaceU Face = 0 // Up
	FaceR Face = 1 // Right
	FaceF Face = 2 // Front
	FaceD Face = 3 // Down
	FaceL Face = 4 // Left
	FaceB Face = 5 // Back
)

func (f Face) String() string {
	if f < FaceU || f > FaceB {
		return "?"
	}
	return string(faceLetters[f+1])
}

// Center returns the array index of the face's center facelet.
func (f Face) Center() int {
	return int(f)*9 + 4
}

// NumFacelets is the number of stickers on a 3x3x3 cube.
const NumFacelets = 54

// SolvedString is the serialization of the solved reference state.
const SolvedString = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"

// Cube represents the facelet state of a 3x3 cube.
//
// Facelets are stored in six contiguous blocks of nine in face order
// U, R, F, D, L, B. Within a block the stickers are row-major as seen when
// looking straight at that face:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// U is viewed with B at the top, D with F at the top, and the four side
// faces with U at the top.
//
// A Cube is not safe for concurrent use; callers must serialize mutation.
type Cube struct {
	// Facelets[i] = color of sticker i
	Facelets [NumFacelets]Color
}

// NewCube creates a cube in the solved reference state.
func NewCube() *Cube {
	c := &Cube{}
	c.Reset()
	return c
}

// Reset returns the cube to the solved reference state, where facelet i
// has color i/9 + 1.
func (c *Cube) Reset() {
	for i := range c.Facelets {
		c.Facelets[i] = Color(i/9 + 1)
	}
}

// Clone creates a copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// Equal reports whether both cubes show the same colors everywhere.
func (c *Cube) Equal(other *Cube) bool {
	return c.Facelets == other.Facelets
}

// Center returns the color of the given face's center sticker.
func (c *Cube) Center(f Face) Color {
	return c.Facelets[f.Center()]
}

// IsSolved returns true if every face is a single uniform color.
//
// Which color sits on which face does not matter: a solved cube held in
// any orientation is still solved.
func (c *Cube) IsSolved() bool {
	for face := 0; face < 6; face++ {
		block := c.Facelets[face*9 : face*9+9]
		for _, color := range block[1:] {
			if color != block[0] {
				return false
			}
		}
	}
	return true
}

// String returns the 54-character serialization of the cube. Letter i is
// the home face of the color shown by facelet i, so a solved cube
// serializes to SolvedString. This is the format exchanged with solvers.
func (c *Cube) String() string {
	var b strings.Builder
	b.Grow(NumFacelets)
	for _, color := range c.Facelets {
		b.WriteByte(color.Letter())
	}
	return b.String()
}

// ParseCube builds a cube from its 54-character serialization.
// The string must contain exactly 54 letters from U, R, F, D, L, B.
// Reachability of the resulting position is not checked.
func ParseCube(s string) (*Cube, error) {
	if len(s) != NumFacelets {
		return nil, fmt.Errorf("%w: got %d characters, want %d", ErrInvalidFacelets, len(s), NumFacelets)
	}

	c := &Cube{}
	for i := 0; i < len(s); i++ {
		color, ok := colorFromLetter(s[i])
		if !ok {
			return nil, fmt.Errorf("%w: unexpected %q at position %d", ErrInvalidFacelets, s[i], i)
		}
		c.Facelets[i] = color
	}
	return c, nil
}

// MustParseCube is like ParseCube but panics on malformed input.
// It is intended for fixed literals in tests and examples.
func MustParseCube(s string) *Cube {
	c, err := ParseCube(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Net returns a text rendering of the cube unfolded as a cross:
//
//	  U
//	L F R B
//	  D
//
// Each sticker is drawn as its color initial followed by a space.
func (c *Cube) Net() string {
	return c.RenderNet(func(color Color) string {
		return color.String() + " "
	}, 2)
}

// RenderNet lays the cube out like Net, drawing each sticker with cell.
// cellWidth is the display width of one cell, used to indent U and D.
func (c *Cube) RenderNet(cell func(Color) string, cellWidth int) string {
	var b strings.Builder
	indent := strings.Repeat(" ", 3*cellWidth)

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		for col := 0; col < 3; col++ {
			b.WriteString(cell(c.Facelets[int(FaceU)*9+row*3+col]))
		}
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{FaceL, FaceF, FaceR, FaceB} {
			for col := 0; col < 3; col++ {
				b.WriteString(cell(c.Facelets[int(face)*9+row*3+col]))
			}
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		for col := 0; col < 3; col++ {
			b.WriteString(cell(c.Facelets[int(FaceD)*9+row*3+col]))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Debug returns a simple debug string.
func (c *Cube) Debug() string {
	return fmt.Sprintf("Solved: %v State: %s", c.IsSolved(), c.String())
}

// Apply applies moves to the cube in order.
func (c *Cube) Apply(moves ...Move) {
	for _, m := range moves {
		c.turn(m.Kind, m.Amount)
	}
}

// ApplyAlgorithm parses an algorithm such as "R U2 R' x" and applies every
// well-formed move it contains, left to right. Unrecognized characters are
// skipped; the call never fails.
func (c *Cube) ApplyAlgorithm(alg string) {
	moves, _ := Tokenize(alg)
	c.Apply(moves...)
}
