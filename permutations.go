package cubeless

// The nine primitive quarter turns, each a permutation of facelet indices:
// applying move X sets new[i] = old[permX[i]]. They follow the standard
// sticker adjacency of a 3x3 cube and are spelled out index by index; every
// other move is built by composing them.
var (
	// U turns the top layer clockwise as seen from above.
	permU = [NumFacelets]int{
		6, 3, 0, 7, 4, 1, 8, 5, 2,          // U
		45, 46, 47, 12, 13, 14, 15, 16, 17, // R
		9, 10, 11, 21, 22, 23, 24, 25, 26,  // F
		27, 28, 29, 30, 31, 32, 33, 34, 35, // D
		18, 19, 20, 39, 40, 41, 42, 43, 44, // L
		36, 37, 38, 48, 49, 50, 51, 52, 53, // B
	}

	// R turns the right layer clockwise as seen from the right.
	permR = [NumFacelets]int{
		0, 1, 20, 3, 4, 23, 6, 7, 26,       // U
		15, 12, 9, 16, 13, 10, 17, 14, 11,  // R
		18, 19, 29, 21, 22, 32, 24, 25, 35, // F
		27, 28, 51, 30, 31, 48, 33, 34, 45, // D
		36, 37, 38, 39, 40, 41, 42, 43, 44, // L
		8, 46, 47, 5, 49, 50, 2, 52, 53,    // B
	}

	// F turns the front layer clockwise as seen from the front.
	permF = [NumFacelets]int{
		0, 1, 2, 3, 4, 5, 44, 41, 38,       // U
		6, 10, 11, 7, 13, 14, 8, 16, 17,    // R
		24, 21, 18, 25, 22, 19, 26, 23, 20, // F
		15, 12, 9, 30, 31, 32, 33, 34, 35,  // D
		36, 37, 27, 39, 40, 28, 42, 43, 29, // L
		45, 46, 47, 48, 49, 50, 51, 52, 53, // B
	}

	// D turns the bottom layer clockwise as seen from below.
	permD = [NumFacelets]int{
		0, 1, 2, 3, 4, 5, 6, 7, 8,          // U
		9, 10, 11, 12, 13, 14, 24, 25, 26,  // R
		18, 19, 20, 21, 22, 23, 42, 43, 44, // F
		33, 30, 27, 34, 31, 28, 35, 32, 29, // D
		36, 37, 38, 39, 40, 41, 51, 52, 53, // L
		45, 46, 47, 48, 49, 50, 15, 16, 17, // B
	}

	// L turns the left layer clockwise as seen from the left.
	permL = [NumFacelets]int{
		53, 1, 2, 50, 4, 5, 47, 7, 8,       // U
		9, 10, 11, 12, 13, 14, 15, 16, 17,  // R
		0, 19, 20, 3, 22, 23, 6, 25, 26,    // F
		18, 28, 29, 21, 31, 32, 24, 34, 35, // D
		42, 39, 36, 43, 40, 37, 44, 41, 38, // L
		45, 46, 33, 48, 49, 30, 51, 52, 27, // B
	}

	// B turns the back layer clockwise as seen from behind.
	permB = [NumFacelets]int{
		11, 14, 17, 3, 4, 5, 6, 7, 8,       // U
		9, 10, 35, 12, 13, 34, 15, 16, 33,  // R
		18, 19, 20, 21, 22, 23, 24, 25, 26, // F
		27, 28, 29, 30, 31, 32, 36, 39, 42, // D
		2, 37, 38, 1, 40, 41, 0, 43, 44,    // L
		51, 48, 45, 52, 49, 46, 53, 50, 47, // B
	}

	// E turns the middle horizontal slice in the direction of D.
	permE = [NumFacelets]int{
		0, 1, 2, 3, 4, 5, 6, 7, 8,          // U
		9, 10, 11, 21, 22, 23, 15, 16, 17,  // R
		18, 19, 20, 39, 40, 41, 24, 25, 26, // F
		27, 28, 29, 30, 31, 32, 33, 34, 35, // D
		36, 37, 38, 48, 49, 50, 42, 43, 44, // L
		45, 46, 47, 12, 13, 14, 51, 52, 53, // B
	}

	// M turns the middle vertical slice between L and R in the direction of L.
	permM = [NumFacelets]int{
		0, 52, 2, 3, 49, 5, 6, 46, 8,       // U
		9, 10, 11, 12, 13, 14, 15, 16, 17,  // R
		18, 1, 20, 21, 4, 23, 24, 7, 26,    // F
		27, 19, 29, 30, 22, 32, 33, 25, 35, // D
		36, 37, 38, 39, 40, 41, 42, 43, 44, // L
		45, 34, 47, 48, 31, 50, 51, 28, 53, // B
	}

	// S turns the middle slice between F and B in the direction of F.
	permS = [NumFacelets]int{
		0, 1, 2, 43, 40, 37, 6, 7, 8,       // U
		9, 3, 11, 12, 4, 14, 15, 5, 17,     // R
		18, 19, 20, 21, 22, 23, 24, 25, 26, // F
		27, 28, 29, 16, 13, 10, 33, 34, 35, // D
		36, 30, 38, 39, 31, 41, 42, 32, 44, // L
		45, 46, 47, 48, 49, 50, 51, 52, 53, // B
	}
)

// permutation returns the quarter-turn table of a primitive move kind.
func permutation(k Kind) *[NumFacelets]int {
	switch k {
	case KindU:
		return &permU
	case KindR:
		return &permR
	case KindF:
		return &permF
	case KindD:
		return &permD
	case KindL:
		return &permL
	case KindB:
		return &permB
	case KindE:
		return &permE
	case KindM:
		return &permM
	case KindS:
		return &permS
	default:
		return nil
	}
}

// quarter applies one quarter turn of the permutation p. The new state is
// built in full before it replaces the old one.
func (c *Cube) quarter(p *[NumFacelets]int) {
	var next [NumFacelets]Color
	for i, from := range p {
		next[i] = c.Facelets[from]
	}
	c.Facelets = next
}
