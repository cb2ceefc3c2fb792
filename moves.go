package cubeless

// Predefined moves for convenience.
//
// Example:
//
//	cube.Apply(cubeless.R, cubeless.U, cubeless.RPrime, cubeless.UPrime)
var (
	// Right face moves
	R      = Move{Kind: KindR, Amount: 1} // Right clockwise
	RPrime = Move{Kind: KindR, Amount: 3} // Right counter-clockwise
	R2     = Move{Kind: KindR, Amount: 2} // Right 180

	// Left face moves
	L      = Move{Kind: KindL, Amount: 1}
	LPrime = Move{Kind: KindL, Amount: 3}
	L2     = Move{Kind: KindL, Amount: 2}

	// Up face moves
	U      = Move{Kind: KindU, Amount: 1}
	UPrime = Move{Kind: KindU, Amount: 3}
	U2     = Move{Kind: KindU, Amount: 2}

	// Down face moves
	D      = Move{Kind: KindD, Amount: 1}
	DPrime = Move{Kind: KindD, Amount: 3}
	D2     = Move{Kind: KindD, Amount: 2}

	// Front face moves
	F      = Move{Kind: KindF, Amount: 1}
	FPrime = Move{Kind: KindF, Amount: 3}
	F2     = Move{Kind: KindF, Amount: 2}

	// Back face moves
	B      = Move{Kind: KindB, Amount: 1}
	BPrime = Move{Kind: KindB, Amount: 3}
	B2     = Move{Kind: KindB, Amount: 2}

	// Slice moves
	E = Move{Kind: KindE, Amount: 1}
	M = Move{Kind: KindM, Amount: 1}
	S = Move{Kind: KindS, Amount: 1}

	// Whole-cube rotations
	X = Move{Kind: KindX, Amount: 1}
	Y = Move{Kind: KindY, Amount: 1}
	Z = Move{Kind: KindZ, Amount: 1}
)

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = []Move{R, U, RPrime, UPrime}

// T-perm algorithm
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}

// scrambleMoves are the moves a random scramble draws from.
var scrambleMoves = []string{
	"U", "D", "L", "R", "F", "B",
	"U'", "D'", "L'", "R'", "F'", "B'",
	"U2", "D2", "L2", "R2", "F2", "B2",
}
