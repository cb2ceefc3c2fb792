package cubeless

import "context"

// Solver finds a solution for a cube state. It receives the 54-character
// serialization (see Cube.String) and returns a move string in standard
// notation, or "" when it has nothing to offer.
type Solver interface {
	Solve(ctx context.Context, facelets string) (string, error)
}

// SolverFunc adapts an ordinary function to the Solver interface.
type SolverFunc func(ctx context.Context, facelets string) (string, error)

// Solve calls f(ctx, facelets).
func (f SolverFunc) Solve(ctx context.Context, facelets string) (string, error) {
	return f(ctx, facelets)
}
