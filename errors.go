package cubeless

import "errors"

// Sentinel errors for the cubeless package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("cubeless: invalid move notation")
	ErrInvalidFacelets = errors.New("cubeless: invalid facelet string")

	// Solver errors
	ErrNoSolver = errors.New("cubeless: no solver configured")
)
