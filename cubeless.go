// Package cubeless simulates the facelets of a 3x3 Rubik's cube and applies
// moves written in standard cube notation.
//
// # Features
//
//   - 54-facelet cube state with a 54-letter string serialization
//   - Face, slice, wide and whole-cube moves (R, M, r, x, ...)
//   - Forgiving notation parser: malformed text is skipped, never fatal
//   - Simplification of recorded move lists
//   - Orientation normalization (white up, green front)
//
// # Quick Start
//
//	cube := cubeless.NewCube()
//	cube.ApplyAlgorithm("R U R' U' x2 M2")
//
//	fmt.Println("Solved:", cube.IsSolved())
//	fmt.Println("State:", cube.String())
//
// Moves can also be applied from predefined values:
//
//	cube.Apply(cubeless.R, cubeless.U, cubeless.RPrime, cubeless.UPrime)
//
// # Move Model
//
// Nine primitive quarter turns (U, R, F, D, L, B and the slices E, M, S)
// are fixed permutations of the 54 facelets. Wide turns and rotations are
// fixed sequences of primitives:
//
//	x  = R M' L'     y  = U E' D'     z  = F S B'
//	Uw = E' U        Rw = M' R        Fw = S F
//	Dw = E D         Lw = M L         Bw = S' B
//
// # Sessions
//
// A Session adds what an interactive front end needs on top of a Cube:
// scrambles, recording of pressed moves, and the simplified solution:
//
//	s := cubeless.NewSession()
//	s.Scramble()
//	s.SetRecording(true)
//	s.Press("R")
//	s.Press("R")
//	fmt.Println(s.SolutionText()) // R2
//
// Neither Cube nor Session is safe for concurrent use.
package cubeless
