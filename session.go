package cubeless

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Session wraps a Cube with the state an interactive front end keeps
// around it: the current scramble, whether moves are being recorded, and
// the recorded move history.
//
// A Session is not safe for concurrent use; callers must serialize access.
type Session struct {
	cube      *Cube
	scramble  string
	recording bool
	history   []string
	cfg       *config
}

// NewSession creates a session with a solved cube, no scramble and
// recording off.
func NewSession(opts ...Option) *Session {
	return &Session{
		cube: NewCube(),
		cfg:  buildConfig(opts),
	}
}

// Cube returns the underlying cube for inspection.
func (s *Session) Cube() *Cube {
	return s.cube
}

// Reset returns the cube to solved and forgets the scramble and history.
func (s *Session) Reset() {
	s.cube.Reset()
	s.scramble = ""
	s.history = nil
	s.cfg.logger.Debug("session reset")
}

// Apply applies an algorithm without recording it.
func (s *Session) Apply(alg string) {
	s.apply(alg)
}

// apply parses alg, applies it and returns the moves found.
func (s *Session) apply(alg string) []Move {
	moves, skipped := Tokenize(alg)
	if len(skipped) > 0 {
		s.cfg.logger.Debug("skipped unrecognized notation",
			zap.String("algorithm", alg),
			zap.Strings("skipped", skipped),
		)
	}
	s.cube.Apply(moves...)
	return moves
}

// Press applies one or more moves and, while recording is on, appends each
// to the history in recorded form (R, R2, R'). No-op moves such as R4 are
// not recorded.
func (s *Session) Press(alg string) {
	moves := s.apply(alg)
	if !s.recording {
		return
	}
	for _, m := range moves {
		if normalizeAmount(m.Amount) == 0 {
			continue
		}
		s.history = append(s.history, m.Notation())
	}
}

// Recording reports whether moves are currently being recorded.
func (s *Session) Recording() bool {
	return s.recording
}

// SetRecording turns recording on or off. The history is kept either way.
func (s *Session) SetRecording(on bool) {
	s.recording = on
}

// ToggleRecording flips recording and returns the new state.
func (s *Session) ToggleRecording() bool {
	s.recording = !s.recording
	return s.recording
}

// Scramble applies a random scramble, remembers it, clears the history,
// and returns the scramble text.
func (s *Session) Scramble() string {
	alg := RandomScramble(s.cfg.rand, s.cfg.scrambleLength)
	s.ApplyScramble(alg)
	return alg
}

// ApplyScramble applies a caller-supplied scramble, remembers it and clears
// the history. Blank input is ignored.
func (s *Session) ApplyScramble(alg string) {
	alg = strings.TrimSpace(alg)
	if alg == "" {
		return
	}
	s.apply(alg)
	s.scramble = alg
	s.history = nil
	s.cfg.logger.Debug("scramble applied", zap.String("scramble", alg))
}

// CurrentScramble returns the last scramble applied, or "".
func (s *Session) CurrentScramble() string {
	return s.scramble
}

// History returns a copy of the recorded moves.
func (s *Session) History() []string {
	return append([]string(nil), s.history...)
}

// Solution returns the recorded moves, simplified with Canonicalize unless
// solution cancelling is disabled.
func (s *Session) Solution() []string {
	if !s.cfg.cancelSolution {
		return s.History()
	}
	return Canonicalize(s.history)
}

// SolutionText returns Solution joined by spaces.
func (s *Session) SolutionText() string {
	return strings.Join(s.Solution(), " ")
}

// MoveCount returns the number of solution moves, not counting rotations.
func (s *Session) MoveCount() int {
	return CountMoves(s.Solution())
}

// IsSolved returns true if the cube is solved.
func (s *Session) IsSolved() bool {
	return s.cube.IsSolved()
}

// Orient rotates the cube to the reference orientation and returns the
// rotations applied. Rotations done this way are not recorded.
func (s *Session) Orient() string {
	return s.cube.NormalizeOrientation()
}

// Solve asks solver for a solution to the current state. The cube is not
// changed; an empty solution is not an error.
func (s *Session) Solve(ctx context.Context, solver Solver) (string, error) {
	if solver == nil {
		return "", ErrNoSolver
	}

	facelets := s.cube.String()
	solution, err := solver.Solve(ctx, facelets)
	if err != nil {
		return "", fmt.Errorf("solve %s: %w", facelets, err)
	}

	s.cfg.logger.Debug("solver finished",
		zap.String("facelets", facelets),
		zap.String("solution", solution),
	)
	return strings.TrimSpace(solution), nil
}

// Snapshot is the persistable state of a Session.
type Snapshot struct {
	Facelets  string   `json:"facelets"`
	Scramble  string   `json:"scramble,omitempty"`
	History   []string `json:"history,omitempty"`
	Recording bool     `json:"recording"`
}

// Snapshot captures the session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Facelets:  s.cube.String(),
		Scramble:  s.scramble,
		History:   s.History(),
		Recording: s.recording,
	}
}

// RestoreSession rebuilds a session from a snapshot.
func RestoreSession(snap Snapshot, opts ...Option) (*Session, error) {
	cube, err := ParseCube(snap.Facelets)
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}

	return &Session{
		cube:      cube,
		scramble:  snap.Scramble,
		recording: snap.Recording,
		history:   append([]string(nil), snap.History...),
		cfg:       buildConfig(opts),
	}, nil
}
