package recorder

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/SeamusWaldron/cubeless"
	"github.com/SeamusWaldron/cubeless/internal/storage"
)

// Recorder drives a cubeless.Session for an interactive front end. Every
// change is written to the state file so the session can be resumed, and
// finished attempts are archived in the database.
type Recorder struct {
	sess      *cubeless.Session
	stateFile *StateFile
	repo      *storage.SessionRepository
	logger    *zap.Logger
	opts      []cubeless.Option

	startFacelets string
	startedAt     time.Time
}

// New restores the session saved in stateFile, or starts a fresh one.
// repo may be nil, in which case Finish does not archive.
func New(stateFile *StateFile, repo *storage.SessionRepository, logger *zap.Logger, opts ...cubeless.Option) (*Recorder, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts = append([]cubeless.Option{cubeless.WithLogger(logger)}, opts...)

	r := &Recorder{stateFile: stateFile, repo: repo, logger: logger, opts: opts}

	state := stateFile.State()
	if state.Session == nil {
		r.sess = cubeless.NewSession(opts...)
		r.markStart()
		return r, nil
	}

	sess, err := cubeless.RestoreSession(*state.Session, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to resume session: %w", err)
	}
	r.sess = sess
	r.startFacelets = state.StartFacelets
	r.startedAt = state.StartedAt
	if r.startFacelets == "" {
		r.markStart()
	}

	logger.Info("resumed session",
		zap.String("state_file", stateFile.Path()),
		zap.Int("history", len(state.Session.History)),
	)
	return r, nil
}

// Session returns the underlying session.
func (r *Recorder) Session() *cubeless.Session {
	return r.sess
}

// StartedAt returns when the current attempt started.
func (r *Recorder) StartedAt() time.Time {
	return r.startedAt
}

func (r *Recorder) markStart() {
	r.startFacelets = r.sess.Cube().String()
	r.startedAt = time.Now().UTC()
}

// Save writes the session to the state file.
func (r *Recorder) Save() error {
	return r.stateFile.SetSession(r.sess.Snapshot(), r.startFacelets, r.startedAt)
}

// Press applies and possibly records the moves in alg.
func (r *Recorder) Press(alg string) error {
	r.sess.Press(alg)
	return r.Save()
}

// ToggleRecording flips recording. Turning it on with an empty history
// starts a new attempt from the current cube.
func (r *Recorder) ToggleRecording() (bool, error) {
	on := r.sess.ToggleRecording()
	if on && len(r.sess.History()) == 0 {
		r.markStart()
	}
	return on, r.Save()
}

// Scramble applies a random scramble and starts a new attempt.
func (r *Recorder) Scramble() (string, error) {
	alg := r.sess.Scramble()
	r.markStart()
	return alg, r.Save()
}

// ApplyScramble applies a manual scramble and starts a new attempt.
func (r *Recorder) ApplyScramble(alg string) error {
	r.sess.ApplyScramble(alg)
	r.markStart()
	return r.Save()
}

// Orient rotates the cube to the reference orientation.
func (r *Recorder) Orient() (string, error) {
	rotations := r.sess.Orient()
	return rotations, r.Save()
}

// Reset returns to a solved cube and starts a new attempt.
func (r *Recorder) Reset() error {
	r.sess.Reset()
	r.markStart()
	return r.Save()
}

// Finish archives the current attempt and starts a new one from the
// current cube. An attempt with no recorded moves is not archived and the
// returned ID is empty.
func (r *Recorder) Finish() (string, error) {
	if len(r.sess.History()) == 0 || r.repo == nil {
		return "", nil
	}

	rec := storage.NewSessionRecord(r.sess, r.startFacelets, r.startedAt)
	id, err := r.repo.Create(rec)
	if err != nil {
		return "", err
	}

	r.logger.Info("session archived",
		zap.String("session_id", id),
		zap.Bool("solved", rec.Solved),
		zap.Int("move_count", rec.MoveCount),
	)

	snap := r.sess.Snapshot()
	snap.History = nil
	snap.Scramble = ""
	next, err := cubeless.RestoreSession(snap, r.opts...)
	if err != nil {
		return id, err
	}
	r.sess = next
	r.markStart()
	return id, r.Save()
}
