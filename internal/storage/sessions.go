package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/cubeless"
)

// Move kinds stored in session_moves.
const (
	MoveKindRaw      = "raw"
	MoveKindSolution = "solution"
)

// SessionRecord is a finished session as stored in the database.
type SessionRecord struct {
	SessionID     string    `json:"session_id" yaml:"session_id"`
	StartedAt     time.Time `json:"started_at" yaml:"started_at"`
	EndedAt       time.Time `json:"ended_at" yaml:"ended_at"`
	Scramble      string    `json:"scramble,omitempty" yaml:"scramble,omitempty"`
	StartFacelets string    `json:"start_facelets" yaml:"start_facelets"`
	EndFacelets   string    `json:"end_facelets" yaml:"end_facelets"`
	Solved        bool      `json:"solved" yaml:"solved"`
	MoveCount     int       `json:"move_count" yaml:"move_count"`
	Moves         []string  `json:"moves,omitempty" yaml:"moves,omitempty"`
	Solution      []string  `json:"solution,omitempty" yaml:"solution,omitempty"`
}

// NewSessionRecord captures the current state of sess. startFacelets is the
// cube as it was when the attempt started.
func NewSessionRecord(sess *cubeless.Session, startFacelets string, startedAt time.Time) *SessionRecord {
	return &SessionRecord{
		StartedAt:     startedAt,
		EndedAt:       time.Now().UTC(),
		Scramble:      sess.CurrentScramble(),
		StartFacelets: startFacelets,
		EndFacelets:   sess.Cube().String(),
		Solved:        sess.IsSolved(),
		MoveCount:     sess.MoveCount(),
		Moves:         sess.History(),
		Solution:      sess.Solution(),
	}
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create stores rec with its moves and returns the new session ID.
func (r *SessionRepository) Create(rec *SessionRecord) (string, error) {
	id := uuid.New().String()
	if rec.StartedAt.IsZero() {
		rec.StartedAt = time.Now().UTC()
	}
	if rec.EndedAt.IsZero() {
		rec.EndedAt = time.Now().UTC()
	}

	var scramblePtr *string
	if rec.Scramble != "" {
		scramblePtr = &rec.Scramble
	}

	err := r.db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO sessions (session_id, started_at, ended_at, scramble_text, start_facelets, end_facelets, solved, move_count)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, id, rec.StartedAt.UTC().Format(time.RFC3339), rec.EndedAt.UTC().Format(time.RFC3339),
			scramblePtr, rec.StartFacelets, rec.EndFacelets, rec.Solved, rec.MoveCount)
		if err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}

		if err := insertMoves(tx, id, MoveKindRaw, rec.Moves); err != nil {
			return err
		}
		return insertMoves(tx, id, MoveKindSolution, rec.Solution)
	})
	if err != nil {
		return "", err
	}

	rec.SessionID = id
	return id, nil
}

func insertMoves(tx *sql.Tx, sessionID, kind string, moves []string) error {
	for i, m := range moves {
		_, err := tx.Exec(`
			INSERT INTO session_moves (session_id, kind, move_index, notation)
			VALUES (?, ?, ?, ?)
		`, sessionID, kind, i, m)
		if err != nil {
			return fmt.Errorf("failed to create %s move %d: %w", kind, i, err)
		}
	}
	return nil
}

const sessionColumns = `session_id, started_at, ended_at, scramble_text, start_facelets, end_facelets, solved, move_count`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*SessionRecord, error) {
	var s SessionRecord
	var startedAtStr, endedAtStr string
	var scramble sql.NullString

	err := row.Scan(&s.SessionID, &startedAtStr, &endedAtStr, &scramble,
		&s.StartFacelets, &s.EndFacelets, &s.Solved, &s.MoveCount)
	if err != nil {
		return nil, err
	}

	s.StartedAt, _ = time.Parse(time.RFC3339, startedAtStr)
	s.EndedAt, _ = time.Parse(time.RFC3339, endedAtStr)
	s.Scramble = scramble.String
	return &s, nil
}

// Get retrieves a session and its moves by ID. It returns nil if no
// session has that ID.
func (r *SessionRepository) Get(sessionID string) (*SessionRecord, error) {
	s, err := scanSession(r.db.QueryRow(`
		SELECT `+sessionColumns+`
		FROM sessions
		WHERE session_id = ?
	`, sessionID))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if s.Moves, err = r.moves(sessionID, MoveKindRaw); err != nil {
		return nil, err
	}
	if s.Solution, err = r.moves(sessionID, MoveKindSolution); err != nil {
		return nil, err
	}

	return s, nil
}

func (r *SessionRepository) moves(sessionID, kind string) ([]string, error) {
	rows, err := r.db.Query(`
		SELECT notation FROM session_moves
		WHERE session_id = ? AND kind = ?
		ORDER BY move_index
	`, sessionID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// List retrieves the most recent sessions without their moves.
func (r *SessionRepository) List(limit int) ([]SessionRecord, error) {
	rows, err := r.db.Query(`
		SELECT `+sessionColumns+`
		FROM sessions
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []SessionRecord
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}

	return sessions, rows.Err()
}

// Delete deletes a session and its moves (cascading). It reports whether a
// session was removed.
func (r *SessionRepository) Delete(sessionID string) (bool, error) {
	result, err := r.db.Exec("DELETE FROM sessions WHERE session_id = ?", sessionID)
	if err != nil {
		return false, fmt.Errorf("failed to delete session: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get deleted rows: %w", err)
	}
	return n > 0, nil
}

// Count returns the number of stored sessions.
func (r *SessionRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count sessions: %w", err)
	}
	return count, nil
}
