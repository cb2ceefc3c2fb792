// Package recorder keeps an interactive cubeless session alive across runs
// and archives finished attempts.
package recorder

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/SeamusWaldron/cubeless"
)

// AppState represents the persistent application state.
type AppState struct {
	Session       *cubeless.Snapshot `json:"session,omitempty"`
	StartFacelets string             `json:"start_facelets,omitempty"`
	StartedAt     time.Time          `json:"started_at,omitempty"`
}

// StateFile manages the application state file.
type StateFile struct {
	path  string
	state AppState
}

// DefaultStatePath returns the default state file path.
func DefaultStatePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, ".cubeless")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(dir, "state.json"), nil
}

// NewStateFile creates a state file manager, loading the file if it exists.
func NewStateFile(path string) (*StateFile, error) {
	sf := &StateFile{path: path}

	if err := sf.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return sf, nil
}

// NewDefaultStateFile creates a state file manager with the default path.
func NewDefaultStateFile() (*StateFile, error) {
	path, err := DefaultStatePath()
	if err != nil {
		return nil, err
	}
	return NewStateFile(path)
}

// Path returns the state file path.
func (sf *StateFile) Path() string {
	return sf.path
}

// Load loads the state from disk.
func (sf *StateFile) Load() error {
	data, err := os.ReadFile(sf.path)
	if err != nil {
		return err
	}

	var state AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("failed to parse state file %s: %w", sf.path, err)
	}
	sf.state = state
	return nil
}

// Save saves the state to disk.
func (sf *StateFile) Save() error {
	data, err := json.MarshalIndent(sf.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(sf.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	if err := os.WriteFile(sf.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}

// State returns the current state.
func (sf *StateFile) State() AppState {
	return sf.state
}

// HasSession returns true if a session was saved.
func (sf *StateFile) HasSession() bool {
	return sf.state.Session != nil
}

// SetSession stores the session snapshot and attempt start.
func (sf *StateFile) SetSession(snap cubeless.Snapshot, startFacelets string, startedAt time.Time) error {
	sf.state.Session = &snap
	sf.state.StartFacelets = startFacelets
	sf.state.StartedAt = startedAt
	return sf.Save()
}

// ClearSession forgets the saved session.
func (sf *StateFile) ClearSession() error {
	sf.state = AppState{}
	return sf.Save()
}
