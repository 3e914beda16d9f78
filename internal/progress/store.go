package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store persists a State as a single JSON file. Every save is a complete
// overwrite through a temp file and rename, so a crash mid-write leaves the
// previous fully-saved state in place.
type Store struct {
	path string
}

// NewStore creates a store for the given file path, creating the parent
// directory if needed.
func NewStore(path string) (*Store, error) {
	if err := EnsureDir(path); err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}
	return &Store{path: path}, nil
}

// Path returns the backing file path.
func (st *Store) Path() string {
	return st.path
}

// Load reads the persisted state. An absent file yields a fresh empty state;
// structurally invalid content is an error the caller treats as fatal.
func (st *Store) Load() (*State, error) {
	raw, err := os.ReadFile(st.path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read progress: %w", err)
	}

	var s State
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse progress %s: %w", st.path, err)
	}
	s.normalize()
	return &s, nil
}

// Save writes the full state atomically.
func (st *Store) Save(s *State) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(st.path)
	tmp, err := os.CreateTemp(dir, ".progress-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write progress: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, st.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename progress: %w", err)
	}
	return nil
}

// Delete removes the persisted state file. Missing files are not an error.
func (st *Store) Delete() error {
	err := os.Remove(st.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// DefaultStatePath resolves the progress file path in priority order:
// 1. NORLEARN_DATA environment variable
// 2. $XDG_DATA_HOME/norlearn/progress.json
// 3. ~/.local/share/norlearn/progress.json
func DefaultStatePath() (string, error) {
	if p := os.Getenv("NORLEARN_DATA"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "norlearn", "progress.json"), nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
