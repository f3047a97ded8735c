// Package prefs persists user preferences as a single JSON object on disk.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrInvalidKey indicates an empty preference key.
var ErrInvalidKey = errors.New("prefs: invalid key")

// Store reads and writes string preferences by key.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// FileStore persists preferences as a flat JSON object in one file.
// It is not safe for concurrent use across processes.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns the preferences file location under the user's
// config directory, or a relative fallback when none can be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".contacts", "prefs.json")
	}
	return filepath.Join(dir, "contacts", "prefs.json")
}

// Path returns the backing file path.
func (s *FileStore) Path() string { return s.path }

// Get returns the value stored under key.
// Returns (value, true, nil) if found, ("", false, nil) if not.
func (s *FileStore) Get(key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrInvalidKey
	}
	values, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// Set stores value under key, preserving other keys in the file.
func (s *FileStore) Set(key, value string) error {
	if key == "" {
		return ErrInvalidKey
	}
	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("prefs: creating directory: %w", err)
	}

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("prefs: marshaling: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("prefs: writing %s: %w", s.path, err)
	}
	return nil
}

// load reads the preference file. A missing or empty file yields an empty map.
func (s *FileStore) load() (map[string]string, error) {
	values := make(map[string]string)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return values, nil
		}
		return nil, fmt.Errorf("prefs: reading %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return values, nil
	}

	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("prefs: parsing %s: %w", s.path, err)
	}
	if values == nil {
		values = make(map[string]string)
	}
	return values, nil
}
