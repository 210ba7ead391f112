// Package settings persists the user-supplied catalog access key. The key is
// kept in a small JSON file under the gitignored local/ directory and is
// written atomically so a crash never leaves a truncated file behind.
package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store manages settings persisted to a JSON file.
type Store struct {
	mu       sync.RWMutex
	apiKey   string
	filePath string
}

// fileFormat is the JSON structure written to disk.
type fileFormat struct {
	TMDBAPIKey string `json:"tmdb_api_key,omitempty"` //nolint:gosec // persisted user setting
}

// New creates a Store backed by the given file. Existing data is loaded
// immediately; a missing file is an empty store.
func New(filePath string) (*Store, error) {
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("settings: resolve path: %w", err)
	}

	s := &Store{filePath: abs}
	if err := s.load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Path returns the backing file.
func (s *Store) Path() string { return s.filePath }

// APIKey returns the stored key, or "".
func (s *Store) APIKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.apiKey
}

// SetAPIKey stores key and persists the change. Surrounding whitespace is
// trimmed; an empty key clears the setting.
func (s *Store) SetAPIKey(key string) error {
	s.mu.Lock()
	s.apiKey = strings.TrimSpace(key)
	snap := fileFormat{TMDBAPIKey: s.apiKey}
	s.mu.Unlock()

	return s.persistSnapshot(snap)
}

// ClearAPIKey removes the stored key.
func (s *Store) ClearAPIKey() error { return s.SetAPIKey("") }

// ResolveAPIKey picks the key to use: a non-empty override (which is also
// persisted, so later runs keep it), then the stored key, then fallback.
func ResolveAPIKey(override string, store *Store, fallback string) (string, error) {
	if key := strings.TrimSpace(override); key != "" {
		if store != nil {
			if err := store.SetAPIKey(key); err != nil {
				return key, err
			}
		}
		return key, nil
	}

	if store != nil {
		if key := store.APIKey(); key != "" {
			return key, nil
		}
	}

	return strings.TrimSpace(fallback), nil
}

// Mask renders key for display, keeping only its last four characters.
func Mask(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 4 {
		return strings.Repeat("•", len(key))
	}
	return strings.Repeat("•", len(key)-4) + key[len(key)-4:]
}

// --- persistence ---

func (s *Store) load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return fmt.Errorf("settings: read file: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}

	var ff fileFormat
	if err := json.Unmarshal(trimmed, &ff); err != nil {
		return fmt.Errorf("settings: parse file: %w", err)
	}
	s.apiKey = ff.TMDBAPIKey

	return nil
}

// persistSnapshot writes ff to disk. It must be called outside the lock so
// that blocking I/O does not hold the mutex.
func (s *Store) persistSnapshot(ff fileFormat) error {
	data, err := json.MarshalIndent(ff, "", "  ")
	if err != nil {
		return fmt.Errorf("settings: marshal: %w", err)
	}

	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("settings: create dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".settings-*.tmp")
	if err != nil {
		return fmt.Errorf("settings: create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName) //nolint:gosec // tmpName comes from os.CreateTemp
		return fmt.Errorf("settings: write temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName) //nolint:gosec // tmpName comes from os.CreateTemp
		return fmt.Errorf("settings: close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.filePath); err != nil { //nolint:gosec // tmpName comes from os.CreateTemp
		_ = os.Remove(tmpName) //nolint:gosec // tmpName comes from os.CreateTemp
		return fmt.Errorf("settings: rename temp file: %w", err)
	}

	return nil
}
