// Package prefs persists small user preferences (such as the preferred package
// manager) in a JSON file so they survive between runs.
package prefs

import (
	"encoding/json" // For JSON encoding and decoding of the preference file
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"create-starter/internal/logger"
	"github.com/spf13/afero"
)

// Store is the key-value contract the rest of the tool depends on.
type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(key string) (string, bool)
	// Set stores value under key and persists it.
	Set(key, value string) error
}

// FileStore is a Store backed by a JSON object on disk.
// Reads are served from memory; every Set rewrites the whole file.
type FileStore struct {
	fs     afero.Fs
	path   string
	mu     sync.RWMutex
	values map[string]string
}

// Open loads the preference file at path.
// If the file does not exist or cannot be parsed, it returns an empty store;
// the file is created on the first Set.
func Open(fsys afero.Fs, path string) *FileStore {
	s := &FileStore{fs: fsys, path: path, values: make(map[string]string)}

	// Read entire preference file into memory
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		logger.Debug("[DEBUG] No preference file at %s: %v\n", path, err)
		return s
	}

	// A corrupt file is treated like a missing one rather than blocking the run
	if err := json.Unmarshal(data, &s.values); err != nil {
		logger.Warn("[WARN] Ignoring unreadable preference file %s: %v\n", path, err)
		s.values = make(map[string]string)
	}
	if s.values == nil {
		s.values = make(map[string]string)
	}

	return s
}

// Path returns the file backing the store.
func (s *FileStore) Path() string {
	return s.path
}

// Get returns the value stored under key.
func (s *FileStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key and writes the store back to disk.
// The in-memory value is kept even if the write fails.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return s.save()
}

// save writes the preferences as indented JSON, creating parent directories as needed.
func (s *FileStore) save() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}

	logger.Debug("[DEBUG] Writing preferences to %s:\n%s\n", s.path, string(data))

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create preference directory: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, data, os.FileMode(0o644)); err != nil {
		return fmt.Errorf("write preference file %s: %w", s.path, err)
	}
	return nil
}
