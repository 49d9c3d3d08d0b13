// Package prefs persists small string preferences across runs.
//
// Three backends share the Store interface: a JSON file written
// atomically (the default), a SQLite database, and an in-memory map used
// when persistence is disabled or unavailable.
package prefs

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("prefs: store closed")

// Store is a string key-value store.
type Store interface {
	// Get returns the value for key. ok is false if the key is unset.
	Get(key string) (value string, ok bool, err error)
	// Set stores value under key.
	Set(key, value string) error
	// Close releases the store's resources.
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Open returns the store for backend rooted in dir.
func Open(backend, dir string) (Store, error) {
	switch strings.ToLower(backend) {
	case "", BackendFile:
		return NewFileStore(filepath.Join(dir, "prefs.json"))
	case BackendSQLite:
		return NewSQLiteStore(filepath.Join(dir, "prefs.db"))
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("prefs: unknown backend %q (want file, sqlite or memory)", backend)
	}
}

// Memory is an in-memory Store.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get implements Store.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements Store.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Close implements Store.
func (m *Memory) Close() error { return nil }
