// Package statefile persists small named JSON records under the client
// state directory. It is the durable-storage analogue this client uses for
// everything a browser would keep in local storage: the cart record and the
// admin session record.
//
// Records are written atomically (temp file + rename) so a crash mid-write
// never leaves a truncated record behind.
//
//	store, _ := statefile.New(config.StateDir())
//	_ = store.Put("cart", items)
//
//	var items []models.CartItem
//	ok, _ := store.Get("cart", &items)
package statefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrBadName rejects record names that would escape the state directory.
var ErrBadName = errors.New("statefile: record name must be a bare name")

// Store reads and writes named JSON records inside a single directory.
type Store struct {
	dir string
	mu  sync.Mutex
}

// New creates the state directory if needed and returns a Store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("statefile: create %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Put marshals v and writes it under name, replacing any previous record.
func (s *Store) Put(name string, v interface{}) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("statefile: marshal %s: %w", name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("statefile: write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("statefile: commit %s: %w", name, err)
	}
	return nil
}

// Get unmarshals the record into dest. Returns false when no record exists.
func (s *Store) Get(name string, dest interface{}) (bool, error) {
	path, err := s.path(name)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	data, err := os.ReadFile(path)
	s.mu.Unlock()

	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("statefile: read %s: %w", name, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("statefile: decode %s: %w", name, err)
	}
	return true, nil
}

// Delete removes the record. Deleting a missing record is not an error.
func (s *Store) Delete(name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("statefile: delete %s: %w", name, err)
	}
	return nil
}

// Dir returns the directory this store writes into.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", ErrBadName
	}
	return filepath.Join(s.dir, name+".json"), nil
}
