// Package store persists the shell's application data.
package store

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

var keyLastURL = []byte("nav:last_url")

// Store is a badger-backed key-value store for shell data.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) the store at path. An empty path opens an
// in-memory store.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// LastURL returns the last recorded navigation URL.
func (s *Store) LastURL() (string, bool, error) {
	var out string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(keyLastURL)
		if err != nil {
			return err
		}
		v, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		out = string(v)
		return nil
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get last url: %w", err)
	}
	return out, true, nil
}

// SetLastURL records u as the last navigation URL.
func (s *Store) SetLastURL(u string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(keyLastURL, []byte(u))
	})
	if err != nil {
		return fmt.Errorf("set last url: %w", err)
	}
	return nil
}

// Clear drops all stored data.
func (s *Store) Clear() error {
	if err := s.db.DropAll(); err != nil {
		return fmt.Errorf("drop all: %w", err)
	}
	return nil
}
