package cache

import (
	"errors"

	"github.com/dgraph-io/badger/v4"
)

// ErrNotFound is returned when a cache entry doesn't exist.
var ErrNotFound = errors.New("cache entry not found")

// Store wraps Badger for cache operations.
type Store struct {
	db *badger.DB
}

// OpenStore opens or creates a cache store at the given path.
func OpenStore(path string) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Disable badger logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the store.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get retrieves a snapshot by repository path and commit hash.
func (s *Store) Get(repo, commit string) (*Snapshot, error) {
	key := MakeKey(repo, commit)
	var snap Snapshot

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(snap.Decode)
	})
	if err != nil {
		return nil, err
	}
	if snap.Version != CacheVersion {
		return nil, ErrNotFound
	}
	return &snap, nil
}

// Put stores a snapshot under the repository path and commit hash.
func (s *Store) Put(repo, commit string, snap *Snapshot) error {
	key := MakeKey(repo, commit)
	value, err := snap.Encode()
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

// Delete removes a snapshot from the store.
func (s *Store) Delete(repo, commit string) error {
	key := MakeKey(repo, commit)
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}
