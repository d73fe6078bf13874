package store

import (
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

// Key prefixes for the logical collections. Every document lives under
// prefix+id; there are no join tables, references are embedded in the
// documents themselves.
const (
	userPrefix     = "user:"
	placePrefix    = "place:"
	playlistPrefix = "playlist:"
	adminPrefix    = "admin:"
)

// Sentinel errors returned by the typed collection operations.
var (
	// ErrUserNotFound is returned when a user is not found in the store.
	ErrUserNotFound = errors.New("user not found")
	// ErrPlaceNotFound is returned when a place is not found in the store.
	ErrPlaceNotFound = errors.New("place not found")
	// ErrPlaylistNotFound is returned when a playlist is not found in the store.
	ErrPlaylistNotFound = errors.New("playlist not found")
	// ErrAdminNotFound is returned when an admin is not found in the store.
	ErrAdminNotFound = errors.New("admin not found")
	// ErrDuplicateUser is returned when creating a user whose UID is taken.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrDuplicatePlace is returned when creating a place whose ID is taken.
	ErrDuplicatePlace = errors.New("place already exists")
	// ErrDuplicatePlaylist is returned when creating a playlist whose ID is taken.
	ErrDuplicatePlaylist = errors.New("playlist already exists")
	// ErrDuplicateAdmin is returned when creating an admin whose UID is taken.
	ErrDuplicateAdmin = errors.New("admin already exists")
)

// IsNotFound reports whether err is any of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrPlaceNotFound) ||
		errors.Is(err, ErrPlaylistNotFound) ||
		errors.Is(err, ErrAdminNotFound)
}

// DB is the Badger-backed document store. It implements Store.
//
// Collection handles are constructor-injected into the services rather than
// held as package globals; the DB is opened once at process start and closed
// at shutdown.
type DB struct {
	db     *badger.DB
	logger *slog.Logger
}

// Open opens (creating if needed) the document store at the given path.
func Open(path string, logger *slog.Logger) (*DB, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	if logger != nil {
		logger.Info("document store opened", "path", path)
	}

	return &DB{db: db, logger: logger}, nil
}

// Close gracefully closes the database.
func (s *DB) Close() error {
	if s.logger != nil {
		s.logger.Info("closing document store")
	}
	return s.db.Close()
}

// Helper methods for raw key operations.

// get retrieves and unmarshals a value by key.
func (s *DB) get(key []byte, dest any) error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, dest)
		})
	})
}

// set marshals and stores a value by key.
func (s *DB) set(key []byte, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

// delete removes a key from the database.
func (s *DB) delete(key []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

// exists checks if a key exists.
func (s *DB) exists(key []byte) (bool, error) {
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		return err
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
