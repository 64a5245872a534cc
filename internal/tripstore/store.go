// Package tripstore persists, on the local device, the id of the trip the
// user is planning. It is backed by a single-file BoltDB database.
package tripstore

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"
)

const (
	tripBucket = "trip"
	tripIDKey  = "current_trip_id"
)

// Store is a BoltDB-backed store holding at most one trip id.
type Store struct {
	db *bbolt.DB
}

// Open opens the store at path, creating the file if needed.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("tripstore.Open: path is required")
	}

	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("tripstore.Open: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(tripBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("tripstore.Open: create bucket: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save replaces the stored trip id.
func (s *Store) Save(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if id == uuid.Nil {
		return errors.New("tripstore.Store.Save: trip id is required")
	}
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(tripBucket)).Put([]byte(tripIDKey), []byte(id.String()))
	})
	if err != nil {
		return fmt.Errorf("tripstore.Store.Save: %w", err)
	}
	return nil
}

// Get returns the stored trip id. The bool is false when nothing is stored.
func (s *Store) Get(ctx context.Context) (uuid.UUID, bool, error) {
	if err := ctx.Err(); err != nil {
		return uuid.Nil, false, err
	}
	var raw string
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket([]byte(tripBucket)).Get([]byte(tripIDKey)); v != nil {
			raw = string(v)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("tripstore.Store.Get: %w", err)
	}
	if raw == "" {
		return uuid.Nil, false, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("tripstore.Store.Get: stored id %q: %w", raw, err)
	}
	return id, true, nil
}

// Clear forgets the stored trip id. Clearing an empty store is not an error.
func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(tripBucket)).Delete([]byte(tripIDKey))
	})
	if err != nil {
		return fmt.Errorf("tripstore.Store.Clear: %w", err)
	}
	return nil
}
