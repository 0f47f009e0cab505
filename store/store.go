// Package store is the persistence layer: one JSON document holding every
// user, reference list and submission, read and written whole.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/khasmak/api/models"
)

// ErrStoreUnavailable wraps every failure of the backing file: missing,
// unreadable, unparseable or unwritable. Callers surface it as a generic
// storage failure; a failed operation never leaves a partially applied
// document.
var ErrStoreUnavailable = errors.New("document store unavailable")

// Store is the unit-of-persistence contract: the whole document is the unit
// of read and write. A transactional backend can replace FileStore behind
// this interface without touching call sites.
type Store interface {
	Load() (*models.Database, error)
	Save(*models.Database) error
}

// FileStore keeps the document in a single JSON file. There is no locking
// and no crash-consistency guarantee: concurrent writers race at
// whole-document granularity and the last save wins. Accepted for the
// expected handful of admin writers.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (s *FileStore) Load() (*models.Database, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrStoreUnavailable, s.Path, err)
	}
	var db models.Database
	if err := json.Unmarshal(raw, &db); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrStoreUnavailable, s.Path, err)
	}
	return &db, nil
}

func (s *FileStore) Save(db *models.Database) error {
	raw, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrStoreUnavailable, err)
	}
	if err := os.WriteFile(s.Path, raw, 0644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrStoreUnavailable, s.Path, err)
	}
	return nil
}
