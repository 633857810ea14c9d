package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	bolt "go.etcd.io/bbolt"

	"github.com/fsdcoach/fsd-coach/internal/domain"
)

const bucketName = "imports"

// Dir is the cache directory relative to the project root.
var Dir = filepath.Join(".fsd-coach", "cache")

type entry struct {
	Hash      uint64                   `json:"hash"`
	Imports   []domain.ImportStatement `json:"imports"`
	Timestamp int64                    `json:"timestamp"`
}

// Stats describes the cache database on disk.
type Stats struct {
	Entries   int   `json:"entries"`
	SizeBytes int64 `json:"size_bytes"`
}

// Store is a bbolt-backed implementation of domain.ExtractionCache. Entries
// are validated against an xxhash of the file content, so a touched but
// unchanged file still hits.
type Store struct {
	db   *bolt.DB
	path string
}

// Open opens or creates the cache database of a project.
func Open(projectPath string) (*Store, error) {
	dir := filepath.Join(projectPath, Dir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	path := filepath.Join(dir, "imports.db")
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening cache %s: %w", path, err)
	}
	return &Store{db: db, path: path}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the imports stored under key if they were extracted from
// content.
func (s *Store) Get(key string, content []byte) ([]domain.ImportStatement, bool) {
	current := xxhash.Sum64(content)

	var e entry
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return bolt.ErrBucketNotFound
		}
		data := bucket.Get([]byte(key))
		if data == nil {
			return bolt.ErrBucketNotFound
		}
		return json.Unmarshal(data, &e)
	})
	if err != nil || e.Hash != current {
		return nil, false
	}
	return e.Imports, true
}

// Set stores imports under key together with the hash of the content they
// were extracted from. Safe for concurrent use; concurrent writers are batched.
func (s *Store) Set(key string, imports []domain.ImportStatement, content []byte) error {
	data, err := json.Marshal(entry{Hash: xxhash.Sum64(content), Imports: imports, Timestamp: time.Now().Unix()})
	if err != nil {
		return err
	}

	return s.db.Batch(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		if err != nil {
			return err
		}
		return bucket.Put([]byte(key), data)
	})
}

// Invalidate removes the entry stored under key.
func (s *Store) Invalidate(key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		if bucket == nil {
			return nil
		}
		return bucket.Delete([]byte(key))
	})
}

// Clear removes every entry.
func (s *Store) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		err := tx.DeleteBucket([]byte(bucketName))
		if errors.Is(err, bolt.ErrBucketNotFound) {
			return nil
		}
		return err
	})
}

// Stats counts the entries and reports the database file size.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	err := s.db.View(func(tx *bolt.Tx) error {
		st.SizeBytes = tx.Size()
		if bucket := tx.Bucket([]byte(bucketName)); bucket != nil {
			st.Entries = bucket.Stats().KeyN
		}
		return nil
	})
	return st, err
}
