//go:build !wasm

package sdk

import (
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"
)

var bucketState = []byte("state")

// BoltState persists contract kv state in a bbolt file so local harness runs
// survive restarts, standing in for host storage outside the chain.
type BoltState struct {
	db *bbolt.DB
}

var _ State = (*BoltState)(nil)

// OpenBoltState opens or creates the bbolt database at dbPath.
// The parent directory is created if it does not exist.
func OpenBoltState(dbPath string) (*BoltState, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("boltstate: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("boltstate: open bolt db: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketState)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("boltstate: create bucket: %w", err)
	}
	return &BoltState{db: db}, nil
}

// Close closes the underlying database.
func (s *BoltState) Close() error { return s.db.Close() }

func (s *BoltState) Set(key, value string) {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketState).Put([]byte(key), []byte(value))
	})
	if err != nil {
		panic(fmt.Sprintf("boltstate: put %q: %v", key, err))
	}
}

func (s *BoltState) Get(key string) *string {
	var out *string
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(bucketState).Get([]byte(key)); v != nil {
			str := string(v)
			out = &str
		}
		return nil
	})
	if err != nil {
		panic(fmt.Sprintf("boltstate: get %q: %v", key, err))
	}
	return out
}

func (s *BoltState) Delete(key string) {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketState).Delete([]byte(key))
	})
	if err != nil {
		panic(fmt.Sprintf("boltstate: delete %q: %v", key, err))
	}
}
