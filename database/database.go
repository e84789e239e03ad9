package database

import (
	"errors"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_errors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// LevelDB is a persistent SolutionStore.
type LevelDB struct {
	db *leveldb.DB
}

func options() *opt.Options {
	return &opt.Options{
		Filter: filter.NewBloomFilter(10),
	}
}

// NewLevelDB opens (or creates) the database at path, recovering it if the
// manifest is corrupted.
func NewLevelDB(path string) (*LevelDB, error) {
	db, err := leveldb.OpenFile(path, options())
	if err != nil {
		if ldb_errors.IsCorrupted(err) {
			db, err = leveldb.RecoverFile(path, options())
		}
		if err != nil {
			return nil, err
		}
	}
	return &LevelDB{db: db}, nil
}

// NewMemoryLevelDB is backed by in-memory storage and forgets everything
// on Close.
func NewMemoryLevelDB() (*LevelDB, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), options())
	if err != nil {
		return nil, err
	}
	return &LevelDB{db: db}, nil
}

// Get returns nil, nil for a missing key.
func (ldb *LevelDB) Get(key []byte) ([]byte, error) {
	value, err := ldb.db.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, nil
	}
	return value, err
}

func (ldb *LevelDB) Put(key []byte, value []byte) error {
	return ldb.db.Put(key, value, nil)
}

func (ldb *LevelDB) Delete(key []byte) error {
	return ldb.db.Delete(key, nil)
}

// DeletePrefix removes every key starting with prefix in one batch.
func (ldb *LevelDB) DeletePrefix(prefix []byte) (int, error) {
	iter := ldb.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer iter.Release()
	batch := new(leveldb.Batch)
	for iter.Next() {
		// The iterator reuses its key buffer.
		key := make([]byte, len(iter.Key()))
		copy(key, iter.Key())
		batch.Delete(key)
	}
	if err := iter.Error(); err != nil {
		return 0, err
	}
	return batch.Len(), ldb.db.Write(batch, nil)
}

// Count returns the number of keys starting with prefix.
func (ldb *LevelDB) Count(prefix []byte) (int, error) {
	iter := ldb.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer iter.Release()
	n := 0
	for iter.Next() {
		n++
	}
	return n, iter.Error()
}

func (ldb *LevelDB) Close() error {
	return ldb.db.Close()
}
