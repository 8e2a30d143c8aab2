// Package archive stores finished game records in a badger database.
package archive

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/nibblechess/internal/errors"
	"github.com/lgbarn/nibblechess/internal/game"
)

const (
	keyPrefix   = "game/"
	keySequence = "seq/game"

	// sequenceBandwidth is how many IDs are leased from the database at once.
	sequenceBandwidth = 64
)

// Store wraps BadgerDB for game records. It is safe for concurrent use.
type Store struct {
	db  *badger.DB
	seq *badger.Sequence
}

// Open opens or creates an archive in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	return open(opts)
}

// OpenInMemory opens an archive that lives only as long as the Store.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Store, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "open archive")
	}
	seq, err := db.GetSequence([]byte(keySequence), sequenceBandwidth)
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "open archive sequence")
	}
	return &Store{db: db, seq: seq}, nil
}

// Close releases unused IDs and closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	seqErr := s.seq.Release()
	if err := s.db.Close(); err != nil {
		return err
	}
	s.db = nil
	return seqErr
}

func gameKey(id uint64) []byte {
	return []byte(fmt.Sprintf("%s%020d", keyPrefix, id))
}

func parseGameKey(key []byte) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(string(key), keyPrefix), 10, 64)
}

// Save stores rec under a new archive ID and returns the ID. IDs increase
// across the lifetime of the database but may skip values.
func (s *Store) Save(rec *game.Record) (uint64, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return 0, errors.Wrap(err, "encode record")
	}
	n, err := s.seq.Next()
	if err != nil {
		return 0, errors.Wrap(err, "next archive id")
	}
	id := n + 1

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(id), data)
	})
	if err != nil {
		return 0, errors.Wrapf(err, "save game %d", id)
	}
	return id, nil
}

// Load returns the record stored under id, or ErrNotFound.
func (s *Store) Load(id uint64) (*game.Record, error) {
	rec := &game.Record{}
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("game %d: %w", id, errors.ErrNotFound)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, rec)
		})
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// List returns the stored IDs in increasing order.
func (s *Store) List() ([]uint64, error) {
	var ids []uint64
	err := s.scan(false, func(id uint64, _ *badger.Item) error {
		ids = append(ids, id)
		return nil
	})
	return ids, err
}

// Count returns the number of stored records.
func (s *Store) Count() (int, error) {
	n := 0
	err := s.scan(false, func(uint64, *badger.Item) error {
		n++
		return nil
	})
	return n, err
}

// ForEach calls fn for every stored record in ID order, stopping at the
// first error fn returns.
func (s *Store) ForEach(fn func(id uint64, rec *game.Record) error) error {
	return s.scan(true, func(id uint64, item *badger.Item) error {
		rec := &game.Record{}
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, rec)
		}); err != nil {
			return errors.Wrapf(err, "decode game %d", id)
		}
		return fn(id, rec)
	})
}

// Delete removes the record stored under id, or returns ErrNotFound.
func (s *Store) Delete(id uint64) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(gameKey(id)); err == badger.ErrKeyNotFound {
			return fmt.Errorf("game %d: %w", id, errors.ErrNotFound)
		} else if err != nil {
			return err
		}
		return txn.Delete(gameKey(id))
	})
}

func (s *Store) scan(values bool, fn func(id uint64, item *badger.Item) error) error {
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = values
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			id, err := parseGameKey(item.Key())
			if err != nil {
				return errors.Wrapf(err, "archive key %q", item.Key())
			}
			if err := fn(id, item); err != nil {
				return err
			}
		}
		return nil
	})
}
