package book

import (
	"encoding/binary"

	"github.com/dgraph-io/badger/v4"
)

// Store is an embedded key-value cache mapping a position's Key3 to a
// precomputed score, following the same open-then-View/Update shape as
// other badger-backed caches in the pack. It fulfils the "optionally
// preload a map from position-key to precomputed score" collaborator
// contract: a caller checks Store before calling the solver and writes
// back whatever it computes, so repeated CLI invocations over
// overlapping openings warm the cache.
type Store struct {
	db *badger.DB

	// MaxDepth is the deepest book file (by its header's MaxDepth field)
	// that Preload accepts; set from the constructor rather than passed
	// per call. Lookup and Store do not consult it.
	MaxDepth int
}

// Open opens (creating if absent) a badger store rooted at dir.
func Open(dir string, maxDepth int) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db, MaxDepth: maxDepth}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Lookup returns the cached score for key and true, or (0, false) on a
// cache miss.
func (s *Store) Lookup(key uint64) (int, bool) {
	var score int
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(encodeKey(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			if len(val) < 8 {
				return nil
			}
			score = int(int64(binary.LittleEndian.Uint64(val)))
			found = true
			return nil
		})
	})
	if err != nil {
		return 0, false
	}

	return score, found
}

// Store writes score for key, overwriting any existing entry.
func (s *Store) Store(key uint64, score int) error {
	val := make([]byte, 8)
	binary.LittleEndian.PutUint64(val, uint64(int64(score)))

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(encodeKey(key), val)
	})
}

// Preload bulk-loads every entry of a read-only on-disk File into the
// store, skipping entries whose depth (inferred from the file's
// MaxDepth header field) exceeds s.MaxDepth.
func (s *Store) Preload(f *File) error {
	if int(f.Header.MaxDepth) > s.MaxDepth {
		return nil
	}

	return s.db.Update(func(txn *badger.Txn) error {
		for _, e := range f.Entries() {
			val := make([]byte, 8)
			binary.LittleEndian.PutUint64(val, uint64(int64(e.Value)))
			if err := txn.Set(encodeKey(e.Key), val); err != nil {
				return err
			}
		}
		return nil
	})
}

func encodeKey(key uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, key)
	return b
}
