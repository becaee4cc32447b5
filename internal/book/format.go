// Package book implements the opening-book collaborator described in the
// external interfaces section: a read-only on-disk lookup keyed by the
// mirror-symmetric position key, plus a badger-backed cache the CLI can
// use as an early-exit before calling the solver. The core solver package
// never imports this one.
package book

import (
	"encoding/binary"
	"io"

	"github.com/connect4lab/solver/internal/ttable"
)

// headerSize is the fixed 6-byte header: W, H, maxDepth, keyBytes,
// valueBytes, logSize, each a single byte.
const headerSize = 6

// Header is the on-disk book file header.
type Header struct {
	W          byte
	H          byte
	MaxDepth   byte
	KeyBytes   byte
	ValueBytes byte
	LogSize    byte
}

// partialTable is satisfied by ttable.SplitTable[K] for every valid
// partial-key width; File holds one without naming K so the width chosen
// by the header (read at runtime, not compile time) can be any of them.
type partialTable interface {
	Get(key uint64) (int8, bool)
}

// Entry is one (key, score) pair recovered from a book file, used by
// Store.Preload to bulk-load a badger cache without re-deriving keys
// from the hash layout.
type Entry struct {
	Key   uint64
	Value int8
}

// File is a loaded, read-only opening book.
type File struct {
	Header  Header
	size    uint64
	table   partialTable
	entries []Entry
}

// Load parses a book file per the header layout above: a 6-byte header
// followed by size = nextPrime(2^logSize) partial keys, then size 8-bit
// signed values. Load rejects a keyBytes/valueBytes combination outside
// {1,2,4} / {1}, per the valid-combinations constraint.
func Load(r io.Reader) (*File, error) {
	var raw [headerSize]byte
	n, err := io.ReadFull(r, raw[:])
	if err != nil && n < headerSize {
		return nil, ShortHeader{Actual: n}
	}

	h := Header{
		W:          raw[0],
		H:          raw[1],
		MaxDepth:   raw[2],
		KeyBytes:   raw[3],
		ValueBytes: raw[4],
		LogSize:    raw[5],
	}

	if h.ValueBytes != 1 {
		return nil, InvalidValueWidth{ValueBytes: h.ValueBytes}
	}

	size := ttable.NextPrime(uint64(1) << uint(h.LogSize))

	switch h.KeyBytes {
	case 1:
		table, entries, err := loadSplit[uint8](r, size)
		if err != nil {
			return nil, err
		}
		return &File{Header: h, size: size, table: table, entries: entries}, nil
	case 2:
		table, entries, err := loadSplit[uint16](r, size)
		if err != nil {
			return nil, err
		}
		return &File{Header: h, size: size, table: table, entries: entries}, nil
	case 4:
		table, entries, err := loadSplit[uint32](r, size)
		if err != nil {
			return nil, err
		}
		return &File{Header: h, size: size, table: table, entries: entries}, nil
	default:
		return nil, InvalidKeyWidth{KeyBytes: h.KeyBytes}
	}
}

func loadSplit[K ttable.PartialKey](r io.Reader, size uint64) (*ttable.SplitTable[K], []Entry, error) {
	keyWidth := 0
	switch any(K(0)).(type) {
	case uint8:
		keyWidth = 1
	case uint16:
		keyWidth = 2
	case uint32:
		keyWidth = 4
	}

	keyBytes := make([]byte, int(size)*keyWidth)
	if n, err := io.ReadFull(r, keyBytes); err != nil {
		return nil, nil, TruncatedFile{Expected: len(keyBytes), Actual: n}
	}

	valueBytes := make([]byte, size)
	if n, err := io.ReadFull(r, valueBytes); err != nil {
		return nil, nil, TruncatedFile{Expected: len(valueBytes), Actual: n}
	}

	table := ttable.NewSplitTableSized[K](size)
	var entries []Entry
	for i := uint64(0); i < size; i++ {
		value := int8(valueBytes[i])
		if value == 0 {
			continue
		}
		var key uint64
		switch keyWidth {
		case 1:
			key = uint64(keyBytes[i])
		case 2:
			key = uint64(binary.LittleEndian.Uint16(keyBytes[i*2 : i*2+2]))
		case 4:
			key = uint64(binary.LittleEndian.Uint32(keyBytes[i*4 : i*4+4]))
		}
		table.PutAt(i, key, value)
		entries = append(entries, Entry{Key: key, Value: value})
	}

	return table, entries, nil
}

// Get returns the stored offset score for the book key, or (0, false) if
// absent. The caller is expected to derive key from Position.Key3.
func (f *File) Get(key uint64) (int8, bool) {
	return f.table.Get(key)
}

// Size reports the number of slots in the underlying table.
func (f *File) Size() uint64 { return f.size }

// Entries returns every stored (key, score) pair, for bulk-loading into
// a Store.
func (f *File) Entries() []Entry { return f.entries }
