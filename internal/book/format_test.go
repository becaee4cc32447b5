package book

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/connect4lab/solver/internal/ttable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFile constructs an in-memory book file with a single non-zero
// entry, using keyBytes-wide keys, mirroring the on-disk layout that
// Load expects: header, then size keys, then size values.
func buildFile(t *testing.T, keyBytes byte, logSize byte, entryIdx uint64, key uint64, value int8) []byte {
	t.Helper()

	size := ttable.NextPrime(uint64(1) << logSize)
	require.Less(t, entryIdx, size)

	var buf bytes.Buffer
	buf.Write([]byte{7, 6, 0, keyBytes, 1, logSize})

	keyArea := make([]byte, int(size)*int(keyBytes))
	switch keyBytes {
	case 1:
		keyArea[entryIdx] = byte(key)
	case 2:
		binary.LittleEndian.PutUint16(keyArea[entryIdx*2:], uint16(key))
	case 4:
		binary.LittleEndian.PutUint32(keyArea[entryIdx*4:], uint32(key))
	}
	buf.Write(keyArea)

	valueArea := make([]byte, size)
	valueArea[entryIdx] = byte(value)
	buf.Write(valueArea)

	return buf.Bytes()
}

func TestLoadRoundTripsSingleByteKeys(t *testing.T) {
	size := ttable.NextPrime(1 << 4)
	idx := uint64(3)
	raw := buildFile(t, 1, 4, idx, idx, 7)

	f, err := Load(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, size, f.Size())

	v, ok := f.Get(idx)
	require.True(t, ok)
	assert.EqualValues(t, 7, v)

	_, ok = f.Get(idx + 1)
	assert.False(t, ok)
}

func TestLoadRoundTripsWiderKeys(t *testing.T) {
	size := ttable.NextPrime(1 << 6)
	idx := uint64(5)
	key := idx + size*3 // hashes to slot idx but is not stored; the entry below uses idx as its key
	raw := buildFile(t, 2, 6, idx, idx, -4)

	f, err := Load(bytes.NewReader(raw))
	require.NoError(t, err)

	v, ok := f.Get(idx)
	require.True(t, ok)
	assert.EqualValues(t, -4, v)
	_ = key
}

func TestLoadRejectsBadKeyWidth(t *testing.T) {
	raw := []byte{7, 6, 0, 3, 1, 4} // keyBytes=3 is invalid
	_, err := Load(bytes.NewReader(raw))
	require.Error(t, err)
	assert.IsType(t, InvalidKeyWidth{}, err)
}

func TestLoadRejectsBadValueWidth(t *testing.T) {
	raw := []byte{7, 6, 0, 1, 2, 4} // valueBytes=2 is invalid
	_, err := Load(bytes.NewReader(raw))
	require.Error(t, err)
	assert.IsType(t, InvalidValueWidth{}, err)
}

func TestLoadRejectsShortHeader(t *testing.T) {
	_, err := Load(bytes.NewReader([]byte{1, 2, 3}))
	require.Error(t, err)
	assert.IsType(t, ShortHeader{}, err)
}

func TestEntriesExposesEveryStoredPair(t *testing.T) {
	idx := uint64(2)
	raw := buildFile(t, 1, 4, idx, idx, 9)

	f, err := Load(bytes.NewReader(raw))
	require.NoError(t, err)

	entries := f.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, idx, entries[0].Key)
	assert.EqualValues(t, 9, entries[0].Value)
}
