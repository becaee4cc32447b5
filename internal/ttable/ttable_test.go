package ttable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextPrimeOfPowerOf23(t *testing.T) {
	require.Equal(t, uint64(1<<23+9), NextPrime(1<<23))
}

func TestHasFactorBoundaries(t *testing.T) {
	n := uint64(17 * 97)
	assert.True(t, HasFactor(n, 2, 20))
	assert.False(t, HasFactor(n, 20, 80))
}

func TestTableRoundTrip(t *testing.T) {
	tbl := New(10) // small table for the test
	key := tbl.size + 5
	tbl.Put(key, 42)
	assert.EqualValues(t, 42, tbl.Get(key))
}

func TestTableGetOnUntouchedKeyIsZero(t *testing.T) {
	tbl := New(10)
	assert.EqualValues(t, 0, tbl.Get(123456))
}

func TestTableCollisionAlwaysReplaces(t *testing.T) {
	tbl := New(10)
	k1 := uint64(7)
	k2 := k1 + tbl.size // same slot, different key

	tbl.Put(k1, 11)
	tbl.Put(k2, 22)

	assert.EqualValues(t, 0, tbl.Get(k1), "k1 should have been evicted")
	assert.EqualValues(t, 22, tbl.Get(k2))
}

func TestTableResetClears(t *testing.T) {
	tbl := New(10)
	tbl.Put(99, 5)
	tbl.Reset()
	assert.EqualValues(t, 0, tbl.Get(99))
}

func TestSplitTableRoundTripAndTruncation(t *testing.T) {
	tbl := NewSplitTable[uint16](10)
	key := uint64(1234)
	tbl.Put(key, -7)
	v, ok := tbl.Get(key)
	require.True(t, ok)
	assert.EqualValues(t, -7, v)
}

func TestSplitTableCollisionAlwaysReplaces(t *testing.T) {
	tbl := NewSplitTable[uint8](10)
	k1 := uint64(3)
	k2 := k1 + tbl.Size()

	tbl.Put(k1, 1)
	tbl.Put(k2, 2)

	_, ok := tbl.Get(k1)
	assert.False(t, ok)
	v, ok := tbl.Get(k2)
	require.True(t, ok)
	assert.EqualValues(t, 2, v)
}
