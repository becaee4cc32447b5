package sorter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrdersDescendingByScore(t *testing.T) {
	s := New(0)
	s.Add(1, 3)
	s.Add(2, 7)
	s.Add(3, 1)
	s.Add(4, 5)

	var got []uint64
	for {
		m, ok := s.Next()
		if !ok {
			break
		}
		got = append(got, m)
	}

	assert.Equal(t, []uint64{2, 4, 1, 3}, got)
}

func TestTiesBreakLaterInsertedFirst(t *testing.T) {
	s := New(1)
	s.Add(10, 5)
	s.Add(20, 5)
	s.Add(30, 5)

	first, _ := s.Next()
	second, _ := s.Next()
	third, _ := s.Next()

	assert.Equal(t, uint64(30), first)
	assert.Equal(t, uint64(20), second)
	assert.Equal(t, uint64(10), third)
}

func TestEmptySorterSignalsDone(t *testing.T) {
	s := New(2)
	_, ok := s.Next()
	assert.False(t, ok)
}

func TestDistinctDepthsDoNotShareState(t *testing.T) {
	a := New(3)
	b := New(4)

	a.Add(1, 1)
	b.Add(2, 2)

	am, _ := a.Next()
	bm, _ := b.Next()

	assert.Equal(t, uint64(1), am)
	assert.Equal(t, uint64(2), bm)
}
