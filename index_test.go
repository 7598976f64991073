package bitrange

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randMapInt64(rnd *rand.Rand, boxes int) RangeMap[int64] {
	var m RangeMap[int64]
	for i := 0; i < boxes; i++ {
		lo := int64(rnd.Intn(200) - 100)
		m = m.AddBox(BoxOf([2]int64{lo + int64(rnd.Intn(20)), lo}))
	}
	return m
}

func TestPointIndexEmpty(t *testing.T) {
	idx, err := NewPointIndex(RangeMap[int64]{})
	require.NoError(t, err)
	_, ok := idx.Begin()
	assert.False(t, ok)
	_, ok = idx.End()
	assert.False(t, ok)
	assert.False(t, idx.Contains(0))
	_, ok = idx.NextOccupied(0)
	assert.False(t, ok)
	assert.Equal(t, int64(7), idx.NextFree(7))
}

func TestPointIndexDimension(t *testing.T) {
	m := MapOfBox(BoxOf([2]int64{3, 0}, [2]int64{12, -5}))
	_, err := NewPointIndex(m)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonComparable))
}

func TestPointIndexBeginEnd(t *testing.T) {
	m := MapOf(New[int64](10, -3)).Union(MapOf(New[int64](50, 40)))
	idx, err := NewPointIndex(m)
	require.NoError(t, err)
	begin, ok := idx.Begin()
	assert.True(t, ok)
	assert.Equal(t, int64(-3), begin)
	end, ok := idx.End()
	assert.True(t, ok)
	assert.Equal(t, int64(50), end)
}

func TestPointIndexLookups(t *testing.T) {
	rnd := rand.New(rand.NewSource(6))
	for i := 0; i < 50; i++ {
		m := randMapInt64(rnd, 5)
		idx, err := NewPointIndex(m)
		require.NoError(t, err)
		for v := int64(-110); v <= 130; v++ {
			if idx.Contains(v) != m.Contains(v) {
				t.Fatalf("Contains(%d) disagrees with map %s", v, m)
			}

			// Linear reference for the next covered value.
			wantNext, wantOK := int64(0), false
			for u := v; u <= 130; u++ {
				if m.Contains(u) {
					wantNext, wantOK = u, true
					break
				}
			}
			next, ok := idx.NextOccupied(v)
			if ok != wantOK || (ok && next != wantNext) {
				t.Fatalf("NextOccupied(%d) = (%d, %v), want (%d, %v) for %s",
					v, next, ok, wantNext, wantOK, m)
			}

			free := idx.NextFree(v)
			if m.Contains(free) || free < v {
				t.Fatalf("NextFree(%d) = %d still covered in %s", v, free, m)
			}
			for u := v; u < free; u++ {
				if !m.Contains(u) {
					t.Fatalf("NextFree(%d) = %d skipped free value %d in %s", v, free, u, m)
				}
			}
		}
	}
}
