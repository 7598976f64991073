package bitrange

import (
	radix "github.com/akmistry/go-util/radix-tree"
	"github.com/pkg/errors"
)

// spanItem indexes one root span of a one-dimensional map by its biased
// lower bound.
type spanItem struct {
	lo, hi int64
}

func (e *spanItem) Key() uint64 {
	return biasKey(e.lo)
}

// biasKey maps int64 onto uint64 preserving order.
func biasKey(v int64) uint64 {
	return uint64(v) ^ (1 << 63)
}

// PointIndex answers point queries against a one-dimensional integer map
// in logarithmic time, without walking the root list. The index is a
// snapshot: it does not follow later operations on the map.
type PointIndex struct {
	tree radix.Tree
}

// NewPointIndex builds an index over the spans of m. Only one-dimensional
// maps can be indexed.
func NewPointIndex(m RangeMap[int64]) (*PointIndex, error) {
	if !m.Empty() && m.Dimension() != 1 {
		return nil, errors.Wrapf(ErrNonComparable, "cannot point-index a dimension-%d map", m.Dimension())
	}
	idx := &PointIndex{}
	for _, n := range m.roots {
		item := &spanItem{lo: n.span.Lower(), hi: n.span.Upper()}
		if old := idx.tree.ReplaceOrInsert(item); old != nil {
			log.Panicf("duplicate span entry: %+v", old)
		}
	}
	return idx, nil
}

// Begin returns the lowest covered value.
func (idx *PointIndex) Begin() (begin int64, ok bool) {
	idx.tree.Ascend(func(i radix.Item) bool {
		begin = i.(*spanItem).lo
		ok = true
		return false
	})
	return
}

// End returns the highest covered value.
func (idx *PointIndex) End() (end int64, ok bool) {
	idx.tree.Descend(func(i radix.Item) bool {
		end = i.(*spanItem).hi
		ok = true
		return false
	})
	return
}

// Contains reports whether v is covered.
func (idx *PointIndex) Contains(v int64) bool {
	found := false
	idx.tree.DescendLessOrEqualI(biasKey(v), func(i radix.Item) bool {
		e := i.(*spanItem)
		found = e.lo <= v && v <= e.hi
		return false
	})
	return found
}

// NextOccupied returns the smallest covered value at or above v.
func (idx *PointIndex) NextOccupied(v int64) (next int64, ok bool) {
	if idx.Contains(v) {
		return v, true
	}
	idx.tree.AscendGreaterOrEqualI(biasKey(v), func(i radix.Item) bool {
		next = i.(*spanItem).lo
		ok = true
		return false
	})
	return
}

// NextFree returns the smallest uncovered value at or above v. Spans of a
// canonical map are coalesced, so the value one past a span's upper bound
// is always free.
func (idx *PointIndex) NextFree(v int64) int64 {
	next := v
	idx.tree.DescendLessOrEqualI(biasKey(v), func(i radix.Item) bool {
		e := i.(*spanItem)
		if e.lo <= v && v <= e.hi {
			next = e.hi + 1
		}
		return false
	})
	return next
}
