package bitrange

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/pkg/errors"
)

// BitMask is a dense occupancy view of a one-dimensional integer map: one
// bit per point, biased so the lowest covered value is bit zero. Netlist
// tooling uses it to hand bit-level occupancy to consumers that want a
// flat vector rather than a symbolic range.
type BitMask struct {
	base int64
	bits *bitset.BitSet
}

// NewBitMask rasterizes a one-dimensional map. The map's total extent
// must be small enough to materialize one bit per point.
func NewBitMask(m RangeMap[int64]) (*BitMask, error) {
	if m.Empty() {
		return &BitMask{bits: bitset.New(0)}, nil
	}
	if m.Dimension() != 1 {
		return nil, errors.Wrapf(ErrNonComparable, "cannot rasterize a dimension-%d map", m.Dimension())
	}
	base := m.roots[len(m.roots)-1].span.Lower()
	top := m.roots[0].span.Upper()
	mask := &BitMask{
		base: base,
		bits: bitset.New(uint(top - base + 1)),
	}
	for _, n := range m.roots {
		for v := n.span.Lower(); v <= n.span.Upper(); v++ {
			mask.bits.Set(uint(v - base))
		}
	}
	return mask, nil
}

// Base returns the value represented by bit zero.
func (b *BitMask) Base() int64 {
	return b.base
}

// Count returns the number of covered points.
func (b *BitMask) Count() uint {
	return b.bits.Count()
}

// Test reports whether v is covered.
func (b *BitMask) Test(v int64) bool {
	if v < b.base {
		return false
	}
	return b.bits.Test(uint(v - b.base))
}

// Map converts the mask back into a canonical one-dimensional map by
// scanning set-bit runs. Runs are separated by clear bits, so the result
// is already sorted, disjoint and coalesced.
func (b *BitMask) Map() RangeMap[int64] {
	var nodes []mapNode[int64]
	for i, ok := b.bits.NextSet(0); ok; {
		end, found := b.bits.NextClear(i)
		if !found {
			// The tail of the vector is all ones.
			end = b.bits.Len()
		}
		span := New(b.base+int64(end)-1, b.base+int64(i))
		nodes = append(nodes, mapNode[int64]{span: span})
		i, ok = b.bits.NextSet(end)
	}
	// Runs were found in ascending order.
	for l, r := 0, len(nodes)-1; l < r; l, r = l+1, r-1 {
		nodes[l], nodes[r] = nodes[r], nodes[l]
	}
	return wrapNodes(nodes, 1)
}
