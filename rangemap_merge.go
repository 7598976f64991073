package bitrange

import (
	"sort"
)

// The binary operations on maps share one skeleton: walk the two sorted,
// disjoint sibling lists head to head, three-way partition each pair of
// overlapping spans, handle the high and middle parts per operation, and
// write the low remainder back as the owning side's head so the rest of
// the walk sees sorted disjoint lists. Each walk works on shallow copies
// of the input slices; only the copied span fields are rewritten, child
// slices are shared read-only.

func copyNodes[T Value](nodes []mapNode[T]) []mapNode[T] {
	return append([]mapNode[T](nil), nodes...)
}

// ownsHigh reports whether the high partition part came from l rather
// than r: the side whose span reaches higher owns it.
func ownsHigh[T Value](l, r Interval[T]) bool {
	return l.Upper() > r.Upper()
}

// consumeLow writes the low remainder back onto the side reaching lower
// and advances the other side. With no remainder both sides advance.
func consumeLow[T Value](l, r []mapNode[T], li, ri *int, low Interval[T]) {
	if low.Empty() {
		*li++
		*ri++
		return
	}
	if l[*li].span.Lower() < r[*ri].span.Lower() {
		l[*li].span = low
		*ri++
	} else {
		r[*ri].span = low
		*li++
	}
}

func unionNodes[T Value](lhs, rhs []mapNode[T], level int) []mapNode[T] {
	l, r := copyNodes(lhs), copyNodes(rhs)
	out := make([]mapNode[T], 0, len(l)+len(r))
	li, ri := 0, 0
	for li < len(l) && ri < len(r) {
		ln, rn := &l[li], &r[ri]
		if ln.span.Disjoint(rn.span) {
			if rn.span.Less(ln.span) {
				out = append(out, *ln)
				li++
			} else {
				out = append(out, *rn)
				ri++
			}
			continue
		}
		high, mid, low := ln.span.Partition(rn.span)
		if !high.Empty() {
			owner := ln
			if !ownsHigh(ln.span, rn.span) {
				owner = rn
			}
			out = append(out, mapNode[T]{span: high, children: owner.children})
		}
		var mc []mapNode[T]
		if level > 1 {
			mc = unionNodes(ln.children, rn.children, level-1)
		}
		out = append(out, mapNode[T]{span: mid, children: mc})
		consumeLow(l, r, &li, &ri, low)
	}
	out = append(out, l[li:]...)
	out = append(out, r[ri:]...)
	return normalizeNodes(out, level)
}

func intersectNodes[T Value](lhs, rhs []mapNode[T], level int) []mapNode[T] {
	l, r := copyNodes(lhs), copyNodes(rhs)
	var out []mapNode[T]
	li, ri := 0, 0
	for li < len(l) && ri < len(r) {
		ln, rn := &l[li], &r[ri]
		if ln.span.Disjoint(rn.span) {
			// The greater head lies entirely above the rest of the
			// other list.
			if rn.span.Less(ln.span) {
				li++
			} else {
				ri++
			}
			continue
		}
		_, mid, low := ln.span.Partition(rn.span)
		if level > 1 {
			mc := intersectNodes(ln.children, rn.children, level-1)
			if len(mc) > 0 {
				out = append(out, mapNode[T]{span: mid, children: mc})
			}
		} else {
			out = append(out, mapNode[T]{span: mid})
		}
		consumeLow(l, r, &li, &ri, low)
	}
	return normalizeNodes(out, level)
}

func complementNodes[T Value](lhs, rhs []mapNode[T], level int) []mapNode[T] {
	l, r := copyNodes(lhs), copyNodes(rhs)
	var out []mapNode[T]
	li, ri := 0, 0
	for li < len(l) && ri < len(r) {
		ln, rn := &l[li], &r[ri]
		if ln.span.Disjoint(rn.span) {
			if rn.span.Less(ln.span) {
				out = append(out, *ln)
				li++
			} else {
				ri++
			}
			continue
		}
		high, mid, low := ln.span.Partition(rn.span)
		if !high.Empty() && ownsHigh(ln.span, rn.span) {
			out = append(out, mapNode[T]{span: high, children: ln.children})
		}
		if level > 1 {
			mc := complementNodes(ln.children, rn.children, level-1)
			if len(mc) > 0 {
				out = append(out, mapNode[T]{span: mid, children: mc})
			}
		}
		consumeLow(l, r, &li, &ri, low)
	}
	out = append(out, l[li:]...)
	return normalizeNodes(out, level)
}

// subsetNodes runs the complement walk but bails out the moment any part
// of a would survive, so A ⊆ B fails as early as possible.
func subsetNodes[T Value](as, bs []mapNode[T], level int) bool {
	a, b := copyNodes(as), copyNodes(bs)
	ai, bi := 0, 0
	for ai < len(a) {
		if bi >= len(b) {
			return false
		}
		an, bn := &a[ai], &b[bi]
		if an.span.Disjoint(bn.span) {
			if bn.span.Less(an.span) {
				return false
			}
			bi++
			continue
		}
		high, _, low := an.span.Partition(bn.span)
		if !high.Empty() && ownsHigh(an.span, bn.span) {
			return false
		}
		if level > 1 && !subsetNodes(an.children, bn.children, level-1) {
			return false
		}
		consumeLow(a, b, &ai, &bi, low)
	}
	return true
}

// normalizeNodes restores canonical form on a sibling list: drop empty
// spans and childless inner nodes, sort in descending span order, and
// coalesce adjacent connected spans with structurally equal children.
// Sibling spans must already be disjoint; an overlap is a broken invariant.
func normalizeNodes[T Value](nodes []mapNode[T], level int) []mapNode[T] {
	keep := nodes[:0]
	for _, n := range nodes {
		if n.span.Empty() {
			continue
		}
		if level > 1 && len(n.children) == 0 {
			continue
		}
		keep = append(keep, n)
	}
	sort.SliceStable(keep, func(i, j int) bool {
		return keep[j].span.Less(keep[i].span)
	})
	if len(keep) == 0 {
		return nil
	}
	out := keep[:1]
	for _, n := range keep[1:] {
		last := &out[len(out)-1]
		if last.span.Overlap(n.span) {
			log.Panicf("normalize: overlapping sibling spans %v and %v", last.span, n.span)
		}
		if last.span.Connected(n.span) && nodesEqual(last.children, n.children) {
			last.span = last.span.Hull(n.span)
			continue
		}
		out = append(out, n)
	}
	return out
}
