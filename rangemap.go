package bitrange

import (
	"strings"
)

// mapNode is one node of the disjoint-union tree: a span on this node's
// axis and the child nodes partitioning the next axis. A node on the last
// axis has no children.
type mapNode[T Value] struct {
	span     Interval[T]
	children []mapNode[T]
}

// RangeMap is a finite union of boxes in canonical form: an ordered,
// disjoint, coalesced forest whose nodes partition one axis at a time. The
// zero value is the empty map. Canonical form makes the representation of
// a point set unique, so Equal is structural and String is stable.
type RangeMap[T Value] struct {
	level int
	roots []mapNode[T]
}

// EmptyMap returns a map covering no points that still carries a declared
// dimension, so it can participate in dimension checks before any content
// arrives.
func EmptyMap[T Value](level int) RangeMap[T] {
	if level < 0 {
		log.Panicf("negative map level %d", level)
	}
	return RangeMap[T]{level: level}
}

// MapOf returns the one-dimensional map covering r.
func MapOf[T Value](r Interval[T]) RangeMap[T] {
	if r.Empty() {
		return RangeMap[T]{level: 1}
	}
	return RangeMap[T]{level: 1, roots: []mapNode[T]{{span: r}}}
}

// MapOfBox returns the map covering a single box.
func MapOfBox[T Value](b Box[T]) RangeMap[T] {
	if b.Empty() {
		return RangeMap[T]{level: b.Dimension()}
	}
	k := b.Dimension()
	var children []mapNode[T]
	for d := k - 1; d >= 0; d-- {
		children = []mapNode[T]{{span: b.Dim(d), children: children}}
	}
	return RangeMap[T]{level: k, roots: children}
}

// Empty reports whether the map covers no points.
func (m RangeMap[T]) Empty() bool {
	return len(m.roots) == 0
}

// Dimension returns the number of axes. An empty map reports its declared
// level: zero for the zero value, the constructor argument for EmptyMap.
func (m RangeMap[T]) Dimension() int {
	return m.level
}

// Valid reports whether every span in the tree is valid and every level is
// fully populated down to the last axis.
func (m RangeMap[T]) Valid() bool {
	if m.Empty() {
		return true
	}
	return validNodes(m.roots, m.level)
}

func validNodes[T Value](nodes []mapNode[T], level int) bool {
	for _, n := range nodes {
		if !n.span.Valid() || n.span.Empty() {
			return false
		}
		if level > 1 {
			if len(n.children) == 0 || !validNodes(n.children, level-1) {
				return false
			}
		} else if len(n.children) != 0 {
			return false
		}
	}
	return true
}

// Size returns the number of points covered.
func (m RangeMap[T]) Size() T {
	if m.Empty() {
		var zero T
		return zero
	}
	return nodesSize(m.roots, m.level)
}

func nodesSize[T Value](nodes []mapNode[T], level int) T {
	var total T
	for _, n := range nodes {
		sz := n.span.Size()
		if level > 1 {
			sz = sz * nodesSize(n.children, level-1)
		}
		total = total + sz
	}
	return total
}

// Contains reports whether the point (one coordinate per axis, outermost
// first) is covered by the map.
func (m RangeMap[T]) Contains(point ...T) bool {
	if m.Empty() || len(point) != m.level {
		return false
	}
	nodes := m.roots
	for _, v := range point {
		found := false
		for i := range nodes {
			if nodes[i].span.Contains(v) {
				nodes = nodes[i].children
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Equal reports point-set equality; canonical form reduces it to
// structural equality.
func (m RangeMap[T]) Equal(o RangeMap[T]) bool {
	if m.Empty() || o.Empty() {
		return m.Empty() && o.Empty()
	}
	if m.level != o.level {
		return false
	}
	return nodesEqual(m.roots, o.roots)
}

func nodesEqual[T Value](a, b []mapNode[T]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].span.Equal(b[i].span) || !nodesEqual(a[i].children, b[i].children) {
			return false
		}
	}
	return true
}

// Less is the lexicographic weak order over the normalized root lists.
// Maps of different dimension are incomparable; the empty map sorts first.
func (m RangeMap[T]) Less(o RangeMap[T]) bool {
	if m.Empty() {
		return !o.Empty()
	}
	if o.Empty() {
		return false
	}
	if m.level != o.level {
		return false
	}
	return nodesLess(m.roots, o.roots)
}

func nodesLess[T Value](a, b []mapNode[T]) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if !a[i].span.Equal(b[i].span) {
			return a[i].span.Less(b[i].span)
		}
		if !nodesEqual(a[i].children, b[i].children) {
			return nodesLess(a[i].children, b[i].children)
		}
	}
	return len(a) < len(b)
}

// Subset reports whether m is contained in o. The walk stops at the first
// span of m no node of o accounts for.
func (m RangeMap[T]) Subset(o RangeMap[T]) bool {
	if m.Empty() {
		return true
	}
	if o.Empty() || m.level != o.level {
		return false
	}
	return subsetNodes(m.roots, o.roots, m.level)
}

// ProperSubset reports whether m is contained in, and not equal to, o.
func (m RangeMap[T]) ProperSubset(o RangeMap[T]) bool {
	return m.Subset(o) && !m.Equal(o)
}

// Superset reports whether m contains o.
func (m RangeMap[T]) Superset(o RangeMap[T]) bool {
	return o.Subset(m)
}

// ProperSuperset reports whether m contains, and is not equal to, o.
func (m RangeMap[T]) ProperSuperset(o RangeMap[T]) bool {
	return o.Subset(m) && !m.Equal(o)
}

// Overlap reports whether m and o share at least one point.
func (m RangeMap[T]) Overlap(o RangeMap[T]) bool {
	return !m.Intersect(o).Empty()
}

// Disjoint reports whether m and o share no point.
func (m RangeMap[T]) Disjoint(o RangeMap[T]) bool {
	return !m.Overlap(o)
}

// Union returns the set union of m and o. The empty map is the identity;
// a dimension mismatch yields the empty map (see UnionStrict).
func (m RangeMap[T]) Union(o RangeMap[T]) RangeMap[T] {
	if m.Empty() {
		return o
	}
	if o.Empty() {
		return m
	}
	if m.level != o.level {
		return RangeMap[T]{}
	}
	return wrapNodes(unionNodes(m.roots, o.roots, m.level), m.level)
}

// Intersect returns the set intersection of m and o.
func (m RangeMap[T]) Intersect(o RangeMap[T]) RangeMap[T] {
	if m.Empty() {
		return m
	}
	if o.Empty() || m.level != o.level {
		return RangeMap[T]{level: m.level}
	}
	return wrapNodes(intersectNodes(m.roots, o.roots, m.level), m.level)
}

// Complement returns m with o removed. Unlike the interval and box forms
// this is total on well-formed operands: the result is any finite union of
// boxes. A dimension mismatch yields the empty map (see ComplementStrict).
func (m RangeMap[T]) Complement(o RangeMap[T]) RangeMap[T] {
	if m.Empty() {
		return m
	}
	if o.Empty() {
		return m
	}
	if m.level != o.level {
		return RangeMap[T]{level: m.level}
	}
	return wrapNodes(complementNodes(m.roots, o.roots, m.level), m.level)
}

// AddBox returns m extended with the points of box b. An empty map adopts
// the box's dimension; otherwise the dimensions must match.
func (m RangeMap[T]) AddBox(b Box[T]) RangeMap[T] {
	return m.Union(MapOfBox(b))
}

// AddNode returns m extended with one free-form (span, child) node: the
// points whose outermost coordinate lies in span and whose remaining
// coordinates are covered by child. For one-dimensional maps child must be
// the empty map.
func (m RangeMap[T]) AddNode(span Interval[T], child RangeMap[T]) RangeMap[T] {
	if span.Empty() {
		return m
	}
	if child.Empty() && child.level > 0 {
		// An empty child of declared dimension contributes no points.
		return m
	}
	add := RangeMap[T]{level: child.level + 1, roots: []mapNode[T]{{span: span, children: child.roots}}}
	if child.Empty() && m.level > 1 && !m.Empty() {
		// A spanning node with no children only exists on the last axis.
		return RangeMap[T]{}
	}
	return m.Union(add)
}

// Boxes decomposes the canonical set into disjoint boxes, outermost span
// first. The inverse of repeated AddBox.
func (m RangeMap[T]) Boxes() []Box[T] {
	if m.Empty() {
		return nil
	}
	var out []Box[T]
	prefix := make([]Interval[T], 0, m.level)
	collectBoxes(m.roots, prefix, &out)
	return out
}

func collectBoxes[T Value](nodes []mapNode[T], prefix []Interval[T], out *[]Box[T]) {
	for _, n := range nodes {
		next := append(prefix, n.span)
		if len(n.children) == 0 {
			*out = append(*out, NewBox(next...))
		} else {
			collectBoxes(n.children, next, out)
		}
	}
}

// wrapNodes builds the public map value. An empty result keeps the
// operand dimension.
func wrapNodes[T Value](nodes []mapNode[T], level int) RangeMap[T] {
	if len(nodes) == 0 {
		return RangeMap[T]{level: level}
	}
	return RangeMap[T]{level: level, roots: nodes}
}

// String renders the map per the stable textual contract: "[]" when empty,
// a single root without braces, multiple roots wrapped in braces and
// separated by "; ". Each node renders as its span followed by its child
// list.
func (m RangeMap[T]) String() string {
	if m.Empty() {
		return "[]"
	}
	var sb strings.Builder
	renderNodeList(&sb, m.roots)
	return sb.String()
}

func renderNodeList[T Value](sb *strings.Builder, nodes []mapNode[T]) {
	if len(nodes) == 1 {
		renderNode(sb, nodes[0])
		return
	}
	sb.WriteByte('{')
	for i, n := range nodes {
		if i > 0 {
			sb.WriteString("; ")
		}
		renderNode(sb, n)
	}
	sb.WriteByte('}')
}

func renderNode[T Value](sb *strings.Builder, n mapNode[T]) {
	sb.WriteString(n.span.String())
	if len(n.children) > 0 {
		renderNodeList(sb, n.children)
	}
}
