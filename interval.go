package bitrange

import (
	"fmt"
)

// Interval is a single closed range [upper:lower] over T. The zero value is
// the empty, uninitialized interval. An interval constructed with
// upper < lower is invalid and behaves as empty everywhere except Valid.
type Interval[T Value] struct {
	upper, lower T
	set          bool
}

// Single returns the one-point interval [v].
func Single[T Value](v T) Interval[T] {
	return Interval[T]{upper: v, lower: v, set: true}
}

// New returns the interval [hi:lo]. Bounds are kept as given; if hi < lo
// the result is invalid.
func New[T Value](hi, lo T) Interval[T] {
	return Interval[T]{upper: hi, lower: lo, set: true}
}

func (r Interval[T]) Upper() T { return r.upper }
func (r Interval[T]) Lower() T { return r.lower }

// SetUpper replaces the upper bound, marking the interval initialized.
func (r *Interval[T]) SetUpper(v T) {
	r.upper = v
	r.set = true
}

// SetLower replaces the lower bound, marking the interval initialized.
func (r *Interval[T]) SetLower(v T) {
	r.lower = v
	r.set = true
}

// Valid reports whether the interval was given bounds and upper >= lower.
func (r Interval[T]) Valid() bool {
	return r.set && !(r.upper < r.lower)
}

// Size returns the number of points covered, zero if invalid.
func (r Interval[T]) Size() T {
	if !r.Valid() {
		var zero T
		return zero
	}
	return r.upper - r.lower + stepOf[T]()
}

// Empty reports whether the interval covers no points. Invalid intervals
// are empty; over a continuous domain [v:v] is also empty.
func (r Interval[T]) Empty() bool {
	var zero T
	return !r.Valid() || r.Size() == zero
}

// Singleton reports whether the interval covers exactly one point.
func (r Interval[T]) Singleton() bool {
	return r.Valid() && r.Size() == stepOf[T]()
}

// Contains reports whether v lies inside the interval.
func (r Interval[T]) Contains(v T) bool {
	return !r.Empty() && r.lower <= v && v <= r.upper
}

// Subset reports whether r is contained in o. The empty interval is a
// subset of everything.
func (r Interval[T]) Subset(o Interval[T]) bool {
	if r.Empty() {
		return true
	}
	if o.Empty() {
		return false
	}
	return r.upper <= o.upper && o.lower <= r.lower
}

// ProperSubset reports whether r is contained in, and not equal to, o.
func (r Interval[T]) ProperSubset(o Interval[T]) bool {
	return r.Subset(o) && !r.Equal(o)
}

// Superset reports whether r contains o.
func (r Interval[T]) Superset(o Interval[T]) bool {
	return o.Subset(r)
}

// ProperSuperset reports whether r contains, and is not equal to, o.
func (r Interval[T]) ProperSuperset(o Interval[T]) bool {
	return o.Subset(r) && !r.Equal(o)
}

// Equal reports bound-wise equality. All empty intervals are equal to each
// other, regardless of how they became empty.
func (r Interval[T]) Equal(o Interval[T]) bool {
	if r.Empty() || o.Empty() {
		return r.Empty() && o.Empty()
	}
	return r.upper == o.upper && r.lower == o.lower
}

// Less is a strict weak order: empty sorts below everything, then upper
// bound ascending, ties broken by lower bound ascending (so [5:0] < [5:3]).
func (r Interval[T]) Less(o Interval[T]) bool {
	if r.Empty() {
		return !o.Empty()
	}
	if o.Empty() {
		return false
	}
	if r.upper != o.upper {
		return r.upper < o.upper
	}
	return r.lower < o.lower
}

// Overlap reports whether r and o share at least one point.
func (r Interval[T]) Overlap(o Interval[T]) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.upper >= o.lower && o.upper >= r.lower
}

// Disjoint reports whether r and o share no point. Empty intervals are
// disjoint from everything.
func (r Interval[T]) Disjoint(o Interval[T]) bool {
	return !r.Overlap(o)
}

// Connected reports whether r and o overlap or abut, i.e. whether their
// union is a single interval.
func (r Interval[T]) Connected(o Interval[T]) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	u := stepOf[T]()
	return r.upper+u >= o.lower && o.upper+u >= r.lower
}

// Hull returns the minimal interval enclosing both r and o. The empty
// interval is the identity.
func (r Interval[T]) Hull(o Interval[T]) Interval[T] {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	return New(max(r.upper, o.upper), min(r.lower, o.lower))
}

// Intersect returns the shared part of r and o, empty when disjoint.
func (r Interval[T]) Intersect(o Interval[T]) Interval[T] {
	if r.Empty() || o.Empty() {
		return Interval[T]{}
	}
	hi := min(r.upper, o.upper)
	lo := max(r.lower, o.lower)
	if hi < lo {
		return Interval[T]{}
	}
	return New(hi, lo)
}

// Combine returns the union of r and o when it is a single interval, i.e.
// when the operands are connected. The empty interval is the identity. A
// disconnected union yields the empty interval; use CombineStrict to
// observe the condition, or RangeMap to represent the two-piece result.
func (r Interval[T]) Combine(o Interval[T]) Interval[T] {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	if !r.Connected(o) {
		return Interval[T]{}
	}
	return r.Hull(o)
}

// Complement returns r with o removed, when the remainder is a single
// interval. Removing a strict middle piece leaves material on both sides;
// that yields the empty interval here (see ComplementStrict and RangeMap).
func (r Interval[T]) Complement(o Interval[T]) Interval[T] {
	v, both := r.complement(o)
	if both {
		return Interval[T]{}
	}
	return v
}

// complement reports, besides the single-piece result, whether material
// remained on both sides of the removed part.
func (r Interval[T]) complement(o Interval[T]) (Interval[T], bool) {
	x := r.Intersect(o)
	if x.Empty() {
		return r, false
	}
	if x.Equal(r) {
		return Interval[T]{}, false
	}
	u := stepOf[T]()
	hiRem := r.upper > x.upper
	loRem := x.lower > r.lower
	if hiRem && loRem {
		return Interval[T]{}, true
	}
	if hiRem {
		return New(r.upper, x.upper+u), false
	}
	return New(x.lower-u, r.lower), false
}

// Partition is the standard three-way division of r and o: disjoint pieces
// (high, middle, low) whose union is the union of r and o, which equals
// Hull(r, o) when the operands are connected. The middle is the
// intersection; when the operands are disjoint the greater under Less
// becomes high, the other becomes low and the middle is empty, so a gap
// between them lies in none of the three pieces.
func (r Interval[T]) Partition(o Interval[T]) (high, middle, low Interval[T]) {
	if r.Empty() && o.Empty() {
		return
	}
	if r.Empty() {
		middle = o
		return
	}
	if o.Empty() {
		middle = r
		return
	}
	if r.Disjoint(o) {
		if r.Less(o) {
			return o, Interval[T]{}, r
		}
		return r, Interval[T]{}, o
	}
	x := r.Intersect(o)
	h := r.Hull(o)
	u := stepOf[T]()
	if h.upper > x.upper {
		high = New(h.upper, x.upper+u)
	}
	middle = x
	if x.lower > h.lower {
		low = New(x.lower-u, h.lower)
	}
	return
}

// String renders the interval: "[]" when empty, "[v]" for a single point,
// "[hi:lo]" otherwise.
func (r Interval[T]) String() string {
	if r.Empty() {
		return "[]"
	}
	if r.upper == r.lower {
		return fmt.Sprintf("[%v]", r.upper)
	}
	return fmt.Sprintf("[%v:%v]", r.upper, r.lower)
}
