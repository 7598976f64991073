package bitrange

import (
	"github.com/pkg/errors"
)

// The *Strict variants run the same algorithms as their total
// counterparts but report the swallowed conditions as typed errors:
// ErrInvalidRange for an operand failing Valid, ErrNonComparable for a
// dimension mismatch, ErrNonOperable when a single-piece result cannot
// express the answer. On well-formed inputs both surfaces agree.

func checkValid[T Value](a, b Interval[T]) error {
	if !a.Valid() {
		return errors.Wrapf(ErrInvalidRange, "operand %v", a)
	}
	if !b.Valid() {
		return errors.Wrapf(ErrInvalidRange, "operand %v", b)
	}
	return nil
}

// CombineStrict is Combine with error reporting.
func (r Interval[T]) CombineStrict(o Interval[T]) (Interval[T], error) {
	if err := checkValid(r, o); err != nil {
		return Interval[T]{}, err
	}
	if !r.Empty() && !o.Empty() && !r.Connected(o) {
		return Interval[T]{}, errors.Wrapf(ErrNonOperable, "combine %v %v", r, o)
	}
	return r.Combine(o), nil
}

// ComplementStrict is Complement with error reporting.
func (r Interval[T]) ComplementStrict(o Interval[T]) (Interval[T], error) {
	if err := checkValid(r, o); err != nil {
		return Interval[T]{}, err
	}
	v, split := r.complement(o)
	if split {
		return Interval[T]{}, errors.Wrapf(ErrNonOperable, "complement %v %v splits in two", r, o)
	}
	return v, nil
}

// PartitionStrict is Partition with error reporting.
func (r Interval[T]) PartitionStrict(o Interval[T]) (high, middle, low Interval[T], err error) {
	if err = checkValid(r, o); err != nil {
		return
	}
	high, middle, low = r.Partition(o)
	return
}

// SubsetStrict is Subset with error reporting.
func (r Interval[T]) SubsetStrict(o Interval[T]) (bool, error) {
	if err := checkValid(r, o); err != nil {
		return false, err
	}
	return r.Subset(o), nil
}

func (b Box[T]) checkComparable(o Box[T]) error {
	if !b.Comparable(o) {
		return errors.Wrapf(ErrNonComparable, "dimensions %d and %d", b.Dimension(), o.Dimension())
	}
	return nil
}

func (b Box[T]) checkOperable(o Box[T]) error {
	if err := b.checkComparable(o); err != nil {
		return err
	}
	if !b.Operable(o) {
		return errors.Wrapf(ErrNonOperable, "%v and %v differ on more than one axis", b, o)
	}
	return nil
}

// SubsetStrict is Subset with error reporting: a dimension mismatch is
// ErrNonComparable rather than false.
func (b Box[T]) SubsetStrict(o Box[T]) (bool, error) {
	if b.Empty() || o.Empty() {
		return b.Subset(o), nil
	}
	if err := b.checkComparable(o); err != nil {
		return false, err
	}
	return b.Subset(o), nil
}

// IntersectStrict is Intersect with error reporting.
func (b Box[T]) IntersectStrict(o Box[T]) (Box[T], error) {
	if b.Empty() || o.Empty() {
		return Box[T]{}, nil
	}
	if err := b.checkComparable(o); err != nil {
		return Box[T]{}, err
	}
	return b.Intersect(o), nil
}

// HullStrict is Hull with error reporting.
func (b Box[T]) HullStrict(o Box[T]) (Box[T], error) {
	if b.Empty() || o.Empty() {
		return b.Hull(o), nil
	}
	if err := b.checkComparable(o); err != nil {
		return Box[T]{}, err
	}
	return b.Hull(o), nil
}

// CombineStrict is Combine with error reporting.
func (b Box[T]) CombineStrict(o Box[T]) (Box[T], error) {
	if b.Empty() || o.Empty() {
		return b.Combine(o), nil
	}
	if err := b.checkOperable(o); err != nil {
		return Box[T]{}, err
	}
	d := b.diffAxis(o)
	if d < len(b.dims) && !b.dims[d].Connected(o.dims[d]) {
		return Box[T]{}, errors.Wrapf(ErrNonOperable, "combine %v %v", b, o)
	}
	return b.Combine(o), nil
}

// ComplementStrict is Complement with error reporting.
func (b Box[T]) ComplementStrict(o Box[T]) (Box[T], error) {
	if b.Empty() || o.Empty() {
		return b.Complement(o), nil
	}
	if err := b.checkOperable(o); err != nil {
		return Box[T]{}, err
	}
	d := b.diffAxis(o)
	if d < len(b.dims) {
		if _, split := b.dims[d].complement(o.dims[d]); split {
			return Box[T]{}, errors.Wrapf(ErrNonOperable, "complement %v %v splits in two", b, o)
		}
	}
	return b.Complement(o), nil
}

// PartitionStrict is Partition with error reporting.
func (b Box[T]) PartitionStrict(o Box[T]) (high, middle, low Box[T], err error) {
	if b.Empty() || o.Empty() {
		high, middle, low = b.Partition(o)
		return
	}
	if err = b.checkOperable(o); err != nil {
		return
	}
	high, middle, low = b.Partition(o)
	return
}

func (m RangeMap[T]) checkComparable(o RangeMap[T]) error {
	if m.Empty() || o.Empty() {
		return nil
	}
	if m.level != o.level {
		return errors.Wrapf(ErrNonComparable, "dimensions %d and %d", m.level, o.level)
	}
	return nil
}

// UnionStrict is Union with error reporting.
func (m RangeMap[T]) UnionStrict(o RangeMap[T]) (RangeMap[T], error) {
	if err := m.checkComparable(o); err != nil {
		return RangeMap[T]{}, err
	}
	return m.Union(o), nil
}

// IntersectStrict is Intersect with error reporting.
func (m RangeMap[T]) IntersectStrict(o RangeMap[T]) (RangeMap[T], error) {
	if err := m.checkComparable(o); err != nil {
		return RangeMap[T]{}, err
	}
	return m.Intersect(o), nil
}

// ComplementStrict is Complement with error reporting.
func (m RangeMap[T]) ComplementStrict(o RangeMap[T]) (RangeMap[T], error) {
	if err := m.checkComparable(o); err != nil {
		return RangeMap[T]{}, err
	}
	return m.Complement(o), nil
}

// SubsetStrict is Subset with error reporting: a dimension mismatch is
// ErrNonComparable rather than false.
func (m RangeMap[T]) SubsetStrict(o RangeMap[T]) (bool, error) {
	if err := m.checkComparable(o); err != nil {
		return false, err
	}
	return m.Subset(o), nil
}
