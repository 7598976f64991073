// Package bitrange provides symbolic manipulation of multi-dimensional
// closed ranges, of the kind carried by netlist signals such as
// "data[3:0][12:-5]".
//
// Three types form the algebra. Interval is a single closed range [hi:lo]
// over an ordered numeric type. Box is an ordered tuple of intervals, an
// axis-aligned hyper-rectangle. RangeMap is a canonical disjoint union of
// boxes, kept as a tree whose nodes partition one axis at a time; it
// represents results (difference, union) that a single box cannot express.
//
// All operations are pure and return fresh values. Methods are total: a
// condition such as a dimension mismatch or a result that needs more than
// one piece yields the zero (empty) value of the result type. The *Strict
// method variants report the same conditions as typed errors
// (ErrInvalidRange, ErrNonComparable, ErrNonOperable) instead.
package bitrange
