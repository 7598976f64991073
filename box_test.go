package bitrange

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkBox(t *testing.T, b Box[int], expect string) {
	t.Helper()
	if s := b.String(); s != expect {
		t.Errorf("box %s != %s", s, expect)
	}
}

func box2(t *testing.T, s string) Box[int] {
	t.Helper()
	b, err := ParseBox[int](s)
	require.NoError(t, err)
	return b
}

func TestBoxBasics(t *testing.T) {
	var zero Box[int]
	assert.True(t, zero.Empty())
	assert.Equal(t, 0, zero.Dimension())
	assert.Equal(t, 0, zero.Size())
	checkBox(t, zero, "[]")

	b := BoxOf([2]int{3, 0}, [2]int{12, -5})
	assert.False(t, b.Empty())
	assert.Equal(t, 2, b.Dimension())
	assert.Equal(t, 4*18, b.Size())
	checkBox(t, b, "[3:0][12:-5]")

	// An empty axis empties the whole box.
	e := NewBox(New(3, 0), Interval[int]{})
	assert.True(t, e.Empty())
	assert.Equal(t, 0, e.Size())
	checkBox(t, e, "[]")

	p := BoxOf([2]int{2, 2}, [2]int{-4, -4})
	assert.True(t, p.Singleton())
	assert.Equal(t, 1, p.Size())
	checkBox(t, p, "[2][-4]")
}

func TestBoxAddRemove(t *testing.T) {
	b := NewBox(New(3, 0))
	b.AddLower(New(12, -5))
	checkBox(t, b, "[3:0][12:-5]")
	b.AddUpper(New(1, 0))
	checkBox(t, b, "[1:0][3:0][12:-5]")
	b.AddDim(Single(9), 1)
	checkBox(t, b, "[1:0][9][3:0][12:-5]")
	b.RemoveDim(1)
	checkBox(t, b, "[1:0][3:0][12:-5]")
	b.RemoveUpper()
	checkBox(t, b, "[3:0][12:-5]")
	b.RemoveLower()
	checkBox(t, b, "[3:0]")
}

func TestBoxComparableOperable(t *testing.T) {
	a := box2(t, "[3:0][12:-5]")
	assert.True(t, a.Comparable(box2(t, "[1:0][2:0]")))
	assert.False(t, a.Comparable(box2(t, "[3:0]")))

	// Same on axis 0, differs on axis 1.
	assert.True(t, a.Operable(box2(t, "[3:0][12:-3]")))
	// Equal everywhere.
	assert.True(t, a.Operable(a))
	// Differs on both axes.
	assert.False(t, a.Operable(box2(t, "[2][-4]")))
}

func TestBoxPredicates(t *testing.T) {
	a := box2(t, "[3:0][12:-5]")
	inner := box2(t, "[2:1][0:-1]")
	assert.True(t, inner.Subset(a))
	assert.True(t, inner.ProperSubset(a))
	assert.True(t, a.Superset(inner))
	assert.True(t, a.Subset(a))
	assert.False(t, a.ProperSubset(a))

	var zero Box[int]
	assert.True(t, zero.Subset(a))
	assert.False(t, a.Subset(zero))

	assert.True(t, a.Overlap(inner))
	assert.True(t, a.Disjoint(box2(t, "[9:4][12:-5]")))
	assert.True(t, a.Disjoint(box2(t, "[3:0]")))

	assert.True(t, a.Equal(box2(t, "[3:0][12:-5]")))
	assert.False(t, a.Equal(inner))
	assert.True(t, zero.Equal(NewBox(New(1, 2))))
}

func TestBoxLess(t *testing.T) {
	a := box2(t, "[3:0][12:-5]")
	assert.True(t, a.Less(box2(t, "[3:0][13:-5]")))
	assert.True(t, a.Less(box2(t, "[4:0][12:-5]")))
	assert.False(t, a.Less(a))
	// Different dimensions are incomparable.
	assert.False(t, a.Less(box2(t, "[9:9]")))
	assert.False(t, box2(t, "[9:9]").Less(a))
}

func TestBoxHullIntersect(t *testing.T) {
	a := box2(t, "[3:0][12:-5]")
	b := box2(t, "[5:2][0:-10]")
	checkBox(t, a.Hull(b), "[5:0][12:-10]")
	checkBox(t, a.Intersect(b), "[3:2][0:-5]")

	var zero Box[int]
	checkBox(t, a.Hull(zero), "[3:0][12:-5]")
	checkBox(t, a.Intersect(zero), "[]")
	checkBox(t, a.Intersect(box2(t, "[3:0]")), "[]")
	// Disjoint on an axis.
	checkBox(t, a.Intersect(box2(t, "[9:4][12:-5]")), "[]")
}

func TestBoxCombine(t *testing.T) {
	a := box2(t, "[3:0][12:-5]")
	checkBox(t, a.Combine(box2(t, "[3:0][20:13]")), "[3:0][20:-5]")
	checkBox(t, a.Combine(a), "[3:0][12:-5]")
	// Not connected on the differing axis.
	checkBox(t, a.Combine(box2(t, "[3:0][30:20]")), "[]")
	// More than one differing axis.
	checkBox(t, a.Combine(box2(t, "[5:4][30:20]")), "[]")

	_, err := a.CombineStrict(box2(t, "[3:0][30:20]"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonOperable))
	_, err = a.CombineStrict(box2(t, "[3:0]"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonComparable))
}

// Subtracting a box that differs on one axis leaves a single box.
func TestBoxComplementOneAxis(t *testing.T) {
	a := box2(t, "[3:0][12:-5]")
	b := box2(t, "[3:0][12:-3]")
	checkBox(t, a.Complement(b), "[3:0][-4:-5]")
	v, err := a.ComplementStrict(b)
	require.NoError(t, err)
	checkBox(t, v, "[3:0][-4:-5]")
}

// Subtracting an interior box cannot yield a single box.
func TestBoxComplementInteriorBox(t *testing.T) {
	a := box2(t, "[3:0][12:-5]")
	b := box2(t, "[2][-4]")
	checkBox(t, a.Complement(b), "[]")
	_, err := a.ComplementStrict(b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonOperable))
}

func TestBoxSubsetDimensionMismatch(t *testing.T) {
	a := box2(t, "[3:0][12:-5]")
	b := box2(t, "[3:0][12:-5][0]")
	assert.False(t, a.Subset(b))
	_, err := a.SubsetStrict(b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonComparable))
}

func TestBoxComplement(t *testing.T) {
	a := box2(t, "[3:0][12:-5]")
	// Disjoint on the differing axis removes nothing.
	checkBox(t, a.Complement(box2(t, "[3:0][30:20]")), "[3:0][12:-5]")
	// Equal boxes cancel.
	checkBox(t, a.Complement(a), "[]")
	// Removing an empty box is the identity.
	checkBox(t, a.Complement(Box[int]{}), "[3:0][12:-5]")
	// A middle split fails at this layer.
	checkBox(t, a.Complement(box2(t, "[3:0][4:2]")), "[]")
}

func TestBoxPartition(t *testing.T) {
	a := box2(t, "[3:0][12:-5]")
	b := box2(t, "[3:0][0:-10]")
	h, m, l := a.Partition(b)
	checkBox(t, h, "[3:0][12:1]")
	checkBox(t, m, "[3:0][0:-5]")
	checkBox(t, l, "[3:0][-6:-10]")

	// Disjoint differing axis: the greater box becomes high.
	h, m, l = box2(t, "[3:0][5:4]").Partition(box2(t, "[3:0][2:0]"))
	checkBox(t, h, "[3:0][5:4]")
	checkBox(t, m, "[]")
	checkBox(t, l, "[3:0][2:0]")

	// Equal boxes: everything is middle.
	h, m, l = a.Partition(a)
	checkBox(t, h, "[]")
	checkBox(t, m, "[3:0][12:-5]")
	checkBox(t, l, "[]")

	_, _, _, err := a.PartitionStrict(box2(t, "[2][-4]"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonOperable))
}
