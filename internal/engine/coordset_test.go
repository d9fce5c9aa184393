package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinateSetMembership(t *testing.T) {
	s := NewCoordinateSet(Coordinate{1, 2}, Coordinate{1, 2}, Coordinate{3, 4})

	assert.Equal(t, 2, s.Size(), "duplicates collapse")
	assert.True(t, s.Has(Coordinate{1, 2}))
	assert.False(t, s.Has(Coordinate{2, 1}))

	s.Put(Coordinate{0, 0})
	s.Remove(Coordinate{1, 2})
	s.Remove(Coordinate{9, 9})

	assert.Equal(t, []Coordinate{{0, 0}, {3, 4}}, s.Slice())
}

func TestCoordinateSetUnionLeavesOperandsAlone(t *testing.T) {
	a := NewCoordinateSet(Coordinate{0, 0})
	b := NewCoordinateSet(Coordinate{1, 1}, Coordinate{0, 0})

	u := a.Union(b)

	assert.Equal(t, 2, u.Size())
	assert.Equal(t, 1, a.Size())
	assert.Equal(t, 2, b.Size())
}

func TestCoordinateSetCloneIsIndependent(t *testing.T) {
	a := NewCoordinateSet(Coordinate{0, 0})
	clone := a.Clone()
	clone.Put(Coordinate{5, 5})

	assert.False(t, a.Has(Coordinate{5, 5}))
	assert.True(t, clone.Has(Coordinate{0, 0}))
}

func TestCoordinateSetRelations(t *testing.T) {
	a := NewCoordinateSet(Coordinate{0, 0}, Coordinate{1, 0})
	b := NewCoordinateSet(Coordinate{1, 0}, Coordinate{0, 0})
	c := NewCoordinateSet(Coordinate{0, 0}, Coordinate{1, 0}, Coordinate{2, 0})
	d := NewCoordinateSet(Coordinate{7, 7})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, a.SubsetOf(c))
	assert.False(t, c.SubsetOf(a))
	assert.True(t, a.Intersects(c))
	assert.True(t, c.Intersects(a))
	assert.False(t, a.Intersects(d))
	assert.False(t, NewCoordinateSet().Intersects(a))
	assert.True(t, NewCoordinateSet().SubsetOf(a))
}

func TestCoordinateSetSliceIsSorted(t *testing.T) {
	s := NewCoordinateSet(Coordinate{2, 1}, Coordinate{0, 1}, Coordinate{5, 0})
	assert.Equal(t, []Coordinate{{5, 0}, {0, 1}, {2, 1}}, s.Slice())
}
