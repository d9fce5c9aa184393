package engine

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// CoordinateSet is an unordered collection of distinct coordinates.
// Use NewCoordinateSet to create one; the zero value cannot be written to.
type CoordinateSet struct {
	set mapset.Set[Coordinate]
}

// NewCoordinateSet creates a set holding the given coordinates
func NewCoordinateSet(coords ...Coordinate) CoordinateSet {
	s := CoordinateSet{set: mapset.New[Coordinate]()}
	for _, c := range coords {
		s.set.Put(c)
	}
	return s
}

// Has returns true if c is a member
func (s CoordinateSet) Has(c Coordinate) bool {
	return s.set.Has(c)
}

// Put inserts c
func (s CoordinateSet) Put(c Coordinate) {
	s.set.Put(c)
}

// Remove deletes c if present
func (s CoordinateSet) Remove(c Coordinate) {
	s.set.Remove(c)
}

// Size returns the number of members
func (s CoordinateSet) Size() int {
	return s.set.Size()
}

// Each calls fn for every member in no particular order
func (s CoordinateSet) Each(fn func(c Coordinate)) {
	s.set.Each(fn)
}

// Clone returns an independent copy
func (s CoordinateSet) Clone() CoordinateSet {
	clone := NewCoordinateSet()
	s.Each(clone.Put)
	return clone
}

// Union returns a new set holding the members of both sets
func (s CoordinateSet) Union(other CoordinateSet) CoordinateSet {
	result := s.Clone()
	other.Each(result.Put)
	return result
}

// Intersects returns true if the sets share at least one member
func (s CoordinateSet) Intersects(other CoordinateSet) bool {
	small, large := s, other
	if large.Size() < small.Size() {
		small, large = large, small
	}
	found := false
	small.Each(func(c Coordinate) {
		if !found && large.Has(c) {
			found = true
		}
	})
	return found
}

// SubsetOf returns true if every member of s is in other
func (s CoordinateSet) SubsetOf(other CoordinateSet) bool {
	if s.Size() > other.Size() {
		return false
	}
	subset := true
	s.Each(func(c Coordinate) {
		if subset && !other.Has(c) {
			subset = false
		}
	})
	return subset
}

// Equal returns true if both sets hold the same members
func (s CoordinateSet) Equal(other CoordinateSet) bool {
	return s.Size() == other.Size() && s.SubsetOf(other)
}

// Slice returns the members sorted row-major
func (s CoordinateSet) Slice() []Coordinate {
	result := make([]Coordinate, 0, s.Size())
	s.Each(func(c Coordinate) {
		result = append(result, c)
	})
	sort.Slice(result, func(i, j int) bool {
		if result[i].Y != result[j].Y {
			return result[i].Y < result[j].Y
		}
		return result[i].X < result[j].X
	})
	return result
}
