package sgr

import (
	"fmt"
	"slices"

	"github.com/hnimtadd/ansikit/ansi/utils"
	"github.com/mitchellh/hashstructure/v2"
)

// Set is an ordered set of active SGR attributes. Attributes are kept in
// canonical order, and applying an attribute evicts any attribute of the
// same type first, so a color slot holds at most one value and re-asserting
// a boolean attribute is a no-op replacement.
//
// Reset is never stored; callers translate it to Clear.
type Set struct {
	attrs []Attribute
}

func NewSet() *Set {
	return &Set{}
}

// Apply inserts attr, replacing any attribute occupying the same type.
func (s *Set) Apply(attr Attribute) {
	utils.Assert(attr.Type != AttributeTypeReset, "reset is not a set member")
	s.attrs = slices.DeleteFunc(s.attrs, func(a Attribute) bool {
		return a.Type == attr.Type
	})
	idx, _ := slices.BinarySearchFunc(s.attrs, attr, Attribute.Compare)
	s.attrs = slices.Insert(s.attrs, idx, attr)
}

func (s *Set) Clear() {
	s.attrs = s.attrs[:0]
}

func (s *Set) Len() int {
	return len(s.attrs)
}

func (s *Set) Empty() bool {
	return len(s.attrs) == 0
}

// Attributes returns the members in canonical order. The returned slice is
// a copy owned by the caller.
func (s *Set) Attributes() []Attribute {
	if len(s.attrs) == 0 {
		return nil
	}
	return slices.Clone(s.attrs)
}

func (s *Set) Clone() *Set {
	return &Set{attrs: slices.Clone(s.attrs)}
}

// Hash returns a value hash over the members. Members are already in
// canonical order, so equal sets hash equal.
func (s *Set) Hash() uint64 {
	hashed, err := hashstructure.Hash(s.attrs, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash attribute set: %v", err))
	return hashed
}

// Equals reports whether both sets hold the same members.
func (s *Set) Equals(other *Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	if s.Empty() {
		return true
	}
	return s.Hash() == other.Hash()
}
