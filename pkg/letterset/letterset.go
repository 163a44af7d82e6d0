// Package letterset implements a compact set of letters A-Z, represented
// as a 26-bit mask, with the set algebra the constraint engine needs to
// track per-cell letter domains.
package letterset

import "math/bits"

// LetterSet is an immutable subset of {A..Z}, packed into the low 26 bits
// of a uint32. All operations are total: there is no invalid LetterSet
// value, and none of them mutate the receiver.
type LetterSet uint32

// Full is the set containing every letter A-Z.
const Full LetterSet = (1 << 26) - 1

// Empty is the set containing no letters.
const Empty LetterSet = 0

// Singleton returns the set containing only c. c must be an ASCII letter
// (upper or lower case); any other byte yields Empty rather than an error,
// matching the "total, never fails" contract of spec.md's LetterSet.
func Singleton(c byte) LetterSet {
	idx, ok := index(c)
	if !ok {
		return Empty
	}
	return LetterSet(1 << idx)
}

// Contains reports whether c is a member of s.
func (s LetterSet) Contains(c byte) bool {
	idx, ok := index(c)
	if !ok {
		return false
	}
	return s&(1<<idx) != 0
}

// Intersect returns the letters present in both s and o.
func (s LetterSet) Intersect(o LetterSet) LetterSet {
	return s & o
}

// Union returns the letters present in either s or o.
func (s LetterSet) Union(o LetterSet) LetterSet {
	return s | o
}

// Remove returns s with c cleared, if present.
func (s LetterSet) Remove(c byte) LetterSet {
	idx, ok := index(c)
	if !ok {
		return s
	}
	return s &^ (1 << idx)
}

// Count returns the number of letters in s.
func (s LetterSet) Count() int {
	return bits.OnesCount32(uint32(s))
}

// IsEmpty reports whether s has no members.
func (s LetterSet) IsEmpty() bool {
	return s == 0
}

// IsSingleton returns the single letter in s and true, or (0, false) if s
// does not contain exactly one letter.
func (s LetterSet) IsSingleton() (byte, bool) {
	if bits.OnesCount32(uint32(s)) != 1 {
		return 0, false
	}
	return 'A' + byte(bits.TrailingZeros32(uint32(s))), true
}

// Letters returns the members of s in ascending alphabetical order.
func (s LetterSet) Letters() []byte {
	out := make([]byte, 0, s.Count())
	for i := 0; i < 26; i++ {
		if s&(1<<uint(i)) != 0 {
			out = append(out, 'A'+byte(i))
		}
	}
	return out
}

// index maps an ASCII letter to its 0-25 bit position, folding case.
// The second return value is false for anything that isn't A-Z or a-z.
func index(c byte) (byte, bool) {
	switch {
	case c >= 'A' && c <= 'Z':
		return c - 'A', true
	case c >= 'a' && c <= 'z':
		return c - 'a', true
	default:
		return 0, false
	}
}
