package generator

import "math/bits"

// letterSet efficiently represents a set of crossword letters using bit
// manipulation. It covers A-Z plus the Swedish letters Å, Ä and Ö, 29
// letters in total. This fits in a uint32.
type letterSet struct {
	bits uint32
}

// letterIndex maps an uppercase letter to its bit position, or -1 for
// runes outside the crossword alphabet.
func letterIndex(r rune) int {
	switch {
	case r >= 'A' && r <= 'Z':
		return int(r - 'A')
	case r == 'Å':
		return 26
	case r == 'Ä':
		return 27
	case r == 'Ö':
		return 28
	}
	return -1
}

// Add adds a letter to the set. Runes outside the alphabet are ignored.
func (s *letterSet) Add(r rune) {
	if i := letterIndex(r); i >= 0 {
		s.bits |= 1 << uint(i)
	}
}

// Contains checks if a letter is in the set.
func (s letterSet) Contains(r rune) bool {
	i := letterIndex(r)
	return i >= 0 && s.bits&(1<<uint(i)) != 0
}

// Count returns the number of distinct letters in the set.
func (s letterSet) Count() int {
	return bits.OnesCount32(s.bits)
}

// SharedCount returns the number of letters present in both sets.
func (s letterSet) SharedCount(other letterSet) int {
	return bits.OnesCount32(s.bits & other.bits)
}

// NewCount returns the number of letters in other that s lacks.
func (s letterSet) NewCount(other letterSet) int {
	return bits.OnesCount32(other.bits &^ s.bits)
}

// lettersOf builds the distinct-letter set of a word.
func lettersOf(letters []rune) letterSet {
	var s letterSet
	for _, r := range letters {
		s.Add(r)
	}
	return s
}
