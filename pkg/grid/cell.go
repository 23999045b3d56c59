package grid

import "slices"

// Filler marks a cell that was still empty when the puzzle was accepted.
// Filler cells carry no letter and belong to no word.
const Filler = '*'

// Cell is a single grid square. A cell may be owned by more than one word
// at an intersection; its letter, when set, matches the corresponding
// character of every owner.
type Cell struct {
	Letter     rune
	Blocked    bool
	PartOfWord bool
	Number     int
	Owners     []WordID
}

// HasLetter reports whether the cell holds a real letter. Filler markers
// do not count.
func (c Cell) HasLetter() bool {
	return c.Letter != 0 && c.Letter != Filler
}

// Empty reports whether the cell holds neither a letter nor a filler marker.
func (c Cell) Empty() bool {
	return c.Letter == 0
}

// OwnedBy reports whether the given word owns this cell.
func (c Cell) OwnedBy(id WordID) bool {
	return slices.Contains(c.Owners, id)
}

func (c *Cell) addOwner(id WordID) {
	if !c.OwnedBy(id) {
		c.Owners = append(c.Owners, id)
	}
}

func (c *Cell) removeOwner(id WordID) {
	c.Owners = slices.DeleteFunc(c.Owners, func(o WordID) bool { return o == id })
}

// clone returns a deep copy of the cell, owners included.
func (c Cell) clone() Cell {
	out := c
	out.Owners = slices.Clone(c.Owners)
	return out
}
