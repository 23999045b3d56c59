package grid

import "slices"

// snapshot is a full copy of the grid's mutable state: every cell, the
// word list with each word's placement fields, the accidental-word list,
// and the id arena. Restoring a snapshot is the rollback half of the
// validated-placement transaction.
type snapshot struct {
	cells      [][]Cell
	words      []*Word
	wordState  []Word
	accidental []AccidentalWord
	nextID     WordID
}

// takeSnapshot deep-copies the grid state.
func (g *Grid) takeSnapshot() snapshot {
	cells := make([][]Cell, g.rows)
	for r := range g.cells {
		cells[r] = make([]Cell, g.cols)
		for c := range g.cells[r] {
			cells[r][c] = g.cells[r][c].clone()
		}
	}
	state := make([]Word, len(g.words))
	for i, w := range g.words {
		state[i] = *w
	}
	return snapshot{
		cells:      cells,
		words:      slices.Clone(g.words),
		wordState:  state,
		accidental: slices.Clone(g.accidental),
		nextID:     g.nextID,
	}
}

// restore puts the grid back exactly as it was when the snapshot was taken.
// Placement fields of every word captured in the snapshot are reverted
// through their shared pointers.
func (g *Grid) restore(s snapshot) {
	for r := range s.cells {
		for c := range s.cells[r] {
			g.cells[r][c] = s.cells[r][c].clone()
		}
	}
	g.words = slices.Clone(s.words)
	for i, w := range s.words {
		*w = s.wordState[i]
	}
	g.accidental = slices.Clone(s.accidental)
	g.nextID = s.nextID
}
