package grid

import "sort"

// RenumberClues clears all clue numbers and assigns fresh ones to the
// starting cells of placed words: starts are grouped by cell, ordered
// row-major, and numbered sequentially from 1. Words sharing a start cell
// share a number.
func (g *Grid) RenumberClues() {
	g.renumber(false)
}

// RenumberCluesIncludingAccidental works like RenumberClues but also
// numbers accidental words marked for inclusion, except those whose start
// and direction are already covered by an intentional word — that cell is
// treated as already intentional and receives no bonus number.
func (g *Grid) RenumberCluesIncludingAccidental() {
	g.renumber(true)
}

type startCell struct {
	row, col int
}

func (g *Grid) renumber(includeAccidental bool) {
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c].Number = 0
		}
	}
	for _, w := range g.words {
		w.Number = 0
	}
	for i := range g.accidental {
		g.accidental[i].Number = 0
	}

	starts := make(map[startCell]bool)
	for _, w := range g.words {
		starts[startCell{w.Row, w.Col}] = true
	}
	if includeAccidental {
		for _, a := range g.accidental {
			if !a.Include {
				continue
			}
			if g.WordAt(a.Row, a.Col, a.Dir) != nil {
				continue
			}
			starts[startCell{a.Row, a.Col}] = true
		}
	}

	ordered := make([]startCell, 0, len(starts))
	for s := range starts {
		ordered = append(ordered, s)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].row != ordered[j].row {
			return ordered[i].row < ordered[j].row
		}
		return ordered[i].col < ordered[j].col
	})

	for n, s := range ordered {
		num := n + 1
		g.cells[s.row][s.col].Number = num
		for _, w := range g.words {
			if w.Row == s.row && w.Col == s.col {
				w.Number = num
			}
		}
		if includeAccidental {
			for i := range g.accidental {
				a := &g.accidental[i]
				if a.Include && a.Row == s.row && a.Col == s.col && g.WordAt(a.Row, a.Col, a.Dir) == nil {
					a.Number = num
				}
			}
		}
	}
}
