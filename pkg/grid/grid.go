// Package grid holds the crossword cell grid and its placement primitives:
// bounds and letter-compatibility checks, transactional placement with
// accidental-word screening, clue numbering, and grid statistics.
package grid

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrBadDimensions is returned by New for non-positive grid sizes.
var ErrBadDimensions = errors.New("grid dimensions must be positive")

// Checker is the slice of the word catalog the grid needs: a validity test
// for arbitrary strings and a clue lookup for valid ones.
type Checker interface {
	Contains(text string) bool
	ClueFor(text string) (string, bool)
}

// Grid is a rectangular crossword grid. All mutation goes through the
// placement methods; a Grid is not safe for concurrent use.
type Grid struct {
	rows, cols int
	cells      [][]Cell
	words      []*Word
	accidental []AccidentalWord
	nextID     WordID
}

// New creates an empty grid.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, rows, cols)
	}
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, cols)
	}
	return &Grid{rows: rows, cols: cols, cells: cells, nextID: 1}, nil
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) lies on the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// CellAt returns a copy of the cell at (row, col). The copy's owner list is
// shared with the grid and must not be mutated.
func (g *Grid) CellAt(row, col int) Cell {
	return g.cells[row][col]
}

// Words returns the placed words in placement order.
func (g *Grid) Words() []*Word {
	return slices.Clone(g.words)
}

// Accidental returns the accidental words found by the most recent scan.
func (g *Grid) Accidental() []AccidentalWord {
	return slices.Clone(g.accidental)
}

// WordAt returns the placed word with the given orientation starting at
// (row, col), if any.
func (g *Grid) WordAt(row, col int, dir Direction) *Word {
	for _, w := range g.words {
		if w.Row == row && w.Col == col && w.Dir == dir {
			return w
		}
	}
	return nil
}

// letterAt returns the letter at (row, col), or zero when the position is
// off-grid, blocked, empty, or filler.
func (g *Grid) letterAt(row, col int) rune {
	if !g.InBounds(row, col) {
		return 0
	}
	c := &g.cells[row][col]
	if c.Blocked || !c.HasLetter() {
		return 0
	}
	return c.Letter
}

// CanPlaceWord reports whether the word could legally occupy the span
// starting at (row, col) in direction dir: both endpoints in bounds, every
// target cell empty or already holding the same letter, and no letter
// directly before or after the span in its own direction.
func (g *Grid) CanPlaceWord(w *Word, row, col int, dir Direction) bool {
	letters := w.Letters()
	if len(letters) == 0 {
		return false
	}
	dr, dc := dir.deltas()
	endRow, endCol := row+(len(letters)-1)*dr, col+(len(letters)-1)*dc
	if !g.InBounds(row, col) || !g.InBounds(endRow, endCol) {
		return false
	}
	for i, want := range letters {
		c := &g.cells[row+i*dr][col+i*dc]
		if c.Blocked {
			return false
		}
		if c.HasLetter() && c.Letter != want {
			return false
		}
	}
	// A letter butting the span end-to-end would silently extend another
	// word without an intended boundary.
	if g.letterAt(row-dr, col-dc) != 0 {
		return false
	}
	if g.letterAt(endRow+dr, endCol+dc) != 0 {
		return false
	}
	return true
}

// TryPlaceWord places the word if CanPlaceWord allows it, writing each
// letter into its cell, recording ownership, and renumbering clues. It
// reports whether the word was placed; on failure nothing is mutated.
func (g *Grid) TryPlaceWord(w *Word, row, col int, dir Direction) bool {
	if w.Placed || !g.CanPlaceWord(w, row, col, dir) {
		return false
	}
	g.place(w, row, col, dir)
	g.RenumberClues()
	return true
}

// place performs the raw mutation shared by TryPlaceWord and the validated
// placement path. The caller has already checked CanPlaceWord.
func (g *Grid) place(w *Word, row, col int, dir Direction) {
	if w.id == 0 {
		w.id = g.nextID
		g.nextID++
	}
	w.Row, w.Col, w.Dir, w.Placed = row, col, dir, true
	dr, dc := dir.deltas()
	for i, letter := range w.Letters() {
		c := &g.cells[row+i*dr][col+i*dc]
		c.Letter = letter
		c.PartOfWord = true
		c.addOwner(w.id)
	}
	g.words = append(g.words, w)
}

// RemoveWord takes a placed word off the grid, clearing only the cells it
// exclusively owns, and renumbers the remaining clues.
func (g *Grid) RemoveWord(w *Word) bool {
	idx := slices.Index(g.words, w)
	if idx < 0 {
		return false
	}
	dr, dc := w.Dir.deltas()
	for i := 0; i < w.Length(); i++ {
		c := &g.cells[w.Row+i*dr][w.Col+i*dc]
		c.removeOwner(w.id)
		if len(c.Owners) == 0 {
			c.Letter = 0
			c.PartOfWord = false
		}
	}
	g.words = slices.Delete(g.words, idx, idx+1)
	w.Placed = false
	w.Number = 0
	g.RenumberClues()
	return true
}

// HasWordText reports whether any placed word has the given text,
// compared case-insensitively.
func (g *Grid) HasWordText(text string) bool {
	return g.hasOtherWordText(text, nil)
}

// FillEmptyCells overwrites every still-empty, non-blocked cell with the
// filler marker. Run once a puzzle is accepted; filler cells are for
// presentation only.
func (g *Grid) FillEmptyCells() {
	for r := range g.cells {
		for c := range g.cells[r] {
			cell := &g.cells[r][c]
			if !cell.Blocked && cell.Empty() {
				cell.Letter = Filler
			}
		}
	}
}

// Stats summarizes cell usage on a grid.
type Stats struct {
	TotalCells   int
	FilledCells  int
	BlockedCells int
	EmptyCells   int
	WordCount    int
	FillPercent  float64
}

// Stats computes cell counts and the fill percentage.
func (g *Grid) Stats() Stats {
	s := Stats{TotalCells: g.rows * g.cols, WordCount: len(g.words)}
	for r := range g.cells {
		for c := range g.cells[r] {
			cell := &g.cells[r][c]
			switch {
			case cell.Blocked:
				s.BlockedCells++
			case cell.HasLetter():
				s.FilledCells++
			default:
				s.EmptyCells++
			}
		}
	}
	if s.TotalCells > 0 {
		s.FillPercent = float64(s.FilledCells) / float64(s.TotalCells) * 100
	}
	return s
}

// Repr returns a printable rendering of the grid, one row per line.
// Empty cells print as '.', blocked cells as '#'.
func (g *Grid) Repr() string {
	var sb strings.Builder
	for r := range g.cells {
		for c := range g.cells[r] {
			cell := &g.cells[r][c]
			switch {
			case cell.Blocked:
				sb.WriteByte('#')
			case cell.Empty():
				sb.WriteByte('.')
			default:
				sb.WriteRune(cell.Letter)
			}
			if c < g.cols-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// DebugString renders the grid plus every placed word with its number,
// position, and direction.
func (g *Grid) DebugString() string {
	var sb strings.Builder
	sb.WriteString(g.Repr())
	for _, w := range g.words {
		fmt.Fprintf(&sb, "%d. %s (%d,%d) %s\n", w.Number, w.Text, w.Row, w.Col, w.Dir)
	}
	for _, a := range g.accidental {
		if a.Include {
			fmt.Fprintf(&sb, "%d. %s (%d,%d) %s [bonus]\n", a.Number, a.Text, a.Row, a.Col, a.Dir)
		}
	}
	return sb.String()
}
