package grid

import (
	"strings"
	"unicode/utf8"
)

// Direction is the orientation of a placed word.
type Direction int

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "across"
}

// Perpendicular returns the other direction.
func (d Direction) Perpendicular() Direction {
	if d == Across {
		return Down
	}
	return Across
}

// deltas returns the per-step row and column increments for the direction.
func (d Direction) deltas() (dr, dc int) {
	if d == Down {
		return 1, 0
	}
	return 0, 1
}

// WordID is a small integer handle issued by a Grid when a word is first
// placed. Zero means the word has never been placed.
type WordID int

// Word is a catalog word plus its placement on a grid. Text, Clue, Category
// and Difficulty never change after construction; the placement fields are
// owned by the Grid the word is placed on.
type Word struct {
	Text       string
	Clue       string
	Category   string
	Difficulty int

	Row    int
	Col    int
	Dir    Direction
	Number int
	Placed bool

	id WordID
}

// NewWord creates an unplaced word.
func NewWord(text, clue string) *Word {
	return &Word{Text: text, Clue: clue}
}

// ID returns the handle the grid issued for this word, or zero if the word
// was never placed.
func (w *Word) ID() WordID {
	return w.id
}

// Length returns the word length in letters.
func (w *Word) Length() int {
	return utf8.RuneCountInString(w.Text)
}

// Letters returns the word's letters upper-cased, one rune per cell.
func (w *Word) Letters() []rune {
	return []rune(strings.ToUpper(w.Text))
}

// EndRow returns the row of the word's last cell.
func (w *Word) EndRow() int {
	if w.Dir == Down {
		return w.Row + w.Length() - 1
	}
	return w.Row
}

// EndCol returns the column of the word's last cell.
func (w *Word) EndCol() int {
	if w.Dir == Across {
		return w.Col + w.Length() - 1
	}
	return w.Col
}

// CellPos returns the coordinates of the word's i-th cell.
func (w *Word) CellPos(i int) (row, col int) {
	dr, dc := w.Dir.deltas()
	return w.Row + i*dr, w.Col + i*dc
}

// Covers reports whether the placed word occupies (row, col), and if so at
// which offset within the word.
func (w *Word) Covers(row, col int) (offset int, ok bool) {
	if !w.Placed {
		return 0, false
	}
	switch w.Dir {
	case Across:
		if row == w.Row && col >= w.Col && col <= w.EndCol() {
			return col - w.Col, true
		}
	case Down:
		if col == w.Col && row >= w.Row && row <= w.EndRow() {
			return row - w.Row, true
		}
	}
	return 0, false
}

// equalFold reports case-insensitive equality of two word texts.
func equalFold(a, b string) bool {
	return strings.EqualFold(a, b)
}
