// Package validate checks a finished crossword grid for structural
// soundness. Errors block acceptance; warnings and info never do.
package validate

import (
	"fmt"
	"strings"

	"crosswarped.com/xwgrid/pkg/grid"
)

const (
	minGridSide     = 3
	largeGridSide   = 25
	minWordCount    = 2
	lowFillPercent  = 20.0
	highFillPercent = 80.0
)

// Result is an ordered report of validation findings.
type Result struct {
	Errors   []string
	Warnings []string
	Info     []string
}

// Valid reports whether the grid passed: no errors. Warnings and info do
// not count against validity.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *Result) infof(format string, args ...any) {
	r.Info = append(r.Info, fmt.Sprintf(format, args...))
}

// Check runs the full structural pass over a grid: size bounds, per-word
// cell consistency, isolation, intersection letters, connectivity,
// duplicate answers, and fill observations.
func Check(g *grid.Grid) Result {
	var res Result

	checkSize(g, &res)
	words := g.Words()
	if len(words) == 0 {
		res.errorf("no words placed")
		return res
	}
	if len(words) < minWordCount {
		res.errorf("only %d word(s) placed, need at least %d", len(words), minWordCount)
	}

	for _, w := range words {
		checkWordCells(g, w, &res)
	}
	for _, w := range words {
		checkIsolation(g, w, words, &res)
	}
	checkIntersections(words, &res)
	checkConnectivity(words, &res)
	checkDuplicates(words, &res)
	checkFill(g, words, &res)

	return res
}

func checkSize(g *grid.Grid, res *Result) {
	if g.Rows() < minGridSide || g.Cols() < minGridSide {
		res.errorf("grid %dx%d is below the minimum %dx%d", g.Rows(), g.Cols(), minGridSide, minGridSide)
	}
	if g.Rows() > largeGridSide || g.Cols() > largeGridSide {
		res.warnf("grid %dx%d is very large; generation may be slow", g.Rows(), g.Cols())
	}
}

// checkWordCells verifies a word is placed in bounds and each occupied
// cell carries the word's letter and ownership.
func checkWordCells(g *grid.Grid, w *grid.Word, res *Result) {
	if !w.Placed {
		res.errorf("word %q is in the word list but not placed", w.Text)
		return
	}
	if !g.InBounds(w.Row, w.Col) || !g.InBounds(w.EndRow(), w.EndCol()) {
		res.errorf("word %q at (%d,%d) %s extends out of bounds", w.Text, w.Row, w.Col, w.Dir)
		return
	}
	for i, letter := range w.Letters() {
		r, c := w.CellPos(i)
		cell := g.CellAt(r, c)
		if cell.Letter != letter {
			res.errorf("word %q cell (%d,%d): grid holds %q, word needs %q", w.Text, r, c, cell.Letter, letter)
		}
		if !cell.OwnedBy(w.ID()) {
			res.errorf("word %q cell (%d,%d): cell does not record the word as owner", w.Text, r, c)
		}
	}
}

// checkIsolation verifies that any letter directly beside a word,
// perpendicular to its direction, belongs to exactly one word that
// properly crosses at that point. A catalog-valid bonus run counts as a
// crossing, so grids with promoted accidental words remain valid.
func checkIsolation(g *grid.Grid, w *grid.Word, words []*grid.Word, res *Result) {
	pdr, pdc := 0, 1
	if w.Dir == grid.Across {
		pdr, pdc = 1, 0
	}
	for i := 0; i < w.Length(); i++ {
		r, c := w.CellPos(i)
		for _, side := range [2]int{-1, 1} {
			nr, nc := r+side*pdr, c+side*pdc
			if !g.InBounds(nr, nc) {
				continue
			}
			ncell := g.CellAt(nr, nc)
			if ncell.Blocked || !ncell.HasLetter() {
				continue
			}
			// Count words of the other orientation covering both the
			// neighbor and this word's cell.
			crossing := 0
			for _, o := range words {
				if o == w || o.Dir == w.Dir {
					continue
				}
				if _, ok := o.Covers(nr, nc); !ok {
					continue
				}
				if _, ok := o.Covers(r, c); ok {
					crossing++
				}
			}
			if crossing == 0 {
				for _, a := range g.Accidental() {
					if a.Dir == w.Dir || !a.Valid {
						continue
					}
					if spanCovers(a, nr, nc) && spanCovers(a, r, c) {
						crossing++
					}
				}
			}
			if crossing != 1 {
				res.errorf("word %q cell (%d,%d): adjacent letter at (%d,%d) is covered by %d crossing word(s), want exactly 1",
					w.Text, r, c, nr, nc, crossing)
			}
		}
	}
}

func spanCovers(a grid.AccidentalWord, r, c int) bool {
	if a.Dir == grid.Across {
		return r == a.Row && c >= a.Col && c < a.Col+a.Length
	}
	return c == a.Col && r >= a.Row && r < a.Row+a.Length
}

// checkIntersections verifies every crossing of two differently-oriented
// words has matching letters.
func checkIntersections(words []*grid.Word, res *Result) {
	for i, a := range words {
		for _, b := range words[i+1:] {
			if a.Dir == b.Dir {
				continue
			}
			across, down := a, b
			if a.Dir == grid.Down {
				across, down = b, a
			}
			if down.Col < across.Col || down.Col > across.EndCol() {
				continue
			}
			if across.Row < down.Row || across.Row > down.EndRow() {
				continue
			}
			al := across.Letters()[down.Col-across.Col]
			dl := down.Letters()[across.Row-down.Row]
			if al != dl {
				res.errorf("words %q and %q cross at (%d,%d) with different letters %q and %q",
					across.Text, down.Text, across.Row, down.Col, al, dl)
			}
		}
	}
}

func checkDuplicates(words []*grid.Word, res *Result) {
	seen := map[string]bool{}
	for _, w := range words {
		key := strings.ToUpper(w.Text)
		if seen[key] {
			res.errorf("word %q appears more than once", w.Text)
		}
		seen[key] = true
	}
}

func checkFill(g *grid.Grid, words []*grid.Word, res *Result) {
	stats := g.Stats()
	if stats.FillPercent < lowFillPercent {
		res.warnf("fill is %.1f%%, below %.0f%%", stats.FillPercent, lowFillPercent)
	}
	if stats.FillPercent > highFillPercent {
		res.infof("fill is %.1f%%, unusually dense", stats.FillPercent)
	}
	total := 0
	for _, w := range words {
		total += w.Length()
	}
	res.infof("%d words, average length %.1f, fill %.1f%%",
		len(words), float64(total)/float64(len(words)), stats.FillPercent)
}
