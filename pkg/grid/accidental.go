package grid

// AccidentalWord is a maximal run of letters (length >= 2) that is not the
// span of an intentionally placed word at that exact start and direction.
// Valid is meaningless until Checked is set by a catalog lookup.
type AccidentalWord struct {
	Text    string
	Row     int
	Col     int
	Dir     Direction
	Length  int
	Checked bool
	Valid   bool
	Include bool
	Number  int
	Clue    string
}

// runAt extracts the maximal letter run through (row, col) in the given
// direction, walking backward to the run's true start first. Runs shorter
// than two letters return ok=false.
func (g *Grid) runAt(row, col int, dir Direction) (a AccidentalWord, ok bool) {
	if g.letterAt(row, col) == 0 {
		return a, false
	}
	dr, dc := dir.deltas()
	for g.letterAt(row-dr, col-dc) != 0 {
		row, col = row-dr, col-dc
	}
	var text []rune
	r, c := row, col
	for {
		letter := g.letterAt(r, c)
		if letter == 0 {
			break
		}
		text = append(text, letter)
		r, c = r+dr, c+dc
	}
	if len(text) < 2 {
		return a, false
	}
	return AccidentalWord{Text: string(text), Row: row, Col: col, Dir: dir, Length: len(text)}, true
}

// isIntentionalSpan reports whether a placed word occupies exactly this
// start and direction with the same text (case-insensitive).
func (g *Grid) isIntentionalSpan(a AccidentalWord) bool {
	w := g.WordAt(a.Row, a.Col, a.Dir)
	return w != nil && equalFold(w.Text, a.Text)
}

// classify fills in the catalog verdict for each candidate: validity,
// clue text, and whether the word may be promoted to a bonus clue.
func (g *Grid) classify(candidates []AccidentalWord, cat Checker) []AccidentalWord {
	out := candidates[:0]
	for _, a := range candidates {
		if g.isIntentionalSpan(a) {
			continue
		}
		if cat != nil {
			a.Checked = true
			a.Valid = cat.Contains(a.Text)
			if a.Valid {
				if clue, ok := cat.ClueFor(a.Text); ok {
					a.Clue = clue
				}
				a.Include = true
			}
		}
		out = append(out, a)
	}
	return out
}

// DetectAccidentalWords scans the whole grid for accidental words: every
// maximal horizontal and vertical letter run of length >= 2 that is not an
// intentional word span. With a catalog the candidates are classified and
// the result is remembered for clue numbering; a nil catalog leaves the
// validity flags unset.
func (g *Grid) DetectAccidentalWords(cat Checker) []AccidentalWord {
	var found []AccidentalWord
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.letterAt(r, c) == 0 {
				continue
			}
			// Only run starts: skip continuations of a letter to the
			// left or above.
			if g.letterAt(r, c-1) == 0 {
				if a, ok := g.runAt(r, c, Across); ok {
					found = append(found, a)
				}
			}
			if g.letterAt(r-1, c) == 0 {
				if a, ok := g.runAt(r, c, Down); ok {
					found = append(found, a)
				}
			}
		}
	}
	found = g.classify(found, cat)
	g.accidental = found
	return found
}

// DetectAccidentalWordsNear scans only the runs touched by a word newly
// placed at (row, col): the perpendicular run through each of its cells,
// its own-direction run, and the cells immediately before and after the
// span, which catch runs that merged with a neighbor. Classification
// matches the full scan; the grid's remembered accidental list is not
// replaced.
func (g *Grid) DetectAccidentalWordsNear(row, col int, dir Direction, length int, cat Checker) []AccidentalWord {
	var found []AccidentalWord
	seen := func(a AccidentalWord) bool {
		for _, f := range found {
			if f.Row == a.Row && f.Col == a.Col && f.Dir == a.Dir {
				return true
			}
		}
		return false
	}
	add := func(r, c int, d Direction) {
		if a, ok := g.runAt(r, c, d); ok && !seen(a) {
			found = append(found, a)
		}
	}

	dr, dc := dir.deltas()
	perp := dir.Perpendicular()
	for i := 0; i < length; i++ {
		add(row+i*dr, col+i*dc, perp)
	}
	// The word's own run, plus the runs through its bordering cells.
	add(row, col, dir)
	add(row-dr, col-dc, dir)
	add(row+length*dr, col+length*dc, dir)

	return g.classify(found, cat)
}

// mergeAccidental folds newly detected accidental words into the grid's
// remembered list. Entries are keyed by start position and direction, so
// a run the new placement lengthened replaces its shorter ancestor; any
// remaining entry whose run no longer starts where it was seen is stale
// and dropped.
func (g *Grid) mergeAccidental(found []AccidentalWord) {
	for _, a := range found {
		replaced := false
		for i := range g.accidental {
			old := g.accidental[i]
			if old.Row == a.Row && old.Col == a.Col && old.Dir == a.Dir {
				g.accidental[i] = a
				replaced = true
				break
			}
		}
		if !replaced {
			g.accidental = append(g.accidental, a)
		}
	}

	kept := g.accidental[:0]
	for _, a := range g.accidental {
		cur, ok := g.runAt(a.Row, a.Col, a.Dir)
		if !ok || cur.Row != a.Row || cur.Col != a.Col || !equalFold(cur.Text, a.Text) {
			continue
		}
		kept = append(kept, a)
	}
	g.accidental = kept
}
