package grid

// TryPlaceWordWithValidation is the transactional placement the generator
// drives. It speculatively places the word, screens the touched
// neighborhood for accidental words, and either commits or restores a full
// snapshot. The grid is untouched on any failure path, including a panic
// between the speculative mutation and the commit.
//
// Beyond CanPlaceWord, a non-first word must share at least one cell with
// an already-placed word so the grid stays one connected structure. With a
// catalog and rejectInvalid set, the placement is rejected when it creates
// a catalog-invalid accidental word, or a catalog-valid one whose text
// duplicates an already-placed word.
func (g *Grid) TryPlaceWordWithValidation(w *Word, row, col int, dir Direction, cat Checker, rejectInvalid bool) bool {
	if w.Placed || !g.CanPlaceWord(w, row, col, dir) {
		return false
	}
	if len(g.words) > 0 && !g.sharesCellWithPlaced(w, row, col, dir) {
		return false
	}

	snap := g.takeSnapshot()
	prev := *w
	committed := false
	defer func() {
		if !committed {
			g.restore(snap)
			*w = prev
		}
	}()

	g.place(w, row, col, dir)

	if cat != nil && rejectInvalid {
		found := g.DetectAccidentalWordsNear(row, col, dir, w.Length(), cat)
		for _, a := range found {
			if !a.Valid {
				return false
			}
			// A valid accidental word spelling an existing answer would
			// put the same word in the puzzle twice.
			if g.hasOtherWordText(a.Text, w) || equalFold(a.Text, w.Text) {
				return false
			}
		}
		g.mergeAccidental(found)
	}

	g.RenumberCluesIncludingAccidental()
	committed = true
	return true
}

// sharesCellWithPlaced reports whether the proposed span crosses at least
// one cell that already holds a letter. CanPlaceWord has already
// guaranteed any such letter matches the word's own.
func (g *Grid) sharesCellWithPlaced(w *Word, row, col int, dir Direction) bool {
	dr, dc := dir.deltas()
	for i := 0; i < w.Length(); i++ {
		if g.letterAt(row+i*dr, col+i*dc) != 0 {
			return true
		}
	}
	return false
}

// hasOtherWordText reports whether a placed word other than except has the
// given text, compared case-insensitively.
func (g *Grid) hasOtherWordText(text string, except *Word) bool {
	for _, w := range g.words {
		if w != except && equalFold(w.Text, text) {
			return true
		}
	}
	return false
}
