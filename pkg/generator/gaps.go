package generator

import (
	"context"
	"slices"

	"crosswarped.com/xwgrid/pkg/grid"
)

const (
	gapPasses     = 3
	gapTopK       = 3
	gapCandidates = 12
)

// slot is a fillable stretch of a row or column: a maximal run of empty
// cells extended over the crossing letters adjacent to it, so a word laid
// into the slot overlaps those letters and stays connected. touchPoints
// counts the intersection opportunities the slot offers: fixed letters
// inside it plus perpendicular letters bordering it.
type slot struct {
	row, col    int
	dir         grid.Direction
	length      int
	touchPoints int
}

// fillGaps runs bounded gap-filling passes: slots ranked by touch points
// then length, each tried with scored length-matching candidates. A pass
// that places nothing ends the phase early.
func (a *attempt) fillGaps(ctx context.Context) error {
	for pass := 0; pass < gapPasses; pass++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		progress := false
		for _, s := range a.findSlots() {
			if a.fillSlot(s) {
				progress = true
			}
		}
		if !progress {
			break
		}
	}
	return nil
}

// findSlots scans every row and column for slots, ranked by touch points
// then length.
func (a *attempt) findSlots() []slot {
	var slots []slot
	for r := 0; r < a.g.Rows(); r++ {
		slots = append(slots, a.scanLine(r, 0, grid.Across)...)
	}
	for c := 0; c < a.g.Cols(); c++ {
		slots = append(slots, a.scanLine(0, c, grid.Down)...)
	}
	slices.SortFunc(slots, func(x, y slot) int {
		if x.touchPoints != y.touchPoints {
			return y.touchPoints - x.touchPoints
		}
		return y.length - x.length
	})
	return slots
}

// scanLine walks one row or column collecting slots: each maximal empty
// run is extended over the letter runs immediately before and after it.
func (a *attempt) scanLine(row, col int, dir grid.Direction) []slot {
	dr, dc := 0, 1
	length := a.g.Cols()
	if dir == grid.Down {
		dr, dc = 1, 0
		length = a.g.Rows()
	}
	cellAt := func(i int) grid.Cell { return a.g.CellAt(row+i*dr, col+i*dc) }

	var slots []slot
	for i := 0; i < length; {
		c := cellAt(i)
		if c.Blocked || !c.Empty() {
			i++
			continue
		}
		// A maximal empty run starts here.
		runStart, runEnd := i, i
		for runEnd+1 < length {
			next := cellAt(runEnd + 1)
			if next.Blocked || !next.Empty() {
				break
			}
			runEnd++
		}
		i = runEnd + 1

		// Extend over adjacent letters so a slot word crosses them.
		start, end := runStart, runEnd
		for start > 0 && cellAt(start-1).HasLetter() {
			start--
		}
		for end+1 < length && cellAt(end+1).HasLetter() {
			end++
		}

		s := slot{length: end - start + 1, dir: dir}
		if dir == grid.Across {
			s.row, s.col = row, col+start
		} else {
			s.row, s.col = row+start, col
		}
		if s.length >= a.opts.MinWordLength {
			s.touchPoints = a.touchPoints(s)
			slots = append(slots, s)
		}
	}
	return slots
}

// touchPoints counts intersection opportunities: letters fixed inside the
// slot and letters directly beside it perpendicular to its direction.
func (a *attempt) touchPoints(s slot) int {
	dr, dc := 0, 1
	pdr, pdc := 1, 0
	if s.dir == grid.Down {
		dr, dc, pdr, pdc = 1, 0, 0, 1
	}
	points := 0
	for i := 0; i < s.length; i++ {
		r, c := s.row+i*dr, s.col+i*dc
		if a.g.CellAt(r, c).HasLetter() {
			points++
			continue
		}
		for _, side := range [2]int{-1, 1} {
			nr, nc := r+side*pdr, c+side*pdc
			if a.g.InBounds(nr, nc) && a.g.CellAt(nr, nc).HasLetter() {
				points++
				break
			}
		}
	}
	return points
}

// slotAffinity scores one candidate's fit in a slot by the intersections
// it would realize: a point for each fixed letter it overlaps, plus the
// commonality of each letter it would lay beside a perpendicular
// neighbor, since a common letter there is likelier to complete a word.
func (a *attempt) slotAffinity(s slot, letters []rune) float64 {
	dr, dc := 0, 1
	pdr, pdc := 1, 0
	if s.dir == grid.Down {
		dr, dc, pdr, pdc = 1, 0, 0, 1
	}
	var score float64
	for i := 0; i < s.length && i < len(letters); i++ {
		r, c := s.row+i*dr, s.col+i*dc
		if a.g.CellAt(r, c).HasLetter() {
			score++
			continue
		}
		for _, side := range [2]int{-1, 1} {
			nr, nc := r+side*pdr, c+side*pdc
			if a.g.InBounds(nr, nc) && a.g.CellAt(nr, nc).HasLetter() {
				score += letterCommonality(letters[i])
				break
			}
		}
	}
	return score
}

// fillSlot tries scored, length-matching candidates in the slot,
// randomizing among the best few.
func (a *attempt) fillSlot(s slot) bool {
	type scored struct {
		cand  candidate
		score float64
	}
	var pool []scored
	for _, c := range a.cands {
		if len(c.letters) != s.length || a.used[textKey(c.word.Text)] {
			continue
		}
		if !a.g.CanPlaceWord(c.word, s.row, s.col, s.dir) {
			continue
		}
		score := a.slotAffinity(s, c.letters) + letterQuality(c.letters)
		pool = append(pool, scored{cand: c, score: score})
		if len(pool) >= gapCandidates {
			break
		}
	}
	if len(pool) == 0 {
		return false
	}
	slices.SortFunc(pool, func(x, y scored) int {
		switch {
		case x.score > y.score:
			return -1
		case x.score < y.score:
			return 1
		}
		return 0
	})

	// Randomized tie-breaking among the top few; fall through the rest in
	// order if the sampled one is rejected.
	pick := weightedPick(pool, gapTopK, a.gen.rng)
	if a.place(pick.cand, s.row, s.col, s.dir) {
		return true
	}
	for _, p := range pool {
		if a.place(p.cand, s.row, s.col, s.dir) {
			return true
		}
	}
	return false
}
