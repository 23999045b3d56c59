package generator

import (
	"math"
	"slices"

	"crosswarped.com/xwgrid/pkg/grid"
)

const anchorTopK = 5

// placeAnchors seeds the grid with two crossing words: a long, letter-rich
// first anchor laid horizontally through the center, and a second anchor
// chosen for shared-letter count and new-letter coverage, crossed through
// the first.
func (a *attempt) placeAnchors() bool {
	first, ok := a.placeFirstAnchor()
	if !ok {
		return false
	}
	return a.placeSecondAnchor(first)
}

func (a *attempt) placeFirstAnchor() (candidate, bool) {
	var pool []candidate
	for _, c := range a.cands {
		if len(c.letters) <= a.opts.Cols {
			pool = append(pool, c)
		}
	}
	if len(pool) == 0 {
		return candidate{}, false
	}

	type ranked struct {
		cand  candidate
		score float64
	}
	scored := make([]ranked, len(pool))
	for i, c := range pool {
		scored[i] = ranked{cand: c, score: anchorScore(c, a.cands, a.opts.MinWordLength, a.opts.MaxWordLength)}
	}
	slices.SortFunc(scored, func(x, y ranked) int {
		switch {
		case x.score > y.score:
			return -1
		case x.score < y.score:
			return 1
		}
		return 0
	})

	// Sample from the top few so repeated runs differ; fall through the
	// pool in order if the sampled word somehow cannot be placed.
	row := a.opts.Rows / 2
	pick := weightedPick(scored, anchorTopK, a.gen.rng)
	if col := (a.opts.Cols - len(pick.cand.letters)) / 2; a.g.TryPlaceWord(pick.cand.word, row, col, grid.Across) {
		a.used[textKey(pick.cand.word.Text)] = true
		return pick.cand, true
	}
	for _, r := range scored {
		if col := (a.opts.Cols - len(r.cand.letters)) / 2; a.g.TryPlaceWord(r.cand.word, row, col, grid.Across) {
			a.used[textKey(r.cand.word.Text)] = true
			return r.cand, true
		}
	}
	return candidate{}, false
}

// placeSecondAnchor crosses a word through the first anchor, preferring
// candidates that share letters with it while bringing new letters to the
// grid, at crossings near both the anchor's midpoint and the grid center.
func (a *attempt) placeSecondAnchor(first candidate) bool {
	type ranked struct {
		cand  candidate
		score float64
	}
	var pool []ranked
	for _, c := range a.cands {
		if a.used[textKey(c.word.Text)] {
			continue
		}
		shared := first.set.SharedCount(c.set)
		if shared == 0 {
			continue
		}
		pool = append(pool, ranked{cand: c, score: float64(shared) + 0.5*float64(first.set.NewCount(c.set))})
	}
	slices.SortFunc(pool, func(x, y ranked) int {
		switch {
		case x.score > y.score:
			return -1
		case x.score < y.score:
			return 1
		}
		return 0
	})

	firstWord := first.word
	for _, r := range pool {
		spots := a.secondAnchorSpots(firstWord, r.cand)
		for _, s := range spots {
			if a.place(r.cand, s.row, s.col, s.dir) {
				return true
			}
		}
	}
	return false
}

// secondAnchorSpots enumerates crossings of the candidate through the
// first anchor, scored by proximity to the anchor's midpoint and to the
// grid center.
func (a *attempt) secondAnchorSpots(anchor *grid.Word, c candidate) []spot {
	var spots []spot
	anchorMid := float64(anchor.Length()-1) / 2
	centerRow := float64(a.opts.Rows-1) / 2
	centerCol := float64(a.opts.Cols-1) / 2

	for i, letter := range anchor.Letters() {
		pr, pc := anchor.CellPos(i)
		for j, own := range c.letters {
			if own != letter {
				continue
			}
			row, col := pr-j, pc
			if !a.g.CanPlaceWord(c.word, row, col, grid.Down) {
				continue
			}
			score := -0.2 * math.Abs(float64(i)-anchorMid)
			score -= 0.1 * (math.Abs(float64(pr)-centerRow) + math.Abs(float64(pc)-centerCol))
			spots = append(spots, spot{row: row, col: col, dir: grid.Down, score: score})
		}
	}
	slices.SortFunc(spots, func(x, y spot) int {
		switch {
		case x.score > y.score:
			return -1
		case x.score < y.score:
			return 1
		}
		return 0
	})
	return spots
}
