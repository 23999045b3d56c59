package generator

import (
	"math"
	"slices"

	"crosswarped.com/xwgrid/pkg/grid"
)

// spot is a scored placement opportunity for one candidate word.
type spot struct {
	row, col int
	dir      grid.Direction
	score    float64
}

// findIntersections enumerates every legal crossing of the candidate with
// the words already on the grid: for each shared letter between the
// candidate and a placed word, the candidate is laid perpendicular through
// that cell. Spots are scored by letter commonality, proximity of the
// crossing to the candidate's own midpoint, a crowding penalty for busy
// neighborhoods, and a bonus toward whichever direction is currently
// under-represented.
func findIntersections(g *grid.Grid, c candidate) []spot {
	var spots []spot
	mid := float64(len(c.letters)-1) / 2

	across, down := directionCounts(g)

	for _, placed := range g.Words() {
		dir := placed.Dir.Perpendicular()
		for i, letter := range placed.Letters() {
			pr, pc := placed.CellPos(i)
			for j, own := range c.letters {
				if own != letter {
					continue
				}
				var row, col int
				if dir == grid.Down {
					row, col = pr-j, pc
				} else {
					row, col = pr, pc-j
				}
				if !g.CanPlaceWord(c.word, row, col, dir) {
					continue
				}
				score := letterCommonality(letter)
				score -= 0.1 * math.Abs(float64(j)-mid)
				score -= 0.15 * crowding(g, row, col, dir, len(c.letters))
				if dir == grid.Across && across < down {
					score += 0.3
				}
				if dir == grid.Down && down < across {
					score += 0.3
				}
				spots = append(spots, spot{row: row, col: col, dir: dir, score: score})
			}
		}
	}

	slices.SortFunc(spots, func(a, b spot) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		}
		return 0
	})
	return spots
}

// crowding counts letters adjacent to the proposed span, normalized per
// cell. Crowded placements tend to spawn accidental words.
func crowding(g *grid.Grid, row, col int, dir grid.Direction, length int) float64 {
	dr, dc := 0, 1
	if dir == grid.Down {
		dr, dc = 1, 0
	}
	neighbors := 0
	for i := 0; i < length; i++ {
		r, c := row+i*dr, col+i*dc
		for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			nr, nc := r+d[0], c+d[1]
			if g.InBounds(nr, nc) && g.CellAt(nr, nc).HasLetter() {
				neighbors++
			}
		}
	}
	return float64(neighbors) / float64(length)
}

// directionCounts tallies placed words per orientation.
func directionCounts(g *grid.Grid) (across, down int) {
	for _, w := range g.Words() {
		if w.Dir == grid.Across {
			across++
		} else {
			down++
		}
	}
	return across, down
}
