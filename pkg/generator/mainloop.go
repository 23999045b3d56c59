package generator

import (
	"context"
	"math"
)

const (
	// failureRunLimit is the number of consecutive rejected candidates at
	// one target length before the target shrinks.
	failureRunLimit = 6
	// spotsPerWord bounds how many scored crossings are tried per word.
	spotsPerWord = 8
)

// mainLoop is the adaptive placement phase: it repeatedly picks an untried
// candidate near the current target length and tries its best-scored
// crossings. A run of failures shrinks the target; the loop ends when the
// target falls below the minimum length or the attempt budget runs out.
func (a *attempt) mainLoop(ctx context.Context) error {
	target := a.opts.MaxWordLength
	budget := a.opts.Rows * a.opts.Cols * 4
	failures := 0
	tried := map[string]bool{}

	for i := 0; i < budget && target >= a.opts.MinWordLength; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		c, ok := a.selectNear(target, tried)
		if !ok {
			// Everything near this length has been tried; move down.
			target--
			failures = 0
			clear(tried)
			continue
		}
		tried[textKey(c.word.Text)] = true

		placed := false
		spots := findIntersections(a.g, c)
		for _, s := range spots[:min(spotsPerWord, len(spots))] {
			if a.place(c, s.row, s.col, s.dir) {
				placed = true
				break
			}
		}

		if placed {
			failures = 0
			continue
		}
		failures++
		if failures >= failureRunLimit {
			target--
			failures = 0
			clear(tried)
		}
	}
	return nil
}

// selectNear picks the unused, untried candidate whose length is closest
// to the target, breaking ties on letter quality.
func (a *attempt) selectNear(target int, tried map[string]bool) (candidate, bool) {
	best := -1
	bestDist, bestQuality := math.MaxFloat64, -1.0
	for i, c := range a.cands {
		key := textKey(c.word.Text)
		if a.used[key] || tried[key] {
			continue
		}
		dist := math.Abs(float64(len(c.letters) - target))
		quality := letterQuality(c.letters)
		if dist < bestDist || (dist == bestDist && quality > bestQuality) {
			best, bestDist, bestQuality = i, dist, quality
		}
	}
	if best < 0 {
		return candidate{}, false
	}
	return a.cands[best], true
}
