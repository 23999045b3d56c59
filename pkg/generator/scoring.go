package generator

import (
	"math"
	"math/rand/v2"
	"slices"

	"crosswarped.com/xwgrid/pkg/grid"
)

// Letter classes used by the placement heuristics. The word catalog is
// Swedish, so Å, Ä and Ö count as locale letters and the consonant list
// follows Swedish letter frequency.
const (
	vowels           = "AEIOUY"
	localeLetters    = "ÅÄÖ"
	commonConsonants = "RSTNLDG"
)

// commonality is a rough per-letter frequency weight in [0,1]. Letters
// absent from the table score 0.02.
var commonality = map[rune]float64{
	'A': 0.93, 'E': 1.0, 'R': 0.84, 'T': 0.87, 'N': 0.88,
	'S': 0.66, 'L': 0.53, 'I': 0.58, 'D': 0.47, 'O': 0.45,
	'G': 0.40, 'K': 0.32, 'M': 0.35, 'H': 0.21, 'V': 0.24,
	'U': 0.19, 'F': 0.22, 'P': 0.18, 'B': 0.13, 'Ä': 0.18,
	'Ö': 0.13, 'Å': 0.16, 'C': 0.15, 'J': 0.07, 'X': 0.02, 'Y': 0.07,
}

func letterCommonality(r rune) float64 {
	if c, ok := commonality[r]; ok {
		return c
	}
	return 0.02
}

// letterQuality scores how friendly a word's letters are to future
// crossings: vowels and common consonants help, locale letters get a
// small extra nudge because so few words can cross anything else there.
func letterQuality(letters []rune) float64 {
	var score float64
	for _, r := range letters {
		switch {
		case containsRune(vowels, r):
			score += 1.0
		case containsRune(commonConsonants, r):
			score += 0.8
		case containsRune(localeLetters, r):
			score += 0.4
		default:
			score += letterCommonality(r)
		}
	}
	return score / float64(len(letters))
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}

// candidate is a catalog word annotated with the per-run scoring state.
type candidate struct {
	word    *grid.Word
	letters []rune
	set     letterSet
	score   float64
}

func newCandidate(w *grid.Word) candidate {
	letters := w.Letters()
	return candidate{word: w, letters: letters, set: lettersOf(letters)}
}

// scoreConnectivity ranks candidates by how easily they can intersect the
// rest of the pool: each letter contributes the inverse square root of its
// frequency within the word, weighted by how many other candidates contain
// it, plus letter-class bonuses and a penalty for very long words. A small
// random jitter diversifies repeated runs.
func scoreConnectivity(cands []candidate, rng *rand.Rand) {
	containing := map[rune]int{}
	for _, c := range cands {
		var seen letterSet
		for _, r := range c.letters {
			if !seen.Contains(r) {
				seen.Add(r)
				containing[r]++
			}
		}
	}

	for i := range cands {
		c := &cands[i]
		inWord := map[rune]int{}
		for _, r := range c.letters {
			inWord[r]++
		}
		var score float64
		for _, r := range c.letters {
			others := float64(containing[r] - 1)
			score += others / math.Sqrt(float64(inWord[r])) / float64(max(1, len(cands)))
		}
		score += letterQuality(c.letters)
		if len(c.letters) > 9 {
			score -= 0.15 * float64(len(c.letters)-9)
		}
		c.score = score + rng.Float64()*0.1
	}

	slices.SortFunc(cands, func(a, b candidate) int {
		if a.score != b.score {
			if a.score > b.score {
				return -1
			}
			return 1
		}
		return len(b.letters) - len(a.letters)
	})
}

// anchorScore blends letter quality, a length-band bonus, distinct-letter
// coverage, and the word's normalized intersection potential against the
// rest of the pool.
func anchorScore(c candidate, cands []candidate, minLen, maxLen int) float64 {
	score := letterQuality(c.letters)

	n := len(c.letters)
	switch {
	case n >= maxLen-1:
		score += 1.0
	case n >= (minLen+maxLen)/2:
		score += 0.6
	default:
		score += 0.2
	}

	score += 0.1 * float64(c.set.Count())

	// Intersection potential: over the word's distinct letters, how many
	// other candidates carry each.
	potential := 0
	for _, other := range cands {
		if other.word == c.word {
			continue
		}
		potential += c.set.SharedCount(other.set)
	}
	if len(cands) > 1 {
		score += float64(potential) / float64(len(cands)-1)
	}
	return score
}

// weightedPick samples one of the top-k candidates with linearly decaying
// weights, favoring but not forcing the best choice. The slice must be
// sorted best-first.
func weightedPick[T any](items []T, k int, rng *rand.Rand) T {
	if len(items) < k {
		k = len(items)
	}
	total := k * (k + 1) / 2
	n := rng.IntN(total)
	for i := 0; i < k; i++ {
		n -= k - i
		if n < 0 {
			return items[i]
		}
	}
	return items[0]
}
