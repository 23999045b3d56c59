package generator

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crosswarped.com/xwgrid/pkg/grid"
)

// testCatalog keeps its words in a slice so Candidates returns them in a
// stable order; with an injected seed that makes whole runs reproducible.
type testCatalog struct {
	texts []string
	clues map[string]string
}

func newTestCatalog(words ...string) *testCatalog {
	c := &testCatalog{clues: map[string]string{}}
	for _, w := range words {
		key := strings.ToUpper(w)
		c.texts = append(c.texts, key)
		c.clues[key] = "clue for " + key
	}
	return c
}

func (c *testCatalog) Contains(text string) bool {
	_, ok := c.clues[strings.ToUpper(text)]
	return ok
}

func (c *testCatalog) ClueFor(text string) (string, bool) {
	clue, ok := c.clues[strings.ToUpper(text)]
	return clue, ok
}

func (c *testCatalog) Candidates(minLen, maxLen int, category string, difficulty int) []*grid.Word {
	var out []*grid.Word
	for _, t := range c.texts {
		if n := utf8.RuneCountInString(t); n < minLen || n > maxLen {
			continue
		}
		out = append(out, grid.NewWord(t, c.clues[t]))
	}
	return out
}

func swedishCatalog() *testCatalog {
	return newTestCatalog(
		"SOMMAR", "VINTER", "STRAND", "TOMTEN", "STOLAR", "KARTOR",
		"TOMTE", "SKATT", "PLATS", "TRANA",
		"KATT", "RATT", "MOLN", "SAND", "STOL", "TORN", "ROSA",
		"TAK", "HUS", "SOL", "ARM", "MOR", "TRE", "OST",
		"EN", "OM", "TE", "SE", "ÅR",
	)
}

func testOptions() Options {
	opts := DefaultOptions()
	opts.Rows, opts.Cols = 9, 9
	opts.MaxWordLength = 7
	opts.TargetFillPercent = 12
	opts.MaxAttempts = 50
	return opts
}

func TestGenerateProducesValidPuzzle(t *testing.T) {
	gen := New(swedishCatalog(), rand.New(rand.NewPCG(7, 11)), nil)

	puzzle, err := gen.Generate(context.Background(), testOptions())
	require.NoError(t, err)
	require.NotNil(t, puzzle.Grid)
	assert.GreaterOrEqual(t, puzzle.Attempts, 1)

	words := puzzle.Grid.Words()
	require.GreaterOrEqual(t, len(words), 3)
	assert.True(t, puzzle.Report.Valid(), "structural report: %v", puzzle.Report.Errors)
	assert.True(t, puzzle.Validation.Valid, "accidental words: %s", puzzle.Validation.Summary)

	seen := map[string]bool{}
	for _, w := range words {
		assert.True(t, w.Placed, "word %q not marked placed", w.Text)
		assert.Positive(t, w.Number, "word %q has no clue number", w.Text)
		assert.False(t, seen[strings.ToUpper(w.Text)], "word %q placed twice", w.Text)
		seen[strings.ToUpper(w.Text)] = true
	}

	assert.GreaterOrEqual(t, puzzle.Grid.Stats().FillPercent, 12.0)
	for r := 0; r < puzzle.Grid.Rows(); r++ {
		for c := 0; c < puzzle.Grid.Cols(); c++ {
			assert.False(t, puzzle.Grid.CellAt(r, c).Empty(),
				"cell (%d,%d) should hold a letter or filler after acceptance", r, c)
		}
	}
}

func TestGenerateIsReproducible(t *testing.T) {
	run := func() string {
		gen := New(swedishCatalog(), rand.New(rand.NewPCG(42, 1)), nil)
		puzzle, err := gen.Generate(context.Background(), testOptions())
		require.NoError(t, err)
		return puzzle.Grid.Repr()
	}
	assert.Equal(t, run(), run(), "same seed must yield the same grid")
}

func TestGenerateReportsExhaustion(t *testing.T) {
	// No two words share a letter, so no second anchor ever fits.
	cat := newTestCatalog("ABC", "DEF")
	gen := New(cat, rand.New(rand.NewPCG(1, 1)), nil)

	opts := testOptions()
	opts.MaxAttempts = 3
	_, err := gen.Generate(context.Background(), opts)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.Contains(t, err.Error(), "3 attempts")
}

func TestGenerateEmptyCatalog(t *testing.T) {
	gen := New(newTestCatalog(), rand.New(rand.NewPCG(1, 1)), nil)
	_, err := gen.Generate(context.Background(), testOptions())
	assert.ErrorIs(t, err, ErrNoWords)
}

func TestGenerateHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	gen := New(swedishCatalog(), rand.New(rand.NewPCG(1, 1)), nil)
	_, err := gen.Generate(ctx, testOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSelectNearPrefersClosestLength(t *testing.T) {
	a := &attempt{used: map[string]bool{}}
	for _, text := range []string{"SOMMAR", "KATT", "TAK"} {
		a.cands = append(a.cands, newCandidate(grid.NewWord(text, "")))
	}

	c, ok := a.selectNear(4, map[string]bool{})
	require.True(t, ok)
	assert.Equal(t, "KATT", c.word.Text)

	a.used["KATT"] = true
	c, ok = a.selectNear(4, map[string]bool{})
	require.True(t, ok)
	assert.Equal(t, "TAK", c.word.Text)

	_, ok = a.selectNear(4, map[string]bool{"TAK": true, "SOMMAR": true})
	assert.False(t, ok)
}

func TestFindIntersectionsOnlyLegalSpots(t *testing.T) {
	g, err := grid.New(7, 7)
	require.NoError(t, err)
	require.True(t, g.TryPlaceWord(grid.NewWord("KATT", ""), 2, 1, grid.Across))

	c := newCandidate(grid.NewWord("TAK", ""))
	spots := findIntersections(g, c)
	require.NotEmpty(t, spots)
	for i, s := range spots {
		assert.Equal(t, grid.Down, s.dir, "crossings with an across word run down")
		assert.True(t, g.CanPlaceWord(c.word, s.row, s.col, s.dir), "spot %d is not placeable", i)
		if i > 0 {
			assert.LessOrEqual(t, s.score, spots[i-1].score, "spots must be sorted best first")
		}
	}
}

func TestFindSlotsExtendsOverLetters(t *testing.T) {
	g, err := grid.New(7, 7)
	require.NoError(t, err)
	require.True(t, g.TryPlaceWord(grid.NewWord("KATT", ""), 2, 1, grid.Across))

	a := &attempt{g: g, opts: Options{Rows: 7, Cols: 7, MinWordLength: 2}}
	slots := a.findSlots()
	require.NotEmpty(t, slots)

	// Row 2 holds KATT in columns 1-4; the empty run after it must extend
	// back over the letters so a slot word would cross them.
	var after bool
	for _, s := range slots {
		if s.dir == grid.Across && s.row == 2 && s.col == 1 {
			after = true
			assert.Equal(t, 6, s.length)
			assert.GreaterOrEqual(t, s.touchPoints, 4)
		}
	}
	assert.True(t, after, "missing the slot spanning KATT and the run after it")
}

func TestSlotAffinityScoresPerCandidate(t *testing.T) {
	g, err := grid.New(7, 7)
	require.NoError(t, err)
	require.True(t, g.TryPlaceWord(grid.NewWord("KATT", ""), 2, 1, grid.Across))
	require.True(t, g.TryPlaceWord(grid.NewWord("TAK", ""), 2, 3, grid.Down))

	a := &attempt{g: g, opts: Options{Rows: 7, Cols: 7, MinWordLength: 2}}

	// Row 3 slot ending on TAK's A: positions 1 and 2 sit under KATT's K
	// and A, so the candidate's own letters there drive the score.
	s := slot{row: 3, col: 0, dir: grid.Across, length: 4}
	common := a.slotAffinity(s, []rune("OSEA"))
	rare := a.slotAffinity(s, []rune("OXXA"))

	assert.Greater(t, common, rare, "common letters at touch cells must outscore rare ones")
	assert.GreaterOrEqual(t, rare, 1.0, "the overlapped fixed letter counts for every candidate")
}

func TestWeightedPickStaysInTopK(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 9))
	items := []int{0, 1, 2, 3, 4, 5}
	counts := map[int]int{}
	for i := 0; i < 1000; i++ {
		counts[weightedPick(items, 3, rng)]++
	}
	for v, n := range counts {
		assert.Less(t, v, 3, "picked %d, outside the top 3", v)
		assert.Positive(t, n)
	}
	assert.Len(t, counts, 3, "all of the top 3 should be sampled")
	assert.Greater(t, counts[0], counts[2], "weights must decay")
}
