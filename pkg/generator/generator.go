// Package generator builds crossword grids from a word catalog with a
// multi-phase heuristic search: scored anchor placement, an adaptive main
// loop with a shrinking target length, gap filling, and a short-word
// finishing pass, gated by the structural validator.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"crosswarped.com/xwgrid/pkg/grid"
	"crosswarped.com/xwgrid/pkg/validate"
)

var (
	// ErrGenerationFailed is returned when every attempt was rejected.
	ErrGenerationFailed = errors.New("failed to generate an acceptable grid")
	// ErrNoWords is returned when the catalog has no candidates for the
	// requested filter.
	ErrNoWords = errors.New("no candidate words match the filter")
)

// Catalog is the read-only word source the generator consumes. Candidates
// must return fresh Word values on every call: placement mutates them.
type Catalog interface {
	grid.Checker
	Candidates(minLen, maxLen int, category string, difficulty int) []*grid.Word
}

// Puzzle is an accepted generation result.
type Puzzle struct {
	Grid       *grid.Grid
	Attempts   int
	Report     validate.Result
	Validation validate.CrosswordResult
}

// Generator runs the placement search. The random source is injected so
// runs are reproducible; the logger may be nil.
type Generator struct {
	cat Catalog
	rng *rand.Rand
	log *slog.Logger
}

// New creates a generator over the given catalog.
func New(cat Catalog, rng *rand.Rand, log *slog.Logger) *Generator {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Generator{cat: cat, rng: rng, log: log}
}

// outcome explains why an attempt was discarded.
type outcome int

const (
	outcomeAccepted outcome = iota
	outcomeNoWords
	outcomeInvalidWords
	outcomeRejected
)

// Generate runs up to opts.MaxAttempts full pipeline iterations, each on a
// fresh grid, and returns the first puzzle that clears the acceptance
// gate. Cancellation is honored between attempts and at phase boundaries
// inside each attempt.
func (gen *Generator) Generate(ctx context.Context, opts Options) (*Puzzle, error) {
	opts = opts.clamp()

	var invalidRejects, barren int
	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		puzzle, out, err := gen.runAttempt(ctx, opts)
		if err != nil {
			return nil, err
		}
		switch out {
		case outcomeAccepted:
			puzzle.Attempts = attempt
			gen.log.Info("grid accepted",
				"attempt", attempt,
				"words", len(puzzle.Grid.Words()),
				"fill", puzzle.Grid.Stats().FillPercent)
			return puzzle, nil
		case outcomeInvalidWords:
			invalidRejects++
		case outcomeNoWords:
			barren++
		}
		gen.log.Debug("attempt discarded", "attempt", attempt, "outcome", out)
	}

	rate := float64(invalidRejects) / float64(opts.MaxAttempts) * 100
	return nil, fmt.Errorf("%w: %d attempts (%d produced no placeable words, %d rejected for invalid accidental words, %.0f%% invalid-word rejection rate)",
		ErrGenerationFailed, opts.MaxAttempts, barren, invalidRejects, rate)
}

// attempt carries the per-iteration search state.
type attempt struct {
	gen   *Generator
	opts  Options
	g     *grid.Grid
	cands []candidate
	used  map[string]bool
}

func (gen *Generator) runAttempt(ctx context.Context, opts Options) (*Puzzle, outcome, error) {
	g, err := grid.New(opts.Rows, opts.Cols)
	if err != nil {
		return nil, outcomeRejected, err
	}

	words := gen.cat.Candidates(opts.MinWordLength, opts.MaxWordLength, opts.Category, opts.Difficulty)
	if len(words) == 0 {
		return nil, outcomeRejected, fmt.Errorf("%w: length %d-%d", ErrNoWords, opts.MinWordLength, opts.MaxWordLength)
	}

	cands := make([]candidate, 0, len(words))
	for _, w := range words {
		if n := w.Length(); n >= 2 && n <= max(opts.Rows, opts.Cols) {
			cands = append(cands, newCandidate(w))
		}
	}
	scoreConnectivity(cands, gen.rng)

	a := &attempt{gen: gen, opts: opts, g: g, cands: cands, used: map[string]bool{}}

	if !a.placeAnchors() {
		return nil, outcomeNoWords, nil
	}
	if err := a.mainLoop(ctx); err != nil {
		return nil, outcomeRejected, err
	}
	if err := a.fillGaps(ctx); err != nil {
		return nil, outcomeRejected, err
	}
	if err := a.placeShortWords(ctx); err != nil {
		return nil, outcomeRejected, err
	}

	return a.gate()
}

// place runs the transactional placement and records the word text as
// used on success.
func (a *attempt) place(c candidate, row, col int, dir grid.Direction) bool {
	if a.used[textKey(c.word.Text)] {
		return false
	}
	if !a.g.TryPlaceWordWithValidation(c.word, row, col, dir, a.gen.cat, a.opts.RejectInvalidWords) {
		return false
	}
	a.used[textKey(c.word.Text)] = true
	return true
}

// gate applies the acceptance criteria: enough words for the grid width,
// the fill target, a clean structural report, and (in strict mode) zero
// invalid accidental words.
func (a *attempt) gate() (*Puzzle, outcome, error) {
	words := a.g.Words()
	if len(words) < a.opts.minWordFloor() {
		a.gen.log.Debug("gate: too few words", "words", len(words), "floor", a.opts.minWordFloor())
		return nil, outcomeNoWords, nil
	}
	if a.g.Stats().FillPercent < a.opts.TargetFillPercent {
		a.gen.log.Debug("gate: under fill target",
			"fill", a.g.Stats().FillPercent, "target", a.opts.TargetFillPercent)
		return nil, outcomeRejected, nil
	}

	// Scan before the structural pass so the validator sees classified
	// bonus runs when it checks isolation.
	crossword := validate.CheckAccidental(a.g, a.gen.cat)
	if a.opts.RejectInvalidWords && !crossword.Valid {
		return nil, outcomeInvalidWords, nil
	}

	report := validate.Check(a.g)
	if !report.Valid() {
		a.gen.log.Debug("gate: validator errors", "errors", report.Errors)
		return nil, outcomeRejected, nil
	}

	a.g.RenumberCluesIncludingAccidental()
	a.g.FillEmptyCells()
	return &Puzzle{Grid: a.g, Report: report, Validation: crossword}, outcomeAccepted, nil
}

// textKey normalizes answer text for the used set, which is
// case-insensitive like every other answer comparison.
func textKey(text string) string {
	return strings.ToUpper(text)
}
