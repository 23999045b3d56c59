package grid

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fakeCatalog is a Checker backed by a fixed word->clue map.
type fakeCatalog map[string]string

func (f fakeCatalog) Contains(text string) bool {
	_, ok := f[strings.ToUpper(text)]
	return ok
}

func (f fakeCatalog) ClueFor(text string) (string, bool) {
	clue, ok := f[strings.ToUpper(text)]
	return clue, ok
}

func mustGrid(t *testing.T, rows, cols int) *Grid {
	t.Helper()
	g, err := New(rows, cols)
	if err != nil {
		t.Fatalf("New(%d, %d): %v", rows, cols, err)
	}
	return g
}

func TestNewRejectsBadDimensions(t *testing.T) {
	for _, tc := range [][2]int{{0, 10}, {10, 0}, {-1, 5}, {0, 0}} {
		if _, err := New(tc[0], tc[1]); err == nil {
			t.Errorf("New(%d, %d): want error", tc[0], tc[1])
		}
	}
}

func TestPlaceWordWritesLetters(t *testing.T) {
	g := mustGrid(t, 10, 10)
	w := NewWord("DOG", "barks")

	if !g.TryPlaceWord(w, 3, 2, Across) {
		t.Fatal("TryPlaceWord failed on empty grid")
	}

	want := []rune{'D', 'O', 'G'}
	for i, letter := range want {
		c := g.CellAt(3, 2+i)
		if c.Letter != letter {
			t.Errorf("cell (3,%d): got %q, want %q", 2+i, c.Letter, letter)
		}
		if !c.OwnedBy(w.ID()) {
			t.Errorf("cell (3,%d): not owned by word", 2+i)
		}
		if !c.PartOfWord {
			t.Errorf("cell (3,%d): PartOfWord not set", 2+i)
		}
	}
	if w.Number <= 0 {
		t.Errorf("word number = %d, want > 0", w.Number)
	}
	if !w.Placed {
		t.Error("word not marked placed")
	}
}

func TestStatsOnPartialGrid(t *testing.T) {
	g := mustGrid(t, 4, 4)
	if !g.TryPlaceWord(NewWord("CAT", ""), 0, 0, Across) {
		t.Fatal("TryPlaceWord failed")
	}

	got := g.Stats()
	want := Stats{TotalCells: 16, FilledCells: 3, EmptyCells: 13, WordCount: 1, FillPercent: 18.75}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Stats mismatch (-want +got):\n%s", diff)
	}
}

func TestCanPlaceWordBounds(t *testing.T) {
	g := mustGrid(t, 5, 5)
	w := NewWord("LONGWORD", "")

	if g.CanPlaceWord(w, 0, 0, Across) {
		t.Error("accepted word extending past right edge")
	}
	if g.CanPlaceWord(w, 0, 0, Down) {
		t.Error("accepted word extending past bottom edge")
	}
	if g.CanPlaceWord(NewWord("CAT", ""), -1, 0, Down) {
		t.Error("accepted negative start row")
	}
	if g.CanPlaceWord(NewWord("CAT", ""), 0, 3, Across) {
		t.Error("accepted word ending past right edge")
	}
}

func TestCanPlaceWordRejectsEndToEndExtension(t *testing.T) {
	g := mustGrid(t, 7, 7)
	if !g.TryPlaceWord(NewWord("CAT", ""), 3, 0, Across) {
		t.Fatal("TryPlaceWord failed")
	}

	// DOG directly after CAT in the same row would merge into CATDOG.
	if g.CanPlaceWord(NewWord("DOG", ""), 3, 3, Across) {
		t.Error("accepted placement butting an existing word end-to-end")
	}
	// One cell of separation is fine.
	if !g.CanPlaceWord(NewWord("DOG", ""), 3, 4, Across) {
		t.Error("rejected placement with a proper gap")
	}
}

func TestCanPlaceWordLetterCompatibility(t *testing.T) {
	g := mustGrid(t, 7, 7)
	if !g.TryPlaceWord(NewWord("KATT", ""), 2, 1, Across) {
		t.Fatal("TryPlaceWord failed")
	}

	// ARM down from the A of KATT: the shared letter matches.
	if !g.CanPlaceWord(NewWord("ARM", ""), 2, 2, Down) {
		t.Error("rejected compatible crossing")
	}
	// ORM would need O where KATT already has A.
	if g.CanPlaceWord(NewWord("ORM", ""), 2, 2, Down) {
		t.Error("accepted incompatible crossing")
	}
}

func TestHasWordTextIgnoresCase(t *testing.T) {
	g := mustGrid(t, 7, 7)
	if !g.TryPlaceWord(NewWord("Katt", ""), 2, 1, Across) {
		t.Fatal("TryPlaceWord failed")
	}

	if !g.HasWordText("KATT") || !g.HasWordText("katt") {
		t.Error("placed word not found case-insensitively")
	}
	if g.HasWordText("HUND") {
		t.Error("found a word that was never placed")
	}
}

func TestRemoveWordClearsExclusiveCellsOnly(t *testing.T) {
	g := mustGrid(t, 7, 7)
	katt := NewWord("KATT", "")
	arm := NewWord("ARM", "")
	if !g.TryPlaceWord(katt, 2, 1, Across) {
		t.Fatal("place KATT failed")
	}
	if !g.TryPlaceWord(arm, 2, 2, Down) {
		t.Fatal("place ARM failed")
	}

	if !g.RemoveWord(arm) {
		t.Fatal("RemoveWord failed")
	}
	if arm.Placed {
		t.Error("removed word still marked placed")
	}
	// The shared A at (2,2) belongs to KATT and must survive.
	if got := g.CellAt(2, 2).Letter; got != 'A' {
		t.Errorf("shared cell letter = %q, want 'A'", got)
	}
	// ARM's exclusive cells are cleared.
	if !g.CellAt(3, 2).Empty() {
		t.Error("exclusive cell (3,2) not cleared")
	}
	if !g.CellAt(4, 2).Empty() {
		t.Error("exclusive cell (4,2) not cleared")
	}
}

// gridState captures everything a snapshot must protect, in a comparable
// form.
type gridState struct {
	Cells [][]Cell
	Words []Word
}

func captureState(g *Grid) gridState {
	var s gridState
	for r := 0; r < g.Rows(); r++ {
		row := make([]Cell, g.Cols())
		for c := 0; c < g.Cols(); c++ {
			row[c] = g.CellAt(r, c)
		}
		s.Cells = append(s.Cells, row)
	}
	for _, w := range g.Words() {
		s.Words = append(s.Words, *w)
	}
	return s
}

// placeKattBra builds the fixture shared by the strict-placement tests:
//
//	. . B . . . .
//	. . R . . . .
//	. K A T T . .
//
// Adding ATT down at (0,3) then creates the incidental runs BA (row 0)
// and RT (row 1).
func placeKattBra(t *testing.T) *Grid {
	t.Helper()
	g := mustGrid(t, 7, 7)
	if !g.TryPlaceWord(NewWord("KATT", "pet"), 2, 1, Across) {
		t.Fatal("place KATT failed")
	}
	if !g.TryPlaceWord(NewWord("BRA", "good"), 0, 2, Down) {
		t.Fatal("place BRA failed")
	}
	return g
}

func TestValidatedPlacementRollsBackOnInvalidAccidental(t *testing.T) {
	// BA and RT are missing from the catalog, so the runs ATT creates
	// are invalid and the whole placement must roll back.
	cat := fakeCatalog{"KATT": "pet", "BRA": "good", "ATT": "to"}
	g := placeKattBra(t)
	before := captureState(g)

	w := NewWord("ATT", "to")
	if g.TryPlaceWordWithValidation(w, 0, 3, Down, cat, true) {
		t.Fatal("expected rejection: placement creates runs BA and RT, not in catalog")
	}

	after := captureState(g)
	if diff := cmp.Diff(before, after, cmp.AllowUnexported(Word{})); diff != "" {
		t.Errorf("grid state changed by failed placement (-before +after):\n%s", diff)
	}
	if w.Placed {
		t.Error("rejected word left marked placed")
	}
}

func TestValidatedPlacementPromotesValidAccidental(t *testing.T) {
	cat := fakeCatalog{"KATT": "pet", "BRA": "good", "ATT": "to", "BA": "carry", "RT": "retweet"}
	g := placeKattBra(t)

	if !g.TryPlaceWordWithValidation(NewWord("ATT", "to"), 0, 3, Down, cat, true) {
		t.Fatal("expected acceptance: every created run is catalog-valid")
	}

	var texts []string
	for _, a := range g.Accidental() {
		if !a.Include {
			continue
		}
		texts = append(texts, a.Text)
		if a.Clue == "" {
			t.Errorf("included accidental %q missing catalog clue", a.Text)
		}
		if a.Number <= 0 {
			t.Errorf("included accidental %q has no clue number", a.Text)
		}
	}
	want := []string{"BA", "RT"}
	if diff := cmp.Diff(want, texts); diff != "" {
		t.Errorf("included accidental words (-want +got):\n%s", diff)
	}
}

func TestValidatedPlacementReplacesExtendedRuns(t *testing.T) {
	cat := fakeCatalog{
		"KATT": "pet", "BRA": "good", "ATT": "to", "RUT": "name",
		"BA": "carry", "RT": "retweet", "BAR": "pub", "RTU": "initialism",
	}
	g := placeKattBra(t)
	if !g.TryPlaceWordWithValidation(NewWord("ATT", "to"), 0, 3, Down, cat, true) {
		t.Fatal("place ATT failed")
	}

	// RUT lengthens the remembered runs BA and RT into BAR and RTU; the
	// shorter entries must not linger beside their extensions.
	if !g.TryPlaceWordWithValidation(NewWord("RUT", "name"), 0, 4, Down, cat, true) {
		t.Fatal("place RUT failed")
	}

	var texts []string
	for _, a := range g.Accidental() {
		texts = append(texts, a.Text)
		if a.Include && a.Number <= 0 {
			t.Errorf("included accidental %q has no clue number", a.Text)
		}
	}
	want := []string{"BAR", "RTU"}
	if diff := cmp.Diff(want, texts); diff != "" {
		t.Errorf("remembered accidental words (-want +got):\n%s", diff)
	}
}

func TestValidatedPlacementRequiresConnection(t *testing.T) {
	g := mustGrid(t, 9, 9)
	if !g.TryPlaceWord(NewWord("KATT", ""), 0, 0, Across) {
		t.Fatal("place KATT failed")
	}

	// A word sharing no cell with KATT would start an island.
	if g.TryPlaceWordWithValidation(NewWord("HUS", ""), 5, 5, Across, nil, false) {
		t.Error("accepted isolated placement")
	}
	// Crossing through KATT's A is fine.
	if !g.TryPlaceWordWithValidation(NewWord("ARM", ""), 0, 1, Down, nil, false) {
		t.Error("rejected connected placement")
	}
}

func TestValidatedPlacementRejectsAccidentalDuplicatingAnswer(t *testing.T) {
	cat := fakeCatalog{"KATT": "pet", "BRA": "good", "ATT": "to", "BA": "carry", "RT": "retweet"}
	g := placeKattBra(t)
	// RT is already an answer elsewhere on the grid, so the catalog-valid
	// run RT that ATT would create case-insensitively duplicates it.
	if !g.TryPlaceWord(NewWord("rt", "retweet"), 5, 1, Across) {
		t.Fatal("place rt failed")
	}

	before := captureState(g)
	if g.TryPlaceWordWithValidation(NewWord("ATT", "to"), 0, 3, Down, cat, true) {
		t.Error("accepted placement whose accidental word duplicates an existing answer")
	}
	after := captureState(g)
	if diff := cmp.Diff(before, after, cmp.AllowUnexported(Word{})); diff != "" {
		t.Errorf("grid state changed (-before +after):\n%s", diff)
	}
}

func TestFillEmptyCells(t *testing.T) {
	g := mustGrid(t, 4, 4)
	if !g.TryPlaceWord(NewWord("CAT", ""), 0, 0, Across) {
		t.Fatal("TryPlaceWord failed")
	}
	g.FillEmptyCells()

	stats := g.Stats()
	if stats.FilledCells != 3 {
		t.Errorf("filler cells counted as letters: FilledCells = %d, want 3", stats.FilledCells)
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			cell := g.CellAt(r, c)
			if cell.Empty() {
				t.Errorf("cell (%d,%d) still empty after FillEmptyCells", r, c)
			}
			if cell.Letter == Filler && cell.PartOfWord {
				t.Errorf("filler cell (%d,%d) attached to a word", r, c)
			}
		}
	}
}
