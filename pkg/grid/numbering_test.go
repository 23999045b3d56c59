package grid

import (
	"sort"
	"testing"
)

func TestClueNumbersAreRowMajorAndContiguous(t *testing.T) {
	g := mustGrid(t, 9, 9)
	words := []struct {
		text     string
		row, col int
		dir      Direction
	}{
		{"KATTER", 1, 1, Across},
		{"TAK", 1, 4, Down},
		{"RAK", 1, 6, Down},
		{"BOK", 3, 2, Across},
	}
	for _, p := range words {
		w := NewWord(p.text, "")
		if !g.TryPlaceWord(w, p.row, p.col, p.dir) {
			t.Fatalf("place %s at (%d,%d) %s failed", p.text, p.row, p.col, p.dir)
		}
	}

	var numbers []int
	for _, w := range g.Words() {
		if w.Number <= 0 {
			t.Fatalf("word %s has no number", w.Text)
		}
		numbers = append(numbers, w.Number)
	}
	sort.Ints(numbers)
	for i, n := range numbers {
		if n != i+1 {
			t.Fatalf("numbers not contiguous from 1: %v", numbers)
		}
	}

	// Row-major: KATTER (1,1) before TAK (1,4) before RAK (1,6) before
	// BOK (3,2).
	order := map[string]int{}
	for _, w := range g.Words() {
		order[w.Text] = w.Number
	}
	if !(order["KATTER"] < order["TAK"] && order["TAK"] < order["RAK"] && order["RAK"] < order["BOK"]) {
		t.Errorf("numbers not assigned row-major: %v", order)
	}

	// Numbers are written into the starting cells.
	for _, p := range words {
		if got := g.CellAt(p.row, p.col).Number; got != order[p.text] {
			t.Errorf("start cell (%d,%d) number = %d, want %d", p.row, p.col, got, order[p.text])
		}
	}
}

func TestWordsSharingStartCellShareNumber(t *testing.T) {
	g := mustGrid(t, 9, 9)
	katt := NewWord("KATT", "")
	kal := NewWord("KAL", "")
	if !g.TryPlaceWord(katt, 2, 2, Across) {
		t.Fatal("place KATT failed")
	}
	if !g.TryPlaceWord(kal, 2, 2, Down) {
		t.Fatal("place KAL failed")
	}

	if katt.Number != kal.Number {
		t.Errorf("words starting at the same cell numbered %d and %d", katt.Number, kal.Number)
	}
	if katt.Number != 1 {
		t.Errorf("single start cell numbered %d, want 1", katt.Number)
	}
}
