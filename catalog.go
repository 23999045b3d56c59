// Package xwgrid ties the crossword engine to its word sources: an
// in-memory catalog the generator consumes, loaders for local files and
// BigQuery, and a Cloud Function entry point.
package xwgrid

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"crosswarped.com/xwgrid/pkg/grid"
)

// Entry is one catalog word with its clue and filter attributes.
type Entry struct {
	Text       string
	Clue       string
	Category   string
	Difficulty int
}

// Catalog is an in-memory word list with a case-insensitive index. It
// implements the lookup interfaces the grid and the generator consume.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// NewCatalog builds a catalog from entries. Duplicate texts keep the
// first entry; words shorter than two letters are dropped.
func NewCatalog(entries ...Entry) *Catalog {
	c := &Catalog{index: map[string]int{}}
	for _, e := range entries {
		c.Add(e)
	}
	return c
}

// Add inserts one entry and reports whether it was kept.
func (c *Catalog) Add(e Entry) bool {
	if utf8.RuneCountInString(e.Text) < 2 {
		return false
	}
	key := strings.ToUpper(e.Text)
	if _, dup := c.index[key]; dup {
		return false
	}
	e.Text = key
	c.index[key] = len(c.entries)
	c.entries = append(c.entries, e)
	return true
}

// Len returns the number of words in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Contains reports whether the text is a known word, ignoring case.
func (c *Catalog) Contains(text string) bool {
	_, ok := c.index[strings.ToUpper(text)]
	return ok
}

// ClueFor returns the clue for a known word.
func (c *Catalog) ClueFor(text string) (string, bool) {
	i, ok := c.index[strings.ToUpper(text)]
	if !ok {
		return "", false
	}
	return c.entries[i].Clue, true
}

// Candidates returns fresh placeable words matching the filter, in
// catalog order. An empty category matches every entry; a difficulty of
// zero disables the difficulty cap.
func (c *Catalog) Candidates(minLen, maxLen int, category string, difficulty int) []*grid.Word {
	var out []*grid.Word
	for _, e := range c.entries {
		n := utf8.RuneCountInString(e.Text)
		if n < minLen || n > maxLen {
			continue
		}
		if category != "" && !strings.EqualFold(category, e.Category) {
			continue
		}
		if difficulty > 0 && e.Difficulty > difficulty {
			continue
		}
		w := grid.NewWord(e.Text, e.Clue)
		w.Category = e.Category
		w.Difficulty = e.Difficulty
		out = append(out, w)
	}
	return out
}

// LoadWordsFromFile reads a catalog from a CSV file with records of the
// form text,clue[,category[,difficulty]]. Blank lines and lines starting
// with # are skipped.
func LoadWordsFromFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	return readWords(f)
}

func readWords(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	cat := NewCatalog()
	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read word list: %w", err)
		}
		line++
		e := Entry{Text: strings.TrimSpace(rec[0])}
		if e.Text == "" {
			continue
		}
		if len(rec) > 1 {
			e.Clue = strings.TrimSpace(rec[1])
		}
		if len(rec) > 2 {
			e.Category = strings.TrimSpace(rec[2])
		}
		if len(rec) > 3 {
			d, err := strconv.Atoi(strings.TrimSpace(rec[3]))
			if err != nil {
				return nil, fmt.Errorf("record %d: bad difficulty %q: %w", line, rec[3], err)
			}
			e.Difficulty = d
		}
		cat.Add(e)
	}
	return cat, nil
}
