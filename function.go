package xwgrid

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	"crosswarped.com/xwgrid/pkg/generator"
)

func init() {
	functions.HTTP("GenerateGrid", generateGridHTTP)
}

var (
	catalogMu sync.Mutex
	catalog   *Catalog
)

// functionCatalog loads the word source on first use: a local CSV when
// XWGRID_WORDS is set, the BigQuery table otherwise. Only a successful
// load is cached, so a failed cold start retries on the next request
// instead of pinning the instance to the error.
func functionCatalog(r *http.Request) (*Catalog, error) {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	if catalog != nil {
		return catalog, nil
	}

	var (
		cat *Catalog
		err error
	)
	if path := os.Getenv("XWGRID_WORDS"); path != "" {
		cat, err = LoadWordsFromFile(path)
	} else {
		project := os.Getenv("XWGRID_PROJECT")
		table := os.Getenv("XWGRID_TABLE")
		if project == "" || table == "" {
			return nil, fmt.Errorf("set XWGRID_WORDS or XWGRID_PROJECT and XWGRID_TABLE")
		}
		cat, err = LoadWordsFromCloud(r.Context(), project, table, "", 25)
	}
	if err != nil {
		return nil, err
	}
	catalog = cat
	return catalog, nil
}

type wordJSON struct {
	Number    int    `json:"number"`
	Text      string `json:"text"`
	Clue      string `json:"clue,omitempty"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Direction string `json:"direction"`
}

type puzzleJSON struct {
	Rows        int        `json:"rows"`
	Cols        int        `json:"cols"`
	Cells       []string   `json:"cells"`
	Words       []wordJSON `json:"words"`
	Bonus       []wordJSON `json:"bonus,omitempty"`
	FillPercent float64    `json:"fillPercent"`
	Attempts    int        `json:"attempts"`
}

func generateGridHTTP(w http.ResponseWriter, r *http.Request) {
	log := slog.Default()

	cat, err := functionCatalog(r)
	if err != nil {
		log.Error("catalog unavailable", "error", err)
		http.Error(w, "word catalog unavailable", http.StatusServiceUnavailable)
		return
	}

	opts, seed, err := optionsFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	gen := generator.New(cat, rand.New(rand.NewPCG(seed, seed>>1)), log)
	puzzle, err := gen.Generate(r.Context(), opts)
	if err != nil {
		log.Error("generation failed", "error", err, "rows", opts.Rows, "cols", opts.Cols)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(puzzleResponse(puzzle)); err != nil {
		log.Error("encode response", "error", err)
	}
}

// optionsFromQuery applies the request's query parameters over the
// default options. The seed parameter makes responses reproducible.
func optionsFromQuery(r *http.Request) (generator.Options, uint64, error) {
	opts := generator.DefaultOptions()
	q := r.URL.Query()

	readInt := func(name string, floor int, dst *int) error {
		if v := q.Get(name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < floor {
				return fmt.Errorf("bad %s parameter %q", name, v)
			}
			*dst = n
		}
		return nil
	}
	if err := readInt("rows", 1, &opts.Rows); err != nil {
		return opts, 0, err
	}
	if err := readInt("cols", 1, &opts.Cols); err != nil {
		return opts, 0, err
	}
	if err := readInt("maxlen", 1, &opts.MaxWordLength); err != nil {
		return opts, 0, err
	}
	// Difficulty zero means no cap, matching the catalog filter.
	if err := readInt("difficulty", 0, &opts.Difficulty); err != nil {
		return opts, 0, err
	}
	opts.Category = q.Get("category")
	if v := q.Get("fill"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 || f > 100 {
			return opts, 0, fmt.Errorf("bad fill parameter %q", v)
		}
		opts.TargetFillPercent = f
	}

	seed := uint64(time.Now().UnixNano())
	if v := q.Get("seed"); v != "" {
		s, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return opts, 0, fmt.Errorf("bad seed parameter %q", v)
		}
		seed = s
	}
	return opts, seed, nil
}

func puzzleResponse(p *generator.Puzzle) puzzleJSON {
	out := puzzleJSON{
		Rows:        p.Grid.Rows(),
		Cols:        p.Grid.Cols(),
		Cells:       strings.Split(strings.TrimRight(p.Grid.Repr(), "\n"), "\n"),
		FillPercent: p.Grid.Stats().FillPercent,
		Attempts:    p.Attempts,
	}
	for _, w := range p.Grid.Words() {
		out.Words = append(out.Words, wordJSON{
			Number:    w.Number,
			Text:      w.Text,
			Clue:      w.Clue,
			Row:       w.Row,
			Col:       w.Col,
			Direction: w.Dir.String(),
		})
	}
	for _, a := range p.Grid.Accidental() {
		if !a.Valid || !a.Include {
			continue
		}
		out.Bonus = append(out.Bonus, wordJSON{
			Number:    a.Number,
			Text:      a.Text,
			Clue:      a.Clue,
			Row:       a.Row,
			Col:       a.Col,
			Direction: a.Dir.String(),
		})
	}
	return out
}
