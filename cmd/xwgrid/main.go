package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"crosswarped.com/xwgrid"
	"crosswarped.com/xwgrid/pkg/clue"
	"crosswarped.com/xwgrid/pkg/generator"
	"crosswarped.com/xwgrid/pkg/grid"
)

func main() {

	rows := flag.Int("rows", 11, "The height of the grid")
	cols := flag.Int("cols", 11, "The width of the grid")
	wordsFile := flag.String("words", "", "Path to a word list CSV (word,clue,category,difficulty)")
	loadFromCloud := flag.Bool("cloud", false, "Load words from cloud")
	project := flag.String("project", "", "Cloud project for -cloud")
	table := flag.String("table", "", "Word table for -cloud")
	category := flag.String("category", "", "Only use words from this category")
	difficulty := flag.Int("difficulty", 0, "Only use words up to this difficulty (0 = all)")
	fill := flag.Float64("fill", 40, "Minimum fill percentage to accept")
	lenient := flag.Bool("lenient", false, "Accept grids with unknown accidental words")
	genClues := flag.Bool("clues", false, "Write missing clues with Gemini (needs -project)")
	region := flag.String("region", "", "Vertex AI region for -clues")
	seed := flag.Uint64("seed", 0, "Random seed (0 = time-based)")
	timeout := flag.Duration("timeout", 1*time.Minute, "The timeout for the generator")
	verbose := flag.Bool("v", false, "Log generator progress")

	flag.Parse()

	if *wordsFile == "" && !*loadFromCloud {
		fmt.Println("Need a word source: -words or -cloud")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	var catalog *xwgrid.Catalog
	var err error
	if *loadFromCloud {
		fmt.Println("Loading words from cloud...")
		catalog, err = xwgrid.LoadWordsFromCloud(ctx, *project, *table, *category, max(*rows, *cols))
	} else {
		catalog, err = xwgrid.LoadWordsFromFile(*wordsFile)
	}
	if err != nil {
		fmt.Println("Error loading words:", err)
		os.Exit(1)
	}
	fmt.Println("Words:", catalog.Len())

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	randSource := rand.NewPCG(*seed, *seed>>1)

	var log *slog.Logger
	if *verbose {
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	opts := generator.DefaultOptions()
	opts.Rows = *rows
	opts.Cols = *cols
	opts.Category = *category
	opts.Difficulty = *difficulty
	opts.TargetFillPercent = *fill
	opts.RejectInvalidWords = !*lenient

	gen := generator.New(catalog, rand.New(randSource), log)

	var clueWriter *clue.Writer
	if *genClues {
		clueWriter, err = clue.NewWriter(ctx, *project, *region)
		if err != nil {
			fmt.Println("Error creating clue writer:", err)
			os.Exit(1)
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			fmt.Println("Context error:", err)
			break
		}

		puzzle, err := gen.Generate(ctx, opts)
		if err != nil {
			fmt.Println("Error generating grid:", err)
			os.Exit(1)
		}

		if clueWriter != nil {
			if err := fillClues(ctx, clueWriter, puzzle.Grid); err != nil {
				fmt.Println("Error writing clues:", err)
			}
		}

		fmt.Println("--------------------------------")
		fmt.Println(puzzle.Grid.Repr())
		printClues(puzzle.Grid)
		fmt.Printf("Fill: %.1f%% after %d attempt(s)\n", puzzle.Grid.Stats().FillPercent, puzzle.Attempts)

		// Wait for user input and determine if they want to continue.
		// Continue (any key), or stop (n)
		fmt.Print("Continue? [Y/n]: ")
		var input string
		fmt.Scanln(&input)
		if input == "s" || input == "S" {
			fmt.Println(puzzle.Grid.DebugString())
		}
		if input == "n" || input == "N" {
			break
		}
	}

	fmt.Println("--------------------------------")
	fmt.Println("Done")

	if ctx.Err() != nil {
		fmt.Println("Context error:", ctx.Err())
	}
}

// fillClues asks Gemini for clues for every placed word that lacks one.
func fillClues(ctx context.Context, w *clue.Writer, g *grid.Grid) error {
	var missing []string
	for _, word := range g.Words() {
		if word.Clue == "" {
			missing = append(missing, word.Text)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	clues, err := w.WriteClues(ctx, missing)
	if err != nil {
		return err
	}
	for _, word := range g.Words() {
		if word.Clue == "" {
			if c, ok := clues[strings.ToUpper(word.Text)]; ok {
				word.Clue = c
			}
		}
	}
	return nil
}

func printClues(g *grid.Grid) {
	for _, dir := range []grid.Direction{grid.Across, grid.Down} {
		fmt.Printf("%s:\n", dir)
		for _, w := range g.Words() {
			if w.Dir == dir {
				fmt.Printf("  %2d. %s (%s)\n", w.Number, w.Clue, w.Text)
			}
		}
	}
	bonus := false
	for _, a := range g.Accidental() {
		if !a.Valid || !a.Include {
			continue
		}
		if !bonus {
			fmt.Println("Bonus:")
			bonus = true
		}
		fmt.Printf("  %2d. %s (%s, %s)\n", a.Number, a.Clue, a.Text, a.Dir)
	}
}
