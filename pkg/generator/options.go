package generator

// Options configures a generation run.
type Options struct {
	Rows int
	Cols int

	// Candidate filter passed to the catalog.
	MinWordLength int
	MaxWordLength int
	Category      string
	Difficulty    int

	// TargetFillPercent is the minimum fill an accepted grid must reach.
	TargetFillPercent float64

	// MaxAttempts bounds the outer retry loop.
	MaxAttempts int

	// RejectInvalidWords makes every placement and the acceptance gate
	// refuse accidental words the catalog does not know.
	RejectInvalidWords bool
}

// DefaultOptions returns the standard settings for a medium grid.
func DefaultOptions() Options {
	return Options{
		Rows:               11,
		Cols:               11,
		MinWordLength:      2,
		MaxWordLength:      10,
		TargetFillPercent:  40,
		MaxAttempts:        25,
		RejectInvalidWords: true,
	}
}

// clamp keeps the filter lengths inside the grid.
func (o Options) clamp() Options {
	longest := max(o.Rows, o.Cols)
	if o.MaxWordLength > longest {
		o.MaxWordLength = longest
	}
	if o.MinWordLength < 2 {
		o.MinWordLength = 2
	}
	if o.MaxWordLength < o.MinWordLength {
		o.MaxWordLength = o.MinWordLength
	}
	if o.MaxAttempts < 1 {
		o.MaxAttempts = 1
	}
	return o
}

// minWordFloor is the accepted-word floor, scaled to grid width.
func (o Options) minWordFloor() int {
	return max(2, o.Cols/3)
}
