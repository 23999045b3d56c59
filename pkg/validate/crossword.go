package validate

import (
	"fmt"

	"crosswarped.com/xwgrid/pkg/grid"
)

// CrosswordResult partitions the accidental words found on a grid into
// catalog-valid and invalid subsets. A puzzle is acceptable only when the
// invalid subset is empty.
type CrosswordResult struct {
	ValidWords   []grid.AccidentalWord
	InvalidWords []grid.AccidentalWord
	Valid        bool
	Summary      string
}

// CheckAccidental runs the catalog-backed accidental-word scan and
// partitions the findings.
func CheckAccidental(g *grid.Grid, cat grid.Checker) CrosswordResult {
	var res CrosswordResult
	for _, a := range g.DetectAccidentalWords(cat) {
		if a.Valid {
			res.ValidWords = append(res.ValidWords, a)
		} else {
			res.InvalidWords = append(res.InvalidWords, a)
		}
	}
	res.Valid = len(res.InvalidWords) == 0
	switch {
	case len(res.ValidWords) == 0 && len(res.InvalidWords) == 0:
		res.Summary = "no accidental words"
	case res.Valid:
		res.Summary = fmt.Sprintf("%d accidental word(s), all valid bonus words", len(res.ValidWords))
	default:
		res.Summary = fmt.Sprintf("%d valid and %d invalid accidental word(s)",
			len(res.ValidWords), len(res.InvalidWords))
	}
	return res
}
