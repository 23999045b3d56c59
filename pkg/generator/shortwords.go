package generator

import "context"

const (
	shortWordMaxLength = 4
	shortWordSpots     = 5
)

// placeShortWords is the finishing pass: leftover two-to-four letter
// candidates are crossed into whatever intersection points remain,
// sampling among each word's best spots.
func (a *attempt) placeShortWords(ctx context.Context) error {
	for _, c := range a.cands {
		if err := ctx.Err(); err != nil {
			return err
		}
		if len(c.letters) > shortWordMaxLength || a.used[textKey(c.word.Text)] {
			continue
		}
		spots := findIntersections(a.g, c)
		if len(spots) == 0 {
			continue
		}
		top := spots[:min(shortWordSpots, len(spots))]
		pick := weightedPick(top, len(top), a.gen.rng)
		if a.place(c, pick.row, pick.col, pick.dir) {
			continue
		}
		for _, s := range top {
			if a.place(c, s.row, s.col, s.dir) {
				break
			}
		}
	}
	return nil
}
