package validate

import (
	"strings"

	"crosswarped.com/xwgrid/pkg/grid"
)

// wordGraph is the undirected word-intersection graph: one node per placed
// word, an edge between any two words sharing at least one cell.
type wordGraph struct {
	words []*grid.Word
	adj   [][]int
}

func buildWordGraph(words []*grid.Word) wordGraph {
	g := wordGraph{words: words, adj: make([][]int, len(words))}
	for i, a := range words {
		for j := i + 1; j < len(words); j++ {
			if shareCell(a, words[j]) {
				g.adj[i] = append(g.adj[i], j)
				g.adj[j] = append(g.adj[j], i)
			}
		}
	}
	return g
}

// shareCell reports whether two placed words occupy a common cell.
func shareCell(a, b *grid.Word) bool {
	for i := 0; i < a.Length(); i++ {
		r, c := a.CellPos(i)
		if _, ok := b.Covers(r, c); ok {
			return true
		}
	}
	return false
}

// components returns the connected components as index lists, using an
// explicit stack so deep grids cannot overflow the call stack.
func (g wordGraph) components() [][]int {
	seen := make([]bool, len(g.words))
	var comps [][]int
	for start := range g.words {
		if seen[start] {
			continue
		}
		var comp []int
		stack := []int{start}
		seen[start] = true
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, u)
			for _, v := range g.adj[u] {
				if !seen[v] {
					seen[v] = true
					stack = append(stack, v)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// checkConnectivity requires the word-intersection graph to form a single
// connected component, and every word to cross at least one other.
func checkConnectivity(words []*grid.Word, res *Result) {
	if len(words) <= 1 {
		return
	}
	g := buildWordGraph(words)

	for i, edges := range g.adj {
		if len(edges) == 0 {
			res.errorf("word %q does not intersect any other word", words[i].Text)
		}
	}

	comps := g.components()
	if len(comps) > 1 {
		for n, comp := range comps {
			texts := make([]string, len(comp))
			for i, idx := range comp {
				texts[i] = words[idx].Text
			}
			res.errorf("disconnected component %d of %d: %s", n+1, len(comps), strings.Join(texts, ", "))
		}
	}
}
