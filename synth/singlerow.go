package synth

import (
	"slices"

	"github.com/factorlab/sopfactor/ir"
)

// findSingleRow searches F for the best single-row extraction: a
// literal whose containing cubes S share a common factor cube d with
// |d| >= 1 and |S| >= 2. Extracting the group's quotient saves
//
//	profit = |d| * (|S| - 1) - 1
//
// literals; zero-profit extractions are accepted, they still shrink the
// node. Candidates rank by profit, then larger |d|, then larger |S|,
// then lexicographically smaller d.
func findSingleRow(F ir.Expr) (*SingleRowStep, bool) {
	var best *SingleRowStep
	better := func(a, b *SingleRowStep) bool {
		if a.profit != b.profit {
			return a.profit > b.profit
		}
		if len(a.Div) != len(b.Div) {
			return len(a.Div) > len(b.Div)
		}
		if len(a.Group) != len(b.Group) {
			return len(a.Group) > len(b.Group)
		}
		return slices.Compare(a.Div, b.Div) < 0
	}
	for _, lit := range F.Literals() {
		var group []ir.Cube
		for _, c := range F {
			if c.Contains(lit) {
				group = append(group, c)
			}
		}
		if len(group) < 2 {
			continue
		}
		div := group[0]
		for _, c := range group[1:] {
			div = div.Inter(c)
		}
		if len(div) < 1 {
			continue
		}
		profit := len(div)*(len(group)-1) - 1
		if profit < 0 {
			continue
		}
		cand := &SingleRowStep{Div: div, Group: group, profit: profit}
		if best == nil || better(cand, best) {
			best = cand
		}
	}
	return best, best != nil
}
