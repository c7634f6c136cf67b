package rect

import (
	"slices"

	"github.com/factorlab/sopfactor/matrix"
)

// Profit is the literal-count reduction of extracting r from the
// expression the matrix was built from. With L_C the summed literal
// count of the column cubes and L_R that of the row co-kernels, the
// covered cubes hold |C|*L_R + |R|*L_C literals and are replaced by one
// definition of L_C literals plus, per row, the co-kernel and a single
// reference:
//
//	profit = L_C * (|R| - 1) + L_R * (|C| - 1) - |R|
//
// The identity is computed directly rather than by counting before and
// after, so it stays consistent across extraction contexts.
func Profit(m *matrix.Matrix, r Rectangle) int {
	lc := 0
	for _, j := range r.Cols {
		lc += m.ColLiteralCount(j)
	}
	lr := 0
	for _, i := range r.Rows {
		lr += len(m.Rows[i])
	}
	return lc*(len(r.Rows)-1) + lr*(len(r.Cols)-1) - len(r.Rows)
}

// Ranked returns the rectangles with profit >= 1 ordered best first:
// maximum profit, then larger area, then more rows, then smallest row
// index tuple, then smallest column index tuple.
func Ranked(m *matrix.Matrix, rects []Rectangle) []Rectangle {
	type scored struct {
		r      Rectangle
		profit int
	}
	var keep []scored
	for _, r := range rects {
		if p := Profit(m, r); p >= 1 {
			keep = append(keep, scored{r: r, profit: p})
		}
	}
	slices.SortStableFunc(keep, func(a, b scored) int {
		if d := b.profit - a.profit; d != 0 {
			return d
		}
		if d := b.r.Area() - a.r.Area(); d != 0 {
			return d
		}
		if d := len(b.r.Rows) - len(a.r.Rows); d != 0 {
			return d
		}
		if d := slices.Compare(a.r.Rows, b.r.Rows); d != 0 {
			return d
		}
		return slices.Compare(a.r.Cols, b.r.Cols)
	})
	out := make([]Rectangle, len(keep))
	for i, s := range keep {
		out[i] = s.r
	}
	return out
}

// Best returns the most profitable rectangle, if any has profit >= 1.
func Best(m *matrix.Matrix, rects []Rectangle) (Rectangle, bool) {
	ranked := Ranked(m, rects)
	if len(ranked) == 0 {
		return Rectangle{}, false
	}
	return ranked[0], true
}
