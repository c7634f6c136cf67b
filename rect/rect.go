// Package rect enumerates closed rectangles of a kernel-cube matrix and
// selects the most profitable one.
//
// A rectangle is a pair of row and column index sets whose cross
// product is all ones in the matrix. A closed rectangle cannot gain a
// column without losing a row. Enumeration is a DFS over column sets in
// canonical order, pruned by the shared-row intersection; a cap bounds
// the number of rectangles emitted.
package rect

import (
	"slices"

	"github.com/factorlab/sopfactor/debug"
	"github.com/factorlab/sopfactor/matrix"
)

// Rectangle is an all-ones submatrix, given by sorted row and column
// index sets. Only rectangles with at least two rows and two columns
// are enumerated; smaller ones are either trivial or the single-row
// extraction's business.
type Rectangle struct {
	Rows []int
	Cols []int
}

func (r Rectangle) Area() int {
	return len(r.Rows) * len(r.Cols)
}

func (r Rectangle) key() string {
	b := make([]byte, 0, 4*(len(r.Rows)+len(r.Cols))+1)
	for _, i := range r.Rows {
		b = appendInt(b, i)
	}
	b = append(b, '|')
	for _, j := range r.Cols {
		b = appendInt(b, j)
	}
	return string(b)
}

func appendInt(b []byte, v int) []byte {
	for v >= 10 {
		b = append(b, byte('0'+v%10))
		v /= 10
	}
	return append(b, byte('0'+v), ',')
}

// Enumerate returns the closed rectangles of m with |rows| >= 2 and
// |cols| >= 2, deduplicated, in discovery order. At most lim rectangles
// are emitted when lim > 0; the second result reports whether the cap
// truncated the enumeration.
func Enumerate(m *matrix.Matrix, lim int) ([]Rectangle, bool) {
	var (
		out    []Rectangle
		capped bool
		seen   = map[string]bool{}
	)
	record := func(rows, cols []int) bool {
		if len(rows) < 2 || len(cols) < 2 {
			return true
		}
		r := Rectangle{Rows: rows, Cols: cols}
		key := r.key()
		if seen[key] {
			return true
		}
		if lim > 0 && len(out) >= lim {
			capped = true
			return false
		}
		seen[key] = true
		if debug.Rects() {
			debug.Logf("rect rows=%v cols=%v\n", rows, cols)
		}
		out = append(out, r)
		return true
	}

	var dfs func(startCol int, rows []int) bool
	dfs = func(startCol int, rows []int) bool {
		closed := closureCols(m, rows)
		if !record(rows, closed) {
			return false
		}
		for j := startCol; j < m.NumCols(); j++ {
			if slices.Contains(closed, j) {
				// adding a closure column changes nothing
				continue
			}
			next := intersect(rows, m.ColRows(j))
			if len(next) == 0 {
				continue
			}
			if !dfs(j+1, next) {
				return false
			}
		}
		return true
	}

	for j := 0; j < m.NumCols(); j++ {
		seed := m.ColRows(j)
		if len(seed) == 0 {
			continue
		}
		if !dfs(j+1, slices.Clone(seed)) {
			break
		}
	}
	return out, capped
}

// closureCols returns every column whose row set contains rows.
func closureCols(m *matrix.Matrix, rows []int) []int {
	var out []int
	for j := 0; j < m.NumCols(); j++ {
		if containsAll(m.ColRows(j), rows) {
			out = append(out, j)
		}
	}
	return out
}

// containsAll reports whether sorted set a contains sorted set b.
func containsAll(a, b []int) bool {
	i := 0
	for _, v := range b {
		for i < len(a) && a[i] < v {
			i++
		}
		if i >= len(a) || a[i] != v {
			return false
		}
		i++
	}
	return true
}

// intersect returns the intersection of two sorted sets.
func intersect(a, b []int) []int {
	var out []int
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}
