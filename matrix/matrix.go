// Package matrix builds the co-kernel / kernel-cube Boolean matrix used
// for rectangle covering.
package matrix

import (
	"slices"

	"github.com/factorlab/sopfactor/ir"
	"github.com/factorlab/sopfactor/kernel"
)

// Matrix is a sparse Boolean matrix whose rows are labeled by distinct
// co-kernels and whose columns are labeled by the distinct cubes
// appearing across all kernels. Entry (i, j) is set iff the kernel of
// row i's pair contains column j's cube.
type Matrix struct {
	Rows []ir.Cube
	Cols []ir.Cube

	rowIndex map[string]int
	colIndex map[string]int
	ones     map[[2]int]bool
	colRows  [][]int
}

// Build constructs the matrix from kernel pairs. Row and column indices
// follow first occurrence in the pair order.
func Build(pairs []kernel.Pair) *Matrix {
	m := &Matrix{
		rowIndex: map[string]int{},
		colIndex: map[string]int{},
		ones:     map[[2]int]bool{},
	}
	for _, p := range pairs {
		i := m.internRow(p.Co)
		for _, c := range p.Kernel {
			j := m.internCol(c)
			m.set(i, j)
		}
	}
	for j := range m.colRows {
		slices.Sort(m.colRows[j])
	}
	return m
}

func (m *Matrix) internRow(co ir.Cube) int {
	key := co.Key()
	if i, ok := m.rowIndex[key]; ok {
		return i
	}
	i := len(m.Rows)
	m.Rows = append(m.Rows, co)
	m.rowIndex[key] = i
	return i
}

func (m *Matrix) internCol(c ir.Cube) int {
	key := c.Key()
	if j, ok := m.colIndex[key]; ok {
		return j
	}
	j := len(m.Cols)
	m.Cols = append(m.Cols, c)
	m.colIndex[key] = j
	m.colRows = append(m.colRows, nil)
	return j
}

func (m *Matrix) set(i, j int) {
	if m.ones[[2]int{i, j}] {
		return
	}
	m.ones[[2]int{i, j}] = true
	m.colRows[j] = append(m.colRows[j], i)
}

// Has reports entry (i, j).
func (m *Matrix) Has(i, j int) bool {
	return m.ones[[2]int{i, j}]
}

// ColRows returns the row indices set in column j. The slice is shared;
// callers must not modify it.
func (m *Matrix) ColRows(j int) []int {
	return m.colRows[j]
}

func (m *Matrix) NumRows() int { return len(m.Rows) }
func (m *Matrix) NumCols() int { return len(m.Cols) }
func (m *Matrix) NumOnes() int { return len(m.ones) }

// ColLiteralCount is the literal count of column j's cube.
func (m *Matrix) ColLiteralCount(j int) int {
	return len(m.Cols[j])
}
