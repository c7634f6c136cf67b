package matrix

import (
	"testing"

	"github.com/factorlab/sopfactor/ir"
	"github.com/factorlab/sopfactor/kernel"
)

func pair(co string, kernelCubes ...string) kernel.Pair {
	var lits []ir.Literal
	for _, r := range co {
		lits = append(lits, ir.Literal(r))
	}
	var cubes []ir.Cube
	for _, s := range kernelCubes {
		var cl []ir.Literal
		for _, r := range s {
			cl = append(cl, ir.Literal(r))
		}
		cubes = append(cubes, ir.NewCube(cl...))
	}
	return kernel.Pair{Co: ir.NewCube(lits...), Kernel: ir.NewExpr(cubes...)}
}

func TestBuild(t *testing.T) {
	pairs := []kernel.Pair{
		pair("a", "b", "c"),
		pair("d", "b", "c"),
		pair("b", "a", "d"),
		pair("c", "a", "d"),
	}
	m := Build(pairs)
	if m.NumRows() != 4 {
		t.Fatalf("rows = %d, want 4", m.NumRows())
	}
	if m.NumCols() != 4 {
		t.Fatalf("cols = %d, want 4", m.NumCols())
	}
	if m.NumOnes() != 8 {
		t.Fatalf("ones = %d, want 8", m.NumOnes())
	}
	// rows and cols are indexed in first-occurrence order
	wantRows := []string{"a", "d", "b", "c"}
	for i, w := range wantRows {
		if m.Rows[i].String() != w {
			t.Errorf("row %d = %s, want %s", i, m.Rows[i], w)
		}
	}
	wantCols := []string{"b", "c", "a", "d"}
	for j, w := range wantCols {
		if m.Cols[j].String() != w {
			t.Errorf("col %d = %s, want %s", j, m.Cols[j], w)
		}
	}
	for _, one := range [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 2}, {2, 3}, {3, 2}, {3, 3}} {
		if !m.Has(one[0], one[1]) {
			t.Errorf("missing one at %v", one)
		}
	}
	if m.Has(0, 2) {
		t.Errorf("unexpected one at (0,2)")
	}
	if got := m.ColRows(0); len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("ColRows(0) = %v, want [0 1]", got)
	}
}

func TestBuildDedup(t *testing.T) {
	pairs := []kernel.Pair{
		pair("a", "b", "c"),
		pair("a", "b", "c"),
	}
	m := Build(pairs)
	if m.NumRows() != 1 || m.NumCols() != 2 || m.NumOnes() != 2 {
		t.Errorf("dedup: rows=%d cols=%d ones=%d, want 1/2/2",
			m.NumRows(), m.NumCols(), m.NumOnes())
	}
}

func TestColLiteralCount(t *testing.T) {
	// kernels are canonical: the one-literal cube sorts first
	m := Build([]kernel.Pair{pair("f", "ab", "c")})
	if got := m.ColLiteralCount(0); got != 1 {
		t.Errorf("ColLiteralCount(0) = %d, want 1", got)
	}
	if got := m.ColLiteralCount(1); got != 2 {
		t.Errorf("ColLiteralCount(1) = %d, want 2", got)
	}
}
