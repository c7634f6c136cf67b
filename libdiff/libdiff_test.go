package libdiff

import (
	"strings"
	"testing"

	"github.com/factorlab/sopfactor/ir"
)

func net(root ir.Expr, defs ...ir.Def) *ir.Network {
	return &ir.Network{Root: root, Defs: defs}
}

func TestNetworksEqual(t *testing.T) {
	a := net(ir.NewExpr(ir.NewCube("a", "b")))
	diffs := Networks(a, a)
	if got := Render(diffs, false); strings.ContainsAny(got, "[{") {
		t.Errorf("diff of equal networks has edits: %q", got)
	}
}

func TestNetworksChanged(t *testing.T) {
	a := net(ir.NewExpr(ir.NewCube("a", "b")))
	b := net(ir.NewExpr(ir.NewCube("a", "c")))
	got := Render(Networks(a, b), false)
	if !strings.Contains(got, "[-") || !strings.Contains(got, "{+") {
		t.Errorf("diff of different networks has no edits: %q", got)
	}
}
