package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func cube(lits ...Literal) Cube {
	return NewCube(lits...)
}

func expr(cubes ...Cube) Expr {
	return NewExpr(cubes...)
}

func TestNewCubeCanonical(t *testing.T) {
	got := NewCube("c", "a", "b", "a")
	want := Cube{"a", "b", "c"}
	if !got.Equal(want) {
		t.Errorf("NewCube: got %v, want %v", got, want)
	}
}

func TestCubeSubsetOps(t *testing.T) {
	abc := cube("a", "b", "c")
	ab := cube("a", "b")
	bd := cube("b", "d")

	if !abc.ContainsAll(ab) {
		t.Errorf("%v should contain %v", abc, ab)
	}
	if abc.ContainsAll(bd) {
		t.Errorf("%v should not contain %v", abc, bd)
	}
	if !abc.ContainsAll(Cube{}) {
		t.Errorf("every cube contains the empty cube")
	}
	if got, want := abc.Sub(ab), cube("c"); !got.Equal(want) {
		t.Errorf("Sub: got %v, want %v", got, want)
	}
	if got, want := ab.Union(bd), cube("a", "b", "d"); !got.Equal(want) {
		t.Errorf("Union: got %v, want %v", got, want)
	}
	if got, want := abc.Inter(bd), cube("b"); !got.Equal(want) {
		t.Errorf("Inter: got %v, want %v", got, want)
	}
}

type commonCubeTest struct {
	in   Expr
	want Cube
}

var commonCubeTests = []commonCubeTest{
	{
		in:   expr(cube("a", "b"), cube("a", "c"), cube("a", "d")),
		want: cube("a"),
	},
	{
		in:   expr(cube("a", "b"), cube("a", "b", "c"), cube("a", "b", "d")),
		want: cube("a", "b"),
	},
	{
		in:   expr(cube("a", "b"), cube("b", "c"), cube("a", "d")),
		want: cube(),
	},
	{
		in:   expr(),
		want: cube(),
	},
}

func TestCommonCube(t *testing.T) {
	for i, tt := range commonCubeTests {
		if got := tt.in.CommonCube(); !got.Equal(tt.want) {
			t.Errorf("test %d: CommonCube(%v) = %v, want %v", i, tt.in, got, tt.want)
		}
	}
}

func TestIsCubeFree(t *testing.T) {
	if expr(cube("a", "b")).IsCubeFree() {
		t.Errorf("single-cube expression must not be cube-free")
	}
	if expr(cube("a", "b"), cube("a", "c")).IsCubeFree() {
		t.Errorf("ab + ac shares a")
	}
	if !expr(cube("a", "b"), cube("c", "d")).IsCubeFree() {
		t.Errorf("ab + cd is cube-free")
	}
}

type divTest struct {
	in   Expr
	d    Cube
	q, r Expr
}

var divTests = []divTest{
	{
		in: expr(cube("a", "b"), cube("a", "c"), cube("d")),
		d:  cube("a"),
		q:  expr(cube("b"), cube("c")),
		r:  expr(cube("d")),
	},
	{
		in: expr(cube("a", "b"), cube("a", "c")),
		d:  cube(),
		q:  expr(cube("a", "b"), cube("a", "c")),
		r:  expr(),
	},
	{
		in: expr(cube("f")),
		d:  cube("f"),
		q:  expr(cube()),
		r:  expr(),
	},
	{
		in: expr(cube("a", "b"), cube("c", "d")),
		d:  cube("x"),
		q:  expr(),
		r:  expr(cube("a", "b"), cube("c", "d")),
	},
}

func TestDivCubeRemainder(t *testing.T) {
	for i, tt := range divTests {
		q := tt.in.DivCube(tt.d)
		r := tt.in.Remainder(tt.d)
		if !q.Equal(tt.q) {
			t.Errorf("test %d: DivCube = %v, want %v", i, q, tt.q)
		}
		if !r.Equal(tt.r) {
			t.Errorf("test %d: Remainder = %v, want %v", i, r, tt.r)
		}
		// d*Q + R reconstructs the input.
		back := tt.d.MulExpr(q).Union(r)
		if !back.Equal(tt.in) {
			t.Errorf("test %d: d*Q + R = %v, want %v", i, back, tt.in)
		}
	}
}

func TestLiteralCount(t *testing.T) {
	e := expr(cube("a", "b"), cube("a", "c"), cube("t1"))
	if got := e.LiteralCount(); got != 5 {
		t.Errorf("LiteralCount = %d, want 5", got)
	}
}

func TestLiterals(t *testing.T) {
	e := expr(cube("b", "a"), cube("a", "c"))
	want := []Literal{"a", "b", "c"}
	if diff := cmp.Diff(want, e.Literals()); diff != "" {
		t.Errorf("Literals mismatch (-want +got):\n%s", diff)
	}
}

func TestExprKeyIdentity(t *testing.T) {
	a := expr(cube("a", "b"), cube("c"))
	b := NewExpr(cube("c"), NewCube("b", "a"))
	if a.Key() != b.Key() {
		t.Errorf("equal expressions must have equal keys: %q vs %q", a.Key(), b.Key())
	}
}

func TestMulExprs(t *testing.T) {
	a := expr(cube("a"), cube("b"))
	b := expr(cube("c"), cube("d"))
	want := expr(cube("a", "c"), cube("a", "d"), cube("b", "c"), cube("b", "d"))
	if got := MulExprs(a, b); !got.Equal(want) {
		t.Errorf("MulExprs = %v, want %v", got, want)
	}
}
