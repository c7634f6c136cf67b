package parse

import (
	"errors"
	"testing"

	"github.com/factorlab/sopfactor/ir"
)

type parseTest struct {
	in   string
	want ir.Expr
}

var parseTests = []parseTest{
	{
		in:   "ab + ac + ad",
		want: ir.NewExpr(ir.NewCube("a", "b"), ir.NewCube("a", "c"), ir.NewCube("a", "d")),
	},
	{
		in:   "a",
		want: ir.NewExpr(ir.NewCube("a")),
	},
	{
		in:   "",
		want: ir.Expr{},
	},
	{
		in:   "dt1 + et1",
		want: ir.NewExpr(ir.NewCube("d", "t1"), ir.NewCube("e", "t1")),
	},
	{
		in:   "foo*bar + baz",
		want: ir.NewExpr(ir.NewCube("bar", "foo"), ir.NewCube("b", "a", "z")),
	},
	{
		in:   "aa",
		want: ir.NewExpr(ir.NewCube("a")),
	},
	{
		in:   " ad f +  aef ",
		want: ir.NewExpr(ir.NewCube("a", "d", "f"), ir.NewCube("a", "e", "f")),
	},
}

func TestParse(t *testing.T) {
	for i, tt := range parseTests {
		got, err := Parse([]byte(tt.in))
		if err != nil {
			t.Errorf("test %d: Parse(%q): %v", i, tt.in, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("test %d: Parse(%q) = %v, want %v", i, tt.in, got, tt.want)
		}
	}
}

var parseErrTests = []string{
	"a + + b",
	"a + ",
	"3ab",
	"a-b",
	"a**b",
	"a*1b*c",
}

func TestParseErrors(t *testing.T) {
	for i, in := range parseErrTests {
		_, err := Parse([]byte(in))
		if err == nil {
			t.Errorf("test %d: Parse(%q) should fail", i, in)
			continue
		}
		if !errors.Is(err, ir.ErrParse) {
			t.Errorf("test %d: Parse(%q) error %v does not wrap ErrParse", i, in, err)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	ins := []string{
		"ab + ac + ad",
		"h + bfg + adf + bdf + cdf + aef + bef + cef + dg + eg",
		"a",
		"dt1 + et1",
	}
	for _, in := range ins {
		e, err := Parse([]byte(in))
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		back, err := Parse([]byte(e.String()))
		if err != nil {
			t.Fatalf("reparse of %q: %v", e.String(), err)
		}
		if !back.Equal(e) {
			t.Errorf("round trip of %q: got %v, want %v", in, back, e)
		}
	}
}
