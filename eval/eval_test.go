package eval

import (
	"testing"

	"github.com/factorlab/sopfactor/ir"
	"github.com/factorlab/sopfactor/parse"
	"github.com/factorlab/sopfactor/synth"
)

func mustParse(t *testing.T, s string) ir.Expr {
	t.Helper()
	e, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return e
}

type evalTest struct {
	in   string
	env  Env
	want bool
}

var evalTests = []evalTest{
	{
		in:   "ab + cd",
		env:  Env{"a": true, "b": true, "c": false, "d": false},
		want: true,
	},
	{
		in:   "ab + cd",
		env:  Env{"a": true, "b": false, "c": false, "d": true},
		want: false,
	},
	{
		in:   "a",
		env:  Env{"a": false},
		want: false,
	},
	{
		// the empty expression is the constant 0
		in:   "",
		env:  Env{},
		want: false,
	},
}

func TestExpr(t *testing.T) {
	for i, tt := range evalTests {
		got, err := Expr(mustParse(t, tt.in), tt.env)
		if err != nil {
			t.Errorf("test %d: %v", i, err)
			continue
		}
		if got != tt.want {
			t.Errorf("test %d: Expr(%q, %v) = %v, want %v", i, tt.in, tt.env, got, tt.want)
		}
	}
}

func TestExprUnbound(t *testing.T) {
	_, err := Expr(mustParse(t, "ab"), Env{"a": true})
	if err == nil {
		t.Fatalf("unbound literal should fail")
	}
}

// TestNetworkAgrees checks that a synthesized network evaluates exactly
// as its input over every assignment of the input literals.
func TestNetworkAgrees(t *testing.T) {
	ins := []string{
		"ab + ac + ad",
		"ab + ac + bd + cd",
		"ab + cd",
		"adf + aef + bdf + bef + cdf + cef",
	}
	for _, in := range ins {
		F := mustParse(t, in)
		net, _ := synth.Synthesize(F)
		lits := F.Literals()
		for bits := 0; bits < 1<<len(lits); bits++ {
			env := Env{}
			for i, l := range lits {
				env[string(l)] = bits&(1<<i) != 0
			}
			want, err := Expr(F, env)
			if err != nil {
				t.Fatalf("%s: %v", in, err)
			}
			got, err := Network(net, env)
			if err != nil {
				t.Fatalf("%s: %v", in, err)
			}
			if got != want {
				t.Errorf("%s under %v: network %v, input %v", in, env, got, want)
			}
		}
	}
}
