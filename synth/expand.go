package synth

import "github.com/factorlab/sopfactor/ir"

// Expand substitutes every definition body for its name in the root,
// transitively, yielding the flat two-level form of the network. For a
// correct synthesis the result equals the original input as a cube set.
func Expand(net *ir.Network) ir.Expr {
	memo := map[ir.Literal]ir.Expr{}
	var expandExpr func(e ir.Expr) ir.Expr
	expandName := func(name ir.Literal) ir.Expr {
		if e, ok := memo[name]; ok {
			return e
		}
		body, _ := net.Lookup(name)
		e := expandExpr(body)
		memo[name] = e
		return e
	}
	expandExpr = func(e ir.Expr) ir.Expr {
		out := ir.Expr{}
		for _, c := range e {
			term := ir.NewExpr(ir.Cube{})
			plain := ir.Cube{}
			for _, l := range c {
				if net.IsDef(l) {
					term = ir.MulExprs(term, expandName(l))
				} else {
					plain = plain.Union(ir.NewCube(l))
				}
			}
			out = out.Union(plain.MulExpr(term))
		}
		return out
	}
	return expandExpr(net.Root)
}
