package synth

import (
	"fmt"

	"github.com/factorlab/sopfactor/ir"
)

// Validate checks the structural invariants of a synthesized network:
// definition names are unique, and the references-relation between
// definitions is acyclic from the root.
func Validate(net *ir.Network) error {
	seen := map[ir.Literal]bool{}
	for _, d := range net.Defs {
		if seen[d.Name] {
			return fmt.Errorf("duplicate definition %q", d.Name)
		}
		seen[d.Name] = true
	}

	const (
		white = iota
		gray
		black
	)
	color := map[ir.Literal]int{}
	var visit func(name ir.Literal, body ir.Expr) error
	visit = func(name ir.Literal, body ir.Expr) error {
		color[name] = gray
		for _, l := range body.Literals() {
			ref, ok := net.Lookup(l)
			if !ok {
				continue
			}
			switch color[l] {
			case gray:
				return fmt.Errorf("definition cycle through %q", l)
			case white:
				if err := visit(l, ref); err != nil {
					return err
				}
			}
		}
		color[name] = black
		return nil
	}
	return visit(RootNode, net.Root)
}
