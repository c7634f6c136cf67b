package ir

// Def is a named intermediate expression introduced by synthesis. The
// name occupies the same namespace as input literals.
type Def struct {
	Name Literal
	Body Expr
}

// Network is a multi-level factorization: a root expression plus the
// definitions it (transitively) references, in generation order.
type Network struct {
	Root Expr
	Defs []Def
}

// Lookup returns the body of the definition named name.
func (n *Network) Lookup(name Literal) (Expr, bool) {
	for i := range n.Defs {
		if n.Defs[i].Name == name {
			return n.Defs[i].Body, true
		}
	}
	return nil, false
}

// IsDef reports whether name is defined in the network.
func (n *Network) IsDef(name Literal) bool {
	_, ok := n.Lookup(name)
	return ok
}

// LiteralCount is the total literal count of the network: the root plus
// every definition body.
func (n *Network) LiteralCount() int {
	total := n.Root.LiteralCount()
	for i := range n.Defs {
		total += n.Defs[i].Body.LiteralCount()
	}
	return total
}
