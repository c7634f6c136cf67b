package synth

import (
	"strconv"

	"github.com/factorlab/sopfactor/ir"
)

// namer hands out fresh definition names prefix1, prefix2, ... in
// monotonic order, skipping identifiers already in use. peek returns
// the next candidate without consuming it; commit consumes it. The
// counter is scoped to one synthesis invocation.
type namer struct {
	prefix string
	next   int
	used   map[ir.Literal]bool
}

func newNamer(prefix string, start int, used []ir.Literal) *namer {
	n := &namer{prefix: prefix, next: start, used: map[ir.Literal]bool{}}
	for _, l := range used {
		n.used[l] = true
	}
	return n
}

func (n *namer) peek() ir.Literal {
	i := n.next
	for {
		name := ir.Literal(n.prefix + strconv.Itoa(i))
		if !n.used[name] {
			return name
		}
		i++
	}
}

func (n *namer) commit(name ir.Literal) {
	n.used[name] = true
	for {
		cand := ir.Literal(n.prefix + strconv.Itoa(n.next))
		if !n.used[cand] {
			return
		}
		n.next++
	}
}
