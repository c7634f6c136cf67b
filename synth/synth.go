// Package synth drives algebraic multi-level factorization: it
// repeatedly extracts the most profitable kernel-cube rectangle (or,
// failing that, a shared single-row cube) from an expression, records
// each extraction as a named definition, and recursively factors the
// definitions it creates. The result is a network of definitions
// algebraically equivalent to the input.
package synth

import (
	"github.com/factorlab/sopfactor/debug"
	"github.com/factorlab/sopfactor/ir"
	"github.com/factorlab/sopfactor/kernel"
	"github.com/factorlab/sopfactor/matrix"
	"github.com/factorlab/sopfactor/rect"
)

// RootNode labels the root expression in history records.
const RootNode = ir.Literal("F")

type state struct {
	o       *options
	names   *namer
	records []Record
}

// Synthesize factors F into a multi-level network. The returned history
// logs every accepted extraction plus enumeration-cap and skipped-
// rectangle diagnostics. Synthesis is pure: all state is scoped to the
// call, and F is not mutated. An input admitting no profitable
// extraction comes back as a network with an empty definition list.
func Synthesize(F ir.Expr, opts ...Option) (*ir.Network, []Record) {
	s := &state{o: newOptions(opts)}
	s.names = newNamer(s.o.prefix, s.o.start, F.Literals())

	bodies := map[ir.Literal]ir.Expr{}
	var order []ir.Literal

	worklist := []ir.Literal{RootNode}
	root := F
	for len(worklist) > 0 {
		node := worklist[0]
		worklist = worklist[1:]
		e := root
		if node != RootNode {
			e = bodies[node]
		}
		e, defs := s.factor(e, node)
		if node == RootNode {
			root = e
		} else {
			bodies[node] = e
		}
		for _, d := range defs {
			bodies[d.Name] = d.Body
			order = append(order, d.Name)
			worklist = append(worklist, d.Name)
		}
	}

	net := &ir.Network{Root: root}
	for _, name := range order {
		net.Defs = append(net.Defs, ir.Def{Name: name, Body: bodies[name]})
	}
	return net, s.records
}

// factor applies profitable extractions to e until none remains,
// returning the rewritten expression and the definitions created for
// it. Every accepted step strictly decreases the node's literal count,
// so the loop terminates.
func (s *state) factor(e ir.Expr, node ir.Literal) (ir.Expr, []ir.Def) {
	var defs []ir.Def
	steps := 0
	for {
		if s.o.maxSteps > 0 && steps >= s.o.maxSteps {
			break
		}
		name := s.names.peek()
		next, body, step, ok := s.step(e, node, name)
		if !ok {
			break
		}
		s.names.commit(name)
		defs = append(defs, ir.Def{Name: name, Body: body})
		s.record(step, node, name, len(e)-countWithout(next, name), body)
		if debug.Synth() {
			debug.Logf("synth %s: %s = %s (%s profit=%d)\n",
				node, name, body, step.Kind(), step.Profit())
		}
		e = next
		steps++
	}
	return e, defs
}

// step selects and applies the best applicable extraction for e: the
// most profitable realized rectangle, else the best single-row
// extraction. Rectangles whose covered cubes are absent from e are
// skipped with a diagnostic.
func (s *state) step(e ir.Expr, node, name ir.Literal) (ir.Expr, ir.Expr, Step, bool) {
	pairs := kernel.Pairs(e)
	if len(pairs) > 0 {
		m := matrix.Build(pairs)
		rects, capped := rect.Enumerate(m, s.o.maxRects)
		if capped {
			s.records = append(s.records, Record{Kind: RecordCapped, Node: node})
		}
		for _, r := range rect.Ranked(m, rects) {
			st := &RectangleStep{M: m, Rect: r, profit: rect.Profit(m, r)}
			next, body, err := st.apply(e, name)
			if err != nil {
				s.records = append(s.records, Record{
					Kind:   RecordSkipped,
					Node:   node,
					Profit: st.Profit(),
					Rows:   len(r.Rows),
					Cols:   len(r.Cols),
				})
				if debug.Synth() {
					debug.Logf("synth %s: skipping rectangle: %v\n", node, err)
				}
				continue
			}
			return next, body, st, true
		}
	}
	if st, ok := findSingleRow(e); ok {
		next, body, err := st.apply(e, name)
		if err == nil {
			return next, body, st, true
		}
	}
	return nil, nil, nil, false
}

func (s *state) record(step Step, node, name ir.Literal, covered int, body ir.Expr) {
	rec := Record{
		Node:     node,
		Name:     name,
		Profit:   step.Profit(),
		Covered:  covered,
		DefCubes: len(body),
	}
	switch st := step.(type) {
	case *RectangleStep:
		rec.Kind = RecordRectangle
		rec.Rows = len(st.Rect.Rows)
		rec.Cols = len(st.Rect.Cols)
	case *SingleRowStep:
		rec.Kind = RecordSingleRow
		rec.Rows = len(st.Group)
		rec.Cols = 1
	}
	s.records = append(s.records, rec)
}

// countWithout counts the cubes of e not containing name.
func countWithout(e ir.Expr, name ir.Literal) int {
	n := 0
	for _, c := range e {
		if !c.Contains(name) {
			n++
		}
	}
	return n
}
