// Package kernel enumerates the kernels of an SOP expression.
//
// A kernel of F is a cube-free quotient F / d for some cube d, the
// co-kernel. Enumeration follows the classical recursive scheme: divide
// by the intersection cube of every literal occurring in two or more
// cubes, skipping quotients in which an earlier literal occurs in two or
// more cubes (those are reached through the earlier literal's path). A
// kernel can still be reached through several co-kernels: Pairs keeps
// one entry per (co-kernel, kernel) pair, Distinct one per kernel.
package kernel

import (
	"slices"

	"github.com/factorlab/sopfactor/debug"
	"github.com/factorlab/sopfactor/ir"
)

// Pair is a (co-kernel, kernel) pair: Kernel = F / Co.
type Pair struct {
	Co     ir.Cube
	Kernel ir.Expr
}

// Pairs returns every (co-kernel, kernel) pair of F discovered in the
// canonical traversal order, deduplicated by pair value. A kernel
// reachable through several co-kernels appears once per co-kernel;
// rectangle covering needs that multiplicity. An expression with fewer
// than two cubes has no kernels.
func Pairs(F ir.Expr) []Pair {
	var out []Pair
	seen := map[string]bool{}
	emit := func(co ir.Cube, k ir.Expr) {
		key := co.Key() + "/" + k.Key()
		if seen[key] {
			return
		}
		seen[key] = true
		if debug.Kernels() {
			debug.Logf("kernel co=%s k=%s\n", co, k)
		}
		out = append(out, Pair{Co: co, Kernel: k})
	}
	recurse(F, ir.Cube{}, emit)
	return out
}

// Distinct collapses pairs with equal kernel values, keeping the first
// co-kernel discovered for each kernel.
func Distinct(pairs []Pair) []Pair {
	var out []Pair
	seen := map[string]bool{}
	for _, p := range pairs {
		key := p.Kernel.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}

func recurse(e ir.Expr, co ir.Cube, emit func(ir.Cube, ir.Expr)) {
	if len(e) < 2 {
		return
	}
	if e.IsCubeFree() {
		emit(co, e)
	}
	for _, lit := range multiLiterals(e) {
		div := interCube(e, lit)
		q := e.DivCube(div)
		if dividedByEarlier(q, lit) {
			continue
		}
		recurse(q, co.Union(div), emit)
	}
}

// multiLiterals returns the literals occurring in at least two cubes of
// e, in canonical order.
func multiLiterals(e ir.Expr) []ir.Literal {
	count := map[ir.Literal]int{}
	for _, c := range e {
		for _, l := range c {
			count[l]++
		}
	}
	var lits []ir.Literal
	for l, n := range count {
		if n >= 2 {
			lits = append(lits, l)
		}
	}
	slices.Sort(lits)
	return lits
}

// interCube is the intersection of all cubes of e containing lit.
func interCube(e ir.Expr, lit ir.Literal) ir.Cube {
	var inter ir.Cube
	first := true
	for _, c := range e {
		if !c.Contains(lit) {
			continue
		}
		if first {
			inter = c
			first = false
			continue
		}
		inter = inter.Inter(c)
	}
	return inter
}

// dividedByEarlier reports whether a literal strictly earlier than lit
// occurs in two or more cubes of q. Such quotients are reached through
// the earlier literal's path and must be skipped here.
func dividedByEarlier(q ir.Expr, lit ir.Literal) bool {
	count := map[ir.Literal]int{}
	for _, c := range q {
		for _, l := range c {
			if l >= lit {
				continue
			}
			count[l]++
			if count[l] >= 2 {
				return true
			}
		}
	}
	return false
}
