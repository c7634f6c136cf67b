// Package ir provides the internal representation of sum-of-products
// expressions: literals, cubes, expressions and multi-level networks,
// together with the algebraic operations on them.
//
// All values are canonical: cubes keep their literals sorted and
// deduplicated, expressions keep their cubes sorted and deduplicated.
// Every operation is pure; inputs are never mutated.
package ir

import (
	"slices"
	"strings"
)

// Literal is an atomic positive Boolean variable identified by an opaque
// name. Literals are totally ordered, lexicographically by name; all
// other orderings in this package derive from that order.
type Literal string

// Cube is a product (AND) of distinct literals. The empty cube is the
// constant 1. Cubes are value types: two cubes with the same literals
// compare equal and produce the same Key.
type Cube []Literal

// NewCube builds a canonical cube from lits, sorting and removing
// duplicates.
func NewCube(lits ...Literal) Cube {
	c := slices.Clone(lits)
	slices.Sort(c)
	return Cube(slices.Compact(c))
}

// Key returns a string usable as a map key identifying the cube's value.
func (c Cube) Key() string {
	var sb strings.Builder
	for i, l := range c {
		if i > 0 {
			sb.WriteByte(0)
		}
		sb.WriteString(string(l))
	}
	return sb.String()
}

// String renders the cube as its literals concatenated in order, or "1"
// for the empty cube.
func (c Cube) String() string {
	if len(c) == 0 {
		return "1"
	}
	var sb strings.Builder
	for _, l := range c {
		sb.WriteString(string(l))
	}
	return sb.String()
}

func (c Cube) IsOne() bool {
	return len(c) == 0
}

func (c Cube) Contains(l Literal) bool {
	_, ok := slices.BinarySearch(c, l)
	return ok
}

// ContainsAll reports whether d is a subset of c.
func (c Cube) ContainsAll(d Cube) bool {
	i := 0
	for _, l := range d {
		for i < len(c) && c[i] < l {
			i++
		}
		if i >= len(c) || c[i] != l {
			return false
		}
		i++
	}
	return true
}

// Sub returns the cube c with all literals of d removed.
func (c Cube) Sub(d Cube) Cube {
	res := make(Cube, 0, len(c))
	i := 0
	for _, l := range c {
		for i < len(d) && d[i] < l {
			i++
		}
		if i < len(d) && d[i] == l {
			continue
		}
		res = append(res, l)
	}
	return res
}

// Union returns the cube containing the literals of both c and d.
func (c Cube) Union(d Cube) Cube {
	res := make(Cube, 0, len(c)+len(d))
	i, j := 0, 0
	for i < len(c) && j < len(d) {
		switch {
		case c[i] < d[j]:
			res = append(res, c[i])
			i++
		case c[i] > d[j]:
			res = append(res, d[j])
			j++
		default:
			res = append(res, c[i])
			i++
			j++
		}
	}
	res = append(res, c[i:]...)
	res = append(res, d[j:]...)
	return res
}

// Inter returns the intersection of c and d.
func (c Cube) Inter(d Cube) Cube {
	res := make(Cube, 0, min(len(c), len(d)))
	i, j := 0, 0
	for i < len(c) && j < len(d) {
		switch {
		case c[i] < d[j]:
			i++
		case c[i] > d[j]:
			j++
		default:
			res = append(res, c[i])
			i++
			j++
		}
	}
	return res
}

func (c Cube) Equal(d Cube) bool {
	return slices.Equal(c, d)
}

// CompareCubes orders cubes by size first, then lexicographically by
// their sorted literal sequences. This is the canonical cube order used
// for expression normalization and tie-breaking.
func CompareCubes(a, b Cube) int {
	if d := len(a) - len(b); d != 0 {
		return d
	}
	return slices.Compare(a, b)
}

// MulExpr distributes the cube c into every cube of e.
func (c Cube) MulExpr(e Expr) Expr {
	cubes := make([]Cube, 0, len(e))
	for _, q := range e {
		cubes = append(cubes, c.Union(q))
	}
	return NewExpr(cubes...)
}
