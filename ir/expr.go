package ir

import (
	"slices"
	"strings"
)

// Expr is a sum (OR) of distinct cubes. The empty expression is the
// constant 0. Expressions are kept in canonical cube order.
type Expr []Cube

// NewExpr builds a canonical expression from cubes, sorting and removing
// duplicate cubes. The cubes themselves must already be canonical (as
// produced by NewCube and the Cube operations).
func NewExpr(cubes ...Cube) Expr {
	e := slices.Clone(cubes)
	slices.SortFunc(e, CompareCubes)
	return Expr(slices.CompactFunc(e, Cube.Equal))
}

// String renders the expression as its cubes joined by " + ", or "0"
// for the empty expression.
func (e Expr) String() string {
	if len(e) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, c := range e {
		if i > 0 {
			sb.WriteString(" + ")
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}

// Key returns a string usable as a map key identifying the expression's
// value.
func (e Expr) Key() string {
	var sb strings.Builder
	for i, c := range e {
		if i > 0 {
			sb.WriteByte(1)
		}
		sb.WriteString(c.Key())
	}
	return sb.String()
}

func (e Expr) IsZero() bool {
	return len(e) == 0
}

// ContainsCube reports whether c occurs in e, comparing by value.
func (e Expr) ContainsCube(c Cube) bool {
	_, ok := slices.BinarySearchFunc(e, c, CompareCubes)
	return ok
}

// CommonCube returns the intersection of literals across all cubes of e,
// the largest cube dividing every cube. The empty expression yields the
// empty cube.
func (e Expr) CommonCube() Cube {
	if len(e) == 0 {
		return Cube{}
	}
	common := e[0]
	for _, c := range e[1:] {
		common = common.Inter(c)
		if len(common) == 0 {
			break
		}
	}
	return slices.Clone(common)
}

// IsCubeFree reports whether e has at least two cubes and no literal
// shared by all of them. A single-cube expression is never cube-free.
func (e Expr) IsCubeFree() bool {
	return len(e) >= 2 && len(e.CommonCube()) == 0
}

// DivCube returns the algebraic quotient e / d: the residuals of the
// cubes of e divisible by d. Dividing by the empty cube returns e.
func (e Expr) DivCube(d Cube) Expr {
	q := make([]Cube, 0, len(e))
	for _, c := range e {
		if c.ContainsAll(d) {
			q = append(q, c.Sub(d))
		}
	}
	return NewExpr(q...)
}

// Remainder returns the cubes of e not divisible by d, so that e is the
// disjoint union of d.MulExpr(e.DivCube(d)) and e.Remainder(d).
func (e Expr) Remainder(d Cube) Expr {
	r := make([]Cube, 0, len(e))
	for _, c := range e {
		if !c.ContainsAll(d) {
			r = append(r, c)
		}
	}
	return NewExpr(r...)
}

// LiteralCount is the total number of literal occurrences in e. A named
// literal counts as one regardless of its definition's size.
func (e Expr) LiteralCount() int {
	n := 0
	for _, c := range e {
		n += len(c)
	}
	return n
}

// Literals returns the distinct literals of e, sorted.
func (e Expr) Literals() []Literal {
	var lits []Literal
	for _, c := range e {
		lits = append(lits, c...)
	}
	slices.Sort(lits)
	return slices.Compact(lits)
}

// Union returns the sum of e and f, with duplicate cubes removed.
func (e Expr) Union(f Expr) Expr {
	cubes := make([]Cube, 0, len(e)+len(f))
	cubes = append(cubes, e...)
	cubes = append(cubes, f...)
	return NewExpr(cubes...)
}

func (e Expr) Equal(f Expr) bool {
	return slices.EqualFunc(e, f, Cube.Equal)
}

// MulExprs distributes a over b, returning the sum of all pairwise cube
// products.
func MulExprs(a, b Expr) Expr {
	cubes := make([]Cube, 0, len(a)*len(b))
	for _, ca := range a {
		for _, cb := range b {
			cubes = append(cubes, ca.Union(cb))
		}
	}
	return NewExpr(cubes...)
}
