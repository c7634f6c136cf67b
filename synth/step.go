package synth

import (
	"fmt"

	"github.com/factorlab/sopfactor/ir"
	"github.com/factorlab/sopfactor/matrix"
	"github.com/factorlab/sopfactor/rect"
)

// StepKind discriminates the extraction variants.
type StepKind int

const (
	StepRectangle StepKind = iota
	StepSingleRow
)

func (k StepKind) String() string {
	switch k {
	case StepRectangle:
		return "rectangle"
	case StepSingleRow:
		return "single-row"
	default:
		return "<unknown step kind>"
	}
}

// Step is one extraction: applying it to an expression yields the
// rewritten expression and the body of the new definition.
type Step interface {
	Kind() StepKind
	Profit() int
	apply(F ir.Expr, name ir.Literal) (ir.Expr, ir.Expr, error)
}

// RectangleStep extracts the sum of a rectangle's column cubes as a new
// definition, replacing each row's covered cubes by the row's co-kernel
// times the definition name.
type RectangleStep struct {
	M      *matrix.Matrix
	Rect   rect.Rectangle
	profit int
}

func (s *RectangleStep) Kind() StepKind { return StepRectangle }
func (s *RectangleStep) Profit() int    { return s.profit }

func (s *RectangleStep) apply(F ir.Expr, name ir.Literal) (ir.Expr, ir.Expr, error) {
	cols := make([]ir.Cube, 0, len(s.Rect.Cols))
	for _, j := range s.Rect.Cols {
		cols = append(cols, s.M.Cols[j])
	}
	body := ir.NewExpr(cols...)

	// Every covered cube must be present, else the rectangle does not
	// describe F.
	removed := map[string]bool{}
	for _, i := range s.Rect.Rows {
		co := s.M.Rows[i]
		for _, k := range body {
			c := co.Union(k)
			if !F.ContainsCube(c) {
				return nil, nil, fmt.Errorf("%w: cube %s", ErrRectangleNotRealized, c)
			}
			removed[c.Key()] = true
		}
	}

	cubes := make([]ir.Cube, 0, len(F))
	for _, c := range F {
		if !removed[c.Key()] {
			cubes = append(cubes, c)
		}
	}
	for _, i := range s.Rect.Rows {
		cubes = append(cubes, s.M.Rows[i].Union(ir.NewCube(name)))
	}
	return ir.NewExpr(cubes...), body, nil
}

// SingleRowStep extracts the quotient of a group of cubes sharing a
// common factor cube, a pattern invisible to rectangle covering when
// only one kernel row participates. The group collapses to the single
// cube div * name; the definition body is the group's quotient by div.
type SingleRowStep struct {
	Div    ir.Cube
	Group  []ir.Cube
	profit int
}

func (s *SingleRowStep) Kind() StepKind { return StepSingleRow }
func (s *SingleRowStep) Profit() int    { return s.profit }

func (s *SingleRowStep) apply(F ir.Expr, name ir.Literal) (ir.Expr, ir.Expr, error) {
	inGroup := map[string]bool{}
	body := make([]ir.Cube, 0, len(s.Group))
	for _, c := range s.Group {
		inGroup[c.Key()] = true
		body = append(body, c.Sub(s.Div))
	}
	cubes := make([]ir.Cube, 0, len(F))
	for _, c := range F {
		if !inGroup[c.Key()] {
			cubes = append(cubes, c)
		}
	}
	cubes = append(cubes, s.Div.Union(ir.NewCube(name)))
	return ir.NewExpr(cubes...), ir.NewExpr(body...), nil
}
