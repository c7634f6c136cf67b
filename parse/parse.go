// Package parse provides SOP text parsing support.
//
// An expression is a sum of terms separated by "+". A term is a product
// of literals, written either run together ("abd", where a literal is
// one letter followed by its trailing digits, so "dt1" is d*t1) or
// separated by the product separator "*" ("foo*bar"). Whitespace is
// ignored. The empty input denotes the constant 0.
package parse

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/factorlab/sopfactor/ir"
)

func Parse(d []byte, opts ...ParseOption) (ir.Expr, error) {
	pOpts := &parseOpts{sep: '*'}
	for _, f := range opts {
		f(pOpts)
	}
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, string(d))
	if s == "" {
		return ir.Expr{}, nil
	}
	var cubes []ir.Cube
	for i, term := range strings.Split(s, "+") {
		if term == "" {
			return nil, fmt.Errorf("%w: empty term %d", ir.ErrParse, i+1)
		}
		c, err := parseTerm(term, pOpts)
		if err != nil {
			return nil, err
		}
		cubes = append(cubes, c)
	}
	return ir.NewExpr(cubes...), nil
}

func parseTerm(term string, opts *parseOpts) (ir.Cube, error) {
	if strings.ContainsRune(term, opts.sep) {
		var lits []ir.Literal
		for _, f := range strings.Split(term, string(opts.sep)) {
			if f == "" {
				return nil, fmt.Errorf("%w: empty factor in term %q", ir.ErrParse, term)
			}
			if err := checkIdent(f); err != nil {
				return nil, err
			}
			lits = append(lits, ir.Literal(f))
		}
		return ir.NewCube(lits...), nil
	}
	return splitRun(term)
}

// splitRun splits a run-together term into literals: each literal is a
// letter with its trailing digits.
func splitRun(term string) (ir.Cube, error) {
	var lits []ir.Literal
	var cur []rune
	for _, r := range term {
		switch {
		case unicode.IsLetter(r):
			if cur != nil {
				lits = append(lits, ir.Literal(cur))
			}
			cur = []rune{r}
		case unicode.IsDigit(r):
			if cur == nil {
				return nil, fmt.Errorf("%w: term %q starts with a digit", ir.ErrParse, term)
			}
			cur = append(cur, r)
		default:
			return nil, fmt.Errorf("%w: illegal rune %q in term %q", ir.ErrParse, r, term)
		}
	}
	if cur != nil {
		lits = append(lits, ir.Literal(cur))
	}
	return ir.NewCube(lits...), nil
}

// checkIdent validates a separated literal: a letter followed by
// letters, digits or underscores.
func checkIdent(s string) error {
	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) {
				return fmt.Errorf("%w: literal %q must start with a letter", ir.ErrParse, s)
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return fmt.Errorf("%w: illegal rune %q in literal %q", ir.ErrParse, r, s)
		}
	}
	return nil
}
