// Package eval evaluates expressions and networks under a truth
// assignment. Each SOP is translated to a boolean expr-lang program
// ("a && b || c") and run against the assignment; each definition is
// evaluated after the definitions it references, so each name is bound
// before it is used.
package eval

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/factorlab/sopfactor/ir"
)

// Env assigns a truth value to every input literal.
type Env map[string]bool

// Expr evaluates e under env. Every literal of e must be bound.
func Expr(e ir.Expr, env Env) (bool, error) {
	return run(e, env)
}

// Network evaluates net's root under env, first evaluating every
// definition in dependency order and binding its name. Definition
// names shadow nothing: the synthesizer never reuses an input name.
func Network(net *ir.Network, env Env) (bool, error) {
	bound := Env{}
	for k, v := range env {
		bound[k] = v
	}
	var bind func(name ir.Literal) error
	bind = func(name ir.Literal) error {
		if _, ok := bound[string(name)]; ok {
			return nil
		}
		body, _ := net.Lookup(name)
		for _, l := range body.Literals() {
			if net.IsDef(l) {
				if err := bind(l); err != nil {
					return err
				}
			}
		}
		v, err := run(body, bound)
		if err != nil {
			return fmt.Errorf("definition %s: %w", name, err)
		}
		bound[string(name)] = v
		return nil
	}
	for _, d := range net.Defs {
		if err := bind(d.Name); err != nil {
			return false, err
		}
	}
	return run(net.Root, bound)
}

func run(e ir.Expr, env Env) (bool, error) {
	for _, l := range e.Literals() {
		if _, ok := env[string(l)]; !ok {
			return false, fmt.Errorf("unbound literal %q", l)
		}
	}
	prg, err := compile(e)
	if err != nil {
		return false, err
	}
	res, err := expr.Run(prg, toAny(env))
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("expression %q evaluated to %T, not bool", e, res)
	}
	return b, nil
}

func compile(e ir.Expr) (*vm.Program, error) {
	prg, err := expr.Compile(source(e), expr.AllowUndefinedVariables(), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", e, err)
	}
	return prg, nil
}

// source renders e as an expr-lang boolean expression.
func source(e ir.Expr) string {
	if len(e) == 0 {
		return "false"
	}
	terms := make([]string, 0, len(e))
	for _, c := range e {
		if len(c) == 0 {
			terms = append(terms, "true")
			continue
		}
		lits := make([]string, 0, len(c))
		for _, l := range c {
			lits = append(lits, string(l))
		}
		terms = append(terms, strings.Join(lits, " && "))
	}
	return strings.Join(terms, " || ")
}

func toAny(env Env) map[string]any {
	m := make(map[string]any, len(env))
	for k, v := range env {
		m[k] = v
	}
	return m
}
