package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/factorlab/sopfactor/eval"
)

func evalRun(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	exprs, err := getExprs(cc, args)
	if err != nil {
		return err
	}
	for _, e := range exprs {
		v, err := eval.Expr(e, eval.Env(cfg.Env))
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%v\n", v)
	}
	return nil
}
