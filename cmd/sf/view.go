package main

import (
	"github.com/scott-cotton/cli"

	"github.com/factorlab/sopfactor/encode"
)

func viewRun(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	exprs, err := getExprs(cc, args)
	if err != nil {
		return err
	}
	opts := append(cfg.encOpts(cc.Out), encode.EncodeVertical(cfg.Vertical))
	for _, e := range exprs {
		if err := encode.Expr(e, cc.Out, opts...); err != nil {
			return err
		}
	}
	return nil
}
