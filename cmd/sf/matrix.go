package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/factorlab/sopfactor/encode"
	"github.com/factorlab/sopfactor/kernel"
	"github.com/factorlab/sopfactor/matrix"
)

func matrixRun(cfg *MatrixConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Matrix.Parse(cc, args)
	if err != nil {
		return err
	}
	exprs, err := getExprs(cc, args)
	if err != nil {
		return err
	}
	for i, e := range exprs {
		if i > 0 {
			fmt.Fprintln(cc.Out)
		}
		m := matrix.Build(kernel.Pairs(e))
		if err := encode.Matrix(m, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
