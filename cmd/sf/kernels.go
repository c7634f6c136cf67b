package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/factorlab/sopfactor/encode"
	"github.com/factorlab/sopfactor/kernel"
)

func kernelsRun(cfg *KernelsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Kernels.Parse(cc, args)
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
		pairs := kernel.Pairs(e)
		if err := encode.Kernels(pairs, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
