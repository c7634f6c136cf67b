package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/factorlab/sopfactor/libdiff"
	"github.com/factorlab/sopfactor/synth"
)

func diffRun(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff wants exactly two arguments", cli.ErrUsage)
	}
	from, err := getExpr(cc, args[0])
	if err != nil {
		return err
	}
	to, err := getExpr(cc, args[1])
	if err != nil {
		return err
	}
	fromNet, _ := synth.Synthesize(from)
	toNet, _ := synth.Synthesize(to)
	diffs := libdiff.Networks(fromNet, toNet)
	fmt.Fprint(cc.Out, libdiff.Render(diffs, cfg.useColor(cc.Out)))
	return nil
}
