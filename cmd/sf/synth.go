package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	log "github.com/sirupsen/logrus"

	"github.com/factorlab/sopfactor/encode"
	"github.com/factorlab/sopfactor/synth"
)

func synthRun(cfg *SynthConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Synth.Parse(cc, args)
	if err != nil {
		return err
	}
	exprs, err := getExprs(cc, args)
	if err != nil {
		return err
	}
	for i, e := range exprs {
		net, records := synth.Synthesize(e,
			synth.WithNamePrefix(cfg.Prefix),
			synth.WithStartIndex(cfg.Start),
			synth.WithMaxRectangles(cfg.Cap),
			synth.WithMaxSteps(cfg.Steps))
		for _, r := range records {
			switch r.Kind {
			case synth.RecordCapped:
				log.Warnf("node %s: rectangle enumeration capped at %d", r.Node, cfg.Cap)
			case synth.RecordSkipped:
				log.Warnf("node %s: skipped unrealized %dx%d rectangle", r.Node, r.Rows, r.Cols)
			}
		}
		if err := synth.Validate(net); err != nil {
			return fmt.Errorf("invalid network: %w", err)
		}
		if !synth.Expand(net).Equal(e) {
			return fmt.Errorf("internal error: network does not expand to its input")
		}
		if i > 0 {
			fmt.Fprintln(cc.Out)
		}
		if err := encode.Network(net, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
		if cfg.Verbose {
			printHistory(cc, records)
		}
	}
	return nil
}

func printHistory(cc *cli.Context, records []synth.Record) {
	for _, r := range records {
		switch r.Kind {
		case synth.RecordRectangle, synth.RecordSingleRow:
			fmt.Fprintf(cc.Out, "# %s: %s %s profit=%d rows=%d cols=%d covered=%d\n",
				r.Node, r.Kind, r.Name, r.Profit, r.Rows, r.Cols, r.Covered)
		case synth.RecordCapped:
			fmt.Fprintf(cc.Out, "# %s: %s\n", r.Node, r.Kind)
		case synth.RecordSkipped:
			fmt.Fprintf(cc.Out, "# %s: %s rows=%d cols=%d\n", r.Node, r.Kind, r.Rows, r.Cols)
		}
	}
}
