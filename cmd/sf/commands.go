package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/factorlab/sopfactor/synth"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text/t, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "sf").
		WithSynopsis("sf [opts] command [opts]").
		WithDescription("sf factors sum-of-products Boolean expressions into multi-level networks.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sfMain(cfg, cc, args)
		}).
		WithSubs(
			SynthCommand(cfg),
			KernelsCommand(cfg),
			MatrixCommand(cfg),
			ViewCommand(cfg),
			EvalCommand(cfg),
			DiffCommand(cfg))
}

func sfMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.T, cfg.J, cfg.Y) > 1 {
		return fmt.Errorf("%w: must specify at most one of -t[ext] -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}

func SynthCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SynthConfig{
		MainConfig: mainCfg,
		Prefix:     "t",
		Start:      1,
		Cap:        synth.DefaultMaxRectangles,
	}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Synth, "synth").
		WithAliases("s", "sy").
		WithSynopsis("synth [opts] [expr|files]").
		WithDescription("Factor expressions into multi-level networks").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return synthRun(cfg, cc, args)
		})
}

func KernelsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &KernelsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Kernels, "kernels").
		WithAliases("k", "ker").
		WithSynopsis("kernels [expr|files]").
		WithDescription("List kernel / co-kernel pairs of expressions").
		WithRun(func(cc *cli.Context, args []string) error {
			return kernelsRun(cfg, cc, args)
		})
}

func MatrixCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MatrixConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Matrix, "matrix").
		WithAliases("m", "mat").
		WithSynopsis("matrix [expr|files]").
		WithDescription("Print the co-kernel / kernel-cube matrix of expressions").
		WithRun(func(cc *cli.Context, args []string) error {
			return matrixRun(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [expr|files]").
		WithDescription("Parse and reprint expressions in canonical form").
		WithRun(func(cc *cli.Context, args []string) error {
			return viewRun(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg, Env: map[string]bool{}}
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e", "ev").
		WithSynopsis("eval -e lit=bool [-e lit2=bool]... [expr|files]").
		WithDescription("Evaluate expressions under a truth assignment").
		WithOpts(&cli.Opt{
			Name: "e",
			Type: cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(lit=bool)"),
		}).
		WithRun(func(cc *cli.Context, args []string) error {
			return evalRun(cfg, cc, args)
		})
}

func envOptTypeFunc(env map[string]bool) func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		name, val, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("%w: -e wants lit=bool, got %q", cli.ErrUsage, a)
		}
		b, err := strconv.ParseBool(val)
		if err != nil {
			return nil, fmt.Errorf("%w: -e %s: %w", cli.ErrUsage, a, err)
		}
		env[name] = b
		return 0, nil
	}
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff <file1> <file2>").
		WithDescription("Diff the synthesized networks of two expressions").
		WithRun(func(cc *cli.Context, args []string) error {
			return diffRun(cfg, cc, args)
		})
}
