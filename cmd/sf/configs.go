package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/factorlab/sopfactor/encode"
	"github.com/factorlab/sopfactor/format"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	T bool `cli:"name=t aliases=text desc='output in text'"`
	J bool `cli:"name=j aliases=json desc='output in json'"`
	Y bool `cli:"name=y aliases=yaml desc='output in yaml'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encFormat() format.Format {
	var fmat format.Format
	switch {
	case cfg.T:
		fmat = format.TextFormat
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.encFormat()),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if cfg.encFormat() == format.TextFormat && isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor reports whether plain (non-encode) output should be colored.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

type SynthConfig struct {
	*MainConfig

	Prefix  string `cli:"name=p desc='definition name prefix'"`
	Start   int    `cli:"name=n desc='first definition index'"`
	Cap     int    `cli:"name=cap desc='rectangle enumeration cap (0 for none)'"`
	Steps   int    `cli:"name=steps desc='max extraction steps per node (0 for no limit)'"`
	Verbose bool   `cli:"name=v desc='print the extraction history'"`

	Synth *cli.Command
}

type KernelsConfig struct {
	*MainConfig

	Kernels *cli.Command
}

type MatrixConfig struct {
	*MainConfig

	Matrix *cli.Command
}

type ViewConfig struct {
	*MainConfig

	Vertical bool `cli:"name=l desc='one cube per line'"`
	View     *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env map[string]bool

	Eval *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
