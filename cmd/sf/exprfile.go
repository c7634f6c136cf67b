package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/factorlab/sopfactor/ir"
	"github.com/factorlab/sopfactor/parse"
)

// getExprs resolves command arguments to expressions. Each argument is
// a file path if one exists (or "-" for stdin), otherwise it is parsed
// as SOP text itself. With no arguments, stdin is read.
func getExprs(cc *cli.Context, args []string) ([]ir.Expr, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	var out []ir.Expr
	for _, arg := range args {
		e, err := getExpr(cc, arg)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func getExpr(cc *cli.Context, arg string) (ir.Expr, error) {
	if arg == "-" {
		d, err := io.ReadAll(cc.In)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return parse.Parse(d)
	}
	if _, err := os.Stat(arg); err == nil {
		d, err := os.ReadFile(arg)
		if err != nil {
			return nil, fmt.Errorf("could not read %q: %w", arg, err)
		}
		return parse.Parse(d)
	}
	return parse.Parse([]byte(arg))
}
