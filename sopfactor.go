// Package sopfactor factors two-level sum-of-products Boolean
// expressions into multi-level networks of definitions, minimizing the
// total literal count by extracting common algebraic sub-expressions.
//
// The pipeline lives in the subpackages: parse turns SOP text into the
// ir representation, kernel enumerates kernel/co-kernel pairs, matrix
// and rect locate profitable rectangles, synth drives extraction to a
// fixed point, and encode prints the resulting network. This package
// ties them together for the one-call case.
package sopfactor

import (
	"github.com/factorlab/sopfactor/ir"
	"github.com/factorlab/sopfactor/parse"
	"github.com/factorlab/sopfactor/synth"
)

// Synthesize parses src as an SOP expression and factors it.
func Synthesize(src string, opts ...synth.Option) (*ir.Network, []synth.Record, error) {
	F, err := parse.Parse([]byte(src))
	if err != nil {
		return nil, nil, err
	}
	net, records := synth.Synthesize(F, opts...)
	return net, records, nil
}
