// Package debug provides environment-gated tracing for the synthesis
// pipeline.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Kernels bool
	Rects   bool
	Synth   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Kernels = boolEnv("SOPFACTOR_DEBUG_KERNELS")
	d.Rects = boolEnv("SOPFACTOR_DEBUG_RECTS")
	d.Synth = boolEnv("SOPFACTOR_DEBUG_SYNTH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Kernels() bool {
	return d.Kernels
}
func Rects() bool {
	return d.Rects
}
func Synth() bool {
	return d.Synth
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
