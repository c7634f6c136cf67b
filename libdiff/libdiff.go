// Package libdiff computes textual diffs between printed networks.
package libdiff

import (
	"bytes"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/factorlab/sopfactor/encode"
	"github.com/factorlab/sopfactor/ir"
)

// Networks diffs the printed forms of two networks.
func Networks(from, to *ir.Network) []diffpatch.Diff {
	return Strings(netString(from), netString(to))
}

// Strings diffs two printed forms.
func Strings(from, to string) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, true)
	return diffCfg.DiffCleanupSemantic(diffs)
}

// Render renders diffs for terminal output: colored in-place
// replacements when color is on, "[-...-]"/"{+...+}" markers otherwise.
func Render(diffs []diffpatch.Diff, color bool) string {
	if color {
		return diffpatch.New().DiffPrettyText(diffs)
	}
	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			sb.WriteString("[-")
			sb.WriteString(d.Text)
			sb.WriteString("-]")
		case diffpatch.DiffInsert:
			sb.WriteString("{+")
			sb.WriteString(d.Text)
			sb.WriteString("+}")
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}

func netString(net *ir.Network) string {
	var buf bytes.Buffer
	encode.Network(net, &buf)
	return buf.String()
}
