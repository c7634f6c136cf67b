// Package encode renders expressions, networks, kernel listings and
// kernel matrices as text, JSON or YAML.
package encode

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/factorlab/sopfactor/format"
	"github.com/factorlab/sopfactor/ir"
	"github.com/factorlab/sopfactor/kernel"
	"github.com/factorlab/sopfactor/matrix"
)

// Expr writes e to w. The text form is the cubes in canonical order
// joined by " + " ("0" when empty), or one cube per line with
// EncodeVertical.
func Expr(e ir.Expr, w io.Writer, opts ...EncodeOption) error {
	es := newEncOpts(opts)
	switch es.format {
	case format.JSONFormat, format.YAMLFormat:
		return marshal(wireExpr(e), w, es)
	}
	if es.vertical {
		for _, c := range e {
			if _, err := fmt.Fprintf(w, "  %s\n", es.cube(c, nil)); err != nil {
				return err
			}
		}
		return nil
	}
	_, err := fmt.Fprintln(w, es.expr(e, nil))
	return err
}

// Network writes net to w: the root as "F = expr", then one
// "name = expr" line per definition in generation order.
func Network(net *ir.Network, w io.Writer, opts ...EncodeOption) error {
	es := newEncOpts(opts)
	switch es.format {
	case format.JSONFormat, format.YAMLFormat:
		return marshal(wireNet(net), w, es)
	}
	if err := es.defLine(w, "F", net.Root, net); err != nil {
		return err
	}
	for _, d := range net.Defs {
		if err := es.defLine(w, string(d.Name), d.Body, net); err != nil {
			return err
		}
	}
	return nil
}

// Kernels writes one line per (co-kernel, kernel) pair.
func Kernels(pairs []kernel.Pair, w io.Writer, opts ...EncodeOption) error {
	es := newEncOpts(opts)
	switch es.format {
	case format.JSONFormat, format.YAMLFormat:
		return marshal(wireKernels(pairs), w, es)
	}
	for _, p := range pairs {
		_, err := fmt.Fprintf(w, "%s  %s\n", es.cube(p.Co, nil), es.expr(p.Kernel, nil))
		if err != nil {
			return err
		}
	}
	return nil
}

// Matrix writes the kernel-cube matrix with co-kernel row labels and
// cube column headers.
func Matrix(m *matrix.Matrix, w io.Writer, opts ...EncodeOption) error {
	es := newEncOpts(opts)
	switch es.format {
	case format.JSONFormat, format.YAMLFormat:
		return marshal(wireMatrix(m), w, es)
	}
	labelW := 1
	for _, co := range m.Rows {
		if n := len(co.String()); n > labelW {
			labelW = n
		}
	}
	colW := make([]int, m.NumCols())
	header := fmt.Sprintf("%*s", labelW, "")
	for j, c := range m.Cols {
		s := c.String()
		colW[j] = len(s)
		header += "  " + es.color(headerColor, s)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for i, co := range m.Rows {
		line := fmt.Sprintf("%*s", labelW, es.color(headerColor, co.String()))
		for j := 0; j < m.NumCols(); j++ {
			bit := "0"
			if m.Has(i, j) {
				bit = "1"
			}
			line += fmt.Sprintf("  %*s", colW[j], bit)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func (es *encOpts) defLine(w io.Writer, name string, e ir.Expr, net *ir.Network) error {
	_, err := fmt.Fprintf(w, "%s %s %s\n",
		es.color(defNameColor, name), es.color(opColor, "="), es.expr(e, net))
	return err
}

// expr renders e, coloring definition names when net is given.
func (es *encOpts) expr(e ir.Expr, net *ir.Network) string {
	if len(e) == 0 {
		return "0"
	}
	s := ""
	for i, c := range e {
		if i > 0 {
			s += es.color(opColor, " + ")
		}
		s += es.cube(c, net)
	}
	return s
}

func (es *encOpts) cube(c ir.Cube, net *ir.Network) string {
	if len(c) == 0 {
		return "1"
	}
	s := ""
	for _, l := range c {
		if net != nil && net.IsDef(l) {
			s += es.color(defNameColor, string(l))
		} else {
			s += es.color(literalColor, string(l))
		}
	}
	return s
}

func marshal(v any, w io.Writer, es *encOpts) error {
	var (
		d   []byte
		err error
	)
	if es.format == format.JSONFormat {
		d, err = json.MarshalIndent(v, "", "  ")
		if err == nil {
			d = append(d, '\n')
		}
	} else {
		d, err = yaml.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", es.format, err)
	}
	_, err = w.Write(d)
	return err
}
