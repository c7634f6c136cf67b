package encode

import (
	"github.com/factorlab/sopfactor/ir"
	"github.com/factorlab/sopfactor/kernel"
	"github.com/factorlab/sopfactor/matrix"
)

// Wire shapes for the JSON and YAML formats. A standalone expression
// travels as its printed text plus the cube list; networks, kernel pairs
// and matrix labels carry printed text only.

type exprWire struct {
	Expr  string   `json:"expr" yaml:"expr"`
	Cubes []string `json:"cubes" yaml:"cubes"`
}

type defWire struct {
	Name string `json:"name" yaml:"name"`
	Expr string `json:"expr" yaml:"expr"`
}

type netWire struct {
	Root string    `json:"root" yaml:"root"`
	Defs []defWire `json:"defs" yaml:"defs"`
}

type pairWire struct {
	Co     string `json:"co" yaml:"co"`
	Kernel string `json:"kernel" yaml:"kernel"`
}

type matrixWire struct {
	Rows []string `json:"rows" yaml:"rows"`
	Cols []string `json:"cols" yaml:"cols"`
	Ones [][]int  `json:"ones" yaml:"ones"`
}

func wireExpr(e ir.Expr) exprWire {
	w := exprWire{Expr: e.String()}
	for _, c := range e {
		w.Cubes = append(w.Cubes, c.String())
	}
	return w
}

func wireNet(net *ir.Network) netWire {
	w := netWire{Root: net.Root.String(), Defs: []defWire{}}
	for _, d := range net.Defs {
		w.Defs = append(w.Defs, defWire{Name: string(d.Name), Expr: d.Body.String()})
	}
	return w
}

func wireKernels(pairs []kernel.Pair) []pairWire {
	out := make([]pairWire, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, pairWire{Co: p.Co.String(), Kernel: p.Kernel.String()})
	}
	return out
}

func wireMatrix(m *matrix.Matrix) matrixWire {
	w := matrixWire{}
	for _, co := range m.Rows {
		w.Rows = append(w.Rows, co.String())
	}
	for _, c := range m.Cols {
		w.Cols = append(w.Cols, c.String())
	}
	for i := 0; i < m.NumRows(); i++ {
		for j := 0; j < m.NumCols(); j++ {
			if m.Has(i, j) {
				w.Ones = append(w.Ones, []int{i, j})
			}
		}
	}
	return w
}
