package synth

import "github.com/factorlab/sopfactor/ir"

// RecordKind classifies history entries.
type RecordKind int

const (
	// RecordRectangle and RecordSingleRow log accepted extractions.
	RecordRectangle RecordKind = iota
	RecordSingleRow
	// RecordCapped logs a truncated rectangle enumeration.
	RecordCapped
	// RecordSkipped logs a selected rectangle that was not realized in
	// the expression and had to be passed over.
	RecordSkipped
)

func (k RecordKind) String() string {
	s, ok := map[RecordKind]string{
		RecordRectangle: "rectangle",
		RecordSingleRow: "single-row",
		RecordCapped:    "enumeration-capped",
		RecordSkipped:   "rectangle-skipped",
	}[k]
	if ok {
		return s
	}
	return "<unknown record kind>"
}

// Record is one history entry of a synthesis run.
type Record struct {
	Kind RecordKind

	// Node is the expression being factored: "F" for the root, or the
	// name of a definition.
	Node ir.Literal

	// Name is the definition created by an extraction entry.
	Name ir.Literal

	Profit int
	Rows   int
	Cols   int

	// Covered is the number of cubes removed from the node.
	Covered int
	// DefCubes is the number of cubes in the new definition body.
	DefCubes int
}
