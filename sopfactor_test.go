package sopfactor

import (
	"errors"
	"testing"

	"github.com/factorlab/sopfactor/ir"
	"github.com/factorlab/sopfactor/synth"
)

func TestSynthesize(t *testing.T) {
	net, records, err := Synthesize("ab + ac + ad")
	if err != nil {
		t.Fatal(err)
	}
	if got := net.Root.String(); got != "at1" {
		t.Errorf("root = %q, want %q", got, "at1")
	}
	if len(net.Defs) != 1 || net.Defs[0].Body.String() != "b + c + d" {
		t.Errorf("defs = %v", net.Defs)
	}
	if len(records) == 0 {
		t.Errorf("no history recorded")
	}
	if err := synth.Validate(net); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestSynthesizeParseError(t *testing.T) {
	_, _, err := Synthesize("a + + b")
	if !errors.Is(err, ir.ErrParse) {
		t.Fatalf("err = %v, want ErrParse", err)
	}
}
