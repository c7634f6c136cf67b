package parse

type parseOpts struct {
	sep rune
}

type ParseOption func(*parseOpts)

// ParseSep sets the product separator used between literals in a term.
// The default is '*'.
func ParseSep(r rune) ParseOption {
	return func(o *parseOpts) { o.sep = r }
}
