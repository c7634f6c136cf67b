package encode

import "github.com/factorlab/sopfactor/format"

type encOpts struct {
	format   format.Format
	colors   *Colors
	vertical bool
}

type EncodeOption func(*encOpts)

// EncodeFormat selects the output format; the default is text.
func EncodeFormat(f format.Format) EncodeOption {
	return func(o *encOpts) { o.format = f }
}

// EncodeColors enables ANSI colors in text output.
func EncodeColors(c *Colors) EncodeOption {
	return func(o *encOpts) { o.colors = c }
}

// EncodeVertical renders expressions one cube per line.
func EncodeVertical(v bool) EncodeOption {
	return func(o *encOpts) { o.vertical = v }
}

func newEncOpts(opts []EncodeOption) *encOpts {
	es := &encOpts{}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func (es *encOpts) color(attr ColorAttr, s string) string {
	if es.colors == nil {
		return s
	}
	f, ok := es.colors.Map[attr]
	if !ok {
		f = es.colors.Default
	}
	return f("%s", s)
}
