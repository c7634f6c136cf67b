package synth

// DefaultMaxRectangles bounds rectangle enumeration per iteration.
const DefaultMaxRectangles = 10000

type options struct {
	prefix   string
	start    int
	maxRects int
	maxSteps int
}

type Option func(*options)

// WithNamePrefix sets the prefix of generated definition names. The
// default is "t".
func WithNamePrefix(p string) Option {
	return func(o *options) { o.prefix = p }
}

// WithStartIndex sets the first index tried for generated names. The
// default is 1.
func WithStartIndex(i int) Option {
	return func(o *options) { o.start = i }
}

// WithMaxRectangles caps the number of rectangles enumerated per
// iteration; 0 removes the cap. When the cap is hit the driver proceeds
// with the best rectangle found so far and logs a history record.
func WithMaxRectangles(n int) Option {
	return func(o *options) { o.maxRects = n }
}

// WithMaxSteps caps the number of extraction steps applied to a single
// node; 0 (the default) leaves the fixed-point iteration unbounded.
func WithMaxSteps(n int) Option {
	return func(o *options) { o.maxSteps = n }
}

func newOptions(opts []Option) *options {
	o := &options{
		prefix:   "t",
		start:    1,
		maxRects: DefaultMaxRectangles,
	}
	for _, f := range opts {
		f(o)
	}
	return o
}
