package synth

import "errors"

// ErrRectangleNotRealized reports a selected rectangle whose expanded
// cubes are not all present in the expression being rewritten. It
// signals an inconsistency between kernel extraction and the matrix;
// the driver skips such rectangles and moves to the next candidate.
var ErrRectangleNotRealized = errors.New("rectangle not realized in expression")
