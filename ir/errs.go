package ir

import "errors"

// ErrParse is wrapped by every parse failure.
var ErrParse = errors.New("parse error")
