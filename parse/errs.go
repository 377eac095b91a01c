package parse

import (
	"errors"
)

var (
	ErrParse       = errors.New("parse error")
	ErrMultiDoc    = errors.New("expected a single document")
	ErrUnsupported = errors.New("unsupported yaml value")
)
