package ir

import (
	"errors"
	"fmt"
)

var (
	ErrNotObject = errors.New("value is not a mapping")
	ErrNotArray  = errors.New("value is not a sequence")
	ErrNotString = errors.New("value is not a string")
	ErrNotInt    = errors.New("value is not an integer")

	ErrUnsupported = errors.New("unsupported value")
)

func mismatch(want error, y *Node) error {
	if y == nil {
		return fmt.Errorf("%w (absent)", want)
	}
	return fmt.Errorf("%w (got %s at %s)", want, y.Type, y.Path())
}
