package patch

import (
	"errors"
	"fmt"
)

var (
	ErrConfig             = errors.New("bad patch configuration")
	ErrMalformedRef       = errors.New("malformed source reference")
	ErrPeripheralNotFound = errors.New("peripheral not found")
	ErrLoad               = errors.New("could not load device")
)

// CopyError reports the copy command which stopped a patch run.
type CopyError struct {
	Dest string
	From string
	Err  error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("copy %s from %q: %v", e.Dest, e.From, e.Err)
}

func (e *CopyError) Unwrap() error {
	return e.Err
}
