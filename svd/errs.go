package svd

import "errors"

var (
	ErrBadDevice = errors.New("bad device description")
)
