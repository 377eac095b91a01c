package patch

import (
	"fmt"
	"strings"
)

// SourceRef names the peripheral a copy takes its content from, either
// in the device being patched or in another description file.
type SourceRef struct {
	External   bool
	File       string
	Peripheral string
}

func ParseSourceRef(s string) (SourceRef, error) {
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		return SourceRef{Peripheral: parts[0]}, nil
	case 2:
		return SourceRef{External: true, File: parts[0], Peripheral: parts[1]}, nil
	default:
		return SourceRef{}, fmt.Errorf("%w: %q has more than one ':'", ErrMalformedRef, s)
	}
}

func (r SourceRef) String() string {
	if r.External {
		return r.File + ":" + r.Peripheral
	}
	return r.Peripheral
}
