package patch

import (
	"slices"

	"github.com/signadot/svdpatch/svd"
)

// MergePeripheral returns a copy of src named dest. If existing is the
// peripheral currently named dest, the result takes its base address and
// interrupts; otherwise the result keeps src's base address and has no
// interrupts. Neither src nor existing is modified.
func MergePeripheral(src *svd.Peripheral, dest string, existing *svd.Peripheral) *svd.Peripheral {
	res := src.Clone()
	res.Name = dest
	if existing == nil {
		res.Interrupts = nil
		return res
	}
	res.BaseAddress = existing.BaseAddress
	res.Interrupts = slices.Clone(existing.Interrupts)
	return res
}
