package libdiff

import (
	"encoding/json"
	"fmt"
	"hash/fnv"

	"github.com/signadot/svdpatch/ir"
	"github.com/signadot/svdpatch/svd"

	jsonpatch "github.com/evanphx/json-patch"
)

// Summary maps each peripheral name to the fields patching touches.
// Registers are represented by a fingerprint of their XML.
func Summary(dev *svd.Device) *ir.Node {
	kvs := make([]ir.KeyVal, 0, len(dev.Peripherals))
	for _, p := range dev.Peripherals {
		irqs := make([]*ir.Node, len(p.Interrupts))
		for i, in := range p.Interrupts {
			irqs[i] = ir.FromKeyVals([]ir.KeyVal{
				{Key: ir.FromString("name"), Val: ir.FromString(in.Name)},
				{Key: ir.FromString("value"), Val: ir.FromInt(in.Value)},
			})
		}
		kvs = append(kvs, ir.KeyVal{
			Key: ir.FromString(p.Name),
			Val: ir.FromKeyVals([]ir.KeyVal{
				{Key: ir.FromString("baseAddress"), Val: ir.FromString(svd.FormatAddress(p.BaseAddress))},
				{Key: ir.FromString("interrupts"), Val: ir.FromSlice(irqs)},
				{Key: ir.FromString("registers"), Val: ir.FromString(Fingerprint(p.Registers))},
			}),
		})
	}
	return ir.FromKeyVals(kvs)
}

func Fingerprint(el *svd.Element) string {
	if el == nil {
		return ""
	}
	h := fnv.New64a()
	h.Write(el.Inner)
	return fmt.Sprintf("%016x", h.Sum64())
}

// MergePatch returns the RFC 7386 merge patch taking the summary of
// before to the summary of after.
func MergePatch(before, after *svd.Device) ([]byte, error) {
	a, err := json.Marshal(ir.ToAny(Summary(before)))
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(ir.ToAny(Summary(after)))
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(a, b)
}
