package patch

import (
	"fmt"
	"slices"

	"github.com/signadot/svdpatch/ir"
)

// Commands is the peripheral level part of a patch file.
type Commands struct {
	// Delete names peripherals to remove; each name appears once.
	Delete []string
	// Copy is applied in order.
	Copy []Copy
}

type Copy struct {
	Dest string
	// From is a source reference, "PERIPH" or "file.svd:PERIPH".
	From string
}

var (
	deleteKeys = []string{"delete", "_delete"}
	copyKeys   = []string{"copy", "_copy"}
)

// ParseCommands reads the commands from a parsed patch file. Keys it does
// not know are ignored; a copy entry which is not a mapping with a string
// from field is an error.
func ParseCommands(doc *ir.Node) (*Commands, error) {
	res := &Commands{}
	if doc.Absent() {
		return res, nil
	}
	root, err := doc.AsObject()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	for _, key := range deleteKeys {
		for name := range root.Strings(key) {
			if slices.Contains(res.Delete, name) {
				continue
			}
			res.Delete = append(res.Delete, name)
		}
	}
	for _, key := range copyKeys {
		for k, v := range root.Entries(key) {
			dest, err := k.AsString()
			if err != nil {
				return nil, fmt.Errorf("%w: copy destination: %w", ErrConfig, err)
			}
			if _, err := v.AsObject(); err != nil {
				return nil, fmt.Errorf("%w: copy %s: %w", ErrConfig, dest, err)
			}
			from, ok := v.GetString("from")
			if !ok {
				return nil, fmt.Errorf("%w: copy %s: %s needs a string field from", ErrConfig, dest, v.Path())
			}
			res.Copy = append(res.Copy, Copy{Dest: dest, From: from})
		}
	}
	return res, nil
}

// ToIR renders c in patch file form.
func (c *Commands) ToIR() *ir.Node {
	dels := make([]*ir.Node, len(c.Delete))
	for i, name := range c.Delete {
		dels[i] = ir.FromString(name)
	}
	copies := make([]ir.KeyVal, len(c.Copy))
	for i, cp := range c.Copy {
		copies[i] = ir.KeyVal{
			Key: ir.FromString(cp.Dest),
			Val: ir.FromKeyVals([]ir.KeyVal{{Key: ir.FromString("from"), Val: ir.FromString(cp.From)}}),
		}
	}
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("_delete"), Val: ir.FromSlice(dels)},
		{Key: ir.FromString("_copy"), Val: ir.FromKeyVals(copies)},
	})
}
