package patch

import (
	"encoding/xml"
	"sort"

	"github.com/signadot/svdpatch/svd"
)

func periph(name string, base uint64, regs string, irqs ...int64) *svd.Peripheral {
	p := &svd.Peripheral{
		Name:        name,
		BaseAddress: base,
		Registers: &svd.Element{
			XMLName: xml.Name{Local: "registers"},
			Inner:   []byte(regs),
		},
	}
	for _, v := range irqs {
		p.Interrupts = append(p.Interrupts, svd.Interrupt{Name: name + "_IRQ", Value: v})
	}
	return p
}

func device(ps ...*svd.Peripheral) *svd.Device {
	return &svd.Device{Peripherals: ps}
}

func names(dev *svd.Device) []string {
	res := make([]string, len(dev.Peripherals))
	for i, p := range dev.Peripherals {
		res[i] = p.Name
	}
	sort.Strings(res)
	return res
}

// mapLoader serves in-memory devices and counts loads.
type mapLoader struct {
	devs  map[string]*svd.Device
	loads []string
}

func (m *mapLoader) Load(path string) (*svd.Device, error) {
	m.loads = append(m.loads, path)
	dev, ok := m.devs[path]
	if !ok {
		return nil, errNoFile
	}
	return dev, nil
}
