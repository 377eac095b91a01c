package query

import (
	"encoding/xml"
	"testing"

	"github.com/signadot/svdpatch/svd"

	"github.com/google/go-cmp/cmp"
)

func testDevice() *svd.Device {
	group := func(g string) []svd.Element {
		return []svd.Element{{XMLName: xml.Name{Local: "groupName"}, Inner: []byte(g)}}
	}
	return &svd.Device{Peripherals: []*svd.Peripheral{
		{Name: "TIM1", BaseAddress: 0x40012C00, Interrupts: []svd.Interrupt{{Value: 13}}, Extra: group("TIM")},
		{Name: "TIM2", BaseAddress: 0x40000000, Interrupts: []svd.Interrupt{{Value: 15}}, Extra: group("TIM")},
		{Name: "DAC1", BaseAddress: 0x40007400, Interrupts: []svd.Interrupt{{Value: 17}}, Extra: group("DAC")},
		{Name: "GPIOA", BaseAddress: 0x48000000, Attrs: []xml.Attr{{Name: xml.Name{Local: "derivedFrom"}, Value: "GPIOB"}}},
	}}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		expr string
		want []string
	}{
		{`name startsWith "TIM"`, []string{"TIM1", "TIM2"}},
		{`baseAddress >= 0x4800_0000`, []string{"GPIOA"}},
		{`17 in interrupts`, []string{"DAC1"}},
		{`groupName == "TIM" && baseAddress > 0x40000000`, []string{"TIM1"}},
		{`derivedFrom != ""`, []string{"GPIOA"}},
		{`hex(baseAddress) endsWith "7400"`, []string{"DAC1"}},
		{`len(interrupts) == 0`, []string{"GPIOA"}},
	}
	dev := testDevice()
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			f, err := Compile(tt.expr)
			if err != nil {
				t.Fatal(err)
			}
			ps, err := Select(dev, f)
			if err != nil {
				t.Fatal(err)
			}
			var got []string
			for _, p := range ps {
				got = append(got, p.Name)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("selected (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSelectAll(t *testing.T) {
	dev := testDevice()
	ps, err := Select(dev, nil)
	if err != nil || len(ps) != len(dev.Peripherals) {
		t.Errorf("Select(nil) = %d, %v", len(ps), err)
	}
}

func TestCompileErrors(t *testing.T) {
	for _, src := range []string{`name +`, `name`, `nosuchfield == 1`} {
		if _, err := Compile(src); err == nil {
			t.Errorf("Compile(%q) should fail", src)
		}
	}
}
