package patch

import (
	"errors"
	"strings"
	"testing"

	"github.com/signadot/svdpatch/svd"

	"github.com/google/go-cmp/cmp"
)

var errNoFile = errors.New("no such file")

func TestDeletePeripherals(t *testing.T) {
	dev := device(periph("A", 0, ""), periph("B", 0, ""), periph("C", 0, ""))
	p := New(dev, &Commands{Delete: []string{"A", "B", "Z"}})
	p.DeletePeripherals()
	if diff := cmp.Diff([]string{"C"}, names(dev)); diff != "" {
		t.Errorf("remaining (-want +got):\n%s", diff)
	}
	// idempotent
	p.DeletePeripherals()
	if diff := cmp.Diff([]string{"C"}, names(dev)); diff != "" {
		t.Errorf("second delete (-want +got):\n%s", diff)
	}
	if n := len(p.Changes()); n != 2 {
		t.Errorf("got %d changes, want 2", n)
	}
}

func TestCopyIntoExisting(t *testing.T) {
	dac1 := periph("DAC1", 0x100, "R1", 5)
	dac2 := periph("DAC2", 0x200, "R2", 6)
	dev := device(dac1, dac2, periph("TIM1", 0x300, "R3"))
	p := New(dev, &Commands{Copy: []Copy{{Dest: "DAC2", From: "DAC1"}}})
	if err := p.ProcessDevice(); err != nil {
		t.Fatal(err)
	}
	if len(dev.Peripherals) != 3 {
		t.Fatalf("got %d peripherals, want 3", len(dev.Peripherals))
	}
	got := dev.Peripheral("DAC2")
	if !got.Registers.Equal(dac1.Registers) {
		t.Errorf("DAC2 registers %q, want %q", got.Registers.Inner, dac1.Registers.Inner)
	}
	if got.BaseAddress != 0x200 {
		t.Errorf("DAC2 base %#x, want 0x200", got.BaseAddress)
	}
	if diff := cmp.Diff([]svd.Interrupt{{Name: "DAC2_IRQ", Value: 6}}, got.Interrupts); diff != "" {
		t.Errorf("DAC2 interrupts (-want +got):\n%s", diff)
	}
	// source untouched
	if dac1.Name != "DAC1" || dac1.BaseAddress != 0x100 || dac1.Interrupts[0].Value != 5 {
		t.Errorf("source modified: %+v", dac1)
	}
	want := []Change{{Kind: Copied, Name: "DAC2", From: "DAC1", Replaced: true}}
	if diff := cmp.Diff(want, p.Changes()); diff != "" {
		t.Errorf("changes (-want +got):\n%s", diff)
	}
}

func TestCopyIntoNew(t *testing.T) {
	dev := device(periph("DAC1", 0x100, "R1", 5))
	p := New(dev, &Commands{Copy: []Copy{{Dest: "DAC3", From: "DAC1"}}})
	if err := p.ProcessDevice(); err != nil {
		t.Fatal(err)
	}
	if len(dev.Peripherals) != 2 {
		t.Fatalf("got %d peripherals, want 2", len(dev.Peripherals))
	}
	got := dev.Peripheral("DAC3")
	if got == nil {
		t.Fatal("no DAC3")
	}
	if len(got.Interrupts) != 0 {
		t.Errorf("DAC3 interrupts %v, want none", got.Interrupts)
	}
	if got.BaseAddress != 0x100 {
		t.Errorf("DAC3 base %#x, want 0x100", got.BaseAddress)
	}
	if !got.Registers.Equal(dev.Peripheral("DAC1").Registers) {
		t.Error("DAC3 registers differ from DAC1")
	}
}

func TestCopyExternal(t *testing.T) {
	other := device(periph("ADC", 0x900, "EXT", 11), periph("COMP", 0xa00, "C"))
	ld := &mapLoader{devs: map[string]*svd.Device{"other.svd": other}}
	dev := device(periph("ADC", 0x400, "LOCAL", 12))
	p := New(dev, &Commands{Copy: []Copy{{Dest: "ADC", From: "other.svd:ADC"}}}, WithLoader(ld))
	if err := p.ProcessDevice(); err != nil {
		t.Fatal(err)
	}
	got := dev.Peripheral("ADC")
	if string(got.Registers.Inner) != "EXT" {
		t.Errorf("registers %q, want EXT", got.Registers.Inner)
	}
	if got.BaseAddress != 0x400 || got.Interrupts[0].Value != 12 {
		t.Errorf("binding not kept: %#x %v", got.BaseAddress, got.Interrupts)
	}
	if diff := cmp.Diff([]string{"other.svd"}, ld.loads); diff != "" {
		t.Errorf("loads (-want +got):\n%s", diff)
	}
	// the loaded device is not shared with the result
	got.Registers.Inner[0] = 'X'
	if string(other.Peripheral("ADC").Registers.Inner) != "EXT" {
		t.Error("result aliases the external device")
	}
}

func TestCopyErrors(t *testing.T) {
	tests := []struct {
		name  string
		from  string
		want  error
		loads int
	}{
		{"malformed", "a.svd:b.svd:ADC", ErrMalformedRef, 0},
		{"missing local", "NOPE", ErrPeripheralNotFound, 0},
		{"missing external", "other.svd:NOPE", ErrPeripheralNotFound, 1},
		{"load failure", "gone.svd:ADC", ErrLoad, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ld := &mapLoader{devs: map[string]*svd.Device{"other.svd": device(periph("ADC", 0, ""))}}
			dev := device(periph("ADC", 0, ""))
			p := New(dev, &Commands{Copy: []Copy{{Dest: "X", From: tt.from}}}, WithLoader(ld))
			err := p.ProcessDevice()
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
			var ce *CopyError
			if !errors.As(err, &ce) || ce.Dest != "X" || ce.From != tt.from {
				t.Errorf("error %v is not a CopyError for X", err)
			}
			if len(ld.loads) != tt.loads {
				t.Errorf("loader called %d times, want %d", len(ld.loads), tt.loads)
			}
			if tt.want == ErrLoad && !errors.Is(err, errNoFile) {
				t.Errorf("loader error not wrapped: %v", err)
			}
		})
	}
}

func TestNotFoundNamesPeripheral(t *testing.T) {
	ld := &mapLoader{devs: map[string]*svd.Device{"other.doc": device()}}
	p := New(device(), &Commands{Copy: []Copy{{Dest: "P", From: "other.doc:PERIPH"}}}, WithLoader(ld))
	err := p.ProcessDevice()
	if !errors.Is(err, ErrPeripheralNotFound) {
		t.Fatalf("got %v", err)
	}
	if msg := err.Error(); !strings.Contains(msg, "PERIPH") {
		t.Errorf("message %q does not name PERIPH", msg)
	}
}

func TestDuplicateSourceIsNotFound(t *testing.T) {
	dev := device(periph("A", 0, "1"), periph("A", 0, "2"))
	p := New(dev, &Commands{Copy: []Copy{{Dest: "B", From: "A"}}})
	if err := p.ProcessDevice(); !errors.Is(err, ErrPeripheralNotFound) {
		t.Errorf("got %v, want not found", err)
	}
}

func TestDeleteBeforeCopy(t *testing.T) {
	dev := device(periph("A", 0x10, "RA"), periph("B", 0x20, "RB", 3))
	p := New(dev, &Commands{
		Delete: []string{"A"},
		Copy:   []Copy{{Dest: "B", From: "A"}},
	})
	err := p.ProcessDevice()
	if !errors.Is(err, ErrPeripheralNotFound) {
		t.Fatalf("copy saw a deleted peripheral: %v", err)
	}
	if diff := cmp.Diff([]string{"B"}, names(dev)); diff != "" {
		t.Errorf("delete not applied (-want +got):\n%s", diff)
	}
}

func TestNoRollback(t *testing.T) {
	dev := device(periph("A", 0x10, "RA"))
	p := New(dev, &Commands{Copy: []Copy{
		{Dest: "B", From: "A"},
		{Dest: "C", From: "MISSING"},
		{Dest: "D", From: "A"},
	}})
	if err := p.ProcessDevice(); err == nil {
		t.Fatal("expected error")
	}
	if diff := cmp.Diff([]string{"A", "B"}, names(dev)); diff != "" {
		t.Errorf("peripherals (-want +got):\n%s", diff)
	}
}

func TestCopyOrder(t *testing.T) {
	dev := device(periph("A", 0x10, "RA", 1))
	p := New(dev, &Commands{Copy: []Copy{
		{Dest: "B", From: "A"},
		{Dest: "C", From: "B"},
	}})
	if err := p.ProcessDevice(); err != nil {
		t.Fatal(err)
	}
	c := dev.Peripheral("C")
	if c == nil || string(c.Registers.Inner) != "RA" || c.BaseAddress != 0x10 {
		t.Errorf("C = %+v", c)
	}
}
