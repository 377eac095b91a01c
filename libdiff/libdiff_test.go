package libdiff

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"testing"

	"github.com/signadot/svdpatch/ir"
	"github.com/signadot/svdpatch/svd"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/google/go-cmp/cmp"
)

func TestLines(t *testing.T) {
	from := "a\nb\nc\nd\ne\nf\ng\n"
	to := "a\nb\nc\nD\ne\nf\ng\n"
	diffs := Lines(from, to)
	if !Changed(diffs) {
		t.Fatal("no change detected")
	}
	if Changed(Lines(from, from)) {
		t.Error("identical texts reported as changed")
	}
	buf := bytes.NewBuffer(nil)
	if err := WriteLines(buf, diffs, 1, false); err != nil {
		t.Fatal(err)
	}
	want := "@@ 2 unchanged lines @@\n c\n-d\n+D\n e\n@@ 2 unchanged lines @@\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}
}

func regs(s string) *svd.Element {
	return &svd.Element{XMLName: xml.Name{Local: "registers"}, Inner: []byte(s)}
}

func TestMergePatch(t *testing.T) {
	before := &svd.Device{Peripherals: []*svd.Peripheral{
		{Name: "A", BaseAddress: 0x10, Registers: regs("r1")},
		{Name: "B", BaseAddress: 0x20, Registers: regs("r2"), Interrupts: []svd.Interrupt{{Name: "B", Value: 3}}},
	}}
	after := &svd.Device{Peripherals: []*svd.Peripheral{
		{Name: "A", BaseAddress: 0x10, Registers: regs("r2")},
		{Name: "C", BaseAddress: 0x30, Registers: regs("r2")},
	}}
	patch, err := MergePatch(before, after)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal(patch, &got); err != nil {
		t.Fatal(err)
	}
	if v, ok := got["B"]; !ok || v != nil {
		t.Errorf("B should be removed: %s", patch)
	}
	if _, ok := got["C"]; !ok {
		t.Errorf("C should be added: %s", patch)
	}
	a, ok := got["A"].(map[string]any)
	if !ok || a["registers"] != Fingerprint(regs("r2")) {
		t.Errorf("A registers change missing: %s", patch)
	}
	if _, ok := a["baseAddress"]; ok {
		t.Errorf("unchanged base address in patch: %s", patch)
	}

	// applying the patch to the before summary gives the after summary
	bj, _ := json.Marshal(ir.ToAny(Summary(before)))
	aj, _ := json.Marshal(ir.ToAny(Summary(after)))
	applied, err := jsonpatch.MergePatch(bj, patch)
	if err != nil {
		t.Fatal(err)
	}
	var x, y any
	json.Unmarshal(applied, &x)
	json.Unmarshal(aj, &y)
	if diff := cmp.Diff(y, x); diff != "" {
		t.Errorf("applied patch (-want +got):\n%s", diff)
	}
}

func TestFingerprint(t *testing.T) {
	if Fingerprint(nil) != "" {
		t.Error("nil fingerprint")
	}
	if Fingerprint(regs("a")) == Fingerprint(regs("b")) {
		t.Error("fingerprints collide")
	}
	if Fingerprint(regs("a")) != Fingerprint(regs("a")) {
		t.Error("fingerprint not stable")
	}
}
