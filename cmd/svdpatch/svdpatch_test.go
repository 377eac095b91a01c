package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signadot/svdpatch/svd"

	"github.com/google/go-cmp/cmp"
	"github.com/scott-cotton/cli"
)

const devSVD = `<?xml version="1.0" encoding="utf-8"?>
<device>
  <name>DEV</name>
  <peripherals>
    <peripheral>
      <name>DAC1</name>
      <baseAddress>0x40007400</baseAddress>
      <interrupt>
        <name>DAC</name>
        <value>17</value>
      </interrupt>
    </peripheral>
    <peripheral>
      <name>DAC2</name>
      <baseAddress>0x40007800</baseAddress>
    </peripheral>
  </peripherals>
</device>
`

const otherSVD = `<?xml version="1.0" encoding="utf-8"?>
<device>
  <name>OTHER</name>
  <peripherals>
    <peripheral>
      <name>TIM1</name>
      <baseAddress>0x40012C00</baseAddress>
    </peripheral>
  </peripherals>
</device>
`

const patchYAML = `_svd: dev.svd
_delete:
- DAC2
_copy:
  TIM9:
    from: ext/other.svd:TIM1
  DAC1:
    from: TIM9
`

func writeTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"dev.svd":       devSVD,
		"ext/other.svd": otherSVD,
		"patch.yaml":    patchYAML,
	}
	for name, content := range files {
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestOpenTargetAndPatch(t *testing.T) {
	dir := writeTree(t)
	tgt, err := openTarget(filepath.Join(dir, "patch.yaml"), "")
	if err != nil {
		t.Fatal(err)
	}
	if tgt.svdPath != filepath.Join(dir, "dev.svd") {
		t.Errorf("svd path %q", tgt.svdPath)
	}
	p := tgt.patcher()
	if err := p.ProcessDevice(); err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := writeChanges(buf, p.Changes()); err != nil {
		t.Fatal(err)
	}
	wantChanges := "delete DAC2\ncopy TIM9 <- ext/other.svd:TIM1 (new)\ncopy DAC1 <- TIM9 (replaced)\n"
	if diff := cmp.Diff(wantChanges, buf.String()); diff != "" {
		t.Errorf("change log (-want +got):\n%s", diff)
	}
	var names []string
	for _, p := range tgt.dev.Peripherals {
		names = append(names, p.Name)
	}
	if diff := cmp.Diff([]string{"TIM9", "DAC1"}, names); diff != "" {
		t.Errorf("peripherals (-want +got):\n%s", diff)
	}
	dac1 := tgt.dev.Peripheral("DAC1")
	if dac1.BaseAddress != 0x40007400 {
		t.Errorf("DAC1 base address %s", svd.FormatAddress(dac1.BaseAddress))
	}
	if len(dac1.Interrupts) != 1 || dac1.Interrupts[0].Value != 17 {
		t.Errorf("DAC1 interrupts %v", dac1.Interrupts)
	}
}

func TestOpenTargetNoDevice(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "patch.yaml")
	if err := os.WriteFile(p, []byte("_delete: [A]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := openTarget(p, "")
	if !errors.Is(err, cli.ErrUsage) {
		t.Errorf("got %v, want usage error", err)
	}
}

func TestListLine(t *testing.T) {
	p := &svd.Peripheral{
		Name:        "DAC1",
		BaseAddress: 0x40007400,
		Interrupts:  []svd.Interrupt{{Name: "DAC", Value: 17}, {Name: "TIM6", Value: 18}},
	}
	got := strings.Fields(listLine(p))
	want := []string{"DAC1", "0x40007400", "DAC=17,TIM6=18"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("listLine (-want +got):\n%s", diff)
	}
}
