package patch

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/signadot/svdpatch/debug"
	"github.com/signadot/svdpatch/svd"
)

// Patcher applies one set of commands to one device. The device is
// modified in place.
type Patcher struct {
	Device   *svd.Device
	Commands *Commands

	loader  Loader
	log     *slog.Logger
	changes []Change
}

type Option func(*Patcher)

// WithLoader sets how external source references are loaded. The default
// reads files relative to the working directory.
func WithLoader(l Loader) Option {
	return func(p *Patcher) { p.loader = l }
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Patcher) { p.log = l }
}

func New(dev *svd.Device, cmds *Commands, opts ...Option) *Patcher {
	p := &Patcher{
		Device:   dev,
		Commands: cmds,
		loader:   FileLoader{},
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ProcessDevice deletes and then copies peripherals. Copies therefore
// never see a peripheral deleted by the same run. A failing copy stops
// the run and leaves earlier changes in place.
func (p *Patcher) ProcessDevice() error {
	p.DeletePeripherals()
	return p.CopyPeripherals()
}

// DeletePeripherals removes every peripheral named in the delete
// commands. Names which are not present are ignored.
func (p *Patcher) DeletePeripherals() {
	del := make(map[string]bool, len(p.Commands.Delete))
	for _, name := range p.Commands.Delete {
		del[name] = true
	}
	p.Device.Peripherals = slices.DeleteFunc(p.Device.Peripherals, func(per *svd.Peripheral) bool {
		if !del[per.Name] {
			return false
		}
		p.log.Info("deleted peripheral", "name", per.Name)
		p.changes = append(p.changes, Change{Kind: Deleted, Name: per.Name})
		return true
	})
}

func (p *Patcher) CopyPeripherals() error {
	for _, c := range p.Commands.Copy {
		if err := p.copyPeripheral(c); err != nil {
			return &CopyError{Dest: c.Dest, From: c.From, Err: err}
		}
	}
	return nil
}

func (p *Patcher) copyPeripheral(c Copy) error {
	ref, err := ParseSourceRef(c.From)
	if err != nil {
		return err
	}
	src, err := p.resolve(ref)
	if err != nil {
		return err
	}
	existing := findPeripheral(p.Device, c.Dest)
	merged := MergePeripheral(src, c.Dest, existing)
	if existing != nil {
		p.Device.Peripherals = slices.DeleteFunc(p.Device.Peripherals, func(per *svd.Peripheral) bool {
			return per.Name == c.Dest
		})
	}
	p.Device.Peripherals = append(p.Device.Peripherals, merged)
	if debug.Patch() {
		debug.Logf("copy %s <- %s: base %s, %d interrupts\n", c.Dest, ref, svd.FormatAddress(merged.BaseAddress), len(merged.Interrupts))
	}
	p.log.Info("copied peripheral", "dest", c.Dest, "from", ref.String(), "replaced", existing != nil)
	p.changes = append(p.changes, Change{Kind: Copied, Name: c.Dest, From: ref.String(), Replaced: existing != nil})
	return nil
}

// resolve finds the peripheral ref names. Only a peripheral of a loaded
// external device escapes this call; the device itself is dropped.
func (p *Patcher) resolve(ref SourceRef) (*svd.Peripheral, error) {
	dev := p.Device
	if ref.External {
		ext, err := p.loader.Load(ref.File)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrLoad, ref.File, err)
		}
		dev = ext
	}
	src := findPeripheral(dev, ref.Peripheral)
	if src == nil {
		if ref.External {
			return nil, fmt.Errorf("%w: %s in %s", ErrPeripheralNotFound, ref.Peripheral, ref.File)
		}
		return nil, fmt.Errorf("%w: %s", ErrPeripheralNotFound, ref.Peripheral)
	}
	return src, nil
}

// Changes lists what the run has done so far, in order.
func (p *Patcher) Changes() []Change {
	return slices.Clone(p.changes)
}

// findPeripheral returns the peripheral named name if exactly one has
// that name.
func findPeripheral(dev *svd.Device, name string) *svd.Peripheral {
	var res *svd.Peripheral
	for _, per := range dev.Peripherals {
		if per.Name != name {
			continue
		}
		if res != nil {
			return nil
		}
		res = per
	}
	return res
}
