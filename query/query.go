// Package query filters peripherals with expr-lang expressions such as
//
//	baseAddress >= 0x4000_0000 && name startsWith "TIM"
//	17 in interrupts || groupName == "DAC"
//	hex(baseAddress) endsWith "400"
package query

import (
	"fmt"

	"github.com/signadot/svdpatch/svd"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env is what an expression sees of a peripheral.
type Env struct {
	Name        string  `expr:"name"`
	BaseAddress uint64  `expr:"baseAddress"`
	Interrupts  []int64 `expr:"interrupts"`
	GroupName   string  `expr:"groupName"`
	Description string  `expr:"description"`
	DerivedFrom string  `expr:"derivedFrom"`
}

func EnvOf(p *svd.Peripheral) Env {
	irqs := make([]int64, len(p.Interrupts))
	for i, in := range p.Interrupts {
		irqs[i] = in.Value
	}
	return Env{
		Name:        p.Name,
		BaseAddress: p.BaseAddress,
		Interrupts:  irqs,
		GroupName:   p.Child("groupName"),
		Description: p.Child("description"),
		DerivedFrom: p.Attr("derivedFrom"),
	}
}

type Filter struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Filter, error) {
	opts := append([]expr.Option{expr.Env(Env{}), expr.AsBool()}, exprOpts()...)
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not compile filter %q: %w", src, err)
	}
	return &Filter{src: src, prg: prg}, nil
}

func (f *Filter) String() string {
	return f.src
}

func (f *Filter) Match(p *svd.Peripheral) (bool, error) {
	out, err := expr.Run(f.prg, EnvOf(p))
	if err != nil {
		return false, fmt.Errorf("filter %q on %s: %w", f.src, p.Name, err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q gave %T, not bool", f.src, out)
	}
	return b, nil
}

// Select returns the peripherals of dev matching f, in order. A nil
// filter matches everything.
func Select(dev *svd.Device, f *Filter) ([]*svd.Peripheral, error) {
	if f == nil {
		return dev.Peripherals, nil
	}
	var res []*svd.Peripheral
	for _, p := range dev.Peripherals {
		ok, err := f.Match(p)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, p)
		}
	}
	return res, nil
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("hex", func(params ...any) (any, error) {
			switch x := params[0].(type) {
			case uint64:
				return svd.FormatAddress(x), nil
			case int:
				return svd.FormatAddress(uint64(x)), nil
			case int64:
				return svd.FormatAddress(uint64(x)), nil
			}
			return nil, fmt.Errorf("hex: unsupported argument %T", params[0])
		}),
	}
}
