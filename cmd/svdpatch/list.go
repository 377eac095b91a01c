package main

import (
	"fmt"
	"strings"

	"github.com/signadot/svdpatch/query"
	"github.com/signadot/svdpatch/svd"

	"github.com/scott-cotton/cli"
)

func listCmd(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: list requires 1 argument, a device file", cli.ErrUsage)
	}
	var f *query.Filter
	if cfg.Where != "" {
		f, err = query.Compile(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	dev, err := svd.ReadFile(args[0])
	if err != nil {
		return err
	}
	ps, err := query.Select(dev, f)
	if err != nil {
		return err
	}
	for _, p := range ps {
		fmt.Fprintln(cc.Out, listLine(p))
	}
	return nil
}

func listLine(p *svd.Peripheral) string {
	irqs := make([]string, len(p.Interrupts))
	for i, in := range p.Interrupts {
		irqs[i] = fmt.Sprintf("%s=%d", in.Name, in.Value)
	}
	return fmt.Sprintf("%-16s %s %s", p.Name, svd.FormatAddress(p.BaseAddress), strings.Join(irqs, ","))
}
