package main

import (
	"fmt"

	"github.com/signadot/svdpatch/encode"
	"github.com/signadot/svdpatch/patch"

	"github.com/scott-cotton/cli"
)

func dumpCmd(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: dump requires 1 argument, a patch file", cli.ErrUsage)
	}
	format := encode.YAMLFormat
	if cfg.Format != "" {
		format, err = encode.ParseFormat(cfg.Format)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	f, err := patch.Open(args[0])
	if err != nil {
		return err
	}
	if err := encode.Encode(f.Commands.ToIR(), cc.Out, cfg.encOpts(cc.Out, format, cfg.Indent)...); err != nil {
		return fmt.Errorf("error encoding commands: %w", err)
	}
	return nil
}
