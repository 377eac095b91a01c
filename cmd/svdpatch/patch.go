package main

import (
	"fmt"
	"io"

	"github.com/signadot/svdpatch/patch"
	"github.com/signadot/svdpatch/svd"

	"github.com/scott-cotton/cli"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: patch requires 1 argument, a patch file", cli.ErrUsage)
	}
	t, err := openTarget(args[0], cfg.SVD)
	if err != nil {
		return err
	}
	var opts []patch.Option
	if cfg.Verbose {
		opts = append(opts, patch.WithLogger(theLog))
	}
	p := t.patcher(opts...)
	if err := p.ProcessDevice(); err != nil {
		return fmt.Errorf("error patching %s: %w", t.svdPath, err)
	}
	if cfg.DryRun {
		return writeChanges(cc.Out, p.Changes())
	}
	out := cfg.Out
	if out == "" {
		out = t.svdPath + ".patched"
	}
	if out == "-" {
		return svd.Write(cc.Out, t.dev)
	}
	if err := svd.WriteFile(out, t.dev); err != nil {
		return err
	}
	if cfg.Verbose {
		theLog.Info("wrote", "path", out)
	}
	return nil
}

func writeChanges(w io.Writer, changes []patch.Change) error {
	for _, c := range changes {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return err
		}
	}
	return nil
}
