package main

import (
	"bytes"
	"fmt"

	"github.com/signadot/svdpatch/libdiff"
	"github.com/signadot/svdpatch/svd"

	"github.com/scott-cotton/cli"
)

func diffCmd(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: diff requires 1 argument, a patch file", cli.ErrUsage)
	}
	t, err := openTarget(args[0], cfg.SVD)
	if err != nil {
		return err
	}
	before := t.dev.Clone()
	if err := t.patcher().ProcessDevice(); err != nil {
		return fmt.Errorf("error patching %s: %w", t.svdPath, err)
	}
	if cfg.JSON {
		mp, err := libdiff.MergePatch(before, t.dev)
		if err != nil {
			return fmt.Errorf("error computing merge patch: %w", err)
		}
		if string(mp) == "{}" {
			return nil
		}
		fmt.Fprintf(cc.Out, "%s\n", mp)
		return cli.ExitCodeErr(1)
	}
	from, err := render(before)
	if err != nil {
		return err
	}
	to, err := render(t.dev)
	if err != nil {
		return err
	}
	diffs := libdiff.Lines(from, to)
	if !libdiff.Changed(diffs) {
		return nil
	}
	if err := libdiff.WriteLines(cc.Out, diffs, cfg.Context, cfg.colors(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func render(dev *svd.Device) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := svd.Write(buf, dev); err != nil {
		return "", err
	}
	return buf.String(), nil
}
