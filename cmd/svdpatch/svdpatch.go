package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/signadot/svdpatch/patch"
	"github.com/signadot/svdpatch/svd"

	"github.com/scott-cotton/cli"
)

func svdpatchMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Color && cfg.NoColor {
		return fmt.Errorf("%w: -color and -nocolor are exclusive", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// target is a patch file together with the device it applies to.
type target struct {
	file    *patch.File
	svdPath string
	dev     *svd.Device
}

func openTarget(patchPath, svdFlag string) (*target, error) {
	f, err := patch.Open(patchPath)
	if err != nil {
		return nil, err
	}
	svdPath := f.SVD
	if svdFlag != "" {
		svdPath = svdFlag
	}
	if svdPath == "" {
		return nil, fmt.Errorf("%w: %s has no _svd key and -svd was not given", cli.ErrUsage, patchPath)
	}
	dev, err := svd.ReadFile(svdPath)
	if err != nil {
		return nil, err
	}
	return &target{file: f, svdPath: svdPath, dev: dev}, nil
}

func (t *target) patcher(opts ...patch.Option) *patch.Patcher {
	opts = append([]patch.Option{patch.WithLoader(t.file.Loader())}, opts...)
	return patch.New(t.dev, t.file.Commands, opts...)
}
