package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "svdpatch").
		WithSynopsis("svdpatch [opts] command [opts]").
		WithDescription("svdpatch applies peripheral delete and copy patches to SVD device descriptions.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return svdpatchMain(cfg, cc, args)
		}).
		WithSubs(
			PatchCommand(cfg),
			DiffCommand(cfg),
			ListCommand(cfg),
			DumpCommand(cfg))
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [-svd device.svd] [-o out] [-v] [-n] <patch.yaml>").
		WithDescription(patchDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchCmd(cfg, cc, args)
		})
}

const patchDescription = `patch applies the _delete and _copy commands of a patch file to a device.

The device is given by -svd or by the _svd key of the patch file, which is
resolved relative to the patch file. Copy sources of the form file:PERIPH
are loaded from file, also relative to the patch file.

The result is written to -o, which defaults to <device>.patched. Use -o -
to write to standard output. With -n nothing is written and the applied
changes are listed instead.`

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, Context: 3}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [-svd device.svd] [-json] <patch.yaml>").
		WithDescription("show what applying a patch file would change; exits 1 if anything changes").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diffCmd(cfg, cc, args)
		})
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l", "ls").
		WithSynopsis("list [-w expr] <device.svd>").
		WithDescription(listDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return listCmd(cfg, cc, args)
		})
}

const listDescription = `list prints the peripherals of a device, one per line.

-w filters with an expression over name, baseAddress, interrupts,
groupName, description and derivedFrom, for example

  svdpatch list -w 'name startsWith "TIM" && 25 in interrupts' dev.svd`

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [-f yaml|json] [-indent n] <patch.yaml>").
		WithDescription("print the commands read from a patch file in normalized form").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dumpCmd(cfg, cc, args)
		})
}
