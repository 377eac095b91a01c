package main

import (
	"io"
	"os"

	"github.com/signadot/svdpatch/encode"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='force color output'"`
	NoColor bool `cli:"name=nocolor desc='disable color output'"`

	Main *cli.Command
}

// colors reports whether output to w should be colored.
func (cfg *MainConfig) colors(w io.Writer) bool {
	switch {
	case cfg.NoColor:
		return false
	case cfg.Color:
		color.NoColor = false
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer, f encode.Format, indent int) []encode.EncodeOption {
	res := []encode.EncodeOption{encode.EncodeFormat(f)}
	if indent > 0 {
		res = append(res, encode.EncodeIndent(indent))
	}
	if f == encode.YAMLFormat && cfg.colors(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type PatchConfig struct {
	*MainConfig
	SVD     string `cli:"name=svd desc='device description to patch, overrides _svd'"`
	Out     string `cli:"name=o desc='output file, - for stdout'"`
	Verbose bool   `cli:"name=v desc='log each change'"`
	DryRun  bool   `cli:"name=n desc='print the changes instead of writing the result'"`

	Patch *cli.Command
}

type DiffConfig struct {
	*MainConfig
	SVD     string `cli:"name=svd desc='device description to patch, overrides _svd'"`
	JSON    bool   `cli:"name=json desc='print a JSON merge patch of the peripheral summary'"`
	Context int    `cli:"name=c desc='lines of context'"`

	Diff *cli.Command
}

type ListConfig struct {
	*MainConfig
	Where string `cli:"name=w desc='filter expression'"`

	List *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Format string `cli:"name=f desc='output format: yaml/y, json/j'"`
	Indent int    `cli:"name=indent desc='indentation width'"`

	Dump *cli.Command
}
