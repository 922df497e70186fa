package main

import (
	"io"
	"os"

	"github.com/signadot/jso"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='render with color'"`
	NoColor bool `cli:"name=no-color desc='never render with color'"`

	Main *cli.Command
}

func (cfg *MainConfig) renderOpts(w io.Writer) []jso.RenderOption {
	switch {
	case cfg.NoColor:
		return nil
	case cfg.Color:
		return []jso.RenderOption{jso.RenderColors(jso.NewColors())}
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []jso.RenderOption{jso.RenderColors(jso.NewColors())}
	}
	return nil
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type KeysConfig struct {
	*MainConfig
	Values bool `cli:"name=values aliases=v desc='print values with keys'"`
	Keys   *cli.Command
}

type ListConfig struct {
	*MainConfig
	List *cli.Command
}

type SetConfig struct {
	*MainConfig
	Set *cli.Command
}

type DelConfig struct {
	*MainConfig
	Del *cli.Command
}

type MergeConfig struct {
	*MainConfig
	Merge *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Eval *cli.Command
}

type WhereConfig struct {
	*MainConfig
	Keys  bool `cli:"name=keys aliases=k desc='print only the matching keys'"`
	Where *cli.Command
}
