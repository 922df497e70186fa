package main

import (
	"github.com/signadot/jso"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachDoc(args, func(_ string, _ int, o *jso.Object) error {
		return writeValue(cfg.MainConfig, cc.Out, o)
	})
}
