package main

import (
	"fmt"

	"github.com/signadot/jso"
	"github.com/signadot/jso/query"

	"github.com/scott-cotton/cli"
)

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	src := args[0]
	return eachDoc(args[1:], func(_ string, _ int, o *jso.Object) error {
		v, err := query.Eval(o, src)
		if err != nil {
			return err
		}
		return writeValue(cfg.MainConfig, cc.Out, v)
	})
}

func where(cfg *WhereConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Where.Parse(cc, args)
	if err != nil {
		cfg.Where.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: where requires an expression", cli.ErrUsage)
	}
	src := args[0]
	return eachDoc(args[1:], func(_ string, _ int, o *jso.Object) error {
		res, err := query.Where(o, src)
		if err != nil {
			return err
		}
		if !cfg.Keys {
			return writeValue(cfg.MainConfig, cc.Out, res)
		}
		for k := range res.Iter() {
			fmt.Fprintln(cc.Out, k)
		}
		return nil
	})
}
