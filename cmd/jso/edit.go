package main

import (
	"fmt"

	"github.com/signadot/jso"
	"github.com/signadot/jso/load"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, args, err := pathArg("set", args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: set requires a value", cli.ErrUsage)
	}
	v, err := load.Value(args[0])
	if err != nil {
		return err
	}
	return eachDoc(args[1:], func(_ string, _ int, o *jso.Object) error {
		if err := o.SetPath(path, v); err != nil {
			return err
		}
		return writeValue(cfg.MainConfig, cc.Out, o)
	})
}

func del(cfg *DelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Del.Parse(cc, args)
	if err != nil {
		cfg.Del.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, files, err := pathArg("del", args)
	if err != nil {
		return err
	}
	return eachDoc(files, func(_ string, _ int, o *jso.Object) error {
		if err := o.DeletePath(path); err != nil {
			return err
		}
		return writeValue(cfg.MainConfig, cc.Out, o)
	})
}

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge requires at least one file", cli.ErrUsage)
	}
	var res *jso.Object
	err = eachDoc(args, func(_ string, _ int, o *jso.Object) error {
		if res == nil {
			res = o
			return nil
		}
		return res.Merge(o)
	})
	if err != nil {
		return err
	}
	if res == nil {
		return fmt.Errorf("no documents to merge")
	}
	return writeValue(cfg.MainConfig, cc.Out, res)
}
