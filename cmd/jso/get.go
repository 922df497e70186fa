package main

import (
	"fmt"

	"github.com/signadot/jso"

	"github.com/scott-cotton/cli"
)

func pathArg(cmd string, args []string) (string, []string, error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("%w: %s requires one argument, an object path", cli.ErrUsage, cmd)
	}
	if _, err := jso.ParsePath(args[0]); err != nil {
		return "", nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return args[0], args[1:], nil
}

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, files, err := pathArg("get", args)
	if err != nil {
		return err
	}
	return eachDoc(files, func(_ string, _ int, o *jso.Object) error {
		v, err := o.GetPath(path)
		if err != nil {
			return err
		}
		return writeValue(cfg.MainConfig, cc.Out, v)
	})
}

func objectAt(o *jso.Object, path string) (*jso.Object, error) {
	v, err := o.GetPath(path)
	if err != nil {
		return nil, err
	}
	res, ok := v.(*jso.Object)
	if !ok {
		return nil, fmt.Errorf("%s: %T is not an object", path, v)
	}
	return res, nil
}

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		cfg.Keys.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, files, err := pathArg("keys", args)
	if err != nil {
		return err
	}
	return eachDoc(files, func(_ string, _ int, o *jso.Object) error {
		target, err := objectAt(o, path)
		if err != nil {
			return err
		}
		for k, v := range target.All() {
			if !cfg.Values {
				fmt.Fprintln(cc.Out, k)
				continue
			}
			fmt.Fprintf(cc.Out, "%s: ", k)
			if err := writeValue(cfg.MainConfig, cc.Out, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	path, files, err := pathArg("list", args)
	if err != nil {
		return err
	}
	return eachDoc(files, func(_ string, _ int, o *jso.Object) error {
		target, err := objectAt(o, path)
		if err != nil {
			return err
		}
		elts, err := target.ToList()
		if err != nil {
			return err
		}
		for _, elt := range elts {
			if err := writeValue(cfg.MainConfig, cc.Out, elt); err != nil {
				return err
			}
		}
		return nil
	})
}
