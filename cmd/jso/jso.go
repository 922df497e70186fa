package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/jso"
	"github.com/signadot/jso/load"

	"github.com/scott-cotton/cli"
)

func jsoMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Color && cfg.NoColor {
		return fmt.Errorf("%w: -color and -no-color are exclusive", cli.ErrUsage)
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

// eachDoc calls f with every document of files, or of stdin when files
// is empty.
func eachDoc(files []string, f func(file string, i int, o *jso.Object) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		objs, err := load.File(file)
		if err != nil {
			return err
		}
		for i, o := range objs {
			if err := f(file, i, o); err != nil {
				return fmt.Errorf("%s document %d: %w", file, i, err)
			}
		}
	}
	return nil
}

// writeValue writes v on its own line: objects rendered, strings bare and
// other scalars formatted with %v.
func writeValue(cfg *MainConfig, w io.Writer, v any) error {
	switch x := v.(type) {
	case *jso.Object:
		if err := x.Render(w, cfg.renderOpts(w)...); err != nil {
			return err
		}
	case nil:
		io.WriteString(w, "null")
	default:
		if jso.Classify(v) != jso.ScalarKind {
			o, err := jso.New(v)
			if err != nil {
				return err
			}
			return writeValue(cfg, w, o)
		}
		fmt.Fprint(w, x)
	}
	_, err := io.WriteString(w, "\n")
	return err
}
