// Package query evaluates expr-lang expressions against objects.
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/signadot/jso"
	"github.com/signadot/jso/debug"
)

// Env returns the expression environment for o: every binding of o by
// key, with child objects converted by Native.
func Env(o *jso.Object) map[string]any {
	env := make(map[string]any, o.Len())
	for k, v := range o.All() {
		env[k] = native(v)
	}
	return env
}

func native(v any) any {
	if o, ok := v.(*jso.Object); ok {
		return o.Native()
	}
	return v
}

// Eval evaluates src with the bindings of o in scope, so that
// "key3.lst[2] * 2" reads through nested objects.
func Eval(o *jso.Object, src string) (any, error) {
	env := Env(o)
	prg, err := expr.Compile(src, expr.Env(env))
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", src, err)
	}
	if debug.Query() {
		debug.Logf("eval %q on %s\n", src, o)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", src, err)
	}
	return res, nil
}

// Where returns a new object holding the bindings of o for which the
// boolean expression src is true.  src sees the binding as key, value and
// index.  An array-like o gives an array-like result, renumbered from 0.
func Where(o *jso.Object, src string) (*jso.Object, error) {
	prg, err := expr.Compile(src, expr.Env(binding{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", src, err)
	}
	isArray := o.IsArray()
	var (
		kvs  jso.KeyVals
		list []any
	)
	i := 0
	for k, v := range o.All() {
		out, err := expr.Run(prg, binding{Key: k, Value: native(v), Index: i})
		if err != nil {
			return nil, fmt.Errorf("error evaluating %q at %q: %w", src, k, err)
		}
		if debug.Query() {
			debug.Logf("where %q at %q: %v\n", src, k, out)
		}
		i++
		if ok, _ := out.(bool); !ok {
			continue
		}
		if isArray {
			list = append(list, v)
			continue
		}
		kvs = append(kvs, jso.KV(k, v))
	}
	if isArray {
		return jso.New(list)
	}
	return jso.New(kvs)
}

type binding struct {
	Key   string `expr:"key"`
	Value any    `expr:"value"`
	Index int    `expr:"index"`
}
