// Package load reads YAML and JSON documents into objects.
//
// Mappings are decoded in document order, so the keys of the resulting
// objects follow the source text.
package load

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/signadot/jso"
	"github.com/signadot/jso/debug"
)

// Reader returns one object per document in r.  Documents which are
// neither mappings nor sequences are rejected.
func Reader(r io.Reader) ([]*jso.Object, error) {
	dec := yaml.NewDecoder(r, yaml.UseOrderedMap())
	var res []*jso.Object
	for i := 0; ; i++ {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return nil, fmt.Errorf("error decoding document %d: %w", i, err)
		}
		if debug.Load() {
			debug.Logf("load document %d: %T\n", i, v)
		}
		o, err := jso.New(v)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		res = append(res, o)
	}
}

// Bytes is Reader on d.
func Bytes(d []byte) ([]*jso.Object, error) {
	return Reader(bytes.NewReader(d))
}

// File reads the documents in the file at path, or stdin for "-".
func File(path string) ([]*jso.Object, error) {
	if path == "-" {
		return Reader(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	res, err := Reader(f)
	if err != nil {
		return nil, fmt.Errorf("error processing %s: %w", path, err)
	}
	return res, nil
}

// Value decodes a single YAML value such as `3`, `abc` or `{a: [1]}`.
// Mappings come back as yaml.MapSlice, which objects bind in order.
func Value(s string) (any, error) {
	var v any
	if err := yaml.UnmarshalWithOptions([]byte(s), &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("error decoding value %q: %w", s, err)
	}
	return v, nil
}
