package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/scott-cotton/cli"
	"github.com/signadot/jso"
)

func TestWriteValue(t *testing.T) {
	cfg := &MainConfig{}
	tests := []struct {
		v    any
		want string
	}{
		{"abc", "abc\n"},
		{12, "12\n"},
		{nil, "null\n"},
		{[]any{1, "a"}, "Object(0: 1, 1: 'a')\n"},
		{map[string]any{"b": true}, "Object(b: true)\n"},
		{jso.Must(jso.New(jso.KV("x", 1))), "Object(x: 1)\n"},
	}
	for _, tt := range tests {
		buf := &bytes.Buffer{}
		if err := writeValue(cfg, buf, tt.v); err != nil {
			t.Fatal(err)
		}
		if buf.String() != tt.want {
			t.Errorf("writeValue(%v) = %q, want %q", tt.v, buf.String(), tt.want)
		}
	}
}

func TestRenderOpts(t *testing.T) {
	buf := &bytes.Buffer{}
	if opts := (&MainConfig{}).renderOpts(buf); len(opts) != 0 {
		t.Errorf("buffer output got %d render options", len(opts))
	}
	if opts := (&MainConfig{Color: true}).renderOpts(buf); len(opts) != 1 {
		t.Errorf("-color got %d render options, want 1", len(opts))
	}
	if opts := (&MainConfig{Color: true, NoColor: true}).renderOpts(buf); len(opts) != 0 {
		t.Errorf("-no-color got %d render options", len(opts))
	}
}

func TestPathArg(t *testing.T) {
	path, rest, err := pathArg("get", []string{"a.b[1]", "f.yaml"})
	if err != nil {
		t.Fatal(err)
	}
	if path != "a.b[1]" || len(rest) != 1 || rest[0] != "f.yaml" {
		t.Errorf("pathArg = %q %q", path, rest)
	}
	if _, _, err := pathArg("get", nil); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("pathArg(nil) error = %v, want %v", err, cli.ErrUsage)
	}
	if _, _, err := pathArg("get", []string{"a["}); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("pathArg(a[) error = %v, want %v", err, cli.ErrUsage)
	}
}

func TestEachDoc(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.yaml")
	b := filepath.Join(dir, "b.yaml")
	if err := os.WriteFile(a, []byte("x: 1\n---\ny: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("[1, 2]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var got []string
	err := eachDoc([]string{a, b}, func(file string, i int, o *jso.Object) error {
		got = append(got, o.String())
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Object(x: 1)", "Object(y: 2)", "Object(0: 1, 1: 2)"}
	if len(got) != len(want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("document %d = %s, want %s", i, got[i], want[i])
		}
	}
	stop := errors.New("stop")
	err = eachDoc([]string{a}, func(string, int, *jso.Object) error { return stop })
	if !errors.Is(err, stop) {
		t.Errorf("eachDoc error = %v, want %v", err, stop)
	}
}
