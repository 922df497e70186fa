package jso

import (
	"errors"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

func TestNewNested(t *testing.T) {
	o, err := New(map[string]any{
		"k": map[string]any{
			"a":   "b",
			"lst": []any{14, 5, 6, 12},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	k, err := o.Child("k")
	if err != nil {
		t.Fatal(err)
	}
	lst, err := k.Child("lst")
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := lst.At(2); v != 6 {
		t.Errorf("k.lst[2] = %v, want 6", v)
	}
	if k.IsArray() {
		t.Errorf("k.IsArray() = true")
	}
	if !lst.IsArray() {
		t.Errorf("k.lst.IsArray() = false")
	}
	if diff := cmp.Diff([]string{"0", "1", "2", "3"}, lst.Keys()); diff != "" {
		t.Errorf("lst keys mismatch (-want +got):\n%s", diff)
	}
}

func TestNewArgs(t *testing.T) {
	tests := []struct {
		name string
		args []any
		keys []string
		err  error
	}{
		{name: "none", keys: []string{}},
		{name: "map", args: []any{map[string]int{"b": 1, "a": 2}}, keys: []string{"a", "b"}},
		{name: "ordered", args: []any{KeyVals{{Key: "b"}, {Key: "a"}}}, keys: []string{"b", "a"}},
		{
			name: "yaml",
			args: []any{yaml.MapSlice{{Key: "z", Value: 1}, {Key: 2, Value: 2}}},
			keys: []string{"z", "2"},
		},
		{name: "sequence", args: []any{[]any{"x"}}, keys: []string{"0"}},
		{name: "named", args: []any{KV("y", 1), KV("x", 2)}, keys: []string{"y", "x"}},
		{name: "named repeated", args: []any{KV("y", 1), KV("y", 2)}, keys: []string{"y"}},
		{name: "scalar", args: []any{"abc"}, err: ErrInvalidArgument},
		{name: "nil", args: []any{nil}, err: ErrInvalidArgument},
		{name: "two maps", args: []any{map[string]any{}, map[string]any{}}, err: ErrInvalidArgument},
		{name: "map and named", args: []any{map[string]any{}, KV("a", 1)}, err: ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := New(tt.args...)
			if !errors.Is(err, tt.err) {
				t.Fatalf("New() error = %v, want %v", err, tt.err)
			}
			if err != nil {
				return
			}
			if diff := cmp.Diff(tt.keys, o.Keys()); diff != "" {
				t.Errorf("keys mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		in   any
		want Kind
	}{
		{nil, ScalarKind},
		{1, ScalarKind},
		{"s", ScalarKind},
		{[]byte("s"), ScalarKind},
		{func() {}, ScalarKind},
		{[]any{}, SequenceKind},
		{[]float64{1}, SequenceKind},
		{[3]int{}, SequenceKind},
		{map[string]any{}, MappingKind},
		{map[string]bool{}, MappingKind},
		{map[int]bool{}, ScalarKind},
		{KeyVals{}, MappingKind},
		{yaml.MapSlice{}, MappingKind},
		{&Object{}, MappingKind},
	}
	for _, tt := range tests {
		if got := Classify(tt.in); got != tt.want {
			t.Errorf("Classify(%T) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestSetNormalizes(t *testing.T) {
	o := &Object{}
	o.Set("m", map[string]any{"a": []int{1, 2}})
	if !o.Has("m") {
		t.Fatalf("Has(m) = false")
	}
	v, err := o.Raw("m")
	if err != nil {
		t.Fatal(err)
	}
	m, ok := v.(*Object)
	if !ok {
		t.Fatalf("Raw(m) is %T, want *Object", v)
	}
	a, err := m.Child("a")
	if err != nil {
		t.Fatal(err)
	}
	if !a.IsArray() || a.Len() != 2 {
		t.Errorf("m.a = %s, want a 2 element array", a)
	}
	if _, err := o.Child("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Child(missing) error = %v, want %v", err, ErrNotFound)
	}
	o.Set("s", "str")
	if _, err := o.Child("s"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Child(s) error = %v, want %v", err, ErrInvalidArgument)
	}
}

func TestSetSelf(t *testing.T) {
	o := Must(New(map[string]any{"a": 1}))
	o.Set("self", o)
	self, err := o.Child("self")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a"}, self.Keys()); diff != "" {
		t.Errorf("self keys mismatch (-want +got):\n%s", diff)
	}
	if self == o {
		t.Errorf("object bound into itself")
	}
}

func TestCopy(t *testing.T) {
	o := Must(New(map[string]any{"a": map[string]any{"b": 1}, "c": "d"}))
	c := o.Copy()
	if c.String() != o.String() {
		t.Errorf("copy %s != %s", c, o)
	}
	ca, _ := c.Child("a")
	ca.Set("b", 2)
	c.Set("c", "e")
	oa, _ := o.Child("a")
	if v, _ := oa.Get("b"); v != 1 {
		t.Errorf("original a.b = %v after changing copy, want 1", v)
	}
	if v, _ := o.Get("c"); v != "d" {
		t.Errorf("original c = %v after changing copy, want d", v)
	}
}

func TestNativeRoundTrip(t *testing.T) {
	tests := []map[string]any{
		{},
		{"a": 1, "b": "two", "c": nil, "d": true},
		{"k": map[string]any{"a": "b", "lst": []any{14, 5, 6, 12}}},
		{"deep": []any{map[string]any{"x": []any{[]any{1}, "y"}}}},
	}
	for _, m := range tests {
		o := Must(New(m))
		if diff := cmp.Diff(m, o.Native()); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
	list := Must(New([]any{1, "a"}))
	if diff := cmp.Diff([]any{1, "a"}, list.Native()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestCall(t *testing.T) {
	var fib func(n int) int
	fib = func(n int) int {
		if n <= 2 {
			return 1
		}
		return fib(n-1) + fib(n-2)
	}
	o := Must(New(KV("fib", fib), KV("x", 1), KV("join", func(sep string, parts ...string) string {
		res := ""
		for i, p := range parts {
			if i > 0 {
				res += sep
			}
			res += p
		}
		return res
	})))
	out, err := o.Call("fib", 7)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]any{13}, out); diff != "" {
		t.Errorf("fib(7) mismatch (-want +got):\n%s", diff)
	}
	out, err = o.Call("fib", 7.0)
	if err != nil {
		t.Fatal(err)
	}
	if out[0] != 13 {
		t.Errorf("fib(7.0) = %v, want 13", out[0])
	}
	out, err = o.Call("join", "-", "a", "b")
	if err != nil {
		t.Fatal(err)
	}
	if out[0] != "a-b" {
		t.Errorf("join = %v, want a-b", out[0])
	}
	if _, err := o.Call("x"); !errors.Is(err, ErrNotCallable) {
		t.Errorf("Call(x) error = %v, want %v", err, ErrNotCallable)
	}
	if _, err := o.Call("fib"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Call(fib) error = %v, want %v", err, ErrInvalidArgument)
	}
	if _, err := o.Call("fib", "7"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Call(fib, \"7\") error = %v, want %v", err, ErrInvalidArgument)
	}
	if _, err := o.Call("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Call(nope) error = %v, want %v", err, ErrNotFound)
	}
}

func TestCallConversions(t *testing.T) {
	o := Must(New(
		KV("int", func(n int) int { return n }),
		KV("uint", func(n uint) uint { return n }),
		KV("int8", func(n int8) int8 { return n }),
		KV("float", func(f float64) float64 { return f }),
	))
	tests := []struct {
		key  string
		arg  any
		want any
		err  error
	}{
		{key: "int", arg: 7.0, want: 7},
		{key: "int", arg: 7.9, err: ErrInvalidArgument},
		{key: "int", arg: uint64(1) << 63, err: ErrInvalidArgument},
		{key: "uint", arg: 3, want: uint(3)},
		{key: "uint", arg: -1, err: ErrInvalidArgument},
		{key: "uint", arg: -1.0, err: ErrInvalidArgument},
		{key: "int8", arg: 127, want: int8(127)},
		{key: "int8", arg: 128, err: ErrInvalidArgument},
		{key: "float", arg: 2, want: 2.0},
		{key: "float", arg: float32(0.5), want: 0.5},
	}
	for _, tt := range tests {
		out, err := o.Call(tt.key, tt.arg)
		if !errors.Is(err, tt.err) {
			t.Errorf("Call(%s, %v) error = %v, want %v", tt.key, tt.arg, err, tt.err)
			continue
		}
		if err != nil {
			continue
		}
		if out[0] != tt.want {
			t.Errorf("Call(%s, %v) = %v (%T), want %v (%T)", tt.key, tt.arg, out[0], out[0], tt.want, tt.want)
		}
	}
}

func TestSetNil(t *testing.T) {
	o := &Object{}
	o.Set("n", nil)
	v, err := o.Get("n")
	if err != nil {
		t.Fatal(err)
	}
	if v != nil {
		t.Errorf("Get(n) = %v, want nil", v)
	}
	if got := o.String(); got != "Object(n: null)" {
		t.Errorf("String() = %q", got)
	}
}
