package jso

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
)

// Kind classifies a value at normalization time.
type Kind int

const (
	ScalarKind Kind = iota
	SequenceKind
	MappingKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		ScalarKind:   "Scalar",
		SequenceKind: "Sequence",
		MappingKind:  "Mapping",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

// KeyVal is a single named binding.  A slice of them is an ordered
// mapping, and KeyVal arguments to New are named fields.
type KeyVal struct {
	Key string
	Val any
}

// KV returns the KeyVal binding k to v.
func KV(k string, v any) KeyVal {
	return KeyVal{Key: k, Val: v}
}

// KeyVals is a mapping whose iteration order is the slice order.
type KeyVals []KeyVal

var bytesType = reflect.TypeOf([]byte(nil))

// Classify reports how v is stored when bound into an Object.
func Classify(v any) Kind {
	switch v.(type) {
	case nil:
		return ScalarKind
	case *Object, Object, KeyVals, yaml.MapSlice, map[string]any:
		return MappingKind
	case []any:
		return SequenceKind
	case []byte, string:
		return ScalarKind
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return MappingKind
		}
	case reflect.Slice:
		if rv.Type().ConvertibleTo(bytesType) {
			return ScalarKind
		}
		return SequenceKind
	case reflect.Array:
		return SequenceKind
	}
	return ScalarKind
}

// entries returns the ordered bindings of a mapping or sequence.  The
// caller has already classified v; scalars yield nil.
func entries(v any, k Kind) KeyVals {
	switch k {
	case SequenceKind:
		elts := elements(v)
		res := make(KeyVals, len(elts))
		for i, e := range elts {
			res[i] = KeyVal{Key: indexKey(i), Val: e}
		}
		return res
	case MappingKind:
	default:
		return nil
	}
	switch x := v.(type) {
	case *Object:
		if x == nil {
			return nil
		}
		return x.keyVals()
	case Object:
		return x.keyVals()
	case KeyVals:
		return x
	case yaml.MapSlice:
		res := make(KeyVals, len(x))
		for i, item := range x {
			res[i] = KeyVal{Key: fmt.Sprint(item.Key), Val: item.Value}
		}
		return res
	case map[string]any:
		keys := slices.Sorted(maps.Keys(x))
		res := make(KeyVals, len(keys))
		for i, key := range keys {
			res[i] = KeyVal{Key: key, Val: x[key]}
		}
		return res
	}
	rv := reflect.ValueOf(v)
	res := make(KeyVals, 0, rv.Len())
	for _, mk := range rv.MapKeys() {
		res = append(res, KeyVal{Key: mk.String(), Val: rv.MapIndex(mk).Interface()})
	}
	slices.SortFunc(res, func(a, b KeyVal) int {
		return strings.Compare(a.Key, b.Key)
	})
	return res
}

func elements(v any) []any {
	if x, ok := v.([]any); ok {
		return x
	}
	rv := reflect.ValueOf(v)
	res := make([]any, rv.Len())
	for i := range res {
		res[i] = rv.Index(i).Interface()
	}
	return res
}
