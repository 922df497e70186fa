package jso

import (
	"fmt"
	"reflect"
)

// Object is an ordered, string keyed object with JavaScript semantics.
// Every mapping or sequence bound into an Object is converted into an
// *Object, recursively, so a whole tree can be addressed uniformly.
//
// The zero value is an empty object ready to use.
type Object struct {
	node
}

// New creates an object from its arguments, which are either
//
//   - nothing, for an empty object,
//   - a single mapping or sequence, whose entries become the bindings,
//   - any number of KeyVal named fields, bound in argument order.
//
// Other arguments, more than one mapping, or a mapping together with named
// fields give an error wrapping ErrInvalidArgument.
func New(args ...any) (*Object, error) {
	var (
		named   KeyVals
		mapping any
		nMaps   int
	)
	for i, arg := range args {
		if kv, ok := arg.(KeyVal); ok {
			named = append(named, kv)
			continue
		}
		switch Classify(arg) {
		case MappingKind, SequenceKind:
			mapping = arg
			nMaps++
		default:
			return nil, fmt.Errorf("%w: argument %d must be a mapping, got %T", ErrInvalidArgument, i, arg)
		}
	}
	switch {
	case nMaps > 1:
		return nil, fmt.Errorf("%w: expected one mapping, got %d", ErrInvalidArgument, nMaps)
	case nMaps == 1 && len(named) != 0:
		return nil, fmt.Errorf("%w: mapping given with named fields", ErrInvalidArgument)
	case nMaps == 1:
		named = entries(mapping, Classify(mapping))
	}
	res := &Object{}
	for _, kv := range named {
		res.put(kv.Key, kv.Val)
	}
	return res, nil
}

// Must returns o and panics if err is not nil.
func Must(o *Object, err error) *Object {
	if err != nil {
		panic(err)
	}
	return o
}

// Set binds v under key, converting mappings and sequences to objects.
// There is no form without a value; pass nil to bind null.
func (o *Object) Set(key string, v any) {
	o.put(key, v)
}

// Copy returns a deep copy of o sharing no objects with it.
func (o *Object) Copy() *Object {
	return normalize(o).(*Object)
}

// Child returns the object bound under key.
func (o *Object) Child(key string) (*Object, error) {
	v, err := o.Get(key)
	if err != nil {
		return nil, err
	}
	c, ok := v.(*Object)
	if !ok {
		return nil, fmt.Errorf("%w: %q holds %T, not an object", ErrInvalidArgument, key, v)
	}
	return c, nil
}

// Call invokes the function bound under key with args and returns its
// results.  Numeric arguments are converted to the parameter type when
// that loses nothing: 7.0 is accepted for an int, 7.9 and -1 for a uint
// are not.
func (o *Object) Call(key string, args ...any) ([]any, error) {
	v, err := o.Get(key)
	if err != nil {
		return nil, err
	}
	fv := reflect.ValueOf(v)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		return nil, fmt.Errorf("%w: %q holds %T", ErrNotCallable, key, v)
	}
	ft := fv.Type()
	nIn := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < nIn-1 {
			return nil, fmt.Errorf("%w: %q takes at least %d arguments, got %d", ErrInvalidArgument, key, nIn-1, len(args))
		}
	} else if len(args) != nIn {
		return nil, fmt.Errorf("%w: %q takes %d arguments, got %d", ErrInvalidArgument, key, nIn, len(args))
	}
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var pt reflect.Type
		if ft.IsVariadic() && i >= nIn-1 {
			pt = ft.In(nIn - 1).Elem()
		} else {
			pt = ft.In(i)
		}
		av, err := callArg(arg, pt)
		if err != nil {
			return nil, fmt.Errorf("argument %d of %q: %w", i, key, err)
		}
		in[i] = av
	}
	out := fv.Call(in)
	res := make([]any, len(out))
	for i := range out {
		res[i] = out[i].Interface()
	}
	return res, nil
}

func callArg(arg any, pt reflect.Type) (reflect.Value, error) {
	if arg == nil {
		switch pt.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(pt), nil
		}
		return reflect.Value{}, fmt.Errorf("%w: nil for %s", ErrInvalidArgument, pt)
	}
	av := reflect.ValueOf(arg)
	at := av.Type()
	switch {
	case at.AssignableTo(pt):
		return av, nil
	case isNumeric(at.Kind()) && isNumeric(pt.Kind()):
		if cv, ok := convertNumber(av, pt); ok {
			return cv, nil
		}
		return reflect.Value{}, fmt.Errorf("%w: %v does not fit %s", ErrInvalidArgument, arg, pt)
	}
	return reflect.Value{}, fmt.Errorf("%w: %s for %s", ErrInvalidArgument, at, pt)
}

// convertNumber converts av to pt only if no value is lost: the result
// converts back to av and keeps its sign.
func convertNumber(av reflect.Value, pt reflect.Type) (reflect.Value, bool) {
	cv := av.Convert(pt)
	if !cv.Convert(av.Type()).Equal(av) || isNegative(cv) != isNegative(av) {
		return reflect.Value{}, false
	}
	return cv, true
}

func isNegative(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() < 0
	case reflect.Float32, reflect.Float64:
		return v.Float() < 0
	}
	return false
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
