package jso

import (
	"fmt"
	"iter"
	"slices"
	"strconv"

	"github.com/signadot/jso/debug"
)

// node is the ordered storage behind every Object.  keys[i] is bound to
// vals[i] and pos maps each key back to i.  Values are either scalars or
// *Object: mappings and sequences never survive being bound.
type node struct {
	keys []string
	vals []any
	pos  map[string]int
}

// put binds the normalized form of v under key.  An existing binding is
// replaced in place and keeps its position.
func (n *node) put(key string, v any) {
	v = normalize(v)
	if i, ok := n.pos[key]; ok {
		n.vals[i] = v
		return
	}
	if n.pos == nil {
		n.pos = map[string]int{}
	}
	n.pos[key] = len(n.keys)
	n.keys = append(n.keys, key)
	n.vals = append(n.vals, v)
}

func (n *node) remove(key string) bool {
	i, ok := n.pos[key]
	if !ok {
		return false
	}
	n.keys = slices.Delete(n.keys, i, i+1)
	n.vals = slices.Delete(n.vals, i, i+1)
	delete(n.pos, key)
	for j := i; j < len(n.keys); j++ {
		n.pos[n.keys[j]] = j
	}
	return true
}

func (n *node) keyVals() KeyVals {
	res := make(KeyVals, len(n.keys))
	for i, key := range n.keys {
		res[i] = KeyVal{Key: key, Val: n.vals[i]}
	}
	return res
}

// normalize returns the stored form of v: a fresh *Object for mappings and
// sequences (recursively), v itself otherwise.
func normalize(v any) any {
	k := Classify(v)
	if k == ScalarKind {
		return v
	}
	if debug.Normalize() {
		debug.Logf("normalize %s %T\n", k, v)
	}
	res := &Object{}
	for _, kv := range entries(v, k) {
		res.put(kv.Key, kv.Val)
	}
	return res
}

// Keys returns the bound keys in insertion order.
func (n *node) Keys() []string {
	return append([]string{}, n.keys...)
}

// Values returns the bound values in the order of Keys.
func (n *node) Values() []any {
	return append([]any{}, n.vals...)
}

func (n *node) Len() int {
	return len(n.keys)
}

func (n *node) Has(key string) bool {
	_, ok := n.pos[key]
	return ok
}

// Lookup returns the value bound under key and whether there is one.
func (n *node) Lookup(key string) (any, bool) {
	i, ok := n.pos[key]
	if !ok {
		return nil, false
	}
	return n.vals[i], true
}

// Get returns the value bound under key, or an error wrapping
// ErrNotFound.
func (n *node) Get(key string) (any, error) {
	v, ok := n.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: key %q", ErrNotFound, key)
	}
	return v, nil
}

// Raw is Get.  Values are normalized when written, so there is nothing
// further to undo when reading.
func (n *node) Raw(key string) (any, error) {
	return n.Get(key)
}

// resolve maps a position, negative counting from the end, to an offset in
// keys.
func (n *node) resolve(i int) (int, bool) {
	if i < 0 {
		i += len(n.keys)
	}
	if i < 0 || i >= len(n.keys) {
		return 0, false
	}
	return i, true
}

// At returns the value at position i.  If i is not a valid position, the
// literal key strconv.Itoa(i) is tried instead, so array-likes with gaps
// still answer for their digit keys.
func (n *node) At(i int) (any, error) {
	if j, ok := n.resolve(i); ok {
		return n.vals[j], nil
	}
	key := indexKey(i)
	if v, ok := n.Lookup(key); ok {
		if debug.Index() {
			debug.Logf("index %d resolved as key %q\n", i, key)
		}
		return v, nil
	}
	return nil, fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, i, len(n.keys))
}

// SetAt binds v at position i, with the same resolution as At.  When i is
// not a valid position the literal key strconv.Itoa(i) is bound, which
// appends to an array-like object of length i.
func (n *node) SetAt(i int, v any) {
	if j, ok := n.resolve(i); ok {
		n.vals[j] = normalize(v)
		return
	}
	if debug.Index() {
		debug.Logf("set index %d as key %q\n", i, indexKey(i))
	}
	n.put(indexKey(i), v)
}

// Delete removes the binding for key.
func (n *node) Delete(key string) error {
	if !n.remove(key) {
		return fmt.Errorf("%w: key %q", ErrNotFound, key)
	}
	return nil
}

// DeleteAt removes the binding at position i, falling back to the literal
// key strconv.Itoa(i).
func (n *node) DeleteAt(i int) error {
	if j, ok := n.resolve(i); ok {
		n.remove(n.keys[j])
		return nil
	}
	key := indexKey(i)
	if !n.remove(key) {
		return fmt.Errorf("%w: index %d (len %d)", ErrNotFound, i, len(n.keys))
	}
	return nil
}

// Slice returns the values selected by start:stop:step, with negative
// bounds counting from the end and out of range bounds clamped.  A
// descending slice reaching the first value uses stop = -Len()-1.
func (n *node) Slice(start, stop, step int) ([]any, error) {
	if step == 0 {
		return nil, fmt.Errorf("%w: slice step cannot be zero", ErrInvalidArgument)
	}
	l := len(n.vals)
	start = sliceBound(start, l, step)
	stop = sliceBound(stop, l, step)
	res := []any{}
	if step > 0 {
		for i := start; i < stop; {
			res = append(res, n.vals[i])
			// i+step may overflow
			if step >= stop-i {
				break
			}
			i += step
		}
		return res, nil
	}
	for i := start; i > stop; {
		res = append(res, n.vals[i])
		if step <= stop-i {
			break
		}
		i += step
	}
	return res, nil
}

func sliceBound(i, l, step int) int {
	if i < 0 {
		i += l
		if i < 0 {
			if step < 0 {
				return -1
			}
			return 0
		}
		return i
	}
	if i >= l {
		if step < 0 {
			return l - 1
		}
		return l
	}
	return i
}

// IsArray reports whether the keys are exactly "0" through "n-1", in any
// order.  An object with no keys is array-like.
func (n *node) IsArray() bool {
	for _, key := range n.keys {
		i, ok := parseIndexKey(key)
		if !ok || i >= len(n.keys) {
			return false
		}
	}
	return true
}

// ToList returns the values of an array-like object ordered by index.
func (n *node) ToList() ([]any, error) {
	if !n.IsArray() {
		return nil, fmt.Errorf("%w: keys %q", ErrNotAnArray, n.keys)
	}
	res := make([]any, len(n.vals))
	for i, key := range n.keys {
		j, _ := parseIndexKey(key)
		res[j] = n.vals[i]
	}
	return res, nil
}

// Merge binds every entry of other, a mapping or sequence, into n.
// Entries of other win over existing bindings; other keys are untouched.
func (n *node) Merge(other any) error {
	k := Classify(other)
	if k == ScalarKind {
		return fmt.Errorf("%w: cannot merge %T", ErrInvalidArgument, other)
	}
	kvs := entries(other, k)
	if debug.Merge() {
		debug.Logf("merge %d entries from %T\n", len(kvs), other)
	}
	for _, kv := range kvs {
		n.put(kv.Key, kv.Val)
	}
	return nil
}

// Iter yields the keys in insertion order.  It works on a snapshot, so
// the object may be modified while iterating.
func (n *node) Iter() iter.Seq[string] {
	keys := n.Keys()
	return func(yield func(string) bool) {
		for _, key := range keys {
			if !yield(key) {
				return
			}
		}
	}
}

// All yields the bindings in insertion order from a snapshot.
func (n *node) All() iter.Seq2[string, any] {
	kvs := n.keyVals()
	return func(yield func(string, any) bool) {
		for _, kv := range kvs {
			if !yield(kv.Key, kv.Val) {
				return
			}
		}
	}
}

func indexKey(i int) string {
	return strconv.Itoa(i)
}

// parseIndexKey parses key as a non negative integer in canonical form:
// "01", "+1" and "-0" are not index keys.
func parseIndexKey(key string) (int, bool) {
	i, err := strconv.Atoi(key)
	if err != nil || i < 0 || strconv.Itoa(i) != key {
		return 0, false
	}
	return i, true
}
