// Package jso provides Object, an ordered string keyed object with the
// semantics of a JavaScript object.
//
// # Normalization
//
// Any mapping or sequence bound into an Object, whether at construction,
// through Set, SetAt, SetPath or Merge, is converted into an *Object.
// Sequences become objects keyed by their decimal indices "0", "1", and
// so on, so one storage scheme serves both objects and arrays:
//
//	o := jso.Must(jso.New(map[string]any{
//	    "a": "b",
//	    "lst": []any{14, 5, 6, 12},
//	}))
//	o.GetPath("lst[2]") // 6
//
// Mappings are *Object, KeyVals, yaml.MapSlice and Go maps with string
// keys.  Go maps have no order and are bound in sorted key order; use
// KeyVals or yaml.MapSlice to control it.  Sequences are any slice or
// array other than []byte.  Everything else, functions included, is stored
// as is.
//
// Binding an *Object stores a deep copy of it, so objects always form a
// tree.
//
// # Addressing
//
// A binding is reached by key (Get, Set, Delete) or by position among
// the ordered keys (At, SetAt, DeleteAt).  Positions may be negative,
// counting from the end.  When a position does not resolve, the decimal
// string of the position is used as a literal key instead, which is how
// array-like objects keep answering for their indices after deletions.
// Slice selects values by position with start:stop:step semantics.
//
// Paths such as "$.a.lst[-1]" combine both: field elements address by
// key and bracketed elements by position.  See ParsePath.
//
// # Arrays
//
// An object is array-like when its keys are exactly "0" through "n-1".
// The empty object is array-like.  ToList returns the values of an
// array-like object in index order and Native converts a whole tree back
// into maps and slices.
//
// # Errors
//
// Errors wrap the sentinels ErrInvalidArgument, ErrNotFound,
// ErrOutOfRange, ErrNotAnArray, ErrNotCallable and ErrBadPath; test them
// with errors.Is.
//
// # Thread Safety
//
// Objects are not safe for concurrent use.
package jso
