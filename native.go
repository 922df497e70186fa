package jso

// Native converts o back into plain Go values: array-like objects with at
// least one binding become []any ordered by index, other objects become
// map[string]any.  Scalars are returned as stored.
func (o *Object) Native() any {
	if o.Len() != 0 && o.IsArray() {
		list, _ := o.ToList()
		for i, v := range list {
			list[i] = native(v)
		}
		return list
	}
	res := make(map[string]any, o.Len())
	for i, key := range o.keys {
		res[key] = native(o.vals[i])
	}
	return res
}

func native(v any) any {
	if o, ok := v.(*Object); ok {
		return o.Native()
	}
	return v
}
