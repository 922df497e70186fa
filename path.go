package jso

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/jso/debug"
)

// Path is a parsed object path such as $.key3.lst[-1].  Each element
// holds either a Field, addressed by key, or an Index, addressed by
// position as in At.
type Path struct {
	Index *int
	Field *string
	Next  *Path
}

func (p *Path) String() string {
	buf := bytes.NewBuffer([]byte{'$'})
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			f := *x.Field
			if f != "" && strings.IndexAny(f, "'.$[]\\") == -1 {
				buf.WriteString("." + f)
				continue
			}
			f = strings.ReplaceAll(f, "\\", "\\\\")
			buf.WriteString(".'" + strings.ReplaceAll(f, "'", "\\'") + "'")
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

// ParsePath parses p.  The leading '$' may be omitted: "a.b[0]" is
// "$.a.b[0]" and "[1].a" is "$[1].a".  The root path "$" parses to a nil
// *Path.
func ParsePath(p string) (*Path, error) {
	switch {
	case p == "":
		return nil, fmt.Errorf("%w: empty path", ErrBadPath)
	case p[0] == '[':
		p = "$" + p
	case p[0] != '$':
		p = "$." + p
	}
	if len(p) == 1 {
		return nil, nil
	}
	root := &Path{}
	if err := parseFrag(p[1:], root); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrBadPath, p, err)
	}
	return root, nil
}

func parseFrag(frag string, parent *Path) error {
	if len(frag) == 0 {
		return nil
	}
	var rest string
	switch frag[0] {
	case '.':
		field, r, err := parseField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		rest = r
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, err := strconv.Atoi(frag[1 : i+1])
		if err != nil {
			return fmt.Errorf("bad index %q", frag[1:i+1])
		}
		parent.Index = &index
		rest = frag[i+2:]
	default:
		return fmt.Errorf("expected '.' or '['")
	}
	if len(rest) == 0 {
		return nil
	}
	next := &Path{}
	if err := parseFrag(rest, next); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

func parseField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	if frag[0] != '\'' {
		i := strings.IndexAny(frag, ".[")
		if i == 0 {
			return "", "", fmt.Errorf("empty field")
		}
		if i == -1 {
			return frag, "", nil
		}
		return frag[:i], frag[i:], nil
	}
	escaped := false
	res := make([]byte, 0, len(frag))
	for i := 1; i < len(frag); i++ {
		c := frag[i]
		switch c {
		case '\\':
			if escaped {
				escaped = false
				res = append(res, c)
				continue
			}
			escaped = true
		case '\'':
			if !escaped {
				return string(res), frag[i+1:], nil
			}
			fallthrough
		default:
			escaped = false
			res = append(res, c)
		}
	}
	return "", "", fmt.Errorf("end of string scanning for \"'\"")
}

func (p *Path) get(o *Object) (any, error) {
	if p.Field != nil {
		return o.Get(*p.Field)
	}
	return o.At(*p.Index)
}

// GetPath returns the value at path p below o.
func (o *Object) GetPath(p string) (any, error) {
	path, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	if debug.Path() {
		debug.Logf("get path %s\n", path)
	}
	var res any = o
	for x := path; x != nil; x = x.Next {
		cur, ok := res.(*Object)
		if !ok {
			return nil, fmt.Errorf("%w: %s: %T is not an object", ErrBadPath, path, res)
		}
		res, err = x.get(cur)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return res, nil
}

// parent walks to the object holding the last element of path.  With
// create, missing intermediate objects are bound along the way.
func (o *Object) parent(path *Path, create bool) (*Object, *Path, error) {
	cur := o
	x := path
	for ; x.Next != nil; x = x.Next {
		v, err := x.get(cur)
		if err != nil {
			if !create {
				return nil, nil, fmt.Errorf("%s: %w", path, err)
			}
			v = &Object{}
			x.set(cur, v)
			// binding copies, fetch what was stored
			v, err = x.get(cur)
			if err != nil {
				return nil, nil, fmt.Errorf("%s: %w", path, err)
			}
		}
		next, ok := v.(*Object)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s: %T is not an object", ErrBadPath, path, v)
		}
		cur = next
	}
	return cur, x, nil
}

func (p *Path) set(o *Object, v any) {
	if p.Field != nil {
		o.Set(*p.Field, v)
		return
	}
	o.SetAt(*p.Index, v)
}

// SetPath binds v at path p below o, creating intermediate objects for
// missing elements.
func (o *Object) SetPath(p string, v any) error {
	path, err := ParsePath(p)
	if err != nil {
		return err
	}
	if path == nil {
		return fmt.Errorf("%w: cannot set the root", ErrBadPath)
	}
	if debug.Path() {
		debug.Logf("set path %s\n", path)
	}
	parent, last, err := o.parent(path, true)
	if err != nil {
		return err
	}
	last.set(parent, v)
	return nil
}

// DeletePath removes the binding at path p below o.
func (o *Object) DeletePath(p string) error {
	path, err := ParsePath(p)
	if err != nil {
		return err
	}
	if path == nil {
		return fmt.Errorf("%w: cannot delete the root", ErrBadPath)
	}
	parent, last, err := o.parent(path, false)
	if err != nil {
		return err
	}
	if last.Field != nil {
		err = parent.Delete(*last.Field)
	} else {
		err = parent.DeleteAt(*last.Index)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
