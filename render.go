package jso

import (
	"fmt"
	"io"
	"reflect"
	"strings"
)

const typeName = "Object"

type RenderConfig struct {
	Colors *Colors
}

type RenderOption func(*RenderConfig)

// RenderColors colors the output of Render with c.  A nil c renders
// plain text.
func RenderColors(c *Colors) RenderOption {
	return func(cfg *RenderConfig) { cfg.Colors = c }
}

// String renders o as Object(k1: 'v1', k2: 2, ...), nesting child
// objects in the same form.
func (o *Object) String() string {
	b := &strings.Builder{}
	o.render(b, nil)
	return b.String()
}

// Render writes the String form of o to w.
func (o *Object) Render(w io.Writer, opts ...RenderOption) error {
	cfg := &RenderConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	b := &strings.Builder{}
	o.render(b, cfg.Colors)
	_, err := io.WriteString(w, b.String())
	return err
}

func (o *Object) render(b *strings.Builder, c *Colors) {
	b.WriteString(c.paint(NameColor, typeName))
	b.WriteString(c.paint(SepColor, "("))
	for i, key := range o.keys {
		if i > 0 {
			b.WriteString(c.paint(SepColor, ", "))
		}
		b.WriteString(c.paint(KeyColor, key))
		b.WriteString(c.paint(SepColor, ": "))
		renderValue(b, o.vals[i], c)
	}
	b.WriteString(c.paint(SepColor, ")"))
}

func renderValue(b *strings.Builder, v any, c *Colors) {
	switch x := v.(type) {
	case *Object:
		x.render(b, c)
	case string:
		b.WriteString(c.paint(StringColor, "'"+x+"'"))
	case nil:
		b.WriteString(c.paint(NullColor, "null"))
	case bool:
		b.WriteString(c.paint(BoolColor, fmt.Sprint(x)))
	default:
		rv := reflect.ValueOf(v)
		switch {
		case rv.Kind() == reflect.Func:
			b.WriteString(c.paint(FuncColor, "<"+rv.Type().String()+">"))
		case isNumeric(rv.Kind()):
			b.WriteString(c.paint(NumberColor, fmt.Sprint(v)))
		default:
			b.WriteString(c.paint(ValueColor, fmt.Sprint(v)))
		}
	}
}
