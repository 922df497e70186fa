package jso

import (
	"fmt"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	NameColor ColorAttr = iota
	KeyColor
	SepColor
	StringColor
	NumberColor
	BoolColor
	NullColor
	FuncColor
	ValueColor
)

// Colors maps rendering attributes to coloring functions.  Attributes
// missing from Map use Default.
type Colors struct {
	Default func(...any) string
	Map     map[ColorAttr]func(...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(...any) string{
			NameColor:   color.RGB(74, 92, 138).SprintFunc(),
			KeyColor:    color.RGB(128, 168, 196).SprintFunc(),
			SepColor:    color.RGB(196, 128, 128).SprintFunc(),
			StringColor: color.RGB(8, 196, 16).SprintFunc(),
			NumberColor: color.RGB(128, 216, 236).SprintFunc(),
			BoolColor:   color.New(color.FgCyan).SprintFunc(),
			NullColor:   color.RGB(168, 0, 196).SprintFunc(),
			FuncColor:   color.New(color.FgBlue).SprintFunc(),
		},
	}
}

func (c *Colors) paint(attr ColorAttr, s string) string {
	if c == nil {
		return s
	}
	if f, ok := c.Map[attr]; ok {
		return f(s)
	}
	if c.Default != nil {
		return c.Default(s)
	}
	return s
}

func colorDefault(a ...any) string {
	return fmt.Sprint(a...)
}
