package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Normalize bool
	Index     bool
	Merge     bool
	Path      bool
	Load      bool
	Query     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Normalize = boolEnv("JSO_DEBUG_NORMALIZE")
	d.Index = boolEnv("JSO_DEBUG_INDEX")
	d.Merge = boolEnv("JSO_DEBUG_MERGE")
	d.Path = boolEnv("JSO_DEBUG_PATH")
	d.Load = boolEnv("JSO_DEBUG_LOAD")
	d.Query = boolEnv("JSO_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Normalize() bool {
	return d.Normalize
}
func Index() bool {
	return d.Index
}
func Merge() bool {
	return d.Merge
}
func Path() bool {
	return d.Path
}
func Load() bool {
	return d.Load
}
func Query() bool {
	return d.Query
}

// Logf writes a debug message to stderr.
func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
