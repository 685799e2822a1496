package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Gomap bool
	Parse bool
}

var d *debug

func init() {
	d = &debug{}
	d.Gomap = boolEnv("JTREE_DEBUG_GOMAP")
	d.Parse = boolEnv("JTREE_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Gomap() bool {
	return d.Gomap
}
func Parse() bool {
	return d.Parse
}
