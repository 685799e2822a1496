package debug

import (
	"fmt"
	"os"
)

// Logf writes debug output to stderr. Callers gate it on one of the
// package flag accessors.
func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}

// Errorf reports a diagnostic to stderr. Unlike Logf it is not gated:
// it carries error-level conditions that are tolerated rather than
// returned, such as a request to convert an unsupported kind.
func Errorf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+msg+"\n", args...)
}
