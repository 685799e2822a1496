package encode

import (
	"bytes"

	"github.com/jtree-dev/jtree/ir"
)

// String encodes node to a string.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	var buf bytes.Buffer
	if err := Encode(node, &buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MustString is like String but panics on encoding errors. It is
// intended for debug output and tests.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	s, err := String(node, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
