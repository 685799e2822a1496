// Package parse reads JSON or YAML text into ir.Node trees.
//
// Object key order in the input is preserved in the resulting tree, so
// a parse/encode round trip is stable.
package parse
