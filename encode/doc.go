// Package encode writes ir.Node trees as JSON or YAML text.
//
// JSON output is compact by default; Pretty(true) switches to indented
// output. Object field order in the tree is preserved. Terminal color
// output is available via EncodeColors.
package encode
