// Package format enumerates the text formats a node tree can be read
// from and written to.
package format
