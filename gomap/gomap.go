// Package gomap provides reflection-driven conversion between Go
// values and ir.Node trees.
//
// Conversion is type-directed: scalars map to scalar nodes, slices and
// arrays to array nodes, string-keyed maps and structs to object
// nodes. A type can take over its own conversion entirely by
// implementing NodeMarshaler or NodeUnmarshaler.
//
// Field visibility:
//   - Exported struct fields are serialized by default.
//   - `jtree:"-"` excludes a field; `jtree:"Name"` renames it.
//   - `jtree:",include"` forces an unexported field in (accessed
//     through unsafe, since plain reflection cannot).
//   - A type implementing FieldOmitter suppresses the named fields for
//     the whole call, anywhere in the value being converted.
//   - Per-call suppression is available via Ignore("TypeName.Field").
//
// Conversion is lenient on the way in: scalar kind mismatches resolve
// to the ir accessors' zero-value fallbacks, and keys missing from an
// object node leave the corresponding fields untouched. Asking for an
// unsupported kind (func, chan, complex) logs an error diagnostic and
// produces an absent result instead of failing the call.
//
// Example usage:
//
//	person := Person{Name: "Alice", Age: 30}
//	node, err := gomap.ToIR(person)
//
//	var person2 Person
//	err = gomap.FromIR(node, &person2)
package gomap
