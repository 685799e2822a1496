// Package ir provides the intermediate representation for JSON-like
// document trees.
//
// # Overview
//
// All documents (whether parsed from text or produced from Go values by
// the gomap package) are represented as ir.Node trees. The IR is a
// simple recursive tagged union: values are placed in fields depending
// on the node type.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (int64 or float64)
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (fields and values)
//
// # Objects
//
// For ObjectType nodes, Fields[i] is the key for the value at
// Values[i], so there will always be the same number of fields as
// values. Field order is the insertion order and is preserved by
// parsing and encoding; keys are always string typed.
//
// # Numbers
//
// Number values are placed under:
//
//   - Int64: if it is an integer (64-bit signed)
//   - Float64: if it is a floating point number (64-bit IEEE float)
//   - Number: as a string fallback if neither can represent it
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// # Navigating Nodes
//
// Nodes maintain parent-child relationships through Parent,
// ParentIndex and ParentField. Use Get to look up an object key and
// Visit for a pre/post-order walk.
//
// # Scalar Access
//
// The AsInt, AsFloat, AsBool and AsString accessors coerce a node to a
// scalar with a defined zero-value fallback when the node's type does
// not match; they never fail.
package ir
