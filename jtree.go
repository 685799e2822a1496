// Package jtree converts between Go values, JSON/YAML text, and the
// ir.Node tree representation shared by both.
//
// The root package is a thin surface over the parse, encode and gomap
// packages; use those directly for finer control.
package jtree

import (
	"fmt"
	"reflect"

	"github.com/jtree-dev/jtree/encode"
	"github.com/jtree-dev/jtree/format"
	"github.com/jtree-dev/jtree/gomap"
	"github.com/jtree-dev/jtree/ir"
	"github.com/jtree-dev/jtree/parse"
)

// ToNode converts v to a node tree. Fields named in ignore (qualified
// as "TypeName.Field") are suppressed for this call only. The result
// is nil when v is nil or converts to nothing.
func ToNode(v any, ignore ...string) (*ir.Node, error) {
	return gomap.ToIR(v, gomap.Ignore(ignore...))
}

// ToJSON renders v as JSON text, compact unless pretty is set. A nil
// or absent v yields the empty string.
func ToJSON(v any, pretty bool, ignore ...string) (string, error) {
	node, err := ToNode(v, ignore...)
	if err != nil {
		return "", err
	}
	if node == nil {
		return "", nil
	}
	return encode.String(node, encode.Pretty(pretty))
}

// ToYAML renders v as YAML text.
func ToYAML(v any, ignore ...string) (string, error) {
	node, err := ToNode(v, ignore...)
	if err != nil {
		return "", err
	}
	if node == nil {
		return "", nil
	}
	return encode.String(node, encode.EncodeFormat(format.YAMLFormat))
}

// FromJSON decodes JSON text (string or []byte) or a node tree into a
// fresh T.
func FromJSON[T any](src any) (T, error) {
	var res T
	node, err := sourceNode(src, format.JSONFormat)
	if err != nil {
		return res, err
	}
	err = gomap.FromIR(node, &res)
	return res, err
}

// FromJSONInto decodes JSON text (string or []byte) or a node tree
// into an existing instance; dst must be a non-nil pointer. Keys
// missing from the input leave the corresponding fields untouched.
func FromJSONInto(src any, dst any) error {
	node, err := sourceNode(src, format.JSONFormat)
	if err != nil {
		return err
	}
	return gomap.FromIR(node, dst)
}

// FromJSONType decodes JSON text or a node tree against an explicitly
// supplied target type.
func FromJSONType(src any, t reflect.Type) (any, error) {
	node, err := sourceNode(src, format.JSONFormat)
	if err != nil {
		return nil, err
	}
	return gomap.FromIRType(node, t)
}

// FromYAML decodes YAML text (string or []byte) or a node tree into a
// fresh T.
func FromYAML[T any](src any) (T, error) {
	var res T
	node, err := sourceNode(src, format.YAMLFormat)
	if err != nil {
		return res, err
	}
	err = gomap.FromIR(node, &res)
	return res, err
}

// ToBytes marshals a fixed-layout value to its little-endian byte
// image. Exact round trip on one platform; not a portable format.
func ToBytes(v any) ([]byte, error) {
	return gomap.ToBytes(v)
}

// FromBytes unmarshals a byte image produced by ToBytes.
func FromBytes[T any](data []byte) (T, error) {
	var res T
	err := gomap.FromBytes(data, &res)
	return res, err
}

func sourceNode(src any, f format.Format) (*ir.Node, error) {
	switch t := src.(type) {
	case *ir.Node:
		return t, nil
	case []byte:
		return parse.Parse(t, parse.ParseFormat(f))
	case string:
		return parse.Parse([]byte(t), parse.ParseFormat(f))
	default:
		return nil, fmt.Errorf("cannot use %T as a decode source", src)
	}
}
