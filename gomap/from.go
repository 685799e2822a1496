package gomap

import (
	"fmt"
	"reflect"

	"github.com/jtree-dev/jtree/debug"
	"github.com/jtree-dev/jtree/ir"
)

// FromIR converts a node tree to a Go value. v must be a non-nil
// pointer to the target; decoding into a pre-existing instance is the
// normal mode of operation, and keys missing from an object node leave
// the corresponding fields at their pre-call values.
//
// A type implementing NodeUnmarshaler converts through it instead of
// the reflective field walk. A nil or null node leaves the target
// untouched.
//
// Scalar kind mismatches resolve to the ir accessors' fallback values
// rather than errors; this leniency is part of the contract.
func FromIR(node *ir.Node, v any) error {
	if v == nil {
		return &UnmarshalError{Message: "destination value cannot be nil"}
	}

	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Ptr {
		return &UnmarshalError{Message: "destination value must be a pointer"}
	}
	if val.IsNil() {
		return &UnmarshalError{Message: "destination pointer cannot be nil"}
	}

	if node == nil || node.Type == ir.NullType {
		return nil
	}

	if u, ok := v.(NodeUnmarshaler); ok {
		return u.UnmarshalNode(node)
	}

	return fromIRValue(node, val.Elem(), "")
}

// FromIRType decodes node against an explicitly supplied target type,
// constructing a fresh instance. A nil or null node yields a nil
// value.
func FromIRType(node *ir.Node, t reflect.Type) (any, error) {
	if node == nil || node.Type == ir.NullType {
		return nil, nil
	}
	ptr := reflect.New(t)
	if err := FromIR(node, ptr.Interface()); err != nil {
		return nil, err
	}
	return ptr.Elem().Interface(), nil
}

func fromIRValue(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node == nil {
		return nil
	}

	if val.Type() == nodeType {
		if val.CanSet() {
			val.Set(reflect.ValueOf(node))
		}
		return nil
	}

	if val.Kind() == reflect.Ptr {
		if node.Type == ir.NullType {
			if val.CanSet() {
				val.Set(reflect.Zero(val.Type()))
			}
			return nil
		}
		if val.IsNil() {
			if !val.CanSet() {
				return nil
			}
			val.Set(reflect.New(val.Type().Elem()))
		}
		if u, ok := val.Interface().(NodeUnmarshaler); ok {
			return u.UnmarshalNode(node)
		}
		return fromIRValue(node, val.Elem(), fieldPath)
	}

	if node.Type == ir.NullType {
		if val.CanSet() {
			val.Set(reflect.Zero(val.Type()))
		}
		return nil
	}

	if val.CanAddr() {
		if u, ok := val.Addr().Interface().(NodeUnmarshaler); ok {
			return u.UnmarshalNode(node)
		}
	}

	switch val.Kind() {
	case reflect.String:
		if val.CanSet() {
			val.SetString(node.AsString())
		}
		return nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		iv := node.AsInt()
		if val.OverflowInt(iv) {
			iv = 0
		}
		if val.CanSet() {
			val.SetInt(iv)
		}
		return nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		iv := node.AsInt()
		var uv uint64
		if iv > 0 {
			uv = uint64(iv)
		}
		if val.OverflowUint(uv) {
			uv = 0
		}
		if val.CanSet() {
			val.SetUint(uv)
		}
		return nil

	case reflect.Float32, reflect.Float64:
		if val.CanSet() {
			val.SetFloat(node.AsFloat())
		}
		return nil

	case reflect.Bool:
		if val.CanSet() {
			val.SetBool(node.AsBool())
		}
		return nil

	case reflect.Slice, reflect.Array:
		return fromIRSlice(node, val, fieldPath)

	case reflect.Map:
		return fromIRMap(node, val, fieldPath)

	case reflect.Struct:
		return fromIRStruct(node, val, fieldPath)

	case reflect.Interface:
		return fromIRInterface(node, val, fieldPath)

	default:
		debug.Errorf("cannot convert into unsupported type %s at %q", val.Type(), fieldPath)
		return nil
	}
}

// fromIRSlice decodes an array node into a slice or array. A
// non-array node is tolerated and leaves the target untouched.
func fromIRSlice(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.ArrayType {
		if debug.Gomap() {
			debug.Logf("expected array at %q, got %s\n", fieldPath, node.Type)
		}
		return nil
	}

	length := len(node.Values)
	if val.Kind() == reflect.Array {
		if val.Len() < length {
			length = val.Len()
		}
	} else {
		if !val.CanSet() {
			return nil
		}
		val.Set(reflect.MakeSlice(val.Type(), length, length))
	}

	for i := 0; i < length; i++ {
		elemPath := fmt.Sprintf("%s[%d]", fieldPath, i)
		if err := fromIRValue(node.Values[i], val.Index(i), elemPath); err != nil {
			return err
		}
	}
	return nil
}

// fromIRMap decodes an object node into a string-keyed map. Keys are
// copied as-is; values decode recursively against the declared value
// type.
func fromIRMap(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.ObjectType {
		if debug.Gomap() {
			debug.Logf("expected object at %q, got %s\n", fieldPath, node.Type)
		}
		return nil
	}

	typ := val.Type()
	if typ.Key().Kind() != reflect.String {
		debug.Errorf("cannot convert into unsupported map key type %s at %q", typ.Key(), fieldPath)
		return nil
	}
	if !val.CanSet() && val.IsNil() {
		return nil
	}
	if val.IsNil() {
		val.Set(reflect.MakeMap(typ))
	}

	for i, field := range node.Fields {
		key := field.String
		valueVal := reflect.New(typ.Elem()).Elem()
		if err := fromIRValue(node.Values[i], valueVal, fieldPath+"."+key); err != nil {
			return err
		}
		keyVal := reflect.ValueOf(key).Convert(typ.Key())
		val.SetMapIndex(keyVal, valueVal)
	}
	return nil
}

// fromIRStruct decodes an object node into a struct through the
// cached member table. Keys without a matching member are skipped;
// members without a matching key keep their values.
func fromIRStruct(node *ir.Node, val reflect.Value, fieldPath string) error {
	if node.Type != ir.ObjectType {
		if debug.Gomap() {
			debug.Logf("expected object at %q, got %s\n", fieldPath, node.Type)
		}
		return nil
	}

	ti := infoOf(val.Type())
	for i, field := range node.Fields {
		idx, ok := ti.ByName[field.String]
		if !ok {
			continue
		}
		fi := &ti.Fields[idx]
		fv := fieldValue(val, fi)
		if err := fromIRValue(node.Values[i], fv, fieldPath+"."+fi.Name); err != nil {
			return err
		}
	}
	return nil
}

// fromIRInterface materializes a node into an empty interface value,
// inferring the concrete Go type from the node type.
func fromIRInterface(node *ir.Node, val reflect.Value, fieldPath string) error {
	if val.NumMethod() != 0 {
		debug.Errorf("cannot convert into non-empty interface %s at %q", val.Type(), fieldPath)
		return nil
	}

	var concrete any
	switch node.Type {
	case ir.NullType:
		if val.CanSet() {
			val.Set(reflect.Zero(val.Type()))
		}
		return nil
	case ir.StringType:
		concrete = node.String
	case ir.BoolType:
		concrete = node.Bool
	case ir.NumberType:
		switch {
		case node.Int64 != nil:
			concrete = *node.Int64
		case node.Float64 != nil:
			concrete = *node.Float64
		default:
			concrete = node.AsFloat()
		}
	case ir.ArrayType:
		slice := make([]any, len(node.Values))
		for i, elemNode := range node.Values {
			elemVal := reflect.ValueOf(&slice[i]).Elem()
			if err := fromIRInterface(elemNode, elemVal, fmt.Sprintf("%s[%d]", fieldPath, i)); err != nil {
				return err
			}
		}
		concrete = slice
	case ir.ObjectType:
		m := make(map[string]any, len(node.Fields))
		for i, field := range node.Fields {
			var valueResult any
			valueVal := reflect.ValueOf(&valueResult).Elem()
			if err := fromIRInterface(node.Values[i], valueVal, fieldPath+"."+field.String); err != nil {
				return err
			}
			m[field.String] = valueResult
		}
		concrete = m
	default:
		return &UnmarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("unsupported node type for interface{}: %s", node.Type),
		}
	}

	if val.CanSet() {
		val.Set(reflect.ValueOf(concrete))
	}
	return nil
}
