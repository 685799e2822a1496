package gomap

import (
	"fmt"
	"reflect"

	"github.com/jtree-dev/jtree/debug"
	"github.com/jtree-dev/jtree/ir"
)

// ToIR converts a Go value to a node tree.
//
// A nil value produces a nil (absent) node. A value that is already a
// *ir.Node passes through unchanged. A type implementing NodeMarshaler
// converts through it instead of the reflective field walk.
//
// Unsupported kinds (func, chan, complex, unsafe pointer) are reported
// through debug.Errorf and yield an absent result rather than an
// error; callers that care must check for nil.
func ToIR(v any, opts ...MapOption) (*ir.Node, error) {
	cfg := newMapConfig(opts...)
	if v == nil {
		return nil, nil
	}
	ign := newIgnoreSet(cfg.ignore)
	return toIRValue(reflect.ValueOf(v), "", ign)
}

var nodeType = reflect.TypeOf((*ir.Node)(nil))

// toIRValue converts a reflect.Value to a node. fieldPath is used for
// diagnostics (e.g. "person.address.street"). A nil result with nil
// error means absent.
func toIRValue(val reflect.Value, fieldPath string, ign ignoreSet) (*ir.Node, error) {
	if !val.IsValid() {
		return nil, nil
	}

	if val.Type() == nodeType {
		if val.IsNil() {
			return nil, nil
		}
		return val.Interface().(*ir.Node), nil
	}

	if node, ok, err := marshalOverride(val); ok {
		return node, err
	}

	switch val.Kind() {
	case reflect.Ptr, reflect.Interface:
		if val.IsNil() {
			return nil, nil
		}
		return toIRValue(val.Elem(), fieldPath, ign)

	case reflect.String:
		return ir.FromString(val.String()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(val.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		// may overflow for very large uint64, the IR carries int64
		return ir.FromInt(int64(val.Uint())), nil

	case reflect.Float32, reflect.Float64:
		return ir.FromFloat(val.Float()), nil

	case reflect.Bool:
		return ir.FromBool(val.Bool()), nil

	case reflect.Slice, reflect.Array:
		return toIRSlice(val, fieldPath, ign)

	case reflect.Map:
		return toIRMap(val, fieldPath, ign)

	case reflect.Struct:
		return toIRStruct(val, fieldPath, ign)

	default:
		debug.Errorf("cannot convert unsupported type %s at %q", val.Type(), fieldPath)
		return nil, nil
	}
}

// marshalOverride dispatches to the NodeMarshaler capability if the
// value's type (or its pointer type) carries one.
func marshalOverride(val reflect.Value) (*ir.Node, bool, error) {
	if val.Kind() == reflect.Ptr || val.Kind() == reflect.Interface {
		if val.IsNil() {
			return nil, false, nil
		}
	}
	if !val.CanInterface() {
		return nil, false, nil
	}
	if m, ok := val.Interface().(NodeMarshaler); ok {
		node, err := m.MarshalNode()
		return node, true, err
	}
	if val.Kind() == reflect.Ptr {
		return nil, false, nil
	}
	// check the pointer type too, copying when the value is not
	// addressable
	if !reflect.PointerTo(val.Type()).Implements(nodeMarshalerType) {
		return nil, false, nil
	}
	var ptr reflect.Value
	if val.CanAddr() {
		ptr = val.Addr()
	} else {
		ptr = reflect.New(val.Type())
		ptr.Elem().Set(val)
	}
	m := ptr.Interface().(NodeMarshaler)
	node, err := m.MarshalNode()
	return node, true, err
}

var nodeMarshalerType = reflect.TypeOf((*NodeMarshaler)(nil)).Elem()

// toIRSlice converts a slice or array to an array node. An element
// that converts to absent is kept as a null placeholder so slot
// positions stay stable.
func toIRSlice(val reflect.Value, fieldPath string, ign ignoreSet) (*ir.Node, error) {
	length := val.Len()
	elements := make([]*ir.Node, 0, length)

	for i := 0; i < length; i++ {
		elemPath := fmt.Sprintf("%s[%d]", fieldPath, i)
		elemNode, err := toIRValue(val.Index(i), elemPath, ign)
		if err != nil {
			return nil, err
		}
		if elemNode == nil {
			elemNode = ir.Null()
		}
		elements = append(elements, elemNode)
	}

	return ir.FromSlice(elements), nil
}

// toIRMap converts a string-keyed map to an object node. Keys are
// emitted in sorted order for output stability. Entries whose value
// converts to absent are skipped, so a nil member never appears as an
// explicit null key.
func toIRMap(val reflect.Value, fieldPath string, ign ignoreSet) (*ir.Node, error) {
	if val.IsNil() {
		return nil, nil
	}

	if val.Type().Key().Kind() != reflect.String {
		return nil, &MarshalError{
			FieldPath: fieldPath,
			Message:   fmt.Sprintf("map keys must be strings, got %s", val.Type().Key()),
		}
	}

	irMap := make(map[string]*ir.Node)
	iter := val.MapRange()
	for iter.Next() {
		key := iter.Key().String()
		valuePath := fieldPath + "." + key
		valueNode, err := toIRValue(iter.Value(), valuePath, ign)
		if err != nil {
			return nil, err
		}
		if valueNode == nil {
			continue
		}
		irMap[key] = valueNode
	}

	return ir.FromMap(irMap), nil
}

// toIRStruct converts a struct to an object node, walking the cached
// member table in declaration order. The result is always an object
// node, possibly empty.
func toIRStruct(val reflect.Value, fieldPath string, ign ignoreSet) (*ir.Node, error) {
	ti := infoOf(val.Type())
	ign.add(ti.Omit...)

	// unexported force-included fields are read through unsafe, which
	// needs an addressable struct
	if !val.CanAddr() && hasUnexported(ti) {
		tmp := reflect.New(val.Type()).Elem()
		tmp.Set(val)
		val = tmp
	}

	kvs := make([]ir.KeyVal, 0, len(ti.Fields))
	for i := range ti.Fields {
		fi := &ti.Fields[i]
		if ign.has(fi.Qualified) {
			continue
		}
		fv := fieldValue(val, fi)
		if isAbsent(fv) {
			continue
		}
		fieldNode, err := toIRValue(fv, fieldPath+"."+fi.Name, ign)
		if err != nil {
			return nil, err
		}
		if fieldNode == nil {
			continue
		}
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(fi.Name), Val: fieldNode})
	}

	return ir.FromKeyVals(kvs), nil
}

func hasUnexported(ti *typeInfo) bool {
	for i := range ti.Fields {
		if ti.Fields[i].Unexported {
			return true
		}
	}
	return false
}

// isAbsent reports whether a member value should be omitted entirely.
func isAbsent(val reflect.Value) bool {
	switch val.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		return val.IsNil()
	default:
		return false
	}
}
