package gomap

import (
	"reflect"
	"strings"
	"sync"
	"unsafe"

	"github.com/jtree-dev/jtree/ir"
)

// TagKey is the struct tag key read by this package.
const TagKey = "jtree"

// NodeMarshaler is the encode override capability: a type implementing
// it produces its node tree directly, bypassing the field walk.
type NodeMarshaler interface {
	MarshalNode() (*ir.Node, error)
}

// NodeUnmarshaler is the decode override capability: a type
// implementing it populates itself from a node tree directly.
type NodeUnmarshaler interface {
	UnmarshalNode(*ir.Node) error
}

// FieldOmitter lets a type suppress fields by name for every
// conversion it takes part in. Each returned name is qualified with
// the declaring type ("TypeName.Field") unless it already contains a
// dot, and joins the call's effective ignore set, so the suppression
// applies anywhere in the value being converted.
type FieldOmitter interface {
	OmitFields() []string
}

// fieldInfo describes one serializable struct field. Descriptors are
// computed once per type and cached.
type fieldInfo struct {
	// Name is the wire name (struct field name unless renamed by tag)
	Name string

	// Qualified is "DeclaringType.FieldName", matched against the
	// effective ignore set
	Qualified string

	// Index is the reflect field index path (flattened embedded
	// structs have len > 1)
	Index []int

	// Type is the declared Go type of the field
	Type reflect.Type

	// Include marks an unexported field forced in via the tag option
	Include bool

	// Unexported marks a field accessed through unsafe: either
	// unexported itself or promoted through an unexported embedded
	// struct
	Unexported bool
}

type typeInfo struct {
	Fields []fieldInfo

	// ByName indexes Fields by wire name for decoding
	ByName map[string]int

	// Omit holds the type-level excludes, already qualified
	Omit []string
}

var typeInfoCache sync.Map // reflect.Type -> *typeInfo

// infoOf returns the member table for a struct type. A race computing
// the same table twice is harmless; the first stored value wins.
func infoOf(t reflect.Type) *typeInfo {
	if v, ok := typeInfoCache.Load(t); ok {
		return v.(*typeInfo)
	}
	ti := computeTypeInfo(t)
	actual, _ := typeInfoCache.LoadOrStore(t, ti)
	return actual.(*typeInfo)
}

func computeTypeInfo(t reflect.Type) *typeInfo {
	ti := &typeInfo{
		ByName: map[string]int{},
	}
	addStructFields(ti, t, nil, false)
	ti.Omit = omitFieldsOf(t)
	return ti
}

// addStructFields appends descriptors for t's fields, flattening
// embedded structs. On a wire-name conflict the first declaration
// wins. viaUnexported marks a path that crosses an unexported embedded
// struct; fields promoted through one are exported members of the
// composite but reflect flags them read-only, so they go through the
// unsafe accessor.
func addStructFields(ti *typeInfo, t reflect.Type, parentIndex []int, viaUnexported bool) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		index := append(append([]int{}, parentIndex...), i)

		if f.Anonymous {
			// flatten embedded structs whatever the exportedness of the
			// type name; visibility is decided per promoted field, as
			// encoding/json does. Embedded pointers are left as ordinary
			// members since traversal would require nil checks at access
			// time.
			if f.Type.Kind() == reflect.Struct && f.Tag.Get(TagKey) == "" {
				addStructFields(ti, f.Type, index, viaUnexported || !f.IsExported())
				continue
			}
		}

		name, opts := parseTag(f.Tag.Get(TagKey))
		if name == "-" {
			// exclusion wins over any other option on the member
			continue
		}
		include := opts.has("include")

		if !f.IsExported() && !include {
			continue
		}

		fi := fieldInfo{
			Name:       f.Name,
			Qualified:  t.Name() + "." + f.Name,
			Index:      index,
			Type:       f.Type,
			Include:    include,
			Unexported: !f.IsExported() || viaUnexported,
		}
		if name != "" {
			fi.Name = name
		}
		if _, exists := ti.ByName[fi.Name]; exists {
			continue
		}
		ti.ByName[fi.Name] = len(ti.Fields)
		ti.Fields = append(ti.Fields, fi)
	}
}

// omitFieldsOf collects type-level excludes from the FieldOmitter
// capability, checking value then pointer receivers like the override
// capabilities.
func omitFieldsOf(t reflect.Type) []string {
	var om FieldOmitter
	if t.Implements(fieldOmitterType) {
		om = reflect.Zero(t).Interface().(FieldOmitter)
	} else if reflect.PointerTo(t).Implements(fieldOmitterType) {
		om = reflect.New(t).Interface().(FieldOmitter)
	} else {
		return nil
	}
	names := om.OmitFields()
	res := make([]string, 0, len(names))
	for _, name := range names {
		if !strings.Contains(name, ".") {
			name = t.Name() + "." + name
		}
		res = append(res, name)
	}
	return res
}

var fieldOmitterType = reflect.TypeOf((*FieldOmitter)(nil)).Elem()

type tagOpts []string

func (o tagOpts) has(opt string) bool {
	for _, v := range o {
		if v == opt {
			return true
		}
	}
	return false
}

// parseTag splits `jtree:"Name,opt1,opt2"` into the rename (may be
// empty) and the option list.
func parseTag(raw string) (string, tagOpts) {
	if raw == "" {
		return "", nil
	}
	parts := strings.Split(raw, ",")
	return parts[0], tagOpts(parts[1:])
}

// fieldValue returns the addressable value of the field described by
// fi within structVal. Unexported fields are rebound through unsafe so
// they can be read and written; this requires structVal to be
// addressable, which callers arrange.
func fieldValue(structVal reflect.Value, fi *fieldInfo) reflect.Value {
	fv := structVal.FieldByIndex(fi.Index)
	if !fi.Unexported {
		return fv
	}
	return reflect.NewAt(fv.Type(), unsafe.Pointer(fv.UnsafeAddr())).Elem()
}
