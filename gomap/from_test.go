package gomap

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jtree-dev/jtree/ir"
)

func TestFromIRPreconditions(t *testing.T) {
	node := ir.FromInt(1)
	if err := FromIR(node, nil); err == nil {
		t.Errorf("expected error for nil destination")
	}
	var x int
	if err := FromIR(node, x); err == nil {
		t.Errorf("expected error for non-pointer destination")
	}
	var p *int
	if err := FromIR(node, p); err == nil {
		t.Errorf("expected error for nil pointer destination")
	}
}

func TestFromIRNullIsIdentity(t *testing.T) {
	dst := basic{IntTest: 9, BoolTest: true}
	if err := FromIR(nil, &dst); err != nil {
		t.Fatalf("FromIR(nil) error = %v", err)
	}
	if err := FromIR(ir.Null(), &dst); err != nil {
		t.Fatalf("FromIR(null) error = %v", err)
	}
	want := basic{IntTest: 9, BoolTest: true}
	if diff := cmp.Diff(want, dst); diff != "" {
		t.Errorf("destination changed (-want +got):\n%s", diff)
	}
}

func TestFromIRRoundTrip(t *testing.T) {
	type inner struct {
		Name string
	}
	type outer struct {
		ID    int
		Score float64
		Tags  []string
		Inner inner
		Ptr   *inner
		Meta  map[string]int
	}
	src := outer{
		ID:    3,
		Score: 0.5,
		Tags:  []string{"a", "b"},
		Inner: inner{Name: "n"},
		Ptr:   &inner{Name: "p"},
		Meta:  map[string]int{"k": 1},
	}
	node, err := ToIR(src)
	if err != nil {
		t.Fatalf("ToIR() error = %v", err)
	}
	var got outer
	if err := FromIR(node, &got); err != nil {
		t.Fatalf("FromIR() error = %v", err)
	}
	if diff := cmp.Diff(src, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFromIRMissingKeysKeepValues(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("IntTest"), Val: ir.FromInt(5)},
	})
	dst := basic{IntTest: 1, BoolTest: true}
	if err := FromIR(node, &dst); err != nil {
		t.Fatalf("FromIR() error = %v", err)
	}
	if dst.IntTest != 5 {
		t.Errorf("IntTest = %d, want 5", dst.IntTest)
	}
	if !dst.BoolTest {
		t.Errorf("BoolTest reset; missing keys must leave fields alone")
	}
}

func TestFromIRUnknownKeysSkipped(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("Nope"), Val: ir.FromInt(5)},
		{Key: ir.FromString("IntTest"), Val: ir.FromInt(2)},
	})
	var dst basic
	if err := FromIR(node, &dst); err != nil {
		t.Fatalf("FromIR() error = %v", err)
	}
	if dst.IntTest != 2 {
		t.Errorf("IntTest = %d, want 2", dst.IntTest)
	}
}

func TestFromIRNullZeroesField(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("IntTest"), Val: ir.Null()},
	})
	dst := basic{IntTest: 7}
	if err := FromIR(node, &dst); err != nil {
		t.Fatalf("FromIR() error = %v", err)
	}
	if dst.IntTest != 0 {
		t.Errorf("IntTest = %d, want 0 after explicit null", dst.IntTest)
	}
}

func TestFromIRLenientCoercion(t *testing.T) {
	type loose struct {
		N int
		S string
		B bool
		F float64
	}
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("N"), Val: ir.FromString("17")},
		{Key: ir.FromString("S"), Val: ir.FromInt(4)},
		{Key: ir.FromString("B"), Val: ir.FromInt(1)},
		{Key: ir.FromString("F"), Val: ir.FromString("not a number")},
	})
	var dst loose
	if err := FromIR(node, &dst); err != nil {
		t.Fatalf("FromIR() error = %v", err)
	}
	want := loose{N: 17, S: "4", B: true, F: 0}
	if diff := cmp.Diff(want, dst); diff != "" {
		t.Errorf("coercion mismatch (-want +got):\n%s", diff)
	}
}

func TestFromIRPointerAllocation(t *testing.T) {
	type holder struct {
		P *int
	}
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("P"), Val: ir.FromInt(8)},
	})
	var dst holder
	if err := FromIR(node, &dst); err != nil {
		t.Fatalf("FromIR() error = %v", err)
	}
	if dst.P == nil || *dst.P != 8 {
		t.Errorf("P = %v, want pointer to 8", dst.P)
	}

	// explicit null resets an allocated pointer
	null := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("P"), Val: ir.Null()},
	})
	if err := FromIR(null, &dst); err != nil {
		t.Fatalf("FromIR() error = %v", err)
	}
	if dst.P != nil {
		t.Errorf("P = %v, want nil after explicit null", dst.P)
	}
}

func TestFromIRIncludeUnexported(t *testing.T) {
	src := counter{Public: 1, hidden: 2, secret: 3}
	node, err := ToIR(src)
	if err != nil {
		t.Fatalf("ToIR() error = %v", err)
	}
	var got counter
	if err := FromIR(node, &got); err != nil {
		t.Fatalf("FromIR() error = %v", err)
	}
	if got.Public != 1 || got.hidden != 2 {
		t.Errorf("got = %+v, want Public=1 hidden=2", got)
	}
	if got.secret != 0 {
		t.Errorf("secret = %d, want 0; plain unexported fields stay out", got.secret)
	}
}

func TestFromIROverride(t *testing.T) {
	t.Run("top level", func(t *testing.T) {
		var w wire
		if err := FromIR(ir.FromString("w#5"), &w); err != nil {
			t.Fatalf("FromIR() error = %v", err)
		}
		if w.Handle != "w" || w.Count != 5 {
			t.Errorf("w = %+v", w)
		}
	})
	t.Run("nested field", func(t *testing.T) {
		type holder struct {
			W wire
		}
		node := ir.FromKeyVals([]ir.KeyVal{
			{Key: ir.FromString("W"), Val: ir.FromString("x#9")},
		})
		var h holder
		if err := FromIR(node, &h); err != nil {
			t.Fatalf("FromIR() error = %v", err)
		}
		if h.W.Handle != "x" || h.W.Count != 9 {
			t.Errorf("h.W = %+v", h.W)
		}
	})
}

func TestFromIRInterface(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("s"), Val: ir.FromString("hi")},
		{Key: ir.FromString("n"), Val: ir.FromInt(2)},
		{Key: ir.FromString("f"), Val: ir.FromFloat(0.5)},
		{Key: ir.FromString("b"), Val: ir.FromBool(true)},
		{Key: ir.FromString("z"), Val: ir.Null()},
		{Key: ir.FromString("l"), Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.Null()})},
	})
	var dst any
	if err := FromIR(node, &dst); err != nil {
		t.Fatalf("FromIR() error = %v", err)
	}
	want := map[string]any{
		"s": "hi",
		"n": int64(2),
		"f": 0.5,
		"b": true,
		"z": nil,
		"l": []any{int64(1), nil},
	}
	if diff := cmp.Diff(want, dst); diff != "" {
		t.Errorf("interface materialization mismatch (-want +got):\n%s", diff)
	}
}

func TestFromIRToleratesShapeMismatch(t *testing.T) {
	type holder struct {
		List []int
		Map  map[string]int
	}
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("List"), Val: ir.FromInt(1)},
		{Key: ir.FromString("Map"), Val: ir.FromBool(true)},
	})
	dst := holder{List: []int{9}, Map: map[string]int{"k": 9}}
	if err := FromIR(node, &dst); err != nil {
		t.Fatalf("FromIR() error = %v", err)
	}
	if len(dst.List) != 1 || dst.List[0] != 9 {
		t.Errorf("List = %v, want untouched [9]", dst.List)
	}
	if dst.Map["k"] != 9 {
		t.Errorf("Map = %v, want untouched", dst.Map)
	}
}

func TestFromIRArrayTruncates(t *testing.T) {
	node := ir.FromSlice([]*ir.Node{
		ir.FromInt(1), ir.FromInt(2), ir.FromInt(3),
	})
	var arr [2]int
	if err := FromIR(node, &arr); err != nil {
		t.Fatalf("FromIR() error = %v", err)
	}
	if arr != [2]int{1, 2} {
		t.Errorf("arr = %v, want [1 2]", arr)
	}
}

func TestFromIRTypedMapKey(t *testing.T) {
	type key string
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("a"), Val: ir.FromInt(1)},
	})
	var m map[key]int
	if err := FromIR(node, &m); err != nil {
		t.Fatalf("FromIR() error = %v", err)
	}
	if m["a"] != 1 {
		t.Errorf("m = %v", m)
	}
}

func TestFromIRType(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("IntTest"), Val: ir.FromInt(4)},
		{Key: ir.FromString("BoolTest"), Val: ir.FromBool(true)},
	})
	got, err := FromIRType(node, reflect.TypeOf(basic{}))
	if err != nil {
		t.Fatalf("FromIRType() error = %v", err)
	}
	want := basic{IntTest: 4, BoolTest: true}
	if diff := cmp.Diff(want, got.(basic)); diff != "" {
		t.Errorf("FromIRType mismatch (-want +got):\n%s", diff)
	}

	absent, err := FromIRType(nil, reflect.TypeOf(basic{}))
	if err != nil {
		t.Fatalf("FromIRType(nil) error = %v", err)
	}
	if absent != nil {
		t.Errorf("FromIRType(nil) = %v, want nil", absent)
	}
}

func TestFromIREmbedded(t *testing.T) {
	// fields promoted through an unexported embedded struct decode via
	// the unsafe accessor since reflect flags them read-only
	type base struct {
		ID int
	}
	type derived struct {
		base
		Name string
	}
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("ID"), Val: ir.FromInt(7)},
		{Key: ir.FromString("Name"), Val: ir.FromString("n")},
	})
	var got derived
	if err := FromIR(node, &got); err != nil {
		t.Fatalf("FromIR() error = %v", err)
	}
	if got.ID != 7 || got.Name != "n" {
		t.Errorf("got = %+v, want ID=7 Name=n", got)
	}
}

func TestFromIRNodePassThrough(t *testing.T) {
	type holder struct {
		Raw *ir.Node
	}
	raw := ir.FromSlice([]*ir.Node{ir.FromInt(1)})
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("Raw"), Val: raw},
	})
	var h holder
	if err := FromIR(node, &h); err != nil {
		t.Fatalf("FromIR() error = %v", err)
	}
	if h.Raw != raw {
		t.Errorf("Raw not passed through as the node itself")
	}
}
