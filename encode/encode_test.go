package encode

import (
	"strings"
	"testing"

	"github.com/jtree-dev/jtree/format"
	"github.com/jtree-dev/jtree/ir"
)

func TestEncodeCompact(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		want string
	}{
		{"null", ir.Null(), `null`},
		{"bool", ir.FromBool(true), `true`},
		{"int", ir.FromInt(-42), `-42`},
		{"float", ir.FromFloat(1.5), `1.5`},
		{"integral float keeps fraction", ir.FromFloat(2), `2.0`},
		{"string", ir.FromString("hi"), `"hi"`},
		{"string escapes", ir.FromString("a\"b\n"), `"a\"b\n"`},
		{"empty array", ir.FromSlice(nil), `[]`},
		{"array", ir.FromSlice([]*ir.Node{ir.FromInt(3), ir.FromInt(1), ir.FromInt(2)}), `[3,1,2]`},
		{"empty object", ir.FromKeyVals(nil), `{}`},
		{
			"object order",
			ir.FromKeyVals([]ir.KeyVal{
				{Key: ir.FromString("z"), Val: ir.FromInt(1)},
				{Key: ir.FromString("a"), Val: ir.FromBool(false)},
			}),
			`{"z":1,"a":false}`,
		},
		{"nil node", nil, `null`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := String(tt.node)
			if err != nil {
				t.Fatalf("String() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodePretty(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("a"), Val: ir.FromInt(1)},
		{Key: ir.FromString("b"), Val: ir.FromSlice([]*ir.Node{ir.FromInt(2)})},
	})
	want := strings.Join([]string{
		`{`,
		`  "a": 1,`,
		`  "b": [`,
		`    2`,
		`  ]`,
		`}`,
	}, "\n")
	got, err := String(node, Pretty(true))
	if err != nil {
		t.Fatalf("String() error = %v", err)
	}
	if got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeIndent(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("a"), Val: ir.FromInt(1)},
	})
	got, err := String(node, Pretty(true), Indent(4))
	if err != nil {
		t.Fatalf("String() error = %v", err)
	}
	want := "{\n    \"a\": 1\n}"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestEncodeNaN(t *testing.T) {
	f := 1.0
	f = f / (f - 1) // +Inf
	if _, err := String(ir.FromFloat(f)); err == nil {
		t.Errorf("expected error encoding infinity")
	}
}

func TestEncodeYAML(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("z"), Val: ir.FromInt(1)},
		{Key: ir.FromString("a"), Val: ir.FromSlice([]*ir.Node{ir.FromString("x")})},
	})
	got, err := String(node, EncodeFormat(format.YAMLFormat))
	if err != nil {
		t.Fatalf("String() error = %v", err)
	}
	want := "z: 1\na:\n- x\n"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMustStringPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("MustString did not panic")
		}
	}()
	bad := &ir.Node{Type: ir.NumberType} // no value
	MustString(bad)
}

func TestColorsPassThrough(t *testing.T) {
	// a nil palette from AutoColors must leave output unchanged
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("a"), Val: ir.FromInt(1)},
	})
	got, err := String(node, EncodeColors(nil))
	if err != nil {
		t.Fatalf("String() error = %v", err)
	}
	if got != `{"a":1}` {
		t.Errorf("String() = %q", got)
	}
}
