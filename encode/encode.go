package encode

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/jtree-dev/jtree/format"
	"github.com/jtree-dev/jtree/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int
	pretty        bool

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		node = ir.Null()
	}
	if es.format.IsYAML() {
		return encodeYAML(node, w)
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		return writeValue(w, es, node.Type, "null")
	case ir.BoolType:
		return writeValue(w, es, node.Type, strconv.FormatBool(node.Bool))
	case ir.NumberType:
		lit, err := numberLiteral(node)
		if err != nil {
			return err
		}
		return writeValue(w, es, node.Type, lit)
	case ir.StringType:
		quoted, err := json.Marshal(node.String)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrEncoding, err)
		}
		return writeValue(w, es, node.Type, string(quoted))
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.ObjectType:
		return encodeObject(node, w, es)
	default:
		return fmt.Errorf("%w: cannot encode node type %s", ErrEncoding, node.Type)
	}
}

// numberLiteral renders a number node as a JSON literal. NaN and the
// infinities have no JSON representation and are rejected.
func numberLiteral(node *ir.Node) (string, error) {
	switch {
	case node.Int64 != nil:
		return strconv.FormatInt(*node.Int64, 10), nil
	case node.Float64 != nil:
		f := *node.Float64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return "", fmt.Errorf("%w: %v is not representable", ErrEncoding, f)
		}
		lit := strconv.FormatFloat(f, 'g', -1, 64)
		// keep integral floats recognizable as numbers with a fraction
		if !strings.ContainsAny(lit, ".eE") {
			lit += ".0"
		}
		return lit, nil
	case node.Number != "":
		return node.Number, nil
	default:
		return "", fmt.Errorf("%w: number node has no value", ErrEncoding)
	}
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, node.Type, "["); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeSep(w, es, node.Type, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if len(node.Values) > 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, node.Type, "]")
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, node.Type, "{"); err != nil {
		return err
	}
	es.depth++
	for i, field := range node.Fields {
		if i > 0 {
			if err := writeSep(w, es, node.Type, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		quoted, err := json.Marshal(field.String)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrEncoding, err)
		}
		if err := writeField(w, es, string(quoted)); err != nil {
			return err
		}
		sep := ":"
		if es.pretty {
			sep = ": "
		}
		if err := writeSep(w, es, node.Type, sep); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if len(node.Fields) > 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, node.Type, "}")
}

// Helper functions for writing

func writeNL(w io.Writer, es *EncState) error {
	if !es.pretty {
		return nil
	}
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	return writeString(w, "\n"+indentString)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeValue(w io.Writer, es *EncState, t ir.Type, s string) error {
	if es.Color != nil {
		s = es.Color(t, ValueColor, s)
	}
	return writeString(w, s)
}

func writeField(w io.Writer, es *EncState, s string) error {
	if es.Color != nil {
		s = es.Color(ir.ObjectType, FieldColor, s)
	}
	return writeString(w, s)
}

func writeSep(w io.Writer, es *EncState, t ir.Type, s string) error {
	if es.Color != nil {
		s = es.Color(t, SepColor, s)
	}
	return writeString(w, s)
}
