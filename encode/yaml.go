package encode

import (
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/jtree-dev/jtree/ir"
)

func encodeYAML(node *ir.Node, w io.Writer) error {
	v, err := toYAMLValue(node)
	if err != nil {
		return err
	}
	d, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return writeString(w, string(d))
}

func toYAMLValue(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.StringType:
		return node.String, nil
	case ir.NumberType:
		switch {
		case node.Int64 != nil:
			return *node.Int64, nil
		case node.Float64 != nil:
			return *node.Float64, nil
		default:
			if f, err := strconv.ParseFloat(node.Number, 64); err == nil {
				return f, nil
			}
			return nil, fmt.Errorf("%w: number node has no value", ErrEncoding)
		}
	case ir.ArrayType:
		elems := make([]any, 0, len(node.Values))
		for _, v := range node.Values {
			e, err := toYAMLValue(v)
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
		}
		return elems, nil
	case ir.ObjectType:
		ms := make(yaml.MapSlice, 0, len(node.Fields))
		for i, field := range node.Fields {
			v, err := toYAMLValue(node.Values[i])
			if err != nil {
				return nil, err
			}
			ms = append(ms, yaml.MapItem{Key: field.String, Value: v})
		}
		return ms, nil
	default:
		return nil, fmt.Errorf("%w: cannot encode node type %s", ErrEncoding, node.Type)
	}
}
