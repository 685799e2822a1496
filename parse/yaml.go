package parse

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/jtree-dev/jtree/ir"
)

func parseYAML(data []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ir.ErrParse, err)
	}
	return fromYAMLValue(v)
}

func fromYAMLValue(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(t), nil
	case string:
		return ir.FromString(t), nil
	case int:
		return ir.FromInt(int64(t)), nil
	case int64:
		return ir.FromInt(t), nil
	case uint64:
		if t > 1<<63-1 {
			return ir.FromFloat(float64(t)), nil
		}
		return ir.FromInt(int64(t)), nil
	case float64:
		return ir.FromFloat(t), nil
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, 0, len(t))
		for _, item := range t {
			key, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("%w: mapping key %v is not a string", ir.ErrParse, item.Key)
			}
			val, err := fromYAMLValue(item.Value)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, ir.KeyVal{Key: ir.FromString(key), Val: val})
		}
		return ir.FromKeyVals(kvs), nil
	case []any:
		elems := make([]*ir.Node, 0, len(t))
		for _, e := range t {
			elem, err := fromYAMLValue(e)
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
		}
		return ir.FromSlice(elems), nil
	default:
		return nil, fmt.Errorf("%w: unsupported yaml value %T", ir.ErrParse, v)
	}
}
