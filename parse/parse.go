package parse

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/jtree-dev/jtree/format"
	"github.com/jtree-dev/jtree/ir"
)

// Parse reads data into an ir.Node tree. The input format defaults to
// JSON and can be switched with ParseFormat.
func Parse(data []byte, opts ...ParseOption) (*ir.Node, error) {
	ps := &parseState{}
	for _, opt := range opts {
		opt(ps)
	}
	if ps.format == format.YAMLFormat {
		return parseYAML(data)
	}
	return parseJSON(data)
}

func parseJSON(data []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty input", ir.ErrParse)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ir.ErrParse, err)
	}
	node, err := parseValue(dec, tok)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after top-level value", ir.ErrParse)
	}
	return node, nil
}

func parseValue(dec *json.Decoder, tok json.Token) (*ir.Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		default:
			return nil, fmt.Errorf("%w: unexpected %q", ir.ErrParse, t.String())
		}
	case string:
		return ir.FromString(t), nil
	case bool:
		return ir.FromBool(t), nil
	case json.Number:
		return numberNode(t), nil
	case nil:
		return ir.Null(), nil
	default:
		return nil, fmt.Errorf("%w: unexpected token %v", ir.ErrParse, tok)
	}
}

// numberNode keeps int64 when the literal is integral, falls back to
// float64, and keeps the raw literal when neither fits.
func numberNode(num json.Number) *ir.Node {
	if i, err := strconv.ParseInt(num.String(), 10, 64); err == nil {
		return ir.FromInt(i)
	}
	if f, err := num.Float64(); err == nil {
		return ir.FromFloat(f)
	}
	return &ir.Node{Type: ir.NumberType, Number: num.String()}
}

func parseObject(dec *json.Decoder) (*ir.Node, error) {
	kvs := []ir.KeyVal{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ir.ErrParse, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key %v is not a string", ir.ErrParse, keyTok)
		}
		valTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ir.ErrParse, err)
		}
		val, err := parseValue(dec, valTok)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(key), Val: val})
	}
	// consume the closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ir.ErrParse, err)
	}
	return ir.FromKeyVals(kvs), nil
}

func parseArray(dec *json.Decoder) (*ir.Node, error) {
	elems := []*ir.Node{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ir.ErrParse, err)
		}
		elem, err := parseValue(dec, tok)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ir.ErrParse, err)
	}
	return ir.FromSlice(elems), nil
}
