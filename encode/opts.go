package encode

import "github.com/jtree-dev/jtree/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// Pretty enables indented multi-line output.
func Pretty(v bool) EncodeOption {
	return func(es *EncState) { es.pretty = v }
}

// Indent sets the number of spaces per indentation level. The default
// is 2. Only meaningful with Pretty(true).
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c != nil {
			es.Color = c.Color
		}
	}
}
