package parse

import "github.com/jtree-dev/jtree/format"

type ParseOption func(*parseState)

type parseState struct {
	format format.Format
}

// ParseFormat selects the input text format. The default is JSON.
func ParseFormat(f format.Format) ParseOption {
	return func(ps *parseState) { ps.format = f }
}

// FormatFromOpts extracts the format from parse options.
func FormatFromOpts(opts ...ParseOption) format.Format {
	ps := &parseState{}
	for _, opt := range opts {
		opt(ps)
	}
	return ps.format
}
