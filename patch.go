package jtree

import (
	jsonpatch "github.com/evanphx/json-patch"

	"github.com/jtree-dev/jtree/encode"
	"github.com/jtree-dev/jtree/ir"
	"github.com/jtree-dev/jtree/parse"
)

// Patch applies an RFC 6902 JSON patch document to doc and returns
// the patched tree. doc is not modified.
func Patch(doc *ir.Node, patchJSON []byte) (*ir.Node, error) {
	p, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, err
	}
	text, err := encode.String(doc)
	if err != nil {
		return nil, err
	}
	patched, err := p.Apply([]byte(text))
	if err != nil {
		return nil, err
	}
	return parse.Parse(patched)
}

// Merge applies an RFC 7386 merge patch document to doc and returns
// the merged tree. doc is not modified.
func Merge(doc *ir.Node, mergeJSON []byte) (*ir.Node, error) {
	text, err := encode.String(doc)
	if err != nil {
		return nil, err
	}
	merged, err := jsonpatch.MergePatch([]byte(text), mergeJSON)
	if err != nil {
		return nil, err
	}
	return parse.Parse(merged)
}
