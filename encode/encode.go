package encode

import (
	"io"

	"github.com/signadot/svdpatch/ir"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/lexer"
)

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	yOpts := []yaml.EncodeOption{yaml.Indent(es.indent)}
	if es.format == JSONFormat {
		yOpts = append(yOpts, yaml.JSON())
	}
	d, err := yaml.MarshalWithOptions(ToYAML(node), yOpts...)
	if err != nil {
		return err
	}
	if es.colors != nil && es.format == YAMLFormat {
		d = []byte(es.colors.printer().PrintTokens(lexer.Tokenize(string(d))) + "\n")
	}
	_, err = w.Write(d)
	return err
}

// ToYAML converts node to values goccy/go-yaml marshals in order.
func ToYAML(node *ir.Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, field := range node.Fields {
			res[i] = yaml.MapItem{Key: ToYAML(field), Value: ToYAML(node.Values[i])}
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToYAML(elt)
		}
		return res
	default:
		return ir.ToAny(node)
	}
}
