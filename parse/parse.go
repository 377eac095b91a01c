package parse

import (
	"fmt"
	"math"

	"github.com/signadot/svdpatch/debug"
	"github.com/signadot/svdpatch/ir"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

type parseOpts struct {
	filename string
}

type ParseOption func(*parseOpts)

// ParseFilename names the source in error messages.
func ParseFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

// Parse decodes a single YAML (or JSON) document. Mapping order and the
// scalar type of mapping keys are kept, so `7: x` has an integer key.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, opt := range opts {
		opt(pOpts)
	}
	f, err := parser.ParseBytes(d, 0)
	if err != nil {
		return nil, pOpts.wrap(err)
	}
	var body ast.Node
	for _, doc := range f.Docs {
		if doc == nil || doc.Body == nil {
			continue
		}
		if body != nil {
			return nil, pOpts.wrap(ErrMultiDoc)
		}
		body = doc.Body
	}
	if body == nil {
		return ir.Null(), nil
	}
	st := &walkState{anchors: map[string]*ir.Node{}}
	res, err := st.node(body)
	if err != nil {
		return nil, pOpts.wrap(err)
	}
	if debug.Parse() {
		debug.Logf("parsed %s: %s\n", pOpts.name(), debug.Tony{Node: res})
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

func (o *parseOpts) name() string {
	if o.filename == "" {
		return "<input>"
	}
	return o.filename
}

func (o *parseOpts) wrap(err error) error {
	return fmt.Errorf("%w: %s: %w", ErrParse, o.name(), err)
}

type walkState struct {
	anchors map[string]*ir.Node
}

func (st *walkState) node(n ast.Node) (*ir.Node, error) {
	switch x := n.(type) {
	case nil:
		return ir.Null(), nil
	case *ast.NullNode, *ast.CommentGroupNode:
		return ir.Null(), nil
	case *ast.BoolNode:
		return ir.FromBool(x.Value), nil
	case *ast.IntegerNode:
		return fromInteger(x.Value)
	case *ast.FloatNode:
		return ir.FromFloat(x.Value), nil
	case *ast.InfinityNode:
		return ir.FromFloat(x.Value), nil
	case *ast.NanNode:
		return ir.FromFloat(math.NaN()), nil
	case *ast.StringNode:
		return ir.FromString(x.Value), nil
	case *ast.LiteralNode:
		if x.Value == nil {
			return ir.FromString(""), nil
		}
		return ir.FromString(x.Value.Value), nil
	case *ast.MergeKeyNode:
		return ir.FromString("<<"), nil
	case *ast.MappingKeyNode:
		return st.node(x.Value)
	case *ast.TagNode:
		if x.GetToken().Value == "!!str" && x.Value != nil {
			return ir.FromString(x.Value.GetToken().Value), nil
		}
		return st.node(x.Value)
	case *ast.AnchorNode:
		res, err := st.node(x.Value)
		if err != nil {
			return nil, err
		}
		st.anchors[x.Name.GetToken().Value] = res
		return res, nil
	case *ast.AliasNode:
		name := x.Value.GetToken().Value
		res, ok := st.anchors[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown alias *%s", ErrUnsupported, name)
		}
		return res.Clone(), nil
	case *ast.SequenceNode:
		vals := make([]*ir.Node, len(x.Values))
		for i, elt := range x.Values {
			y, err := st.node(elt)
			if err != nil {
				return nil, err
			}
			vals[i] = y
		}
		return ir.FromSlice(vals), nil
	case *ast.MappingValueNode:
		return st.mapping([]*ast.MappingValueNode{x})
	case *ast.MappingNode:
		return st.mapping(x.Values)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, n.Type())
	}
}

// mapping builds an object from mv. Merge keys (<<) contribute the
// entries of the merged mappings whose keys are not set explicitly.
func (st *walkState) mapping(mv []*ast.MappingValueNode) (*ir.Node, error) {
	var kvs, merged []ir.KeyVal
	for _, item := range mv {
		val, err := st.node(item.Value)
		if err != nil {
			return nil, err
		}
		if _, ok := item.Key.(*ast.MergeKeyNode); ok {
			srcs := []*ir.Node{val}
			if val.Type == ir.ArrayType {
				srcs = val.Values
			}
			for _, src := range srcs {
				if src.Type != ir.ObjectType {
					return nil, fmt.Errorf("%w: merge of a %s", ErrUnsupported, src.Type)
				}
				for i, f := range src.Fields {
					merged = append(merged, ir.KeyVal{Key: f, Val: src.Values[i]})
				}
			}
			continue
		}
		key, err := st.node(item.Key)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
	}
	for _, kv := range merged {
		if hasKey(kvs, kv.Key) {
			continue
		}
		kvs = append(kvs, kv)
	}
	return ir.FromKeyVals(kvs), nil
}

func hasKey(kvs []ir.KeyVal, k *ir.Node) bool {
	for _, kv := range kvs {
		if kv.Key.Type == k.Type && fmt.Sprint(ir.ToAny(kv.Key)) == fmt.Sprint(ir.ToAny(k)) {
			return true
		}
	}
	return false
}

func fromInteger(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		return ir.FromUint64(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case uint:
		return ir.FromUint64(uint64(x)), nil
	}
	return nil, fmt.Errorf("%w: integer %T", ErrUnsupported, v)
}
