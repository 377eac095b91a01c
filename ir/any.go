package ir

import (
	"fmt"
	"maps"
	"slices"
)

// FromAny converts generic decoded data (as produced by encoding/json or a
// yaml decoder without ordered maps) to a Node. Map keys are sorted since
// Go maps carry no order.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case int32:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint64:
		return fromUint64(x), nil
	case float64:
		return FromFloat(x), nil
	case []any:
		vals := make([]*Node, len(x))
		for i, elt := range x {
			y, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			vals[i] = y
		}
		return FromSlice(vals), nil
	case map[string]any:
		keys := slices.Sorted(maps.Keys(x))
		kvs := make([]KeyVal, len(keys))
		for i, k := range keys {
			y, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			kvs[i] = KeyVal{Key: FromString(k), Val: y}
		}
		return FromKeyVals(kvs), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}

func fromUint64(x uint64) *Node {
	if x > 1<<63-1 {
		return &Node{Type: NumberType, Number: fmt.Sprintf("%d", x)}
	}
	return FromInt(int64(x))
}

// FromUint64 is FromInt for values which may not fit an int64.
func FromUint64(x uint64) *Node {
	return fromUint64(x)
}

// ToAny is the inverse of FromAny. Entries with non string keys are
// dropped.
func ToAny(node *Node) any {
	if node == nil {
		return nil
	}
	switch node.Type {
	case ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, field := range node.Fields {
			if field.Type != StringType {
				continue
			}
			res[field.String] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return node.Number
	case BoolType:
		return node.Bool
	default:
		return nil
	}
}
