package ir

import (
	"iter"
)

// AsObject returns y when it is a mapping.
func (y *Node) AsObject() (*Node, error) {
	if y == nil || y.Type != ObjectType {
		return nil, mismatch(ErrNotObject, y)
	}
	return y, nil
}

func (y *Node) AsArray() ([]*Node, error) {
	if y == nil || y.Type != ArrayType {
		return nil, mismatch(ErrNotArray, y)
	}
	return y.Values, nil
}

func (y *Node) AsString() (string, error) {
	if y == nil || y.Type != StringType {
		return "", mismatch(ErrNotString, y)
	}
	return y.String, nil
}

// AsInt coerces y to an integer, parsing strings with ParseIntLiteral.
func (y *Node) AsInt() (int64, error) {
	if y != nil && y.Type == StringType {
		return ParseIntLiteral(y.String)
	}
	v, ok := ParseInt(y)
	if !ok {
		return 0, mismatch(ErrNotInt, y)
	}
	return v, nil
}

// Get returns the value stored under the string key k, or nil when y is
// not a mapping or has no such key.
func (y *Node) Get(k string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	for i, f := range y.Fields {
		if f.Type == StringType && f.String == k {
			return y.Values[i]
		}
	}
	return nil
}

// The Get* lookups below report ok=false both when k is missing and when
// its value cannot be read as the requested type.

func (y *Node) GetBool(k string) (bool, bool) {
	return ParseBool(y.Get(k))
}

func (y *Node) GetInt(k string) (int64, bool) {
	return ParseInt(y.Get(k))
}

func (y *Node) GetUint64(k string) (uint64, bool) {
	v, ok := y.GetInt(k)
	return uint64(v), ok
}

func (y *Node) GetUint32(k string) (uint32, bool) {
	v, ok := y.GetInt(k)
	return uint32(v), ok
}

func (y *Node) GetString(k string) (string, bool) {
	v := y.Get(k)
	if v == nil || v.Type != StringType {
		return "", false
	}
	return v.String, true
}

func (y *Node) GetObject(k string) (*Node, bool) {
	v := y.Get(k)
	if v == nil || v.Type != ObjectType {
		return nil, false
	}
	return v, true
}

func (y *Node) GetArray(k string) ([]*Node, bool) {
	v := y.Get(k)
	if v == nil || v.Type != ArrayType {
		return nil, false
	}
	return v.Values, true
}

// AsStrings views y as a list of strings. A bare string yields itself, a
// sequence yields its string elements and skips the rest, anything else
// yields nothing.
func (y *Node) AsStrings() iter.Seq[string] {
	return func(yield func(string) bool) {
		if y == nil {
			return
		}
		switch y.Type {
		case StringType:
			yield(y.String)
		case ArrayType:
			for _, v := range y.Values {
				if v.Type != StringType {
					continue
				}
				if !yield(v.String) {
					return
				}
			}
		}
	}
}

// Strings is AsStrings on the value under k.
func (y *Node) Strings(k string) iter.Seq[string] {
	return y.Get(k).AsStrings()
}

// Pairs yields the entries of a mapping in insertion order, and nothing
// for any other value.
func (y *Node) Pairs() iter.Seq2[*Node, *Node] {
	return func(yield func(*Node, *Node) bool) {
		if y == nil || y.Type != ObjectType {
			return
		}
		for i, f := range y.Fields {
			if !yield(f, y.Values[i]) {
				return
			}
		}
	}
}

// Entries is Pairs on the value under k.
func (y *Node) Entries(k string) iter.Seq2[*Node, *Node] {
	return y.Get(k).Pairs()
}
