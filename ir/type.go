package ir

type Type int

const (
	NullType Type = iota
	BoolType
	NumberType
	StringType
	ArrayType
	ObjectType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ObjectType: "mapping",
		ArrayType:  "sequence",
		StringType: "string",
		NumberType: "number",
		BoolType:   "boolean",
		NullType:   "null",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}
