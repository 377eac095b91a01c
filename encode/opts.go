package encode

import "fmt"

type Format int

const (
	YAMLFormat Format = iota
	JSONFormat
)

func (f Format) String() string {
	switch f {
	case JSONFormat:
		return "json"
	default:
		return "yaml"
	}
}

func ParseFormat(v string) (Format, error) {
	switch v {
	case "yaml", "y", "yml":
		return YAMLFormat, nil
	case "json", "j":
		return JSONFormat, nil
	}
	return YAMLFormat, fmt.Errorf("unknown format %q", v)
}

type EncState struct {
	format Format
	indent int
	colors *Colors
}

type EncodeOption func(*EncState)

func EncodeFormat(f Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeColors colors YAML output. It has no effect on JSON.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}
