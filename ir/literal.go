package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseIntLiteral parses an integer in one of the forms used by device
// descriptions and their patch files. Underscores are ignored. A leading
// 0x selects hex, # or 0b selects binary where x is a don't-care bit read
// as 0, anything else is signed decimal. The chosen form must parse in
// full; there is no fallback to another form.
func ParseIntLiteral(s string) (int64, error) {
	text := strings.ReplaceAll(s, "_", "")
	var (
		v   int64
		err error
	)
	switch {
	case strings.HasPrefix(text, "0x"), strings.HasPrefix(text, "0X"):
		v, err = strconv.ParseInt(text[len("0x"):], 16, 64)
	case strings.HasPrefix(text, "#"):
		v, err = strconv.ParseInt(strings.ReplaceAll(strings.ToLower(text[len("#"):]), "x", "0"), 2, 64)
	case strings.HasPrefix(text, "0b"):
		v, err = strconv.ParseInt(strings.ReplaceAll(text[len("0b"):], "x", "0"), 2, 64)
	default:
		v, err = strconv.ParseInt(text, 10, 64)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: invalid literal %q", ErrNotInt, s)
	}
	return v, nil
}

// ParseInt reads y as an integer. Native integers pass through and
// strings go through ParseIntLiteral.
func ParseInt(y *Node) (int64, bool) {
	if y == nil {
		return 0, false
	}
	switch y.Type {
	case NumberType:
		if y.Int64 == nil {
			return 0, false
		}
		return *y.Int64, true
	case StringType:
		v, err := ParseIntLiteral(y.String)
		if err != nil {
			return 0, false
		}
		return v, true
	default:
		return 0, false
	}
}

// ParseBool reads y as a boolean. Integers 0 and 1 and the strings
// true, True, false and False are accepted besides native booleans.
func ParseBool(y *Node) (bool, bool) {
	if y == nil {
		return false, false
	}
	switch y.Type {
	case BoolType:
		return y.Bool, true
	case NumberType:
		if y.Int64 == nil {
			return false, false
		}
		switch *y.Int64 {
		case 0:
			return false, true
		case 1:
			return true, true
		}
		return false, false
	case StringType:
		switch y.String {
		case "true", "True":
			return true, true
		case "false", "False":
			return false, true
		}
		return false, false
	default:
		return false, false
	}
}
