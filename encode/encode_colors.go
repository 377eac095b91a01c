package encode

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml/printer"
)

// Colors assigns a terminal color to each kind of YAML token.
type Colors struct {
	MapKey color.Attribute
	String color.Attribute
	Number color.Attribute
	Bool   color.Attribute
	Anchor color.Attribute
}

func NewColors() *Colors {
	return &Colors{
		MapKey: color.FgHiCyan,
		String: color.FgHiGreen,
		Number: color.FgHiMagenta,
		Bool:   color.FgHiYellow,
		Anchor: color.FgHiBlue,
	}
}

func (c *Colors) printer() *printer.Printer {
	return &printer.Printer{
		MapKey: property(c.MapKey),
		String: property(c.String),
		Number: property(c.Number),
		Bool:   property(c.Bool),
		Anchor: property(c.Anchor),
		Alias:  property(c.Anchor),
	}
}

func property(attr color.Attribute) func() *printer.Property {
	return func() *printer.Property {
		if color.NoColor {
			return &printer.Property{}
		}
		return &printer.Property{
			Prefix: sgr(attr),
			Suffix: sgr(color.Reset),
		}
	}
}

func sgr(attr color.Attribute) string {
	return fmt.Sprintf("\x1b[%dm", attr)
}
