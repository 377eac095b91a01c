package svd

import (
	"encoding/xml"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/svdpatch/ir"
)

type Peripheral struct {
	// Attrs holds attributes of the peripheral element, e.g. derivedFrom.
	Attrs       []xml.Attr
	Name        string
	BaseAddress uint64
	Interrupts  []Interrupt
	Registers   *Element
	// Extra holds every other child element in document order.
	Extra []Element
	// Comments are the XML comments directly preceding the peripheral.
	Comments []string
}

type Interrupt struct {
	Name        string
	Description string
	Value       int64
}

type xmlInterrupt struct {
	Name        string `xml:"name"`
	Description string `xml:"description,omitempty"`
	Value       string `xml:"value"`
}

// peripheralOrder is the child order of a peripheral in the SVD schema.
var peripheralOrder = []string{
	"name",
	"version",
	"description",
	"alternatePeripheral",
	"groupName",
	"prependToName",
	"appendToName",
	"headerStructName",
	"disableCondition",
	"baseAddress",
	"size",
	"access",
	"protection",
	"resetValue",
	"resetMask",
	"addressBlock",
	"interrupt",
	"registers",
}

func childRank(name string) int {
	if i := slices.Index(peripheralOrder, name); i != -1 {
		return i
	}
	return len(peripheralOrder)
}

func (p *Peripheral) Clone() *Peripheral {
	res := &Peripheral{
		Attrs:       slices.Clone(p.Attrs),
		Name:        p.Name,
		BaseAddress: p.BaseAddress,
		Interrupts:  slices.Clone(p.Interrupts),
		Comments:    slices.Clone(p.Comments),
	}
	if p.Registers != nil {
		r := p.Registers.Clone()
		res.Registers = &r
	}
	res.Extra = cloneElements(p.Extra)
	return res
}

// Attr returns the value of the attribute named name, e.g. derivedFrom.
func (p *Peripheral) Attr(name string) string {
	for _, a := range p.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// Child returns the text of the first extra child element named name.
func (p *Peripheral) Child(name string) string {
	el := findElement(p.Extra, name)
	if el == nil {
		return ""
	}
	return el.Text()
}

func (p *Peripheral) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	p.Attrs = flattenAttrs(start.Attr)
	var pending []string
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.Comment:
			pending = append(pending, string(t))
		case xml.StartElement:
			n := len(p.Extra)
			if err := p.decodeChild(d, &t); err != nil {
				return err
			}
			// comments before name, baseAddress and interrupt are dropped
			switch {
			case len(p.Extra) > n:
				p.Extra[n].Comments = pending
			case t.Name.Local == "registers":
				p.Registers.Comments = pending
			}
			pending = nil
		case xml.EndElement:
			return nil
		}
	}
}

func (p *Peripheral) decodeChild(d *xml.Decoder, t *xml.StartElement) error {
	switch t.Name.Local {
	case "name":
		var s string
		if err := d.DecodeElement(&s, t); err != nil {
			return err
		}
		p.Name = strings.TrimSpace(s)
	case "baseAddress":
		var s string
		if err := d.DecodeElement(&s, t); err != nil {
			return err
		}
		v, err := ir.ParseIntLiteral(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("%w: peripheral %q baseAddress: %w", ErrBadDevice, p.Name, err)
		}
		p.BaseAddress = uint64(v)
	case "interrupt":
		var xi xmlInterrupt
		if err := d.DecodeElement(&xi, t); err != nil {
			return err
		}
		v, err := ir.ParseIntLiteral(strings.TrimSpace(xi.Value))
		if err != nil {
			return fmt.Errorf("%w: peripheral %q interrupt %q: %w", ErrBadDevice, p.Name, xi.Name, err)
		}
		p.Interrupts = append(p.Interrupts, Interrupt{
			Name:        strings.TrimSpace(xi.Name),
			Description: strings.TrimSpace(xi.Description),
			Value:       v,
		})
	case "registers":
		el := &Element{}
		if err := d.DecodeElement(el, t); err != nil {
			return err
		}
		p.Registers = el
	default:
		var el Element
		if err := d.DecodeElement(&el, t); err != nil {
			return err
		}
		p.Extra = append(p.Extra, el)
	}
	return nil
}

type child struct {
	rank int
	enc  func(*xml.Encoder) error
}

func (p *Peripheral) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = xml.StartElement{Name: xml.Name{Local: "peripheral"}, Attr: p.Attrs}
	children := []child{
		{childRank("name"), func(e *xml.Encoder) error {
			return e.EncodeElement(p.Name, startOf("name"))
		}},
		{childRank("baseAddress"), func(e *xml.Encoder) error {
			return e.EncodeElement(FormatAddress(p.BaseAddress), startOf("baseAddress"))
		}},
	}
	for i := range p.Extra {
		el := &p.Extra[i]
		children = append(children, child{childRank(el.XMLName.Local), func(e *xml.Encoder) error {
			return encodeElement(e, el)
		}})
	}
	for _, in := range p.Interrupts {
		xi := xmlInterrupt{
			Name:        in.Name,
			Description: in.Description,
			Value:       strconv.FormatInt(in.Value, 10),
		}
		children = append(children, child{childRank("interrupt"), func(e *xml.Encoder) error {
			return e.EncodeElement(xi, startOf("interrupt"))
		}})
	}
	if p.Registers != nil {
		children = append(children, child{childRank("registers"), func(e *xml.Encoder) error {
			return encodeElement(e, p.Registers)
		}})
	}
	slices.SortStableFunc(children, func(a, b child) int { return a.rank - b.rank })

	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, c := range children {
		if err := c.enc(e); err != nil {
			return fmt.Errorf("peripheral %q: %w", p.Name, err)
		}
	}
	return e.EncodeToken(start.End())
}

func startOf(name string) xml.StartElement {
	return xml.StartElement{Name: xml.Name{Local: name}}
}

// FormatAddress renders an address the way vendor descriptions do.
func FormatAddress(a uint64) string {
	return fmt.Sprintf("0x%08X", a)
}
