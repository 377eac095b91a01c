package svd

import (
	"bytes"
	"encoding/xml"
	"io"
	"slices"
	"strings"
)

// Element is an XML element kept verbatim.
type Element struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Inner   []byte     `xml:",innerxml"`
	// Comments are the XML comments directly preceding the element.
	Comments []string `xml:"-"`
}

func (el *Element) Clone() Element {
	return Element{
		XMLName: el.XMLName,
		Attrs:   slices.Clone(el.Attrs),
		Inner:   bytes.Clone(el.Inner),

		Comments: slices.Clone(el.Comments),
	}
}

func (el *Element) Equal(o *Element) bool {
	if el == nil || o == nil {
		return el == o
	}
	return el.XMLName == o.XMLName &&
		slices.Equal(el.Attrs, o.Attrs) &&
		bytes.Equal(el.Inner, o.Inner) &&
		slices.Equal(el.Comments, o.Comments)
}

// Text returns the character data directly and indirectly inside el,
// trimmed.
func (el *Element) Text() string {
	dec := xml.NewDecoder(bytes.NewReader(el.Inner))
	var sb strings.Builder
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return strings.TrimSpace(string(el.Inner))
		}
		if cd, ok := tok.(xml.CharData); ok {
			sb.Write(cd)
		}
	}
	return strings.TrimSpace(sb.String())
}

func findElement(els []Element, name string) *Element {
	for i := range els {
		if els[i].XMLName.Local == name {
			return &els[i]
		}
	}
	return nil
}

// flattenAttrs rewrites namespaced attributes to their literal prefixed
// names so that encoding/xml writes them back unchanged.
func flattenAttrs(attrs []xml.Attr) []xml.Attr {
	prefixes := map[string]string{}
	for _, a := range attrs {
		if a.Name.Space == "xmlns" {
			prefixes[a.Value] = a.Name.Local
		}
	}
	res := make([]xml.Attr, 0, len(attrs))
	for _, a := range attrs {
		switch {
		case a.Name.Space == "xmlns":
			a.Name = xml.Name{Local: "xmlns:" + a.Name.Local}
		case a.Name.Space != "":
			if p, ok := prefixes[a.Name.Space]; ok {
				a.Name = xml.Name{Local: p + ":" + a.Name.Local}
			} else {
				a.Name = xml.Name{Local: a.Name.Local}
			}
		}
		res = append(res, a)
	}
	return res
}

func encodeComments(e *xml.Encoder, cs []string) error {
	for _, c := range cs {
		if err := e.EncodeToken(xml.Comment(c)); err != nil {
			return err
		}
	}
	return nil
}

func encodeElement(e *xml.Encoder, el *Element) error {
	if err := encodeComments(e, el.Comments); err != nil {
		return err
	}
	return e.Encode(el)
}
