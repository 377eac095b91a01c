package svd

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"slices"
)

// Device is the root of a description. Children before and after the
// peripherals element are kept verbatim in Header and Trailer.
type Device struct {
	Attrs       []xml.Attr
	Header      []Element
	Peripherals []*Peripheral
	Trailer     []Element
	// PeripheralsComments precede the peripherals element.
	PeripheralsComments []string
}

// Name is the text of the device's name element.
func (dev *Device) Name() string {
	el := findElement(dev.Header, "name")
	if el == nil {
		return ""
	}
	return el.Text()
}

func (dev *Device) Clone() *Device {
	res := &Device{
		Attrs:       slices.Clone(dev.Attrs),
		Header:      cloneElements(dev.Header),
		Peripherals: make([]*Peripheral, len(dev.Peripherals)),
		Trailer:     cloneElements(dev.Trailer),

		PeripheralsComments: slices.Clone(dev.PeripheralsComments),
	}
	for i, p := range dev.Peripherals {
		res.Peripherals[i] = p.Clone()
	}
	return res
}

func cloneElements(els []Element) []Element {
	if els == nil {
		return nil
	}
	res := make([]Element, len(els))
	for i := range els {
		res[i] = els[i].Clone()
	}
	return res
}

// Peripheral returns the first peripheral named name, or nil.
func (dev *Device) Peripheral(name string) *Peripheral {
	for _, p := range dev.Peripherals {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func (dev *Device) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	if start.Name.Local != "device" {
		return fmt.Errorf("%w: root element is %q, not device", ErrBadDevice, start.Name.Local)
	}
	dev.Attrs = flattenAttrs(start.Attr)
	seen := false
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
			if t.Name.Local == "peripherals" {
				dev.PeripheralsComments, pending = pending, nil
				if err := dev.decodePeripherals(d); err != nil {
					return err
				}
				seen = true
				continue
			}
			el := Element{}
			if err := d.DecodeElement(&el, &t); err != nil {
				return err
			}
			el.Comments, pending = pending, nil
			if seen {
				dev.Trailer = append(dev.Trailer, el)
			} else {
				dev.Header = append(dev.Header, el)
			}
		case xml.EndElement:
			return nil
		}
	}
}

func (dev *Device) decodePeripherals(d *xml.Decoder) error {
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
			if t.Name.Local != "peripheral" {
				if err := d.Skip(); err != nil {
					return err
				}
				continue
			}
			p := &Peripheral{}
			if err := d.DecodeElement(p, &t); err != nil {
				return err
			}
			p.Comments, pending = pending, nil
			dev.Peripherals = append(dev.Peripherals, p)
		case xml.EndElement:
			return nil
		}
	}
}

func (dev *Device) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = xml.StartElement{Name: xml.Name{Local: "device"}, Attr: dev.Attrs}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for i := range dev.Header {
		if err := encodeElement(e, &dev.Header[i]); err != nil {
			return err
		}
	}
	if err := encodeComments(e, dev.PeripheralsComments); err != nil {
		return err
	}
	ps := startOf("peripherals")
	if err := e.EncodeToken(ps); err != nil {
		return err
	}
	for _, p := range dev.Peripherals {
		if err := encodeComments(e, p.Comments); err != nil {
			return err
		}
		if err := e.Encode(p); err != nil {
			return err
		}
	}
	if err := e.EncodeToken(ps.End()); err != nil {
		return err
	}
	for i := range dev.Trailer {
		if err := encodeElement(e, &dev.Trailer[i]); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

func Read(r io.Reader) (*Device, error) {
	dev := &Device{}
	if err := xml.NewDecoder(r).Decode(dev); err != nil {
		return nil, fmt.Errorf("error decoding device: %w", err)
	}
	return dev, nil
}

func ReadFile(path string) (*Device, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dev, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return dev, nil
}

func Write(w io.Writer, dev *Device) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(dev); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func WriteFile(path string, dev *Device) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if err := Write(f, dev); err != nil {
		f.Close()
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return f.Close()
}
