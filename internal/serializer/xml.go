package serializer

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
)

const xmlHeader = `<?xml version="1.0" encoding="utf-8"?>` + "\n"

// itemElement wraps every document and every list entry.
const itemElement = "item"

// ToXML renders the groups under an <installations> root with one container
// per facility kind. Containers, items and fields keep their input order and
// no element carries attributes.
func ToXML(g Groups) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")

	root := start("installations")
	if err := enc.EncodeToken(root); err != nil {
		return nil, err
	}
	containers := []struct {
		name string
		docs []Document
	}{
		{"glissades", g.Slides},
		{"installations_aquatiques", g.Aquatic},
		{"patinoires", g.Rinks},
	}
	for _, c := range containers {
		if err := encodeContainer(enc, c.name, c.docs); err != nil {
			return nil, fmt.Errorf("encode %s: %w", c.name, err)
		}
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func start(name string) xml.StartElement {
	return xml.StartElement{Name: xml.Name{Local: name}}
}

func encodeContainer(enc *xml.Encoder, name string, docs []Document) error {
	el := start(name)
	if err := enc.EncodeToken(el); err != nil {
		return err
	}
	for _, doc := range docs {
		item := start(itemElement)
		if err := enc.EncodeToken(item); err != nil {
			return err
		}
		for _, f := range doc {
			if err := encodeValue(enc, f.Name, f.Value); err != nil {
				return err
			}
		}
		if err := enc.EncodeToken(item.End()); err != nil {
			return err
		}
	}
	return enc.EncodeToken(el.End())
}

func encodeValue(enc *xml.Encoder, name string, value interface{}) error {
	el := start(name)
	if err := enc.EncodeToken(el); err != nil {
		return err
	}
	switch v := value.(type) {
	case nil:
	case []uint:
		for _, n := range v {
			if err := encodeValue(enc, itemElement, n); err != nil {
				return err
			}
		}
	case []string:
		for _, s := range v {
			if err := encodeValue(enc, itemElement, s); err != nil {
				return err
			}
		}
	default:
		if err := enc.EncodeToken(xml.CharData(scalarText(v))); err != nil {
			return err
		}
	}
	return enc.EncodeToken(el.End())
}

func scalarText(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
