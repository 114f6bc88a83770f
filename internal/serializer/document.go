// Package serializer turns facility models into flat, ordered documents and
// renders groups of documents as JSON or XML.
package serializer

import (
	"bytes"
	"encoding/json"

	"installations_api/internal/models"
)

// Field is one named value of a Document.
type Field struct {
	Name  string
	Value interface{}
}

// Document is a flat field mapping whose order is fixed per entity kind.
type Document []Field

// MarshalJSON encodes the document as an object, keeping field order.
func (d Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get returns the value of the named field.
func (d Document) Get(name string) (interface{}, bool) {
	for _, f := range d {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Groups is the response envelope shared by the listing endpoints.
type Groups struct {
	Slides  []Document `json:"glissades"`
	Aquatic []Document `json:"installations_aquatiques"`
	Rinks   []Document `json:"patinoires"`
}

// NewGroups serializes the three facility collections. Nil inputs become
// empty groups so the envelope always encodes arrays.
func NewGroups(aquatic []models.AquaticFacility, rinks []models.IceRink, slides []models.Slide) Groups {
	return Groups{
		Slides:  Many(slides, SlideDocument),
		Aquatic: Many(aquatic, AquaticDocument),
		Rinks:   Many(rinks, IceRinkDocument),
	}
}

// Many applies fn to every item. The result is never nil.
func Many[T any](items []T, fn func(T) Document) []Document {
	docs := make([]Document, 0, len(items))
	for _, item := range items {
		docs = append(docs, fn(item))
	}
	return docs
}

func BoroughDocument(b models.Borough) Document {
	return Document{
		{"id", b.ID},
		{"nom", b.Name},
		{"cle", b.Key},
		{"date_maj", b.DateMaj},
	}
}

func AquaticDocument(a models.AquaticFacility) Document {
	return Document{
		{"id", a.ID},
		{"nom", a.Name},
		{"type", a.Type},
		{"adresse", a.Address},
		{"propriete", a.Ownership},
		{"gestion", a.Management},
		{"equipement", a.Equipment},
		{"longitude", a.Longitude},
		{"latitude", a.Latitude},
		{"arrondissement_id", a.BoroughID},
	}
}

func IceRinkDocument(r models.IceRink) Document {
	return Document{
		{"id", r.ID},
		{"nom", r.Name},
		{"date_heure", r.DateHeure},
		{"ouvert", r.Open},
		{"deblaye", r.Cleared},
		{"arrose", r.Watered},
		{"resurface", r.Resurfaced},
		{"arrondissement_id", r.BoroughID},
	}
}

func SlideDocument(s models.Slide) Document {
	return Document{
		{"id", s.ID},
		{"nom", s.Name},
		{"ouvert", s.Open},
		{"deblaye", s.Cleared},
		{"condition", s.Condition},
		{"arrondissement_id", s.BoroughID},
	}
}

func SubscriberDocument(s models.Subscriber) Document {
	return Document{
		{"id", s.ID},
		{"full_name", s.FullName},
		{"email", s.Email},
		{"boroughs_to_follow", s.BoroughIDs()},
	}
}
