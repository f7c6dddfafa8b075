// Package attrcombo encodes and decodes variant attribute selections.
//
// A selection is the set of (assignment, value) pairs identifying one sellable
// combination of a product. The canonical wire form is an XML fragment:
//
//	<Attributes>
//	  <ProductVariantAttribute ID="1">
//	    <ProductVariantAttributeValue><Value>7</Value></ProductVariantAttributeValue>
//	  </ProductVariantAttribute>
//	</Attributes>
//
// Encode and Decode are pure string transforms; whether the referenced ids
// exist is the caller's concern.
package attrcombo

import (
	"encoding/xml"

	"github.com/pkg/errors"
)

// Selection is one (assignment, value) pair of an encoded combination.
type Selection struct {
	// AssignmentID is the id of the ProductVariantAttribute.
	AssignmentID uint64
	// ValueID is the id of the selected ProductVariantAttributeValue.
	ValueID uint64
}

type attributesXML struct {
	XMLName    xml.Name       `xml:"Attributes"`
	Attributes []attributeXML `xml:"ProductVariantAttribute"`
}

type attributeXML struct {
	ID     uint64     `xml:"ID,attr"`
	Values []valueXML `xml:"ProductVariantAttributeValue"`
}

type valueXML struct {
	Value uint64 `xml:"Value"`
}

// Encode serializes a selection. The input must be non-empty and each
// assignment may appear at most once; a product cannot select two values of
// the same attribute simultaneously in this model.
func Encode(selections []Selection) (string, error) {
	if len(selections) == 0 {
		return "", ErrEmptySelection
	}

	doc := attributesXML{Attributes: make([]attributeXML, 0, len(selections))}
	seen := make(map[uint64]struct{}, len(selections))

	for _, sel := range selections {
		if _, dup := seen[sel.AssignmentID]; dup {
			return "", errors.Wrapf(ErrDuplicateAssignment, "assignment %d", sel.AssignmentID)
		}
		seen[sel.AssignmentID] = struct{}{}

		doc.Attributes = append(doc.Attributes, attributeXML{
			ID:     sel.AssignmentID,
			Values: []valueXML{{Value: sel.ValueID}},
		})
	}

	out, err := xml.Marshal(doc)
	if err != nil {
		return "", errors.Wrap(err, "marshal selection")
	}

	return string(out), nil
}

// Decode parses an encoded selection back into its (assignment, value) pairs.
// Pairs are returned in document order; callers comparing selections must
// treat the result as a set.
func Decode(s string) ([]Selection, error) {
	var doc attributesXML
	if err := xml.Unmarshal([]byte(s), &doc); err != nil {
		return nil, errors.Wrap(err, "unmarshal selection")
	}

	if len(doc.Attributes) == 0 {
		return nil, ErrEmptySelection
	}

	out := make([]Selection, 0, len(doc.Attributes))
	seen := make(map[uint64]struct{}, len(doc.Attributes))

	for _, attr := range doc.Attributes {
		if _, dup := seen[attr.ID]; dup {
			return nil, errors.Wrapf(ErrDuplicateAssignment, "assignment %d", attr.ID)
		}
		seen[attr.ID] = struct{}{}

		switch len(attr.Values) {
		case 0:
			return nil, errors.Wrapf(ErrMissingValue, "assignment %d", attr.ID)
		case 1:
			out = append(out, Selection{AssignmentID: attr.ID, ValueID: attr.Values[0].Value})
		default:
			return nil, errors.Wrapf(ErrMultiSelect, "assignment %d", attr.ID)
		}
	}

	return out, nil
}
