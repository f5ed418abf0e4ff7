package xml

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// Document represents the body of a Word document (word/document.xml)
type Document struct {
	// Children maintains the order of all body elements
	Children []DocumentChild
	// SectionProperties at the end of the body (critical for Word compatibility)
	SectionProperties *SectionProperties
}

// NewDocument creates an empty document with A4 page defaults
func NewDocument() *Document {
	return &Document{SectionProperties: DefaultSectionProperties()}
}

// AddParagraph appends a paragraph to the body
func (d *Document) AddParagraph(p *Paragraph) *Document {
	d.Children = append(d.Children, p)
	return d
}

// AddTable appends a table to the body
func (d *Document) AddTable(t *Table) *Document {
	d.Children = append(d.Children, t)
	return d
}

// AddChild appends any body element
func (d *Document) AddChild(c DocumentChild) *Document {
	d.Children = append(d.Children, c)
	return d
}

// AddSectionBreak ends the current section with the given properties
func (d *Document) AddSectionBreak(sp *SectionProperties) *Document {
	d.Children = append(d.Children, &SectionBreak{Properties: sp})
	return d
}

// MarshalXML implements custom XML marshaling to preserve element order
func (d Document) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = elem("w:document",
		attr("xmlns:w", NamespaceW),
		attr("xmlns:r", NamespaceR),
	)
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	body := elem("w:body")
	if err := e.EncodeToken(body); err != nil {
		return err
	}

	for _, child := range d.Children {
		if err := e.Encode(child); err != nil {
			return err
		}
	}

	if d.SectionProperties != nil {
		if err := e.Encode(d.SectionProperties); err != nil {
			return err
		}
	}

	if err := e.EncodeToken(xml.EndElement{Name: body.Name}); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Build serializes the document part
func (d *Document) Build() ([]byte, error) {
	return Marshal(d)
}

// Marshal encodes v as a standalone XML part with the declaration Word expects
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	enc := xml.NewEncoder(&buf)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to marshal part: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush part: %w", err)
	}
	return buf.Bytes(), nil
}

// SectionBreak ends a section inside the body. It is written as an empty paragraph whose
// properties hold the section properties.
type SectionBreak struct {
	Properties *SectionProperties
}

func (s *SectionBreak) isDocumentChild() {}

// MarshalXML writes the carrying paragraph
func (s SectionBreak) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	sp := s.Properties
	if sp == nil {
		sp = DefaultSectionProperties()
	}
	p := Paragraph{Properties: &ParagraphProperties{SectionProperties: sp}}
	return e.Encode(p)
}

// SectionProperties holds the page setup of a section (w:sectPr)
type SectionProperties struct {
	PageSize   PageSize
	PageMargin PageMargin
	Columns    int // space between columns in twips
	DocGrid    int // line pitch in twips
}

// PageSize is the page dimension in twips
type PageSize struct {
	W      int
	H      int
	Orient string
}

// PageMargin is the page margin in twips
type PageMargin struct {
	Top    int
	Right  int
	Bottom int
	Left   int
	Header int
	Footer int
	Gutter int
}

// DefaultSectionProperties returns an A4 portrait page
func DefaultSectionProperties() *SectionProperties {
	return &SectionProperties{
		PageSize: PageSize{W: 11906, H: 16838},
		PageMargin: PageMargin{
			Top:    1985,
			Right:  1701,
			Bottom: 1701,
			Left:   1701,
			Header: 851,
			Footer: 992,
			Gutter: 0,
		},
		Columns: 425,
		DocGrid: 360,
	}
}

// MarshalXML writes w:sectPr
func (s SectionProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = elem("w:sectPr")
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	size := []xml.Attr{intAttr("w:w", s.PageSize.W), intAttr("w:h", s.PageSize.H)}
	if s.PageSize.Orient != "" {
		size = append(size, attr("w:orient", s.PageSize.Orient))
	}
	if err := encodeEmpty(e, "w:pgSz", size...); err != nil {
		return err
	}

	m := s.PageMargin
	if err := encodeEmpty(e, "w:pgMar",
		intAttr("w:top", m.Top),
		intAttr("w:right", m.Right),
		intAttr("w:bottom", m.Bottom),
		intAttr("w:left", m.Left),
		intAttr("w:header", m.Header),
		intAttr("w:footer", m.Footer),
		intAttr("w:gutter", m.Gutter),
	); err != nil {
		return err
	}

	if s.Columns > 0 {
		if err := encodeEmpty(e, "w:cols", intAttr("w:space", s.Columns)); err != nil {
			return err
		}
	}
	if s.DocGrid > 0 {
		if err := encodeEmpty(e, "w:docGrid", attr("w:type", "lines"), intAttr("w:linePitch", s.DocGrid)); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}
