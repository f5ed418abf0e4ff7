package xml

import (
	"encoding/xml"
	"strings"

	"github.com/benjaminschreck/go-docx/pkg/docx/types"
)

// Paragraph represents a paragraph in the document
type Paragraph struct {
	Properties *ParagraphProperties
	// Children maintains the order of runs, hyperlinks and range markers
	Children []ParagraphChild
}

// isDocumentChild implements the DocumentChild interface
func (p *Paragraph) isDocumentChild() {}

// isTableCellContent implements the TableCellContent interface
func (p *Paragraph) isTableCellContent() {}

// NewParagraph creates an empty paragraph
func NewParagraph() *Paragraph {
	return &Paragraph{}
}

// AddRun appends a run
func (p *Paragraph) AddRun(r *Run) *Paragraph {
	p.Children = append(p.Children, r)
	return p
}

// AddText appends a plain run holding text
func (p *Paragraph) AddText(text string) *Paragraph {
	return p.AddRun(NewRun().AddText(text))
}

// AddHyperlink appends a hyperlink
func (p *Paragraph) AddHyperlink(h *Hyperlink) *Paragraph {
	p.Children = append(p.Children, h)
	return p
}

// AddCommentStart opens a comment range carrying the comment payload
func (p *Paragraph) AddCommentStart(c *Comment) *Paragraph {
	p.Children = append(p.Children, NewCommentRangeStart(c))
	return p
}

// AddCommentEnd closes the comment range with the given id
func (p *Paragraph) AddCommentEnd(id int) *Paragraph {
	p.Children = append(p.Children, &CommentRangeEnd{ID: id})
	return p
}

// AddBookmarkStart opens a named bookmark
func (p *Paragraph) AddBookmarkStart(id int, name string) *Paragraph {
	p.Children = append(p.Children, &BookmarkStart{ID: id, Name: name})
	return p
}

// AddBookmarkEnd closes the bookmark with the given id
func (p *Paragraph) AddBookmarkEnd(id int) *Paragraph {
	p.Children = append(p.Children, &BookmarkEnd{ID: id})
	return p
}

// Style references a paragraph style by id
func (p *Paragraph) Style(styleID string) *Paragraph {
	p.props().Style = &Style{Val: styleID}
	return p
}

// Align sets the paragraph justification
func (p *Paragraph) Align(a types.AlignmentType) *Paragraph {
	p.props().Alignment = &a
	return p
}

// Numbering attaches the paragraph to a numbering instance at the given level
func (p *Paragraph) Numbering(numID, level int) *Paragraph {
	p.props().NumberingProperty = &NumberingProperty{NumID: numID, Level: level}
	return p
}

// Indent sets the left indentation and an optional first line or hanging indent
func (p *Paragraph) Indent(left int, special *SpecialIndent) *Paragraph {
	p.props().Indentation = &Indentation{Left: left, Special: special}
	return p
}

// Spacing sets the space before and after the paragraph in twips
func (p *Paragraph) Spacing(before, after int) *Paragraph {
	p.props().Spacing = &Spacing{Before: before, After: after}
	return p
}

func (p *Paragraph) props() *ParagraphProperties {
	if p.Properties == nil {
		p.Properties = &ParagraphProperties{}
	}
	return p.Properties
}

// MarshalXML implements custom XML marshaling for Paragraph to ensure proper namespacing
func (p Paragraph) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:p"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if p.Properties != nil {
		if err := e.EncodeElement(p.Properties, elem("w:pPr")); err != nil {
			return err
		}
	}

	for _, child := range p.Children {
		if err := e.Encode(child); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// GetText returns the concatenated text of all runs and hyperlinks in a paragraph
func (p *Paragraph) GetText() string {
	var texts []string
	for _, child := range p.Children {
		switch c := child.(type) {
		case *Run:
			if text := c.GetText(); text != "" {
				texts = append(texts, text)
			}
		case *Hyperlink:
			if text := c.GetText(); text != "" {
				texts = append(texts, text)
			}
		}
	}
	return strings.Join(texts, "")
}

// ParagraphProperties represents paragraph formatting properties
type ParagraphProperties struct {
	Style             *Style
	NumberingProperty *NumberingProperty
	Spacing           *Spacing
	Indentation       *Indentation
	Alignment         *types.AlignmentType
	// SectionProperties turns the paragraph into a section break
	SectionProperties *SectionProperties
}

// MarshalXML implements custom XML marshaling for ParagraphProperties
func (p ParagraphProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:pPr"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if p.Style != nil {
		if err := e.EncodeElement(p.Style, elem("w:pStyle")); err != nil {
			return err
		}
	}

	if p.NumberingProperty != nil {
		if err := e.Encode(p.NumberingProperty); err != nil {
			return err
		}
	}

	if p.Spacing != nil {
		if err := e.Encode(p.Spacing); err != nil {
			return err
		}
	}

	if p.Indentation != nil {
		if err := e.Encode(p.Indentation); err != nil {
			return err
		}
	}

	if p.Alignment != nil {
		if err := encodeEmpty(e, "w:jc", attr("w:val", p.Alignment.String())); err != nil {
			return err
		}
	}

	if p.SectionProperties != nil {
		if err := e.Encode(p.SectionProperties); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// NumberingProperty references a numbering instance (w:numPr)
type NumberingProperty struct {
	NumID int
	Level int
}

// MarshalXML writes w:numPr with its ilvl and numId children
func (n NumberingProperty) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = elem("w:numPr")
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := encodeEmpty(e, "w:ilvl", intAttr("w:val", n.Level)); err != nil {
		return err
	}
	if err := encodeEmpty(e, "w:numId", intAttr("w:val", n.NumID)); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Indentation represents paragraph indentation in twips
type Indentation struct {
	Left    int
	Right   int
	Special *SpecialIndent
}

// SpecialIndent is a first line or hanging indentation
type SpecialIndent struct {
	Type  types.SpecialIndentType
	Value int
}

// MarshalXML implements custom XML marshaling for Indentation
func (i Indentation) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	attrs := []xml.Attr{
		intAttr("w:left", i.Left),
		intAttr("w:right", i.Right),
	}
	if i.Special != nil {
		attrs = append(attrs, intAttr("w:"+i.Special.Type.String(), i.Special.Value))
	}
	return encodeEmpty(e, "w:ind", attrs...)
}

// Spacing represents paragraph spacing
type Spacing struct {
	Before   int
	After    int
	Line     int
	LineRule string
}

// MarshalXML implements custom XML marshaling for Spacing
func (s Spacing) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	var attrs []xml.Attr
	if s.Before != 0 {
		attrs = append(attrs, intAttr("w:before", s.Before))
	}
	if s.After != 0 {
		attrs = append(attrs, intAttr("w:after", s.After))
	}
	if s.Line != 0 {
		attrs = append(attrs, intAttr("w:line", s.Line))
	}
	if s.LineRule != "" {
		attrs = append(attrs, attr("w:lineRule", s.LineRule))
	}
	return encodeEmpty(e, "w:spacing", attrs...)
}

// Hyperlink represents a hyperlink in the document. RelationshipID points at an external target
// registered in the document relationships; Anchor points at a bookmark in the same document.
type Hyperlink struct {
	RelationshipID string
	Anchor         string
	History        bool
	Runs           []*Run
}

// isParagraphChild implements the ParagraphChild interface
func (h *Hyperlink) isParagraphChild() {}

// NewExternalHyperlink creates a hyperlink to a relationship id
func NewExternalHyperlink(rid string) *Hyperlink {
	return &Hyperlink{RelationshipID: rid, History: true}
}

// NewAnchorHyperlink creates a hyperlink to a bookmark
func NewAnchorHyperlink(anchor string) *Hyperlink {
	return &Hyperlink{Anchor: anchor}
}

// AddRun appends a run to the hyperlink
func (h *Hyperlink) AddRun(r *Run) *Hyperlink {
	h.Runs = append(h.Runs, r)
	return h
}

// MarshalXML implements custom XML marshaling for Hyperlink to ensure proper namespacing
func (h Hyperlink) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = elem("w:hyperlink")
	if h.RelationshipID != "" {
		start.Attr = append(start.Attr, attr("r:id", h.RelationshipID))
	}
	if h.Anchor != "" {
		start.Attr = append(start.Attr, attr("w:anchor", h.Anchor))
	}
	if h.History {
		start.Attr = append(start.Attr, attr("w:history", "1"))
	}

	if err := e.EncodeToken(start); err != nil {
		return err
	}

	for _, run := range h.Runs {
		if err := e.Encode(run); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// GetText returns the concatenated text of all runs in a hyperlink
func (h *Hyperlink) GetText() string {
	var texts []string
	for _, run := range h.Runs {
		if text := run.GetText(); text != "" {
			texts = append(texts, text)
		}
	}
	return strings.Join(texts, "")
}
