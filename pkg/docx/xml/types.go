package xml

import (
	"encoding/xml"
	"fmt"
)

const (
	// NamespaceW is the main WordprocessingML namespace
	NamespaceW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	// NamespaceR is the relationships namespace used by r:id attributes
	NamespaceR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// DocumentChild represents any element that can appear at the top level of a document body
type DocumentChild interface {
	isDocumentChild()
}

// ParagraphChild represents any content that can appear in a paragraph
type ParagraphChild interface {
	isParagraphChild()
}

// RunChild represents any content that can appear in a run
type RunChild interface {
	isRunChild()
}

// TableCellContent represents any block that can appear in a table cell
type TableCellContent interface {
	isTableCellContent()
}

// Empty represents an empty element (used for boolean properties)
type Empty struct{}

// MarshalXML writes the boolean property as a self-closing element
func (Empty) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(struct{}{}, start)
}

// Style represents a style reference (pStyle, tblStyle)
type Style struct {
	Val string
}

// MarshalXML implements custom XML marshaling for Style
func (s Style) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	// The element name depends on the context (pStyle, tblStyle, etc.)
	// so we keep the provided name
	start.Attr = []xml.Attr{attr("w:val", s.Val)}
	return e.EncodeElement(struct{}{}, start)
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

func intAttr(name string, value int) xml.Attr {
	return attr(name, fmt.Sprintf("%d", value))
}

func elem(name string, attrs ...xml.Attr) xml.StartElement {
	return xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs}
}

// encodeEmpty writes a self-closing element with the given attributes
func encodeEmpty(e *xml.Encoder, name string, attrs ...xml.Attr) error {
	return e.EncodeElement(struct{}{}, elem(name, attrs...))
}
