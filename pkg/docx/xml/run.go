package xml

import (
	"encoding/xml"
	"strings"

	"github.com/benjaminschreck/go-docx/pkg/docx/types"
)

// Run represents a run of text with common properties
type Run struct {
	Properties *RunProperties
	// Children maintains the order of text, breaks and tabs
	Children []RunChild
}

// isParagraphChild implements the ParagraphChild interface
func (r *Run) isParagraphChild() {}

// NewRun creates an empty run
func NewRun() *Run {
	return &Run{}
}

// AddText appends a text element, preserving surrounding whitespace
func (r *Run) AddText(text string) *Run {
	r.Children = append(r.Children, &Text{Content: text, Preserve: true})
	return r
}

// AddBreak appends a break of the given type
func (r *Run) AddBreak(t types.BreakType) *Run {
	r.Children = append(r.Children, &Break{Type: t})
	return r
}

// AddTab appends a tab character
func (r *Run) AddTab() *Run {
	r.Children = append(r.Children, &Tab{})
	return r
}

// Bold marks the run bold
func (r *Run) Bold() *Run {
	r.props().Bold = &Empty{}
	return r
}

// Italic marks the run italic
func (r *Run) Italic() *Run {
	r.props().Italic = &Empty{}
	return r
}

// Underline sets the underline style, e.g. "single"
func (r *Run) Underline(val string) *Run {
	r.props().Underline = &Underline{Val: val}
	return r
}

// Size sets the font size in half-points
func (r *Run) Size(halfPoints int) *Run {
	r.props().Size = &Size{Val: halfPoints}
	return r
}

// Color sets the text color as a hex RGB value
func (r *Run) Color(hex string) *Run {
	r.props().Color = &Color{Val: hex}
	return r
}

// Style references a character style by id
func (r *Run) Style(styleID string) *Run {
	r.props().Style = &Style{Val: styleID}
	return r
}

// Fonts sets the ascii and high-ansi font
func (r *Run) Fonts(name string) *Run {
	r.props().Fonts = &Fonts{ASCII: name, HAnsi: name}
	return r
}

func (r *Run) props() *RunProperties {
	if r.Properties == nil {
		r.Properties = &RunProperties{}
	}
	return r.Properties
}

// MarshalXML implements custom XML marshaling for Run to ensure proper namespacing
func (r Run) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:r"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if r.Properties != nil {
		if err := e.EncodeElement(r.Properties, elem("w:rPr")); err != nil {
			return err
		}
	}

	for _, child := range r.Children {
		if err := e.Encode(child); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// GetText returns the text content of a run
func (r *Run) GetText() string {
	var sb strings.Builder
	for _, child := range r.Children {
		switch c := child.(type) {
		case *Text:
			sb.WriteString(c.Content)
		case *Tab:
			sb.WriteString("\t")
		case *Break:
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// RunProperties represents run formatting properties
type RunProperties struct {
	Style     *Style
	Fonts     *Fonts
	Bold      *Empty
	Italic    *Empty
	Color     *Color
	Size      *Size
	Underline *Underline
}

// MarshalXML writes the properties in schema order
func (p RunProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:rPr"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if p.Style != nil {
		if err := e.EncodeElement(p.Style, elem("w:rStyle")); err != nil {
			return err
		}
	}
	if p.Fonts != nil {
		if err := e.Encode(p.Fonts); err != nil {
			return err
		}
	}
	if p.Bold != nil {
		if err := encodeEmpty(e, "w:b"); err != nil {
			return err
		}
	}
	if p.Italic != nil {
		if err := encodeEmpty(e, "w:i"); err != nil {
			return err
		}
	}
	if p.Color != nil {
		if err := encodeEmpty(e, "w:color", attr("w:val", p.Color.Val)); err != nil {
			return err
		}
	}
	if p.Size != nil {
		if err := encodeEmpty(e, "w:sz", intAttr("w:val", p.Size.Val)); err != nil {
			return err
		}
		if err := encodeEmpty(e, "w:szCs", intAttr("w:val", p.Size.Val)); err != nil {
			return err
		}
	}
	if p.Underline != nil {
		if err := encodeEmpty(e, "w:u", attr("w:val", p.Underline.Val)); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Text represents text content
type Text struct {
	Content  string
	Preserve bool
}

func (t *Text) isRunChild() {}

// MarshalXML implements custom XML marshaling for Text to ensure proper namespacing
func (t Text) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = elem("w:t")
	if t.Preserve {
		start.Attr = append(start.Attr, attr("xml:space", "preserve"))
	}
	return e.EncodeElement(t.Content, start)
}

// Break represents a line, page or column break
type Break struct {
	Type types.BreakType
}

func (b *Break) isRunChild() {}

// MarshalXML implements xml.Marshaler to ensure Break is self-closing
func (b Break) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if b.Type == types.BreakTextWrapping {
		return encodeEmpty(e, "w:br")
	}
	return encodeEmpty(e, "w:br", attr("w:type", b.Type.String()))
}

// Tab represents a tab character inside a run
type Tab struct{}

func (t *Tab) isRunChild() {}

// MarshalXML writes a self-closing w:tab
func (Tab) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return encodeEmpty(e, "w:tab")
}

// Color represents text color
type Color struct {
	Val string
}

// Size represents font size in half-points
type Size struct {
	Val int
}

// Underline represents underline formatting
type Underline struct {
	Val string
}

// Fonts represents font information
type Fonts struct {
	ASCII string
	HAnsi string
}

// MarshalXML implements custom XML marshaling for Fonts
func (f Fonts) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	var attrs []xml.Attr
	if f.ASCII != "" {
		attrs = append(attrs, attr("w:ascii", f.ASCII))
	}
	if f.HAnsi != "" {
		attrs = append(attrs, attr("w:hAnsi", f.HAnsi))
	}
	return encodeEmpty(e, "w:rFonts", attrs...)
}
