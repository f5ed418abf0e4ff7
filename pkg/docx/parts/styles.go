package parts

import (
	"encoding/xml"
	"fmt"

	"github.com/benjaminschreck/go-docx/pkg/docx/types"
	dxml "github.com/benjaminschreck/go-docx/pkg/docx/xml"
)

// Style is a single w:style definition
type Style struct {
	ID      string
	Name    string
	Type    types.StyleType
	BasedOn string
	Next    string
	Default bool
	// QuickFormat shows the style in the style gallery
	QuickFormat         bool
	ParagraphProperties *dxml.ParagraphProperties
	RunProperties       *dxml.RunProperties
}

// NewStyle creates a style definition
func NewStyle(id string, styleType types.StyleType) *Style {
	return &Style{ID: id, Name: id, Type: styleType}
}

// Styles represents the w:styles element in styles.xml
type Styles struct {
	// DocDefaults holds the run properties every style inherits from
	DocDefaults *dxml.RunProperties
	styles      []*Style
}

// NewStyles creates the styles part with document defaults and the four default styles Word
// expects (Normal, DefaultParagraphFont, TableNormal, NoList)
func NewStyles() *Styles {
	s := &Styles{
		DocDefaults: &dxml.RunProperties{
			Fonts: &dxml.Fonts{ASCII: "Calibri", HAnsi: "Calibri"},
			Size:  &dxml.Size{Val: 22},
		},
	}
	s.AddStyle(&Style{ID: "Normal", Name: "Normal", Type: types.StyleParagraph, Default: true, QuickFormat: true})
	s.AddStyle(&Style{ID: "DefaultParagraphFont", Name: "Default Paragraph Font", Type: types.StyleCharacter, Default: true})
	s.AddStyle(&Style{ID: "TableNormal", Name: "Normal Table", Type: types.StyleTable, Default: true})
	s.AddStyle(&Style{ID: "NoList", Name: "No List", Type: types.StyleNumbering, Default: true})
	return s
}

// AddStyle adds a style definition; a style with an existing id replaces it
func (s *Styles) AddStyle(style *Style) *Styles {
	for i, existing := range s.styles {
		if existing.ID == style.ID {
			s.styles[i] = style
			return s
		}
	}
	s.styles = append(s.styles, style)
	return s
}

// Get returns the style with the given id
func (s *Styles) Get(id string) (*Style, bool) {
	for _, style := range s.styles {
		if style.ID == id {
			return style, true
		}
	}
	return nil, false
}

// Has reports whether a style id is defined
func (s *Styles) Has(id string) bool {
	_, ok := s.Get(id)
	return ok
}

// Styles returns the style definitions in insertion order
func (s *Styles) Styles() []*Style {
	return append([]*Style(nil), s.styles...)
}

type valElement struct {
	Val string `xml:"w:val,attr"`
}

type styleXML struct {
	XMLName     xml.Name                  `xml:"w:style"`
	Type        string                    `xml:"w:type,attr"`
	Default     string                    `xml:"w:default,attr,omitempty"`
	StyleID     string                    `xml:"w:styleId,attr"`
	Name        valElement                `xml:"w:name"`
	BasedOn     *valElement               `xml:"w:basedOn"`
	Next        *valElement               `xml:"w:next"`
	QuickFormat *struct{}                 `xml:"w:qFormat"`
	PPr         *dxml.ParagraphProperties `xml:"w:pPr"`
	RPr         *dxml.RunProperties       `xml:"w:rPr"`
}

type docDefaultsXML struct {
	RPrDefault struct {
		RPr *dxml.RunProperties `xml:"w:rPr"`
	} `xml:"w:rPrDefault"`
	PPrDefault struct{} `xml:"w:pPrDefault"`
}

type stylesXML struct {
	XMLName     xml.Name        `xml:"w:styles"`
	W           string          `xml:"xmlns:w,attr"`
	DocDefaults *docDefaultsXML `xml:"w:docDefaults"`
	Styles      []styleXML      `xml:"w:style"`
}

// Build serializes word/styles.xml
func (s *Styles) Build() ([]byte, error) {
	out := stylesXML{W: dxml.NamespaceW}
	if s.DocDefaults != nil {
		out.DocDefaults = &docDefaultsXML{}
		out.DocDefaults.RPrDefault.RPr = s.DocDefaults
	}
	for _, style := range s.styles {
		if style.ID == "" {
			return nil, fmt.Errorf("style %q has no id", style.Name)
		}
		sx := styleXML{
			Type:    style.Type.String(),
			StyleID: style.ID,
			Name:    valElement{Val: style.Name},
			PPr:     style.ParagraphProperties,
			RPr:     style.RunProperties,
		}
		if style.Default {
			sx.Default = "1"
		}
		if style.BasedOn != "" {
			sx.BasedOn = &valElement{Val: style.BasedOn}
		}
		if style.Next != "" {
			sx.Next = &valElement{Val: style.Next}
		}
		if style.QuickFormat {
			sx.QuickFormat = &struct{}{}
		}
		out.Styles = append(out.Styles, sx)
	}
	return marshal(&out)
}
