package parts

import (
	"encoding/xml"

	dxml "github.com/benjaminschreck/go-docx/pkg/docx/xml"
)

// Font is a font table entry
type Font struct {
	Name    string
	Charset string
	Family  string // roman, swiss, modern, ...
	Pitch   string // fixed, variable
}

// FontTable is the font table part (word/fontTable.xml)
type FontTable struct {
	fonts []Font
}

// NewFontTable creates the font table with the fonts referenced by the default styles
func NewFontTable() *FontTable {
	return &FontTable{fonts: []Font{
		{Name: "Calibri", Charset: "00", Family: "swiss", Pitch: "variable"},
		{Name: "Times New Roman", Charset: "00", Family: "roman", Pitch: "variable"},
		{Name: "Arial", Charset: "00", Family: "swiss", Pitch: "variable"},
	}}
}

// AddFont registers a font; fonts are keyed by name
func (f *FontTable) AddFont(font Font) *FontTable {
	for i, existing := range f.fonts {
		if existing.Name == font.Name {
			f.fonts[i] = font
			return f
		}
	}
	f.fonts = append(f.fonts, font)
	return f
}

// Has reports whether a font is registered
func (f *FontTable) Has(name string) bool {
	for _, font := range f.fonts {
		if font.Name == name {
			return true
		}
	}
	return false
}

type fontXML struct {
	Name    string      `xml:"w:name,attr"`
	Charset *valElement `xml:"w:charset"`
	Family  *valElement `xml:"w:family"`
	Pitch   *valElement `xml:"w:pitch"`
}

type fontsXML struct {
	XMLName xml.Name  `xml:"w:fonts"`
	W       string    `xml:"xmlns:w,attr"`
	Fonts   []fontXML `xml:"w:font"`
}

func optionalVal(v string) *valElement {
	if v == "" {
		return nil
	}
	return &valElement{Val: v}
}

// Build serializes word/fontTable.xml
func (f *FontTable) Build() ([]byte, error) {
	out := fontsXML{W: dxml.NamespaceW}
	for _, font := range f.fonts {
		out.Fonts = append(out.Fonts, fontXML{
			Name:    font.Name,
			Charset: optionalVal(font.Charset),
			Family:  optionalVal(font.Family),
			Pitch:   optionalVal(font.Pitch),
		})
	}
	return marshal(&out)
}
