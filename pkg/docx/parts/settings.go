package parts

import (
	"encoding/xml"
	"strings"

	"github.com/google/uuid"

	dxml "github.com/benjaminschreck/go-docx/pkg/docx/xml"
)

const w15Namespace = "http://schemas.microsoft.com/office/word/2012/wordml"

// Settings is the document settings part (word/settings.xml)
type Settings struct {
	DefaultTabStop    int // twips
	Zoom              int // percent
	EvenAndOddHeaders bool
	// CompatibilityMode is the Word version the layout emulates (15 = Word 2013+)
	CompatibilityMode int
	// DocID identifies the document across saves (w15:docId)
	DocID uuid.UUID
}

// NewSettings creates settings with Word defaults and a fresh document id
func NewSettings() *Settings {
	return &Settings{
		DefaultTabStop:    709,
		Zoom:              100,
		CompatibilityMode: 15,
		DocID:             uuid.New(),
	}
}

// SetDocID replaces the generated document id
func (s *Settings) SetDocID(id uuid.UUID) *Settings {
	s.DocID = id
	return s
}

type percentElement struct {
	Percent int `xml:"w:percent,attr"`
}

type intValElement struct {
	Val int `xml:"w:val,attr"`
}

type compatSettingXML struct {
	Name string `xml:"w:name,attr"`
	URI  string `xml:"w:uri,attr"`
	Val  int    `xml:"w:val,attr"`
}

type w15ValElement struct {
	Val string `xml:"w15:val,attr"`
}

type settingsXML struct {
	XMLName                 xml.Name       `xml:"w:settings"`
	W                       string         `xml:"xmlns:w,attr"`
	W15                     string         `xml:"xmlns:w15,attr"`
	Zoom                    percentElement `xml:"w:zoom"`
	EvenAndOddHeaders       *struct{}      `xml:"w:evenAndOddHeaders"`
	DefaultTabStop          intValElement  `xml:"w:defaultTabStop"`
	CharacterSpacingControl valElement     `xml:"w:characterSpacingControl"`
	Compat                  struct {
		Settings []compatSettingXML `xml:"w:compatSetting"`
	} `xml:"w:compat"`
	DocID w15ValElement `xml:"w15:docId"`
}

// Build serializes word/settings.xml
func (s *Settings) Build() ([]byte, error) {
	out := settingsXML{
		W:                       dxml.NamespaceW,
		W15:                     w15Namespace,
		Zoom:                    percentElement{Percent: s.Zoom},
		DefaultTabStop:          intValElement{Val: s.DefaultTabStop},
		CharacterSpacingControl: valElement{Val: "doNotCompress"},
		DocID:                   w15ValElement{Val: "{" + strings.ToUpper(s.DocID.String()) + "}"},
	}
	if s.EvenAndOddHeaders {
		out.EvenAndOddHeaders = &struct{}{}
	}
	out.Compat.Settings = []compatSettingXML{{
		Name: "compatibilityMode",
		URI:  "http://schemas.microsoft.com/office/word",
		Val:  s.CompatibilityMode,
	}}
	return marshal(&out)
}
