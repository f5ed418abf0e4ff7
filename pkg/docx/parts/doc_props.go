package parts

import "encoding/xml"

// DefaultDate is the created/modified date used until the caller sets one
const DefaultDate = "1970-01-01T00:00:00Z"

const (
	corePropsNamespace = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	appPropsNamespace  = "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties"
	vtNamespace        = "http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes"
)

// CorePropsConfig holds the Dublin Core metadata of the document
type CorePropsConfig struct {
	Created        string
	Modified       string
	Creator        string
	LastModifiedBy string
	Title          string
	Subject        string
	Description    string
	Language       string
	Revision       int
}

// NewCorePropsConfig returns core metadata with default dates and revision 1
func NewCorePropsConfig() CorePropsConfig {
	return CorePropsConfig{
		Created:  DefaultDate,
		Modified: DefaultDate,
		Revision: 1,
	}
}

// DocProps owns docProps/core.xml and docProps/app.xml
type DocProps struct {
	Core CoreProps
	App  AppProps
}

// XMLDocProps holds both serialized property parts
type XMLDocProps struct {
	Core []byte
	App  []byte
}

// NewDocProps creates document properties from the given core configuration
func NewDocProps(config CorePropsConfig) *DocProps {
	return &DocProps{
		Core: CoreProps{Config: config},
		App:  AppProps{Application: "go-docx"},
	}
}

// CreatedAt sets dcterms:created; the value is written verbatim
func (d *DocProps) CreatedAt(date string) *DocProps {
	d.Core.Config.Created = date
	return d
}

// UpdatedAt sets dcterms:modified; the value is written verbatim
func (d *DocProps) UpdatedAt(date string) *DocProps {
	d.Core.Config.Modified = date
	return d
}

// Title sets dc:title
func (d *DocProps) Title(title string) *DocProps {
	d.Core.Config.Title = title
	return d
}

// Creator sets dc:creator and cp:lastModifiedBy
func (d *DocProps) Creator(name string) *DocProps {
	d.Core.Config.Creator = name
	d.Core.Config.LastModifiedBy = name
	return d
}

// Language sets dc:language
func (d *DocProps) Language(lang string) *DocProps {
	d.Core.Config.Language = lang
	return d
}

// Build serializes both property parts
func (d *DocProps) Build() (*XMLDocProps, error) {
	core, err := d.Core.Build()
	if err != nil {
		return nil, err
	}
	app, err := d.App.Build()
	if err != nil {
		return nil, err
	}
	return &XMLDocProps{Core: core, App: app}, nil
}

// CoreProps is docProps/core.xml
type CoreProps struct {
	Config CorePropsConfig
}

type w3cdtf struct {
	Type  string `xml:"xsi:type,attr"`
	Value string `xml:",chardata"`
}

type coreProperties struct {
	XMLName        xml.Name `xml:"cp:coreProperties"`
	CP             string   `xml:"xmlns:cp,attr"`
	DC             string   `xml:"xmlns:dc,attr"`
	DCTerms        string   `xml:"xmlns:dcterms,attr"`
	DCMIType       string   `xml:"xmlns:dcmitype,attr"`
	XSI            string   `xml:"xmlns:xsi,attr"`
	Title          string   `xml:"dc:title,omitempty"`
	Subject        string   `xml:"dc:subject,omitempty"`
	Creator        string   `xml:"dc:creator"`
	Description    string   `xml:"dc:description,omitempty"`
	Language       string   `xml:"dc:language,omitempty"`
	LastModifiedBy string   `xml:"cp:lastModifiedBy"`
	Revision       int      `xml:"cp:revision"`
	Created        w3cdtf   `xml:"dcterms:created"`
	Modified       w3cdtf   `xml:"dcterms:modified"`
}

// Build serializes docProps/core.xml
func (c *CoreProps) Build() ([]byte, error) {
	cfg := c.Config
	return marshal(&coreProperties{
		CP:             corePropsNamespace,
		DC:             "http://purl.org/dc/elements/1.1/",
		DCTerms:        "http://purl.org/dc/terms/",
		DCMIType:       "http://purl.org/dc/dcmitype/",
		XSI:            "http://www.w3.org/2001/XMLSchema-instance",
		Title:          cfg.Title,
		Subject:        cfg.Subject,
		Creator:        cfg.Creator,
		Description:    cfg.Description,
		Language:       cfg.Language,
		LastModifiedBy: cfg.LastModifiedBy,
		Revision:       cfg.Revision,
		Created:        w3cdtf{Type: "dcterms:W3CDTF", Value: cfg.Created},
		Modified:       w3cdtf{Type: "dcterms:W3CDTF", Value: cfg.Modified},
	})
}

// AppProps is docProps/app.xml
type AppProps struct {
	Application string
	TotalTime   int
}

type appProperties struct {
	XMLName     xml.Name `xml:"Properties"`
	Namespace   string   `xml:"xmlns,attr"`
	VT          string   `xml:"xmlns:vt,attr"`
	TotalTime   int      `xml:"TotalTime"`
	Application string   `xml:"Application"`
	DocSecurity int      `xml:"DocSecurity"`
}

// Build serializes docProps/app.xml
func (a *AppProps) Build() ([]byte, error) {
	return marshal(&appProperties{
		Namespace:   appPropsNamespace,
		VT:          vtNamespace,
		TotalTime:   a.TotalTime,
		Application: a.Application,
	})
}
