package parts

import (
	"encoding/xml"
	"strings"
)

const contentTypesNamespace = "http://schemas.openxmlformats.org/package/2006/content-types"

// Content types of the parts this package produces
const (
	ContentTypeRelationships = "application/vnd.openxmlformats-package.relationships+xml"
	ContentTypeXML           = "application/xml"
	ContentTypeDocument      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	ContentTypeStyles        = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	ContentTypeSettings      = "application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml"
	ContentTypeFontTable     = "application/vnd.openxmlformats-officedocument.wordprocessingml.fontTable+xml"
	ContentTypeComments      = "application/vnd.openxmlformats-officedocument.wordprocessingml.comments+xml"
	ContentTypeNumbering     = "application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"
	ContentTypeCoreProps     = "application/vnd.openxmlformats-package.core-properties+xml"
	ContentTypeAppProps      = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
)

// Default maps a file extension to a content type
type Default struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// Override maps a single part to a content type
type Override struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// ContentTypes is the [Content_Types].xml registry
type ContentTypes struct {
	XMLName   xml.Name   `xml:"Types"`
	Namespace string     `xml:"xmlns,attr"`
	Defaults  []Default  `xml:"Default"`
	Overrides []Override `xml:"Override"`
}

// NewContentTypes creates the registry seeded with the defaults and one override per produced part
func NewContentTypes() *ContentTypes {
	ct := &ContentTypes{Namespace: contentTypesNamespace}
	ct.AddDefault("rels", ContentTypeRelationships)
	ct.AddDefault("xml", ContentTypeXML)
	ct.AddOverride(PathDocument, ContentTypeDocument)
	ct.AddOverride(PathStyles, ContentTypeStyles)
	ct.AddOverride(PathSettings, ContentTypeSettings)
	ct.AddOverride(PathFontTable, ContentTypeFontTable)
	ct.AddOverride(PathComments, ContentTypeComments)
	ct.AddOverride(PathNumbering, ContentTypeNumbering)
	ct.AddOverride(PathCoreProps, ContentTypeCoreProps)
	ct.AddOverride(PathAppProps, ContentTypeAppProps)
	return ct
}

// AddDefault registers an extension; registering an extension twice replaces its content type
func (ct *ContentTypes) AddDefault(ext, contentType string) *ContentTypes {
	ext = strings.TrimPrefix(ext, ".")
	for i := range ct.Defaults {
		if strings.EqualFold(ct.Defaults[i].Extension, ext) {
			ct.Defaults[i].ContentType = contentType
			return ct
		}
	}
	ct.Defaults = append(ct.Defaults, Default{Extension: ext, ContentType: contentType})
	return ct
}

// AddOverride registers a part path; registering a part twice replaces its content type
func (ct *ContentTypes) AddOverride(partPath, contentType string) *ContentTypes {
	name := partName(partPath)
	for i := range ct.Overrides {
		if ct.Overrides[i].PartName == name {
			ct.Overrides[i].ContentType = contentType
			return ct
		}
	}
	ct.Overrides = append(ct.Overrides, Override{PartName: name, ContentType: contentType})
	return ct
}

// Resolve returns the content type of a part path, checking overrides before extension defaults
func (ct *ContentTypes) Resolve(partPath string) (string, bool) {
	name := partName(partPath)
	for _, o := range ct.Overrides {
		if o.PartName == name {
			return o.ContentType, true
		}
	}
	if idx := strings.LastIndex(name, "."); idx != -1 {
		ext := name[idx+1:]
		for _, d := range ct.Defaults {
			if strings.EqualFold(d.Extension, ext) {
				return d.ContentType, true
			}
		}
	}
	return "", false
}

// HasOverride reports whether the part path has an explicit override
func (ct *ContentTypes) HasOverride(partPath string) bool {
	name := partName(partPath)
	for _, o := range ct.Overrides {
		if o.PartName == name {
			return true
		}
	}
	return false
}

// Build serializes [Content_Types].xml
func (ct *ContentTypes) Build() ([]byte, error) {
	return marshal(ct)
}

// partName converts a package path to an absolute part name ("word/a.xml" -> "/word/a.xml")
func partName(p string) string {
	if strings.HasPrefix(p, "/") {
		return p
	}
	return "/" + p
}
