package parts

import (
	dxml "github.com/benjaminschreck/go-docx/pkg/docx/xml"
)

// Part is a package part that can serialize itself
type Part interface {
	Build() ([]byte, error)
}

// Part paths inside the package
const (
	PathContentTypes = "[Content_Types].xml"
	PathRels         = "_rels/.rels"
	PathCoreProps    = "docProps/core.xml"
	PathAppProps     = "docProps/app.xml"
	PathDocumentRels = "word/_rels/document.xml.rels"
	PathDocument     = "word/document.xml"
	PathStyles       = "word/styles.xml"
	PathComments     = "word/comments.xml"
	PathNumbering    = "word/numbering.xml"
	PathSettings     = "word/settings.xml"
	PathFontTable    = "word/fontTable.xml"
)

func marshal(v any) ([]byte, error) {
	return dxml.Marshal(v)
}
