package xml

import "encoding/xml"

// BookmarkStart opens a named bookmark range
type BookmarkStart struct {
	ID   int
	Name string
}

func (b *BookmarkStart) isParagraphChild() {}
func (b *BookmarkStart) isDocumentChild()  {}

// MarshalXML writes a self-closing w:bookmarkStart
func (b BookmarkStart) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return encodeEmpty(e, "w:bookmarkStart", intAttr("w:id", b.ID), attr("w:name", b.Name))
}

// BookmarkEnd closes a bookmark range
type BookmarkEnd struct {
	ID int
}

func (b *BookmarkEnd) isParagraphChild() {}
func (b *BookmarkEnd) isDocumentChild()  {}

// MarshalXML writes a self-closing w:bookmarkEnd
func (b BookmarkEnd) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return encodeEmpty(e, "w:bookmarkEnd", intAttr("w:id", b.ID))
}
