package parts

import (
	"encoding/xml"

	dxml "github.com/benjaminschreck/go-docx/pkg/docx/xml"
)

// Comments is the comments part (word/comments.xml)
type Comments struct {
	comments []*dxml.Comment
}

// NewComments creates an empty comments part
func NewComments() *Comments {
	return &Comments{}
}

// ReplaceComments replaces the whole collection
func (c *Comments) ReplaceComments(comments []*dxml.Comment) *Comments {
	c.comments = comments
	return c
}

// Comments returns the comments in order
func (c *Comments) Comments() []*dxml.Comment {
	return append([]*dxml.Comment(nil), c.comments...)
}

// Len returns the number of comments
func (c *Comments) Len() int {
	return len(c.comments)
}

type commentsXML struct {
	XMLName  xml.Name        `xml:"w:comments"`
	W        string          `xml:"xmlns:w,attr"`
	R        string          `xml:"xmlns:r,attr"`
	Comments []*dxml.Comment `xml:"w:comment"`
}

// Build serializes word/comments.xml
func (c *Comments) Build() ([]byte, error) {
	return marshal(&commentsXML{
		W:        dxml.NamespaceW,
		R:        dxml.NamespaceR,
		Comments: c.comments,
	})
}
