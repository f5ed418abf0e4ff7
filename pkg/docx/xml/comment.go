package xml

import (
	"encoding/xml"
	"strings"
)

// Comment is the canonical comment payload stored in word/comments.xml
type Comment struct {
	ID         int
	Author     string
	Initials   string
	Date       string
	Paragraphs []*Paragraph
}

// NewComment creates a comment with an id, author and W3CDTF date
func NewComment(id int, author, date string) *Comment {
	return &Comment{ID: id, Author: author, Date: date}
}

// AddParagraph appends a paragraph to the comment body
func (c *Comment) AddParagraph(p *Paragraph) *Comment {
	c.Paragraphs = append(c.Paragraphs, p)
	return c
}

// AddText appends a paragraph holding a single run of text
func (c *Comment) AddText(text string) *Comment {
	return c.AddParagraph(NewParagraph().AddText(text))
}

// Text returns the comment body, one line per paragraph
func (c *Comment) Text() string {
	lines := make([]string, 0, len(c.Paragraphs))
	for _, p := range c.Paragraphs {
		lines = append(lines, p.GetText())
	}
	return strings.Join(lines, "\n")
}

// MarshalXML writes w:comment. A comment body must hold at least one paragraph.
func (c Comment) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = elem("w:comment", intAttr("w:id", c.ID))
	if c.Author != "" {
		start.Attr = append(start.Attr, attr("w:author", c.Author))
	}
	if c.Date != "" {
		start.Attr = append(start.Attr, attr("w:date", c.Date))
	}
	if c.Initials != "" {
		start.Attr = append(start.Attr, attr("w:initials", c.Initials))
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if len(c.Paragraphs) == 0 {
		if err := e.Encode(NewParagraph()); err != nil {
			return err
		}
	}
	for _, p := range c.Paragraphs {
		if err := e.Encode(p); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// CommentRangeStart marks where a comment range begins. It carries the comment payload at the
// point of reference; only the id is written to the document part.
type CommentRangeStart struct {
	ID      int
	Comment *Comment
}

// NewCommentRangeStart creates a range start for the given comment
func NewCommentRangeStart(c *Comment) *CommentRangeStart {
	return &CommentRangeStart{ID: c.ID, Comment: c}
}

func (c *CommentRangeStart) isParagraphChild() {}
func (c *CommentRangeStart) isDocumentChild()  {}

// MarshalXML writes a self-closing w:commentRangeStart
func (c CommentRangeStart) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return encodeEmpty(e, "w:commentRangeStart", intAttr("w:id", c.ID))
}

// CommentRangeEnd marks where a comment range ends
type CommentRangeEnd struct {
	ID int
}

func (c *CommentRangeEnd) isParagraphChild() {}
func (c *CommentRangeEnd) isDocumentChild()  {}

// MarshalXML writes w:commentRangeEnd followed by the run holding the comment reference mark
func (c CommentRangeEnd) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := encodeEmpty(e, "w:commentRangeEnd", intAttr("w:id", c.ID)); err != nil {
		return err
	}
	run := elem("w:r")
	if err := e.EncodeToken(run); err != nil {
		return err
	}
	if err := encodeEmpty(e, "w:commentReference", intAttr("w:id", c.ID)); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: run.Name})
}
