package docx

import (
	dxml "github.com/benjaminschreck/go-docx/pkg/docx/xml"
)

// updateComments replaces the comments part with copies of every comment referenced from a
// top-level paragraph or from a paragraph directly inside a table cell, in document order.
// Range starts anywhere else are not looked at.
func (d *Docx) updateComments() {
	var comments []*dxml.Comment
	dropped := 0

	for _, child := range d.document.Children {
		switch c := child.(type) {
		case *dxml.Paragraph:
			comments = appendParagraphComments(comments, c)
		case *dxml.Table:
			for _, row := range c.Rows {
				for _, cell := range row.Cells {
					for _, content := range cell.Contents {
						switch cc := content.(type) {
						case *dxml.Paragraph:
							comments = appendParagraphComments(comments, cc)
						case *dxml.Table:
							dropped += countTableComments(cc)
						}
					}
				}
			}
		case *dxml.CommentRangeStart:
			dropped++
		}
	}

	if d.config.DefaultAuthor != "" {
		for _, c := range comments {
			if c.Author == "" {
				c.Author = d.config.DefaultAuthor
			}
		}
	}

	d.comments.ReplaceComments(comments)

	logger := d.log()
	logger.Debug("extracted %d comments", len(comments))
	if dropped > 0 {
		logger.WithField("dropped", dropped).Warn("comment ranges outside paragraphs and table cells are not exported")
	}
}

func appendParagraphComments(comments []*dxml.Comment, p *dxml.Paragraph) []*dxml.Comment {
	for _, child := range p.Children {
		if start, ok := child.(*dxml.CommentRangeStart); ok && start.Comment != nil {
			comments = append(comments, start.Comment.Clone())
		}
	}
	return comments
}

func countTableComments(t *dxml.Table) int {
	n := 0
	for _, row := range t.Rows {
		for _, cell := range row.Cells {
			for _, content := range cell.Contents {
				switch cc := content.(type) {
				case *dxml.Paragraph:
					for _, child := range cc.Children {
						if _, ok := child.(*dxml.CommentRangeStart); ok {
							n++
						}
					}
				case *dxml.Table:
					n += countTableComments(cc)
				}
			}
		}
	}
	return n
}
