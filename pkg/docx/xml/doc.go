// Package xml provides the WordprocessingML element tree used to assemble DOCX documents.
//
// The tree is strictly owned: a Document owns its children, a Table owns its rows, a row owns its
// cells and a cell owns its contents. Every node marshals itself with the conventional "w:" prefix
// so the output can be embedded directly in word/document.xml or word/comments.xml.
//
// # Structure Organization
//
//   - types.go: sealed content interfaces (DocumentChild, ParagraphChild, RunChild,
//     TableCellContent) and small shared value elements
//   - document.go: Document, section properties and section breaks
//   - paragraph.go: Paragraph, its properties and Hyperlink
//   - run.go: Run, run properties, Text, Break and Tab
//   - table.go: Table, TableRow, TableCell and their properties
//   - comment.go: Comment payloads and comment range markers
//   - bookmark.go: bookmark range markers
//   - clone.go: deep copies used when content is extracted into other parts
//
// # Usage
//
//	p := xml.NewParagraph().
//	    AddCommentStart(xml.NewComment(1, "Alice", "2024-01-02T00:00:00Z").AddText("check this")).
//	    AddRun(xml.NewRun().AddText("Hello, world!")).
//	    AddCommentEnd(1)
//
// # XML Namespaces
//
//   - w: (word processing) - Main WordProcessingML namespace
//   - r: (relationships) - Relationships namespace
package xml
