// Package docx assembles WordprocessingML (.docx) documents.
//
// A Docx owns the document tree and every package part (content types, relationships, document
// properties, styles, numbering, comments, settings and the font table) and keeps the ids they
// share consistent. Build serializes all parts into an XMLDocx, which Pack turns into a ZIP
// archive.
//
// # Quick Start
//
//	doc := docx.New().
//	    Title("Quarterly report").
//	    CreatedAt("2024-01-02T00:00:00Z")
//
//	comment := xml.NewComment(1, "Alice", "2024-01-02T00:00:00Z").AddText("check this")
//	doc.AddParagraph(xml.NewParagraph().
//	    AddCommentStart(comment).
//	    AddText("Revenue grew by 12%").
//	    AddCommentEnd(1))
//
//	out, err := doc.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := out.WriteFile("report.docx"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Comments
//
// Build copies the payload of every comment range start found in a top-level paragraph or in
// a paragraph directly inside a table cell into the comments part, in document order. Range
// starts placed anywhere else (at the top level of the body or inside a nested table) are not
// exported.
//
// # Consistency
//
// Before any part is serialized, Build checks that every numbering, style, hyperlink
// relationship and comment id used by the tree exists in its owning part, and that every
// internal relationship target has a content type. All unresolved references are reported
// together in an *IntegrityError.
//
// # Configuration
//
// Configuration is read from defaults, an optional YAML or TOML file and the environment:
//
//	DOCX_LOG_LEVEL       - debug, info, warn, error or off
//	DOCX_STRICT_MODE     - reject core property dates that are not RFC 3339
//	DOCX_COMPRESSION     - deflate or store
//	DOCX_DEFAULT_AUTHOR  - author for comments that have none
//	DOCX_LANGUAGE        - dc:language of the core properties
package docx
