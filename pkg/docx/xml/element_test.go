package xml

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/benjaminschreck/go-docx/pkg/docx/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshalString(t *testing.T, v any) string {
	t.Helper()
	out, err := xml.Marshal(v)
	require.NoError(t, err)
	return string(out)
}

func TestElementMarshaling(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		contains []string
	}{
		{
			name:     "paragraph with text",
			value:    NewParagraph().AddText("Hello"),
			contains: []string{`<w:p><w:r><w:t xml:space="preserve">Hello</w:t></w:r></w:p>`},
		},
		{
			name:  "text is escaped",
			value: NewRun().AddText("a < b & c"),
			contains: []string{
				`<w:t xml:space="preserve">a &lt; b &amp; c</w:t>`,
			},
		},
		{
			name:  "paragraph properties in schema order",
			value: NewParagraph().Align(types.AlignCenter).Numbering(2, 1).Style("Heading1"),
			contains: []string{
				`<w:pPr><w:pStyle w:val="Heading1"></w:pStyle><w:numPr><w:ilvl w:val="1"></w:ilvl><w:numId w:val="2"></w:numId></w:numPr><w:jc w:val="center"></w:jc></w:pPr>`,
			},
		},
		{
			name:  "run properties",
			value: NewRun().Bold().Italic().Size(28).Color("FF0000").AddText("x"),
			contains: []string{
				`<w:rPr><w:b></w:b><w:i></w:i><w:color w:val="FF0000"></w:color><w:sz w:val="28"></w:sz><w:szCs w:val="28"></w:szCs></w:rPr>`,
			},
		},
		{
			name:     "page break",
			value:    NewRun().AddBreak(types.BreakPage),
			contains: []string{`<w:br w:type="page"></w:br>`},
		},
		{
			name: "comment markers only carry ids",
			value: NewParagraph().
				AddCommentStart(NewComment(3, "A", "2024-01-01T00:00:00Z").AddText("secret")).
				AddText("body").
				AddCommentEnd(3),
			contains: []string{
				`<w:commentRangeStart w:id="3"></w:commentRangeStart>`,
				`<w:commentRangeEnd w:id="3"></w:commentRangeEnd><w:r><w:commentReference w:id="3"></w:commentReference></w:r>`,
			},
		},
		{
			name:     "external hyperlink",
			value:    NewParagraph().AddHyperlink(NewExternalHyperlink("rId9").AddRun(NewRun().AddText("site"))),
			contains: []string{`<w:hyperlink r:id="rId9" w:history="1"><w:r>`},
		},
		{
			name:  "bookmark",
			value: NewParagraph().AddBookmarkStart(0, "top").AddBookmarkEnd(0),
			contains: []string{
				`<w:bookmarkStart w:id="0" w:name="top"></w:bookmarkStart><w:bookmarkEnd w:id="0"></w:bookmarkEnd>`,
			},
		},
		{
			name:  "table width uses width type token",
			value: NewTable(NewTableRow(NewTableCell().Width(2000, types.DXA))).Width(0, types.Auto).SetGrid(2000),
			contains: []string{
				`<w:tblW w:w="0" w:type="auto"></w:tblW>`,
				`<w:tblGrid><w:gridCol w:w="2000"></w:gridCol></w:tblGrid>`,
				`<w:tcW w:w="2000" w:type="dxa"></w:tcW>`,
			},
		},
		{
			name:     "empty cell gets a paragraph",
			value:    NewTableCell(),
			contains: []string{`<w:tc><w:p></w:p></w:tc>`},
		},
		{
			name:     "cell ending with nested table gets a paragraph",
			value:    NewTableCell().AddTable(NewTable(NewTableRow(NewTableCell()))),
			contains: []string{`</w:tbl><w:p></w:p></w:tc>`},
		},
		{
			name:  "comment part entry",
			value: NewComment(1, "A", "2024-01-01T00:00:00Z").AddText("hi"),
			contains: []string{
				`<w:comment w:id="1" w:author="A" w:date="2024-01-01T00:00:00Z">`,
				`<w:t xml:space="preserve">hi</w:t>`,
			},
		},
		{
			name:     "section break",
			value:    &SectionBreak{},
			contains: []string{`<w:p><w:pPr><w:sectPr><w:pgSz w:w="11906" w:h="16838"></w:pgSz>`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := marshalString(t, tt.value)
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestDocumentBuild(t *testing.T) {
	doc := NewDocument().
		AddParagraph(NewParagraph().AddText("first")).
		AddTable(NewTable(NewTableRow(NewTableCell().AddParagraph(NewParagraph().AddText("cell")))))

	out, err := doc.Build()
	require.NoError(t, err)

	s := string(out)
	assert.True(t, strings.HasPrefix(s, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`))
	assert.Contains(t, s, `<w:document xmlns:w="`+NamespaceW+`" xmlns:r="`+NamespaceR+`"><w:body>`)
	assert.Less(t, strings.Index(s, "first"), strings.Index(s, "cell"), "body order must be preserved")
	assert.True(t, strings.HasSuffix(s, `</w:sectPr></w:body></w:document>`))

	// The output must be well-formed
	var probe struct{}
	require.NoError(t, xml.Unmarshal(out, &probe))
}

func TestGetText(t *testing.T) {
	p := NewParagraph().
		AddText("Hello, ").
		AddHyperlink(NewAnchorHyperlink("top").AddRun(NewRun().AddText("world"))).
		AddRun(NewRun().AddTab().AddText("!"))
	assert.Equal(t, "Hello, world\t!", p.GetText())

	cell := NewTableCell().AddParagraph(NewParagraph().AddText("a")).AddParagraph(NewParagraph().AddText("b"))
	assert.Equal(t, "a\nb", cell.GetText())

	c := NewComment(1, "", "").AddText("one").AddText("two")
	assert.Equal(t, "one\ntwo", c.Text())
}

func TestCommentClone(t *testing.T) {
	original := NewComment(5, "Alice", "2024-05-01T10:00:00Z").
		AddParagraph(NewParagraph().Style("CommentText").AddRun(NewRun().Bold().AddText("note")))

	clone := original.Clone()
	require.NotSame(t, original, clone)
	assert.Equal(t, original, clone)

	// Mutating the clone must not leak into the original
	clone.Paragraphs[0].Properties.Style.Val = "Other"
	clone.Paragraphs[0].Children[0].(*Run).Children[0].(*Text).Content = "changed"
	clone.Author = "Bob"

	assert.Equal(t, "CommentText", original.Paragraphs[0].Properties.Style.Val)
	assert.Equal(t, "note", original.Paragraphs[0].GetText())
	assert.Equal(t, "Alice", original.Author)

	var nilComment *Comment
	assert.Nil(t, nilComment.Clone())
}
