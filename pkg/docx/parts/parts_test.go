package parts

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjaminschreck/go-docx/pkg/docx/types"
	dxml "github.com/benjaminschreck/go-docx/pkg/docx/xml"
)

func buildString(t *testing.T, p Part) string {
	t.Helper()
	out, err := p.Build()
	require.NoError(t, err)

	// Every part must be well-formed XML
	var probe struct{}
	require.NoError(t, xml.Unmarshal(out, &probe), string(out))
	return string(out)
}

func TestPartsBuildDefaults(t *testing.T) {
	tests := []struct {
		name     string
		part     Part
		contains []string
	}{
		{
			name: "content types",
			part: NewContentTypes(),
			contains: []string{
				`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`,
				`<Default Extension="rels" ContentType="` + ContentTypeRelationships + `"></Default>`,
				`<Default Extension="xml" ContentType="application/xml"></Default>`,
				`<Override PartName="/word/document.xml" ContentType="` + ContentTypeDocument + `"></Override>`,
				`<Override PartName="/word/comments.xml" ContentType="` + ContentTypeComments + `"></Override>`,
				`<Override PartName="/docProps/core.xml" ContentType="` + ContentTypeCoreProps + `"></Override>`,
			},
		},
		{
			name: "package rels",
			part: NewRels(),
			contains: []string{
				`<Relationship Id="rId1" Type="` + RelTypeCoreProps + `" Target="docProps/core.xml"></Relationship>`,
				`<Relationship Id="rId3" Type="` + RelTypeOfficeDocument + `" Target="word/document.xml"></Relationship>`,
			},
		},
		{
			name: "document rels",
			part: NewDocumentRels(),
			contains: []string{
				`Target="styles.xml"`,
				`Target="comments.xml"`,
				`Target="numbering.xml"`,
			},
		},
		{
			name: "styles",
			part: NewStyles(),
			contains: []string{
				`<w:docDefaults><w:rPrDefault><w:rPr><w:rFonts w:ascii="Calibri" w:hAnsi="Calibri"></w:rFonts>`,
				`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"></w:name><w:qFormat></w:qFormat></w:style>`,
				`w:styleId="TableNormal"`,
			},
		},
		{
			name:     "empty numbering",
			part:     NewNumberings(),
			contains: []string{`<w:numbering xmlns:w="` + dxml.NamespaceW + `"></w:numbering>`},
		},
		{
			name: "font table",
			part: NewFontTable(),
			contains: []string{
				`<w:font w:name="Calibri"><w:charset w:val="00"></w:charset><w:family w:val="swiss"></w:family>`,
			},
		},
		{
			name:     "empty comments",
			part:     NewComments(),
			contains: []string{`<w:comments xmlns:w="` + dxml.NamespaceW + `" xmlns:r="` + dxml.NamespaceR + `"></w:comments>`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildString(t, tt.part)
			assert.True(t, strings.HasPrefix(got, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`))
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestContentTypesRegistry(t *testing.T) {
	ct := NewContentTypes()
	ct.AddDefault(".png", "image/png").AddDefault("PNG", "image/x-png")
	ct.AddOverride("/word/header1.xml", "application/header")

	got, ok := ct.Resolve("word/media/image1.png")
	require.True(t, ok)
	assert.Equal(t, "image/x-png", got, "extension defaults are case-insensitive and replaced")

	got, ok = ct.Resolve("word/header1.xml")
	require.True(t, ok)
	assert.Equal(t, "application/header", got)

	got, ok = ct.Resolve("word/other.xml")
	require.True(t, ok)
	assert.Equal(t, ContentTypeXML, got, "falls back to the xml default")

	_, ok = ct.Resolve("word/blob.bin")
	assert.False(t, ok)

	assert.True(t, ct.HasOverride(PathStyles))
	assert.False(t, ct.HasOverride("word/other.xml"))
}

func TestDocumentRels(t *testing.T) {
	rels := NewDocumentRels()
	id := rels.AddHyperlink("https://example.com/?a=1&b=2")
	assert.Equal(t, "rId6", id)

	rel, ok := rels.Get(id)
	require.True(t, ok)
	assert.Equal(t, TargetModeExternal, rel.TargetMode)
	assert.True(t, rels.Has("rId1"))
	assert.False(t, rels.Has("rId99"))

	out, err := rels.Build()
	require.NoError(t, err)
	parsed, err := ParseRelationships(out)
	require.NoError(t, err)
	require.Len(t, parsed, 6)
	assert.Equal(t, "https://example.com/?a=1&b=2", parsed[5].Target)
}

func TestPackageRels(t *testing.T) {
	rels := NewRels()
	id := rels.Add("http://schemas.openxmlformats.org/officeDocument/2006/relationships/custom-properties", "docProps/custom.xml")
	assert.Equal(t, "rId4", id)

	all := rels.Relationships()
	require.Len(t, all, 4)
	assert.Equal(t, PathDocument, all[2].Target)
	assert.Equal(t, "docProps/custom.xml", all[3].Target)
	assert.Empty(t, all[3].TargetMode)

	all[0].Target = "changed"
	assert.Equal(t, PathCoreProps, rels.Relationships()[0].Target, "returns a copy")

	out, err := rels.Build()
	require.NoError(t, err)
	parsed, err := ParseRelationships(out)
	require.NoError(t, err)
	assert.Equal(t, rels.Relationships(), parsed)
}

func TestRelationshipsPath(t *testing.T) {
	tests := []struct {
		part string
		want string
	}{
		{"word/document.xml", "word/_rels/document.xml.rels"},
		{"document.xml", "_rels/document.xml.rels"},
		{"word/sub/part.xml", "word/sub/_rels/part.xml.rels"},
	}
	for _, tt := range tests {
		t.Run(tt.part, func(t *testing.T) {
			assert.Equal(t, tt.want, RelationshipsPath(tt.part))
		})
	}
}

func TestDocPropsDatesVerbatim(t *testing.T) {
	props := NewDocProps(NewCorePropsConfig()).
		CreatedAt("2019-01-01T00:00:00Z").
		UpdatedAt("not a date").
		Title("Report").
		Creator("Alice")

	out, err := props.Build()
	require.NoError(t, err)

	core := string(out.Core)
	assert.Contains(t, core, `<dcterms:created xsi:type="dcterms:W3CDTF">2019-01-01T00:00:00Z</dcterms:created>`)
	assert.Contains(t, core, `<dcterms:modified xsi:type="dcterms:W3CDTF">not a date</dcterms:modified>`)
	assert.Contains(t, core, `<dc:title>Report</dc:title>`)
	assert.Contains(t, core, `<dc:creator>Alice</dc:creator>`)
	assert.Contains(t, core, `<cp:revision>1</cp:revision>`)
	assert.Contains(t, string(out.App), `<Application>go-docx</Application>`)
}

func TestDocPropsDefaults(t *testing.T) {
	out, err := NewDocProps(NewCorePropsConfig()).Build()
	require.NoError(t, err)
	assert.Contains(t, string(out.Core), DefaultDate)
	assert.NotContains(t, string(out.Core), "dc:title")
}

func TestStyles(t *testing.T) {
	styles := NewStyles()
	assert.True(t, styles.Has("Normal"))
	assert.False(t, styles.Has("Heading1"))

	heading := NewStyle("Heading1", types.StyleParagraph)
	heading.Name = "heading 1"
	heading.BasedOn = "Normal"
	heading.Next = "Normal"
	heading.RunProperties = &dxml.RunProperties{Bold: &dxml.Empty{}}
	styles.AddStyle(heading)

	// Replacing keeps a single definition
	styles.AddStyle(heading)
	assert.Len(t, styles.Styles(), 5)

	got := buildString(t, styles)
	assert.Contains(t, got, `<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"></w:name><w:basedOn w:val="Normal"></w:basedOn><w:next w:val="Normal"></w:next><w:rPr><w:b></w:b></w:rPr></w:style>`)

	styles.AddStyle(&Style{Name: "broken"})
	_, err := styles.Build()
	assert.Error(t, err)
}

func TestNumberings(t *testing.T) {
	n := NewNumberings().
		AddAbstractNumbering(NewDecimalAbstractNumbering(0)).
		AddNumbering(NewNumbering(1, 0)).
		AddNumbering(Numbering{ID: 2, AbstractNumID: 0, LevelOverrides: []LevelOverride{{Level: 0, StartOverride: 5}}})

	assert.True(t, n.HasNumbering(1))
	assert.True(t, n.HasAbstractNumbering(0))
	assert.False(t, n.HasNumbering(0))

	n.AddAbstractNumbering(NewBulletAbstractNumbering(4)).AddAbstractNumbering(NewBulletAbstractNumbering(0))
	abstracts := n.AbstractNumberings()
	require.Len(t, abstracts, 2)
	assert.Equal(t, 0, abstracts[0].ID)
	assert.Equal(t, "bullet", abstracts[0].Levels[0].Format, "an existing id is replaced in place")
	assert.Equal(t, 4, abstracts[1].ID)
	n.AddAbstractNumbering(NewDecimalAbstractNumbering(0))

	got := buildString(t, n)
	assert.Contains(t, got, `<w:abstractNum w:abstractNumId="0"><w:multiLevelType w:val="hybridMultilevel"></w:multiLevelType><w:lvl w:ilvl="0"><w:start w:val="1"></w:start><w:numFmt w:val="decimal"></w:numFmt><w:lvlText w:val="%1."></w:lvlText><w:lvlJc w:val="left"></w:lvlJc><w:pPr><w:ind w:left="720" w:hanging="360"></w:ind></w:pPr></w:lvl>`)
	assert.Contains(t, got, `<w:num w:numId="2"><w:abstractNumId w:val="0"></w:abstractNumId><w:lvlOverride w:ilvl="0"><w:startOverride w:val="5"></w:startOverride></w:lvlOverride></w:num>`)
	assert.Less(t, strings.Index(got, "w:abstractNum "), strings.Index(got, "<w:num "), "abstract definitions come first")

	bad := NewNumberings().AddAbstractNumbering(NewAbstractNumbering(3, Level{Level: 9}))
	_, err := bad.Build()
	assert.Error(t, err)
}

func TestSettings(t *testing.T) {
	id := uuid.MustParse("3f2504e0-4f89-11d3-9a0c-0305e82c3301")
	s := NewSettings().SetDocID(id)
	got := buildString(t, s)
	assert.Contains(t, got, `<w:zoom w:percent="100"></w:zoom>`)
	assert.Contains(t, got, `<w:defaultTabStop w:val="709"></w:defaultTabStop>`)
	assert.Contains(t, got, `<w15:docId w15:val="{3F2504E0-4F89-11D3-9A0C-0305E82C3301}"></w15:docId>`)
	assert.NotContains(t, got, "evenAndOddHeaders")

	assert.NotEqual(t, NewSettings().DocID, NewSettings().DocID, "each settings part gets its own id")
}

func TestComments(t *testing.T) {
	c := NewComments()
	c.ReplaceComments([]*dxml.Comment{
		dxml.NewComment(1, "A", "2024-01-01T00:00:00Z").AddText("hi"),
	})
	require.Equal(t, 1, c.Len())

	got := buildString(t, c)
	assert.Contains(t, got, `<w:comment w:id="1" w:author="A" w:date="2024-01-01T00:00:00Z"><w:p><w:r><w:t xml:space="preserve">hi</w:t></w:r></w:p></w:comment>`)

	c.ReplaceComments(nil)
	assert.Equal(t, 0, c.Len())
}

func TestFontTable(t *testing.T) {
	f := NewFontTable().AddFont(Font{Name: "Consolas", Family: "modern", Pitch: "fixed"})
	assert.True(t, f.Has("Consolas"))
	assert.True(t, f.Has("Calibri"))
	assert.False(t, f.Has("Comic Sans MS"))
	got := buildString(t, f)
	assert.Contains(t, got, `<w:font w:name="Consolas"><w:family w:val="modern"></w:family><w:pitch w:val="fixed"></w:pitch></w:font>`)
}
