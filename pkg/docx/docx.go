package docx

import (
	"go.uber.org/multierr"

	"github.com/benjaminschreck/go-docx/pkg/docx/parts"
	dxml "github.com/benjaminschreck/go-docx/pkg/docx/xml"
)

// Docx is the document aggregate. It owns the document tree and one instance of every part
// and keeps them consistent with each other. A Docx is not safe for concurrent mutation.
type Docx struct {
	contentTypes *parts.ContentTypes
	rels         *parts.Rels
	documentRels *parts.DocumentRels
	docProps     *parts.DocProps
	styles       *parts.Styles
	document     *dxml.Document
	comments     *parts.Comments
	numberings   *parts.Numberings
	settings     *parts.Settings
	fontTable    *parts.FontTable

	config *Config
	logger *Logger
}

// New creates a document with every part in its default state
func New() *Docx {
	d := &Docx{
		contentTypes: parts.NewContentTypes(),
		rels:         parts.NewRels(),
		documentRels: parts.NewDocumentRels(),
		docProps:     parts.NewDocProps(parts.NewCorePropsConfig()),
		styles:       parts.NewStyles(),
		document:     dxml.NewDocument(),
		comments:     parts.NewComments(),
		numberings:   parts.NewNumberings(),
		settings:     parts.NewSettings(),
		fontTable:    parts.NewFontTable(),
	}
	return d.WithConfig(GetGlobalConfig())
}

// WithConfig replaces the configuration used by Build. Unset fields take their defaults.
func (d *Docx) WithConfig(config *Config) *Docx {
	d.config = NewConfigWithDefaults(config)
	if d.config.Language != "" {
		d.docProps.Language(d.config.Language)
	}
	return d
}

// WithLogger sets the logger used by this document. Without one the global logger is used.
func (d *Docx) WithLogger(logger *Logger) *Docx {
	d.logger = logger
	return d
}

func (d *Docx) log() *Logger {
	if d.logger != nil {
		return d.logger
	}
	return GetLogger()
}

// AddParagraph appends a paragraph to the body
func (d *Docx) AddParagraph(p *dxml.Paragraph) *Docx {
	d.document.AddParagraph(p)
	return d
}

// AddTable appends a table to the body
func (d *Docx) AddTable(t *dxml.Table) *Docx {
	d.document.AddTable(t)
	return d
}

// AddChild appends any top-level node, e.g. a bookmark or a bare range marker
func (d *Docx) AddChild(c dxml.DocumentChild) *Docx {
	d.document.AddChild(c)
	return d
}

// AddSectionBreak closes the current section with the given page setup
func (d *Docx) AddSectionBreak(sp *dxml.SectionProperties) *Docx {
	d.document.AddSectionBreak(sp)
	return d
}

// AddNumbering registers a numbering instance
func (d *Docx) AddNumbering(num parts.Numbering) *Docx {
	d.numberings.AddNumbering(num)
	return d
}

// AddAbstractNumbering registers a numbering definition
func (d *Docx) AddAbstractNumbering(a *parts.AbstractNumbering) *Docx {
	d.numberings.AddAbstractNumbering(a)
	return d
}

// AddStyle registers a style, replacing any style with the same id
func (d *Docx) AddStyle(s *parts.Style) *Docx {
	d.styles.AddStyle(s)
	return d
}

// AddFont registers a font in the font table
func (d *Docx) AddFont(f parts.Font) *Docx {
	d.fontTable.AddFont(f)
	return d
}

// AddHyperlink registers an external target and returns the relationship id to put on a
// Hyperlink
func (d *Docx) AddHyperlink(target string) string {
	return d.documentRels.AddHyperlink(target)
}

// AddRelationship registers an internal part referenced from the main document and returns
// its relationship id. The part needs a content type, see AddContentType.
func (d *Docx) AddRelationship(relType, target string) string {
	return d.documentRels.Add(relType, target)
}

// AddContentType registers a content type override for a part path
func (d *Docx) AddContentType(partPath, contentType string) *Docx {
	d.contentTypes.AddOverride(partPath, contentType)
	return d
}

// CreatedAt sets the creation date; the value is written verbatim
func (d *Docx) CreatedAt(date string) *Docx {
	d.docProps.CreatedAt(date)
	return d
}

// UpdatedAt sets the modification date; the value is written verbatim
func (d *Docx) UpdatedAt(date string) *Docx {
	d.docProps.UpdatedAt(date)
	return d
}

func (d *Docx) Title(title string) *Docx {
	d.docProps.Title(title)
	return d
}

func (d *Docx) Creator(name string) *Docx {
	d.docProps.Creator(name)
	return d
}

// PageSize sets the page size of the final section in twips
func (d *Docx) PageSize(w, h int, orient string) *Docx {
	d.sectionProperties().PageSize = dxml.PageSize{W: w, H: h, Orient: orient}
	return d
}

// PageMargin sets the page margins of the final section in twips
func (d *Docx) PageMargin(m dxml.PageMargin) *Docx {
	d.sectionProperties().PageMargin = m
	return d
}

func (d *Docx) sectionProperties() *dxml.SectionProperties {
	if d.document.SectionProperties == nil {
		d.document.SectionProperties = dxml.DefaultSectionProperties()
	}
	return d.document.SectionProperties
}

// Comments returns the comments gathered by the last Build
func (d *Docx) Comments() []*dxml.Comment {
	return d.comments.Comments()
}

// Config returns a copy of the configuration in use
func (d *Docx) Config() Config {
	return *d.config
}

// Build gathers the comments out of the tree, checks every cross-part reference and
// serializes all parts. It returns either a complete artifact or an error, never both.
func (d *Docx) Build() (*XMLDocx, error) {
	logger := d.log()

	d.updateComments()

	if err := d.Validate(); err != nil {
		logger.Warn("document validation failed: %v", err)
		return nil, err
	}

	var errs error
	build := func(path string, p parts.Part) []byte {
		data, err := p.Build()
		if err != nil {
			errs = multierr.Append(errs, NewDocumentError("build", path, err))
			return nil
		}
		logger.WithField("part", path).Debug("built %d bytes", len(data))
		return data
	}

	out := &XMLDocx{
		ContentTypes: build(parts.PathContentTypes, d.contentTypes),
		Rels:         build(parts.PathRels, d.rels),
		DocumentRels: build(parts.PathDocumentRels, d.documentRels),
		Styles:       build(parts.PathStyles, d.styles),
		Document:     build(parts.PathDocument, d.document),
		Comments:     build(parts.PathComments, d.comments),
		Numberings:   build(parts.PathNumbering, d.numberings),
		Settings:     build(parts.PathSettings, d.settings),
		FontTable:    build(parts.PathFontTable, d.fontTable),
		Compression:  d.config.Compression,
	}

	props, err := d.docProps.Build()
	if err != nil {
		errs = multierr.Append(errs, NewDocumentError("build", parts.PathCoreProps, err))
	} else {
		out.CoreProps = props.Core
		out.AppProps = props.App
	}

	if errs != nil {
		return nil, errs
	}
	return out, nil
}
