// Package manifest describes a document in YAML and applies the description to a docx.Docx.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/benjaminschreck/go-docx/pkg/docx"
)

// Manifest is the top-level document description
type Manifest struct {
	Title      string      `yaml:"title,omitempty"`
	Creator    string      `yaml:"creator,omitempty"`
	Created    string      `yaml:"created,omitempty"`
	Modified   string      `yaml:"modified,omitempty"`
	Page       *Page       `yaml:"page,omitempty"`
	Styles     []Style     `yaml:"styles,omitempty" validate:"dive"`
	Numberings []Numbering `yaml:"numberings,omitempty" validate:"dive"`
	Body       []Block     `yaml:"body" validate:"dive"`
}

// Page is the page setup of a section, in twips
type Page struct {
	Width  int     `yaml:"width" validate:"required,gt=0"`
	Height int     `yaml:"height" validate:"required,gt=0"`
	Orient string  `yaml:"orient,omitempty" validate:"omitempty,oneof=portrait landscape"`
	Margin *Margin `yaml:"margin,omitempty"`
}

type Margin struct {
	Top    int `yaml:"top" validate:"gte=0"`
	Right  int `yaml:"right" validate:"gte=0"`
	Bottom int `yaml:"bottom" validate:"gte=0"`
	Left   int `yaml:"left" validate:"gte=0"`
	Header int `yaml:"header" validate:"gte=0"`
	Footer int `yaml:"footer" validate:"gte=0"`
}

// Style defines a paragraph, character or table style
type Style struct {
	ID      string `yaml:"id" validate:"required"`
	Name    string `yaml:"name,omitempty"`
	Type    string `yaml:"type,omitempty" validate:"omitempty,oneof=paragraph character table numbering"`
	BasedOn string `yaml:"based_on,omitempty"`
	Next    string `yaml:"next,omitempty"`
	Bold    bool   `yaml:"bold,omitempty"`
	Italic  bool   `yaml:"italic,omitempty"`
	Size    int    `yaml:"size,omitempty" validate:"gte=0"`
	Color   string `yaml:"color,omitempty" validate:"omitempty,hexadecimal,len=6"`
	Font    string `yaml:"font,omitempty"`
}

// Numbering defines a list. AbstractID defaults to ID.
type Numbering struct {
	ID         int    `yaml:"id" validate:"gte=0"`
	AbstractID *int   `yaml:"abstract_id,omitempty" validate:"omitempty,gte=0"`
	Format     string `yaml:"format" validate:"required,oneof=decimal bullet"`
}

// Block is one top-level body element. Exactly one field must be set.
type Block struct {
	Paragraph    *Paragraph `yaml:"paragraph,omitempty"`
	Table        *Table     `yaml:"table,omitempty"`
	SectionBreak *Page      `yaml:"section_break,omitempty"`
}

// Paragraph describes a paragraph. Comments and the bookmark span the whole paragraph.
type Paragraph struct {
	Style     string        `yaml:"style,omitempty"`
	Align     string        `yaml:"align,omitempty" validate:"omitempty,oneof=left center right both distribute"`
	Numbering *NumberingRef `yaml:"numbering,omitempty"`
	Bookmark  string        `yaml:"bookmark,omitempty"`
	Text      string        `yaml:"text,omitempty"`
	Runs      []Run         `yaml:"runs,omitempty" validate:"dive"`
	Comments  []Comment     `yaml:"comments,omitempty" validate:"dive"`
}

type NumberingRef struct {
	ID    int `yaml:"id" validate:"gte=0"`
	Level int `yaml:"level" validate:"gte=0,lte=8"`
}

// Run is a piece of formatted text. Link and Anchor turn it into a hyperlink.
type Run struct {
	Text      string `yaml:"text,omitempty"`
	Bold      bool   `yaml:"bold,omitempty"`
	Italic    bool   `yaml:"italic,omitempty"`
	Underline string `yaml:"underline,omitempty"`
	Size      int    `yaml:"size,omitempty" validate:"gte=0"`
	Color     string `yaml:"color,omitempty" validate:"omitempty,hexadecimal,len=6"`
	Style     string `yaml:"style,omitempty"`
	Font      string `yaml:"font,omitempty"`
	Tab       bool   `yaml:"tab,omitempty"`
	Break     string `yaml:"break,omitempty" validate:"omitempty,oneof=textWrapping page column"`
	Link      string `yaml:"link,omitempty" validate:"omitempty,url"`
	Anchor    string `yaml:"anchor,omitempty" validate:"excluded_with=Link"`
}

type Comment struct {
	ID       int      `yaml:"id" validate:"gte=0"`
	Author   string   `yaml:"author,omitempty"`
	Initials string   `yaml:"initials,omitempty"`
	Date     string   `yaml:"date,omitempty"`
	Text     []string `yaml:"text" validate:"required,min=1"`
}

type Table struct {
	Style     string `yaml:"style,omitempty"`
	Width     int    `yaml:"width,omitempty" validate:"gte=0"`
	WidthType string `yaml:"width_type,omitempty" validate:"omitempty,oneof=dxa auto pct nil"`
	Grid      []int  `yaml:"grid,omitempty" validate:"dive,gt=0"`
	Borders   string `yaml:"borders,omitempty" validate:"omitempty,oneof=single nil double dotted dashed thick"`
	Rows      []Row  `yaml:"rows" validate:"required,min=1,dive"`
}

type Row struct {
	Header    bool   `yaml:"header,omitempty"`
	CantSplit bool   `yaml:"cant_split,omitempty"`
	Height    int    `yaml:"height,omitempty" validate:"gte=0"`
	Cells     []Cell `yaml:"cells" validate:"required,min=1,dive"`
}

// Cell holds paragraphs followed by an optional nested table
type Cell struct {
	Width      int         `yaml:"width,omitempty" validate:"gte=0"`
	Span       int         `yaml:"span,omitempty" validate:"gte=0"`
	VMerge     string      `yaml:"vmerge,omitempty" validate:"omitempty,oneof=restart continue"`
	VAlign     string      `yaml:"valign,omitempty" validate:"omitempty,oneof=top center bottom"`
	Shading    string      `yaml:"shading,omitempty" validate:"omitempty,hexadecimal,len=6"`
	Paragraphs []Paragraph `yaml:"paragraphs,omitempty" validate:"dive"`
	Table      *Table      `yaml:"table,omitempty"`
}

// Load decodes a manifest. Unknown fields are rejected.
func Load(r io.Reader) (*Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return &m, nil
		}
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}

// LoadFile decodes the manifest stored at path
func LoadFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()
	return Load(f)
}

var validate = validator.New()

// Validate checks field values and block shapes. References between blocks and the
// styles or numberings they use are checked when the document is built.
func (m *Manifest) Validate() error {
	verr := &docx.ValidationError{}

	if err := validate.Struct(m); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			verr.Issues = append(verr.Issues, docx.ValidationIssue{
				Field:   fe.Namespace(),
				Message: fmt.Sprintf("failed %q check", fe.Tag()),
			})
		}
	}

	for i, b := range m.Body {
		checkBlock(verr, fmt.Sprintf("Manifest.Body[%d]", i), b)
	}

	if len(verr.Issues) > 0 {
		return verr
	}
	return nil
}

func checkBlock(verr *docx.ValidationError, field string, b Block) {
	set := 0
	if b.Paragraph != nil {
		set++
	}
	if b.Table != nil {
		set++
	}
	if b.SectionBreak != nil {
		set++
	}
	if set != 1 {
		verr.Issues = append(verr.Issues, docx.ValidationIssue{
			Field:   field,
			Message: fmt.Sprintf("block must set exactly one of paragraph, table or section_break, got %d", set),
		})
	}
}
