package docx

import (
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/benjaminschreck/go-docx/pkg/docx/parts"
	dxml "github.com/benjaminschreck/go-docx/pkg/docx/xml"
)

// Validate checks that every id the tree refers to exists in its owning part. Comments are
// checked against the result of the last extraction, so Build runs it after extracting.
// In strict mode the core property dates must also be RFC 3339.
func (d *Docx) Validate() error {
	if d.config.StrictMode {
		if err := d.validateDates(); err != nil {
			return err
		}
	}

	v := &refChecker{
		docx:       d,
		commentIDs: make(map[int]bool),
		levels:     make(map[int]map[int]bool),
	}

	for _, c := range d.comments.Comments() {
		if v.commentIDs[c.ID] {
			v.add(IssueComment, strconv.Itoa(c.ID), "comments", "duplicate comment id")
		}
		v.commentIDs[c.ID] = true
	}

	abstractLevels := make(map[int]map[int]bool)
	for _, a := range d.numberings.AbstractNumberings() {
		lvls := make(map[int]bool, len(a.Levels))
		for _, l := range a.Levels {
			lvls[l.Level] = true
		}
		abstractLevels[a.ID] = lvls
	}
	for _, num := range d.numberings.Numberings() {
		lvls, ok := abstractLevels[num.AbstractNumID]
		if !ok {
			v.add(IssueAbstractNum, strconv.Itoa(num.AbstractNumID), fmt.Sprintf("num[%d]", num.ID), "abstract numbering is not defined")
			continue
		}
		v.levels[num.ID] = lvls
	}

	for _, style := range d.styles.Styles() {
		loc := fmt.Sprintf("styles[%s]", style.ID)
		if style.BasedOn != "" && !d.styles.Has(style.BasedOn) {
			v.add(IssueStyle, style.BasedOn, loc, "basedOn style is not defined")
		}
		if style.Next != "" && !d.styles.Has(style.Next) {
			v.add(IssueStyle, style.Next, loc, "next style is not defined")
		}
	}

	for i, child := range d.document.Children {
		v.documentChild(child, fmt.Sprintf("body[%d]", i))
	}

	for _, rel := range d.documentRels.Relationships() {
		if rel.TargetMode == parts.TargetModeExternal {
			continue
		}
		target := partName(rel.Target)
		// the generic xml default does not identify a part
		if ct, ok := d.contentTypes.Resolve(target); !ok || ct == parts.ContentTypeXML {
			v.add(IssueContentType, target, rel.ID, "part has no content type override")
		}
	}

	if len(v.issues) > 0 {
		return &IntegrityError{Issues: v.issues}
	}
	return nil
}

// partName resolves a document relationship target to a package part name. Relative targets
// are relative to word/, absolute ones to the package root.
func partName(target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(path.Clean(target), "/")
	}
	return path.Join("word", target)
}

func (d *Docx) validateDates() error {
	core := d.docProps.Core.Config
	for _, f := range []struct {
		field string
		value string
	}{
		{"dcterms:created", core.Created},
		{"dcterms:modified", core.Modified},
	} {
		if _, err := time.Parse(time.RFC3339, f.value); err != nil {
			return &MalformedInputError{Field: f.field, Value: f.value, Cause: err}
		}
	}
	return nil
}

type refChecker struct {
	docx       *Docx
	commentIDs map[int]bool
	// levels holds the defined ilvl values of each numbering instance
	levels map[int]map[int]bool
	issues []Issue
}

func (v *refChecker) add(kind IssueKind, ref, location, message string) {
	v.issues = append(v.issues, Issue{Kind: kind, Ref: ref, Location: location, Message: message})
}

func (v *refChecker) documentChild(child dxml.DocumentChild, loc string) {
	switch c := child.(type) {
	case *dxml.Paragraph:
		v.paragraph(c, loc)
	case *dxml.Table:
		v.table(c, loc)
	case *dxml.CommentRangeEnd:
		// the reference run it carries is not allowed directly in w:body
		v.add(IssueComment, strconv.Itoa(c.ID), loc, "comment end must be inside a paragraph")
	}
}

func (v *refChecker) paragraph(p *dxml.Paragraph, loc string) {
	if props := p.Properties; props != nil {
		if props.Style != nil {
			v.style(props.Style.Val, loc)
		}
		if num := props.NumberingProperty; num != nil {
			v.numbering(num, loc)
		}
	}

	for i, child := range p.Children {
		childLoc := fmt.Sprintf("%s/%d", loc, i)
		switch c := child.(type) {
		case *dxml.Run:
			v.run(c, childLoc)
		case *dxml.Hyperlink:
			if c.RelationshipID != "" && !v.docx.documentRels.Has(c.RelationshipID) {
				v.add(IssueRelationship, c.RelationshipID, childLoc, "hyperlink relationship is not defined")
			}
			for j, r := range c.Runs {
				v.run(r, fmt.Sprintf("%s/%d", childLoc, j))
			}
		case *dxml.CommentRangeEnd:
			v.commentEnd(c, childLoc)
		}
	}
}

func (v *refChecker) run(r *dxml.Run, loc string) {
	if r.Properties != nil && r.Properties.Style != nil {
		v.style(r.Properties.Style.Val, loc)
	}
}

func (v *refChecker) table(t *dxml.Table, loc string) {
	if t.Properties != nil && t.Properties.Style != nil {
		v.style(t.Properties.Style.Val, loc)
	}
	for i, row := range t.Rows {
		for j, cell := range row.Cells {
			for k, content := range cell.Contents {
				contentLoc := fmt.Sprintf("%s/row[%d]/cell[%d]/%d", loc, i, j, k)
				switch c := content.(type) {
				case *dxml.Paragraph:
					v.paragraph(c, contentLoc)
				case *dxml.Table:
					v.table(c, contentLoc)
				}
			}
		}
	}
}

func (v *refChecker) numbering(num *dxml.NumberingProperty, loc string) {
	if !v.docx.numberings.HasNumbering(num.NumID) {
		v.add(IssueNumbering, strconv.Itoa(num.NumID), loc, "numbering is not defined")
		return
	}
	if num.Level < 0 || num.Level > 8 {
		v.add(IssueNumbering, strconv.Itoa(num.NumID), loc, fmt.Sprintf("level %d out of range 0-8", num.Level))
		return
	}
	// an instance of a missing abstract numbering is already reported
	if lvls, ok := v.levels[num.NumID]; ok && !lvls[num.Level] {
		v.add(IssueNumbering, strconv.Itoa(num.NumID), loc, fmt.Sprintf("level %d is not defined", num.Level))
	}
}

func (v *refChecker) style(id, loc string) {
	if !v.docx.styles.Has(id) {
		v.add(IssueStyle, id, loc, "style is not defined")
	}
}

// a comment end is a reference: Word resolves its commentReference run in comments.xml
func (v *refChecker) commentEnd(c *dxml.CommentRangeEnd, loc string) {
	if !v.commentIDs[c.ID] {
		v.add(IssueComment, strconv.Itoa(c.ID), loc, "comment is not exported")
	}
}
