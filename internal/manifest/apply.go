package manifest

import (
	"fmt"

	"github.com/benjaminschreck/go-docx/pkg/docx"
	"github.com/benjaminschreck/go-docx/pkg/docx/parts"
	"github.com/benjaminschreck/go-docx/pkg/docx/types"
	dxml "github.com/benjaminschreck/go-docx/pkg/docx/xml"
)

// Apply adds everything the manifest describes to d. It fails only on values that have no
// schema token; unresolved ids are left for d.Build to report.
func (m *Manifest) Apply(d *docx.Docx) error {
	a := &applier{docx: d}

	if m.Title != "" {
		d.Title(m.Title)
	}
	if m.Creator != "" {
		d.Creator(m.Creator)
	}
	if m.Created != "" {
		d.CreatedAt(m.Created)
	}
	if m.Modified != "" {
		d.UpdatedAt(m.Modified)
	}

	for _, s := range m.Styles {
		style, err := s.build()
		if err != nil {
			return err
		}
		d.AddStyle(style)
	}

	for _, n := range m.Numberings {
		abstractID := n.ID
		if n.AbstractID != nil {
			abstractID = *n.AbstractID
		}
		switch n.Format {
		case "bullet":
			d.AddAbstractNumbering(parts.NewBulletAbstractNumbering(abstractID))
		default:
			d.AddAbstractNumbering(parts.NewDecimalAbstractNumbering(abstractID))
		}
		d.AddNumbering(parts.NewNumbering(n.ID, abstractID))
	}

	for i, b := range m.Body {
		if err := a.block(b); err != nil {
			return fmt.Errorf("body[%d]: %w", i, err)
		}
	}

	if m.Page != nil {
		d.PageSize(m.Page.Width, m.Page.Height, orientation(m.Page.Orient))
		if m.Page.Margin != nil {
			d.PageMargin(m.Page.Margin.pageMargin())
		}
	}
	return nil
}

type applier struct {
	docx       *docx.Docx
	bookmarkID int
}

func (a *applier) block(b Block) error {
	switch {
	case b.Paragraph != nil:
		p, err := a.paragraph(*b.Paragraph)
		if err != nil {
			return err
		}
		a.docx.AddParagraph(p)
	case b.Table != nil:
		t, err := a.table(*b.Table)
		if err != nil {
			return err
		}
		a.docx.AddTable(t)
	case b.SectionBreak != nil:
		sp := dxml.DefaultSectionProperties()
		sp.PageSize = dxml.PageSize{W: b.SectionBreak.Width, H: b.SectionBreak.Height, Orient: orientation(b.SectionBreak.Orient)}
		if b.SectionBreak.Margin != nil {
			sp.PageMargin = b.SectionBreak.Margin.pageMargin()
		}
		a.docx.AddSectionBreak(sp)
	default:
		return fmt.Errorf("empty block")
	}
	return nil
}

func (a *applier) paragraph(mp Paragraph) (*dxml.Paragraph, error) {
	p := dxml.NewParagraph()

	if mp.Style != "" {
		p.Style(mp.Style)
	}
	if mp.Align != "" {
		align, ok := lookup(mp.Align, types.AlignLeft, types.AlignCenter, types.AlignRight, types.AlignBoth, types.AlignDistribute)
		if !ok {
			return nil, fmt.Errorf("unknown alignment %q", mp.Align)
		}
		p.Align(align)
	}
	if mp.Numbering != nil {
		p.Numbering(mp.Numbering.ID, mp.Numbering.Level)
	}

	bookmark := -1
	if mp.Bookmark != "" {
		bookmark = a.bookmarkID
		a.bookmarkID++
		p.AddBookmarkStart(bookmark, mp.Bookmark)
	}

	for _, c := range mp.Comments {
		p.AddCommentStart(c.build())
	}

	if mp.Text != "" {
		p.AddText(mp.Text)
	}
	for _, r := range mp.Runs {
		if err := a.run(p, r); err != nil {
			return nil, err
		}
	}

	for i := len(mp.Comments) - 1; i >= 0; i-- {
		p.AddCommentEnd(mp.Comments[i].ID)
	}
	if bookmark >= 0 {
		p.AddBookmarkEnd(bookmark)
	}
	return p, nil
}

func (a *applier) run(p *dxml.Paragraph, mr Run) error {
	r := dxml.NewRun()
	if mr.Style != "" {
		r.Style(mr.Style)
	}
	if mr.Font != "" {
		r.Fonts(mr.Font)
	}
	if mr.Bold {
		r.Bold()
	}
	if mr.Italic {
		r.Italic()
	}
	if mr.Color != "" {
		r.Color(mr.Color)
	}
	if mr.Size > 0 {
		r.Size(mr.Size)
	}
	if mr.Underline != "" {
		r.Underline(mr.Underline)
	}
	if mr.Tab {
		r.AddTab()
	}
	if mr.Text != "" {
		r.AddText(mr.Text)
	}
	if mr.Break != "" {
		bt, ok := lookup(mr.Break, types.BreakTextWrapping, types.BreakPage, types.BreakColumn)
		if !ok {
			return fmt.Errorf("unknown break %q", mr.Break)
		}
		r.AddBreak(bt)
	}

	switch {
	case mr.Link != "":
		rid := a.docx.AddHyperlink(mr.Link)
		p.AddHyperlink(dxml.NewExternalHyperlink(rid).AddRun(r))
	case mr.Anchor != "":
		p.AddHyperlink(dxml.NewAnchorHyperlink(mr.Anchor).AddRun(r))
	default:
		p.AddRun(r)
	}
	return nil
}

func (a *applier) table(mt Table) (*dxml.Table, error) {
	t := dxml.NewTable()

	if mt.Style != "" {
		t.Style(mt.Style)
	}
	if mt.Width > 0 || mt.WidthType != "" {
		wt, ok := widthType(mt.WidthType)
		if !ok {
			return nil, fmt.Errorf("unknown width type %q", mt.WidthType)
		}
		t.Width(mt.Width, wt)
	}
	if len(mt.Grid) > 0 {
		t.SetGrid(mt.Grid...)
	}
	if mt.Borders != "" {
		bt, ok := lookup(mt.Borders, types.BorderSingle, types.BorderNone, types.BorderDouble, types.BorderDotted, types.BorderDashed, types.BorderThick)
		if !ok {
			return nil, fmt.Errorf("unknown border %q", mt.Borders)
		}
		t.Borders(dxml.NewTableBorders(bt, 4, "auto"))
	}

	for _, mr := range mt.Rows {
		row := dxml.NewTableRow()
		if mr.Header || mr.CantSplit || mr.Height > 0 {
			row.Properties = &dxml.TableRowProperties{Header: mr.Header, CantSplit: mr.CantSplit, Height: mr.Height}
		}
		for _, mc := range mr.Cells {
			cell, err := a.cell(mc)
			if err != nil {
				return nil, err
			}
			row.AddCell(cell)
		}
		t.AddRow(row)
	}
	return t, nil
}

func (a *applier) cell(mc Cell) (*dxml.TableCell, error) {
	c := dxml.NewTableCell()

	if mc.Width > 0 {
		c.Width(mc.Width, types.DXA)
	}
	if mc.Span > 1 {
		c.GridSpan(mc.Span)
	}
	if mc.VMerge != "" {
		vm, ok := lookup(mc.VMerge, types.VMergeRestart, types.VMergeContinue)
		if !ok {
			return nil, fmt.Errorf("unknown vertical merge %q", mc.VMerge)
		}
		c.VMerge(vm)
	}
	if mc.VAlign != "" {
		va, ok := lookup(mc.VAlign, types.VAlignTop, types.VAlignCenter, types.VAlignBottom)
		if !ok {
			return nil, fmt.Errorf("unknown vertical alignment %q", mc.VAlign)
		}
		c.VAlign(va)
	}
	if mc.Shading != "" {
		c.Shading(mc.Shading)
	}

	for _, mp := range mc.Paragraphs {
		p, err := a.paragraph(mp)
		if err != nil {
			return nil, err
		}
		c.AddParagraph(p)
	}
	if mc.Table != nil {
		t, err := a.table(*mc.Table)
		if err != nil {
			return nil, err
		}
		c.AddTable(t)
	}
	return c, nil
}

func (s Style) build() (*parts.Style, error) {
	styleType := types.StyleParagraph
	if s.Type != "" {
		st, ok := lookup(s.Type, types.StyleParagraph, types.StyleCharacter, types.StyleTable, types.StyleNumbering)
		if !ok {
			return nil, fmt.Errorf("style %s: unknown type %q", s.ID, s.Type)
		}
		styleType = st
	}

	style := parts.NewStyle(s.ID, styleType)
	if s.Name != "" {
		style.Name = s.Name
	}
	style.BasedOn = s.BasedOn
	style.Next = s.Next

	if s.Bold || s.Italic || s.Size > 0 || s.Color != "" || s.Font != "" {
		r := dxml.NewRun()
		if s.Font != "" {
			r.Fonts(s.Font)
		}
		if s.Bold {
			r.Bold()
		}
		if s.Italic {
			r.Italic()
		}
		if s.Color != "" {
			r.Color(s.Color)
		}
		if s.Size > 0 {
			r.Size(s.Size)
		}
		style.RunProperties = r.Properties
	}
	return style, nil
}

func (c Comment) build() *dxml.Comment {
	comment := dxml.NewComment(c.ID, c.Author, c.Date)
	comment.Initials = c.Initials
	for _, line := range c.Text {
		comment.AddText(line)
	}
	return comment
}

func (m Margin) pageMargin() dxml.PageMargin {
	return dxml.PageMargin{
		Top:    m.Top,
		Right:  m.Right,
		Bottom: m.Bottom,
		Left:   m.Left,
		Header: m.Header,
		Footer: m.Footer,
	}
}

// portrait is the schema default and is not written
func orientation(o string) string {
	if o == "landscape" {
		return o
	}
	return ""
}

func widthType(s string) (types.WidthType, bool) {
	if s == "" {
		return types.DXA, true
	}
	return lookup(s, types.DXA, types.Auto, types.Pct, types.Nil)
}

// lookup returns the variant whose schema token is name
func lookup[T fmt.Stringer](name string, variants ...T) (T, bool) {
	for _, v := range variants {
		if v.String() == name {
			return v, true
		}
	}
	var zero T
	return zero, false
}
