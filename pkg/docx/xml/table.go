package xml

import (
	"encoding/xml"
	"strings"

	"github.com/benjaminschreck/go-docx/pkg/docx/types"
)

// Table represents a table in the document
type Table struct {
	Properties *TableProperties
	Grid       *TableGrid
	Rows       []*TableRow
}

// isDocumentChild implements the DocumentChild interface
func (t *Table) isDocumentChild() {}

// isTableCellContent implements the TableCellContent interface
func (t *Table) isTableCellContent() {}

// NewTable creates a table from rows
func NewTable(rows ...*TableRow) *Table {
	return &Table{Rows: rows}
}

// AddRow appends a row
func (t *Table) AddRow(r *TableRow) *Table {
	t.Rows = append(t.Rows, r)
	return t
}

// Style references a table style by id
func (t *Table) Style(styleID string) *Table {
	t.props().Style = &Style{Val: styleID}
	return t
}

// Width sets the preferred table width
func (t *Table) Width(w int, wt types.WidthType) *Table {
	t.props().Width = &Width{Val: w, Type: wt}
	return t
}

// SetGrid sets the column widths in twips
func (t *Table) SetGrid(widths ...int) *Table {
	grid := &TableGrid{}
	for _, w := range widths {
		grid.Columns = append(grid.Columns, GridColumn{Width: w})
	}
	t.Grid = grid
	return t
}

// Borders sets the outer and inner borders of the table
func (t *Table) Borders(b *TableBorders) *Table {
	t.props().Borders = b
	return t
}

func (t *Table) props() *TableProperties {
	if t.Properties == nil {
		t.Properties = &TableProperties{}
	}
	return t.Properties
}

// MarshalXML implements custom XML marshaling for Table to ensure proper namespacing
func (t Table) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:tbl"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	// w:tblPr is required even when empty
	props := t.Properties
	if props == nil {
		props = &TableProperties{}
	}
	if err := e.Encode(props); err != nil {
		return err
	}

	if t.Grid != nil {
		if err := e.Encode(t.Grid); err != nil {
			return err
		}
	}

	for _, row := range t.Rows {
		if err := e.Encode(row); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// TableProperties represents table formatting properties
type TableProperties struct {
	Style   *Style
	Width   *Width
	Borders *TableBorders
	Layout  string
}

// MarshalXML implements custom XML marshaling for TableProperties
func (p TableProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = elem("w:tblPr")
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if p.Style != nil {
		if err := e.EncodeElement(p.Style, elem("w:tblStyle")); err != nil {
			return err
		}
	}

	if p.Width != nil {
		if err := e.EncodeElement(p.Width, elem("w:tblW")); err != nil {
			return err
		}
	}

	if p.Borders != nil {
		if err := e.EncodeElement(p.Borders, elem("w:tblBorders")); err != nil {
			return err
		}
	}

	if p.Layout != "" {
		if err := encodeEmpty(e, "w:tblLayout", attr("w:type", p.Layout)); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Width represents width settings
type Width struct {
	Val  int
	Type types.WidthType
}

// MarshalXML keeps the context element name (tblW, tcW)
func (w Width) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = []xml.Attr{
		intAttr("w:w", w.Val),
		attr("w:type", w.Type.String()),
	}
	return e.EncodeElement(struct{}{}, start)
}

// TableGrid represents table column definitions
type TableGrid struct {
	Columns []GridColumn
}

// MarshalXML implements custom XML marshaling for TableGrid
func (g TableGrid) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = elem("w:tblGrid")
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	for _, col := range g.Columns {
		if err := encodeEmpty(e, "w:gridCol", intAttr("w:w", col.Width)); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// GridColumn represents a table column
type GridColumn struct {
	Width int
}

// TableRow represents a row in a table
type TableRow struct {
	Properties *TableRowProperties
	Cells      []*TableCell
}

// NewTableRow creates a row from cells
func NewTableRow(cells ...*TableCell) *TableRow {
	return &TableRow{Cells: cells}
}

// AddCell appends a cell
func (r *TableRow) AddCell(c *TableCell) *TableRow {
	r.Cells = append(r.Cells, c)
	return r
}

// MarshalXML implements custom XML marshaling for TableRow to ensure proper namespacing
func (r TableRow) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:tr"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if r.Properties != nil {
		if err := e.Encode(r.Properties); err != nil {
			return err
		}
	}

	for _, cell := range r.Cells {
		if err := e.Encode(cell); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// TableRowProperties represents row properties
type TableRowProperties struct {
	CantSplit bool // Prevent row from splitting across pages
	Header    bool // Repeat row at the top of each page
	Height    int  // Minimum height in twips, 0 for auto
}

// MarshalXML implements custom XML marshaling for TableRowProperties
func (p TableRowProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = elem("w:trPr")
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if p.CantSplit {
		if err := encodeEmpty(e, "w:cantSplit"); err != nil {
			return err
		}
	}
	if p.Height > 0 {
		if err := encodeEmpty(e, "w:trHeight", intAttr("w:val", p.Height)); err != nil {
			return err
		}
	}
	if p.Header {
		if err := encodeEmpty(e, "w:tblHeader"); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// TableCell represents a cell in a table
type TableCell struct {
	Properties *TableCellProperties
	Contents   []TableCellContent
}

// NewTableCell creates an empty cell
func NewTableCell() *TableCell {
	return &TableCell{}
}

// AddParagraph appends a paragraph to the cell
func (c *TableCell) AddParagraph(p *Paragraph) *TableCell {
	c.Contents = append(c.Contents, p)
	return c
}

// AddTable nests a table in the cell
func (c *TableCell) AddTable(t *Table) *TableCell {
	c.Contents = append(c.Contents, t)
	return c
}

// Width sets the preferred cell width
func (c *TableCell) Width(w int, wt types.WidthType) *TableCell {
	c.props().Width = &Width{Val: w, Type: wt}
	return c
}

// GridSpan merges the cell horizontally over n grid columns
func (c *TableCell) GridSpan(n int) *TableCell {
	c.props().GridSpan = n
	return c
}

// VMerge starts or continues a vertical merge
func (c *TableCell) VMerge(v types.VMergeType) *TableCell {
	c.props().VMerge = &v
	return c
}

// VAlign sets the vertical alignment of the cell content
func (c *TableCell) VAlign(v types.VAlignType) *TableCell {
	c.props().VAlign = &v
	return c
}

// Shading fills the cell background with a hex RGB color
func (c *TableCell) Shading(fill string) *TableCell {
	c.props().Shading = &Shading{Val: "clear", Color: "auto", Fill: fill}
	return c
}

func (c *TableCell) props() *TableCellProperties {
	if c.Properties == nil {
		c.Properties = &TableCellProperties{}
	}
	return c.Properties
}

// MarshalXML implements custom XML marshaling for TableCell to ensure proper namespacing.
// A cell must end with a paragraph, so one is appended when the cell is empty or ends with a
// nested table.
func (c TableCell) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "w:tc"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if c.Properties != nil {
		if err := e.Encode(c.Properties); err != nil {
			return err
		}
	}

	for _, content := range c.Contents {
		if err := e.Encode(content); err != nil {
			return err
		}
	}

	needsParagraph := len(c.Contents) == 0
	if !needsParagraph {
		_, needsParagraph = c.Contents[len(c.Contents)-1].(*Table)
	}
	if needsParagraph {
		if err := e.Encode(NewParagraph()); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// GetText returns the concatenated text of all paragraphs in a cell
func (c *TableCell) GetText() string {
	var texts []string
	for _, content := range c.Contents {
		if para, ok := content.(*Paragraph); ok {
			if text := para.GetText(); text != "" {
				texts = append(texts, text)
			}
		}
	}
	return strings.Join(texts, "\n")
}

// TableCellProperties represents cell properties
type TableCellProperties struct {
	Width    *Width
	GridSpan int
	VMerge   *types.VMergeType
	Shading  *Shading
	VAlign   *types.VAlignType
}

// MarshalXML implements custom XML marshaling for TableCellProperties
func (p TableCellProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = elem("w:tcPr")
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if p.Width != nil {
		if err := e.EncodeElement(p.Width, elem("w:tcW")); err != nil {
			return err
		}
	}
	if p.GridSpan > 1 {
		if err := encodeEmpty(e, "w:gridSpan", intAttr("w:val", p.GridSpan)); err != nil {
			return err
		}
	}
	if p.VMerge != nil {
		if err := encodeEmpty(e, "w:vMerge", attr("w:val", p.VMerge.String())); err != nil {
			return err
		}
	}
	if p.Shading != nil {
		if err := e.Encode(p.Shading); err != nil {
			return err
		}
	}
	if p.VAlign != nil {
		if err := encodeEmpty(e, "w:vAlign", attr("w:val", p.VAlign.String())); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Shading represents cell or paragraph shading
type Shading struct {
	Val   string
	Color string
	Fill  string
}

// MarshalXML implements custom XML marshaling for Shading
func (s Shading) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	var attrs []xml.Attr
	if s.Val != "" {
		attrs = append(attrs, attr("w:val", s.Val))
	}
	if s.Color != "" {
		attrs = append(attrs, attr("w:color", s.Color))
	}
	if s.Fill != "" {
		attrs = append(attrs, attr("w:fill", s.Fill))
	}
	return encodeEmpty(e, "w:shd", attrs...)
}

// TableBorders represents borders for a table (w:tblBorders)
// This includes inner borders (insideH, insideV) in addition to outer borders
type TableBorders struct {
	Top     *Border
	Left    *Border
	Bottom  *Border
	Right   *Border
	InsideH *Border
	InsideV *Border
}

// NewTableBorders creates borders with the same line on every edge
func NewTableBorders(bt types.BorderType, size int, color string) *TableBorders {
	b := func() *Border { return &Border{Type: bt, Size: size, Color: color} }
	return &TableBorders{Top: b(), Left: b(), Bottom: b(), Right: b(), InsideH: b(), InsideV: b()}
}

// MarshalXML implements custom XML marshaling for TableBorders
func (b TableBorders) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = elem("w:tblBorders")
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	// Order matters in Word XML
	edges := []struct {
		name   string
		border *Border
	}{
		{"w:top", b.Top},
		{"w:left", b.Left},
		{"w:bottom", b.Bottom},
		{"w:right", b.Right},
		{"w:insideH", b.InsideH},
		{"w:insideV", b.InsideV},
	}
	for _, edge := range edges {
		if edge.border == nil {
			continue
		}
		if err := e.EncodeElement(edge.border, elem(edge.name)); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Border represents border styling
type Border struct {
	Type  types.BorderType
	Size  int // eighths of a point
	Space int
	Color string
}

// MarshalXML keeps the context element name (top, left, insideH, ...)
func (b Border) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = []xml.Attr{
		attr("w:val", b.Type.String()),
		intAttr("w:sz", b.Size),
		intAttr("w:space", b.Space),
	}
	if b.Color != "" {
		start.Attr = append(start.Attr, attr("w:color", b.Color))
	}
	return e.EncodeElement(struct{}{}, start)
}
