package parts

import (
	"encoding/xml"
	"fmt"

	"github.com/benjaminschreck/go-docx/pkg/docx/types"
	dxml "github.com/benjaminschreck/go-docx/pkg/docx/xml"
)

// Level is one level of an abstract numbering definition
type Level struct {
	Level   int
	Start   int
	Format  string // decimal, bullet, lowerLetter, upperRoman, ...
	Text    string // level text, e.g. "%1." or a bullet character
	Align   types.AlignmentType
	Indent  int // left indentation in twips
	Hanging int // hanging indentation in twips
}

// AbstractNumbering is a list-formatting definition (w:abstractNum)
type AbstractNumbering struct {
	ID     int
	Levels []Level
}

// NewAbstractNumbering creates an abstract numbering from levels
func NewAbstractNumbering(id int, levels ...Level) *AbstractNumbering {
	return &AbstractNumbering{ID: id, Levels: levels}
}

// NewDecimalAbstractNumbering creates a nine level "1. / 1.1. / ..." style list
func NewDecimalAbstractNumbering(id int) *AbstractNumbering {
	a := &AbstractNumbering{ID: id}
	for lvl := 0; lvl < 9; lvl++ {
		a.Levels = append(a.Levels, Level{
			Level:   lvl,
			Start:   1,
			Format:  "decimal",
			Text:    fmt.Sprintf("%%%d.", lvl+1),
			Indent:  720 * (lvl + 1),
			Hanging: 360,
		})
	}
	return a
}

// NewBulletAbstractNumbering creates a nine level bullet list
func NewBulletAbstractNumbering(id int) *AbstractNumbering {
	a := &AbstractNumbering{ID: id}
	for lvl := 0; lvl < 9; lvl++ {
		a.Levels = append(a.Levels, Level{
			Level:   lvl,
			Start:   1,
			Format:  "bullet",
			Text:    "•",
			Indent:  720 * (lvl + 1),
			Hanging: 360,
		})
	}
	return a
}

// LevelOverride restarts a level of a numbering instance
type LevelOverride struct {
	Level         int
	StartOverride int
}

// Numbering is a numbering instance (w:num) referenced by paragraphs through its id
type Numbering struct {
	ID             int
	AbstractNumID  int
	LevelOverrides []LevelOverride
}

// NewNumbering creates a numbering instance of an abstract numbering
func NewNumbering(id, abstractNumID int) Numbering {
	return Numbering{ID: id, AbstractNumID: abstractNumID}
}

// Numberings is the numbering part (word/numbering.xml)
type Numberings struct {
	abstractNums []*AbstractNumbering
	nums         []Numbering
}

// NewNumberings creates an empty numbering part
func NewNumberings() *Numberings {
	return &Numberings{}
}

// AddAbstractNumbering adds a definition; an existing id is replaced
func (n *Numberings) AddAbstractNumbering(a *AbstractNumbering) *Numberings {
	for i, existing := range n.abstractNums {
		if existing.ID == a.ID {
			n.abstractNums[i] = a
			return n
		}
	}
	n.abstractNums = append(n.abstractNums, a)
	return n
}

// AddNumbering adds a numbering instance; an existing id is replaced
func (n *Numberings) AddNumbering(num Numbering) *Numberings {
	for i, existing := range n.nums {
		if existing.ID == num.ID {
			n.nums[i] = num
			return n
		}
	}
	n.nums = append(n.nums, num)
	return n
}

// HasNumbering reports whether a numbering instance id exists
func (n *Numberings) HasNumbering(id int) bool {
	for _, num := range n.nums {
		if num.ID == id {
			return true
		}
	}
	return false
}

// HasAbstractNumbering reports whether an abstract numbering id exists
func (n *Numberings) HasAbstractNumbering(id int) bool {
	for _, a := range n.abstractNums {
		if a.ID == id {
			return true
		}
	}
	return false
}

// Numberings returns the numbering instances in insertion order
func (n *Numberings) Numberings() []Numbering {
	return append([]Numbering(nil), n.nums...)
}

// AbstractNumberings returns the abstract definitions in insertion order
func (n *Numberings) AbstractNumberings() []*AbstractNumbering {
	return append([]*AbstractNumbering(nil), n.abstractNums...)
}

type indXML struct {
	Left    int `xml:"w:left,attr"`
	Hanging int `xml:"w:hanging,attr,omitempty"`
}

type lvlXML struct {
	Level   int        `xml:"w:ilvl,attr"`
	Start   valElement `xml:"w:start"`
	NumFmt  valElement `xml:"w:numFmt"`
	LvlText valElement `xml:"w:lvlText"`
	LvlJc   valElement `xml:"w:lvlJc"`
	PPr     struct {
		Ind indXML `xml:"w:ind"`
	} `xml:"w:pPr"`
}

type abstractNumXML struct {
	ID             int        `xml:"w:abstractNumId,attr"`
	MultiLevelType valElement `xml:"w:multiLevelType"`
	Levels         []lvlXML   `xml:"w:lvl"`
}

type lvlOverrideXML struct {
	Level         int        `xml:"w:ilvl,attr"`
	StartOverride valElement `xml:"w:startOverride"`
}

type numXML struct {
	ID            int              `xml:"w:numId,attr"`
	AbstractNumID valElement       `xml:"w:abstractNumId"`
	Overrides     []lvlOverrideXML `xml:"w:lvlOverride"`
}

type numberingXML struct {
	XMLName      xml.Name         `xml:"w:numbering"`
	W            string           `xml:"xmlns:w,attr"`
	AbstractNums []abstractNumXML `xml:"w:abstractNum"`
	Nums         []numXML         `xml:"w:num"`
}

// Build serializes word/numbering.xml. Abstract definitions precede instances as the schema
// requires.
func (n *Numberings) Build() ([]byte, error) {
	out := numberingXML{W: dxml.NamespaceW}
	for _, a := range n.abstractNums {
		ax := abstractNumXML{ID: a.ID, MultiLevelType: valElement{Val: "hybridMultilevel"}}
		for _, l := range a.Levels {
			if l.Level < 0 || l.Level > 8 {
				return nil, fmt.Errorf("abstract numbering %d: level %d out of range 0-8", a.ID, l.Level)
			}
			lx := lvlXML{
				Level:   l.Level,
				Start:   valElement{Val: fmt.Sprintf("%d", l.Start)},
				NumFmt:  valElement{Val: l.Format},
				LvlText: valElement{Val: l.Text},
				LvlJc:   valElement{Val: l.Align.String()},
			}
			lx.PPr.Ind = indXML{Left: l.Indent, Hanging: l.Hanging}
			ax.Levels = append(ax.Levels, lx)
		}
		out.AbstractNums = append(out.AbstractNums, ax)
	}
	for _, num := range n.nums {
		nx := numXML{ID: num.ID, AbstractNumID: valElement{Val: fmt.Sprintf("%d", num.AbstractNumID)}}
		for _, o := range num.LevelOverrides {
			nx.Overrides = append(nx.Overrides, lvlOverrideXML{
				Level:         o.Level,
				StartOverride: valElement{Val: fmt.Sprintf("%d", o.StartOverride)},
			})
		}
		out.Nums = append(out.Nums, nx)
	}
	return marshal(&out)
}
