package types

// AlignmentType is a paragraph justification (ST_Jc)
type AlignmentType int

const (
	AlignLeft AlignmentType = iota
	AlignCenter
	AlignRight
	AlignBoth
	AlignDistribute
)

func (a AlignmentType) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignBoth:
		return "both"
	case AlignDistribute:
		return "distribute"
	default:
		return "left"
	}
}

// BreakType is the kind of a w:br element
type BreakType int

const (
	BreakTextWrapping BreakType = iota
	BreakPage
	BreakColumn
)

func (b BreakType) String() string {
	switch b {
	case BreakPage:
		return "page"
	case BreakColumn:
		return "column"
	default:
		return "textWrapping"
	}
}

// StyleType is the target of a style definition
type StyleType int

const (
	StyleParagraph StyleType = iota
	StyleCharacter
	StyleTable
	StyleNumbering
)

func (s StyleType) String() string {
	switch s {
	case StyleCharacter:
		return "character"
	case StyleTable:
		return "table"
	case StyleNumbering:
		return "numbering"
	default:
		return "paragraph"
	}
}

// VAlignType is the vertical alignment of a table cell
type VAlignType int

const (
	VAlignTop VAlignType = iota
	VAlignCenter
	VAlignBottom
)

func (v VAlignType) String() string {
	switch v {
	case VAlignCenter:
		return "center"
	case VAlignBottom:
		return "bottom"
	default:
		return "top"
	}
}

// VMergeType marks a cell as the start or a continuation of a vertical merge
type VMergeType int

const (
	VMergeContinue VMergeType = iota
	VMergeRestart
)

func (v VMergeType) String() string {
	if v == VMergeRestart {
		return "restart"
	}
	return "continue"
}

// BorderType is a border line style (ST_Border subset)
type BorderType int

const (
	BorderSingle BorderType = iota
	BorderNone
	BorderDouble
	BorderDotted
	BorderDashed
	BorderThick
)

func (b BorderType) String() string {
	switch b {
	case BorderNone:
		return "nil"
	case BorderDouble:
		return "double"
	case BorderDotted:
		return "dotted"
	case BorderDashed:
		return "dashed"
	case BorderThick:
		return "thick"
	default:
		return "single"
	}
}

// SpecialIndentType selects between first line and hanging indentation
type SpecialIndentType int

const (
	FirstLine SpecialIndentType = iota
	Hanging
)

func (s SpecialIndentType) String() string {
	if s == Hanging {
		return "hanging"
	}
	return "firstLine"
}
