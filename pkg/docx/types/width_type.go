package types

// WidthType is the unit of a table or cell width (ST_TblWidth)
type WidthType int

const (
	// DXA measures in twentieths of a point
	DXA WidthType = iota
	// Auto lets the consumer size the element
	Auto
	// Pct measures in fiftieths of a percent
	Pct
	// Nil means zero width
	Nil
)

func (w WidthType) String() string {
	switch w {
	case DXA:
		return "dxa"
	case Auto:
		return "auto"
	case Pct:
		return "pct"
	case Nil:
		return "nil"
	default:
		return "dxa"
	}
}
