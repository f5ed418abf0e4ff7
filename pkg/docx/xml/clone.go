package xml

// Clone returns a deep copy of the comment, so the extracted comment never shares nodes with the
// tree it was copied from.
func (c *Comment) Clone() *Comment {
	if c == nil {
		return nil
	}
	out := *c
	out.Paragraphs = make([]*Paragraph, 0, len(c.Paragraphs))
	for _, p := range c.Paragraphs {
		out.Paragraphs = append(out.Paragraphs, p.Clone())
	}
	return &out
}

// Clone returns a deep copy of the paragraph
func (p *Paragraph) Clone() *Paragraph {
	if p == nil {
		return nil
	}
	out := &Paragraph{Properties: p.Properties.clone()}
	for _, child := range p.Children {
		out.Children = append(out.Children, cloneParagraphChild(child))
	}
	return out
}

func cloneParagraphChild(child ParagraphChild) ParagraphChild {
	switch c := child.(type) {
	case *Run:
		return c.Clone()
	case *Hyperlink:
		h := *c
		h.Runs = make([]*Run, 0, len(c.Runs))
		for _, r := range c.Runs {
			h.Runs = append(h.Runs, r.Clone())
		}
		return &h
	case *CommentRangeStart:
		return &CommentRangeStart{ID: c.ID, Comment: c.Comment.Clone()}
	case *CommentRangeEnd:
		v := *c
		return &v
	case *BookmarkStart:
		v := *c
		return &v
	case *BookmarkEnd:
		v := *c
		return &v
	default:
		return child
	}
}

func (p *ParagraphProperties) clone() *ParagraphProperties {
	if p == nil {
		return nil
	}
	out := *p
	if p.Style != nil {
		s := *p.Style
		out.Style = &s
	}
	if p.NumberingProperty != nil {
		n := *p.NumberingProperty
		out.NumberingProperty = &n
	}
	if p.Spacing != nil {
		s := *p.Spacing
		out.Spacing = &s
	}
	if p.Indentation != nil {
		i := *p.Indentation
		if i.Special != nil {
			sp := *i.Special
			i.Special = &sp
		}
		out.Indentation = &i
	}
	if p.Alignment != nil {
		a := *p.Alignment
		out.Alignment = &a
	}
	if p.SectionProperties != nil {
		sp := *p.SectionProperties
		out.SectionProperties = &sp
	}
	return &out
}

// Clone returns a deep copy of the run
func (r *Run) Clone() *Run {
	if r == nil {
		return nil
	}
	out := &Run{}
	out.Properties = r.Properties.clone()
	for _, child := range r.Children {
		switch c := child.(type) {
		case *Text:
			v := *c
			out.Children = append(out.Children, &v)
		case *Break:
			v := *c
			out.Children = append(out.Children, &v)
		case *Tab:
			out.Children = append(out.Children, &Tab{})
		default:
			out.Children = append(out.Children, child)
		}
	}
	return out
}

func (p *RunProperties) clone() *RunProperties {
	if p == nil {
		return nil
	}
	out := &RunProperties{}
	if p.Style != nil {
		v := *p.Style
		out.Style = &v
	}
	if p.Fonts != nil {
		v := *p.Fonts
		out.Fonts = &v
	}
	if p.Bold != nil {
		out.Bold = &Empty{}
	}
	if p.Italic != nil {
		out.Italic = &Empty{}
	}
	if p.Color != nil {
		v := *p.Color
		out.Color = &v
	}
	if p.Size != nil {
		v := *p.Size
		out.Size = &v
	}
	if p.Underline != nil {
		v := *p.Underline
		out.Underline = &v
	}
	return out
}
