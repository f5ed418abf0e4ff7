package parts

import (
	"encoding/xml"
	"fmt"
	"strings"
)

const relationshipsNamespace = "http://schemas.openxmlformats.org/package/2006/relationships"

// Relationship types used by the package
const (
	RelTypeOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	RelTypeCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	RelTypeAppProps       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	RelTypeStyles         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	RelTypeFontTable      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/fontTable"
	RelTypeSettings       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/settings"
	RelTypeComments       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/comments"
	RelTypeNumbering      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering"
	RelTypeHyperlink      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
)

// TargetModeExternal marks a relationship whose target lives outside the package
const TargetModeExternal = "External"

// Relationship represents a relationship in the DOCX package
type Relationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

// Relationships represents the collection of relationships
type Relationships struct {
	XMLName      xml.Name       `xml:"Relationships"`
	Namespace    string         `xml:"xmlns,attr"`
	Relationship []Relationship `xml:"Relationship"`
}

// ParseRelationships parses a .rels part
func ParseRelationships(data []byte) ([]Relationship, error) {
	var rels Relationships
	if err := xml.Unmarshal(data, &rels); err != nil {
		return nil, fmt.Errorf("failed to parse relationships: %w", err)
	}
	return rels.Relationship, nil
}

// RelationshipsPath converts a part name to its relationships part name
// e.g., "word/document.xml" -> "word/_rels/document.xml.rels"
func RelationshipsPath(partName string) string {
	dir := ""
	base := partName
	if idx := strings.LastIndex(partName, "/"); idx != -1 {
		dir = partName[:idx]
		base = partName[idx+1:]
	}
	if dir == "" {
		return fmt.Sprintf("_rels/%s.rels", base)
	}
	return fmt.Sprintf("%s/_rels/%s.rels", dir, base)
}

// relationshipSet is an ordered relationship collection with sequential rIdN ids
type relationshipSet struct {
	items []Relationship
	next  int
}

func (s *relationshipSet) add(relType, target, mode string) string {
	s.next++
	id := fmt.Sprintf("rId%d", s.next)
	s.items = append(s.items, Relationship{ID: id, Type: relType, Target: target, TargetMode: mode})
	return id
}

func (s *relationshipSet) get(id string) (Relationship, bool) {
	for _, r := range s.items {
		if r.ID == id {
			return r, true
		}
	}
	return Relationship{}, false
}

func (s *relationshipSet) build() ([]byte, error) {
	return marshal(&Relationships{
		Namespace:    relationshipsNamespace,
		Relationship: s.items,
	})
}

// Rels is the package-level relationships part (_rels/.rels)
type Rels struct {
	set relationshipSet
}

// NewRels creates the package relationships pointing at the properties and the main document
func NewRels() *Rels {
	r := &Rels{}
	r.set.add(RelTypeCoreProps, PathCoreProps, "")
	r.set.add(RelTypeAppProps, PathAppProps, "")
	r.set.add(RelTypeOfficeDocument, PathDocument, "")
	return r
}

// Add registers a package relationship and returns its id
func (r *Rels) Add(relType, target string) string {
	return r.set.add(relType, target, "")
}

// Relationships returns a copy of the registered relationships
func (r *Rels) Relationships() []Relationship {
	return append([]Relationship(nil), r.set.items...)
}

// Build serializes _rels/.rels
func (r *Rels) Build() ([]byte, error) {
	return r.set.build()
}

// DocumentRels is the relationships part of the main document (word/_rels/document.xml.rels)
type DocumentRels struct {
	set relationshipSet
}

// NewDocumentRels creates the document relationships pointing at every word/ part
func NewDocumentRels() *DocumentRels {
	r := &DocumentRels{}
	r.set.add(RelTypeStyles, "styles.xml", "")
	r.set.add(RelTypeFontTable, "fontTable.xml", "")
	r.set.add(RelTypeSettings, "settings.xml", "")
	r.set.add(RelTypeComments, "comments.xml", "")
	r.set.add(RelTypeNumbering, "numbering.xml", "")
	return r
}

// AddHyperlink registers an external hyperlink target and returns its relationship id
func (r *DocumentRels) AddHyperlink(target string) string {
	return r.set.add(RelTypeHyperlink, target, TargetModeExternal)
}

// Add registers an internal relationship relative to word/ and returns its id
func (r *DocumentRels) Add(relType, target string) string {
	return r.set.add(relType, target, "")
}

// Has reports whether a relationship id is registered
func (r *DocumentRels) Has(id string) bool {
	_, ok := r.set.get(id)
	return ok
}

// Get returns the relationship with the given id
func (r *DocumentRels) Get(id string) (Relationship, bool) {
	return r.set.get(id)
}

// Relationships returns a copy of the registered relationships
func (r *DocumentRels) Relationships() []Relationship {
	return append([]Relationship(nil), r.set.items...)
}

// Build serializes word/_rels/document.xml.rels
func (r *DocumentRels) Build() ([]byte, error) {
	return r.set.build()
}
