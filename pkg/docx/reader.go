package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/benjaminschreck/go-docx/pkg/docx/parts"
)

// Package gives read access to the parts of a packed document
type Package struct {
	reader *zip.Reader
	Parts  map[string]*zip.File
}

// ReadPackage opens a packed document and indexes its parts
func ReadPackage(r io.ReaderAt, size int64) (*Package, error) {
	zipReader, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to read zip file: %w", err)
	}

	pkg := &Package{
		reader: zipReader,
		Parts:  make(map[string]*zip.File),
	}

	for _, file := range zipReader.File {
		pkg.Parts[file.Name] = file
	}

	for _, required := range []string{parts.PathContentTypes, parts.PathDocument} {
		if _, ok := pkg.Parts[required]; !ok {
			return nil, fmt.Errorf("not a valid DOCX file: missing %s", required)
		}
	}

	return pkg, nil
}

// ReadPackageFile opens a packed document from a file path
func ReadPackageFile(path string) (*Package, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ReadPackage(bytes.NewReader(content), int64(len(content)))
}

// Part retrieves the content of a part
func (p *Package) Part(partName string) ([]byte, error) {
	file, ok := p.Parts[partName]
	if !ok {
		return nil, fmt.Errorf("part %s not found", partName)
	}

	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open part %s: %w", partName, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read part %s: %w", partName, err)
	}
	return content, nil
}

// Relationships retrieves the relationships of a part. A part without a relationships file
// has none.
func (p *Package) Relationships(partName string) ([]parts.Relationship, error) {
	relPath := parts.RelationshipsPath(partName)
	if _, ok := p.Parts[relPath]; !ok {
		return []parts.Relationship{}, nil
	}

	content, err := p.Part(relPath)
	if err != nil {
		return nil, err
	}
	return parts.ParseRelationships(content)
}

// ListParts returns the part names in sorted order
func (p *Package) ListParts() []string {
	names := make([]string, 0, len(p.Parts))
	for name := range p.Parts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
