package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/benjaminschreck/go-docx/pkg/docx/parts"
)

// XMLDocx is the serialized form of a document: one XML part per field
type XMLDocx struct {
	ContentTypes []byte
	Rels         []byte
	DocumentRels []byte
	CoreProps    []byte
	AppProps     []byte
	Styles       []byte
	Document     []byte
	Comments     []byte
	Numberings   []byte
	Settings     []byte
	FontTable    []byte

	// Compression is the ZIP method used by Pack (deflate or store)
	Compression string
}

// Entry is one file of the package
type Entry struct {
	Path string
	Data []byte
}

// Entries lists the parts at their package paths. [Content_Types].xml comes first.
func (x *XMLDocx) Entries() []Entry {
	return []Entry{
		{parts.PathContentTypes, x.ContentTypes},
		{parts.PathRels, x.Rels},
		{parts.PathCoreProps, x.CoreProps},
		{parts.PathAppProps, x.AppProps},
		{parts.PathDocumentRels, x.DocumentRels},
		{parts.PathDocument, x.Document},
		{parts.PathStyles, x.Styles},
		{parts.PathComments, x.Comments},
		{parts.PathNumbering, x.Numberings},
		{parts.PathSettings, x.Settings},
		{parts.PathFontTable, x.FontTable},
	}
}

// Pack writes the package as a ZIP archive
func (x *XMLDocx) Pack(w io.Writer) error {
	method := zip.Deflate
	switch x.Compression {
	case "", CompressionDeflate:
	case CompressionStore:
		method = zip.Store
	default:
		return fmt.Errorf("unsupported compression %q", x.Compression)
	}

	zw := zip.NewWriter(w)
	for _, entry := range x.Entries() {
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: entry.Path, Method: method})
		if err != nil {
			return NewDocumentError("pack", entry.Path, err)
		}
		if _, err := fw.Write(entry.Data); err != nil {
			return NewDocumentError("pack", entry.Path, err)
		}
	}

	if err := zw.Close(); err != nil {
		return NewDocumentError("pack", "", err)
	}
	return nil
}

// Bytes returns the packed archive
func (x *XMLDocx) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := x.Pack(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile packs the archive into the named file
func (x *XMLDocx) WriteFile(path string) error {
	data, err := x.Bytes()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return NewDocumentError("write", path, err)
	}
	return nil
}
