// Package export writes formatting results to word-processor and PDF
// documents. The consumers are plain paragraphs of text; no layout beyond
// one paragraph per line is attempted.
package export

import (
	"archive/zip"
	"encoding/xml"
	"os"
	"strings"

	"github.com/ShivamKumarSah/Math-Expression-Formatter/internal/logger"
	"github.com/ShivamKumarSah/Math-Expression-Formatter/internal/types"
)

// Minimal OOXML package parts. Word (and the open-source suites) accept a
// docx containing just the content types, the package relationships and
// the main document part.
const (
	contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

	packageRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

	documentHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`
	documentFooter = `</w:body></w:document>`
)

// WriteDocx writes the given paragraphs to path as a Word document, one
// body paragraph per entry. Empty entries become empty paragraphs.
func WriteDocx(path string, paragraphs []string) error {
	logger.Info("exporting docx",
		logger.String("path", path),
		logger.Int("paragraphs", len(paragraphs)))

	f, err := os.Create(path)
	if err != nil {
		return types.NewAppError(types.ErrExport, "failed to create document file", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/document.xml", documentXML(paragraphs)},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			zw.Close()
			return types.NewAppError(types.ErrExport, "failed to add document part", err)
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			zw.Close()
			return types.NewAppError(types.ErrExport, "failed to write document part", err)
		}
	}
	if err := zw.Close(); err != nil {
		return types.NewAppError(types.ErrExport, "failed to finalize document", err)
	}

	logger.Info("docx export complete", logger.String("path", path))
	return nil
}

func documentXML(paragraphs []string) string {
	var b strings.Builder
	b.WriteString(documentHeader)
	for _, p := range paragraphs {
		b.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
		b.WriteString(escapeXML(p))
		b.WriteString(`</w:t></w:r></w:p>`)
	}
	b.WriteString(documentFooter)
	return b.String()
}

func escapeXML(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return s
	}
	return b.String()
}
