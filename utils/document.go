package utils

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ErrUnsupportedFormat is returned for uploads that are neither PDF nor DOCX.
var ErrUnsupportedFormat = errors.New("unsupported file format")

var supportedFormats = []string{".pdf", ".docx"}

// DocumentExtractor extracts text from various document formats
type DocumentExtractor struct{}

// NewDocumentExtractor creates a new document extractor
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

// ExtractText extracts text from a file based on its extension
func (e *DocumentExtractor) ExtractText(filename string, content []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return e.extractPDF(content)
	case ".docx":
		return e.extractDocx(content)
	default:
		return "", fmt.Errorf("%w: %q, only PDF and DOCX are accepted", ErrUnsupportedFormat, filename)
	}
}

// extractPDF concatenates the plain text of every non-empty page.
func (e *DocumentExtractor) extractPDF(content []byte) (text string, err error) {
	// The pdf package panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to read pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read pdf page %d: %w", i, err)
		}
		sb.WriteString(pageText)
	}
	return sb.String(), nil
}

// extractDocx returns the document body text, one paragraph per line.
func (e *DocumentExtractor) extractDocx(content []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return paragraphText(doc.Editable().GetContent())
}

// paragraphText flattens WordprocessingML into plain text. Runs of <w:t> are
// concatenated, <w:tab/> becomes a tab, and <w:br/> and paragraph ends become
// newlines.
func paragraphText(documentXML string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(documentXML))

	var (
		sb        strings.Builder
		paragraph strings.Builder
		inText    bool
		first     = true
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse docx body: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				paragraph.WriteByte('\t')
			case "br", "cr":
				paragraph.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if !first {
					sb.WriteByte('\n')
				}
				sb.WriteString(paragraph.String())
				paragraph.Reset()
				first = false
			}
		case xml.CharData:
			if inText {
				paragraph.Write(t)
			}
		}
	}
	if paragraph.Len() > 0 {
		if !first {
			sb.WriteByte('\n')
		}
		sb.WriteString(paragraph.String())
	}
	return sb.String(), nil
}

// IsSupportedFormat checks if the file format is supported
func (e *DocumentExtractor) IsSupportedFormat(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))

	for _, format := range supportedFormats {
		if ext == format {
			return true
		}
	}
	return false
}
