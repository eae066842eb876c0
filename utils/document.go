package utils

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	pdf "github.com/ledongthuc/pdf"

	"github.com/jumptake/backend/apperror"
)

// Supported media types
const (
	MediaTypeText = "text/plain"
	MediaTypePDF  = "application/pdf"
	MediaTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var extensionMediaTypes = map[string]string{
	".txt":  MediaTypeText,
	".pdf":  MediaTypePDF,
	".docx": MediaTypeDOCX,
}

// DocumentExtractor extracts text from various document formats
type DocumentExtractor struct{}

// NewDocumentExtractor creates a new document extractor
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

// Extract returns the plain text of a document. The declared media type
// wins; the file extension is used when the media type is missing or
// generic.
func (e *DocumentExtractor) Extract(data []byte, mediaType, filename string) (string, error) {
	switch e.resolveMediaType(mediaType, filename) {
	case MediaTypeText:
		if !utf8.Valid(data) {
			return "", apperror.New(apperror.ParseError, "text file is not valid UTF-8")
		}
		return string(data), nil
	case MediaTypePDF:
		return e.extractPDF(data)
	case MediaTypeDOCX:
		return e.extractDocx(data)
	default:
		return "", apperror.Newf(apperror.UnsupportedFormat, "unsupported file format %q: upload a PDF, DOCX or TXT file", displayType(mediaType, filename))
	}
}

func (e *DocumentExtractor) resolveMediaType(mediaType, filename string) string {
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = strings.TrimSpace(mediaType[:i])
	}
	switch mediaType {
	case MediaTypeText, MediaTypePDF, MediaTypeDOCX:
		return mediaType
	case "", "application/octet-stream":
		return extensionMediaTypes[strings.ToLower(filepath.Ext(filename))]
	default:
		return ""
	}
}

// extractPDF joins the text runs of each page with a space and the pages
// with newlines. The PDF library panics on some malformed inputs, so the
// panic is turned into a parse error.
func (e *DocumentExtractor) extractPDF(content []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = apperror.Newf(apperror.ParseError, "failed to parse PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", apperror.Wrap(apperror.ParseError, err, "failed to parse PDF")
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", apperror.Wrap(apperror.ParseError, err, fmt.Sprintf("failed to read PDF page %d", i))
		}
		var items []string
		for _, row := range rows {
			for _, word := range row.Content {
				if strings.TrimSpace(word.S) != "" {
					items = append(items, word.S)
				}
			}
		}
		pages = append(pages, strings.Join(items, " "))
	}

	return strings.Join(pages, "\n"), nil
}

// extractDocx streams word/document.xml and keeps only the text runs.
func (e *DocumentExtractor) extractDocx(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", apperror.Wrap(apperror.ParseError, err, "failed to open DOCX container")
	}

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", apperror.New(apperror.ParseError, "no word/document.xml found in DOCX")
	}

	rc, err := doc.Open()
	if err != nil {
		return "", apperror.Wrap(apperror.ParseError, err, "failed to open DOCX body")
	}
	defer rc.Close()

	var sb strings.Builder
	inText := false
	decoder := xml.NewDecoder(rc)
	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", apperror.Wrap(apperror.ParseError, err, "failed to parse DOCX body")
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteByte('\t')
			case "br", "cr":
				sb.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}

	return strings.TrimRight(sb.String(), "\n"), nil
}

// IsSupportedFormat checks if the file format is supported
func (e *DocumentExtractor) IsSupportedFormat(filename string) bool {
	_, ok := extensionMediaTypes[strings.ToLower(filepath.Ext(filename))]
	return ok
}

func displayType(mediaType, filename string) string {
	if ext := filepath.Ext(filename); ext != "" {
		return ext
	}
	if mediaType != "" {
		return mediaType
	}
	return "unknown"
}
