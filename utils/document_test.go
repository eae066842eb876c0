package utils

import (
	"archive/zip"
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jumptake/backend/apperror"
)

func buildDocx(t *testing.T, body string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body + `</w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// buildPDF writes a minimal PDF with one content stream per page.
func buildPDF(t *testing.T, pages ...string) []byte {
	t.Helper()

	n := len(pages)
	fontID := 3 + 2*n
	kids := ""
	for i := 0; i < n; i++ {
		kids += fmt.Sprintf("%d 0 R ", 3+2*i)
	}

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids, n),
	}
	for i, content := range pages {
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] "+
				"/Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>", fontID, 4+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		)
	}
	objects = append(objects, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func TestExtractPDFJoinsItemsAndPages(t *testing.T) {
	data := buildPDF(t,
		"BT /F1 12 Tf 72 720 Td (Jane) Tj 100 0 Td (Doe) Tj ET",
		"BT /F1 12 Tf 72 720 Td (Python) Tj 0 -20 Td (SQL) Tj ET",
	)

	text, err := NewDocumentExtractor().Extract(data, MediaTypePDF, "resume.pdf")

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nPython SQL", text)
}

func TestExtractText(t *testing.T) {
	e := NewDocumentExtractor()

	text, err := e.Extract([]byte("Jane Doe\nPython, SQL"), "text/plain; charset=utf-8", "resume.txt")

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nPython, SQL", text)
}

func TestExtractTextInvalidUTF8(t *testing.T) {
	_, err := NewDocumentExtractor().Extract([]byte{0xff, 0xfe, 0xfd}, "", "resume.txt")

	assert.Equal(t, apperror.ParseError, apperror.KindOf(err))
}

func TestExtractDocx(t *testing.T) {
	data := buildDocx(t,
		`<w:p><w:r><w:rPr><w:b/></w:rPr><w:t>Jane</w:t></w:r><w:r><w:t xml:space="preserve"> Doe</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>Skills:</w:t><w:tab/><w:t>Python</w:t><w:br/><w:t>SQL</w:t></w:r></w:p>`)

	text, err := NewDocumentExtractor().Extract(data, MediaTypeDOCX, "resume.docx")

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nSkills:\tPython\nSQL", text)
}

func TestExtractDocxByExtension(t *testing.T) {
	data := buildDocx(t, `<w:p><w:r><w:t>Hello</w:t></w:r></w:p>`)

	text, err := NewDocumentExtractor().Extract(data, "application/octet-stream", "CV.DOCX")

	require.NoError(t, err)
	assert.Equal(t, "Hello", text)
}

func TestExtractMalformed(t *testing.T) {
	e := NewDocumentExtractor()

	_, err := e.Extract([]byte("not a zip"), MediaTypeDOCX, "resume.docx")
	assert.Equal(t, apperror.ParseError, apperror.KindOf(err))

	_, err = e.Extract([]byte("%PDF-1.4 truncated garbage"), MediaTypePDF, "resume.pdf")
	assert.Equal(t, apperror.ParseError, apperror.KindOf(err))
}

func TestExtractUnsupported(t *testing.T) {
	e := NewDocumentExtractor()

	for _, tc := range []struct{ mediaType, filename string }{
		{"application/msword", "resume.doc"},
		{"", "resume.doc"},
		{"image/png", "scan.png"},
		{"", "resume"},
	} {
		_, err := e.Extract([]byte("data"), tc.mediaType, tc.filename)
		assert.Equal(t, apperror.UnsupportedFormat, apperror.KindOf(err), tc.filename)
	}
}

func TestIsSupportedFormat(t *testing.T) {
	e := NewDocumentExtractor()

	assert.True(t, e.IsSupportedFormat("cv.pdf"))
	assert.True(t, e.IsSupportedFormat("cv.DOCX"))
	assert.False(t, e.IsSupportedFormat("cv.doc"))
}
