// Package resume handles resume text extraction and AI profile analysis.
package resume

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	MimePDF  = "application/pdf"
	MimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeText = "text/plain"
)

// ExtractText pulls plain text out of an uploaded resume by MIME type.
func ExtractText(mime string, data []byte) (string, error) {
	switch mime {
	case MimeText:
		return string(data), nil

	case MimePDF:
		return extractPDFText(bytes.NewReader(data))

	case MimeDocx:
		return extractDocxText(bytes.NewReader(data))

	default:
		return "", fmt.Errorf("unsupported file type: %s", mime)
	}
}

func extractPDFText(reader io.ReaderAt) (string, error) {
	pdfReader, err := pdf.NewReader(reader, lenReader(reader))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}
	var textBuilder strings.Builder
	numPages := pdfReader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		textBuilder.WriteString(text)
	}
	return textBuilder.String(), nil
}

func extractDocxText(reader io.Reader) (string, error) {
	buf := new(bytes.Buffer)
	_, err := io.Copy(buf, reader)
	if err != nil {
		return "", err
	}
	r := bytes.NewReader(buf.Bytes())

	doc, err := docx.ReadDocxFromMemory(r, int64(buf.Len()))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}

// Utility: get reader length for PDF
func lenReader(r io.ReaderAt) int64 {
	switch v := r.(type) {
	case *bytes.Reader:
		return int64(v.Len())
	default:
		return 0
	}
}

var sectionHeadingRe = regexp.MustCompile(`(?im)^\s*(work experience|professional experience|experience|employment history|education|skills|technical skills|projects|certifications|summary|profile|objective)\s*:?\s*$`)

// RelevantSections trims a resume down to the sections that matter for
// profile extraction. If no headings are recognized the text is returned
// capped at maxLen.
func RelevantSections(text string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = 6000
	}
	if len(text) <= maxLen {
		return text
	}

	idx := sectionHeadingRe.FindAllStringIndex(text, -1)
	if len(idx) == 0 {
		return text[:maxLen]
	}

	var b strings.Builder
	// Keep the header block before the first recognized section, it
	// usually contains name and contact details.
	head := text[:idx[0][0]]
	if len(head) > 800 {
		head = head[:800]
	}
	b.WriteString(head)

	for i, loc := range idx {
		end := len(text)
		if i+1 < len(idx) {
			end = idx[i+1][0]
		}
		section := text[loc[0]:end]
		remaining := maxLen - b.Len()
		if remaining <= 0 {
			break
		}
		if len(section) > remaining {
			section = section[:remaining]
		}
		b.WriteString(section)
	}
	return b.String()
}
