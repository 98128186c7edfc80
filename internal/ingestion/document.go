// Package ingestion turns uploaded documents into clean text and checks that
// the text plausibly belongs to a CV.
package ingestion

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"mime"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
)

// Supported document MIME types.
const (
	MIMEPDF       = "application/pdf"
	MIMEDOCX      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEMSWord    = "application/msword"
	MIMEPlainText = "text/plain"
)

// Formats reported in errors.
const (
	FormatPDF  = "PDF"
	FormatDOCX = "DOCX"
	FormatText = "text"
)

var (
	xmlTagPattern = regexp.MustCompile(`<[^>]+>`)
	docxParagraph = strings.NewReplacer("</w:p>", "\n", "<w:tab/>", "\t", "<w:br/>", "\n")
)

// Options disable individual format backends.
type Options struct {
	DisablePDF  bool
	DisableDOCX bool
}

// Extractor converts document bytes into text.
type Extractor struct {
	opts Options
}

// NewExtractor returns an extractor with the given backends.
func NewExtractor(opts Options) *Extractor {
	return &Extractor{opts: opts}
}

// ExtractText converts data of the given MIME type to cleaned text. An empty
// or generic MIME type is replaced by the type sniffed from the content.
func (e *Extractor) ExtractText(data []byte, mimeType string) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyDocument
	}

	var (
		text string
		err  error
	)
	switch mediaType := DetectType(data, mimeType); mediaType {
	case MIMEPDF:
		if e.opts.DisablePDF {
			return "", &FeatureUnavailableError{Format: FormatPDF}
		}
		text, err = extractPDF(data)
	case MIMEDOCX, MIMEMSWord:
		if e.opts.DisableDOCX {
			return "", &FeatureUnavailableError{Format: FormatDOCX}
		}
		text, err = extractDOCX(data)
	case MIMEPlainText:
		if !utf8.Valid(data) {
			return "", &ExtractionError{Format: FormatText, Message: "content is not valid UTF-8"}
		}
		text = string(data)
	default:
		return "", &UnsupportedFormatError{MIMEType: mediaType}
	}
	if err != nil {
		return "", err
	}
	return CleanText(text), nil
}

// DetectType returns the media type of declared without parameters, or the
// sniffed type of data when declared is empty or generic.
func DetectType(data []byte, declared string) string {
	mediaType := baseType(declared)
	switch mediaType {
	case "", "application/octet-stream", "application/zip", "binary/octet-stream":
		return baseType(mimetype.Detect(data).String())
	}
	return mediaType
}

func baseType(v string) string {
	if v == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(v)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(v))
	}
	return mediaType
}

func extractPDF(data []byte) (text string, err error) {
	// The reader panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", &ExtractionError{Format: FormatPDF, Message: fmt.Sprintf("malformed document: %v", r)}
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: FormatPDF, Message: "failed to open document", Cause: err}
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", &ExtractionError{Format: FormatPDF, Message: "failed to read text", Cause: err}
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", &ExtractionError{Format: FormatPDF, Message: "failed to read text", Cause: err}
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: FormatDOCX, Message: "failed to open document", Cause: err}
	}

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", &ExtractionError{Format: FormatDOCX, Message: "failed to open document.xml", Cause: err}
		}
		defer func() { _ = rc.Close() }()

		body, err := io.ReadAll(rc)
		if err != nil {
			return "", &ExtractionError{Format: FormatDOCX, Message: "failed to read document.xml", Cause: err}
		}
		text := xmlTagPattern.ReplaceAllString(docxParagraph.Replace(string(body)), "")
		return unescapeXML(text), nil
	}
	return "", &ExtractionError{Format: FormatDOCX, Message: "no word/document.xml found"}
}

var xmlEntities = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'", "&amp;", "&")

func unescapeXML(s string) string {
	return xmlEntities.Replace(s)
}
