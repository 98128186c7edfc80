package ingestion

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDocument is returned when an uploaded document has no content.
	ErrEmptyDocument = errors.New("document is empty")
	// ErrTooShort is returned when extracted text is too short to be a CV.
	ErrTooShort = errors.New("CV content could not be extracted or is too short")
	// ErrNotACV is returned when extracted text lacks the sections a CV has.
	ErrNotACV = errors.New("document does not look like a CV")
)

// UnsupportedFormatError is returned for document types no extractor handles.
type UnsupportedFormatError struct {
	MIMEType string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format %q: upload a PDF or DOCX file", e.MIMEType)
}

// FeatureUnavailableError is returned when the extractor for a supported
// format has been disabled.
type FeatureUnavailableError struct {
	Format string
}

func (e *FeatureUnavailableError) Error() string {
	return fmt.Sprintf("%s parsing is not available", e.Format)
}

// ExtractionError represents a failure to read text out of a document
type ExtractionError struct {
	Format  string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s extraction failed: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s extraction failed: %s", e.Format, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
