package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
	"unicode/utf8"
)

// Metadata describes an ingested document.
type Metadata struct {
	FileName   string `json:"file_name,omitempty"`
	MIMEType   string `json:"mime_type"`
	SizeBytes  int    `json:"size_bytes"`
	Characters int    `json:"characters"`
	Timestamp  string `json:"timestamp"` // RFC3339 format
	Hash       string `json:"hash"`      // SHA256 hex digest of the raw document
}

// NewMetadata describes a document and the text extracted from it.
func NewMetadata(fileName, mimeType string, data []byte, text string) *Metadata {
	return &Metadata{
		FileName:   fileName,
		MIMEType:   mimeType,
		SizeBytes:  len(data),
		Characters: utf8.RuneCountInString(text),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Hash:       computeHash(data),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}
