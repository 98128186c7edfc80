package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/jonathan/university-match/internal/extraction"
	"github.com/jonathan/university-match/internal/ingestion"
	"github.com/jonathan/university-match/internal/logger"
	"github.com/jonathan/university-match/internal/types"
	"go.uber.org/zap"
)

// cvFormField is the multipart field carrying the uploaded CV.
const cvFormField = "cv"

// ParseCVResponse is the body returned by POST /api/parse-cv.
type ParseCVResponse struct {
	Success       bool                   `json:"success"`
	ExtractedText string                 `json:"extracted_text"`
	ExtractedData types.ExtractedProfile `json:"extracted_data"`
	Confidence    float64                `json:"confidence"`
	Keywords      []string               `json:"keywords"`
	Metadata      *ingestion.Metadata    `json:"metadata"`
}

// handleParseCV extracts a candidate profile from an uploaded PDF or DOCX CV.
func (s *Server) handleParseCV(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.errorFrom(w, r, err)
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile(cvFormField)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "CV file not found")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorFrom(w, r, err)
		return
	}
	if header.Filename == "" || len(data) == 0 {
		s.errorFrom(w, r, ingestion.ErrEmptyDocument)
		return
	}

	declared := header.Header.Get("Content-Type")
	log := logger.WithFields(s.requestLogger(r),
		zap.String("file_name", header.Filename),
		zap.String(logger.FieldMIMEType, declared),
		zap.Int("size_bytes", len(data)),
	)

	text, err := s.extractor.ExtractText(data, declared)
	if err != nil {
		log.Info("CV extraction failed", zap.Error(err))
		s.errorFrom(w, r, err)
		return
	}

	assessment, err := ingestion.AssessCV(text)
	if err != nil {
		log.Info("CV rejected", zap.Error(err))
		s.errorFrom(w, r, err)
		return
	}

	log.Debug("CV text extracted", zap.String("preview", logger.TruncateForLog(text, 200)))

	s.jsonResponse(w, http.StatusOK, ParseCVResponse{
		Success:       true,
		ExtractedText: assessment.Preview,
		ExtractedData: extraction.Extract(text),
		Confidence:    assessment.Confidence,
		Keywords:      assessment.Keywords,
		Metadata:      ingestion.NewMetadata(header.Filename, ingestion.DetectType(data, declared), data, text),
	})
}
