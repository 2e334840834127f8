package api

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"moujaz/internal/domain"
	"moujaz/internal/logger"
	"moujaz/internal/port"
)

// Handler serves the summarization endpoints. The summarizer is the
// pure core; the extractor is the external OCR bridge and may be nil,
// in which case /ocr reports that OCR is unavailable.
type Handler struct {
	log        *logger.Logger
	summarizer port.Summarizer
	extractor  port.TextExtractor
	defaults   domain.Options
	maxUpload  int64
}

// NewHandler creates a Handler.
func NewHandler(
	log *logger.Logger,
	summarizer port.Summarizer,
	extractor port.TextExtractor,
	defaults domain.Options,
	maxUpload int64,
) *Handler {
	return &Handler{
		log:        log,
		summarizer: summarizer,
		extractor:  extractor,
		defaults:   defaults,
		maxUpload:  maxUpload,
	}
}

// HandleHealth reports liveness.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{Message: "moujaz is running"})
}

// HandleSummarize summarizes the text in the JSON body. The engine is
// total, so any decodable request succeeds.
func (h *Handler) HandleSummarize(w http.ResponseWriter, r *http.Request) {
	reqID := RequestID(r.Context())

	var req SummarizeRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, h.maxUpload)).Decode(&req); err != nil {
		h.log.Error("[%s] JSON decode error: %v", reqID, err)
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	opts := h.options(req)
	result := h.summarizer.Summarize(req.Text, opts)

	h.log.Info("[%s] summarized: lang=%s sentences=%d selected=%d",
		reqID, result.Language, result.SentenceCount, len(result.SelectedIndices))

	respondJSON(w, http.StatusOK, result)
}

// HandleOCR accepts a multipart image upload, extracts its text with
// the OCR bridge, and returns the text plus a summary of it.
func (h *Handler) HandleOCR(w http.ResponseWriter, r *http.Request) {
	reqID := RequestID(r.Context())

	if h.extractor == nil {
		respondError(w, http.StatusServiceUnavailable, "OCR is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	file, header, err := r.FormFile("file")
	if err != nil {
		h.log.Error("[%s] upload error: %v", reqID, err)
		respondError(w, http.StatusBadRequest, "missing or oversized file upload")
		return
	}
	defer file.Close()

	tmpPath, err := saveUpload(file, header.Filename)
	if err != nil {
		h.log.Error("[%s] failed to buffer upload: %v", reqID, err)
		respondError(w, http.StatusInternalServerError, "failed to store upload")
		return
	}
	defer os.Remove(tmpPath)

	text, err := h.extractor.Extract(r.Context(), tmpPath)
	if err != nil {
		h.log.Error("[%s] OCR failed: %v", reqID, err)
		respondError(w, http.StatusBadGateway, "text extraction failed")
		return
	}

	result := h.summarizer.Summarize(text, h.defaults)

	h.log.Info("[%s] ocr: file=%s extracted=%dB lang=%s",
		reqID, header.Filename, len(text), result.Language)

	respondJSON(w, http.StatusOK, OCRResponse{
		ExtractedText: text,
		Summary:       result,
	})
}

// options overlays request tuning on the configured defaults.
func (h *Handler) options(req SummarizeRequest) domain.Options {
	opts := h.defaults
	if req.MaxSentences != nil {
		opts.MaxSentences = *req.MaxSentences
	}
	if req.Ratio != nil {
		opts.Ratio = *req.Ratio
	}
	if req.MinSentenceLen != nil {
		opts.MinSentenceLen = *req.MinSentenceLen
	}
	return opts.Clamped()
}

// saveUpload writes the upload to a temp file, keeping the original
// extension so the OCR binary can sniff the format.
func saveUpload(file io.Reader, filename string) (string, error) {
	ext := filepath.Ext(filename)
	tmp, err := os.CreateTemp("", "moujaz-upload-*"+ext)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}
