package api

import "moujaz/internal/domain"

// SummarizeRequest is the POST /summarize body. Tuning fields are
// pointers so "absent" and "zero" stay distinguishable; absent fields
// use the server's configured defaults.
type SummarizeRequest struct {
	Text           string   `json:"text"`
	MaxSentences   *int     `json:"max_sentences,omitempty"`
	Ratio          *float64 `json:"ratio,omitempty"`
	MinSentenceLen *int     `json:"min_sentence_len,omitempty"`
}

// OCRResponse is the POST /ocr payload: the recognized text plus its
// summary.
type OCRResponse struct {
	ExtractedText string         `json:"extracted_text"`
	Summary       domain.Summary `json:"summary"`
}

// HealthResponse is the GET / payload.
type HealthResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}
