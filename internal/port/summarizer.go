package port

import "moujaz/internal/domain"

// Summarizer produces an extractive summary from plain text. It is
// total: every input, including the empty string, yields a well-formed
// result.
type Summarizer interface {
	Summarize(text string, opts domain.Options) domain.Summary
}
