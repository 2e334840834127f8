package analyzer

import (
	"strings"
	"unicode"
)

// SentenceSegmenter splits text into sentences. A boundary is either a
// sentence-ending mark followed by whitespace, or a run of newlines.
// Fragment order equals appearance order; the selector relies on that
// when it re-sorts chosen sentences by index.
type SentenceSegmenter struct{}

// NewSentenceSegmenter creates a new SentenceSegmenter.
func NewSentenceSegmenter() *SentenceSegmenter {
	return &SentenceSegmenter{}
}

// Split returns trimmed, non-empty sentences in source order.
func (s *SentenceSegmenter) Split(text string) []string {
	runes := []rune(text)
	var sentences []string

	emit := func(from, to int) {
		frag := strings.TrimSpace(string(runes[from:to]))
		if frag != "" {
			sentences = append(sentences, frag)
		}
	}

	start := 0
	i := 0
	for i < len(runes) {
		r := runes[i]

		if r == '\n' {
			emit(start, i)
			for i < len(runes) && runes[i] == '\n' {
				i++
			}
			start = i
			continue
		}

		if isSentenceEnd(r) && i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
			emit(start, i+1)
			i++
			for i < len(runes) && unicode.IsSpace(runes[i]) {
				i++
			}
			start = i
			continue
		}

		i++
	}
	emit(start, len(runes))

	return sentences
}

// isSentenceEnd reports whether r terminates a sentence. The set covers
// the Latin marks plus the Arabic question mark and the ellipsis.
func isSentenceEnd(r rune) bool {
	switch r {
	case '.', '!', '?', '؟', '…':
		return true
	}
	return false
}
