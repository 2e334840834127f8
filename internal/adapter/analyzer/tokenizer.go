package analyzer

import (
	"strings"
	"unicode/utf8"
)

// minTokenRunes is the exclusive lower bound on kept token length;
// tokens of 1 or 2 runes are dropped.
const minTokenRunes = 2

// Tokenizer splits sentences into lowercased word tokens and filters
// stopwords for the active language. Stopword sets are fixed at
// construction; a Tokenizer is safe for concurrent use.
type Tokenizer struct {
	sets Sets
}

// NewTokenizer creates a Tokenizer with the given stopword sets.
func NewTokenizer(sets Sets) *Tokenizer {
	return &Tokenizer{sets: sets}
}

// Tokenize returns the filtered tokens of text for lang ("ar" or "en").
// A token survives if it is longer than two runes and not a stopword.
func (t *Tokenizer) Tokenize(text, lang string) []string {
	stop := t.sets.ForLanguage(lang)
	words := splitWords(text)

	tokens := make([]string, 0, len(words))
	for _, word := range words {
		word = strings.ToLower(word)
		if utf8.RuneCountInString(word) <= minTokenRunes {
			continue
		}
		if stop.Contains(word) {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// splitWords extracts maximal runs of word runes: ASCII digits, basic
// and extended Latin letters, and Arabic letters.
func splitWords(text string) []string {
	var words []string
	var current strings.Builder

	for _, r := range text {
		if isWordRune(r) {
			current.WriteRune(r)
		} else {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
		}
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

// isWordRune reports whether r belongs to a word token. The ranges
// mirror the accepted alphabets: digits, A-Z, a-z, Latin-1 letters
// minus the multiplication and division signs, and the Arabic block.
func isWordRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= 'a' && r <= 'z':
		return true
	case r >= 0x00C0 && r <= 0x00D6: // À-Ö
		return true
	case r >= 0x00D8 && r <= 0x00F6: // Ø-ö
		return true
	case r >= 0x00F8 && r <= 0x00FF: // ø-ÿ
		return true
	case isArabic(r):
		return true
	}
	return false
}
