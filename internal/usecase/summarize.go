package usecase

import (
	"strings"
	"unicode/utf8"

	"moujaz/internal/adapter/analyzer"
	"moujaz/internal/adapter/ranker"
	"moujaz/internal/domain"
	"moujaz/internal/port"
)

// SummarizeUseCase runs the extractive summarization pipeline:
// normalize, detect language, segment, tokenize, score, select.
// It is total: every input yields a well-formed Summary, never an
// error. All collaborators are immutable, so one instance serves
// concurrent callers without locking.
type SummarizeUseCase struct {
	detector  port.Detector
	segmenter port.Segmenter
	tokenizer port.Tokenizer
	ranker    *ranker.FrequencyRanker
}

// NewSummarizeUseCase creates a use case from explicit collaborators.
func NewSummarizeUseCase(
	detector port.Detector,
	segmenter port.Segmenter,
	tokenizer port.Tokenizer,
	rk *ranker.FrequencyRanker,
) *SummarizeUseCase {
	return &SummarizeUseCase{
		detector:  detector,
		segmenter: segmenter,
		tokenizer: tokenizer,
		ranker:    rk,
	}
}

// NewDefaultSummarizer wires the standard pipeline over the given
// stopword sets.
func NewDefaultSummarizer(sets analyzer.Sets) *SummarizeUseCase {
	return NewSummarizeUseCase(
		analyzer.NewScriptDetector(),
		analyzer.NewSentenceSegmenter(),
		analyzer.NewTokenizer(sets),
		ranker.NewFrequencyRanker(),
	)
}

// Summarize selects a subset of the text's own sentences as a summary.
// Very short documents are returned whole; documents with no scorable
// content fall back to a prefix selection.
func (u *SummarizeUseCase) Summarize(text string, opts domain.Options) domain.Summary {
	opts = opts.Clamped()

	cleaned := analyzer.CollapseWhitespace(text)
	if cleaned == "" {
		return emptySummary(u.detector.Detect(text))
	}

	lang := u.detector.Detect(cleaned)
	sentences := u.segmenter.Split(cleaned)
	if len(sentences) == 0 {
		return emptySummary(lang)
	}

	// Scoring adds nothing on very short input; return it whole.
	if len(sentences) <= domain.ShortDocSentences ||
		utf8.RuneCountInString(cleaned) < domain.ShortDocChars {
		return domain.Summary{
			Text:            cleaned,
			Language:        lang,
			SelectedIndices: sequence(len(sentences)),
			SentenceCount:   len(sentences),
		}
	}

	sentenceTokens := make([][]string, len(sentences))
	total := 0
	for i, s := range sentences {
		sentenceTokens[i] = u.tokenizer.Tokenize(s, lang)
		total += len(sentenceTokens[i])
	}

	k := ranker.TargetCount(len(sentences), opts.MaxSentences, opts.Ratio)

	// Nothing survived filtering: no frequency table, take the prefix.
	if total == 0 {
		return u.assemble(sentences, sequence(k), lang)
	}

	weights := u.ranker.Weights(sentenceTokens)
	scored := u.ranker.Score(sentences, sentenceTokens, weights, opts.MinSentenceLen)

	var selected []int
	if len(scored) == 0 {
		selected = sequence(k)
	} else {
		selected = u.ranker.Select(scored, k)
	}

	return u.assemble(sentences, selected, lang)
}

// assemble joins the selected sentences in document order.
func (u *SummarizeUseCase) assemble(sentences []string, indices []int, lang string) domain.Summary {
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = sentences[idx]
	}
	return domain.Summary{
		Text:            strings.TrimSpace(strings.Join(parts, " ")),
		Language:        lang,
		SelectedIndices: indices,
		SentenceCount:   len(sentences),
	}
}

func emptySummary(lang string) domain.Summary {
	return domain.Summary{
		Language:        lang,
		SelectedIndices: []int{},
	}
}

// sequence returns [0, 1, ..., n-1].
func sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
