package ranker

import (
	"math"
	"sort"
	"unicode/utf8"

	"moujaz/internal/domain"
)

// FrequencyRanker scores sentences by the mean normalized frequency of
// their tokens. It holds no state; one instance serves any number of
// concurrent calls.
type FrequencyRanker struct{}

// NewFrequencyRanker creates a new FrequencyRanker.
func NewFrequencyRanker() *FrequencyRanker {
	return &FrequencyRanker{}
}

// Weights aggregates all sentence tokens into a single frequency table
// normalized by the maximum count, so weights fall in (0, 1] and the
// most frequent term scores 1.0. Returns an empty table when no tokens
// survive filtering.
func (r *FrequencyRanker) Weights(sentenceTokens [][]string) map[string]float64 {
	counts := make(map[string]int)
	maxCount := 0
	for _, tokens := range sentenceTokens {
		for _, tok := range tokens {
			counts[tok]++
			if counts[tok] > maxCount {
				maxCount = counts[tok]
			}
		}
	}

	weights := make(map[string]float64, len(counts))
	for tok, c := range counts {
		weights[tok] = float64(c) / float64(maxCount)
	}
	return weights
}

// Score ranks every eligible sentence: at least minSentenceLen
// characters long and at least one filtered token. A sentence's score
// is the arithmetic mean of its token weights. Ineligible sentences
// are excluded entirely and can only reappear through fallback paths.
func (r *FrequencyRanker) Score(
	sentences []string,
	sentenceTokens [][]string,
	weights map[string]float64,
	minSentenceLen int,
) []domain.ScoredSentence {
	scored := make([]domain.ScoredSentence, 0, len(sentences))

	for idx, tokens := range sentenceTokens {
		if utf8.RuneCountInString(sentences[idx]) < minSentenceLen {
			continue
		}
		if len(tokens) == 0 {
			continue
		}

		sum := 0.0
		for _, tok := range tokens {
			sum += weights[tok]
		}
		scored = append(scored, domain.ScoredSentence{
			Index: idx,
			Score: sum / float64(len(tokens)),
		})
	}

	return scored
}

// TargetCount computes the number of sentences to select:
// max(1, min(maxSentences, ceil(sentenceCount*ratio))). Never 0, never
// above maxSentences.
func TargetCount(sentenceCount, maxSentences int, ratio float64) int {
	k := int(math.Ceil(float64(sentenceCount) * ratio))
	if k > maxSentences {
		k = maxSentences
	}
	if k < 1 {
		k = 1
	}
	return k
}

// Select takes the top-k sentences by score, ties going to the earlier
// index, and returns the chosen indices in ascending original order so
// the summary reads in document order.
func (r *FrequencyRanker) Select(scored []domain.ScoredSentence, k int) []int {
	ranked := make([]domain.ScoredSentence, len(scored))
	copy(ranked, scored)

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Index < ranked[j].Index
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}

	indices := make([]int, len(ranked))
	for i, s := range ranked {
		indices[i] = s.Index
	}
	sort.Ints(indices)
	return indices
}
