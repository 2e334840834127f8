package ranker

import (
	"math"
	"reflect"
	"testing"

	"moujaz/internal/domain"
)

func TestWeights_NormalizedByMax(t *testing.T) {
	r := NewFrequencyRanker()

	weights := r.Weights([][]string{
		{"storm", "storm", "sea"},
		{"storm", "wind"},
	})

	if w := weights["storm"]; w != 1.0 {
		t.Errorf("most frequent term should weigh 1.0, got %f", w)
	}
	if w := weights["sea"]; math.Abs(w-1.0/3.0) > 1e-9 {
		t.Errorf("sea weight = %f, want 1/3", w)
	}
	if w := weights["wind"]; math.Abs(w-1.0/3.0) > 1e-9 {
		t.Errorf("wind weight = %f, want 1/3", w)
	}
}

func TestWeights_Empty(t *testing.T) {
	r := NewFrequencyRanker()

	weights := r.Weights([][]string{{}, {}})
	if len(weights) != 0 {
		t.Errorf("expected empty table, got %v", weights)
	}
}

func TestScore_SkipsIneligibleSentences(t *testing.T) {
	r := NewFrequencyRanker()

	sentences := []string{
		"short",
		"this sentence is long enough to be scored properly",
		"another sentence long enough but with zero usable tokens",
	}
	tokens := [][]string{
		{"short"},
		{"sentence", "scored"},
		{},
	}
	weights := map[string]float64{"short": 1.0, "sentence": 1.0, "scored": 0.5}

	scored := r.Score(sentences, tokens, weights, 30)

	if len(scored) != 1 {
		t.Fatalf("expected 1 scored sentence, got %d: %v", len(scored), scored)
	}
	if scored[0].Index != 1 {
		t.Errorf("expected index 1, got %d", scored[0].Index)
	}
	if math.Abs(scored[0].Score-0.75) > 1e-9 {
		t.Errorf("score = %f, want 0.75", scored[0].Score)
	}
}

func TestTargetCount(t *testing.T) {
	tests := []struct {
		sentences    int
		maxSentences int
		ratio        float64
		expected     int
	}{
		{10, 3, 0.25, 3},  // ceil(2.5)=3, capped at 3
		{4, 3, 0.25, 1},   // ceil(1.0)=1
		{5, 3, 0.25, 2},   // ceil(1.25)=2
		{100, 3, 0.25, 3}, // cap wins
		{3, 10, 1.0, 3},   // ratio 1.0 keeps everything under the cap
		{1, 3, 0.25, 1},   // never 0
		{6, 2, 0.25, 2},
	}

	for _, tt := range tests {
		got := TargetCount(tt.sentences, tt.maxSentences, tt.ratio)
		if got != tt.expected {
			t.Errorf("TargetCount(%d, %d, %f) = %d, want %d",
				tt.sentences, tt.maxSentences, tt.ratio, got, tt.expected)
		}
	}
}

func TestSelect_TopKInDocumentOrder(t *testing.T) {
	r := NewFrequencyRanker()

	scored := []domain.ScoredSentence{
		{Index: 0, Score: 0.4},
		{Index: 1, Score: 0.9},
		{Index: 2, Score: 0.1},
		{Index: 3, Score: 0.8},
	}

	got := r.Select(scored, 2)
	want := []int{1, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Select = %v, want %v", got, want)
	}
}

func TestSelect_TieBreakPrefersEarlierIndex(t *testing.T) {
	r := NewFrequencyRanker()

	scored := []domain.ScoredSentence{
		{Index: 0, Score: 0.5},
		{Index: 1, Score: 0.5},
		{Index: 2, Score: 0.5},
	}

	got := r.Select(scored, 2)
	want := []int{0, 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Select = %v, want %v", got, want)
	}
}

func TestSelect_FewerScoredThanK(t *testing.T) {
	r := NewFrequencyRanker()

	scored := []domain.ScoredSentence{{Index: 4, Score: 0.2}}

	got := r.Select(scored, 3)
	want := []int{4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Select = %v, want %v", got, want)
	}
}

func TestSelect_DoesNotMutateInput(t *testing.T) {
	r := NewFrequencyRanker()

	scored := []domain.ScoredSentence{
		{Index: 0, Score: 0.1},
		{Index: 1, Score: 0.9},
	}
	r.Select(scored, 1)

	if scored[0].Index != 0 || scored[1].Index != 1 {
		t.Errorf("Select reordered its input: %v", scored)
	}
}
