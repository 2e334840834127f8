package domain

// Language codes produced by the detector.
const (
	LangArabic  = "ar"
	LangEnglish = "en"
)

// Summary is the result of one summarization call. JSON tags match the
// shape served by the HTTP API and written by batch/watch output.
type Summary struct {
	Text            string `json:"summary"`
	Language        string `json:"language"`
	SelectedIndices []int  `json:"selected_indices"`
	SentenceCount   int    `json:"sentences_count"`
}

// Options tunes sentence selection.
type Options struct {
	MaxSentences   int
	Ratio          float64
	MinSentenceLen int
}

// Default selection parameters.
const (
	DefaultMaxSentences   = 3
	DefaultRatio          = 0.25
	DefaultMinSentenceLen = 30

	// ShortDocChars is the normalized length below which the whole
	// document is returned unscored.
	ShortDocChars = 200

	// ShortDocSentences is the sentence count at or below which the
	// whole document is returned unscored.
	ShortDocSentences = 2
)

// DefaultOptions returns the built-in selection parameters.
func DefaultOptions() Options {
	return Options{
		MaxSentences:   DefaultMaxSentences,
		Ratio:          DefaultRatio,
		MinSentenceLen: DefaultMinSentenceLen,
	}
}

// Clamped forces out-of-range values into safe bounds. Malformed
// tuning never fails a call.
func (o Options) Clamped() Options {
	if o.MaxSentences < 1 {
		o.MaxSentences = 1
	}
	if o.Ratio <= 0 {
		o.Ratio = DefaultRatio
	}
	if o.Ratio > 1 {
		o.Ratio = 1
	}
	if o.MinSentenceLen < 0 {
		o.MinSentenceLen = 0
	}
	return o
}

// ScoredSentence pairs a sentence's original position with its score.
type ScoredSentence struct {
	Index int
	Score float64
}
